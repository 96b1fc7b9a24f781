package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/devforum/devforum/internal/app/models/dto"
	"github.com/devforum/devforum/internal/app/services"
	"github.com/devforum/devforum/internal/middleware"
)

// DiscussionController handles discussion thread CRUD operations
type DiscussionController struct {
	discussionService *services.DiscussionService
	logger            zerolog.Logger
}

// NewDiscussionController creates a new DiscussionController
func NewDiscussionController(discussionService *services.DiscussionService, logger zerolog.Logger) *DiscussionController {
	return &DiscussionController{
		discussionService: discussionService,
		logger:            logger,
	}
}

// GetDiscussions lists discussion threads
// @Summary List discussions
// @Description Returns discussion threads filtered by search text, tags or author, paginated
// @Tags discussions
// @Produce json
// @Param search query string false "Search in title and description"
// @Param tags query string false "Comma separated tags, any match"
// @Param user query int false "Author ID"
// @Param sort query string false "newest, oldest or title" default(newest)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.ListResponse} "Discussions"
// @Router /discussions [get]
func (c *DiscussionController) GetDiscussions(ctx *gin.Context) {
	var filter dto.ListFilterRequest
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	resp, err := c.discussionService.List(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// GetDiscussionByID returns a single discussion thread
// @Summary Get a discussion
// @Tags discussions
// @Produce json
// @Param id path int true "Discussion ID"
// @Success 200 {object} dto.APIResponse{data=dto.DiscussionResponse} "Discussion"
// @Failure 404 {object} dto.ErrorResponse "Discussion not found"
// @Router /discussions/{id} [get]
func (c *DiscussionController) GetDiscussionByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.discussionService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// CreateDiscussion starts a discussion thread
// @Summary Start a discussion
// @Tags discussions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateDiscussionRequest true "Discussion fields"
// @Success 201 {object} dto.APIResponse{data=dto.DiscussionResponse} "Created discussion"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Router /discussions [post]
func (c *DiscussionController) CreateDiscussion(ctx *gin.Context) {
	var req dto.CreateDiscussionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	resp, err := c.discussionService.Create(ctx.Request.Context(), middleware.GetUserID(ctx), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp))
}

// UpdateDiscussion updates a discussion thread
// @Summary Update a discussion
// @Description Applies the provided fields. Only the author or an admin may update.
// @Tags discussions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Discussion ID"
// @Param request body dto.UpdateDiscussionRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=dto.DiscussionResponse} "Updated discussion"
// @Failure 403 {object} dto.ErrorResponse "Not the author"
// @Failure 404 {object} dto.ErrorResponse "Discussion not found"
// @Router /discussions/{id} [put]
func (c *DiscussionController) UpdateDiscussion(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateDiscussionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	resp, err := c.discussionService.Update(ctx.Request.Context(), id, middleware.GetUserID(ctx), middleware.GetUserRole(ctx), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// DeleteDiscussion deletes a discussion thread
// @Summary Delete a discussion
// @Description Removes a discussion with its likes and comments. Only the author or an admin may delete.
// @Tags discussions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Discussion ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Deleted"
// @Failure 403 {object} dto.ErrorResponse "Not the author"
// @Failure 404 {object} dto.ErrorResponse "Discussion not found"
// @Router /discussions/{id} [delete]
func (c *DiscussionController) DeleteDiscussion(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.discussionService.Delete(ctx.Request.Context(), id, middleware.GetUserID(ctx), middleware.GetUserRole(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Discussion deleted"}))
}
