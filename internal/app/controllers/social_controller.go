package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/devforum/devforum/internal/app/models"
	"github.com/devforum/devforum/internal/app/models/dto"
	"github.com/devforum/devforum/internal/app/services"
	"github.com/devforum/devforum/internal/middleware"
)

// SocialController handles likes, upvotes, attendance and comments for
// every resource kind. Routes bind each handler to a kind, so a single
// controller serves all five resources.
type SocialController struct {
	socialService *services.SocialService
	logger        zerolog.Logger
}

// NewSocialController creates a new SocialController
func NewSocialController(socialService *services.SocialService, logger zerolog.Logger) *SocialController {
	return &SocialController{
		socialService: socialService,
		logger:        logger,
	}
}

// ToggleLike flips the caller's like on a resource
// @Summary Toggle a like
// @Description Adds the caller's like, or removes it when already present. Repeating the call flips the state back.
// @Tags social
// @Produce json
// @Security BearerAuth
// @Param id path int true "Resource ID"
// @Success 200 {object} dto.APIResponse{data=dto.ToggleLikeResponse} "Like state"
// @Failure 404 {object} dto.ErrorResponse "Resource not found"
// @Router /projects/{id}/like [post]
func (c *SocialController) ToggleLike(kind models.ResourceKind) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		resourceID, ok := parseIDParam(ctx, "id")
		if !ok {
			return
		}

		liked, count, err := c.socialService.ToggleLike(ctx.Request.Context(), kind, resourceID, middleware.GetUserID(ctx))
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ToggleLikeResponse{Liked: liked, LikesCount: count}))
	}
}

// ToggleUpvote flips the caller's upvote on a question
// @Summary Toggle a question upvote
// @Tags social
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Success 200 {object} dto.APIResponse{data=dto.ToggleUpvoteResponse} "Upvote state"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /questions/{id}/upvote [post]
func (c *SocialController) ToggleUpvote(ctx *gin.Context) {
	resourceID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	upvoted, count, err := c.socialService.ToggleLike(ctx.Request.Context(), models.KindQuestion, resourceID, middleware.GetUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ToggleUpvoteResponse{Upvoted: upvoted, Upvotes: count}))
}

// ToggleAttend flips the caller's attendance on an event
// @Summary Toggle event attendance
// @Description Registers the caller as an attendee, or removes the registration when already present
// @Tags social
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} dto.APIResponse{data=dto.ToggleAttendResponse} "Attendance state"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{id}/attend [post]
func (c *SocialController) ToggleAttend(ctx *gin.Context) {
	resourceID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	attending, count, err := c.socialService.ToggleLike(ctx.Request.Context(), models.KindEvent, resourceID, middleware.GetUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ToggleAttendResponse{Attending: attending, AttendeesCount: count}))
}

// GetComments lists the comments of a resource
// @Summary List comments
// @Description Returns the comments of a resource in creation order
// @Tags social
// @Produce json
// @Param id path int true "Resource ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.CommentResponse} "Comments"
// @Failure 404 {object} dto.ErrorResponse "Resource not found"
// @Router /projects/{id}/comments [get]
func (c *SocialController) GetComments(kind models.ResourceKind) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		resourceID, ok := parseIDParam(ctx, "id")
		if !ok {
			return
		}

		comments, err := c.socialService.GetComments(ctx.Request.Context(), kind, resourceID)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, dto.NewSuccessResponse(comments))
	}
}

// AddComment posts a comment on a resource
// @Summary Add a comment
// @Tags social
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Resource ID"
// @Param request body dto.CommentRequest true "Comment text"
// @Success 201 {object} dto.APIResponse{data=dto.CommentResponse} "Created comment"
// @Failure 400 {object} dto.ErrorResponse "Empty comment"
// @Failure 404 {object} dto.ErrorResponse "Resource not found"
// @Router /projects/{id}/comments [post]
func (c *SocialController) AddComment(kind models.ResourceKind) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		resourceID, ok := parseIDParam(ctx, "id")
		if !ok {
			return
		}

		var req dto.CommentRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			middleware.HandleBindingError(ctx, err)
			return
		}

		comment, err := c.socialService.AddComment(ctx.Request.Context(), kind, resourceID, middleware.GetUserID(ctx), req.Text)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}

		ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(comment))
	}
}

// DeleteComment removes a comment
// @Summary Delete a comment
// @Description Removes a comment. Only its author or an admin may delete.
// @Tags social
// @Produce json
// @Security BearerAuth
// @Param id path int true "Resource ID"
// @Param commentId path int true "Comment ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Deleted"
// @Failure 403 {object} dto.ErrorResponse "Not the author"
// @Failure 404 {object} dto.ErrorResponse "Comment not found"
// @Router /projects/{id}/comments/{commentId} [delete]
func (c *SocialController) DeleteComment(kind models.ResourceKind) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		resourceID, ok := parseIDParam(ctx, "id")
		if !ok {
			return
		}
		commentID, ok := parseIDParam(ctx, "commentId")
		if !ok {
			return
		}

		err := c.socialService.DeleteComment(ctx.Request.Context(), kind, resourceID, commentID, middleware.GetUserID(ctx), middleware.GetUserRole(ctx))
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Comment deleted"}))
	}
}
