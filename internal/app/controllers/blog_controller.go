package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/devforum/devforum/internal/app/models/dto"
	"github.com/devforum/devforum/internal/app/services"
	"github.com/devforum/devforum/internal/middleware"
)

// BlogController handles blog post CRUD operations
type BlogController struct {
	blogService *services.BlogService
	logger      zerolog.Logger
}

// NewBlogController creates a new BlogController
func NewBlogController(blogService *services.BlogService, logger zerolog.Logger) *BlogController {
	return &BlogController{
		blogService: blogService,
		logger:      logger,
	}
}

// GetBlogs lists blog posts
// @Summary List blog posts
// @Description Returns blog posts filtered by search text, tags or author, paginated
// @Tags blogs
// @Produce json
// @Param search query string false "Search in title and content"
// @Param tags query string false "Comma separated tags, any match"
// @Param user query int false "Author ID"
// @Param sort query string false "newest, oldest or title" default(newest)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.ListResponse} "Blog posts"
// @Router /blogs [get]
func (c *BlogController) GetBlogs(ctx *gin.Context) {
	var filter dto.ListFilterRequest
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	resp, err := c.blogService.List(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// GetBlogsByUser lists a user's blog posts
// @Summary List a user's blog posts
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=dto.ListResponse} "Blog posts"
// @Router /users/{id}/blogs [get]
func (c *BlogController) GetBlogsByUser(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var filter dto.ListFilterRequest
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}
	filter.User = &userID

	resp, err := c.blogService.List(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// GetBlogByID returns a single blog post
// @Summary Get a blog post
// @Tags blogs
// @Produce json
// @Param id path int true "Blog ID"
// @Success 200 {object} dto.APIResponse{data=dto.BlogResponse} "Blog post"
// @Failure 404 {object} dto.ErrorResponse "Blog post not found"
// @Router /blogs/{id} [get]
func (c *BlogController) GetBlogByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.blogService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// CreateBlog creates a blog post owned by the caller
// @Summary Create a blog post
// @Description Creates a post. A missing excerpt is derived from the content, the read time is estimated from the word count.
// @Tags blogs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateBlogRequest true "Blog fields"
// @Success 201 {object} dto.APIResponse{data=dto.BlogResponse} "Created blog post"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Router /blogs [post]
func (c *BlogController) CreateBlog(ctx *gin.Context) {
	var req dto.CreateBlogRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	resp, err := c.blogService.Create(ctx.Request.Context(), middleware.GetUserID(ctx), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp))
}

// UpdateBlog updates a blog post
// @Summary Update a blog post
// @Description Applies the provided fields. Only the author or an admin may update.
// @Tags blogs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Blog ID"
// @Param request body dto.UpdateBlogRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=dto.BlogResponse} "Updated blog post"
// @Failure 403 {object} dto.ErrorResponse "Not the author"
// @Failure 404 {object} dto.ErrorResponse "Blog post not found"
// @Router /blogs/{id} [put]
func (c *BlogController) UpdateBlog(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateBlogRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	resp, err := c.blogService.Update(ctx.Request.Context(), id, middleware.GetUserID(ctx), middleware.GetUserRole(ctx), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// DeleteBlog deletes a blog post
// @Summary Delete a blog post
// @Description Removes a post with its likes and comments. Only the author or an admin may delete.
// @Tags blogs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Blog ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Deleted"
// @Failure 403 {object} dto.ErrorResponse "Not the author"
// @Failure 404 {object} dto.ErrorResponse "Blog post not found"
// @Router /blogs/{id} [delete]
func (c *BlogController) DeleteBlog(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.blogService.Delete(ctx.Request.Context(), id, middleware.GetUserID(ctx), middleware.GetUserRole(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Blog post deleted"}))
}
