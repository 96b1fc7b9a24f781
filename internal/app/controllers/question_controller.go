package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/devforum/devforum/internal/app/models/dto"
	"github.com/devforum/devforum/internal/app/services"
	"github.com/devforum/devforum/internal/middleware"
)

// QuestionController handles question and answer operations
type QuestionController struct {
	questionService *services.QuestionService
	logger          zerolog.Logger
}

// NewQuestionController creates a new QuestionController
func NewQuestionController(questionService *services.QuestionService, logger zerolog.Logger) *QuestionController {
	return &QuestionController{
		questionService: questionService,
		logger:          logger,
	}
}

// GetQuestions lists questions
// @Summary List questions
// @Description Returns questions filtered by search text, tags, creator or answered state, paginated
// @Tags questions
// @Produce json
// @Param search query string false "Search in title and content"
// @Param tags query string false "Comma separated tags, any match"
// @Param user query int false "Creator ID"
// @Param answered query bool false "Only questions with (or without) answers"
// @Param sort query string false "newest, oldest, views, upvotes or answers" default(newest)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.ListResponse} "Questions"
// @Router /questions [get]
func (c *QuestionController) GetQuestions(ctx *gin.Context) {
	var filter dto.QuestionFilterRequest
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	resp, err := c.questionService.List(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// GetQuestionsByUser lists a user's questions
// @Summary List a user's questions
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=dto.ListResponse} "Questions"
// @Router /users/{id}/questions [get]
func (c *QuestionController) GetQuestionsByUser(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var filter dto.QuestionFilterRequest
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}
	filter.User = &userID

	resp, err := c.questionService.List(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// GetQuestionByID returns a question with its answers
// @Summary Get a question
// @Description Returns a question with its answers and bumps the view counter
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.APIResponse{data=dto.QuestionResponse} "Question"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /questions/{id} [get]
func (c *QuestionController) GetQuestionByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.questionService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// CreateQuestion creates a question owned by the caller
// @Summary Ask a question
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateQuestionRequest true "Question fields"
// @Success 201 {object} dto.APIResponse{data=dto.QuestionResponse} "Created question"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Router /questions [post]
func (c *QuestionController) CreateQuestion(ctx *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	resp, err := c.questionService.Create(ctx.Request.Context(), middleware.GetUserID(ctx), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp))
}

// UpdateQuestion updates a question
// @Summary Update a question
// @Description Applies the provided fields. Only the creator or an admin may update.
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Param request body dto.UpdateQuestionRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=dto.QuestionResponse} "Updated question"
// @Failure 403 {object} dto.ErrorResponse "Not the creator"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /questions/{id} [put]
func (c *QuestionController) UpdateQuestion(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	resp, err := c.questionService.Update(ctx.Request.Context(), id, middleware.GetUserID(ctx), middleware.GetUserRole(ctx), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// DeleteQuestion deletes a question
// @Summary Delete a question
// @Description Removes a question with its answers, upvotes and comments. Only the creator or an admin may delete.
// @Tags questions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Deleted"
// @Failure 403 {object} dto.ErrorResponse "Not the creator"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /questions/{id} [delete]
func (c *QuestionController) DeleteQuestion(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.questionService.Delete(ctx.Request.Context(), id, middleware.GetUserID(ctx), middleware.GetUserRole(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Question deleted"}))
}

// AddAnswer posts an answer to a question
// @Summary Answer a question
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Param request body dto.AnswerRequest true "Answer content"
// @Success 201 {object} dto.APIResponse{data=dto.AnswerResponse} "Created answer"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /questions/{id}/answers [post]
func (c *QuestionController) AddAnswer(ctx *gin.Context) {
	questionID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.AnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	resp, err := c.questionService.AddAnswer(ctx.Request.Context(), questionID, middleware.GetUserID(ctx), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp))
}

// UpdateAnswer edits an answer
// @Summary Edit an answer
// @Description Replaces the answer content. Only the answer author may edit.
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Param answerId path int true "Answer ID"
// @Param request body dto.AnswerRequest true "Answer content"
// @Success 200 {object} dto.APIResponse{data=dto.AnswerResponse} "Updated answer"
// @Failure 403 {object} dto.ErrorResponse "Not the author"
// @Failure 404 {object} dto.ErrorResponse "Answer not found"
// @Router /questions/{id}/answers/{answerId} [put]
func (c *QuestionController) UpdateAnswer(ctx *gin.Context) {
	questionID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	answerID, ok := parseIDParam(ctx, "answerId")
	if !ok {
		return
	}

	var req dto.AnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	resp, err := c.questionService.UpdateAnswer(ctx.Request.Context(), questionID, answerID, middleware.GetUserID(ctx), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// DeleteAnswer removes an answer
// @Summary Delete an answer
// @Description Removes an answer and its upvotes. Only the author or an admin may delete.
// @Tags questions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Param answerId path int true "Answer ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Deleted"
// @Failure 403 {object} dto.ErrorResponse "Not the author"
// @Failure 404 {object} dto.ErrorResponse "Answer not found"
// @Router /questions/{id}/answers/{answerId} [delete]
func (c *QuestionController) DeleteAnswer(ctx *gin.Context) {
	questionID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	answerID, ok := parseIDParam(ctx, "answerId")
	if !ok {
		return
	}

	if err := c.questionService.DeleteAnswer(ctx.Request.Context(), questionID, answerID, middleware.GetUserID(ctx), middleware.GetUserRole(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Answer deleted"}))
}

// AcceptAnswer marks an answer as accepted
// @Summary Accept an answer
// @Description Marks an answer as the accepted one for the question. Any previously accepted answer loses its mark. Only the question creator may accept.
// @Tags questions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Param answerId path int true "Answer ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Accepted"
// @Failure 403 {object} dto.ErrorResponse "Not the question creator"
// @Failure 404 {object} dto.ErrorResponse "Answer not found"
// @Router /questions/{id}/answers/{answerId}/accept [post]
func (c *QuestionController) AcceptAnswer(ctx *gin.Context) {
	questionID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	answerID, ok := parseIDParam(ctx, "answerId")
	if !ok {
		return
	}

	if err := c.questionService.AcceptAnswer(ctx.Request.Context(), questionID, answerID, middleware.GetUserID(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Answer accepted"}))
}

// ToggleAnswerUpvote flips the caller's upvote on an answer
// @Summary Upvote an answer
// @Description Adds the caller's upvote, or removes it when already present
// @Tags questions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Param answerId path int true "Answer ID"
// @Success 200 {object} dto.APIResponse{data=dto.ToggleUpvoteResponse} "Upvote state"
// @Failure 404 {object} dto.ErrorResponse "Answer not found"
// @Router /questions/{id}/answers/{answerId}/upvote [post]
func (c *QuestionController) ToggleAnswerUpvote(ctx *gin.Context) {
	questionID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	answerID, ok := parseIDParam(ctx, "answerId")
	if !ok {
		return
	}

	upvoted, upvotes, err := c.questionService.ToggleAnswerUpvote(ctx.Request.Context(), questionID, answerID, middleware.GetUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ToggleUpvoteResponse{Upvoted: upvoted, Upvotes: upvotes}))
}
