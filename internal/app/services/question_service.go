package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/devforum/devforum/internal/app/auth"
	"github.com/devforum/devforum/internal/app/models"
	"github.com/devforum/devforum/internal/app/models/dto"
	"github.com/devforum/devforum/internal/app/repositories"
	"github.com/devforum/devforum/internal/pkg/apperrors"
	"github.com/devforum/devforum/internal/pkg/helpers"
)

type questionStore interface {
	Create(ctx context.Context, question *models.Question) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Question, error)
	GetAll(ctx context.Context, filter repositories.QuestionFilter) ([]models.Question, int64, error)
	Update(ctx context.Context, question *models.Question) error
	Delete(ctx context.Context, id int64) error
	IncrementViews(ctx context.Context, id int64) error

	GetAnswers(ctx context.Context, questionID int64) ([]models.Answer, error)
	GetAnswerByID(ctx context.Context, questionID, answerID int64) (*models.Answer, error)
	CreateAnswer(ctx context.Context, answer *models.Answer) (int64, error)
	UpdateAnswer(ctx context.Context, answerID int64, content string) error
	DeleteAnswer(ctx context.Context, answerID int64) error
	AcceptAnswer(ctx context.Context, questionID, answerID int64) error
	ToggleAnswerUpvote(ctx context.Context, answerID, userID int64) (bool, int64, error)
}

// QuestionService handles question and answer business logic
type QuestionService struct {
	questions questionStore
	likes     likeCounter
	logger    zerolog.Logger
}

// NewQuestionService creates a new QuestionService
func NewQuestionService(questions questionStore, likes likeCounter, logger zerolog.Logger) *QuestionService {
	return &QuestionService{
		questions: questions,
		likes:     likes,
		logger:    logger,
	}
}

// Create stores a new question
func (s *QuestionService) Create(ctx context.Context, userID int64, req dto.CreateQuestionRequest) (*dto.QuestionResponse, error) {
	question := &models.Question{
		Title:     strings.TrimSpace(req.Title),
		Content:   req.Content,
		Tags:      helpers.NormalizeTags(req.Tags),
		CreatedBy: userID,
	}

	id, err := s.questions.Create(ctx, question)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("questionID", id).Int64("userID", userID).Msg("Question created")
	return s.getDetail(ctx, id)
}

// GetByID returns a question with its answers and bumps the view
// counter.
func (s *QuestionService) GetByID(ctx context.Context, id int64) (*dto.QuestionResponse, error) {
	if err := s.questions.IncrementViews(ctx, id); err != nil {
		return nil, err
	}
	return s.getDetail(ctx, id)
}

func (s *QuestionService) getDetail(ctx context.Context, id int64) (*dto.QuestionResponse, error) {
	question, err := s.questions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	answers, err := s.questions.GetAnswers(ctx, id)
	if err != nil {
		return nil, err
	}
	question.Answers = answers

	upvotes, err := s.likes.LikeCount(ctx, models.KindQuestion, id)
	if err != nil {
		return nil, err
	}

	resp := dto.FromQuestion(question)
	resp.UpvotesCount = upvotes
	return &resp, nil
}

// List returns questions matching the filter with pagination
func (s *QuestionService) List(ctx context.Context, req dto.QuestionFilterRequest) (*dto.ListResponse, error) {
	filter := repositories.QuestionFilter{
		ListFilter: toListFilter(req.ListFilterRequest),
		Answered:   req.Answered,
	}

	questions, total, err := s.questions.GetAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(questions))
	for i := range questions {
		ids = append(ids, questions[i].ID)
	}
	upvoteCounts, err := s.likes.LikeCounts(ctx, models.KindQuestion, ids)
	if err != nil {
		return nil, err
	}

	items := make([]dto.QuestionResponse, 0, len(questions))
	for i := range questions {
		item := dto.FromQuestion(&questions[i])
		item.UpvotesCount = upvoteCounts[item.ID]
		items = append(items, item)
	}

	return dto.NewListResponse(items, len(items), helpers.NewPaginationInfo(total, filter.Page, filter.Limit)), nil
}

// Update applies the provided fields to a question
func (s *QuestionService) Update(ctx context.Context, id, actorID int64, actorRole models.RoleType, req dto.UpdateQuestionRequest) (*dto.QuestionResponse, error) {
	question, err := s.questions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := auth.CanMutate(actorID, actorRole, question.CreatedBy); err != nil {
		return nil, err
	}

	if req.Title != nil {
		question.Title = strings.TrimSpace(*req.Title)
	}
	if req.Content != nil {
		question.Content = *req.Content
	}
	if req.Tags != nil {
		question.Tags = helpers.NormalizeTags(req.Tags)
	}

	if err := s.questions.Update(ctx, question); err != nil {
		return nil, err
	}

	return s.getDetail(ctx, id)
}

// Delete removes a question with its answers and social records
func (s *QuestionService) Delete(ctx context.Context, id, actorID int64, actorRole models.RoleType) error {
	question, err := s.questions.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := auth.CanMutate(actorID, actorRole, question.CreatedBy); err != nil {
		return err
	}

	if err := s.questions.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("questionID", id).Int64("actorID", actorID).Msg("Question deleted")
	return nil
}

// AddAnswer appends an answer to a question
func (s *QuestionService) AddAnswer(ctx context.Context, questionID, userID int64, req dto.AnswerRequest) (*dto.AnswerResponse, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, apperrors.NewValidationError("answer content cannot be empty")
	}

	if _, err := s.questions.GetByID(ctx, questionID); err != nil {
		return nil, err
	}

	answer := &models.Answer{
		QuestionID: questionID,
		Content:    content,
		CreatedBy:  userID,
	}

	id, err := s.questions.CreateAnswer(ctx, answer)
	if err != nil {
		return nil, err
	}

	created, err := s.questions.GetAnswerByID(ctx, questionID, id)
	if err != nil {
		return nil, err
	}

	resp := dto.FromAnswer(created)
	return &resp, nil
}

// UpdateAnswer replaces the content of an answer. Only its author may
// edit it.
func (s *QuestionService) UpdateAnswer(ctx context.Context, questionID, answerID, actorID int64, req dto.AnswerRequest) (*dto.AnswerResponse, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, apperrors.NewValidationError("answer content cannot be empty")
	}

	answer, err := s.questions.GetAnswerByID(ctx, questionID, answerID)
	if err != nil {
		return nil, err
	}

	if answer.CreatedBy != actorID {
		return nil, apperrors.NewForbiddenError("only the answer author can edit it")
	}

	if err := s.questions.UpdateAnswer(ctx, answerID, content); err != nil {
		return nil, err
	}

	updated, err := s.questions.GetAnswerByID(ctx, questionID, answerID)
	if err != nil {
		return nil, err
	}

	resp := dto.FromAnswer(updated)
	return &resp, nil
}

// DeleteAnswer removes an answer. Its author or an admin may do so.
func (s *QuestionService) DeleteAnswer(ctx context.Context, questionID, answerID, actorID int64, actorRole models.RoleType) error {
	answer, err := s.questions.GetAnswerByID(ctx, questionID, answerID)
	if err != nil {
		return err
	}

	if err := auth.CanMutate(actorID, actorRole, answer.CreatedBy); err != nil {
		return err
	}

	return s.questions.DeleteAnswer(ctx, answerID)
}

// AcceptAnswer marks an answer as the accepted one. Only the question
// creator may accept, and a previously accepted answer loses its mark
// in the same atomic step.
func (s *QuestionService) AcceptAnswer(ctx context.Context, questionID, answerID, actorID int64) error {
	question, err := s.questions.GetByID(ctx, questionID)
	if err != nil {
		return err
	}

	if question.CreatedBy != actorID {
		return apperrors.NewForbiddenError("only the question creator can accept an answer")
	}

	if _, err := s.questions.GetAnswerByID(ctx, questionID, answerID); err != nil {
		return err
	}

	if err := s.questions.AcceptAnswer(ctx, questionID, answerID); err != nil {
		return err
	}

	s.logger.Info().Int64("questionID", questionID).Int64("answerID", answerID).Msg("Answer accepted")
	return nil
}

// ToggleAnswerUpvote flips the caller's upvote on an answer
func (s *QuestionService) ToggleAnswerUpvote(ctx context.Context, questionID, answerID, userID int64) (bool, int64, error) {
	if _, err := s.questions.GetAnswerByID(ctx, questionID, answerID); err != nil {
		return false, 0, err
	}

	return s.questions.ToggleAnswerUpvote(ctx, answerID, userID)
}
