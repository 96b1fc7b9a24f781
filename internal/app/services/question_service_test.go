package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devforum/devforum/internal/app/models"
	"github.com/devforum/devforum/internal/app/models/dto"
	"github.com/devforum/devforum/internal/pkg/apperrors"
)

func newQuestionService(questions *memQuestions) *QuestionService {
	return NewQuestionService(questions, newMemSocial(), zerolog.Nop())
}

func seedQuestion(t *testing.T, questions *memQuestions, creatorID int64) int64 {
	t.Helper()
	id, err := questions.Create(context.Background(), &models.Question{
		Title:     "How do I paginate with pgx?",
		Content:   "Looking for a clean pattern.",
		Tags:      []string{"go", "pgx"},
		CreatedBy: creatorID,
	})
	require.NoError(t, err)
	return id
}

func seedAnswer(t *testing.T, questions *memQuestions, questionID, authorID int64) int64 {
	t.Helper()
	id, err := questions.CreateAnswer(context.Background(), &models.Answer{
		QuestionID: questionID,
		Content:    "Use a window function for the total count.",
		CreatedBy:  authorID,
	})
	require.NoError(t, err)
	return id
}

func TestGetByIDBumpsViewCounter(t *testing.T) {
	ctx := context.Background()
	questions := newMemQuestions()
	svc := newQuestionService(questions)
	qid := seedQuestion(t, questions, 1)

	first, err := svc.GetByID(ctx, qid)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.Views)

	second, err := svc.GetByID(ctx, qid)
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.Views)
}

func TestAddAnswerRequiresContent(t *testing.T) {
	questions := newMemQuestions()
	svc := newQuestionService(questions)
	qid := seedQuestion(t, questions, 1)

	_, err := svc.AddAnswer(context.Background(), qid, 2, dto.AnswerRequest{Content: "  "})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestAddAnswerToMissingQuestion(t *testing.T) {
	svc := newQuestionService(newMemQuestions())

	_, err := svc.AddAnswer(context.Background(), 99, 2, dto.AnswerRequest{Content: "answer"})
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestAcceptAnswerOnlyCreator(t *testing.T) {
	ctx := context.Background()
	questions := newMemQuestions()
	svc := newQuestionService(questions)
	qid := seedQuestion(t, questions, 1)
	aid := seedAnswer(t, questions, qid, 2)

	err := svc.AcceptAnswer(ctx, qid, aid, 2)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	answer, err := questions.GetAnswerByID(ctx, qid, aid)
	require.NoError(t, err)
	assert.False(t, answer.IsAccepted)
}

func TestAcceptAnswerMovesTheMark(t *testing.T) {
	ctx := context.Background()
	questions := newMemQuestions()
	svc := newQuestionService(questions)
	qid := seedQuestion(t, questions, 1)
	a1 := seedAnswer(t, questions, qid, 2)
	a2 := seedAnswer(t, questions, qid, 3)

	require.NoError(t, svc.AcceptAnswer(ctx, qid, a2, 1))
	require.NoError(t, svc.AcceptAnswer(ctx, qid, a1, 1))

	answers, err := questions.GetAnswers(ctx, qid)
	require.NoError(t, err)
	require.Len(t, answers, 2)

	accepted := 0
	for _, a := range answers {
		if a.IsAccepted {
			accepted++
			assert.Equal(t, a1, a.ID)
		}
	}
	assert.Equal(t, 1, accepted)
}

func TestAcceptAnswerFromAnotherQuestion(t *testing.T) {
	ctx := context.Background()
	questions := newMemQuestions()
	svc := newQuestionService(questions)
	q1 := seedQuestion(t, questions, 1)
	q2 := seedQuestion(t, questions, 1)
	foreign := seedAnswer(t, questions, q2, 2)

	err := svc.AcceptAnswer(ctx, q1, foreign, 1)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestUpdateAnswerAuthorOnly(t *testing.T) {
	ctx := context.Background()
	questions := newMemQuestions()
	svc := newQuestionService(questions)
	qid := seedQuestion(t, questions, 1)
	aid := seedAnswer(t, questions, qid, 2)

	_, err := svc.UpdateAnswer(ctx, qid, aid, 3, dto.AnswerRequest{Content: "edited"})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	updated, err := svc.UpdateAnswer(ctx, qid, aid, 2, dto.AnswerRequest{Content: "edited"})
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)
}

func TestDeleteAnswerGate(t *testing.T) {
	ctx := context.Background()
	questions := newMemQuestions()
	svc := newQuestionService(questions)
	qid := seedQuestion(t, questions, 1)
	aid := seedAnswer(t, questions, qid, 2)

	err := svc.DeleteAnswer(ctx, qid, aid, 3, models.RoleMember)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	require.NoError(t, svc.DeleteAnswer(ctx, qid, aid, 99, models.RoleAdmin))

	_, err = questions.GetAnswerByID(ctx, qid, aid)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestToggleAnswerUpvote(t *testing.T) {
	ctx := context.Background()
	questions := newMemQuestions()
	svc := newQuestionService(questions)
	qid := seedQuestion(t, questions, 1)
	aid := seedAnswer(t, questions, qid, 2)

	upvoted, count, err := svc.ToggleAnswerUpvote(ctx, qid, aid, 5)
	require.NoError(t, err)
	assert.True(t, upvoted)
	assert.Equal(t, int64(1), count)

	upvoted, count, err = svc.ToggleAnswerUpvote(ctx, qid, aid, 5)
	require.NoError(t, err)
	assert.False(t, upvoted)
	assert.Equal(t, int64(0), count)
}

func TestUpdateQuestionOwnershipGate(t *testing.T) {
	ctx := context.Background()
	questions := newMemQuestions()
	svc := newQuestionService(questions)
	qid := seedQuestion(t, questions, 1)

	newTitle := "Edited title"
	_, err := svc.Update(ctx, qid, 2, models.RoleMember, dto.UpdateQuestionRequest{Title: &newTitle})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	unchanged, err := questions.GetByID(ctx, qid)
	require.NoError(t, err)
	assert.Equal(t, "How do I paginate with pgx?", unchanged.Title)
}

func TestDeleteQuestionRemovesIt(t *testing.T) {
	ctx := context.Background()
	questions := newMemQuestions()
	svc := newQuestionService(questions)
	qid := seedQuestion(t, questions, 1)

	require.NoError(t, svc.Delete(ctx, qid, 1, models.RoleMember))

	_, err := questions.GetByID(ctx, qid)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}
