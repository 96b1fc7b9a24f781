package dto

import (
	"time"

	"github.com/devforum/devforum/internal/app/models"
)

// CreateQuestionRequest represents a new question
type CreateQuestionRequest struct {
	Title   string   `json:"title" binding:"required,max=200"`
	Content string   `json:"content" binding:"required"`
	Tags    []string `json:"tags,omitempty"`
}

// UpdateQuestionRequest represents a question update; nil fields are
// left unchanged
type UpdateQuestionRequest struct {
	Title   *string  `json:"title,omitempty" binding:"omitempty,max=200"`
	Content *string  `json:"content,omitempty"`
	Tags    []string `json:"tags,omitempty"`
}

// QuestionResponse represents question details
type QuestionResponse struct {
	ID           int64            `json:"id"`
	Title        string           `json:"title"`
	Content      string           `json:"content"`
	Tags         []string         `json:"tags"`
	Views        int64            `json:"views"`
	Creator      *UserSummary     `json:"creator,omitempty"`
	UpvotesCount int64            `json:"upvotesCount"`
	AnswersCount int              `json:"answersCount"`
	Answers      []AnswerResponse `json:"answers,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

// AnswerRequest represents answer content for add and update
type AnswerRequest struct {
	Content string `json:"content" binding:"required"`
}

// AnswerResponse represents a single answer
type AnswerResponse struct {
	ID         int64        `json:"id"`
	Content    string       `json:"content"`
	IsAccepted bool         `json:"isAccepted"`
	Creator    *UserSummary `json:"creator,omitempty"`
	Upvotes    int64        `json:"upvotes"`
	CreatedAt  time.Time    `json:"createdAt"`
	UpdatedAt  time.Time    `json:"updatedAt"`
}

// FromQuestion converts a models.Question to a QuestionResponse
func FromQuestion(q *models.Question) QuestionResponse {
	if q == nil {
		return QuestionResponse{}
	}
	answers := make([]AnswerResponse, 0, len(q.Answers))
	for i := range q.Answers {
		answers = append(answers, FromAnswer(&q.Answers[i]))
	}
	return QuestionResponse{
		ID:           q.ID,
		Title:        q.Title,
		Content:      q.Content,
		Tags:         q.Tags,
		Views:        q.Views,
		Creator:      FromUserSummary(q.Creator),
		AnswersCount: len(q.Answers),
		Answers:      answers,
		CreatedAt:    q.CreatedAt,
		UpdatedAt:    q.UpdatedAt,
	}
}

// FromAnswer converts a models.Answer to an AnswerResponse
func FromAnswer(a *models.Answer) AnswerResponse {
	if a == nil {
		return AnswerResponse{}
	}
	return AnswerResponse{
		ID:         a.ID,
		Content:    a.Content,
		IsAccepted: a.IsAccepted,
		Creator:    FromUserSummary(a.Creator),
		Upvotes:    a.Upvotes,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}
