package dto

import (
	"time"

	"github.com/devforum/devforum/internal/app/models"
)

// CreateDiscussionRequest represents a new discussion thread
type CreateDiscussionRequest struct {
	Title       string   `json:"title" binding:"required,max=150"`
	Description string   `json:"description" binding:"required,max=5000"`
	Tags        []string `json:"tags,omitempty"`
}

// UpdateDiscussionRequest represents a discussion update; nil fields
// are left unchanged
type UpdateDiscussionRequest struct {
	Title       *string  `json:"title,omitempty" binding:"omitempty,max=150"`
	Description *string  `json:"description,omitempty" binding:"omitempty,max=5000"`
	Tags        []string `json:"tags,omitempty"`
}

// DiscussionResponse represents discussion details
type DiscussionResponse struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Tags        []string     `json:"tags"`
	Author      *UserSummary `json:"author,omitempty"`
	LikesCount  int64        `json:"likesCount"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// FromDiscussion converts a models.Discussion to a DiscussionResponse
func FromDiscussion(d *models.Discussion) DiscussionResponse {
	if d == nil {
		return DiscussionResponse{}
	}
	return DiscussionResponse{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Tags:        d.Tags,
		Author:      FromUserSummary(d.Creator),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
