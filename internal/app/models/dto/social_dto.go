package dto

import (
	"time"

	"github.com/devforum/devforum/internal/app/models"
)

// ToggleLikeResponse carries the membership state after a like or
// upvote toggle
type ToggleLikeResponse struct {
	Liked      bool  `json:"liked"`
	LikesCount int64 `json:"likesCount"`
}

// ToggleAttendResponse carries the membership state after an attend
// toggle
type ToggleAttendResponse struct {
	Attending      bool  `json:"attending"`
	AttendeesCount int64 `json:"attendeesCount"`
}

// ToggleUpvoteResponse carries the membership state after an upvote
// toggle
type ToggleUpvoteResponse struct {
	Upvoted bool  `json:"upvoted"`
	Upvotes int64 `json:"upvotes"`
}

// CommentRequest represents new comment text
type CommentRequest struct {
	Text string `json:"text" binding:"required,max=2000"`
}

// CommentResponse represents a single comment
type CommentResponse struct {
	ID           int64     `json:"id"`
	Text         string    `json:"text"`
	AuthorID     int64     `json:"authorId"`
	AuthorName   string    `json:"authorName,omitempty"`
	AuthorAvatar *string   `json:"authorAvatar,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// FromComment converts a models.Comment to a CommentResponse
func FromComment(c *models.Comment) CommentResponse {
	if c == nil {
		return CommentResponse{}
	}
	return CommentResponse{
		ID:           c.ID,
		Text:         c.Body,
		AuthorID:     c.AuthorID,
		AuthorName:   c.AuthorName,
		AuthorAvatar: c.AuthorAvatar,
		CreatedAt:    c.CreatedAt,
	}
}
