package dto

import (
	"time"

	"github.com/devforum/devforum/internal/app/models"
)

// CreateBlogRequest represents a new blog post
type CreateBlogRequest struct {
	Title      string   `json:"title" binding:"required,max=200"`
	Content    string   `json:"content" binding:"required"`
	Excerpt    *string  `json:"excerpt,omitempty" binding:"omitempty,max=300"`
	Tags       []string `json:"tags,omitempty"`
	CoverImage *string  `json:"coverImage,omitempty"` // base64 data-URL
}

// UpdateBlogRequest represents a blog update; nil fields are left
// unchanged
type UpdateBlogRequest struct {
	Title      *string  `json:"title,omitempty" binding:"omitempty,max=200"`
	Content    *string  `json:"content,omitempty"`
	Excerpt    *string  `json:"excerpt,omitempty" binding:"omitempty,max=300"`
	Tags       []string `json:"tags,omitempty"`
	CoverImage *string  `json:"coverImage,omitempty"`
}

// BlogResponse represents blog post details
type BlogResponse struct {
	ID            int64        `json:"id"`
	Title         string       `json:"title"`
	Content       string       `json:"content"`
	Excerpt       string       `json:"excerpt"`
	CoverImageURL *string      `json:"coverImageUrl,omitempty"`
	Tags          []string     `json:"tags"`
	ReadTime      int          `json:"readTime"`
	Creator       *UserSummary `json:"creator,omitempty"`
	LikesCount    int64        `json:"likesCount"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

// FromBlog converts a models.Blog to a BlogResponse
func FromBlog(b *models.Blog) BlogResponse {
	if b == nil {
		return BlogResponse{}
	}
	return BlogResponse{
		ID:            b.ID,
		Title:         b.Title,
		Content:       b.Content,
		Excerpt:       b.Excerpt,
		CoverImageURL: b.CoverImageURL,
		Tags:          b.Tags,
		ReadTime:      b.ReadTime,
		Creator:       FromUserSummary(b.Creator),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
