package models

import (
	"time"
)

// Blog defines the blog post model based on the 'blogs' table
type Blog struct {
	ID            int64     `json:"id" db:"id"`
	Title         string    `json:"title" db:"title"`
	Content       string    `json:"content" db:"content"`
	Excerpt       string    `json:"excerpt" db:"excerpt"`
	CoverImageURL *string   `json:"coverImageUrl,omitempty" db:"cover_image_url"`
	Tags          []string  `json:"tags" db:"tags"`
	ReadTime      int       `json:"readTime" db:"read_time"` // estimated minutes
	CreatedBy     int64     `json:"createdBy" db:"created_by"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`

	Creator *User `json:"creator,omitempty"` // Relation, no db tag
}
