package models

import (
	"time"
)

// Discussion defines the discussion thread model based on the
// 'discussions' table
type Discussion struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Tags        []string  `json:"tags" db:"tags"`
	CreatedBy   int64     `json:"author" db:"created_by"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`

	Creator *User `json:"authorInfo,omitempty"` // Relation, no db tag
}
