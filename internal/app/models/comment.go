package models

import (
	"time"
)

// Comment is a child record owned by exactly one resource, addressed
// by (kind, resourceID, id). Rows live in the shared 'comments' table.
type Comment struct {
	ID         int64        `json:"id" db:"id"`
	Kind       ResourceKind `json:"-" db:"resource_kind"`
	ResourceID int64        `json:"-" db:"resource_id"`
	AuthorID   int64        `json:"authorId" db:"author_id"`
	Body       string       `json:"text" db:"body"`
	CreatedAt  time.Time    `json:"createdAt" db:"created_at"`

	// Joined author fields, no db tag
	AuthorName   string  `json:"authorName,omitempty"`
	AuthorAvatar *string `json:"authorAvatar,omitempty"`
}
