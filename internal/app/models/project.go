package models

import (
	"time"
)

// Project defines the project model based on the 'projects' table
type Project struct {
	ID          int64      `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description" db:"description"`
	TechStack   []string   `json:"techStack" db:"tech_stack"`
	Tags        []string   `json:"tags" db:"tags"`
	Difficulty  Difficulty `json:"difficulty" db:"difficulty"`
	GithubLink  *string    `json:"githubLink,omitempty" db:"github_link"`
	LiveLink    *string    `json:"liveLink,omitempty" db:"live_link"`
	ImageURL    *string    `json:"imageUrl,omitempty" db:"image_url"`
	CreatedBy   int64      `json:"createdBy" db:"created_by"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`

	Creator *User `json:"creator,omitempty"` // Relation, no db tag
}
