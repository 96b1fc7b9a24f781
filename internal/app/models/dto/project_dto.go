package dto

import (
	"time"

	"github.com/devforum/devforum/internal/app/models"
)

// CreateProjectRequest represents a new project submission
type CreateProjectRequest struct {
	Title       string   `json:"title" binding:"required,max=200"`
	Description string   `json:"description" binding:"required"`
	TechStack   []string `json:"techStack,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Difficulty  string   `json:"difficulty,omitempty" binding:"omitempty,oneof=beginner intermediate advanced"`
	GithubLink  *string  `json:"githubLink,omitempty"`
	LiveLink    *string  `json:"liveLink,omitempty"`
	Image       *string  `json:"image,omitempty"` // base64 data-URL
}

// UpdateProjectRequest represents a project update; nil fields are left
// unchanged
type UpdateProjectRequest struct {
	Title       *string  `json:"title,omitempty" binding:"omitempty,max=200"`
	Description *string  `json:"description,omitempty"`
	TechStack   []string `json:"techStack,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Difficulty  *string  `json:"difficulty,omitempty" binding:"omitempty,oneof=beginner intermediate advanced"`
	GithubLink  *string  `json:"githubLink,omitempty"`
	LiveLink    *string  `json:"liveLink,omitempty"`
	Image       *string  `json:"image,omitempty"`
}

// ProjectResponse represents project details
type ProjectResponse struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	TechStack   []string     `json:"techStack"`
	Tags        []string     `json:"tags"`
	Difficulty  string       `json:"difficulty"`
	GithubLink  *string      `json:"githubLink,omitempty"`
	LiveLink    *string      `json:"liveLink,omitempty"`
	ImageURL    *string      `json:"imageUrl,omitempty"`
	Creator     *UserSummary `json:"creator,omitempty"`
	LikesCount  int64        `json:"likesCount"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// FromProject converts a models.Project to a ProjectResponse
func FromProject(p *models.Project) ProjectResponse {
	if p == nil {
		return ProjectResponse{}
	}
	return ProjectResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		TechStack:   p.TechStack,
		Tags:        p.Tags,
		Difficulty:  string(p.Difficulty),
		GithubLink:  p.GithubLink,
		LiveLink:    p.LiveLink,
		ImageURL:    p.ImageURL,
		Creator:     FromUserSummary(p.Creator),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
