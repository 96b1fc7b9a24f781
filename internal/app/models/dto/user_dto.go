package dto

import (
	"time"

	"github.com/devforum/devforum/internal/app/models"
)

// UserResponse represents public user information
type UserResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	AvatarURL   *string   `json:"avatarUrl,omitempty"`
	Bio         *string   `json:"bio,omitempty"`
	GithubURL   *string   `json:"githubUrl,omitempty"`
	LinkedinURL *string   `json:"linkedinUrl,omitempty"`
	WebsiteURL  *string   `json:"websiteUrl,omitempty"`
	Skills      []string  `json:"skills"`
	CreatedAt   time.Time `json:"createdAt"`
}

// UserSummary is the compact creator reference embedded in resource
// responses
type UserSummary struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
}

// ProfileResponse extends UserResponse with contribution counts
type ProfileResponse struct {
	UserResponse
	ProjectsCount  int64 `json:"projectsCount"`
	BlogsCount     int64 `json:"blogsCount"`
	QuestionsCount int64 `json:"questionsCount"`
}

// FromUser converts a models.User to a UserResponse
func FromUser(user *models.User) UserResponse {
	if user == nil {
		return UserResponse{}
	}
	return UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		Role:        string(user.RoleType),
		AvatarURL:   user.AvatarURL,
		Bio:         user.Bio,
		GithubURL:   user.GithubURL,
		LinkedinURL: user.LinkedinURL,
		WebsiteURL:  user.WebsiteURL,
		Skills:      user.Skills,
		CreatedAt:   user.CreatedAt,
	}
}

// FromUserSummary converts a models.User to the compact summary form
func FromUserSummary(user *models.User) *UserSummary {
	if user == nil {
		return nil
	}
	return &UserSummary{
		ID:        user.ID,
		Name:      user.Name,
		AvatarURL: user.AvatarURL,
	}
}

// UpdateProfileRequest represents profile update data
type UpdateProfileRequest struct {
	Name        string   `json:"name" binding:"required,max=100"`
	Bio         *string  `json:"bio,omitempty" binding:"omitempty,max=1000"`
	GithubURL   *string  `json:"githubUrl,omitempty"`
	LinkedinURL *string  `json:"linkedinUrl,omitempty"`
	WebsiteURL  *string  `json:"websiteUrl,omitempty"`
	Skills      []string `json:"skills,omitempty"`
	Avatar      *string  `json:"avatar,omitempty"` // base64 data-URL
}

// ChangePasswordRequest represents a password change request
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

// UserFilterRequest represents user listing filters
type UserFilterRequest struct {
	Name  *string `form:"name,omitempty"`
	Skill *string `form:"skill,omitempty"`
	Page  int     `form:"page,default=1" binding:"min=1"`
	Limit int     `form:"limit,default=10" binding:"min=1,max=100"`
}
