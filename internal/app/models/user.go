package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID          int64     `json:"id" db:"id" example:"1"`
	Name        string    `json:"name" db:"name" example:"Jane Doe"`
	Email       string    `json:"email" db:"email" example:"jane@example.com"`
	Password    string    `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	RoleType    RoleType  `json:"roleType" db:"role_type" example:"MEMBER"`
	AvatarURL   *string   `json:"avatarUrl,omitempty" db:"avatar_url"`
	Bio         *string   `json:"bio,omitempty" db:"bio"`
	Skills      []string  `json:"skills" db:"skills"`
	GithubURL   *string   `json:"githubUrl,omitempty" db:"github_url"`
	LinkedinURL *string   `json:"linkedinUrl,omitempty" db:"linkedin_url"`
	WebsiteURL  *string   `json:"websiteUrl,omitempty" db:"website_url"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// RefreshToken defines a persisted refresh token based on the
// 'refresh_tokens' table
type RefreshToken struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Token     string    `json:"-" db:"token"`
	ExpiresAt time.Time `json:"expiresAt" db:"expires_at"`
	Revoked   bool      `json:"revoked" db:"revoked"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
