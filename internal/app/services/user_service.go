package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/devforum/devforum/internal/app/models"
	"github.com/devforum/devforum/internal/app/models/dto"
	"github.com/devforum/devforum/internal/pkg/apperrors"
	"github.com/devforum/devforum/internal/pkg/auth"
	"github.com/devforum/devforum/internal/pkg/filestorage"
	"github.com/devforum/devforum/internal/pkg/helpers"
)

type userStore interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	UpdateProfile(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
	GetAll(ctx context.Context, name, skill *string, page, limit int) ([]models.User, int64, error)
	GetContributionCounts(ctx context.Context, userID int64) (projects, blogs, questions int64, err error)
}

// UserService handles profile and account operations
type UserService struct {
	users   userStore
	storage filestorage.FileStorage
	logger  zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(users userStore, storage filestorage.FileStorage, logger zerolog.Logger) *UserService {
	return &UserService{
		users:   users,
		storage: storage,
		logger:  logger,
	}
}

// GetProfile returns the public profile of a user together with
// contribution counts.
func (s *UserService) GetProfile(ctx context.Context, userID int64) (*dto.ProfileResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	projects, blogs, questions, err := s.users.GetContributionCounts(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.ProfileResponse{
		UserResponse:   dto.FromUser(user),
		ProjectsCount:  projects,
		BlogsCount:     blogs,
		QuestionsCount: questions,
	}, nil
}

// UpdateProfile updates the caller's own profile fields
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, req dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Name = strings.TrimSpace(req.Name)
	user.Bio = req.Bio
	user.GithubURL = req.GithubURL
	user.LinkedinURL = req.LinkedinURL
	user.WebsiteURL = req.WebsiteURL
	if req.Skills != nil {
		user.Skills = helpers.NormalizeTags(req.Skills)
	}

	if req.Avatar != nil && *req.Avatar != "" {
		avatarURL, err := s.storage.SaveDataURL(*req.Avatar, "avatars")
		if err != nil {
			return nil, apperrors.NewValidationError("invalid avatar image")
		}
		user.AvatarURL = &avatarURL
	}

	if err := s.users.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userID", userID).Msg("Profile updated")

	resp := dto.FromUser(user)
	return &resp, nil
}

// ChangePassword re-verifies the current password and replaces it.
// Reusing the current password is rejected.
func (s *UserService) ChangePassword(ctx context.Context, userID int64, req dto.ChangePasswordRequest) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if !auth.CheckPassword(user.Password, req.CurrentPassword) {
		return apperrors.ErrInvalidCredentials
	}

	if auth.CheckPassword(user.Password, req.NewPassword) {
		return apperrors.NewValidationError("new password must differ from the current one")
	}

	passwordHash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	if err := s.users.UpdatePassword(ctx, userID, passwordHash); err != nil {
		return err
	}

	s.logger.Info().Int64("userID", userID).Msg("Password changed")
	return nil
}

// GetUsers returns a paginated user listing with optional name and
// skill filters.
func (s *UserService) GetUsers(ctx context.Context, filter dto.UserFilterRequest) (*dto.ListResponse, error) {
	page := filter.Page
	if page < 1 {
		page = helpers.DefaultPage
	}
	limit := filter.Limit
	if limit <= 0 || limit > helpers.MaxPageSize {
		limit = helpers.DefaultPageSize
	}

	users, total, err := s.users.GetAll(ctx, filter.Name, filter.Skill, page, limit)
	if err != nil {
		return nil, err
	}

	items := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		items = append(items, dto.FromUser(&users[i]))
	}

	return dto.NewListResponse(items, len(items), helpers.NewPaginationInfo(total, page, limit)), nil
}
