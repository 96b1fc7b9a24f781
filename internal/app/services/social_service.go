package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/devforum/devforum/internal/app/auth"
	"github.com/devforum/devforum/internal/app/models"
	"github.com/devforum/devforum/internal/app/models/dto"
	"github.com/devforum/devforum/internal/pkg/apperrors"
)

type socialStore interface {
	ToggleLike(ctx context.Context, kind models.ResourceKind, resourceID, userID int64) (bool, int64, error)
	AddComment(ctx context.Context, kind models.ResourceKind, resourceID, authorID int64, body string) (*models.Comment, error)
	GetComments(ctx context.Context, kind models.ResourceKind, resourceID int64) ([]models.Comment, error)
	GetCommentByID(ctx context.Context, kind models.ResourceKind, resourceID, commentID int64) (*models.Comment, error)
	DeleteComment(ctx context.Context, commentID int64) error
}

// ResourceChecker reports whether a resource of one kind exists. It
// returns the kind's not-found error when it does not.
type ResourceChecker func(ctx context.Context, id int64) error

// SocialService handles the like and comment operations shared by all
// resource kinds.
type SocialService struct {
	social   socialStore
	checkers map[models.ResourceKind]ResourceChecker
	logger   zerolog.Logger
}

// NewSocialService creates a new SocialService
func NewSocialService(social socialStore, checkers map[models.ResourceKind]ResourceChecker, logger zerolog.Logger) *SocialService {
	return &SocialService{
		social:   social,
		checkers: checkers,
		logger:   logger,
	}
}

func (s *SocialService) checkResource(ctx context.Context, kind models.ResourceKind, resourceID int64) error {
	checker, ok := s.checkers[kind]
	if !ok {
		return apperrors.NewBadRequestError("unknown resource kind")
	}
	return checker(ctx, resourceID)
}

// ToggleLike flips the caller's membership in the like set of a
// resource. Liking twice is the same as not liking at all.
func (s *SocialService) ToggleLike(ctx context.Context, kind models.ResourceKind, resourceID, userID int64) (bool, int64, error) {
	if err := s.checkResource(ctx, kind, resourceID); err != nil {
		return false, 0, err
	}

	liked, count, err := s.social.ToggleLike(ctx, kind, resourceID, userID)
	if err != nil {
		return false, 0, err
	}

	s.logger.Debug().Str("kind", string(kind)).Int64("resourceID", resourceID).
		Int64("userID", userID).Bool("liked", liked).Msg("Like toggled")
	return liked, count, nil
}

// GetComments returns the comments of a resource in append order
func (s *SocialService) GetComments(ctx context.Context, kind models.ResourceKind, resourceID int64) ([]dto.CommentResponse, error) {
	if err := s.checkResource(ctx, kind, resourceID); err != nil {
		return nil, err
	}

	comments, err := s.social.GetComments(ctx, kind, resourceID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		responses = append(responses, dto.FromComment(&comments[i]))
	}
	return responses, nil
}

// AddComment appends a comment to a resource
func (s *SocialService) AddComment(ctx context.Context, kind models.ResourceKind, resourceID, authorID int64, text string) (*dto.CommentResponse, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperrors.NewValidationError("comment text cannot be empty")
	}

	if err := s.checkResource(ctx, kind, resourceID); err != nil {
		return nil, err
	}

	comment, err := s.social.AddComment(ctx, kind, resourceID, authorID, text)
	if err != nil {
		return nil, err
	}

	resp := dto.FromComment(comment)
	return &resp, nil
}

// DeleteComment removes a comment. Only its author or an admin may do
// so; the remaining comments keep their order.
func (s *SocialService) DeleteComment(ctx context.Context, kind models.ResourceKind, resourceID, commentID, actorID int64, actorRole models.RoleType) error {
	comment, err := s.social.GetCommentByID(ctx, kind, resourceID, commentID)
	if err != nil {
		return err
	}

	if err := auth.CanMutate(actorID, actorRole, comment.AuthorID); err != nil {
		return err
	}

	return s.social.DeleteComment(ctx, commentID)
}
