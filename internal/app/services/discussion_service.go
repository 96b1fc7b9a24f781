package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/devforum/devforum/internal/app/auth"
	"github.com/devforum/devforum/internal/app/models"
	"github.com/devforum/devforum/internal/app/models/dto"
	"github.com/devforum/devforum/internal/app/repositories"
	"github.com/devforum/devforum/internal/pkg/helpers"
)

type discussionStore interface {
	Create(ctx context.Context, discussion *models.Discussion) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Discussion, error)
	GetAll(ctx context.Context, filter repositories.ListFilter) ([]models.Discussion, int64, error)
	Update(ctx context.Context, discussion *models.Discussion) error
	Delete(ctx context.Context, id int64) error
}

// DiscussionService handles discussion business logic
type DiscussionService struct {
	discussions discussionStore
	likes       likeCounter
	logger      zerolog.Logger
}

// NewDiscussionService creates a new DiscussionService
func NewDiscussionService(discussions discussionStore, likes likeCounter, logger zerolog.Logger) *DiscussionService {
	return &DiscussionService{
		discussions: discussions,
		likes:       likes,
		logger:      logger,
	}
}

// Create stores a new discussion thread
func (s *DiscussionService) Create(ctx context.Context, userID int64, req dto.CreateDiscussionRequest) (*dto.DiscussionResponse, error) {
	discussion := &models.Discussion{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Tags:        helpers.NormalizeTags(req.Tags),
		CreatedBy:   userID,
	}

	id, err := s.discussions.Create(ctx, discussion)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("discussionID", id).Int64("userID", userID).Msg("Discussion created")
	return s.GetByID(ctx, id)
}

// GetByID returns a discussion with its like count
func (s *DiscussionService) GetByID(ctx context.Context, id int64) (*dto.DiscussionResponse, error) {
	discussion, err := s.discussions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	likes, err := s.likes.LikeCount(ctx, models.KindDiscussion, id)
	if err != nil {
		return nil, err
	}

	resp := dto.FromDiscussion(discussion)
	resp.LikesCount = likes
	return &resp, nil
}

// List returns discussions matching the filter with pagination
func (s *DiscussionService) List(ctx context.Context, req dto.ListFilterRequest) (*dto.ListResponse, error) {
	filter := toListFilter(req)

	discussions, total, err := s.discussions.GetAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(discussions))
	for i := range discussions {
		ids = append(ids, discussions[i].ID)
	}
	likeCounts, err := s.likes.LikeCounts(ctx, models.KindDiscussion, ids)
	if err != nil {
		return nil, err
	}

	items := make([]dto.DiscussionResponse, 0, len(discussions))
	for i := range discussions {
		item := dto.FromDiscussion(&discussions[i])
		item.LikesCount = likeCounts[item.ID]
		items = append(items, item)
	}

	return dto.NewListResponse(items, len(items), helpers.NewPaginationInfo(total, filter.Page, filter.Limit)), nil
}

// Update applies the provided fields to a discussion
func (s *DiscussionService) Update(ctx context.Context, id, actorID int64, actorRole models.RoleType, req dto.UpdateDiscussionRequest) (*dto.DiscussionResponse, error) {
	discussion, err := s.discussions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := auth.CanMutate(actorID, actorRole, discussion.CreatedBy); err != nil {
		return nil, err
	}

	if req.Title != nil {
		discussion.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		discussion.Description = *req.Description
	}
	if req.Tags != nil {
		discussion.Tags = helpers.NormalizeTags(req.Tags)
	}

	if err := s.discussions.Update(ctx, discussion); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// Delete removes a discussion and its social records
func (s *DiscussionService) Delete(ctx context.Context, id, actorID int64, actorRole models.RoleType) error {
	discussion, err := s.discussions.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := auth.CanMutate(actorID, actorRole, discussion.CreatedBy); err != nil {
		return err
	}

	if err := s.discussions.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("discussionID", id).Int64("actorID", actorID).Msg("Discussion deleted")
	return nil
}
