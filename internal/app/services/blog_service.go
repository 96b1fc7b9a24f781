package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/devforum/devforum/internal/app/auth"
	"github.com/devforum/devforum/internal/app/models"
	"github.com/devforum/devforum/internal/app/models/dto"
	"github.com/devforum/devforum/internal/app/repositories"
	"github.com/devforum/devforum/internal/pkg/apperrors"
	"github.com/devforum/devforum/internal/pkg/filestorage"
	"github.com/devforum/devforum/internal/pkg/helpers"
)

type blogStore interface {
	Create(ctx context.Context, blog *models.Blog) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Blog, error)
	GetAll(ctx context.Context, filter repositories.ListFilter) ([]models.Blog, int64, error)
	Update(ctx context.Context, blog *models.Blog) error
	Delete(ctx context.Context, id int64) error
}

// BlogService handles blog business logic
type BlogService struct {
	blogs   blogStore
	likes   likeCounter
	storage filestorage.FileStorage
	logger  zerolog.Logger
}

// NewBlogService creates a new BlogService
func NewBlogService(blogs blogStore, likes likeCounter, storage filestorage.FileStorage, logger zerolog.Logger) *BlogService {
	return &BlogService{
		blogs:   blogs,
		likes:   likes,
		storage: storage,
		logger:  logger,
	}
}

// Create stores a new blog post. A missing excerpt defaults to the
// first 150 characters of the content, read time to words/200.
func (s *BlogService) Create(ctx context.Context, userID int64, req dto.CreateBlogRequest) (*dto.BlogResponse, error) {
	excerpt := ""
	if req.Excerpt != nil {
		excerpt = strings.TrimSpace(*req.Excerpt)
	}
	if excerpt == "" {
		excerpt = helpers.MakeExcerpt(req.Content)
	}

	blog := &models.Blog{
		Title:     strings.TrimSpace(req.Title),
		Content:   req.Content,
		Excerpt:   excerpt,
		Tags:      helpers.NormalizeTags(req.Tags),
		ReadTime:  helpers.EstimateReadTime(req.Content),
		CreatedBy: userID,
	}

	if req.CoverImage != nil && *req.CoverImage != "" {
		coverURL, err := s.storage.SaveDataURL(*req.CoverImage, "blogs")
		if err != nil {
			return nil, apperrors.NewValidationError("invalid cover image")
		}
		blog.CoverImageURL = &coverURL
	}

	id, err := s.blogs.Create(ctx, blog)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("blogID", id).Int64("userID", userID).Msg("Blog created")
	return s.GetByID(ctx, id)
}

// GetByID returns a blog post with its like count
func (s *BlogService) GetByID(ctx context.Context, id int64) (*dto.BlogResponse, error) {
	blog, err := s.blogs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	likes, err := s.likes.LikeCount(ctx, models.KindBlog, id)
	if err != nil {
		return nil, err
	}

	resp := dto.FromBlog(blog)
	resp.LikesCount = likes
	return &resp, nil
}

// List returns blog posts matching the filter with pagination
func (s *BlogService) List(ctx context.Context, req dto.ListFilterRequest) (*dto.ListResponse, error) {
	filter := toListFilter(req)

	blogs, total, err := s.blogs.GetAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(blogs))
	for i := range blogs {
		ids = append(ids, blogs[i].ID)
	}
	likeCounts, err := s.likes.LikeCounts(ctx, models.KindBlog, ids)
	if err != nil {
		return nil, err
	}

	items := make([]dto.BlogResponse, 0, len(blogs))
	for i := range blogs {
		item := dto.FromBlog(&blogs[i])
		item.LikesCount = likeCounts[item.ID]
		items = append(items, item)
	}

	return dto.NewListResponse(items, len(items), helpers.NewPaginationInfo(total, filter.Page, filter.Limit)), nil
}

// Update applies the provided fields to a blog post. Content changes
// recompute the read time, and the excerpt when none was set
// explicitly.
func (s *BlogService) Update(ctx context.Context, id, actorID int64, actorRole models.RoleType, req dto.UpdateBlogRequest) (*dto.BlogResponse, error) {
	blog, err := s.blogs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := auth.CanMutate(actorID, actorRole, blog.CreatedBy); err != nil {
		return nil, err
	}

	if req.Title != nil {
		blog.Title = strings.TrimSpace(*req.Title)
	}
	if req.Content != nil {
		blog.Content = *req.Content
		blog.ReadTime = helpers.EstimateReadTime(*req.Content)
		if req.Excerpt == nil {
			blog.Excerpt = helpers.MakeExcerpt(*req.Content)
		}
	}
	if req.Excerpt != nil {
		blog.Excerpt = strings.TrimSpace(*req.Excerpt)
	}
	if req.Tags != nil {
		blog.Tags = helpers.NormalizeTags(req.Tags)
	}
	if req.CoverImage != nil && *req.CoverImage != "" {
		coverURL, err := s.storage.SaveDataURL(*req.CoverImage, "blogs")
		if err != nil {
			return nil, apperrors.NewValidationError("invalid cover image")
		}
		blog.CoverImageURL = &coverURL
	}

	if err := s.blogs.Update(ctx, blog); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// Delete removes a blog post and its social records
func (s *BlogService) Delete(ctx context.Context, id, actorID int64, actorRole models.RoleType) error {
	blog, err := s.blogs.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := auth.CanMutate(actorID, actorRole, blog.CreatedBy); err != nil {
		return err
	}

	if err := s.blogs.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("blogID", id).Int64("actorID", actorID).Msg("Blog deleted")
	return nil
}
