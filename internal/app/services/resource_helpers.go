package services

import (
	"context"

	"github.com/devforum/devforum/internal/app/models"
	"github.com/devforum/devforum/internal/app/models/dto"
	"github.com/devforum/devforum/internal/app/repositories"
	"github.com/devforum/devforum/internal/pkg/helpers"
)

// likeCounter is the slice of the social layer the resource services
// need for attaching like counts to responses.
type likeCounter interface {
	LikeCount(ctx context.Context, kind models.ResourceKind, resourceID int64) (int64, error)
	LikeCounts(ctx context.Context, kind models.ResourceKind, resourceIDs []int64) (map[int64]int64, error)
}

// toListFilter converts the shared query parameters into a repository
// filter with page and limit clamped to their bounds.
func toListFilter(req dto.ListFilterRequest) repositories.ListFilter {
	page := req.Page
	if page < 1 {
		page = helpers.DefaultPage
	}
	limit := req.Limit
	if limit <= 0 || limit > helpers.MaxPageSize {
		limit = helpers.DefaultPageSize
	}

	var tags []string
	if req.Tags != nil {
		tags = helpers.SplitTagsParam(*req.Tags)
	}

	return repositories.ListFilter{
		Search:    req.Search,
		Tags:      tags,
		CreatorID: req.User,
		Sort:      req.Sort,
		Page:      page,
		Limit:     limit,
	}
}
