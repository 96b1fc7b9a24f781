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

type projectStore interface {
	Create(ctx context.Context, project *models.Project) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Project, error)
	GetAll(ctx context.Context, filter repositories.ListFilter) ([]models.Project, int64, error)
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id int64) error
}

// ProjectService handles project business logic
type ProjectService struct {
	projects projectStore
	likes    likeCounter
	storage  filestorage.FileStorage
	logger   zerolog.Logger
}

// NewProjectService creates a new ProjectService
func NewProjectService(projects projectStore, likes likeCounter, storage filestorage.FileStorage, logger zerolog.Logger) *ProjectService {
	return &ProjectService{
		projects: projects,
		likes:    likes,
		storage:  storage,
		logger:   logger,
	}
}

// Create stores a new project for the caller
func (s *ProjectService) Create(ctx context.Context, userID int64, req dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	difficulty := models.Difficulty(req.Difficulty)
	if difficulty == "" {
		difficulty = models.DifficultyBeginner
	}

	project := &models.Project{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		TechStack:   helpers.NormalizeTags(req.TechStack),
		Tags:        helpers.NormalizeTags(req.Tags),
		Difficulty:  difficulty,
		GithubLink:  req.GithubLink,
		LiveLink:    req.LiveLink,
		CreatedBy:   userID,
	}

	if req.Image != nil && *req.Image != "" {
		imageURL, err := s.storage.SaveDataURL(*req.Image, "projects")
		if err != nil {
			return nil, apperrors.NewValidationError("invalid project image")
		}
		project.ImageURL = &imageURL
	}

	id, err := s.projects.Create(ctx, project)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("projectID", id).Int64("userID", userID).Msg("Project created")
	return s.GetByID(ctx, id)
}

// GetByID returns a project with its like count
func (s *ProjectService) GetByID(ctx context.Context, id int64) (*dto.ProjectResponse, error) {
	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	likes, err := s.likes.LikeCount(ctx, models.KindProject, id)
	if err != nil {
		return nil, err
	}

	resp := dto.FromProject(project)
	resp.LikesCount = likes
	return &resp, nil
}

// List returns projects matching the filter with pagination
func (s *ProjectService) List(ctx context.Context, req dto.ListFilterRequest) (*dto.ListResponse, error) {
	filter := toListFilter(req)

	projects, total, err := s.projects.GetAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(projects))
	for i := range projects {
		ids = append(ids, projects[i].ID)
	}
	likeCounts, err := s.likes.LikeCounts(ctx, models.KindProject, ids)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ProjectResponse, 0, len(projects))
	for i := range projects {
		item := dto.FromProject(&projects[i])
		item.LikesCount = likeCounts[item.ID]
		items = append(items, item)
	}

	return dto.NewListResponse(items, len(items), helpers.NewPaginationInfo(total, filter.Page, filter.Limit)), nil
}

// Update applies the provided fields to a project. Only the creator or
// an admin may update; the creator reference never changes.
func (s *ProjectService) Update(ctx context.Context, id, actorID int64, actorRole models.RoleType, req dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := auth.CanMutate(actorID, actorRole, project.CreatedBy); err != nil {
		return nil, err
	}

	if req.Title != nil {
		project.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.TechStack != nil {
		project.TechStack = helpers.NormalizeTags(req.TechStack)
	}
	if req.Tags != nil {
		project.Tags = helpers.NormalizeTags(req.Tags)
	}
	if req.Difficulty != nil {
		project.Difficulty = models.Difficulty(*req.Difficulty)
	}
	if req.GithubLink != nil {
		project.GithubLink = req.GithubLink
	}
	if req.LiveLink != nil {
		project.LiveLink = req.LiveLink
	}
	if req.Image != nil && *req.Image != "" {
		imageURL, err := s.storage.SaveDataURL(*req.Image, "projects")
		if err != nil {
			return nil, apperrors.NewValidationError("invalid project image")
		}
		project.ImageURL = &imageURL
	}

	if err := s.projects.Update(ctx, project); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// Delete removes a project and its social records. Only the creator or
// an admin may delete.
func (s *ProjectService) Delete(ctx context.Context, id, actorID int64, actorRole models.RoleType) error {
	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := auth.CanMutate(actorID, actorRole, project.CreatedBy); err != nil {
		return err
	}

	if err := s.projects.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("projectID", id).Int64("actorID", actorID).Msg("Project deleted")
	return nil
}
