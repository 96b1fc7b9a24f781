package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/devforum/devforum/internal/app/models"
	"github.com/devforum/devforum/internal/db"
	"github.com/devforum/devforum/internal/pkg/apperrors"
)

// ProjectRepository handles project database operations
type ProjectRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(database *db.PostgresDB) *ProjectRepository {
	return &ProjectRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var projectSelectColumns = []string{
	"p.id", "p.title", "p.description", "p.tech_stack", "p.tags", "p.difficulty",
	"p.github_link", "p.live_link", "p.image_url",
	"p.created_by", "p.created_at", "p.updated_at",
	"u.name", "u.avatar_url",
}

func scanProject(row pgx.Row, extra ...any) (*models.Project, error) {
	var project models.Project
	var creator models.User

	dest := []any{
		&project.ID, &project.Title, &project.Description, &project.TechStack,
		&project.Tags, &project.Difficulty, &project.GithubLink, &project.LiveLink,
		&project.ImageURL, &project.CreatedBy, &project.CreatedAt, &project.UpdatedAt,
		&creator.Name, &creator.AvatarURL,
	}
	dest = append(dest, extra...)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	creator.ID = project.CreatedBy
	project.Creator = &creator
	return &project, nil
}

// Create inserts a new project and returns its id
func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) (int64, error) {
	now := time.Now()
	sql, args, err := r.sb.Insert("projects").
		Columns("title", "description", "tech_stack", "tags", "difficulty",
			"github_link", "live_link", "image_url", "created_by", "created_at", "updated_at").
		Values(project.Title, project.Description, project.TechStack, project.Tags,
			project.Difficulty, project.GithubLink, project.LiveLink, project.ImageURL,
			project.CreatedBy, now, now).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create project query: %w", err)
	}

	var id int64
	if err := r.db.Pool.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error creating project: %w", err)
	}

	return id, nil
}

// GetByID retrieves a project with its creator
func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	sql, args, err := r.sb.Select(projectSelectColumns...).
		From("projects p").
		Join("users u ON u.id = p.created_by").
		Where(squirrel.Eq{"p.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get project query: %w", err)
	}

	project, err := scanProject(r.db.Pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewResourceNotFoundError("project not found")
		}
		return nil, fmt.Errorf("error retrieving project: %w", err)
	}

	return project, nil
}

// GetAll retrieves projects matching the filter with pagination
func (r *ProjectRepository) GetAll(ctx context.Context, filter ListFilter) ([]models.Project, int64, error) {
	builder := r.sb.Select(append(append([]string{}, projectSelectColumns...), "COUNT(*) OVER() AS total_count")...).
		From("projects p").
		Join("users u ON u.id = p.created_by")

	builder = applyListFilter(builder, filter, "p", []string{"p.title", "p.description"})
	builder = builder.OrderBy(resolveSortOrder(filter.Sort, "p"))

	offset := uint64((filter.Page - 1) * filter.Limit)
	builder = builder.Limit(uint64(filter.Limit)).Offset(offset)

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list projects query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing projects: %w", err)
	}
	defer rows.Close()

	projects := make([]models.Project, 0)
	var total int64
	for rows.Next() {
		project, err := scanProject(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning project row: %w", err)
		}
		projects = append(projects, *project)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating project rows: %w", err)
	}

	return projects, total, nil
}

// Update persists the mutable fields of a project. The creator is
// never touched.
func (r *ProjectRepository) Update(ctx context.Context, project *models.Project) error {
	sql, args, err := r.sb.Update("projects").
		Set("title", project.Title).
		Set("description", project.Description).
		Set("tech_stack", project.TechStack).
		Set("tags", project.Tags).
		Set("difficulty", project.Difficulty).
		Set("github_link", project.GithubLink).
		Set("live_link", project.LiveLink).
		Set("image_url", project.ImageURL).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": project.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update project query: %w", err)
	}

	cmdTag, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating project: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError("project not found")
	}

	return nil
}

// Delete removes a project together with its likes and comments in a
// single transaction.
func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := deleteSocialRows(ctx, tx, models.KindProject, id); err != nil {
			return err
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("error deleting project: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.NewResourceNotFoundError("project not found")
		}

		return nil
	})
}
