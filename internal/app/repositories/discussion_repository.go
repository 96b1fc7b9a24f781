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

// DiscussionRepository handles discussion database operations
type DiscussionRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewDiscussionRepository creates a new DiscussionRepository
func NewDiscussionRepository(database *db.PostgresDB) *DiscussionRepository {
	return &DiscussionRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var discussionSelectColumns = []string{
	"d.id", "d.title", "d.description", "d.tags",
	"d.created_by", "d.created_at", "d.updated_at",
	"u.name", "u.avatar_url",
}

func scanDiscussion(row pgx.Row, extra ...any) (*models.Discussion, error) {
	var discussion models.Discussion
	var creator models.User

	dest := []any{
		&discussion.ID, &discussion.Title, &discussion.Description, &discussion.Tags,
		&discussion.CreatedBy, &discussion.CreatedAt, &discussion.UpdatedAt,
		&creator.Name, &creator.AvatarURL,
	}
	dest = append(dest, extra...)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	creator.ID = discussion.CreatedBy
	discussion.Creator = &creator
	return &discussion, nil
}

// Create inserts a new discussion and returns its id
func (r *DiscussionRepository) Create(ctx context.Context, discussion *models.Discussion) (int64, error) {
	now := time.Now()
	sql, args, err := r.sb.Insert("discussions").
		Columns("title", "description", "tags", "created_by", "created_at", "updated_at").
		Values(discussion.Title, discussion.Description, discussion.Tags,
			discussion.CreatedBy, now, now).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create discussion query: %w", err)
	}

	var id int64
	if err := r.db.Pool.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error creating discussion: %w", err)
	}

	return id, nil
}

// GetByID retrieves a discussion with its author
func (r *DiscussionRepository) GetByID(ctx context.Context, id int64) (*models.Discussion, error) {
	sql, args, err := r.sb.Select(discussionSelectColumns...).
		From("discussions d").
		Join("users u ON u.id = d.created_by").
		Where(squirrel.Eq{"d.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get discussion query: %w", err)
	}

	discussion, err := scanDiscussion(r.db.Pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewResourceNotFoundError("discussion not found")
		}
		return nil, fmt.Errorf("error retrieving discussion: %w", err)
	}

	return discussion, nil
}

// GetAll retrieves discussions matching the filter with pagination
func (r *DiscussionRepository) GetAll(ctx context.Context, filter ListFilter) ([]models.Discussion, int64, error) {
	builder := r.sb.Select(append(append([]string{}, discussionSelectColumns...), "COUNT(*) OVER() AS total_count")...).
		From("discussions d").
		Join("users u ON u.id = d.created_by")

	builder = applyListFilter(builder, filter, "d", []string{"d.title", "d.description"})
	builder = builder.OrderBy(resolveSortOrder(filter.Sort, "d"))

	offset := uint64((filter.Page - 1) * filter.Limit)
	builder = builder.Limit(uint64(filter.Limit)).Offset(offset)

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list discussions query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing discussions: %w", err)
	}
	defer rows.Close()

	discussions := make([]models.Discussion, 0)
	var total int64
	for rows.Next() {
		discussion, err := scanDiscussion(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning discussion row: %w", err)
		}
		discussions = append(discussions, *discussion)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating discussion rows: %w", err)
	}

	return discussions, total, nil
}

// Update persists the mutable fields of a discussion
func (r *DiscussionRepository) Update(ctx context.Context, discussion *models.Discussion) error {
	sql, args, err := r.sb.Update("discussions").
		Set("title", discussion.Title).
		Set("description", discussion.Description).
		Set("tags", discussion.Tags).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": discussion.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update discussion query: %w", err)
	}

	cmdTag, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating discussion: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError("discussion not found")
	}

	return nil
}

// Delete removes a discussion together with its likes and comments in
// a single transaction.
func (r *DiscussionRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := deleteSocialRows(ctx, tx, models.KindDiscussion, id); err != nil {
			return err
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM discussions WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("error deleting discussion: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.NewResourceNotFoundError("discussion not found")
		}

		return nil
	})
}
