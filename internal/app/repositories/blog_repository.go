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

// BlogRepository handles blog database operations
type BlogRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewBlogRepository creates a new BlogRepository
func NewBlogRepository(database *db.PostgresDB) *BlogRepository {
	return &BlogRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var blogSelectColumns = []string{
	"b.id", "b.title", "b.content", "b.excerpt", "b.cover_image_url",
	"b.tags", "b.read_time",
	"b.created_by", "b.created_at", "b.updated_at",
	"u.name", "u.avatar_url",
}

func scanBlog(row pgx.Row, extra ...any) (*models.Blog, error) {
	var blog models.Blog
	var creator models.User

	dest := []any{
		&blog.ID, &blog.Title, &blog.Content, &blog.Excerpt, &blog.CoverImageURL,
		&blog.Tags, &blog.ReadTime,
		&blog.CreatedBy, &blog.CreatedAt, &blog.UpdatedAt,
		&creator.Name, &creator.AvatarURL,
	}
	dest = append(dest, extra...)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	creator.ID = blog.CreatedBy
	blog.Creator = &creator
	return &blog, nil
}

// Create inserts a new blog post and returns its id
func (r *BlogRepository) Create(ctx context.Context, blog *models.Blog) (int64, error) {
	now := time.Now()
	sql, args, err := r.sb.Insert("blogs").
		Columns("title", "content", "excerpt", "cover_image_url", "tags", "read_time",
			"created_by", "created_at", "updated_at").
		Values(blog.Title, blog.Content, blog.Excerpt, blog.CoverImageURL, blog.Tags,
			blog.ReadTime, blog.CreatedBy, now, now).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create blog query: %w", err)
	}

	var id int64
	if err := r.db.Pool.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error creating blog: %w", err)
	}

	return id, nil
}

// GetByID retrieves a blog post with its creator
func (r *BlogRepository) GetByID(ctx context.Context, id int64) (*models.Blog, error) {
	sql, args, err := r.sb.Select(blogSelectColumns...).
		From("blogs b").
		Join("users u ON u.id = b.created_by").
		Where(squirrel.Eq{"b.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get blog query: %w", err)
	}

	blog, err := scanBlog(r.db.Pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewResourceNotFoundError("blog not found")
		}
		return nil, fmt.Errorf("error retrieving blog: %w", err)
	}

	return blog, nil
}

// GetAll retrieves blog posts matching the filter with pagination
func (r *BlogRepository) GetAll(ctx context.Context, filter ListFilter) ([]models.Blog, int64, error) {
	builder := r.sb.Select(append(append([]string{}, blogSelectColumns...), "COUNT(*) OVER() AS total_count")...).
		From("blogs b").
		Join("users u ON u.id = b.created_by")

	builder = applyListFilter(builder, filter, "b", []string{"b.title", "b.content"})
	builder = builder.OrderBy(resolveSortOrder(filter.Sort, "b"))

	offset := uint64((filter.Page - 1) * filter.Limit)
	builder = builder.Limit(uint64(filter.Limit)).Offset(offset)

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list blogs query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing blogs: %w", err)
	}
	defer rows.Close()

	blogs := make([]models.Blog, 0)
	var total int64
	for rows.Next() {
		blog, err := scanBlog(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning blog row: %w", err)
		}
		blogs = append(blogs, *blog)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating blog rows: %w", err)
	}

	return blogs, total, nil
}

// Update persists the mutable fields of a blog post
func (r *BlogRepository) Update(ctx context.Context, blog *models.Blog) error {
	sql, args, err := r.sb.Update("blogs").
		Set("title", blog.Title).
		Set("content", blog.Content).
		Set("excerpt", blog.Excerpt).
		Set("cover_image_url", blog.CoverImageURL).
		Set("tags", blog.Tags).
		Set("read_time", blog.ReadTime).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": blog.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update blog query: %w", err)
	}

	cmdTag, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating blog: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError("blog not found")
	}

	return nil
}

// Delete removes a blog post together with its likes and comments in a
// single transaction.
func (r *BlogRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := deleteSocialRows(ctx, tx, models.KindBlog, id); err != nil {
			return err
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM blogs WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("error deleting blog: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.NewResourceNotFoundError("blog not found")
		}

		return nil
	})
}
