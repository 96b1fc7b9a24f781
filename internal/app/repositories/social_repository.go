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

// SocialRepository handles likes and comments for every resource kind.
// Rows are addressed by (resource_kind, resource_id).
type SocialRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewSocialRepository creates a new SocialRepository
func NewSocialRepository(database *db.PostgresDB) *SocialRepository {
	return &SocialRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// ToggleLike flips the like membership of a user on a resource and
// returns the new state and count. The composite primary key on the
// likes table keeps concurrent toggles from ever producing duplicates.
func (r *SocialRepository) ToggleLike(ctx context.Context, kind models.ResourceKind, resourceID, userID int64) (bool, int64, error) {
	cmdTag, err := r.db.Pool.Exec(ctx, `
		INSERT INTO likes (resource_kind, resource_id, user_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (resource_kind, resource_id, user_id) DO NOTHING`,
		kind, resourceID, userID, time.Now())
	if err != nil {
		return false, 0, fmt.Errorf("error inserting like: %w", err)
	}

	liked := cmdTag.RowsAffected() > 0
	if !liked {
		// Row already existed, this toggle removes it
		if _, err := r.db.Pool.Exec(ctx, `
			DELETE FROM likes
			WHERE resource_kind = $1 AND resource_id = $2 AND user_id = $3`,
			kind, resourceID, userID); err != nil {
			return false, 0, fmt.Errorf("error removing like: %w", err)
		}
	}

	count, err := r.LikeCount(ctx, kind, resourceID)
	if err != nil {
		return liked, 0, err
	}

	return liked, count, nil
}

// LikeCount returns the number of likes on a resource
func (r *SocialRepository) LikeCount(ctx context.Context, kind models.ResourceKind, resourceID int64) (int64, error) {
	var count int64
	err := r.db.Pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM likes
		WHERE resource_kind = $1 AND resource_id = $2`,
		kind, resourceID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting likes: %w", err)
	}
	return count, nil
}

// LikeCounts returns like counts for a batch of resources of one kind
func (r *SocialRepository) LikeCounts(ctx context.Context, kind models.ResourceKind, resourceIDs []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64, len(resourceIDs))
	if len(resourceIDs) == 0 {
		return counts, nil
	}

	rows, err := r.db.Pool.Query(ctx, `
		SELECT resource_id, COUNT(*) FROM likes
		WHERE resource_kind = $1 AND resource_id = ANY($2)
		GROUP BY resource_id`,
		kind, resourceIDs)
	if err != nil {
		return nil, fmt.Errorf("error counting likes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, count int64
		if err := rows.Scan(&id, &count); err != nil {
			return nil, fmt.Errorf("error scanning like count row: %w", err)
		}
		counts[id] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating like count rows: %w", err)
	}

	return counts, nil
}

// IsLiked reports whether a user has liked a resource
func (r *SocialRepository) IsLiked(ctx context.Context, kind models.ResourceKind, resourceID, userID int64) (bool, error) {
	var liked bool
	err := r.db.Pool.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM likes
			WHERE resource_kind = $1 AND resource_id = $2 AND user_id = $3)`,
		kind, resourceID, userID).Scan(&liked)
	if err != nil {
		return false, fmt.Errorf("error checking like: %w", err)
	}
	return liked, nil
}

// AddComment appends a comment to a resource and returns it with the
// server-assigned id and timestamp.
func (r *SocialRepository) AddComment(ctx context.Context, kind models.ResourceKind, resourceID, authorID int64, body string) (*models.Comment, error) {
	comment := &models.Comment{
		Kind:       kind,
		ResourceID: resourceID,
		AuthorID:   authorID,
		Body:       body,
	}

	err := r.db.Pool.QueryRow(ctx, `
		INSERT INTO comments (resource_kind, resource_id, author_id, body, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at`,
		kind, resourceID, authorID, body).Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("error creating comment: %w", err)
	}

	return comment, nil
}

// GetComments returns the comments on a resource in append order with
// author name and avatar joined in.
func (r *SocialRepository) GetComments(ctx context.Context, kind models.ResourceKind, resourceID int64) ([]models.Comment, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT c.id, c.resource_kind, c.resource_id, c.author_id, c.body, c.created_at,
			u.name, u.avatar_url
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.resource_kind = $1 AND c.resource_id = $2
		ORDER BY c.id`,
		kind, resourceID)
	if err != nil {
		return nil, fmt.Errorf("error listing comments: %w", err)
	}
	defer rows.Close()

	comments := make([]models.Comment, 0)
	for rows.Next() {
		var comment models.Comment
		err := rows.Scan(
			&comment.ID, &comment.Kind, &comment.ResourceID, &comment.AuthorID,
			&comment.Body, &comment.CreatedAt,
			&comment.AuthorName, &comment.AuthorAvatar,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning comment row: %w", err)
		}
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comment rows: %w", err)
	}

	return comments, nil
}

// GetCommentByID retrieves a single comment scoped to its resource
func (r *SocialRepository) GetCommentByID(ctx context.Context, kind models.ResourceKind, resourceID, commentID int64) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.Pool.QueryRow(ctx, `
		SELECT id, resource_kind, resource_id, author_id, body, created_at
		FROM comments
		WHERE id = $1 AND resource_kind = $2 AND resource_id = $3`,
		commentID, kind, resourceID).Scan(
		&comment.ID, &comment.Kind, &comment.ResourceID, &comment.AuthorID,
		&comment.Body, &comment.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewResourceNotFoundError("comment not found")
		}
		return nil, fmt.Errorf("error retrieving comment: %w", err)
	}

	return &comment, nil
}

// DeleteComment removes a single comment by id
func (r *SocialRepository) DeleteComment(ctx context.Context, commentID int64) error {
	cmdTag, err := r.db.Pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, commentID)
	if err != nil {
		return fmt.Errorf("error deleting comment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError("comment not found")
	}
	return nil
}

// DeleteForResource removes all likes and comments of a resource
// within the caller's transaction. Used by resource deletion.
func (r *SocialRepository) DeleteForResource(ctx context.Context, tx pgx.Tx, kind models.ResourceKind, resourceID int64) error {
	return deleteSocialRows(ctx, tx, kind, resourceID)
}

func deleteSocialRows(ctx context.Context, tx pgx.Tx, kind models.ResourceKind, resourceID int64) error {
	if _, err := tx.Exec(ctx, `
		DELETE FROM likes WHERE resource_kind = $1 AND resource_id = $2`,
		kind, resourceID); err != nil {
		return fmt.Errorf("error deleting resource likes: %w", err)
	}

	if _, err := tx.Exec(ctx, `
		DELETE FROM comments WHERE resource_kind = $1 AND resource_id = $2`,
		kind, resourceID); err != nil {
		return fmt.Errorf("error deleting resource comments: %w", err)
	}

	return nil
}
