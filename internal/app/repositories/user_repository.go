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
	"github.com/devforum/devforum/internal/pkg/dberrors"
	"github.com/devforum/devforum/internal/pkg/logger"
)

// userColumns are the columns scanned into a models.User
var userColumns = []string{
	"id", "name", "email", "password", "role_type",
	"avatar_url", "bio", "github_url", "linkedin_url", "website_url",
	"skills", "created_at", "updated_at",
}

// UserRepository handles user database operations
type UserRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(database *db.PostgresDB) *UserRepository {
	return &UserRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.Password, &user.RoleType,
		&user.AvatarURL, &user.Bio, &user.GithubURL, &user.LinkedinURL, &user.WebsiteURL,
		&user.Skills, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user and returns its id
func (r *UserRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	now := time.Now()
	sql, args, err := r.sb.Insert("users").
		Columns("name", "email", "password", "role_type",
			"avatar_url", "bio", "github_url", "linkedin_url", "website_url",
			"skills", "created_at", "updated_at").
		Values(user.Name, user.Email, user.Password, user.RoleType,
			user.AvatarURL, user.Bio, user.GithubURL, user.LinkedinURL, user.WebsiteURL,
			user.Skills, now, now).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create user query: %w", err)
	}

	var id int64
	if err := r.db.Pool.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Str("email", user.Email).Msg("Error creating user")
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	return id, nil
}

// GetByID retrieves a user by id
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	sql, args, err := r.sb.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	user, err := scanUser(r.db.Pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	sql, args, err := r.sb.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user by email query: %w", err)
	}

	user, err := scanUser(r.db.Pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user by email: %w", err)
	}

	return user, nil
}

// EmailExists reports whether an account with the given email exists
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.Pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking email existence: %w", err)
	}
	return exists, nil
}

// UpdateProfile updates the mutable profile fields of a user
func (r *UserRepository) UpdateProfile(ctx context.Context, user *models.User) error {
	sql, args, err := r.sb.Update("users").
		Set("name", user.Name).
		Set("avatar_url", user.AvatarURL).
		Set("bio", user.Bio).
		Set("github_url", user.GithubURL).
		Set("linkedin_url", user.LinkedinURL).
		Set("website_url", user.WebsiteURL).
		Set("skills", user.Skills).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": user.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update profile query: %w", err)
	}

	cmdTag, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating profile: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// UpdatePassword replaces the stored password hash
func (r *UserRepository) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	sql, args, err := r.sb.Update("users").
		Set("password", passwordHash).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update password query: %w", err)
	}

	cmdTag, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating password: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// GetAll retrieves users with optional name/skill filters and pagination
func (r *UserRepository) GetAll(ctx context.Context, name, skill *string, page, limit int) ([]models.User, int64, error) {
	builder := r.sb.Select(append(append([]string{}, userColumns...), "COUNT(*) OVER() AS total_count")...).
		From("users")

	if name != nil && *name != "" {
		builder = builder.Where(squirrel.ILike{"name": "%" + *name + "%"})
	}
	if skill != nil && *skill != "" {
		builder = builder.Where("? = ANY(skills)", *skill)
	}

	offset := uint64((page - 1) * limit)
	builder = builder.OrderBy("id").Limit(uint64(limit)).Offset(offset)

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list users query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing users: %w", err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	var total int64
	for rows.Next() {
		var user models.User
		err := rows.Scan(
			&user.ID, &user.Name, &user.Email, &user.Password, &user.RoleType,
			&user.AvatarURL, &user.Bio, &user.GithubURL, &user.LinkedinURL, &user.WebsiteURL,
			&user.Skills, &user.CreatedAt, &user.UpdatedAt,
			&total,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating user rows: %w", err)
	}

	return users, total, nil
}

// GetContributionCounts returns the number of projects, blogs and
// questions created by a user.
func (r *UserRepository) GetContributionCounts(ctx context.Context, userID int64) (projects, blogs, questions int64, err error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM projects WHERE created_by = $1),
			(SELECT COUNT(*) FROM blogs WHERE created_by = $1),
			(SELECT COUNT(*) FROM questions WHERE created_by = $1)`

	if err = r.db.Pool.QueryRow(ctx, query, userID).Scan(&projects, &blogs, &questions); err != nil {
		return 0, 0, 0, fmt.Errorf("error counting contributions: %w", err)
	}

	return projects, blogs, questions, nil
}
