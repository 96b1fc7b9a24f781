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

// QuestionRepository handles question and answer database operations
type QuestionRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewQuestionRepository creates a new QuestionRepository
func NewQuestionRepository(database *db.PostgresDB) *QuestionRepository {
	return &QuestionRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var questionSelectColumns = []string{
	"q.id", "q.title", "q.content", "q.tags", "q.views",
	"q.created_by", "q.created_at", "q.updated_at",
	"u.name", "u.avatar_url",
}

func scanQuestion(row pgx.Row, extra ...any) (*models.Question, error) {
	var question models.Question
	var creator models.User

	dest := []any{
		&question.ID, &question.Title, &question.Content, &question.Tags, &question.Views,
		&question.CreatedBy, &question.CreatedAt, &question.UpdatedAt,
		&creator.Name, &creator.AvatarURL,
	}
	dest = append(dest, extra...)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	creator.ID = question.CreatedBy
	question.Creator = &creator
	return &question, nil
}

// Create inserts a new question and returns its id
func (r *QuestionRepository) Create(ctx context.Context, question *models.Question) (int64, error) {
	now := time.Now()
	sql, args, err := r.sb.Insert("questions").
		Columns("title", "content", "tags", "views", "created_by", "created_at", "updated_at").
		Values(question.Title, question.Content, question.Tags, 0, question.CreatedBy, now, now).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create question query: %w", err)
	}

	var id int64
	if err := r.db.Pool.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error creating question: %w", err)
	}

	return id, nil
}

// GetByID retrieves a question with its creator
func (r *QuestionRepository) GetByID(ctx context.Context, id int64) (*models.Question, error) {
	sql, args, err := r.sb.Select(questionSelectColumns...).
		From("questions q").
		Join("users u ON u.id = q.created_by").
		Where(squirrel.Eq{"q.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get question query: %w", err)
	}

	question, err := scanQuestion(r.db.Pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewResourceNotFoundError("question not found")
		}
		return nil, fmt.Errorf("error retrieving question: %w", err)
	}

	return question, nil
}

// IncrementViews bumps the view counter atomically
func (r *QuestionRepository) IncrementViews(ctx context.Context, id int64) error {
	if _, err := r.db.Pool.Exec(ctx,
		`UPDATE questions SET views = views + 1 WHERE id = $1`, id); err != nil {
		return fmt.Errorf("error incrementing question views: %w", err)
	}
	return nil
}

// GetAll retrieves questions matching the filter with pagination
func (r *QuestionRepository) GetAll(ctx context.Context, filter QuestionFilter) ([]models.Question, int64, error) {
	builder := r.sb.Select(append(append([]string{}, questionSelectColumns...), "COUNT(*) OVER() AS total_count")...).
		From("questions q").
		Join("users u ON u.id = q.created_by")

	builder = applyListFilter(builder, filter.ListFilter, "q", []string{"q.title", "q.content"})

	if filter.Answered != nil {
		builder = builder.Where(answeredCondition(*filter.Answered))
	}

	builder = builder.OrderBy(questionSortOrder(filter.Sort))

	offset := uint64((filter.Page - 1) * filter.Limit)
	builder = builder.Limit(uint64(filter.Limit)).Offset(offset)

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list questions query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing questions: %w", err)
	}
	defer rows.Close()

	questions := make([]models.Question, 0)
	var total int64
	for rows.Next() {
		question, err := scanQuestion(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning question row: %w", err)
		}
		questions = append(questions, *question)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating question rows: %w", err)
	}

	return questions, total, nil
}

// answeredCondition matches questions by acceptance state. A question
// only counts as answered once one of its answers has been accepted;
// unanswered covers both no answers at all and no accepted answer yet.
func answeredCondition(answered bool) string {
	condition := "EXISTS (SELECT 1 FROM answers a WHERE a.question_id = q.id AND a.is_accepted)"
	if !answered {
		condition = "NOT " + condition
	}
	return condition
}

func questionSortOrder(sort string) string {
	switch sort {
	case "views":
		return "q.views DESC"
	case "upvotes":
		return "(SELECT COUNT(*) FROM likes l WHERE l.resource_kind = 'question' AND l.resource_id = q.id) DESC"
	case "answers":
		return "(SELECT COUNT(*) FROM answers a WHERE a.question_id = q.id) DESC"
	case "oldest":
		return "q.created_at ASC"
	default: // newest
		return "q.created_at DESC"
	}
}

// Update persists the mutable fields of a question
func (r *QuestionRepository) Update(ctx context.Context, question *models.Question) error {
	sql, args, err := r.sb.Update("questions").
		Set("title", question.Title).
		Set("content", question.Content).
		Set("tags", question.Tags).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": question.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update question query: %w", err)
	}

	cmdTag, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating question: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError("question not found")
	}

	return nil
}

// Delete removes a question with its likes and comments in a single
// transaction. Answers and their upvotes go with it through foreign
// key cascades.
func (r *QuestionRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := deleteSocialRows(ctx, tx, models.KindQuestion, id); err != nil {
			return err
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM questions WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("error deleting question: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.NewResourceNotFoundError("question not found")
		}

		return nil
	})
}

// GetAnswers returns the answers of a question in creation order with
// creator and upvote count joined in.
func (r *QuestionRepository) GetAnswers(ctx context.Context, questionID int64) ([]models.Answer, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT a.id, a.question_id, a.content, a.is_accepted,
			a.created_by, a.created_at, a.updated_at,
			u.name, u.avatar_url,
			(SELECT COUNT(*) FROM answer_upvotes au WHERE au.answer_id = a.id) AS upvotes
		FROM answers a
		JOIN users u ON u.id = a.created_by
		WHERE a.question_id = $1
		ORDER BY a.id`,
		questionID)
	if err != nil {
		return nil, fmt.Errorf("error listing answers: %w", err)
	}
	defer rows.Close()

	answers := make([]models.Answer, 0)
	for rows.Next() {
		var answer models.Answer
		var creator models.User
		err := rows.Scan(
			&answer.ID, &answer.QuestionID, &answer.Content, &answer.IsAccepted,
			&answer.CreatedBy, &answer.CreatedAt, &answer.UpdatedAt,
			&creator.Name, &creator.AvatarURL,
			&answer.Upvotes,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning answer row: %w", err)
		}
		creator.ID = answer.CreatedBy
		answer.Creator = &creator
		answers = append(answers, answer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating answer rows: %w", err)
	}

	return answers, nil
}

// GetAnswerByID retrieves a single answer scoped to its question
func (r *QuestionRepository) GetAnswerByID(ctx context.Context, questionID, answerID int64) (*models.Answer, error) {
	var answer models.Answer
	err := r.db.Pool.QueryRow(ctx, `
		SELECT id, question_id, content, is_accepted, created_by, created_at, updated_at
		FROM answers
		WHERE id = $1 AND question_id = $2`,
		answerID, questionID).Scan(
		&answer.ID, &answer.QuestionID, &answer.Content, &answer.IsAccepted,
		&answer.CreatedBy, &answer.CreatedAt, &answer.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewResourceNotFoundError("answer not found")
		}
		return nil, fmt.Errorf("error retrieving answer: %w", err)
	}

	return &answer, nil
}

// CreateAnswer inserts a new answer and returns it
func (r *QuestionRepository) CreateAnswer(ctx context.Context, answer *models.Answer) (int64, error) {
	now := time.Now()
	var id int64
	err := r.db.Pool.QueryRow(ctx, `
		INSERT INTO answers (question_id, content, is_accepted, created_by, created_at, updated_at)
		VALUES ($1, $2, FALSE, $3, $4, $4)
		RETURNING id`,
		answer.QuestionID, answer.Content, answer.CreatedBy, now).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error creating answer: %w", err)
	}

	return id, nil
}

// UpdateAnswer replaces the content of an answer
func (r *QuestionRepository) UpdateAnswer(ctx context.Context, answerID int64, content string) error {
	cmdTag, err := r.db.Pool.Exec(ctx, `
		UPDATE answers SET content = $1, updated_at = $2 WHERE id = $3`,
		content, time.Now(), answerID)
	if err != nil {
		return fmt.Errorf("error updating answer: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError("answer not found")
	}

	return nil
}

// DeleteAnswer removes an answer. Its upvotes go with it through the
// foreign key cascade.
func (r *QuestionRepository) DeleteAnswer(ctx context.Context, answerID int64) error {
	cmdTag, err := r.db.Pool.Exec(ctx, `DELETE FROM answers WHERE id = $1`, answerID)
	if err != nil {
		return fmt.Errorf("error deleting answer: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError("answer not found")
	}

	return nil
}

// AcceptAnswer marks one answer of a question as accepted and clears
// any previously accepted one in the same statement, inside a
// transaction. At most one answer per question is ever accepted.
func (r *QuestionRepository) AcceptAnswer(ctx context.Context, questionID, answerID int64) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var lockedID int64
		err := tx.QueryRow(ctx, `
			SELECT id FROM answers WHERE id = $1 AND question_id = $2 FOR UPDATE`,
			answerID, questionID).Scan(&lockedID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.NewResourceNotFoundError("answer not found")
			}
			return fmt.Errorf("error locking answer: %w", err)
		}

		if _, err := tx.Exec(ctx, `
			UPDATE answers SET is_accepted = (id = $1), updated_at = $2
			WHERE question_id = $3`,
			answerID, time.Now(), questionID); err != nil {
			return fmt.Errorf("error accepting answer: %w", err)
		}

		return nil
	})
}

// ToggleAnswerUpvote flips a user's upvote on an answer and returns the
// new state and count.
func (r *QuestionRepository) ToggleAnswerUpvote(ctx context.Context, answerID, userID int64) (bool, int64, error) {
	cmdTag, err := r.db.Pool.Exec(ctx, `
		INSERT INTO answer_upvotes (answer_id, user_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (answer_id, user_id) DO NOTHING`,
		answerID, userID, time.Now())
	if err != nil {
		return false, 0, fmt.Errorf("error inserting answer upvote: %w", err)
	}

	upvoted := cmdTag.RowsAffected() > 0
	if !upvoted {
		if _, err := r.db.Pool.Exec(ctx, `
			DELETE FROM answer_upvotes WHERE answer_id = $1 AND user_id = $2`,
			answerID, userID); err != nil {
			return false, 0, fmt.Errorf("error removing answer upvote: %w", err)
		}
	}

	var count int64
	if err := r.db.Pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM answer_upvotes WHERE answer_id = $1`,
		answerID).Scan(&count); err != nil {
		return upvoted, 0, fmt.Errorf("error counting answer upvotes: %w", err)
	}

	return upvoted, count, nil
}
