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

// EventRepository handles event database operations
type EventRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(database *db.PostgresDB) *EventRepository {
	return &EventRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var eventSelectColumns = []string{
	"e.id", "e.title", "e.description", "e.event_type",
	"e.start_date", "e.end_date", "e.location", "e.meeting_link",
	"e.cover_image_url", "e.tags",
	"e.created_by", "e.created_at", "e.updated_at",
	"u.name", "u.avatar_url",
}

func scanEvent(row pgx.Row, extra ...any) (*models.Event, error) {
	var event models.Event
	var creator models.User

	dest := []any{
		&event.ID, &event.Title, &event.Description, &event.EventType,
		&event.StartDate, &event.EndDate, &event.Location, &event.MeetingLink,
		&event.CoverImageURL, &event.Tags,
		&event.CreatedBy, &event.CreatedAt, &event.UpdatedAt,
		&creator.Name, &creator.AvatarURL,
	}
	dest = append(dest, extra...)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	creator.ID = event.CreatedBy
	event.Creator = &creator
	return &event, nil
}

// Create inserts a new event and returns its id
func (r *EventRepository) Create(ctx context.Context, event *models.Event) (int64, error) {
	now := time.Now()
	sql, args, err := r.sb.Insert("events").
		Columns("title", "description", "event_type", "start_date", "end_date",
			"location", "meeting_link", "cover_image_url", "tags",
			"created_by", "created_at", "updated_at").
		Values(event.Title, event.Description, event.EventType, event.StartDate, event.EndDate,
			event.Location, event.MeetingLink, event.CoverImageURL, event.Tags,
			event.CreatedBy, now, now).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create event query: %w", err)
	}

	var id int64
	if err := r.db.Pool.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error creating event: %w", err)
	}

	return id, nil
}

// GetByID retrieves an event with its organizer
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	sql, args, err := r.sb.Select(eventSelectColumns...).
		From("events e").
		Join("users u ON u.id = e.created_by").
		Where(squirrel.Eq{"e.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get event query: %w", err)
	}

	event, err := scanEvent(r.db.Pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewResourceNotFoundError("event not found")
		}
		return nil, fmt.Errorf("error retrieving event: %w", err)
	}

	return event, nil
}

// GetAll retrieves events matching the filter with pagination.
// Upcoming listings sort by start date ascending so the nearest event
// comes first.
func (r *EventRepository) GetAll(ctx context.Context, filter EventFilter) ([]models.Event, int64, error) {
	builder := r.sb.Select(append(append([]string{}, eventSelectColumns...), "COUNT(*) OVER() AS total_count")...).
		From("events e").
		Join("users u ON u.id = e.created_by")

	builder = applyListFilter(builder, filter.ListFilter, "e", []string{"e.title", "e.description"})

	now := filter.Now
	if now.IsZero() {
		now = time.Now()
	}
	builder = applyEventFilter(builder, filter, now)

	upcoming := filter.Upcoming != nil && *filter.Upcoming
	if filter.Sort == "" || (upcoming && filter.Sort == "newest") {
		builder = builder.OrderBy("e.start_date ASC")
	} else {
		builder = builder.OrderBy(resolveSortOrder(filter.Sort, "e"))
	}

	offset := uint64((filter.Page - 1) * filter.Limit)
	builder = builder.Limit(uint64(filter.Limit)).Offset(offset)

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list events query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing events: %w", err)
	}
	defer rows.Close()

	events := make([]models.Event, 0)
	var total int64
	for rows.Next() {
		event, err := scanEvent(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning event row: %w", err)
		}
		events = append(events, *event)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating event rows: %w", err)
	}

	return events, total, nil
}

// applyEventFilter adds the event-specific conditions: type, explicit
// schedule window bounds, and the upcoming/past shortcuts relative to
// now.
func applyEventFilter(builder squirrel.SelectBuilder, filter EventFilter, now time.Time) squirrel.SelectBuilder {
	if filter.EventType != nil && *filter.EventType != "" {
		builder = builder.Where(squirrel.Eq{"e.event_type": *filter.EventType})
	}

	if filter.StartDate != nil {
		builder = builder.Where(squirrel.GtOrEq{"e.start_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		builder = builder.Where(squirrel.LtOrEq{"e.end_date": *filter.EndDate})
	}

	if filter.Upcoming != nil && *filter.Upcoming {
		builder = builder.Where(squirrel.GtOrEq{"e.start_date": now})
	}
	if filter.Past != nil && *filter.Past {
		builder = builder.Where(squirrel.Lt{"e.end_date": now})
	}

	return builder
}

// Update persists the mutable fields of an event
func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	sql, args, err := r.sb.Update("events").
		Set("title", event.Title).
		Set("description", event.Description).
		Set("event_type", event.EventType).
		Set("start_date", event.StartDate).
		Set("end_date", event.EndDate).
		Set("location", event.Location).
		Set("meeting_link", event.MeetingLink).
		Set("cover_image_url", event.CoverImageURL).
		Set("tags", event.Tags).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": event.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update event query: %w", err)
	}

	cmdTag, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating event: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError("event not found")
	}

	return nil
}

// Delete removes an event together with its attendances and comments
// in a single transaction.
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := deleteSocialRows(ctx, tx, models.KindEvent, id); err != nil {
			return err
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("error deleting event: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.NewResourceNotFoundError("event not found")
		}

		return nil
	})
}
