package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devforum/devforum/internal/app/models"
	"github.com/devforum/devforum/internal/app/models/dto"
	"github.com/devforum/devforum/internal/app/repositories"
	"github.com/devforum/devforum/internal/pkg/apperrors"
)

type memEvents struct {
	events     map[int64]*models.Event
	nextID     int64
	lastFilter repositories.EventFilter
}

func newMemEvents() *memEvents {
	return &memEvents{events: make(map[int64]*models.Event)}
}

func (m *memEvents) Create(_ context.Context, event *models.Event) (int64, error) {
	m.nextID++
	event.ID = m.nextID
	event.CreatedAt = time.Now()
	event.UpdatedAt = event.CreatedAt
	copied := *event
	m.events[event.ID] = &copied
	return event.ID, nil
}

func (m *memEvents) GetByID(_ context.Context, id int64) (*models.Event, error) {
	e, ok := m.events[id]
	if !ok {
		return nil, apperrors.NewResourceNotFoundError("event not found")
	}
	copied := *e
	return &copied, nil
}

func (m *memEvents) GetAll(_ context.Context, filter repositories.EventFilter) ([]models.Event, int64, error) {
	m.lastFilter = filter
	var out []models.Event
	for _, e := range m.events {
		out = append(out, *e)
	}
	return out, int64(len(out)), nil
}

func (m *memEvents) Update(_ context.Context, event *models.Event) error {
	if _, ok := m.events[event.ID]; !ok {
		return apperrors.NewResourceNotFoundError("event not found")
	}
	copied := *event
	m.events[event.ID] = &copied
	return nil
}

func (m *memEvents) Delete(_ context.Context, id int64) error {
	if _, ok := m.events[id]; !ok {
		return apperrors.NewResourceNotFoundError("event not found")
	}
	delete(m.events, id)
	return nil
}

func newEventService(events *memEvents) *EventService {
	return NewEventService(events, newMemSocial(), &memStorage{}, zerolog.Nop())
}

func TestCreateEventDefaults(t *testing.T) {
	ctx := context.Background()
	svc := newEventService(newMemEvents())

	start := time.Now().Add(24 * time.Hour)
	resp, err := svc.Create(ctx, 1, dto.CreateEventRequest{
		Title:       "Go Meetup",
		Description: "Monthly meetup.",
		StartDate:   start,
		EndDate:     start.Add(2 * time.Hour),
	})
	require.NoError(t, err)

	assert.Equal(t, "Online", resp.Location)
	assert.Equal(t, string(models.EventOther), resp.EventType)
}

func TestCreateEventRejectsEndBeforeStart(t *testing.T) {
	ctx := context.Background()
	svc := newEventService(newMemEvents())

	start := time.Now().Add(24 * time.Hour)
	_, err := svc.Create(ctx, 1, dto.CreateEventRequest{
		Title:       "Go Meetup",
		Description: "Monthly meetup.",
		StartDate:   start,
		EndDate:     start.Add(-time.Hour),
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCreateEventAllowsZeroDuration(t *testing.T) {
	ctx := context.Background()
	svc := newEventService(newMemEvents())

	start := time.Now().Add(24 * time.Hour)
	_, err := svc.Create(ctx, 1, dto.CreateEventRequest{
		Title:       "Flash Talk",
		Description: "Instant.",
		StartDate:   start,
		EndDate:     start,
	})
	assert.NoError(t, err)
}

func TestListEventsOrganizerAndDateFilters(t *testing.T) {
	ctx := context.Background()
	events := newMemEvents()
	svc := newEventService(events)

	organizer := int64(7)
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	_, err := svc.List(ctx, dto.EventFilterRequest{
		ListFilterRequest: dto.ListFilterRequest{Page: 1, Limit: 10},
		Organizer:         &organizer,
		StartDate:         &start,
	})
	require.NoError(t, err)

	require.NotNil(t, events.lastFilter.CreatorID)
	assert.Equal(t, organizer, *events.lastFilter.CreatorID)
	require.NotNil(t, events.lastFilter.StartDate)
	assert.Equal(t, start, *events.lastFilter.StartDate)
}

func TestUpdateEventRejectsInvertedDates(t *testing.T) {
	ctx := context.Background()
	events := newMemEvents()
	svc := newEventService(events)

	start := time.Now().Add(24 * time.Hour)
	created, err := svc.Create(ctx, 1, dto.CreateEventRequest{
		Title:       "Go Meetup",
		Description: "Monthly meetup.",
		StartDate:   start,
		EndDate:     start.Add(2 * time.Hour),
	})
	require.NoError(t, err)

	lateStart := start.Add(48 * time.Hour)
	_, err = svc.Update(ctx, created.ID, 1, models.RoleMember, dto.UpdateEventRequest{StartDate: &lateStart})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdateEventOwnershipGate(t *testing.T) {
	ctx := context.Background()
	events := newMemEvents()
	svc := newEventService(events)

	start := time.Now().Add(24 * time.Hour)
	created, err := svc.Create(ctx, 1, dto.CreateEventRequest{
		Title:       "Go Meetup",
		Description: "Monthly meetup.",
		StartDate:   start,
		EndDate:     start.Add(2 * time.Hour),
	})
	require.NoError(t, err)

	title := "Taken over"
	_, err = svc.Update(ctx, created.ID, 2, models.RoleMember, dto.UpdateEventRequest{Title: &title})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	unchanged, err := events.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Go Meetup", unchanged.Title)
}
