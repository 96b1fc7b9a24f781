package services

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/devforum/devforum/internal/app/auth"
	"github.com/devforum/devforum/internal/app/models"
	"github.com/devforum/devforum/internal/app/models/dto"
	"github.com/devforum/devforum/internal/app/repositories"
	"github.com/devforum/devforum/internal/pkg/apperrors"
	"github.com/devforum/devforum/internal/pkg/filestorage"
	"github.com/devforum/devforum/internal/pkg/helpers"
)

type eventStore interface {
	Create(ctx context.Context, event *models.Event) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Event, error)
	GetAll(ctx context.Context, filter repositories.EventFilter) ([]models.Event, int64, error)
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id int64) error
}

// EventService handles event business logic. The like set of an event
// is its attendee list.
type EventService struct {
	events  eventStore
	likes   likeCounter
	storage filestorage.FileStorage
	logger  zerolog.Logger
}

// NewEventService creates a new EventService
func NewEventService(events eventStore, likes likeCounter, storage filestorage.FileStorage, logger zerolog.Logger) *EventService {
	return &EventService{
		events:  events,
		likes:   likes,
		storage: storage,
		logger:  logger,
	}
}

// Create stores a new event. Location defaults to "Online", the type
// to "other".
func (s *EventService) Create(ctx context.Context, userID int64, req dto.CreateEventRequest) (*dto.EventResponse, error) {
	if !req.EndDate.After(req.StartDate) && !req.EndDate.Equal(req.StartDate) {
		return nil, apperrors.NewValidationError("end date must not be before start date")
	}

	eventType := models.EventType(req.EventType)
	if eventType == "" {
		eventType = models.EventOther
	}

	location := "Online"
	if req.Location != nil && strings.TrimSpace(*req.Location) != "" {
		location = strings.TrimSpace(*req.Location)
	}

	event := &models.Event{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		EventType:   eventType,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Location:    location,
		MeetingLink: req.MeetingLink,
		Tags:        helpers.NormalizeTags(req.Tags),
		CreatedBy:   userID,
	}

	if req.CoverImage != nil && *req.CoverImage != "" {
		coverURL, err := s.storage.SaveDataURL(*req.CoverImage, "events")
		if err != nil {
			return nil, apperrors.NewValidationError("invalid cover image")
		}
		event.CoverImageURL = &coverURL
	}

	id, err := s.events.Create(ctx, event)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("eventID", id).Int64("userID", userID).Msg("Event created")
	return s.GetByID(ctx, id)
}

// GetByID returns an event with its attendee count
func (s *EventService) GetByID(ctx context.Context, id int64) (*dto.EventResponse, error) {
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	attendees, err := s.likes.LikeCount(ctx, models.KindEvent, id)
	if err != nil {
		return nil, err
	}

	resp := dto.FromEvent(event)
	resp.AttendeesCount = attendees
	return &resp, nil
}

// List returns events matching the filter with pagination
func (s *EventService) List(ctx context.Context, req dto.EventFilterRequest) (*dto.ListResponse, error) {
	listFilter := toListFilter(req.ListFilterRequest)
	if req.Organizer != nil {
		// organizer is the event alias for the creator filter
		listFilter.CreatorID = req.Organizer
	}

	filter := repositories.EventFilter{
		ListFilter: listFilter,
		EventType:  req.EventType,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Upcoming:   req.Upcoming,
		Past:       req.Past,
		Now:        time.Now(),
	}

	events, total, err := s.events.GetAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(events))
	for i := range events {
		ids = append(ids, events[i].ID)
	}
	attendeeCounts, err := s.likes.LikeCounts(ctx, models.KindEvent, ids)
	if err != nil {
		return nil, err
	}

	items := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		item := dto.FromEvent(&events[i])
		item.AttendeesCount = attendeeCounts[item.ID]
		items = append(items, item)
	}

	return dto.NewListResponse(items, len(items), helpers.NewPaginationInfo(total, filter.Page, filter.Limit)), nil
}

// Update applies the provided fields to an event
func (s *EventService) Update(ctx context.Context, id, actorID int64, actorRole models.RoleType, req dto.UpdateEventRequest) (*dto.EventResponse, error) {
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := auth.CanMutate(actorID, actorRole, event.CreatedBy); err != nil {
		return nil, err
	}

	if req.Title != nil {
		event.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.EventType != nil {
		event.EventType = models.EventType(*req.EventType)
	}
	if req.StartDate != nil {
		event.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		event.EndDate = *req.EndDate
	}
	if event.EndDate.Before(event.StartDate) {
		return nil, apperrors.NewValidationError("end date must not be before start date")
	}
	if req.Location != nil && strings.TrimSpace(*req.Location) != "" {
		event.Location = strings.TrimSpace(*req.Location)
	}
	if req.MeetingLink != nil {
		event.MeetingLink = req.MeetingLink
	}
	if req.Tags != nil {
		event.Tags = helpers.NormalizeTags(req.Tags)
	}
	if req.CoverImage != nil && *req.CoverImage != "" {
		coverURL, err := s.storage.SaveDataURL(*req.CoverImage, "events")
		if err != nil {
			return nil, apperrors.NewValidationError("invalid cover image")
		}
		event.CoverImageURL = &coverURL
	}

	if err := s.events.Update(ctx, event); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// Delete removes an event and its social records
func (s *EventService) Delete(ctx context.Context, id, actorID int64, actorRole models.RoleType) error {
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := auth.CanMutate(actorID, actorRole, event.CreatedBy); err != nil {
		return err
	}

	if err := s.events.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("eventID", id).Int64("actorID", actorID).Msg("Event deleted")
	return nil
}
