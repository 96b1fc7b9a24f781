package dto

import (
	"time"

	"github.com/devforum/devforum/internal/app/models"
)

// CreateEventRequest represents a new event
type CreateEventRequest struct {
	Title       string    `json:"title" binding:"required,max=200"`
	Description string    `json:"description" binding:"required"`
	EventType   string    `json:"eventType,omitempty" binding:"omitempty,oneof=webinar workshop hackathon conference meetup other"`
	StartDate   time.Time `json:"startDate" binding:"required"`
	EndDate     time.Time `json:"endDate" binding:"required,gtefield=StartDate"`
	Location    *string   `json:"location,omitempty" binding:"omitempty,max=200"`
	MeetingLink *string   `json:"meetingLink,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	CoverImage  *string   `json:"coverImage,omitempty"` // base64 data-URL
}

// UpdateEventRequest represents an event update; nil fields are left
// unchanged
type UpdateEventRequest struct {
	Title       *string    `json:"title,omitempty" binding:"omitempty,max=200"`
	Description *string    `json:"description,omitempty"`
	EventType   *string    `json:"eventType,omitempty" binding:"omitempty,oneof=webinar workshop hackathon conference meetup other"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Location    *string    `json:"location,omitempty" binding:"omitempty,max=200"`
	MeetingLink *string    `json:"meetingLink,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	CoverImage  *string    `json:"coverImage,omitempty"`
}

// EventResponse represents event details
type EventResponse struct {
	ID             int64        `json:"id"`
	Title          string       `json:"title"`
	Description    string       `json:"description"`
	EventType      string       `json:"eventType"`
	StartDate      time.Time    `json:"startDate"`
	EndDate        time.Time    `json:"endDate"`
	Location       string       `json:"location"`
	MeetingLink    *string      `json:"meetingLink,omitempty"`
	CoverImageURL  *string      `json:"coverImageUrl,omitempty"`
	Tags           []string     `json:"tags"`
	Organizer      *UserSummary `json:"organizer,omitempty"`
	AttendeesCount int64        `json:"attendeesCount"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}

// FromEvent converts a models.Event to an EventResponse
func FromEvent(e *models.Event) EventResponse {
	if e == nil {
		return EventResponse{}
	}
	return EventResponse{
		ID:            e.ID,
		Title:         e.Title,
		Description:   e.Description,
		EventType:     string(e.EventType),
		StartDate:     e.StartDate,
		EndDate:       e.EndDate,
		Location:      e.Location,
		MeetingLink:   e.MeetingLink,
		CoverImageURL: e.CoverImageURL,
		Tags:          e.Tags,
		Organizer:     FromUserSummary(e.Creator),
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}
