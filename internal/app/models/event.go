package models

import (
	"time"
)

// Event defines the event model based on the 'events' table.
// The creator is exposed as "organizer" and the like-set as
// "attendees" in the API.
type Event struct {
	ID            int64     `json:"id" db:"id"`
	Title         string    `json:"title" db:"title"`
	Description   string    `json:"description" db:"description"`
	EventType     EventType `json:"eventType" db:"event_type"`
	StartDate     time.Time `json:"startDate" db:"start_date"`
	EndDate       time.Time `json:"endDate" db:"end_date"`
	Location      string    `json:"location" db:"location"`
	MeetingLink   *string   `json:"meetingLink,omitempty" db:"meeting_link"`
	CoverImageURL *string   `json:"coverImageUrl,omitempty" db:"cover_image_url"`
	Tags          []string  `json:"tags" db:"tags"`
	CreatedBy     int64     `json:"organizer" db:"created_by"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`

	Creator *User `json:"organizerInfo,omitempty"` // Relation, no db tag
}
