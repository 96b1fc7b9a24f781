package dto

import "time"

// ListFilterRequest carries the filter parameters shared by all
// resource listings. Tags is comma separated and matches any.
type ListFilterRequest struct {
	Search *string `form:"search,omitempty"`
	Tags   *string `form:"tags,omitempty"`
	User   *int64  `form:"user,omitempty"`
	Sort   string  `form:"sort,default=newest"`
	Page   int     `form:"page,default=1" binding:"min=1"`
	Limit  int     `form:"limit,default=10" binding:"min=1,max=100"`
}

// QuestionFilterRequest adds question-specific filters
type QuestionFilterRequest struct {
	ListFilterRequest
	Answered *bool `form:"answered,omitempty"`
}

// EventFilterRequest adds event-specific filters. Organizer narrows to
// one organizer's events; startDate and endDate bound the schedule
// window from either side.
type EventFilterRequest struct {
	ListFilterRequest
	EventType *string    `form:"eventType,omitempty"`
	Organizer *int64     `form:"organizer,omitempty"`
	StartDate *time.Time `form:"startDate,omitempty" time_format:"2006-01-02"`
	EndDate   *time.Time `form:"endDate,omitempty" time_format:"2006-01-02"`
	Upcoming  *bool      `form:"upcoming,omitempty"`
	Past      *bool      `form:"past,omitempty"`
}
