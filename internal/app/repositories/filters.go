package repositories

import (
	"time"

	"github.com/Masterminds/squirrel"
)

// ListFilter carries the filter and pagination parameters shared by
// resource listings.
type ListFilter struct {
	Search    *string
	Tags      []string
	CreatorID *int64
	Sort      string
	Page      int
	Limit     int
}

// QuestionFilter extends ListFilter with question-specific filters
type QuestionFilter struct {
	ListFilter
	Answered *bool
}

// EventFilter extends ListFilter with event-specific filters. The
// organizer filter rides on ListFilter.CreatorID; StartDate and
// EndDate bound the schedule window.
type EventFilter struct {
	ListFilter
	EventType *string
	StartDate *time.Time
	EndDate   *time.Time
	Upcoming  *bool
	Past      *bool
	Now       time.Time
}

// applyListFilter adds the shared search/tags/creator conditions to a
// select builder. searchCols lists the qualified columns matched by the
// search term.
func applyListFilter(builder squirrel.SelectBuilder, filter ListFilter, alias string, searchCols []string) squirrel.SelectBuilder {
	if filter.Search != nil && *filter.Search != "" {
		pattern := "%" + *filter.Search + "%"
		or := make(squirrel.Or, 0, len(searchCols))
		for _, col := range searchCols {
			or = append(or, squirrel.ILike{col: pattern})
		}
		builder = builder.Where(or)
	}

	if len(filter.Tags) > 0 {
		// Array overlap, matches any of the requested tags
		builder = builder.Where(alias+".tags && ?", filter.Tags)
	}

	if filter.CreatorID != nil {
		builder = builder.Where(squirrel.Eq{alias + ".created_by": *filter.CreatorID})
	}

	return builder
}

// resolveSortOrder maps an API sort key to an ORDER BY expression.
// Unknown keys fall back to newest first.
func resolveSortOrder(sort, alias string) string {
	switch sort {
	case "oldest":
		return alias + ".created_at ASC"
	case "title":
		return alias + ".title ASC"
	default: // newest
		return alias + ".created_at DESC"
	}
}
