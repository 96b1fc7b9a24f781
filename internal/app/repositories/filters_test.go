package repositories

import (
	"testing"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eventTestBuilder() squirrel.SelectBuilder {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).
		Select("e.id").From("events e")
}

func TestAnsweredConditionRequiresAcceptedAnswer(t *testing.T) {
	answered := answeredCondition(true)
	assert.Equal(t, "EXISTS (SELECT 1 FROM answers a WHERE a.question_id = q.id AND a.is_accepted)", answered)

	// Unanswered is the full negation: no answers at all, or none accepted
	assert.Equal(t, "NOT "+answered, answeredCondition(false))
}

func TestApplyEventFilterScheduleWindow(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	eventType := "meetup"

	sql, args, err := applyEventFilter(eventTestBuilder(), EventFilter{
		EventType: &eventType,
		StartDate: &start,
		EndDate:   &end,
	}, time.Now()).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "e.event_type = $")
	assert.Contains(t, sql, "e.start_date >= $")
	assert.Contains(t, sql, "e.end_date <= $")
	assert.Equal(t, []interface{}{eventType, start, end}, args)
}

func TestApplyEventFilterUpcomingAndPast(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	yes := true

	sql, args, err := applyEventFilter(eventTestBuilder(), EventFilter{Upcoming: &yes}, now).ToSql()
	require.NoError(t, err)
	assert.Contains(t, sql, "e.start_date >= $")
	assert.Equal(t, []interface{}{now}, args)

	sql, args, err = applyEventFilter(eventTestBuilder(), EventFilter{Past: &yes}, now).ToSql()
	require.NoError(t, err)
	assert.Contains(t, sql, "e.end_date < $")
	assert.Equal(t, []interface{}{now}, args)
}

func TestApplyEventFilterEmptyAddsNothing(t *testing.T) {
	sql, args, err := applyEventFilter(eventTestBuilder(), EventFilter{}, time.Now()).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT e.id FROM events e", sql)
	assert.Empty(t, args)
}
