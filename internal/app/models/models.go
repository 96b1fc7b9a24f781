package models

// RoleType defines the user role type
type RoleType string

const (
	RoleMember RoleType = "MEMBER"
	RoleAdmin  RoleType = "ADMIN"
)

// ResourceKind identifies which top-level collection a social
// interaction (like or comment) is attached to.
type ResourceKind string

const (
	KindProject    ResourceKind = "project"
	KindBlog       ResourceKind = "blog"
	KindQuestion   ResourceKind = "question"
	KindEvent      ResourceKind = "event"
	KindDiscussion ResourceKind = "discussion"
)

// Difficulty is the declared difficulty level of a project
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// EventType categorizes events
type EventType string

const (
	EventWebinar    EventType = "webinar"
	EventWorkshop   EventType = "workshop"
	EventHackathon  EventType = "hackathon"
	EventConference EventType = "conference"
	EventMeetup     EventType = "meetup"
	EventOther      EventType = "other"
)
