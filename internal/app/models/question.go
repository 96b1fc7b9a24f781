package models

import (
	"time"
)

// Question defines the question model based on the 'questions' table
type Question struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	Tags      []string  `json:"tags" db:"tags"`
	Views     int64     `json:"views" db:"views"`
	CreatedBy int64     `json:"createdBy" db:"created_by"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	Creator *User    `json:"creator,omitempty"` // Relation, no db tag
	Answers []Answer `json:"answers,omitempty"` // Owned sub-records
}

// Answer defines an answer owned by a question, based on the 'answers'
// table. At most one answer per question has IsAccepted set; the accept
// transition clears the previous one in the same write.
type Answer struct {
	ID         int64     `json:"id" db:"id"`
	QuestionID int64     `json:"questionId" db:"question_id"`
	Content    string    `json:"content" db:"content"`
	IsAccepted bool      `json:"isAccepted" db:"is_accepted"`
	CreatedBy  int64     `json:"createdBy" db:"created_by"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`

	Creator *User `json:"creator,omitempty"` // Relation, no db tag
	Upvotes int64 `json:"upvotes"`           // Aggregate, no db tag
}
