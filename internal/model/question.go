package model

import "time"

// QuestionSetID identifies a question set. Built-in sets use well-known
// string ids; custom sets use generated ids.
type QuestionSetID string

// UserID uniquely identifies a registered user
type UserID string

// Question is a single prompt with its numeric answer
type Question struct {
	Prompt string
	Answer int
}

// QuestionSet is an ordered list of questions. Built-in sets have an empty
// OwnerID; custom sets belong to the user who created them.
type QuestionSet struct {
	ID          QuestionSetID
	OwnerID     UserID
	Name        string
	Description string
	Questions   []Question
	CreatedAt   time.Time
}

// IsCustom reports whether this set is user-owned rather than built-in
func (qs *QuestionSet) IsCustom() bool {
	return qs.OwnerID != ""
}

// QuestionSetInfo is a listing view of a question set without its questions
// (answers are never exposed to players browsing the catalog)
type QuestionSetInfo struct {
	ID            QuestionSetID
	Name          string
	Description   string
	QuestionCount int
	IsCustom      bool
	IsOwner       bool
}
