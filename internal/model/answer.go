package model

import "time"

// AnswerID uniquely identifies an answer row
type AnswerID string

// GiveUpValue is the sentinel submitted when a player gives up on a
// question. It never equals a real answer, so it always grades incorrect
// while still marking the question as answered.
const GiveUpValue = -999999

// Answer is one submission event. The ledger is append-only: every
// submission is recorded, including re-answers of already-correct questions
// and give-ups. Multiple rows may exist for the same (player, question).
type Answer struct {
	ID            AnswerID
	SessionID     SessionID
	PlayerID      PlayerID
	QuestionIndex int
	Value         int
	IsCorrect     bool
	SubmittedAt   time.Time
}

// IsGiveUp reports whether this row was a give-up submission
func (a *Answer) IsGiveUp() bool {
	return a.Value == GiveUpValue
}
