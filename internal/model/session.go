package model

import (
	"strings"
	"time"
)

// SessionID uniquely identifies a quiz session
type SessionID string

// RoomCode is the 6-character join token for a session
type RoomCode string

// SessionStatus represents the lifecycle state of a session
type SessionStatus string

const (
	SessionStatusWaiting SessionStatus = "waiting" // Players may join
	SessionStatusActive  SessionStatus = "active"  // Answers accepted
	SessionStatusEnded   SessionStatus = "ended"   // Terminal
)

// Session is one quiz competition instance. Questions are copied by value
// from the source set at creation and frozen for the session's lifetime.
type Session struct {
	ID            SessionID
	Status        SessionStatus
	Questions     []Question
	RoomCode      RoomCode
	QuestionSetID QuestionSetID
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CanonicalRoomCode normalizes a join code for case-insensitive matching
func CanonicalRoomCode(code string) RoomCode {
	return RoomCode(strings.ToUpper(strings.TrimSpace(code)))
}
