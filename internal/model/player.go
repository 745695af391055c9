package model

import "time"

// PlayerID uniquely identifies a player within the system
type PlayerID string

// Player is a participant in a session. Immutable after creation.
// Names are not unique within a session; players are distinguished by ID.
type Player struct {
	ID        PlayerID
	SessionID SessionID
	Name      string
	JoinedAt  time.Time
}

// User is a registered account that can own custom question sets
type User struct {
	ID           UserID
	Username     string // login username (immutable)
	PasswordHash string // bcrypt hash
	CreatedAt    time.Time
}
