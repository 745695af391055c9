package redis

import (
	"fmt"

	"github.com/mathrace/mathrace-go/internal/model"
)

// Key prefix for all quiz-related data
const keyPrefix = "mathrace"

// Key generation functions for each entity type

// userKey returns the Redis key for a User
func userKey(id model.UserID) string {
	return fmt.Sprintf("%s:user:%s", keyPrefix, id)
}

// usernameIndexKey returns the Redis key for the username -> user_id index
func usernameIndexKey(username string) string {
	return fmt.Sprintf("%s:idx:username:%s", keyPrefix, username)
}

// questionSetKey returns the Redis key for a QuestionSet
func questionSetKey(id model.QuestionSetID) string {
	return fmt.Sprintf("%s:question_set:%s", keyPrefix, id)
}

// setsForOwnerIndexKey returns the Redis key for the SET of a user's question sets
func setsForOwnerIndexKey(owner model.UserID) string {
	return fmt.Sprintf("%s:idx:sets_for_owner:%s", keyPrefix, owner)
}

// sessionKey returns the Redis key for a Session
func sessionKey(id model.SessionID) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, id)
}

// roomCodeIndexKey returns the Redis key for the room_code -> session_id index.
// Claimed with SETNX; codes are never reused, so these keys never expire.
func roomCodeIndexKey(code model.RoomCode) string {
	return fmt.Sprintf("%s:idx:room_code:%s", keyPrefix, code)
}

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// playersForSessionIndexKey returns the Redis key for the SET of players in a session
func playersForSessionIndexKey(sessionID model.SessionID) string {
	return fmt.Sprintf("%s:idx:players_for_session:%s", keyPrefix, sessionID)
}

// answersKey returns the Redis key for a player's answer LIST (append-only)
func answersKey(playerID model.PlayerID) string {
	return fmt.Sprintf("%s:answers:%s", keyPrefix, playerID)
}
