package storage

import (
	"context"

	"github.com/mathrace/mathrace-go/internal/model"
)

// Storage defines the interface for data persistence.
//
// Every mutation is a single atomic record operation. The one multi-step
// atomicity requirement is CreateSession: the room-code uniqueness check and
// the session insert must happen in one atomic unit so concurrent creations
// cannot claim the same code.
type Storage interface {
	// User operations
	SaveUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id model.UserID) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)

	// Question set operations
	SaveQuestionSet(ctx context.Context, set *model.QuestionSet) error
	GetQuestionSet(ctx context.Context, id model.QuestionSetID) (*model.QuestionSet, error)
	GetQuestionSetsForOwner(ctx context.Context, owner model.UserID) ([]*model.QuestionSet, error)
	DeleteQuestionSet(ctx context.Context, id model.QuestionSetID) error

	// Session operations.
	// CreateSession claims the session's room code and inserts the session
	// atomically; it returns model.ErrRoomCodeTaken if another live session
	// already holds the code.
	CreateSession(ctx context.Context, session *model.Session) error
	SaveSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, id model.SessionID) (*model.Session, error)
	GetSessionByRoomCode(ctx context.Context, code model.RoomCode) (*model.Session, error)

	// Player operations
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	GetPlayersForSession(ctx context.Context, sessionID model.SessionID) ([]*model.Player, error)

	// Answer operations. AppendAnswer is append-only; rows are never
	// updated or deleted. GetAnswersForPlayer returns rows in insertion
	// order.
	AppendAnswer(ctx context.Context, answer *model.Answer) error
	GetAnswersForPlayer(ctx context.Context, playerID model.PlayerID) ([]*model.Answer, error)
}
