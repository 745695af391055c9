package session

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mathrace/mathrace-go/internal/dependencies/clock"
	"github.com/mathrace/mathrace-go/internal/dependencies/random"
	"github.com/mathrace/mathrace-go/internal/model"
	"github.com/mathrace/mathrace-go/internal/services/catalog"
	"github.com/mathrace/mathrace-go/internal/storage"
)

const (
	// RoomCodeLength is the length of generated room codes
	RoomCodeLength = 6
	// RoomCodeAlphabet is the characters used in room codes (avoids
	// confusing glyphs: no I, O, 0 or 1)
	RoomCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// Controller owns the session lifecycle: creation with a frozen question
// list and a unique room code, then the waiting -> active -> ended
// transitions
type Controller struct {
	storage storage.Storage
	catalog *catalog.Service
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// NewController creates a new session controller
func NewController(
	storage storage.Storage,
	catalog *catalog.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage: storage,
		catalog: catalog,
		clock:   clock,
		random:  random,
		logger:  logger,
	}
}

// Create resolves the question set, snapshots its questions by value and
// inserts a waiting session under a freshly allocated room code.
//
// The code is drawn at random and claimed through the storage layer's
// atomic check-and-insert; on collision we redraw and retry. Collisions
// are rare (32^6 codes) so the loop terminates quickly in practice.
func (c *Controller) Create(ctx context.Context, questionSetID model.QuestionSetID) (*model.Session, error) {
	set, err := c.catalog.Resolve(ctx, questionSetID)
	if err != nil {
		return nil, err
	}

	// Copy by value so the session's list is frozen even if the source
	// set is later deleted or belongs to a shared built-in
	questions := make([]model.Question, len(set.Questions))
	copy(questions, set.Questions)

	now := c.clock.Now()
	session := &model.Session{
		ID:            model.SessionID(uuid.NewString()),
		Status:        model.SessionStatusWaiting,
		Questions:     questions,
		QuestionSetID: questionSetID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	for {
		session.RoomCode = model.RoomCode(c.random.Code(RoomCodeLength, RoomCodeAlphabet))

		err := c.storage.CreateSession(ctx, session)
		if errors.Is(err, model.ErrRoomCodeTaken) {
			continue
		}
		if err != nil {
			return nil, err
		}
		break
	}

	c.logger.Info("session created",
		slog.String("session_id", string(session.ID)),
		slog.String("room_code", string(session.RoomCode)),
		slog.String("question_set_id", string(questionSetID)),
		slog.Int("question_count", len(questions)),
	)

	return session, nil
}

// Start moves a session to active. The transition is deliberately
// permissive: it only requires that the session exists.
func (c *Controller) Start(ctx context.Context, id model.SessionID) (*model.Session, error) {
	return c.setStatus(ctx, id, model.SessionStatusActive)
}

// End moves a session to ended, from any prior state
func (c *Controller) End(ctx context.Context, id model.SessionID) (*model.Session, error) {
	return c.setStatus(ctx, id, model.SessionStatusEnded)
}

func (c *Controller) setStatus(ctx context.Context, id model.SessionID, status model.SessionStatus) (*model.Session, error) {
	session, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	session.Status = status
	session.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	c.logger.Info("session status changed",
		slog.String("session_id", string(id)),
		slog.String("status", string(status)),
	)

	return session, nil
}

// GetByID retrieves a session by id
func (c *Controller) GetByID(ctx context.Context, id model.SessionID) (*model.Session, error) {
	return c.storage.GetSession(ctx, id)
}

// GetByRoomCode retrieves a session by its join code, case-insensitively
func (c *Controller) GetByRoomCode(ctx context.Context, code string) (*model.Session, error) {
	return c.storage.GetSessionByRoomCode(ctx, model.CanonicalRoomCode(code))
}
