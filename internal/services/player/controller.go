package player

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mathrace/mathrace-go/internal/dependencies/clock"
	"github.com/mathrace/mathrace-go/internal/model"
	"github.com/mathrace/mathrace-go/internal/storage"
)

// Controller admits players into waiting sessions
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// NewController creates a new player controller
func NewController(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Controller {
	return &Controller{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// Join adds a player to a session. Only waiting sessions accept joins;
// once a game starts the player list is fixed. Names need not be unique
// within a session.
func (c *Controller) Join(ctx context.Context, sessionID model.SessionID, name string) (*model.Player, error) {
	session, err := c.storage.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.Status != model.SessionStatusWaiting {
		return nil, model.ErrGameNotWaiting
	}

	player := &model.Player{
		ID:        model.PlayerID(uuid.NewString()),
		SessionID: sessionID,
		Name:      name,
		JoinedAt:  c.clock.Now(),
	}

	if err := c.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	c.logger.Info("player joined",
		slog.String("player_id", string(player.ID)),
		slog.String("session_id", string(sessionID)),
		slog.String("name", name),
	)

	return player, nil
}

// Get retrieves a player by id
func (c *Controller) Get(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	return c.storage.GetPlayer(ctx, id)
}
