package answer

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mathrace/mathrace-go/internal/dependencies/clock"
	"github.com/mathrace/mathrace-go/internal/model"
	"github.com/mathrace/mathrace-go/internal/storage"
)

// Controller records submissions in the append-only answer ledger and
// derives per-player progress from it
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// NewController creates a new answer controller
func NewController(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Controller {
	return &Controller{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// Submit grades a submission against the session's frozen question list and
// appends it to the ledger. Every call appends, including re-answers of
// already-correct questions and give-ups; nothing is ever deduplicated or
// retracted. Grading is exact integer equality.
func (c *Controller) Submit(ctx context.Context, playerID model.PlayerID, questionIndex int, value int) (*model.Answer, error) {
	player, err := c.storage.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	session, err := c.storage.GetSession(ctx, player.SessionID)
	if err != nil {
		return nil, err
	}

	if session.Status != model.SessionStatusActive {
		return nil, model.ErrGameNotActive
	}

	if questionIndex < 0 || questionIndex >= len(session.Questions) {
		return nil, model.ErrInvalidQuestionIndex
	}

	answer := &model.Answer{
		ID:            model.AnswerID(uuid.NewString()),
		SessionID:     player.SessionID,
		PlayerID:      playerID,
		QuestionIndex: questionIndex,
		Value:         value,
		IsCorrect:     value == session.Questions[questionIndex].Answer,
		SubmittedAt:   c.clock.Now(),
	}

	if err := c.storage.AppendAnswer(ctx, answer); err != nil {
		return nil, err
	}

	c.logger.Info("answer submitted",
		slog.String("player_id", string(playerID)),
		slog.Int("question_index", questionIndex),
		slog.Bool("is_correct", answer.IsCorrect),
		slog.Bool("give_up", answer.IsGiveUp()),
	)

	return answer, nil
}

// GiveUp records a give-up on a question. It submits the reserved sentinel
// value, which always grades incorrect but still marks the question as
// answered, advancing the player like any other submission.
func (c *Controller) GiveUp(ctx context.Context, playerID model.PlayerID, questionIndex int) (*model.Answer, error) {
	return c.Submit(ctx, playerID, questionIndex, model.GiveUpValue)
}

// AnswersFor returns a player's full ledger in submission order
func (c *Controller) AnswersFor(ctx context.Context, playerID model.PlayerID) ([]*model.Answer, error) {
	return c.storage.GetAnswersForPlayer(ctx, playerID)
}
