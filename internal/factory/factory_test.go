package factory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mathrace/mathrace-go/internal/model"
)

type FactorySuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestFactorySuite(t *testing.T) {
	suite.Run(t, new(FactorySuite))
}

func (s *FactorySuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

func (s *FactorySuite) TestNewDefaultsToMemoryStorage() {
	app, err := New(Config{})
	s.Require().NoError(err)
	s.NotNil(app.Storage)
	s.NotNil(app.SessionController)
	s.NotNil(app.LeaderboardService)
}

func (s *FactorySuite) TestNewRejectsUnknownStorageType() {
	_, err := New(Config{StorageType: "postgres"})
	s.Error(err)
}

func (s *FactorySuite) TestNewRequiresRedisConfigForRedis() {
	_, err := New(Config{StorageType: StorageTypeRedis})
	s.Error(err)
}

// A full round through the wired services with deterministic time: the
// leaderboard's solve times come out exactly as the clock was advanced.
func (s *FactorySuite) TestDeterministicGameRound() {
	s.app.MockRandom.QueueCode("ABC234")

	sess, err := s.app.SessionController.Create(s.ctx, "basic-arithmetic")
	s.Require().NoError(err)

	alice, err := s.app.PlayerController.Join(s.ctx, sess.ID, "Alice")
	s.Require().NoError(err)

	_, err = s.app.SessionController.Start(s.ctx, sess.ID)
	s.Require().NoError(err)

	// 500ms to solve the first question, 700ms for the second
	s.app.MockClock.Advance(500 * time.Millisecond)
	first, err := s.app.AnswerController.Submit(s.ctx, alice.ID, 0, 42)
	s.Require().NoError(err)
	s.True(first.IsCorrect)

	s.app.MockClock.Advance(700 * time.Millisecond)
	second, err := s.app.AnswerController.Submit(s.ctx, alice.ID, 1, -72)
	s.Require().NoError(err)
	s.True(second.IsCorrect)

	entries, err := s.app.LeaderboardService.Rank(s.ctx, sess.ID)
	s.Require().NoError(err)
	s.Require().Len(entries, 1)

	s.Equal(alice.ID, entries[0].PlayerID)
	s.Equal(2, entries[0].CorrectCount)
	s.Equal(1200*time.Millisecond, entries[0].TotalTime)

	_, err = s.app.SessionController.End(s.ctx, sess.ID)
	s.Require().NoError(err)

	ended, err := s.app.SessionController.GetByID(s.ctx, sess.ID)
	s.Require().NoError(err)
	s.Equal(model.SessionStatusEnded, ended.Status)
}
