package session

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mathrace/mathrace-go/internal/dependencies/mocks"
	"github.com/mathrace/mathrace-go/internal/dependencies/random"
	"github.com/mathrace/mathrace-go/internal/model"
	"github.com/mathrace/mathrace-go/internal/services/catalog"
	"github.com/mathrace/mathrace-go/internal/storage/memory"
	"github.com/mathrace/mathrace-go/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	storage    *memory.Storage
	clock      *mocks.MockClock
	random     *mocks.MockRandom
	controller *Controller
	ctx        context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.storage = memory.New()
	logger := testutil.NopLogger()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	catalogService := catalog.New(s.storage, s.clock, logger)
	s.controller = NewController(s.storage, catalogService, s.clock, s.random, logger)
	s.ctx = context.Background()
}

// Create tests

func (s *ControllerSuite) TestCreateSucceeds() {
	s.random.QueueCode("ABC234")

	sess, err := s.controller.Create(s.ctx, "basic-arithmetic")
	s.Require().NoError(err)

	s.Equal(model.RoomCode("ABC234"), sess.RoomCode)
	s.Equal(model.SessionStatusWaiting, sess.Status)
	s.Equal(model.QuestionSetID("basic-arithmetic"), sess.QuestionSetID)
	s.Len(sess.Questions, 10)
	s.Equal(s.clock.Now(), sess.CreatedAt)
}

func (s *ControllerSuite) TestCreateIsPersisted() {
	s.random.QueueCode("ABC234")

	sess, _ := s.controller.Create(s.ctx, "basic-arithmetic")

	retrieved, err := s.controller.GetByID(s.ctx, sess.ID)
	s.Require().NoError(err)
	s.Equal(sess.ID, retrieved.ID)
	s.Equal(sess.RoomCode, retrieved.RoomCode)
}

func (s *ControllerSuite) TestCreateFailsForUnknownQuestionSet() {
	_, err := s.controller.Create(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrQuestionSetNotFound)
}

func (s *ControllerSuite) TestCreateRetriesOnRoomCodeCollision() {
	s.random.QueueCode("AAAAAA", "AAAAAA", "BBBBBB")

	first, err := s.controller.Create(s.ctx, "basic-arithmetic")
	s.Require().NoError(err)
	s.Equal(model.RoomCode("AAAAAA"), first.RoomCode)

	second, err := s.controller.Create(s.ctx, "basic-arithmetic")
	s.Require().NoError(err)
	s.Equal(model.RoomCode("BBBBBB"), second.RoomCode)
	s.NotEqual(first.ID, second.ID)
}

func (s *ControllerSuite) TestCreateFreezesQuestions() {
	s.random.QueueCode("ABC234")
	owner := model.UserID("u-1")
	set, err := catalog.New(s.storage, s.clock, testutil.NopLogger()).
		CreateSet(s.ctx, owner, "Custom", "", []model.Question{{Prompt: "1 + 1", Answer: 2}})
	s.Require().NoError(err)

	sess, err := s.controller.Create(s.ctx, set.ID)
	s.Require().NoError(err)

	// Deleting the source set does not affect the session's questions
	s.Require().NoError(s.storage.DeleteQuestionSet(s.ctx, set.ID))

	retrieved, err := s.controller.GetByID(s.ctx, sess.ID)
	s.Require().NoError(err)
	s.Len(retrieved.Questions, 1)
	s.Equal(2, retrieved.Questions[0].Answer)
}

func (s *ControllerSuite) TestConcurrentCreatesGetDistinctRoomCodes() {
	// Real randomness here: the mock's queue is not safe to share across
	// goroutines, and the claim loop must hold up without scripted draws
	logger := testutil.NopLogger()
	controller := NewController(s.storage, catalog.New(s.storage, s.clock, logger),
		s.clock, random.New(), logger)

	const racers = 16
	sessions := make([]*model.Session, racers)
	errs := make([]error, racers)

	var wg sync.WaitGroup
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sessions[i], errs[i] = controller.Create(s.ctx, "basic-arithmetic")
		}(i)
	}
	wg.Wait()

	seen := make(map[model.RoomCode]bool, racers)
	for i := range sessions {
		s.Require().NoError(errs[i])
		s.False(seen[sessions[i].RoomCode], "room code %s allocated twice", sessions[i].RoomCode)
		seen[sessions[i].RoomCode] = true
	}
}

func (s *ControllerSuite) TestRoomCodeAlphabetExcludesConfusingGlyphs() {
	for _, forbidden := range []string{"I", "O", "0", "1"} {
		s.NotContains(RoomCodeAlphabet, forbidden)
	}
	s.Len(RoomCodeAlphabet, 32)
}

// Lifecycle tests

func (s *ControllerSuite) TestStartMovesToActive() {
	s.random.QueueCode("ABC234")
	sess, _ := s.controller.Create(s.ctx, "basic-arithmetic")

	s.clock.Advance(time.Minute)
	started, err := s.controller.Start(s.ctx, sess.ID)
	s.Require().NoError(err)

	s.Equal(model.SessionStatusActive, started.Status)
	s.Equal(s.clock.Now(), started.UpdatedAt)
}

func (s *ControllerSuite) TestEndMovesToEnded() {
	s.random.QueueCode("ABC234")
	sess, _ := s.controller.Create(s.ctx, "basic-arithmetic")
	_, _ = s.controller.Start(s.ctx, sess.ID)

	ended, err := s.controller.End(s.ctx, sess.ID)
	s.Require().NoError(err)
	s.Equal(model.SessionStatusEnded, ended.Status)
}

func (s *ControllerSuite) TestEndWithoutStart() {
	s.random.QueueCode("ABC234")
	sess, _ := s.controller.Create(s.ctx, "basic-arithmetic")

	// Transitions do not enforce ordering; ending a waiting session is allowed
	ended, err := s.controller.End(s.ctx, sess.ID)
	s.Require().NoError(err)
	s.Equal(model.SessionStatusEnded, ended.Status)
}

func (s *ControllerSuite) TestStartIsIdempotent() {
	s.random.QueueCode("ABC234")
	sess, _ := s.controller.Create(s.ctx, "basic-arithmetic")

	_, err := s.controller.Start(s.ctx, sess.ID)
	s.Require().NoError(err)
	started, err := s.controller.Start(s.ctx, sess.ID)
	s.Require().NoError(err)
	s.Equal(model.SessionStatusActive, started.Status)
}

func (s *ControllerSuite) TestStartFailsIfNotFound() {
	_, err := s.controller.Start(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *ControllerSuite) TestEndFailsIfNotFound() {
	_, err := s.controller.End(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

// Lookup tests

func (s *ControllerSuite) TestGetByRoomCode() {
	s.random.QueueCode("ABC234")
	sess, _ := s.controller.Create(s.ctx, "basic-arithmetic")

	retrieved, err := s.controller.GetByRoomCode(s.ctx, "ABC234")
	s.Require().NoError(err)
	s.Equal(sess.ID, retrieved.ID)
}

func (s *ControllerSuite) TestGetByRoomCodeIsCaseInsensitive() {
	s.random.QueueCode("ABC234")
	sess, _ := s.controller.Create(s.ctx, "basic-arithmetic")

	retrieved, err := s.controller.GetByRoomCode(s.ctx, strings.ToLower("ABC234"))
	s.Require().NoError(err)
	s.Equal(sess.ID, retrieved.ID)

	retrieved, err = s.controller.GetByRoomCode(s.ctx, "  abc234  ")
	s.Require().NoError(err)
	s.Equal(sess.ID, retrieved.ID)
}

func (s *ControllerSuite) TestGetByRoomCodeNotFound() {
	_, err := s.controller.GetByRoomCode(s.ctx, "ZZZZZZ")
	s.ErrorIs(err, model.ErrSessionNotFound)
}
