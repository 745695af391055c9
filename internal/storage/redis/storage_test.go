package redis

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mathrace/mathrace-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
}

// User tests

func (s *StorageSuite) TestSaveAndGetUser() {
	user := &model.User{
		ID:           "u-1",
		Username:     "alice",
		PasswordHash: "hash123",
		CreatedAt:    time.Now().UTC(),
	}

	err := s.storage.SaveUser(s.ctx, user)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetUser(s.ctx, "u-1")
	s.Require().NoError(err)
	s.Equal(user.Username, retrieved.Username)

	byName, err := s.storage.GetUserByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(user.ID, byName.ID)
}

func (s *StorageSuite) TestGetUserNotFound() {
	_, err := s.storage.GetUser(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrUserNotFound)
}

// Question set tests

func (s *StorageSuite) TestSaveAndGetQuestionSet() {
	set := &model.QuestionSet{
		ID:        "set-1",
		OwnerID:   "u-1",
		Name:      "My Set",
		Questions: []model.Question{{Prompt: "2 + 2", Answer: 4}},
	}

	err := s.storage.SaveQuestionSet(s.ctx, set)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetQuestionSet(s.ctx, "set-1")
	s.Require().NoError(err)
	s.Equal(set.Name, retrieved.Name)
	s.Len(retrieved.Questions, 1)
	s.Equal(4, retrieved.Questions[0].Answer)
}

func (s *StorageSuite) TestGetQuestionSetsForOwner() {
	_ = s.storage.SaveQuestionSet(s.ctx, &model.QuestionSet{ID: "set-1", OwnerID: "u-1", Name: "A"})
	_ = s.storage.SaveQuestionSet(s.ctx, &model.QuestionSet{ID: "set-2", OwnerID: "u-1", Name: "B"})
	_ = s.storage.SaveQuestionSet(s.ctx, &model.QuestionSet{ID: "set-3", OwnerID: "u-2", Name: "C"})

	sets, err := s.storage.GetQuestionSetsForOwner(s.ctx, "u-1")
	s.Require().NoError(err)
	s.Len(sets, 2)
}

func (s *StorageSuite) TestDeleteQuestionSetCleansIndex() {
	_ = s.storage.SaveQuestionSet(s.ctx, &model.QuestionSet{ID: "set-1", OwnerID: "u-1", Name: "A"})

	err := s.storage.DeleteQuestionSet(s.ctx, "set-1")
	s.Require().NoError(err)

	_, err = s.storage.GetQuestionSet(s.ctx, "set-1")
	s.ErrorIs(err, model.ErrQuestionSetNotFound)

	sets, err := s.storage.GetQuestionSetsForOwner(s.ctx, "u-1")
	s.Require().NoError(err)
	s.Empty(sets)
}

// Session tests

func (s *StorageSuite) TestCreateAndGetSession() {
	sess := &model.Session{
		ID:       "session-1",
		Status:   model.SessionStatusWaiting,
		RoomCode: "ABC234",
		Questions: []model.Question{
			{Prompt: "15 + 27", Answer: 42},
		},
	}

	err := s.storage.CreateSession(s.ctx, sess)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetSession(s.ctx, "session-1")
	s.Require().NoError(err)
	s.Equal(sess.RoomCode, retrieved.RoomCode)
	s.Len(retrieved.Questions, 1)

	byCode, err := s.storage.GetSessionByRoomCode(s.ctx, "ABC234")
	s.Require().NoError(err)
	s.Equal(sess.ID, byCode.ID)
}

func (s *StorageSuite) TestCreateSessionRejectsTakenRoomCode() {
	first := &model.Session{ID: "session-1", RoomCode: "ABC234"}
	second := &model.Session{ID: "session-2", RoomCode: "ABC234"}

	s.Require().NoError(s.storage.CreateSession(s.ctx, first))

	err := s.storage.CreateSession(s.ctx, second)
	s.ErrorIs(err, model.ErrRoomCodeTaken)

	byCode, err := s.storage.GetSessionByRoomCode(s.ctx, "ABC234")
	s.Require().NoError(err)
	s.Equal(model.SessionID("session-1"), byCode.ID)
}

func (s *StorageSuite) TestCreateSessionConcurrentClaimsAreExclusive() {
	const racers = 16

	var wg sync.WaitGroup
	errs := make([]error, racers)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = s.storage.CreateSession(s.ctx, &model.Session{
				ID:       model.SessionID(fmt.Sprintf("session-%d", i)),
				RoomCode: "ABC234",
			})
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			s.ErrorIs(err, model.ErrRoomCodeTaken)
		}
	}
	s.Equal(1, winners)
}

func (s *StorageSuite) TestSaveSessionUpdatesStatus() {
	sess := &model.Session{ID: "session-1", Status: model.SessionStatusWaiting, RoomCode: "ABC234"}
	s.Require().NoError(s.storage.CreateSession(s.ctx, sess))

	sess.Status = model.SessionStatusActive
	s.Require().NoError(s.storage.SaveSession(s.ctx, sess))

	retrieved, err := s.storage.GetSession(s.ctx, "session-1")
	s.Require().NoError(err)
	s.Equal(model.SessionStatusActive, retrieved.Status)
}

func (s *StorageSuite) TestGetSessionNotFound() {
	_, err := s.storage.GetSession(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrSessionNotFound)

	_, err = s.storage.GetSessionByRoomCode(s.ctx, "ZZZZZZ")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

// Player tests

func (s *StorageSuite) TestSaveAndGetPlayer() {
	player := &model.Player{
		ID:        "player-1",
		SessionID: "session-1",
		Name:      "Alice",
		JoinedAt:  time.Now().UTC(),
	}

	err := s.storage.SavePlayer(s.ctx, player)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(player.Name, retrieved.Name)
}

func (s *StorageSuite) TestGetPlayersForSession() {
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "player-1", SessionID: "session-1"})
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "player-2", SessionID: "session-1"})
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "player-3", SessionID: "session-2"})

	players, err := s.storage.GetPlayersForSession(s.ctx, "session-1")
	s.Require().NoError(err)
	s.Len(players, 2)
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// Answer tests

func (s *StorageSuite) TestAppendAnswerPreservesOrder() {
	base := time.Now().UTC()
	values := []int{41, 42, -72}
	for i, v := range values {
		err := s.storage.AppendAnswer(s.ctx, &model.Answer{
			ID:            model.AnswerID(string(rune('a' + i))),
			PlayerID:      "player-1",
			QuestionIndex: i,
			Value:         v,
			SubmittedAt:   base.Add(time.Duration(i) * time.Second),
		})
		s.Require().NoError(err)
	}

	answers, err := s.storage.GetAnswersForPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Require().Len(answers, 3)
	for i, a := range answers {
		s.Equal(values[i], a.Value)
	}
}

func (s *StorageSuite) TestGetAnswersForUnknownPlayerIsEmpty() {
	answers, err := s.storage.GetAnswersForPlayer(s.ctx, "nonexistent")
	s.Require().NoError(err)
	s.Empty(answers)
}

func (s *StorageSuite) TestAnswersAreScopedPerPlayer() {
	_ = s.storage.AppendAnswer(s.ctx, &model.Answer{ID: "a", PlayerID: "player-1", Value: 1})
	_ = s.storage.AppendAnswer(s.ctx, &model.Answer{ID: "b", PlayerID: "player-2", Value: 2})

	answers, err := s.storage.GetAnswersForPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Require().Len(answers, 1)
	s.Equal(1, answers[0].Value)
}
