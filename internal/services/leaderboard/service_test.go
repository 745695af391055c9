package leaderboard

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mathrace/mathrace-go/internal/model"
	"github.com/mathrace/mathrace-go/internal/storage/memory"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	ctx     context.Context
	session *model.Session
	base    time.Time
	seq     int
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.service = New(s.storage)
	s.ctx = context.Background()
	s.base = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s.seq = 0

	s.session = &model.Session{
		ID:       "session-1",
		Status:   model.SessionStatusActive,
		RoomCode: "ABC234",
		Questions: []model.Question{
			{Prompt: "15 + 27", Answer: 42},
			{Prompt: "-8 * 9", Answer: -72},
			{Prompt: "100 - 43", Answer: 57},
		},
		CreatedAt: s.base,
		UpdatedAt: s.base,
	}
	s.Require().NoError(s.storage.CreateSession(s.ctx, s.session))
}

func (s *ServiceSuite) addPlayer(id, name string, joinedAt time.Time) *model.Player {
	p := &model.Player{
		ID:        model.PlayerID(id),
		SessionID: s.session.ID,
		Name:      name,
		JoinedAt:  joinedAt,
	}
	s.Require().NoError(s.storage.SavePlayer(s.ctx, p))
	return p
}

func (s *ServiceSuite) addAnswer(p *model.Player, questionIndex, value int, submittedAt time.Time) {
	s.seq++
	correct := value == s.session.Questions[questionIndex].Answer
	s.Require().NoError(s.storage.AppendAnswer(s.ctx, &model.Answer{
		ID:            model.AnswerID(fmt.Sprintf("answer-%d", s.seq)),
		SessionID:     s.session.ID,
		PlayerID:      p.ID,
		QuestionIndex: questionIndex,
		Value:         value,
		IsCorrect:     correct,
		SubmittedAt:   submittedAt,
	}))
}

func (s *ServiceSuite) TestRankEmptySession() {
	entries, err := s.service.Rank(s.ctx, s.session.ID)
	s.Require().NoError(err)
	s.Empty(entries)
}

func (s *ServiceSuite) TestRankFailsIfSessionNotFound() {
	_, err := s.service.Rank(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *ServiceSuite) TestPlayerWithNoAnswers() {
	s.addPlayer("p1", "Alice", s.base)

	entries, err := s.service.Rank(s.ctx, s.session.ID)
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Equal(0, entries[0].CorrectCount)
	s.Equal(time.Duration(0), entries[0].TotalTime)
	s.Equal(0, entries[0].QuestionsAnswered)
	s.Equal(3, entries[0].TotalQuestions)
}

func (s *ServiceSuite) TestSolveTimesAnchorOnPreviousSubmission() {
	p := s.addPlayer("p1", "Alice", s.base)

	// Q0 solved 500ms after joining, Q1 solved 700ms after that
	s.addAnswer(p, 0, 42, s.base.Add(500*time.Millisecond))
	s.addAnswer(p, 1, -72, s.base.Add(1200*time.Millisecond))

	entries, err := s.service.Rank(s.ctx, s.session.ID)
	s.Require().NoError(err)
	s.Require().Len(entries, 1)

	s.Equal(2, entries[0].CorrectCount)
	s.Equal(1200*time.Millisecond, entries[0].TotalTime)
	s.Equal(2, entries[0].QuestionsAnswered)
}

func (s *ServiceSuite) TestIncorrectAnswersAnchorButDoNotScore() {
	p := s.addPlayer("p1", "Alice", s.base)

	// A wrong attempt on Q0, then a correct Q1: the Q1 solve time is
	// measured from the wrong attempt, not from join
	s.addAnswer(p, 0, 99, s.base.Add(2*time.Second))
	s.addAnswer(p, 1, -72, s.base.Add(3*time.Second))

	entries, err := s.service.Rank(s.ctx, s.session.ID)
	s.Require().NoError(err)
	s.Require().Len(entries, 1)

	s.Equal(1, entries[0].CorrectCount)
	s.Equal(1*time.Second, entries[0].TotalTime)
	s.Equal(2, entries[0].QuestionsAnswered)
}

func (s *ServiceSuite) TestLaterQuestionsDoNotAnchorEarlierOnes() {
	p := s.addPlayer("p1", "Alice", s.base)

	// Player skips ahead: solves Q2 first, then comes back to Q0.
	// Q0's time is measured from join, not from the Q2 submission.
	s.addAnswer(p, 2, 57, s.base.Add(1*time.Second))
	s.addAnswer(p, 0, 42, s.base.Add(4*time.Second))

	entries, err := s.service.Rank(s.ctx, s.session.ID)
	s.Require().NoError(err)
	s.Require().Len(entries, 1)

	// Q2: 1s from join. Q0: 4s from join (no earlier-numbered anchor).
	s.Equal(5*time.Second, entries[0].TotalTime)
}

func (s *ServiceSuite) TestGiveUpsAnchorFollowingQuestions() {
	p := s.addPlayer("p1", "Alice", s.base)

	s.addAnswer(p, 0, model.GiveUpValue, s.base.Add(2*time.Second))
	s.addAnswer(p, 1, -72, s.base.Add(5*time.Second))

	entries, err := s.service.Rank(s.ctx, s.session.ID)
	s.Require().NoError(err)
	s.Require().Len(entries, 1)

	s.Equal(1, entries[0].CorrectCount)
	s.Equal(3*time.Second, entries[0].TotalTime)
}

func (s *ServiceSuite) TestRankOrdersByCorrectThenTime() {
	slow := s.addPlayer("p1", "Slow", s.base)
	fast := s.addPlayer("p2", "Fast", s.base)
	best := s.addPlayer("p3", "Best", s.base)

	// Best: two correct
	s.addAnswer(best, 0, 42, s.base.Add(1*time.Second))
	s.addAnswer(best, 1, -72, s.base.Add(2*time.Second))

	// Fast and Slow: one correct each, Fast quicker
	s.addAnswer(fast, 0, 42, s.base.Add(3*time.Second))
	s.addAnswer(slow, 0, 42, s.base.Add(10*time.Second))

	entries, err := s.service.Rank(s.ctx, s.session.ID)
	s.Require().NoError(err)
	s.Require().Len(entries, 3)

	s.Equal(model.PlayerID("p3"), entries[0].PlayerID)
	s.Equal(model.PlayerID("p2"), entries[1].PlayerID)
	s.Equal(model.PlayerID("p1"), entries[2].PlayerID)
}

func (s *ServiceSuite) TestRankIsIdempotent() {
	p := s.addPlayer("p1", "Alice", s.base)
	s.addAnswer(p, 0, 42, s.base.Add(1*time.Second))

	first, err := s.service.Rank(s.ctx, s.session.ID)
	s.Require().NoError(err)
	second, err := s.service.Rank(s.ctx, s.session.ID)
	s.Require().NoError(err)

	s.Equal(first, second)
}
