package leaderboard

import (
	"context"
	"sort"
	"time"

	"github.com/mathrace/mathrace-go/internal/model"
	"github.com/mathrace/mathrace-go/internal/storage"
)

// Entry is one ranked row of the leaderboard
type Entry struct {
	PlayerID          model.PlayerID
	Name              string
	CorrectCount      int
	TotalTime         time.Duration
	QuestionsAnswered int
	TotalQuestions    int
}

// Service aggregates the answer ledger into ranked leaderboard entries.
// Rankings are recomputed from scratch on every call; the append-only
// ledger makes that the simplest correct strategy, and it stays safe to
// run concurrently with submissions.
type Service struct {
	storage storage.Storage
}

// New creates a new leaderboard service
func New(storage storage.Storage) *Service {
	return &Service{storage: storage}
}

// Rank computes the leaderboard for a session, ordered by descending
// correct-submission count with ties broken by ascending estimated solve
// time. Entries equal on both keys stay in unspecified relative order.
func (s *Service) Rank(ctx context.Context, sessionID model.SessionID) ([]Entry, error) {
	session, err := s.storage.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	players, err := s.storage.GetPlayersForSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(players))
	for _, player := range players {
		answers, err := s.storage.GetAnswersForPlayer(ctx, player.ID)
		if err != nil {
			return nil, err
		}

		entries = append(entries, scorePlayer(player, answers, len(session.Questions)))
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].CorrectCount != entries[j].CorrectCount {
			return entries[i].CorrectCount > entries[j].CorrectCount
		}
		return entries[i].TotalTime < entries[j].TotalTime
	})

	return entries, nil
}

// scorePlayer folds one player's ledger into a leaderboard entry
func scorePlayer(player *model.Player, answers []*model.Answer, totalQuestions int) Entry {
	answered := make(map[int]bool, len(answers))
	correctCount := 0
	var totalTime time.Duration

	for _, a := range answers {
		answered[a.QuestionIndex] = true
		if !a.IsCorrect {
			continue
		}
		correctCount++
		totalTime += a.SubmittedAt.Sub(startTimeFor(a, answers, player.JoinedAt))
	}

	return Entry{
		PlayerID:          player.ID,
		Name:              player.Name,
		CorrectCount:      correctCount,
		TotalTime:         totalTime,
		QuestionsAnswered: len(answered),
		TotalQuestions:    totalQuestions,
	}
}

// startTimeFor estimates when a player started working on the question a
// correct answer belongs to: the latest submission on an earlier-numbered
// question made before this one, falling back to the player's join time.
//
// The earlier-numbered restriction keeps the estimate meaningful when
// players skip around; rows for later-numbered questions are ignored even
// if they were submitted first. Incorrect and give-up rows on earlier
// questions still anchor, which is what makes skipping fair.
func startTimeFor(a *model.Answer, answers []*model.Answer, joinedAt time.Time) time.Time {
	start := joinedAt
	found := false
	for _, prev := range answers {
		if prev.QuestionIndex >= a.QuestionIndex || !prev.SubmittedAt.Before(a.SubmittedAt) {
			continue
		}
		if !found || prev.SubmittedAt.After(start) {
			start = prev.SubmittedAt
			found = true
		}
	}
	return start
}
