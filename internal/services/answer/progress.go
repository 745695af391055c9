package answer

import (
	"context"
	"sort"

	"github.com/mathrace/mathrace-go/internal/model"
)

// Progress is a player's derived view of the ledger: which questions they
// have touched and how many correct submissions they have made.
//
// CorrectCount counts correct submissions, not correct questions, so it can
// exceed TotalQuestions when a player re-answers a question correctly more
// than once. That matches the grading rules exactly.
type Progress struct {
	Session         *model.Session
	AnsweredIndices []int // distinct, ascending
	CorrectCount    int
	TotalQuestions  int
}

// AllAnswered reports whether every question has at least one submission
func (p *Progress) AllAnswered() bool {
	return len(p.AnsweredIndices) == p.TotalQuestions
}

// AnsweredSet returns the answered indices as a set
func (p *Progress) AnsweredSet() map[int]bool {
	set := make(map[int]bool, len(p.AnsweredIndices))
	for _, idx := range p.AnsweredIndices {
		set[idx] = true
	}
	return set
}

// ProgressOf recomputes a player's progress from scratch by folding over
// their full ledger. Any submission marks a question answered, correct or
// not, give-ups included.
func (c *Controller) ProgressOf(ctx context.Context, playerID model.PlayerID) (*Progress, error) {
	player, err := c.storage.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	session, err := c.storage.GetSession(ctx, player.SessionID)
	if err != nil {
		return nil, err
	}

	answers, err := c.storage.GetAnswersForPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	answered := make(map[int]bool)
	correctCount := 0
	for _, a := range answers {
		answered[a.QuestionIndex] = true
		if a.IsCorrect {
			correctCount++
		}
	}

	indices := make([]int, 0, len(answered))
	for idx := range answered {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	return &Progress{
		Session:         session,
		AnsweredIndices: indices,
		CorrectCount:    correctCount,
		TotalQuestions:  len(session.Questions),
	}, nil
}

// NextUnanswered returns the next question a player should see after
// currentIndex: the first unanswered index strictly after it, wrapping to
// scan from the start if the tail is exhausted. Returns -1 when every
// question has been answered. The same scan drives both skipping and
// post-submission advancement.
func NextUnanswered(currentIndex, total int, answered map[int]bool) int {
	for i := currentIndex + 1; i < total; i++ {
		if !answered[i] {
			return i
		}
	}
	for i := 0; i < currentIndex; i++ {
		if !answered[i] {
			return i
		}
	}
	return -1
}
