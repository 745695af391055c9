package response

import (
	"time"

	"github.com/mathrace/mathrace-go/internal/model"
	"github.com/mathrace/mathrace-go/internal/services/answer"
	"github.com/mathrace/mathrace-go/internal/services/auth"
	"github.com/mathrace/mathrace-go/internal/services/leaderboard"
)

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	UserID       string `json:"user_id"`
	Username     string `json:"username"`
	SessionToken string `json:"session_token"`
}

// AuthResponseFromSession creates an AuthResponse from an auth session
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		UserID:       string(s.UserID),
		Username:     s.User.Username,
		SessionToken: s.Token,
	}
}

// QuestionSetInfo is a catalog listing entry
type QuestionSetInfo struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	QuestionCount int    `json:"question_count"`
	IsCustom      bool   `json:"is_custom"`
	IsOwner       bool   `json:"is_owner"`
}

// QuestionSetInfoFromModel converts model.QuestionSetInfo
func QuestionSetInfoFromModel(info model.QuestionSetInfo) QuestionSetInfo {
	return QuestionSetInfo{
		ID:            string(info.ID),
		Name:          info.Name,
		Description:   info.Description,
		QuestionCount: info.QuestionCount,
		IsCustom:      info.IsCustom,
		IsOwner:       info.IsOwner,
	}
}

// Session represents a session in API responses. Question prompts are
// exposed in order; answers stay server-side, grading happens on submit.
type Session struct {
	ID             string    `json:"id"`
	Status         string    `json:"status"`
	RoomCode       string    `json:"room_code"`
	QuestionSetID  string    `json:"question_set_id"`
	Prompts        []string  `json:"prompts"`
	TotalQuestions int       `json:"total_questions"`
	CreatedAt      time.Time `json:"created_at"`
}

// SessionFromModel converts a model.Session
func SessionFromModel(s *model.Session) Session {
	prompts := make([]string, len(s.Questions))
	for i, q := range s.Questions {
		prompts[i] = q.Prompt
	}
	return Session{
		ID:             string(s.ID),
		Status:         string(s.Status),
		RoomCode:       string(s.RoomCode),
		QuestionSetID:  string(s.QuestionSetID),
		Prompts:        prompts,
		TotalQuestions: len(s.Questions),
		CreatedAt:      s.CreatedAt,
	}
}

// Player represents a player in API responses
type Player struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Name      string    `json:"name"`
	JoinedAt  time.Time `json:"joined_at"`
}

// PlayerFromModel converts a model.Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:        string(p.ID),
		SessionID: string(p.SessionID),
		Name:      p.Name,
		JoinedAt:  p.JoinedAt,
	}
}

// SubmitAnswerResponse is the response after submitting an answer
type SubmitAnswerResponse struct {
	IsCorrect bool `json:"is_correct"`
}

// Answer is one ledger row in API responses
type Answer struct {
	QuestionIndex int       `json:"question_index"`
	Value         int       `json:"value"`
	IsCorrect     bool      `json:"is_correct"`
	IsGiveUp      bool      `json:"is_give_up"`
	SubmittedAt   time.Time `json:"submitted_at"`
}

// AnswerFromModel converts a model.Answer
func AnswerFromModel(a *model.Answer) Answer {
	return Answer{
		QuestionIndex: a.QuestionIndex,
		Value:         a.Value,
		IsCorrect:     a.IsCorrect,
		IsGiveUp:      a.IsGiveUp(),
		SubmittedAt:   a.SubmittedAt,
	}
}

// Progress is a player's progress view
type Progress struct {
	Session           Session `json:"session"`
	AnsweredQuestions []int   `json:"answered_questions"`
	CorrectCount      int     `json:"correct_count"`
	TotalQuestions    int     `json:"total_questions"`
	AllAnswered       bool    `json:"all_answered"`
}

// ProgressFromModel converts an answer.Progress
func ProgressFromModel(p *answer.Progress) Progress {
	indices := p.AnsweredIndices
	if indices == nil {
		indices = []int{}
	}
	return Progress{
		Session:           SessionFromModel(p.Session),
		AnsweredQuestions: indices,
		CorrectCount:      p.CorrectCount,
		TotalQuestions:    p.TotalQuestions,
		AllAnswered:       p.AllAnswered(),
	}
}

// LeaderboardEntry is one ranked leaderboard row. TotalTimeMs carries the
// estimated solve time in milliseconds.
type LeaderboardEntry struct {
	PlayerID          string `json:"player_id"`
	Name              string `json:"name"`
	CorrectCount      int    `json:"correct_count"`
	TotalTimeMs       int64  `json:"total_time_ms"`
	QuestionsAnswered int    `json:"questions_answered"`
	TotalQuestions    int    `json:"total_questions"`
}

// LeaderboardFromEntries converts leaderboard entries
func LeaderboardFromEntries(entries []leaderboard.Entry) []LeaderboardEntry {
	out := make([]LeaderboardEntry, len(entries))
	for i, e := range entries {
		out[i] = LeaderboardEntry{
			PlayerID:          string(e.PlayerID),
			Name:              e.Name,
			CorrectCount:      e.CorrectCount,
			TotalTimeMs:       e.TotalTime.Milliseconds(),
			QuestionsAnswered: e.QuestionsAnswered,
			TotalQuestions:    e.TotalQuestions,
		}
	}
	return out
}
