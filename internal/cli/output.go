package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case AuthResult:
		o.printAuthResult(v)
	case Session:
		o.printSession(v)
	case Player:
		o.printPlayer(v)
	case SubmitResult:
		o.printSubmitResult(v)
	case Progress:
		o.printProgress(v)
	case []Answer:
		o.printAnswers(v)
	case []LeaderboardEntry:
		o.printLeaderboard(v)
	case []QuestionSetInfo:
		o.printQuestionSets(v)
	case QuestionSetInfo:
		o.printQuestionSet(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// AuthResult response type (matches API)
type AuthResult struct {
	UserID       string `json:"user_id"`
	Username     string `json:"username"`
	SessionToken string `json:"session_token"`
}

// Session response type
type Session struct {
	ID             string    `json:"id"`
	Status         string    `json:"status"`
	RoomCode       string    `json:"room_code"`
	QuestionSetID  string    `json:"question_set_id"`
	Prompts        []string  `json:"prompts"`
	TotalQuestions int       `json:"total_questions"`
	CreatedAt      time.Time `json:"created_at"`
}

// Player response type
type Player struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Name      string    `json:"name"`
	JoinedAt  time.Time `json:"joined_at"`
}

// SubmitResult response type
type SubmitResult struct {
	IsCorrect bool `json:"is_correct"`
}

// Progress response type
type Progress struct {
	Session           Session `json:"session"`
	AnsweredQuestions []int   `json:"answered_questions"`
	CorrectCount      int     `json:"correct_count"`
	TotalQuestions    int     `json:"total_questions"`
	AllAnswered       bool    `json:"all_answered"`
}

// Answer response type
type Answer struct {
	QuestionIndex int       `json:"question_index"`
	Value         int       `json:"value"`
	IsCorrect     bool      `json:"is_correct"`
	IsGiveUp      bool      `json:"is_give_up"`
	SubmittedAt   time.Time `json:"submitted_at"`
}

// LeaderboardEntry response type
type LeaderboardEntry struct {
	PlayerID          string `json:"player_id"`
	Name              string `json:"name"`
	CorrectCount      int    `json:"correct_count"`
	TotalTimeMs       int64  `json:"total_time_ms"`
	QuestionsAnswered int    `json:"questions_answered"`
	TotalQuestions    int    `json:"total_questions"`
}

// QuestionSetInfo response type
type QuestionSetInfo struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	QuestionCount int    `json:"question_count"`
	IsCustom      bool   `json:"is_custom"`
	IsOwner       bool   `json:"is_owner"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printAuthResult(a AuthResult) {
	fmt.Printf("User: %s (%s)\n", a.Username, a.UserID)
	fmt.Printf("Token: %s\n", a.SessionToken)
}

func (o *Output) printSession(s Session) {
	fmt.Printf("Session: %s\n", s.ID)
	fmt.Printf("Room Code: %s\n", s.RoomCode)
	fmt.Printf("Status: %s\n", s.Status)
	fmt.Printf("Question Set: %s\n", s.QuestionSetID)
	fmt.Printf("Questions (%d):\n", s.TotalQuestions)
	for i, prompt := range s.Prompts {
		fmt.Printf("  %d. %s\n", i, prompt)
	}
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Player: %s (%s)\n", p.Name, p.ID)
	fmt.Printf("Session: %s\n", p.SessionID)
	fmt.Printf("Joined: %s\n", p.JoinedAt.Format(time.RFC3339))
}

func (o *Output) printSubmitResult(s SubmitResult) {
	if s.IsCorrect {
		fmt.Println("Correct!")
	} else {
		fmt.Println("Incorrect")
	}
}

func (o *Output) printProgress(p Progress) {
	fmt.Printf("Session: %s (%s)\n", p.Session.ID, p.Session.Status)
	fmt.Printf("Correct: %d\n", p.CorrectCount)
	fmt.Printf("Answered: %d/%d\n", len(p.AnsweredQuestions), p.TotalQuestions)

	if len(p.AnsweredQuestions) > 0 {
		parts := make([]string, len(p.AnsweredQuestions))
		for i, idx := range p.AnsweredQuestions {
			parts[i] = fmt.Sprintf("%d", idx)
		}
		fmt.Printf("Answered Questions: %s\n", strings.Join(parts, ", "))
	}

	if p.AllAnswered {
		fmt.Println("All questions answered!")
	}
}

func (o *Output) printAnswers(answers []Answer) {
	fmt.Printf("Answers (%d):\n", len(answers))
	for _, a := range answers {
		status := "incorrect"
		if a.IsCorrect {
			status = "correct"
		}
		if a.IsGiveUp {
			status = "gave up"
		}
		fmt.Printf("  Q%d: %d (%s)\n", a.QuestionIndex, a.Value, status)
	}
}

func (o *Output) printLeaderboard(entries []LeaderboardEntry) {
	fmt.Printf("Leaderboard (%d players):\n", len(entries))
	for i, e := range entries {
		elapsed := time.Duration(e.TotalTimeMs) * time.Millisecond
		fmt.Printf("  %d. %s - %d correct, %d/%d answered, %s\n",
			i+1, e.Name, e.CorrectCount, e.QuestionsAnswered, e.TotalQuestions, elapsed)
	}
}

func (o *Output) printQuestionSets(infos []QuestionSetInfo) {
	fmt.Printf("Question Sets (%d):\n", len(infos))
	for _, info := range infos {
		o.printQuestionSetLine(info)
	}
}

func (o *Output) printQuestionSet(info QuestionSetInfo) {
	o.printQuestionSetLine(info)
	if info.Description != "" {
		fmt.Printf("  %s\n", info.Description)
	}
}

func (o *Output) printQuestionSetLine(info QuestionSetInfo) {
	tags := []string{}
	if info.IsCustom {
		tags = append(tags, "custom")
	}
	if info.IsOwner {
		tags = append(tags, "yours")
	}
	tagStr := ""
	if len(tags) > 0 {
		tagStr = fmt.Sprintf(" [%s]", strings.Join(tags, ", "))
	}
	fmt.Printf("  %s (%s) - %d questions%s\n", info.Name, info.ID, info.QuestionCount, tagStr)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
