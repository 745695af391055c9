package request

// RegisterRequest is the request to create a user account
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the request to log in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// QuestionPayload is one question in a create-question-set request
type QuestionPayload struct {
	Prompt string `json:"prompt"`
	Answer int    `json:"answer"`
}

// CreateQuestionSetRequest is the request to create a custom question set
type CreateQuestionSetRequest struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Questions   []QuestionPayload `json:"questions"`
}

// CreateSessionRequest is the request to create a session
type CreateSessionRequest struct {
	QuestionSetID string `json:"question_set_id"`
}

// JoinSessionRequest is the request to join a waiting session
type JoinSessionRequest struct {
	Name string `json:"name"`
}

// SubmitAnswerRequest is the request to submit an answer.
// GiveUp submits the reserved sentinel regardless of Value.
type SubmitAnswerRequest struct {
	QuestionIndex int  `json:"question_index"`
	Value         int  `json:"value"`
	GiveUp        bool `json:"give_up,omitempty"`
}
