package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mathrace/mathrace-go/internal/api/request"
	"github.com/mathrace/mathrace-go/internal/api/response"
	"github.com/mathrace/mathrace-go/internal/model"
	"github.com/mathrace/mathrace-go/internal/services/answer"
	"github.com/mathrace/mathrace-go/internal/services/player"
)

// PlayerHandler handles player endpoints
type PlayerHandler struct {
	playerController *player.Controller
	answerController *answer.Controller
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(playerController *player.Controller, answerController *answer.Controller) *PlayerHandler {
	return &PlayerHandler{
		playerController: playerController,
		answerController: answerController,
	}
}

// Get handles GET /api/v1/players/{id}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	p, err := h.playerController.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) {
			response.Null(w)
			return
		}
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(p))
}

// Progress handles GET /api/v1/players/{id}/progress
func (h *PlayerHandler) Progress(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	progress, err := h.answerController.ProgressOf(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) || errors.Is(err, model.ErrSessionNotFound) {
			response.Null(w)
			return
		}
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ProgressFromModel(progress))
}

// Answers handles GET /api/v1/players/{id}/answers
func (h *PlayerHandler) Answers(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	rows, err := h.answerController.AnswersFor(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	out := make([]response.Answer, len(rows))
	for i, row := range rows {
		out[i] = response.AnswerFromModel(row)
	}

	response.JSON(w, http.StatusOK, out)
}

// SubmitAnswer handles POST /api/v1/players/{id}/answers
func (h *PlayerHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	var req request.SubmitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid JSON body"))
		return
	}

	var (
		row *model.Answer
		err error
	)
	if req.GiveUp {
		row, err = h.answerController.GiveUp(r.Context(), id, req.QuestionIndex)
	} else {
		row, err = h.answerController.Submit(r.Context(), id, req.QuestionIndex, req.Value)
	}
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.SubmitAnswerResponse{IsCorrect: row.IsCorrect})
}
