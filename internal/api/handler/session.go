package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mathrace/mathrace-go/internal/api/request"
	"github.com/mathrace/mathrace-go/internal/api/response"
	"github.com/mathrace/mathrace-go/internal/model"
	"github.com/mathrace/mathrace-go/internal/services/leaderboard"
	"github.com/mathrace/mathrace-go/internal/services/player"
	"github.com/mathrace/mathrace-go/internal/services/session"
)

// SessionHandler handles session lifecycle endpoints
type SessionHandler struct {
	sessionController  *session.Controller
	playerController   *player.Controller
	leaderboardService *leaderboard.Service
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(
	sessionController *session.Controller,
	playerController *player.Controller,
	leaderboardService *leaderboard.Service,
) *SessionHandler {
	return &SessionHandler{
		sessionController:  sessionController,
		playerController:   playerController,
		leaderboardService: leaderboardService,
	}
}

// Create handles POST /api/v1/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid JSON body"))
		return
	}

	if req.QuestionSetID == "" {
		WriteError(w, NewInvalidRequestError("question_set_id is required"))
		return
	}

	sess, err := h.sessionController.Create(r.Context(), model.QuestionSetID(req.QuestionSetID))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.SessionFromModel(sess))
}

// Get handles GET /api/v1/sessions/{id}.
// A missing session yields null, not an error.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["id"])

	sess, err := h.sessionController.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrSessionNotFound) {
			response.Null(w)
			return
		}
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(sess))
}

// GetByRoomCode handles GET /api/v1/sessions/code/{code}
func (h *SessionHandler) GetByRoomCode(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	sess, err := h.sessionController.GetByRoomCode(r.Context(), code)
	if err != nil {
		if errors.Is(err, model.ErrSessionNotFound) {
			response.Null(w)
			return
		}
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(sess))
}

// Start handles POST /api/v1/sessions/{id}/start
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["id"])

	sess, err := h.sessionController.Start(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(sess))
}

// End handles POST /api/v1/sessions/{id}/end
func (h *SessionHandler) End(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["id"])

	sess, err := h.sessionController.End(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(sess))
}

// Join handles POST /api/v1/sessions/{id}/join
func (h *SessionHandler) Join(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["id"])

	var req request.JoinSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid JSON body"))
		return
	}

	if req.Name == "" {
		WriteError(w, NewInvalidRequestError("name is required"))
		return
	}

	p, err := h.playerController.Join(r.Context(), id, req.Name)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PlayerFromModel(p))
}

// Leaderboard handles GET /api/v1/sessions/{id}/leaderboard.
// An unknown session yields an empty list.
func (h *SessionHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["id"])

	entries, err := h.leaderboardService.Rank(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrSessionNotFound) {
			response.JSON(w, http.StatusOK, []response.LeaderboardEntry{})
			return
		}
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LeaderboardFromEntries(entries))
}
