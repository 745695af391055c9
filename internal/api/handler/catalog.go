package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mathrace/mathrace-go/internal/api/middleware"
	"github.com/mathrace/mathrace-go/internal/api/request"
	"github.com/mathrace/mathrace-go/internal/api/response"
	"github.com/mathrace/mathrace-go/internal/model"
	"github.com/mathrace/mathrace-go/internal/services/catalog"
)

// CatalogHandler handles question-set endpoints
type CatalogHandler struct {
	catalogService *catalog.Service
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *catalog.Service) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// List handles GET /api/v1/question-sets.
// Auth is optional: authenticated users see their custom sets first.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	var owner model.UserID
	if user := middleware.GetUser(r.Context()); user != nil {
		owner = user.ID
	}

	infos, err := h.catalogService.List(r.Context(), owner)
	if err != nil {
		WriteError(w, err)
		return
	}

	out := make([]response.QuestionSetInfo, len(infos))
	for i, info := range infos {
		out[i] = response.QuestionSetInfoFromModel(info)
	}

	response.JSON(w, http.StatusOK, out)
}

// Create handles POST /api/v1/question-sets
func (h *CatalogHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())

	var req request.CreateQuestionSetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid JSON body"))
		return
	}

	if req.Name == "" {
		WriteError(w, NewInvalidRequestError("name is required"))
		return
	}
	if len(req.Questions) == 0 {
		WriteError(w, NewInvalidRequestError("at least one question is required"))
		return
	}

	questions := make([]model.Question, len(req.Questions))
	for i, q := range req.Questions {
		if q.Prompt == "" {
			WriteError(w, NewInvalidRequestError("question prompts must not be empty"))
			return
		}
		questions[i] = model.Question{Prompt: q.Prompt, Answer: q.Answer}
	}

	set, err := h.catalogService.CreateSet(r.Context(), user.ID, req.Name, req.Description, questions)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.QuestionSetInfo{
		ID:            string(set.ID),
		Name:          set.Name,
		Description:   set.Description,
		QuestionCount: len(set.Questions),
		IsCustom:      true,
		IsOwner:       true,
	})
}

// Delete handles DELETE /api/v1/question-sets/{id}
func (h *CatalogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())
	id := model.QuestionSetID(mux.Vars(r)["id"])

	if err := h.catalogService.DeleteSet(r.Context(), id, user.ID); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
