package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mathrace/mathrace-go/internal/api/handler"
	apimiddleware "github.com/mathrace/mathrace-go/internal/api/middleware"
	"github.com/mathrace/mathrace-go/internal/middleware"
	"github.com/mathrace/mathrace-go/internal/services/answer"
	"github.com/mathrace/mathrace-go/internal/services/auth"
	"github.com/mathrace/mathrace-go/internal/services/catalog"
	"github.com/mathrace/mathrace-go/internal/services/leaderboard"
	"github.com/mathrace/mathrace-go/internal/services/player"
	"github.com/mathrace/mathrace-go/internal/services/session"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger             *slog.Logger
	AuthService        *auth.Service
	CatalogService     *catalog.Service
	SessionController  *session.Controller
	PlayerController   *player.Controller
	AnswerController   *answer.Controller
	LeaderboardService *leaderboard.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	userHandler := handler.NewUserHandler(cfg.AuthService)
	catalogHandler := handler.NewCatalogHandler(cfg.CatalogService)
	sessionHandler := handler.NewSessionHandler(cfg.SessionController, cfg.PlayerController, cfg.LeaderboardService)
	playerHandler := handler.NewPlayerHandler(cfg.PlayerController, cfg.AnswerController)

	// Create middleware
	authMiddleware := apimiddleware.Auth(cfg.AuthService)
	optionalAuthMiddleware := apimiddleware.OptionalAuth(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger, middleware.DefaultPanicHandler)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Account routes
	api.HandleFunc("/users/register", userHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/users/login", userHandler.Login).Methods(http.MethodPost)

	// Question set routes: listing works anonymously, authoring needs auth
	api.Handle("/question-sets", optionalAuthMiddleware(http.HandlerFunc(catalogHandler.List))).Methods(http.MethodGet)
	api.Handle("/question-sets", authMiddleware(http.HandlerFunc(catalogHandler.Create))).Methods(http.MethodPost)
	api.Handle("/question-sets/{id}", authMiddleware(http.HandlerFunc(catalogHandler.Delete))).Methods(http.MethodDelete)

	// Session routes (open: hosting and playing require no account)
	api.HandleFunc("/sessions", sessionHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/sessions/code/{code}", sessionHandler.GetByRoomCode).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}", sessionHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}/start", sessionHandler.Start).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/end", sessionHandler.End).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/join", sessionHandler.Join).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/leaderboard", sessionHandler.Leaderboard).Methods(http.MethodGet)

	// Player routes
	api.HandleFunc("/players/{id}", playerHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/players/{id}/progress", playerHandler.Progress).Methods(http.MethodGet)
	api.HandleFunc("/players/{id}/answers", playerHandler.Answers).Methods(http.MethodGet)
	api.HandleFunc("/players/{id}/answers", playerHandler.SubmitAnswer).Methods(http.MethodPost)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
