package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/rs/cors"

	"inkwell/internal/domain/repositories"
	"inkwell/internal/httputil"
	"inkwell/internal/middleware"
	"inkwell/internal/session"
)

// RouterConfig carries everything the router needs.
type RouterConfig struct {
	Auth        *AuthHandler
	Documents   *DocumentHandler
	Suggestions *SuggestionHandler
	Sessions    session.Store
	Users       repositories.UserRepository
	CORSOrigins string
	Logger      *slog.Logger
}

// NewRouter assembles the route table and middleware chain.
func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	// requireAuth wraps a single route with the auth gate
	requireAuth := func(fn http.HandlerFunc) http.Handler {
		return middleware.RequireAuth(fn)
	}

	mux.HandleFunc("GET /health", healthCheck)

	// Auth routes
	mux.HandleFunc("POST /api/auth/register", cfg.Auth.Register)
	mux.HandleFunc("POST /api/auth/login", cfg.Auth.Login)
	mux.Handle("POST /api/auth/logout", requireAuth(cfg.Auth.Logout))
	mux.Handle("GET /api/auth/me", requireAuth(cfg.Auth.Me))

	// Document routes
	mux.Handle("GET /api/documents", requireAuth(cfg.Documents.ListDocuments))
	mux.Handle("POST /api/documents", requireAuth(cfg.Documents.CreateDocument))
	mux.HandleFunc("GET /api/documents/{id}", cfg.Documents.GetDocument)
	mux.Handle("PATCH /api/documents/{id}", requireAuth(cfg.Documents.UpdateDocument))

	// Suggestion routes
	mux.Handle("GET /api/documents/{id}/suggestions", requireAuth(cfg.Suggestions.ListSuggestions))
	mux.Handle("POST /api/documents/{id}/generate-suggestions", requireAuth(cfg.Suggestions.RegenerateSuggestions))
	mux.Handle("POST /api/suggestions/{id}/generate", requireAuth(cfg.Suggestions.GenerateContent))
	mux.Handle("POST /api/suggestions/{id}/apply", requireAuth(cfg.Suggestions.ApplySuggestion))

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS -> Recovery -> Session -> Routes
	var h http.Handler = mux
	h = middleware.Session(cfg.Sessions, cfg.Users, cfg.Logger)(h)
	h = middleware.Recovery(cfg.Logger)(h)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	})
	return corsHandler.Handler(h)
}

// healthCheck reports liveness
// GET /health
func healthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
