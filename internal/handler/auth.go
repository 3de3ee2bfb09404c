package handler

import (
	"log/slog"
	"net/http"

	"inkwell/internal/httputil"
	"inkwell/internal/middleware"
	"inkwell/internal/service"
	"inkwell/internal/session"
)

// AuthHandler handles registration, login, logout, and the current-user
// lookup.
type AuthHandler struct {
	authService service.AuthService
	sessions    session.Store
	sessionTTL  int
	logger      *slog.Logger
}

// NewAuthHandler creates a new auth handler. sessionTTLSeconds becomes
// the Max-Age of the session cookie.
func NewAuthHandler(authService service.AuthService, sessions session.Store, sessionTTLSeconds int, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
		sessionTTL:  sessionTTLSeconds,
		logger:      logger,
	}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates a user and logs them in
// POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.authService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		handleError(w, err)
		return
	}

	if err := h.startSession(w, r, user.ID); err != nil {
		return
	}
	httputil.RespondJSON(w, http.StatusCreated, user)
}

// Login verifies credentials and starts a session
// POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.authService.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		handleError(w, err)
		return
	}

	if err := h.startSession(w, r, user.ID); err != nil {
		return
	}
	httputil.RespondJSON(w, http.StatusOK, user)
}

// Logout destroys the current session
// POST /api/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(middleware.SessionCookieName)
	if err == nil && cookie.Value != "" {
		if err := h.sessions.Delete(r.Context(), cookie.Value); err != nil {
			h.logger.Error("session destroy failed", "error", err)
			httputil.RespondError(w, http.StatusInternalServerError, "Failed to log out")
			return
		}
	}

	http.SetCookie(w, middleware.NewSessionCookie("", -1))
	httputil.RespondJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

// Me returns the authenticated user
// GET /api/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.authService.GetUser(r.Context(), httputil.GetUserID(r))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, user)
}

func (h *AuthHandler) startSession(w http.ResponseWriter, r *http.Request, userID int) error {
	token, err := h.sessions.Create(r.Context(), userID)
	if err != nil {
		h.logger.Error("session create failed", "error", err, "user_id", userID)
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
		return err
	}

	http.SetCookie(w, middleware.NewSessionCookie(token, h.sessionTTL))
	return nil
}
