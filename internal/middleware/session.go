package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"inkwell/internal/domain"
	"inkwell/internal/domain/repositories"
	"inkwell/internal/httputil"
	"inkwell/internal/session"
)

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "inkwell_session"

// NewSessionCookie builds the session cookie with the attributes every
// auth response uses. A negative maxAge clears the cookie.
func NewSessionCookie(token string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// Session resolves the session cookie to a user id and attaches it to
// the request context. Requests without a valid session pass through
// unauthenticated; RequireAuth decides which routes need one.
func Session(sessions session.Store, users repositories.UserRepository, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			userID, err := sessions.Get(r.Context(), cookie.Value)
			if err != nil {
				if !errors.Is(err, session.ErrNotFound) {
					logger.Error("session lookup failed", "error", err)
				}
				http.SetCookie(w, NewSessionCookie("", -1))
				next.ServeHTTP(w, r)
				return
			}

			// A session whose user no longer exists is stale; drop it.
			if _, err := users.GetUserByID(r.Context(), userID); err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					if delErr := sessions.Delete(r.Context(), cookie.Value); delErr != nil {
						logger.Error("stale session cleanup failed", "error", delErr)
					}
					http.SetCookie(w, NewSessionCookie("", -1))
					next.ServeHTTP(w, r)
					return
				}
				logger.Error("user lookup failed", "error", err, "user_id", userID)
				httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			next.ServeHTTP(w, httputil.WithUserID(r, userID))
		})
	}
}

// RequireAuth rejects requests that did not resolve to a user.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if httputil.GetUserID(r) == 0 {
			httputil.RespondError(w, http.StatusUnauthorized, "Authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
