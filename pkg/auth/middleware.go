package auth

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/ghuser/curio/pkg/httpx"
	"github.com/ghuser/curio/pkg/logger"
)

const sessionName = "curio_session"
const sessionUserIDKey = "user_id"

// RequireAuth is a chi middleware that enforces authentication via session cookies.
// It reads the session cookie, extracts the user ID, and injects it into the request context.
// Returns 401 Unauthorized if the session is missing, invalid, or lacks a valid user_id.
//
// After this middleware, handlers can safely call auth.UserIDFromCtx(r.Context()).
func RequireAuth(store sessions.Store, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := userIDFromSession(w, r, store, log, true)
			if !ok {
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

// OptionalAuth injects the user ID into the context when a valid session
// exists and passes the request through untouched otherwise. Read paths use
// it so anonymous viewers are served instead of rejected.
func OptionalAuth(store sessions.Store, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if userID, ok := userIDFromSession(w, r, store, log, false); ok {
				r = r.WithContext(WithUserID(r.Context(), userID))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// userIDFromSession resolves the session to a user ID. When strict is true
// an invalid or absent session writes a 401 response; the boolean result
// reports whether a valid user ID was found.
func userIDFromSession(w http.ResponseWriter, r *http.Request, store sessions.Store, log logger.Logger, strict bool) (uuid.UUID, bool) {
	session, err := store.Get(r, sessionName)
	if err != nil {
		if strict {
			log.WarnContext(r.Context(), "invalid session cookie", "error", err)
			httpx.JSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
		}
		return uuid.Nil, false
	}

	userIDStr, ok := session.Values[sessionUserIDKey].(string)
	if !ok || userIDStr == "" {
		if strict {
			httpx.JSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
		}
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		if strict {
			log.WarnContext(r.Context(), "invalid user_id in session", "user_id", userIDStr, "error", err)
			httpx.JSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid session data"})
		}
		return uuid.Nil, false
	}

	return userID, true
}
