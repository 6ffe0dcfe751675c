package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/shoplist/shoplist-go/internal/crypto"
)

type contextKey string

const userIDKey contextKey = "userID"

// SessionAuth returns middleware that validates a Bearer token from the
// Authorization header and injects the resolved identity into the request
// context. Handlers behind it must take the acting user from the context,
// never from the request body or path.
func SessionAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			token, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || token == "" {
				writeJSONError(w, http.StatusUnauthorized, "Authentication required")
				return
			}

			claims, err := crypto.ValidateToken(token, secret)
			if err != nil {
				// Token material is never logged whole.
				slog.Debug("token validation failed", "token_prefix", redact(token), "error", err)
				writeJSONError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext extracts the authenticated user ID from the request context.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

func redact(token string) string {
	if len(token) <= 8 {
		return "********"
	}
	return token[:8] + "..."
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
