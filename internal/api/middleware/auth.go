package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/saunova/saunova-server/internal/api/response"
	"github.com/saunova/saunova-server/internal/auth"
	"go.uber.org/zap"
)

type contextKey string

const (
	AuthIDKey contextKey = "authID"
)

// Auth resolves the bearer token to a stable auth ID and stores it in the
// request context. Handlers behind this middleware trust the attached ID and
// never re-validate it.
func Auth(verifier auth.TokenVerifier, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				response.Error(w, "Missing authorization header", http.StatusUnauthorized)
				return
			}

			authID, err := verifier.Verify(r.Context(), token)
			if err != nil || authID == "" {
				logger.Warn("token verification failed", zap.Error(err))
				response.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), AuthIDKey, authID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetAuthID(ctx context.Context) (string, bool) {
	authID, ok := ctx.Value(AuthIDKey).(string)
	return authID, ok
}
