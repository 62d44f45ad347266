package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	h "weddingplanner/internal/delivery/http/helpers"
	"weddingplanner/internal/domain"
)

type contextKey string

const claimsKey contextKey = "sessionClaims"

// SetClaims returns a context carrying the verified session claims.
func SetClaims(ctx context.Context, claims domain.SessionClaims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFromContext returns the session claims set by RequireSession, if present.
func ClaimsFromContext(ctx context.Context) (domain.SessionClaims, bool) {
	c, ok := ctx.Value(claimsKey).(domain.SessionClaims)
	return c, ok
}

// ActiveSession reports the event currently loaded by the planner.
type ActiveSession interface {
	Session() (*domain.Session, error)
}

// RequireSession validates the Bearer token and checks that it belongs to the event that is
// currently loaded. Tokens from an ended or replaced session get 401.
func RequireSession(verifier domain.TokenVerifier, active ActiveSession, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing authorization header")
				return
			}
			const prefix = "Bearer "
			if !strings.HasPrefix(auth, prefix) {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid authorization format")
				return
			}
			token := strings.TrimSpace(auth[len(prefix):])
			if token == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing token")
				return
			}
			claims, err := verifier.Verify(token)
			if err != nil {
				logger.DebugContext(r.Context(), "token rejected", "err", err)
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid or expired token")
				return
			}
			sess, err := active.Session()
			if err != nil || sess.EventID != claims.EventID {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "session ended")
				return
			}
			next(w, r.WithContext(SetClaims(r.Context(), claims)))
		}
	}
}
