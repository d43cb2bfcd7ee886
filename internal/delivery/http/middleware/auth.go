package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	h "volunteermatch/internal/delivery/http/helpers"
	"volunteermatch/internal/domain"
)

type contextKey string

const requesterKey contextKey = "requester"

// SetRequester returns a context carrying the authenticated requester.
func SetRequester(ctx context.Context, requester *domain.Requester) context.Context {
	return context.WithValue(ctx, requesterKey, requester)
}

// RequesterFromContext returns the authenticated requester, if present.
func RequesterFromContext(ctx context.Context) (*domain.Requester, bool) {
	r, ok := ctx.Value(requesterKey).(*domain.Requester)
	return r, ok && r != nil
}

// RequireAuth returns a wrapper that validates the Bearer token and stores the requester in the request context.
// If the token is missing or invalid, it responds with 401 and does not call next.
func RequireAuth(verifier domain.TokenVerifier, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
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
			requester, err := verifier.Verify(token)
			if err != nil {
				logger.DebugContext(r.Context(), "token rejected", "err", err)
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid or expired token")
				return
			}
			next(w, r.WithContext(SetRequester(r.Context(), requester)))
		}
	}
}
