// Package auth provides bearer-token middleware for endpoints that read back
// submitted cases. Submission endpoints stay public; the wizard runs before a
// consumer has any session.
package auth

import (
	"log/slog"
	"net/http"
	"strings"

	dErrors "aeroclaim/pkg/domain-errors"
	"aeroclaim/pkg/platform/httputil"
	"aeroclaim/pkg/requestcontext"
)

// TokenValidator validates a bearer token and returns the subject it was
// issued to.
type TokenValidator interface {
	ValidateSubject(tokenString string) (string, error)
}

// RequireToken rejects requests without a valid Authorization bearer token and
// stores the authenticated subject in the request context.
func RequireToken(validator TokenValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "bearer token required"))
				return
			}

			subject, err := validator.ValidateSubject(token)
			if err != nil {
				if logger != nil {
					logger.DebugContext(r.Context(), "token validation failed", "error", err)
				}
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "invalid or expired token"))
				return
			}

			ctx := requestcontext.WithSubject(r.Context(), subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
