// Package requesttime provides middleware for request-scoped time. All
// operations within a single HTTP request evaluate against the same "now",
// which keeps the 12-month window and future-date checks consistent between
// validation, eligibility, and audit timestamps for the same submission.
package requesttime

import (
	"net/http"
	"time"

	"aeroclaim/pkg/requestcontext"
)

// Middleware captures the current time at the start of the request and stores
// it in the context as the evaluation instant.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithTime(r.Context(), time.Now())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
