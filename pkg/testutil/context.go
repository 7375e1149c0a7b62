package testutil

import (
	"net/http"
	"time"

	"aeroclaim/pkg/requestcontext"
)

// WithEvaluationTime pins the evaluation clock on the request context.
// This simulates what the request-time middleware does in production, so
// date-window rules are deterministic in handler tests.
func WithEvaluationTime(req *http.Request, now time.Time) *http.Request {
	return req.WithContext(requestcontext.WithTime(req.Context(), now))
}

// WithRequestID adds a correlation ID to the request context.
func WithRequestID(req *http.Request, requestID string) *http.Request {
	return req.WithContext(requestcontext.WithRequestID(req.Context(), requestID))
}

// WithSubject marks the request as authenticated for the given subject.
func WithSubject(req *http.Request, subject string) *http.Request {
	return req.WithContext(requestcontext.WithSubject(req.Context(), subject))
}
