package handler

import (
	"time"

	"aeroclaim/internal/eligibility"
)

// CheckResponse is the HTTP response for POST /eligibility/check.
type CheckResponse struct {
	Status      string    `json:"status"`
	Message     string    `json:"message"`
	Details     []string  `json:"details,omitempty"`
	EvaluatedAt time.Time `json:"evaluated_at"`
}

// FromVerdict converts a domain verdict to an HTTP response.
func FromVerdict(v eligibility.Verdict, evaluatedAt time.Time) *CheckResponse {
	return &CheckResponse{
		Status:      string(v.Status),
		Message:     v.Message,
		Details:     v.Details,
		EvaluatedAt: evaluatedAt,
	}
}
