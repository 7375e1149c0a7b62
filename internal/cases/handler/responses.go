package handler

import (
	"time"

	"aeroclaim/internal/cases"
	"aeroclaim/internal/intake"
)

// ValidationResponse is the HTTP shape of a validation result.
type ValidationResponse struct {
	IsValid  bool     `json:"is_valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings,omitempty"`
}

// FromResult converts a validation result to an HTTP response. Errors is
// always present, empty when valid, so clients can bind it unconditionally.
func FromResult(result intake.Result) *ValidationResponse {
	errs := result.Errors
	if errs == nil {
		errs = []string{}
	}
	return &ValidationResponse{
		IsValid:  result.IsValid,
		Errors:   errs,
		Warnings: result.Warnings,
	}
}

// VerdictResponse is the eligibility portion of a case response.
type VerdictResponse struct {
	Status  string   `json:"status"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// CaseResponse is the HTTP shape of a persisted case.
type CaseResponse struct {
	CaseID      string          `json:"case_id"`
	Status      string          `json:"status"`
	Verdict     VerdictResponse `json:"verdict"`
	SubmittedAt time.Time       `json:"submitted_at"`
}

// FromCase converts a case to an HTTP response.
func FromCase(c *cases.Case) *CaseResponse {
	return &CaseResponse{
		CaseID: c.ID.String(),
		Status: string(c.Status),
		Verdict: VerdictResponse{
			Status:  string(c.Verdict.Status),
			Message: c.Verdict.Message,
			Details: c.Verdict.Details,
		},
		SubmittedAt: c.SubmittedAt,
	}
}

// ListResponse is the HTTP response for GET /cases. Cases is always present,
// empty when nothing matched.
type ListResponse struct {
	Cases []*CaseResponse `json:"cases"`
}

// FromCases converts a case list to an HTTP response.
func FromCases(list []cases.Case) *ListResponse {
	resp := &ListResponse{Cases: make([]*CaseResponse, 0, len(list))}
	for i := range list {
		resp.Cases = append(resp.Cases, FromCase(&list[i]))
	}
	return resp
}

// SubmitResponse is the HTTP response for POST /cases.
type SubmitResponse struct {
	Accepted   bool                `json:"accepted"`
	Validation *ValidationResponse `json:"validation,omitempty"`
	Case       *CaseResponse       `json:"case,omitempty"`
}

// FromSubmitResult converts a submission outcome to an HTTP response.
func FromSubmitResult(result cases.SubmitResult) *SubmitResponse {
	resp := &SubmitResponse{Accepted: result.Accepted()}
	if !result.Accepted() {
		resp.Validation = FromResult(result.Validation)
		return resp
	}
	resp.Case = FromCase(result.Case)
	return resp
}
