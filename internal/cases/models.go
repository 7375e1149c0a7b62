// Package cases owns the dispute case lifecycle: validate the submission,
// run the eligibility decision, persist the resulting case, and expose it
// for retrieval.
package cases

import (
	"time"

	"aeroclaim/internal/eligibility"
	"aeroclaim/internal/intake"
	"aeroclaim/pkg/domain"
)

// Status is the lifecycle state a case lands in after submission.
type Status string

const (
	// StatusOpen means the case passed eligibility and awaits compensation
	// handling.
	StatusOpen Status = "open"
	// StatusOnHold means the case needs documents or manual review before it
	// can proceed.
	StatusOnHold Status = "on_hold"
	// StatusRejected means a hard eligibility rule rejected the case.
	StatusRejected Status = "rejected"
)

// StatusFromVerdict maps an eligibility verdict onto the case lifecycle.
func StatusFromVerdict(v eligibility.Verdict) Status {
	switch v.Status {
	case eligibility.StatusEligible:
		return StatusOpen
	case eligibility.StatusHold:
		return StatusOnHold
	default:
		return StatusRejected
	}
}

// Case is a persisted dispute case.
type Case struct {
	ID          domain.CaseID
	Record      intake.CaseRecord
	Status      Status
	Verdict     eligibility.Verdict
	SubmittedAt time.Time
}

// SubmitResult is the outcome of a submission attempt. Exactly one of two
// shapes comes back: a failed validation (Case nil, Validation carries the
// violations) or a decided case (Validation passed, Case persisted).
type SubmitResult struct {
	Validation intake.Result
	Case       *Case
}

// Accepted reports whether the submission produced a persisted case.
func (r SubmitResult) Accepted() bool {
	return r.Case != nil
}
