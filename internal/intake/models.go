// Package intake implements the form validation rules for dispute claims.
// Everything here is pure: validators take a case record and an explicit
// evaluation instant, never touch I/O, and report violations as values.
package intake

import "time"

// CaseRecord is the candidate dispute claim under evaluation. The engine
// never mutates a CaseRecord; handlers normalize input (trimming, uppercasing
// booking references and airport codes) before constructing one.
type CaseRecord struct {
	ConsumerName     string
	NationalID       string
	Phone            string
	Email            string
	BookingReference string
	FlightNumber     string
	// FlightDate is the flight's calendar date; the zero value means the
	// field was not provided. Comparisons are at day granularity.
	FlightDate      time.Time
	Origin          string
	Destination     string
	DisputeCategory string
	Description     string
	HasDocuments    bool
}

// Step identifies one logical step of the claim wizard.
type Step string

const (
	StepConsumerIdentity Step = "consumer_identity"
	StepFlightDetails    Step = "flight_details"
	StepComplaintDetails Step = "complaint_details"
	StepDocuments        Step = "documents"
)

// Steps returns all wizard steps in form order. ValidateAll concatenates
// per-step results in this order.
func Steps() []Step {
	return []Step{StepConsumerIdentity, StepFlightDetails, StepComplaintDetails, StepDocuments}
}

// ParseStep validates a step identifier from external input.
func ParseStep(s string) (Step, bool) {
	switch Step(s) {
	case StepConsumerIdentity, StepFlightDetails, StepComplaintDetails, StepDocuments:
		return Step(s), true
	}
	return "", false
}

// Result is a per-step or whole-form validation verdict. Errors block
// progress; warnings never do.
type Result struct {
	IsValid  bool
	Errors   []string
	Warnings []string
}

// merge appends another result, combining validity.
func (r Result) merge(other Result) Result {
	return Result{
		IsValid:  r.IsValid && other.IsValid,
		Errors:   append(r.Errors, other.Errors...),
		Warnings: append(r.Warnings, other.Warnings...),
	}
}

// Dispute categories a consumer can select. CategoryOther is a member of the
// enumeration but the eligibility rules treat it specially.
const (
	CategoryFlightDelay    = "Flight Delay (> 3 hours)"
	CategoryCancellation   = "Cancellation without 14 days notice"
	CategoryBaggage        = "Lost/damaged baggage"
	CategoryDeniedBoarding = "Denied boarding/reaccommodation"
	CategoryRefundRequest  = "Refund Request"
	CategoryOther          = "Other"
)

// knownCategories is the single source of truth for selectable categories.
var knownCategories = map[string]bool{
	CategoryFlightDelay:    true,
	CategoryCancellation:   true,
	CategoryBaggage:        true,
	CategoryDeniedBoarding: true,
	CategoryRefundRequest:  true,
	CategoryOther:          true,
}

// IsKnownCategory reports whether the value is a selectable dispute category.
func IsKnownCategory(category string) bool {
	return knownCategories[category]
}

// Categories returns the selectable categories in display order.
func Categories() []string {
	return []string{
		CategoryFlightDelay,
		CategoryCancellation,
		CategoryBaggage,
		CategoryDeniedBoarding,
		CategoryRefundRequest,
		CategoryOther,
	}
}
