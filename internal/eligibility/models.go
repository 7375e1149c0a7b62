package eligibility

import (
	"aeroclaim/internal/eligibility/ports"
)

// Status is the terminal outcome of an eligibility evaluation.
type Status string

const (
	// StatusEligible means the claim may proceed to compensation handling.
	StatusEligible Status = "eligible"
	// StatusInvalid means a hard rule rejected the claim.
	StatusInvalid Status = "invalid"
	// StatusHold means the claim needs manual review before it can proceed.
	StatusHold Status = "hold"
)

// Verdict is the result of running the guard chain over a claim.
type Verdict struct {
	Status  Status   `json:"status"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// Evidence is everything the service gathers before evaluation. The rules
// consume evidence; they never fetch it.
type Evidence struct {
	Booking  *ports.BookingRecord
	Analysis *ports.AnalysisReport
}

// Policy captures the regulatory parameters the guard chain evaluates
// against. It is configuration, not code, so a different carrier or
// regulator slots in without touching the rules.
type Policy struct {
	// UncoveredCategories lists dispute categories the current policy does
	// not cover. Claims in these categories are rejected outright.
	UncoveredCategories []string

	// JurisdictionAirports are the airports inside the regulator's
	// jurisdiction. A route touching none of them goes to manual review.
	JurisdictionAirports []string

	// Regulator names the authority whose regulations the eligible message
	// cites.
	Regulator string
}

// CoversCategory reports whether the policy covers the given dispute
// category.
func (p Policy) CoversCategory(category string) bool {
	for _, c := range p.UncoveredCategories {
		if c == category {
			return false
		}
	}
	return true
}

// CoversRoute reports whether at least one endpoint of the route falls
// inside the regulator's jurisdiction.
func (p Policy) CoversRoute(origin, destination string) bool {
	for _, a := range p.JurisdictionAirports {
		if a == origin || a == destination {
			return true
		}
	}
	return false
}
