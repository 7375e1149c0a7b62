package eligibility

import (
	"fmt"
	"time"

	"aeroclaim/internal/intake"
)

// Evaluate applies the eligibility guard chain to a claim. This is pure
// domain logic - no I/O, no side effects. All evidence is gathered before
// the call; "now" is the evaluation instant, never an ambient clock.
//
// Guard priority (fail-fast, first failing guard wins):
//  1. Completeness - consumer identity and booking fields present
//  2. Booking existence - reference resolved against the reservation system
//  3. Temporal window - flight within the 12-month complaint period
//  4. Category coverage - category covered by current policy
//  5. Documentation - supporting documents attached
//  6. Jurisdiction - route touches a regulated airport
func Evaluate(record intake.CaseRecord, evidence Evidence, policy Policy, now time.Time) Verdict {
	// Guard 1: Completeness - consumer identity and booking fields present
	if record.ConsumerName == "" || record.NationalID == "" || record.Phone == "" ||
		record.Email == "" || record.BookingReference == "" || record.FlightNumber == "" {
		return Verdict{
			Status:  StatusInvalid,
			Message: "Missing required consumer information or booking details",
			Details: []string{"Please ensure all mandatory fields are completed"},
		}
	}

	// Guard 2: Booking existence - reference resolved against the reservation system
	if evidence.Booking == nil {
		return Verdict{
			Status:  StatusInvalid,
			Message: "Booking reference not found in system",
			Details: []string{
				"The provided booking reference does not match any reservation in our system",
				"Please verify the booking reference and try again",
			},
		}
	}

	// Guard 3: Temporal window - flight within the 12-month complaint period.
	// Day granularity, same calendar arithmetic as the field validator.
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	flightDay := time.Date(record.FlightDate.Year(), record.FlightDate.Month(), record.FlightDate.Day(), 0, 0, 0, 0, time.UTC)
	if flightDay.Before(today.AddDate(-1, 0, 0)) {
		return Verdict{
			Status:  StatusInvalid,
			Message: "Flight date is outside the allowable complaint period",
			Details: []string{
				"Under aviation regulations, complaints must be filed within 12 months of the incident",
				fmt.Sprintf("Your flight was on %s, which exceeds this timeframe", record.FlightDate.Format("2006-01-02")),
			},
		}
	}

	// Guard 4: Category coverage - category covered by current policy
	if !policy.CoversCategory(record.DisputeCategory) {
		return Verdict{
			Status:  StatusInvalid,
			Message: "Dispute category not covered under current policy",
			Details: []string{
				"The selected category may not be eligible for compensation",
				"Please review covered categories or contact customer service for clarification",
			},
		}
	}

	// Guard 5: Documentation - supporting documents attached
	if !record.HasDocuments {
		return Verdict{
			Status:  StatusHold,
			Message: "Supporting documentation required to proceed",
			Details: []string{
				"Please upload boarding pass, ticket receipt, or other relevant documents",
				"Your case will be placed on hold until documentation is received",
				"You can upload documents through our customer portal",
			},
		}
	}

	// Guard 6: Jurisdiction - route touches a regulated airport
	if !policy.CoversRoute(record.Origin, record.Destination) {
		return Verdict{
			Status:  StatusHold,
			Message: "Case flagged for manual review due to regulatory jurisdiction",
			Details: []string{
				"Flight route may fall outside standard consumer protection regulations",
				"Case will be reviewed by our regulatory compliance team",
				"Expected review time: 3-5 business days",
			},
		}
	}

	details := []string{
		"All eligibility requirements met",
		"Case will proceed to compensation calculation",
		"Expected processing time: 5-10 business days",
	}
	if evidence.Analysis != nil {
		details = append(details, evidence.Analysis.Findings...)
	}

	return Verdict{
		Status:  StatusEligible,
		Message: fmt.Sprintf("Your dispute is eligible for processing under %s regulations", policy.Regulator),
		Details: details,
	}
}
