// Package audit defines the audit event model shared by publishers, stores,
// and the background worker. Events are emitted from domain logic to capture
// key actions; keep them transport-agnostic so stores and sinks can fan out.
package audit

import (
	"context"
	"time"
)

// EventCategory classifies audit events by their primary purpose. This drives
// retention policy and routing.
type EventCategory string

const (
	// CategoryCompliance covers events with regulatory significance: case
	// submissions and eligibility verdicts feed the regulator's complaint
	// record and need long retention.
	CategoryCompliance EventCategory = "compliance"

	// CategoryOperations covers events useful for debugging and operational
	// visibility: failed lookups, rejected validations. Short retention,
	// sampling allowed.
	CategoryOperations EventCategory = "operations"
)

// Event captures a single auditable action.
type Event struct {
	Category  EventCategory `json:"category"`
	Timestamp time.Time     `json:"timestamp"`
	Action    Action        `json:"action"`
	CaseID    string        `json:"case_id,omitempty"`
	// BookingReference is safe to record; it is not personal data on its own.
	BookingReference string `json:"booking_reference,omitempty"`
	// SubjectHash is a SHA-256 hash of the consumer's national ID. Raw
	// identifiers never enter the audit stream.
	SubjectHash string `json:"subject_hash,omitempty"`
	Decision    string `json:"decision,omitempty"`
	Reason      string `json:"reason,omitempty"`
	RequestID   string `json:"request_id,omitempty"`
	ClientIP    string `json:"client_ip,omitempty"`
	Device      string `json:"device,omitempty"`
}

// Action names an auditable action.
type Action string

const (
	ActionCaseSubmitted      Action = "case_submitted"
	ActionEligibilityChecked Action = "case_eligibility_checked"
	ActionValidationRejected Action = "case_validation_rejected"
	ActionBookingLookupError Action = "booking_lookup_error"
)

// actionCategories maps each action to its category.
var actionCategories = map[Action]EventCategory{
	ActionCaseSubmitted:      CategoryCompliance,
	ActionEligibilityChecked: CategoryCompliance,
	ActionValidationRejected: CategoryOperations,
	ActionBookingLookupError: CategoryOperations,
}

// CategoryFor returns the category for an action, defaulting to operations
// for unknown actions so nothing is silently dropped.
func CategoryFor(action Action) EventCategory {
	if c, ok := actionCategories[action]; ok {
		return c
	}
	return CategoryOperations
}

// Emitter publishes audit events. Implementations decide delivery semantics:
// the stream publisher is fire-and-forget for operations events, the store
// append is synchronous for compliance events.
type Emitter interface {
	Emit(ctx context.Context, event Event) error
}

// Store persists audit events.
type Store interface {
	Append(ctx context.Context, event Event) error
}
