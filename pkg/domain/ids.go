// Package domain holds shared value types used across features. Construct them
// via the Parse* functions at trust boundaries; direct casting bypasses
// validation.
package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"

	"github.com/google/uuid"

	dErrors "aeroclaim/pkg/domain-errors"
)

// CaseID identifies a persisted dispute case.
type CaseID uuid.UUID

// NewCaseID mints a fresh case identifier.
func NewCaseID() CaseID {
	return CaseID(uuid.New())
}

// ParseCaseID constructs a CaseID from external input.
func ParseCaseID(s string) (CaseID, error) {
	if s == "" {
		return CaseID{}, dErrors.New(dErrors.CodeInvalidInput, "case id cannot be empty")
	}
	u, err := uuid.Parse(s)
	if err != nil || u == uuid.Nil {
		return CaseID{}, dErrors.New(dErrors.CodeInvalidInput, "case id must be a valid UUID")
	}
	return CaseID(u), nil
}

func (id CaseID) String() string { return uuid.UUID(id).String() }

// IsNil reports whether the ID is the zero value.
func (id CaseID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }

var bookingReferencePattern = regexp.MustCompile(`^[A-Z0-9]{6}$`)

// BookingReference is a six character uppercase alphanumeric record locator.
type BookingReference string

// ParseBookingReference constructs a BookingReference from external input.
// Input is NOT case-folded here; handlers uppercase user input before parsing
// so the engine only ever sees normalized references.
func ParseBookingReference(s string) (BookingReference, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "booking reference cannot be empty")
	}
	if !bookingReferencePattern.MatchString(s) {
		return "", dErrors.New(dErrors.CodeInvalidInput, "booking reference must be exactly 6 uppercase alphanumeric characters")
	}
	return BookingReference(s), nil
}

func (r BookingReference) String() string { return string(r) }

var airportCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// AirportCode is a three letter IATA airport code.
type AirportCode string

// ParseAirportCode constructs an AirportCode from external input.
func ParseAirportCode(s string) (AirportCode, error) {
	if !airportCodePattern.MatchString(s) {
		return "", dErrors.New(dErrors.CodeInvalidInput, "airport code must be 3 uppercase letters")
	}
	return AirportCode(s), nil
}

func (a AirportCode) String() string { return string(a) }

// SubjectHash returns a hex SHA-256 digest of a subject identifier (national
// ID or passport number) for audit trails. Raw identifiers never enter the
// audit stream.
func SubjectHash(subjectID string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(subjectID)))
	return hex.EncodeToString(sum[:])
}
