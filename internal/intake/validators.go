package intake

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// Field format patterns. Booking references and airport codes are matched
// against uppercase-only patterns: handlers uppercase user input before
// validation, so a lowercase value reaching the engine is reported to the
// user as a format violation rather than silently folded.
var (
	nationalIDPattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)
	phonePattern      = regexp.MustCompile(`^[+]?[0-9\s\-()]{10,}$`)
	emailPattern      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	bookingRefPattern = regexp.MustCompile(`^[A-Z0-9]{6}$`)
	airportPattern    = regexp.MustCompile(`^[A-Z]{3}$`)
)

// Length bounds count characters, not bytes; names and descriptions are
// routinely Arabic.
const (
	descriptionMinLen = 20
	descriptionMaxLen = 2000
)

// Validator checks case records against the intake rules. The zero value is
// not usable; construct via New.
type Validator struct {
	carrierCode   string
	flightPattern *regexp.Regexp
}

// Option configures a Validator.
type Option func(*Validator)

// WithCarrierCode sets the flight-number prefix the validator accepts.
func WithCarrierCode(code string) Option {
	return func(v *Validator) {
		v.carrierCode = strings.ToUpper(strings.TrimSpace(code))
	}
}

// New constructs a Validator. The default carrier code is "SV".
func New(opts ...Option) *Validator {
	v := &Validator{carrierCode: "SV"}
	for _, opt := range opts {
		opt(v)
	}
	// Flight numbers match case-insensitively; the stored form is uppercase.
	v.flightPattern = regexp.MustCompile(`(?i)^` + regexp.QuoteMeta(v.carrierCode) + `\d+$`)
	return v
}

// ValidateStep checks the fields belonging to one wizard step. All rules for
// the step are evaluated and every violation is collected; within a single
// field the first failing condition masks the rest.
func (v *Validator) ValidateStep(step Step, record CaseRecord, now time.Time) Result {
	switch step {
	case StepConsumerIdentity:
		return v.validateConsumerIdentity(record)
	case StepFlightDetails:
		return v.validateFlightDetails(record, now)
	case StepComplaintDetails:
		return v.validateComplaintDetails(record)
	case StepDocuments:
		return v.validateDocuments(record)
	}
	return Result{IsValid: false, Errors: []string{fmt.Sprintf("Unknown validation step: %s", step)}}
}

// ValidateAll runs every step in form order and merges the results, so a full
// submission reports all violations at once.
func (v *Validator) ValidateAll(record CaseRecord, now time.Time) Result {
	result := Result{IsValid: true}
	for _, step := range Steps() {
		result = result.merge(v.ValidateStep(step, record, now))
	}
	return result
}

func (v *Validator) validateConsumerIdentity(record CaseRecord) Result {
	var errors, warnings []string

	name := strings.TrimSpace(record.ConsumerName)
	if name == "" {
		errors = append(errors, "Full name is required")
	} else if utf8.RuneCountInString(name) < 2 {
		errors = append(errors, "Full name must be at least 2 characters long")
	}

	if strings.TrimSpace(record.NationalID) == "" {
		errors = append(errors, "National ID or Passport number is required")
	} else if utf8.RuneCountInString(record.NationalID) < 8 {
		errors = append(errors, "National ID or Passport number must be at least 8 characters")
	} else if !nationalIDPattern.MatchString(record.NationalID) {
		errors = append(errors, "National ID or Passport number must contain only letters and numbers")
	}

	if strings.TrimSpace(record.Phone) == "" {
		errors = append(errors, "Phone number is required")
	} else if !phonePattern.MatchString(record.Phone) {
		errors = append(errors, "Please enter a valid phone number (minimum 10 digits)")
	}

	if strings.TrimSpace(record.Email) == "" {
		errors = append(errors, "Email address is required")
	} else if !emailPattern.MatchString(record.Email) {
		errors = append(errors, "Please enter a valid email address")
	}

	return Result{IsValid: len(errors) == 0, Errors: errors, Warnings: warnings}
}

func (v *Validator) validateFlightDetails(record CaseRecord, now time.Time) Result {
	var errors, warnings []string

	if strings.TrimSpace(record.BookingReference) == "" {
		errors = append(errors, "Booking reference is required")
	} else if !bookingRefPattern.MatchString(record.BookingReference) {
		errors = append(errors, "Booking reference must be exactly 6 alphanumeric characters")
	}

	if strings.TrimSpace(record.FlightNumber) == "" {
		errors = append(errors, "Flight number is required")
	} else if !v.flightPattern.MatchString(record.FlightNumber) {
		errors = append(errors, fmt.Sprintf("Flight number must start with '%s' followed by numbers (e.g., %s123)", v.carrierCode, v.carrierCode))
	}

	if record.FlightDate.IsZero() {
		errors = append(errors, "Flight date is required")
	} else {
		// Same-day-of-month subtraction; comparisons at day granularity.
		today := dateOnly(now)
		flightDay := dateOnly(record.FlightDate)
		twelveMonthsAgo := today.AddDate(-1, 0, 0)
		sixMonthsAgo := today.AddDate(0, -6, 0)

		if flightDay.Before(twelveMonthsAgo) {
			errors = append(errors, "Flight date must be within the last 12 months for complaint eligibility")
		}
		if flightDay.After(today) {
			errors = append(errors, "Flight date cannot be in the future")
		}
		if flightDay.Before(sixMonthsAgo) && !flightDay.Before(twelveMonthsAgo) {
			warnings = append(warnings, "Flight is older than 6 months - processing may take longer")
		}
	}

	if strings.TrimSpace(record.Origin) == "" {
		errors = append(errors, "Origin airport is required")
	} else if !airportPattern.MatchString(record.Origin) {
		errors = append(errors, "Origin airport must be a 3-letter airport code (e.g., RUH)")
	}

	if strings.TrimSpace(record.Destination) == "" {
		errors = append(errors, "Destination airport is required")
	} else if !airportPattern.MatchString(record.Destination) {
		errors = append(errors, "Destination airport must be a 3-letter airport code (e.g., JED)")
	}

	if record.Origin != "" && record.Destination != "" && record.Origin == record.Destination {
		errors = append(errors, "Origin and destination airports cannot be the same")
	}

	return Result{IsValid: len(errors) == 0, Errors: errors, Warnings: warnings}
}

func (v *Validator) validateComplaintDetails(record CaseRecord) Result {
	var errors, warnings []string

	if record.DisputeCategory == "" {
		errors = append(errors, "Dispute category is required")
	} else if !IsKnownCategory(record.DisputeCategory) {
		errors = append(errors, "Please select a valid dispute category")
	}

	description := strings.TrimSpace(record.Description)
	if description == "" {
		errors = append(errors, "Description of the issue is required")
	} else if utf8.RuneCountInString(description) < descriptionMinLen {
		errors = append(errors, "Please provide a more detailed description (minimum 20 characters)")
	} else if utf8.RuneCountInString(description) > descriptionMaxLen {
		errors = append(errors, "Description is too long (maximum 2000 characters)")
	}

	if record.DisputeCategory == CategoryOther {
		warnings = append(warnings, "'Other' category may require manual review and longer processing time")
	}

	return Result{IsValid: len(errors) == 0, Errors: errors, Warnings: warnings}
}

// validateDocuments never blocks advancement: documents are recommended at
// intake, not mandatory. The eligibility rules are where their absence bites.
func (v *Validator) validateDocuments(record CaseRecord) Result {
	var warnings []string
	if !record.HasDocuments {
		warnings = append(warnings,
			"Supporting documents are highly recommended for faster processing",
			"Required documents: boarding pass, ticket receipt, communication with airline",
		)
	}
	return Result{IsValid: true, Warnings: warnings}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
