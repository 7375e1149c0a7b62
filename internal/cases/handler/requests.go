package handler

import (
	"strings"
	"time"

	"aeroclaim/internal/intake"
	dErrors "aeroclaim/pkg/domain-errors"
)

// CaseForm is the claim form as submitted by the portal. It is shared by the
// submit and validate endpoints; both accept partially filled forms, since
// the validators are the ones that decide what is missing.
type CaseForm struct {
	ConsumerName     string `json:"consumer_name"`
	NationalID       string `json:"national_id"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	BookingReference string `json:"booking_reference"`
	FlightNumber     string `json:"flight_number"`
	FlightDate       string `json:"flight_date"`
	Origin           string `json:"origin"`
	Destination      string `json:"destination"`
	DisputeCategory  string `json:"dispute_category"`
	Description      string `json:"description"`
	HasDocuments     bool   `json:"has_documents"`

	parsedFlightDate time.Time
}

// normalize trims and canonicalizes the form in place. Booking references,
// flight numbers, and airport codes are case-insensitive on the wire but
// uppercase in the domain.
func (f *CaseForm) normalize() error {
	f.ConsumerName = strings.TrimSpace(f.ConsumerName)
	f.NationalID = strings.TrimSpace(f.NationalID)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Email = strings.TrimSpace(f.Email)
	f.BookingReference = strings.ToUpper(strings.TrimSpace(f.BookingReference))
	f.FlightNumber = strings.ToUpper(strings.TrimSpace(f.FlightNumber))
	f.Origin = strings.ToUpper(strings.TrimSpace(f.Origin))
	f.Destination = strings.ToUpper(strings.TrimSpace(f.Destination))
	f.DisputeCategory = strings.TrimSpace(f.DisputeCategory)
	f.Description = strings.TrimSpace(f.Description)

	if len(f.Description) > 5000 {
		return dErrors.New(dErrors.CodeValidation, "description must be at most 5000 characters")
	}

	if f.FlightDate != "" {
		parsed, err := time.Parse("2006-01-02", f.FlightDate)
		if err != nil {
			return dErrors.New(dErrors.CodeValidation, "flight_date must be in YYYY-MM-DD format")
		}
		f.parsedFlightDate = parsed
	}
	return nil
}

// CaseRecord returns the normalized claim.
func (f *CaseForm) CaseRecord() intake.CaseRecord {
	return intake.CaseRecord{
		ConsumerName:     f.ConsumerName,
		NationalID:       f.NationalID,
		Phone:            f.Phone,
		Email:            f.Email,
		BookingReference: f.BookingReference,
		FlightNumber:     f.FlightNumber,
		FlightDate:       f.parsedFlightDate,
		Origin:           f.Origin,
		Destination:      f.Destination,
		DisputeCategory:  f.DisputeCategory,
		Description:      f.Description,
		HasDocuments:     f.HasDocuments,
	}
}

// SubmitRequest is the HTTP request body for POST /cases.
type SubmitRequest struct {
	CaseForm
}

// Validate normalizes the request.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *SubmitRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	return r.normalize()
}

// ValidateRequest is the HTTP request body for POST /cases/validate. An empty
// step validates the whole form.
type ValidateRequest struct {
	Step string   `json:"step,omitempty"`
	Form CaseForm `json:"form"`

	parsedStep intake.Step
	wholeForm  bool
}

// Validate normalizes the request and parses the step.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *ValidateRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	r.Step = strings.TrimSpace(r.Step)
	if r.Step == "" {
		r.wholeForm = true
	} else {
		step, ok := intake.ParseStep(r.Step)
		if !ok {
			return dErrors.New(dErrors.CodeValidation, "unknown validation step")
		}
		r.parsedStep = step
	}

	return r.Form.normalize()
}

// ParsedStep returns the validated step and whether the whole form was
// requested instead.
func (r *ValidateRequest) ParsedStep() (intake.Step, bool) {
	return r.parsedStep, r.wholeForm
}
