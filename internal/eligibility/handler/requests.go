package handler

import (
	"strings"
	"time"

	"aeroclaim/internal/intake"
	dErrors "aeroclaim/pkg/domain-errors"
)

// CheckRequest is the HTTP request body for POST /eligibility/check. All
// fields mirror the claim form; an incomplete form is a legitimate input
// that the completeness guard rejects with a verdict, not a 4xx.
type CheckRequest struct {
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

	// Parsed values (populated by Validate)
	parsedFlightDate time.Time
}

// Validate normalizes and parses the request.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
//
// Normalization happens here so the engine sees canonical input: booking
// references, flight numbers, and airport codes are case-insensitive on the
// wire but uppercase in the domain.
func (r *CheckRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	r.ConsumerName = strings.TrimSpace(r.ConsumerName)
	r.NationalID = strings.TrimSpace(r.NationalID)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Email = strings.TrimSpace(r.Email)
	r.BookingReference = strings.ToUpper(strings.TrimSpace(r.BookingReference))
	r.FlightNumber = strings.ToUpper(strings.TrimSpace(r.FlightNumber))
	r.Origin = strings.ToUpper(strings.TrimSpace(r.Origin))
	r.Destination = strings.ToUpper(strings.TrimSpace(r.Destination))
	r.DisputeCategory = strings.TrimSpace(r.DisputeCategory)
	r.Description = strings.TrimSpace(r.Description)

	if len(r.Description) > 5000 {
		return dErrors.New(dErrors.CodeValidation, "description must be at most 5000 characters")
	}

	if r.FlightDate != "" {
		parsed, err := time.Parse("2006-01-02", r.FlightDate)
		if err != nil {
			return dErrors.New(dErrors.CodeValidation, "flight_date must be in YYYY-MM-DD format")
		}
		r.parsedFlightDate = parsed
	}

	return nil
}

// CaseRecord returns the normalized claim for evaluation.
func (r *CheckRequest) CaseRecord() intake.CaseRecord {
	return intake.CaseRecord{
		ConsumerName:     r.ConsumerName,
		NationalID:       r.NationalID,
		Phone:            r.Phone,
		Email:            r.Email,
		BookingReference: r.BookingReference,
		FlightNumber:     r.FlightNumber,
		FlightDate:       r.parsedFlightDate,
		Origin:           r.Origin,
		Destination:      r.Destination,
		DisputeCategory:  r.DisputeCategory,
		Description:      r.Description,
		HasDocuments:     r.HasDocuments,
	}
}
