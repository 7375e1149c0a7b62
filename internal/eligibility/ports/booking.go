// Package ports defines the collaborator interfaces the eligibility service
// depends on, so the rules stay free of HTTP, Redis, and vendor concerns.
package ports

import (
	"context"
	"time"
)

// BookingLookup resolves a booking reference against the airline reservation
// system.
//
// Contract: a reference that does not exist returns sentinel.ErrNotFound
// (a business fact feeding the invalid verdict). Transport failures,
// timeouts, and malformed responses return any other error, which the service
// surfaces as an infrastructure failure rather than a verdict.
type BookingLookup interface {
	Find(ctx context.Context, bookingReference string) (*BookingRecord, error)
}

// BookingRecord is the reservation evidence returned by a successful lookup.
type BookingRecord struct {
	BookingReference string    `json:"booking_reference"`
	FlightNumber     string    `json:"flight_number"`
	FlightDate       string    `json:"flight_date"`
	Route            string    `json:"route"`
	CheckedAt        time.Time `json:"checked_at"`
}
