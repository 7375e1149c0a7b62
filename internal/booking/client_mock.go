package booking

import (
	"context"
	"time"

	"aeroclaim/internal/eligibility/ports"
	"aeroclaim/pkg/platform/sentinel"
)

// MockClient serves a fixed set of bookings with a configurable latency to
// mimic real-world reservation lookups. Used in dev mode and tests.
type MockClient struct {
	Latency time.Duration
}

var mockBookings = map[string]ports.BookingRecord{
	"ABC123": {BookingReference: "ABC123", FlightNumber: "SV246", FlightDate: "2024-12-15", Route: "JED-RUH"},
	"DEF456": {BookingReference: "DEF456", FlightNumber: "SV102", FlightDate: "2025-01-20", Route: "RUH-JED"},
	"GHI789": {BookingReference: "GHI789", FlightNumber: "SV445", FlightDate: "2025-02-08", Route: "RUH-DXB"},
	"SVX7YQ": {BookingReference: "SVX7YQ", FlightNumber: "SV246", FlightDate: "2025-03-11", Route: "JED-RUH"},
}

func (c MockClient) Find(_ context.Context, bookingReference string) (*ports.BookingRecord, error) {
	time.Sleep(c.Latency)
	record, ok := mockBookings[bookingReference]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	record.CheckedAt = time.Now()
	return &record, nil
}
