//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"aeroclaim/internal/cases"
	"aeroclaim/internal/cases/store/postgres"
	"aeroclaim/internal/eligibility"
	"aeroclaim/internal/intake"
	"aeroclaim/pkg/domain"
	"aeroclaim/pkg/platform/sentinel"
	"aeroclaim/pkg/testutil/containers"
)

// =============================================================================
// Postgres Case Store Integration Suite
// =============================================================================

const schema = `
CREATE TABLE IF NOT EXISTS dispute_cases (
    id               UUID PRIMARY KEY,
    consumer_name    TEXT NOT NULL,
    national_id      TEXT NOT NULL,
    phone            TEXT NOT NULL,
    email            TEXT NOT NULL,
    booking_reference TEXT NOT NULL,
    flight_number    TEXT NOT NULL,
    flight_date      DATE NOT NULL,
    origin           TEXT NOT NULL,
    destination      TEXT NOT NULL,
    dispute_category TEXT NOT NULL,
    description      TEXT NOT NULL,
    has_documents    BOOLEAN NOT NULL,
    status           TEXT NOT NULL,
    verdict_status   TEXT NOT NULL,
    verdict_message  TEXT NOT NULL,
    verdict_details  JSONB NOT NULL DEFAULT '[]',
    submitted_at     TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS dispute_cases_booking_ref_idx ON dispute_cases (booking_reference);`

type PostgresStoreSuite struct {
	suite.Suite
	pg    *containers.PostgresContainer
	store *postgres.Store
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.pg = containers.NewPostgresContainer(s.T())
	s.Require().NoError(s.pg.Exec(context.Background(), schema))
	s.store = postgres.New(s.pg.Pool)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.pg.Exec(context.Background(), "TRUNCATE dispute_cases"))
}

func (s *PostgresStoreSuite) newCase() cases.Case {
	return cases.Case{
		ID: domain.NewCaseID(),
		Record: intake.CaseRecord{
			ConsumerName:     "Fatimah Al-Zahrani",
			NationalID:       "1098765432",
			Phone:            "+966501234567",
			Email:            "fatimah@example.com",
			BookingReference: "ABC123",
			FlightNumber:     "SV246",
			FlightDate:       time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC),
			Origin:           "JED",
			Destination:      "RUH",
			DisputeCategory:  intake.CategoryFlightDelay,
			Description:      "Flight delayed over four hours without assistance.",
			HasDocuments:     true,
		},
		Status: cases.StatusOpen,
		Verdict: eligibility.Verdict{
			Status:  eligibility.StatusEligible,
			Message: "Your dispute is eligible for processing under GACA regulations",
			Details: []string{"All eligibility requirements met"},
		},
		SubmittedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
}

func (s *PostgresStoreSuite) TestRoundTrip() {
	ctx := context.Background()
	c := s.newCase()

	s.Require().NoError(s.store.Save(ctx, c))

	found, err := s.store.FindByID(ctx, c.ID.String())
	s.Require().NoError(err)
	s.Equal(c.ID, found.ID)
	s.Equal(c.Record.ConsumerName, found.Record.ConsumerName)
	s.Equal(c.Record.BookingReference, found.Record.BookingReference)
	s.Equal(c.Record.FlightDate.Format("2006-01-02"), found.Record.FlightDate.Format("2006-01-02"))
	s.Equal(c.Status, found.Status)
	s.Equal(c.Verdict.Status, found.Verdict.Status)
	s.Equal(c.Verdict.Details, found.Verdict.Details)
}

func (s *PostgresStoreSuite) TestFindMissing() {
	_, err := s.store.FindByID(context.Background(), domain.NewCaseID().String())
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestListByBookingReference() {
	ctx := context.Background()

	first := s.newCase()
	second := s.newCase()
	second.SubmittedAt = first.SubmittedAt.Add(time.Minute)
	other := s.newCase()
	other.Record.BookingReference = "DEF456"

	for _, c := range []cases.Case{first, second, other} {
		s.Require().NoError(s.store.Save(ctx, c))
	}

	list, err := s.store.ListByBookingReference(ctx, "ABC123")
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal(first.ID, list[0].ID)
	s.Equal(second.ID, list[1].ID)
}
