// Package postgres persists cases in PostgreSQL via pgx.
//
// Schema:
//
//	CREATE TABLE dispute_cases (
//	    id               UUID PRIMARY KEY,
//	    consumer_name    TEXT NOT NULL,
//	    national_id      TEXT NOT NULL,
//	    phone            TEXT NOT NULL,
//	    email            TEXT NOT NULL,
//	    booking_reference TEXT NOT NULL,
//	    flight_number    TEXT NOT NULL,
//	    flight_date      DATE NOT NULL,
//	    origin           TEXT NOT NULL,
//	    destination      TEXT NOT NULL,
//	    dispute_category TEXT NOT NULL,
//	    description      TEXT NOT NULL,
//	    has_documents    BOOLEAN NOT NULL,
//	    status           TEXT NOT NULL,
//	    verdict_status   TEXT NOT NULL,
//	    verdict_message  TEXT NOT NULL,
//	    verdict_details  JSONB NOT NULL DEFAULT '[]',
//	    submitted_at     TIMESTAMPTZ NOT NULL
//	);
//	CREATE INDEX dispute_cases_booking_ref_idx ON dispute_cases (booking_reference);
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"aeroclaim/internal/cases"
	"aeroclaim/internal/eligibility"
	"aeroclaim/pkg/domain"
	"aeroclaim/pkg/platform/sentinel"
)

// Store persists cases in PostgreSQL.
type Store struct {
	pool *pgxpool.Pool
}

// New constructs a PostgreSQL-backed case store.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) Save(ctx context.Context, c cases.Case) error {
	details, err := json.Marshal(c.Verdict.Details)
	if err != nil {
		return fmt.Errorf("marshal verdict details: %w", err)
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO dispute_cases (
			id, consumer_name, national_id, phone, email,
			booking_reference, flight_number, flight_date, origin, destination,
			dispute_category, description, has_documents,
			status, verdict_status, verdict_message, verdict_details, submitted_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)`,
		c.ID.String(), c.Record.ConsumerName, c.Record.NationalID, c.Record.Phone, c.Record.Email,
		c.Record.BookingReference, c.Record.FlightNumber, c.Record.FlightDate, c.Record.Origin, c.Record.Destination,
		c.Record.DisputeCategory, c.Record.Description, c.Record.HasDocuments,
		string(c.Status), string(c.Verdict.Status), c.Verdict.Message, details, c.SubmittedAt,
	)
	if err != nil {
		return fmt.Errorf("save case: %w", err)
	}
	return nil
}

func (s *Store) FindByID(ctx context.Context, id string) (cases.Case, error) {
	row := s.pool.QueryRow(ctx, selectColumns+` FROM dispute_cases WHERE id = $1`, id)
	c, err := scanCase(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return cases.Case{}, sentinel.ErrNotFound
		}
		return cases.Case{}, fmt.Errorf("find case by id: %w", err)
	}
	return c, nil
}

func (s *Store) ListByBookingReference(ctx context.Context, bookingReference string) ([]cases.Case, error) {
	rows, err := s.pool.Query(ctx,
		selectColumns+` FROM dispute_cases WHERE booking_reference = $1 ORDER BY submitted_at`,
		bookingReference,
	)
	if err != nil {
		return nil, fmt.Errorf("list cases by booking reference: %w", err)
	}
	defer rows.Close()

	var out []cases.Case
	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			return nil, fmt.Errorf("scan case: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cases: %w", err)
	}
	return out, nil
}

const selectColumns = `
	SELECT id, consumer_name, national_id, phone, email,
	       booking_reference, flight_number, flight_date, origin, destination,
	       dispute_category, description, has_documents,
	       status, verdict_status, verdict_message, verdict_details, submitted_at`

func scanCase(row pgx.Row) (cases.Case, error) {
	var (
		c          cases.Case
		rawID      string
		status     string
		vStatus    string
		rawDetails []byte
		flightDate time.Time
	)
	err := row.Scan(
		&rawID, &c.Record.ConsumerName, &c.Record.NationalID, &c.Record.Phone, &c.Record.Email,
		&c.Record.BookingReference, &c.Record.FlightNumber, &flightDate, &c.Record.Origin, &c.Record.Destination,
		&c.Record.DisputeCategory, &c.Record.Description, &c.Record.HasDocuments,
		&status, &vStatus, &c.Verdict.Message, &rawDetails, &c.SubmittedAt,
	)
	if err != nil {
		return cases.Case{}, err
	}

	caseID, err := domain.ParseCaseID(rawID)
	if err != nil {
		return cases.Case{}, fmt.Errorf("parse case id: %w", err)
	}
	c.ID = caseID
	c.Record.FlightDate = flightDate
	c.Status = cases.Status(status)
	c.Verdict.Status = eligibility.Status(vStatus)

	if len(rawDetails) > 0 {
		if err := json.Unmarshal(rawDetails, &c.Verdict.Details); err != nil {
			return cases.Case{}, fmt.Errorf("unmarshal verdict details: %w", err)
		}
	}
	return c, nil
}
