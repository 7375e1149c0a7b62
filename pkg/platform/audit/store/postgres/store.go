// Package postgres persists audit events in an append-only table via
// database/sql (lib/pq driver). The table is the compliance record; the
// stream publisher fans the same events out for monitoring.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	audit "aeroclaim/pkg/platform/audit"
)

// Store implements audit.Store against an append-only audit_events table.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const insertEvent = `
INSERT INTO audit_events (
	id, category, occurred_at, action, case_id, booking_reference,
	subject_hash, decision, reason, request_id, client_ip, device
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

// Append writes a single event. Category is always derived from the action so
// the map in the audit package stays the source of truth.
func (s *Store) Append(ctx context.Context, event audit.Event) error {
	category := audit.CategoryFor(event.Action)

	_, err := s.db.ExecContext(ctx, insertEvent,
		uuid.NewString(),
		string(category),
		event.Timestamp,
		string(event.Action),
		nullable(event.CaseID),
		nullable(event.BookingReference),
		nullable(event.SubjectHash),
		nullable(event.Decision),
		nullable(event.Reason),
		nullable(event.RequestID),
		nullable(event.ClientIP),
		nullable(event.Device),
	)
	if err != nil {
		return fmt.Errorf("append audit event: %w", err)
	}
	return nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
