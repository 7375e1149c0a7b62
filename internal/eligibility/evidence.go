package eligibility

import (
	"context"
	"errors"
	"time"

	"aeroclaim/internal/intake"
	"aeroclaim/pkg/platform/sentinel"

	"golang.org/x/sync/errgroup"
)

// gatherEvidence orchestrates parallel evidence gathering with shared context
// cancellation. A booking reference that resolves to nothing is evidence (nil
// Booking), not an error; only transport failures propagate.
func (s *Service) gatherEvidence(ctx context.Context, record intake.CaseRecord) (*Evidence, error) {
	ctx, cancel := context.WithTimeout(ctx, evidenceTimeout)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	evidence := &Evidence{}

	// There is nothing to look up when the record is incomplete; the
	// completeness guard rejects it before booking evidence matters.
	if record.BookingReference == "" {
		return evidence, nil
	}

	g.Go(func() error {
		start := time.Now()
		booking, err := s.bookings.Find(ctx, record.BookingReference)
		s.metrics.ObserveEvidenceLatency("booking", time.Since(start))

		if err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return nil
			}
			return err
		}
		evidence.Booking = booking
		return nil
	})

	// Document analysis is advisory - a failure never blocks the verdict
	if s.documents != nil && record.HasDocuments {
		g.Go(func() error {
			start := time.Now()
			report, err := s.documents.Analyze(ctx, record.Description, nil)
			s.metrics.ObserveEvidenceLatency("documents", time.Since(start))

			if err != nil {
				if s.logger != nil {
					s.logger.DebugContext(ctx, "document analysis failed",
						"booking_reference", record.BookingReference,
						"error", err,
					)
				}
				return nil
			}
			evidence.Analysis = report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return evidence, nil
}
