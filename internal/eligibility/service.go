package eligibility

import (
	"context"
	"log/slog"
	"time"

	"aeroclaim/internal/eligibility/metrics"
	"aeroclaim/internal/eligibility/ports"
	"aeroclaim/internal/intake"
	"aeroclaim/pkg/domain"
	dErrors "aeroclaim/pkg/domain-errors"
	"aeroclaim/pkg/platform/audit"
	"aeroclaim/pkg/platform/middleware/metadata"
	"aeroclaim/pkg/requestcontext"
)

const evidenceTimeout = 5 * time.Second

// Service runs the eligibility decision for a claim: gather evidence from
// collaborators, then hand everything to the pure rule chain. The service
// owns no verdict logic of its own.
type Service struct {
	bookings  ports.BookingLookup
	documents ports.DocumentAnalysis
	policy    Policy
	auditor   audit.Emitter
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithDocumentAnalysis(d ports.DocumentAnalysis) Option {
	return func(s *Service) {
		s.documents = d
	}
}

func WithAuditor(a audit.Emitter) Option {
	return func(s *Service) {
		s.auditor = a
	}
}

func New(bookings ports.BookingLookup, policy Policy, opts ...Option) (*Service, error) {
	if bookings == nil {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "booking lookup is required")
	}
	if policy.Regulator == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "policy regulator is required")
	}
	// Jurisdiction airports come from config; a malformed code would silently
	// break route coverage, so reject it at construction.
	for _, code := range policy.JurisdictionAirports {
		if _, err := domain.ParseAirportCode(code); err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInvariantViolation, "policy jurisdiction airports")
		}
	}

	svc := &Service{
		bookings: bookings,
		policy:   policy,
	}

	for _, opt := range opts {
		opt(svc)
	}

	return svc, nil
}

// Check evaluates a claim and returns a verdict. Business-rule failures are
// verdicts, never errors; an error means a required collaborator was
// unreachable and the evaluation could not complete.
func (s *Service) Check(ctx context.Context, record intake.CaseRecord) (Verdict, error) {
	start := time.Now()
	now := requestcontext.Now(ctx)

	evidence, err := s.gatherEvidence(ctx, record)
	if err != nil {
		if s.logger != nil {
			s.logger.ErrorContext(ctx, "evidence gathering failed",
				"booking_reference", record.BookingReference,
				"error", err,
			)
		}
		s.emitAudit(ctx, record, audit.ActionBookingLookupError, "", err.Error())
		return Verdict{}, dErrors.Wrap(err, dErrors.CodeUnavailable, "reservation system unavailable")
	}

	verdict := Evaluate(record, *evidence, s.policy, now)

	s.metrics.IncrementVerdict(string(verdict.Status))
	s.metrics.ObserveEvaluateLatency(time.Since(start))

	if s.logger != nil {
		s.logger.InfoContext(ctx, "eligibility evaluated",
			"booking_reference", record.BookingReference,
			"status", verdict.Status,
		)
	}
	s.emitAudit(ctx, record, audit.ActionEligibilityChecked, string(verdict.Status), verdict.Message)

	return verdict, nil
}

func (s *Service) emitAudit(ctx context.Context, record intake.CaseRecord, action audit.Action, decision, reason string) {
	if s.auditor == nil {
		return
	}
	err := s.auditor.Emit(ctx, audit.Event{
		Action:           action,
		BookingReference: record.BookingReference,
		SubjectHash:      domain.SubjectHash(record.NationalID),
		Decision:         decision,
		Reason:           reason,
		RequestID:        requestcontext.RequestID(ctx),
		ClientIP:         metadata.GetClientIP(ctx),
		Device:           metadata.GetDevice(ctx),
	})
	if err != nil && s.logger != nil {
		s.logger.WarnContext(ctx, "audit emit failed", "action", action, "error", err)
	}
}
