package cases

import (
	"context"
	"errors"
	"log/slog"

	"aeroclaim/internal/eligibility"
	"aeroclaim/internal/intake"
	"aeroclaim/internal/platform/metrics"
	"aeroclaim/pkg/domain"
	dErrors "aeroclaim/pkg/domain-errors"
	"aeroclaim/pkg/platform/audit"
	"aeroclaim/pkg/platform/middleware/metadata"
	"aeroclaim/pkg/platform/sentinel"
	"aeroclaim/pkg/requestcontext"
)

// EligibilityChecker decides whether a validated claim can proceed.
type EligibilityChecker interface {
	Check(ctx context.Context, record intake.CaseRecord) (eligibility.Verdict, error)
}

// Service orchestrates the case lifecycle.
type Service struct {
	validator *intake.Validator
	checker   EligibilityChecker
	store     Store
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

func WithAuditor(a audit.Emitter) Option {
	return func(s *Service) {
		s.auditor = a
	}
}

func New(validator *intake.Validator, checker EligibilityChecker, store Store, opts ...Option) (*Service, error) {
	if validator == nil {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "validator is required")
	}
	if checker == nil {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "eligibility checker is required")
	}
	if store == nil {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "case store is required")
	}

	svc := &Service{
		validator: validator,
		checker:   checker,
		store:     store,
	}

	for _, opt := range opts {
		opt(svc)
	}

	return svc, nil
}

// ValidateStep checks one wizard step without touching any collaborator.
func (s *Service) ValidateStep(ctx context.Context, step intake.Step, record intake.CaseRecord) intake.Result {
	return s.validator.ValidateStep(step, record, requestcontext.Now(ctx))
}

// ValidateAll checks the whole form without touching any collaborator.
func (s *Service) ValidateAll(ctx context.Context, record intake.CaseRecord) intake.Result {
	return s.validator.ValidateAll(record, requestcontext.Now(ctx))
}

// Submit runs the full intake pipeline: field validation, eligibility
// decision, persistence. A validation failure is a business outcome, not an
// error, and persists nothing. An error means a collaborator or the store
// failed and the submission should be retried.
func (s *Service) Submit(ctx context.Context, record intake.CaseRecord) (SubmitResult, error) {
	now := requestcontext.Now(ctx)

	validation := s.validator.ValidateAll(record, now)
	if !validation.IsValid {
		s.metrics.IncrementValidationErrors()
		s.emitAudit(ctx, audit.Event{
			Action:           audit.ActionValidationRejected,
			BookingReference: record.BookingReference,
			SubjectHash:      domain.SubjectHash(record.NationalID),
			Reason:           validation.Errors[0],
		})
		if s.logger != nil {
			s.logger.InfoContext(ctx, "case submission rejected by validation",
				"booking_reference", record.BookingReference,
				"violations", len(validation.Errors),
			)
		}
		return SubmitResult{Validation: validation}, nil
	}

	verdict, err := s.checker.Check(ctx, record)
	if err != nil {
		return SubmitResult{}, err
	}

	c := Case{
		ID:          domain.NewCaseID(),
		Record:      record,
		Status:      StatusFromVerdict(verdict),
		Verdict:     verdict,
		SubmittedAt: now,
	}

	if err := s.store.Save(ctx, c); err != nil {
		return SubmitResult{}, dErrors.Wrap(err, dErrors.CodeInternal, "persist case")
	}

	s.metrics.IncrementCasesSubmitted(string(c.Status))
	s.emitAudit(ctx, audit.Event{
		Action:           audit.ActionCaseSubmitted,
		CaseID:           c.ID.String(),
		BookingReference: record.BookingReference,
		SubjectHash:      domain.SubjectHash(record.NationalID),
		Decision:         string(c.Status),
		Reason:           verdict.Message,
	})
	if s.logger != nil {
		s.logger.InfoContext(ctx, "case submitted",
			"case_id", c.ID,
			"booking_reference", record.BookingReference,
			"status", c.Status,
		)
	}

	return SubmitResult{Validation: validation, Case: &c}, nil
}

// Get returns a case by ID.
func (s *Service) Get(ctx context.Context, caseID domain.CaseID) (Case, error) {
	c, err := s.store.FindByID(ctx, caseID.String())
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return Case{}, dErrors.New(dErrors.CodeNotFound, "case not found")
		}
		return Case{}, dErrors.Wrap(err, dErrors.CodeInternal, "find case")
	}
	return c, nil
}

// ListByBookingReference returns every case filed against a booking.
func (s *Service) ListByBookingReference(ctx context.Context, bookingReference string) ([]Case, error) {
	list, err := s.store.ListByBookingReference(ctx, bookingReference)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "list cases")
	}
	return list, nil
}

func (s *Service) emitAudit(ctx context.Context, event audit.Event) {
	if s.auditor == nil {
		return
	}
	event.RequestID = requestcontext.RequestID(ctx)
	event.ClientIP = metadata.GetClientIP(ctx)
	event.Device = metadata.GetDevice(ctx)
	if err := s.auditor.Emit(ctx, event); err != nil && s.logger != nil {
		s.logger.WarnContext(ctx, "audit emit failed", "action", event.Action, "error", err)
	}
}
