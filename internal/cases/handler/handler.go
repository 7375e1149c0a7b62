package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"aeroclaim/internal/cases"
	"aeroclaim/internal/intake"
	"aeroclaim/pkg/domain"
	dErrors "aeroclaim/pkg/domain-errors"
	"aeroclaim/pkg/platform/httputil"
	"aeroclaim/pkg/requestcontext"
)

// Service defines the interface for case operations.
type Service interface {
	Submit(ctx context.Context, record intake.CaseRecord) (cases.SubmitResult, error)
	ValidateStep(ctx context.Context, step intake.Step, record intake.CaseRecord) intake.Result
	ValidateAll(ctx context.Context, record intake.CaseRecord) intake.Result
	Get(ctx context.Context, caseID domain.CaseID) (cases.Case, error)
	ListByBookingReference(ctx context.Context, bookingReference string) ([]cases.Case, error)
}

// Handler wires case endpoints to the case service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a case handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts the public case endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/cases", h.HandleSubmit)
	r.Post("/cases/validate", h.HandleValidate)
}

// RegisterProtected mounts case endpoints that require authentication.
func (h *Handler) RegisterProtected(r chi.Router) {
	r.Get("/cases", h.HandleList)
	r.Get("/cases/{caseID}", h.HandleGet)
}

// HandleSubmit handles POST /cases requests.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[SubmitRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.Submit(ctx, req.CaseRecord())
	if err != nil {
		h.logger.ErrorContext(ctx, "case submission failed",
			"request_id", requestID,
			"booking_reference", req.BookingReference,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	status := http.StatusCreated
	if !result.Accepted() {
		status = http.StatusUnprocessableEntity
	}

	h.logger.InfoContext(ctx, "case submission handled",
		"request_id", requestID,
		"booking_reference", req.BookingReference,
		"accepted", result.Accepted(),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, status, FromSubmitResult(result))
}

// HandleValidate handles POST /cases/validate requests.
func (h *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[ValidateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	record := req.Form.CaseRecord()
	step, wholeForm := req.ParsedStep()

	var result intake.Result
	if wholeForm {
		result = h.service.ValidateAll(ctx, record)
	} else {
		result = h.service.ValidateStep(ctx, step, record)
	}

	httputil.WriteJSON(w, http.StatusOK, FromResult(result))
}

// HandleList handles GET /cases?booking_reference= requests.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	raw := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("booking_reference")))
	ref, err := domain.ParseBookingReference(raw)
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid booking reference"))
		return
	}

	list, err := h.service.ListByBookingReference(ctx, ref.String())
	if err != nil {
		h.logger.ErrorContext(ctx, "case list failed",
			"request_id", requestID,
			"booking_reference", ref,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromCases(list))
}

// HandleGet handles GET /cases/{caseID} requests.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	caseID, err := domain.ParseCaseID(chi.URLParam(r, "caseID"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid case id"))
		return
	}

	c, err := h.service.Get(ctx, caseID)
	if err != nil {
		if !dErrors.HasCode(err, dErrors.CodeNotFound) {
			h.logger.ErrorContext(ctx, "case lookup failed",
				"request_id", requestID,
				"case_id", caseID,
				"error", err,
			)
		}
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromCase(&c))
}
