package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"aeroclaim/internal/eligibility"
	"aeroclaim/internal/intake"
	"aeroclaim/pkg/platform/httputil"
	"aeroclaim/pkg/requestcontext"
)

// Service defines the interface for eligibility operations.
type Service interface {
	Check(ctx context.Context, record intake.CaseRecord) (eligibility.Verdict, error)
}

// Handler wires eligibility endpoints to the eligibility service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs an eligibility handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts eligibility endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/eligibility/check", h.HandleCheck)
}

// HandleCheck handles POST /eligibility/check requests.
func (h *Handler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[CheckRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	verdict, err := h.service.Check(ctx, req.CaseRecord())
	if err != nil {
		h.logger.ErrorContext(ctx, "eligibility check failed",
			"request_id", requestID,
			"booking_reference", req.BookingReference,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "eligibility check completed",
		"request_id", requestID,
		"booking_reference", req.BookingReference,
		"status", verdict.Status,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, FromVerdict(verdict, requestcontext.Now(ctx)))
}
