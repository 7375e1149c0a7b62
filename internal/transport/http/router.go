// Package http assembles the chi router: middleware chain, public wizard
// endpoints, authenticated case reads, and operational endpoints.
package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	caseshandler "aeroclaim/internal/cases/handler"
	eligibilityhandler "aeroclaim/internal/eligibility/handler"
	authmw "aeroclaim/pkg/platform/middleware/auth"
	"aeroclaim/pkg/platform/middleware/metadata"
	"aeroclaim/pkg/platform/middleware/requesttime"
	"aeroclaim/pkg/requestcontext"
)

// NewRouter wires all endpoints with the standard middleware chain. The
// request-time middleware stamps the evaluation clock every date rule reads.
func NewRouter(cases *caseshandler.Handler, eligibility *eligibilityhandler.Handler, tokens authmw.TokenValidator, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(propagateRequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(requesttime.Middleware)
	r.Use(metadata.ClientMetadata)

	// Public wizard endpoints: the claim wizard runs before any session exists.
	r.Group(func(r chi.Router) {
		cases.Register(r)
		eligibility.Register(r)
	})

	// Case reads require a portal token.
	r.Group(func(r chi.Router) {
		r.Use(authmw.RequireToken(tokens, logger))
		cases.RegisterProtected(r)
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}

// propagateRequestID copies chi's request ID into the transport-agnostic
// context accessor services and audit events read.
func propagateRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		ctx = requestcontext.WithRequestID(ctx, chimw.GetReqID(ctx))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
