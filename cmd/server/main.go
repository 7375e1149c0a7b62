// Command server runs the dispute intake API: form validation, eligibility
// decisions, case persistence, and the audit pipeline. main wires
// dependencies and owns the process lifecycle; business logic lives in the
// internal services.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"aeroclaim/internal/booking"
	"aeroclaim/internal/cases"
	caseshandler "aeroclaim/internal/cases/handler"
	casesmemory "aeroclaim/internal/cases/store/memory"
	casespostgres "aeroclaim/internal/cases/store/postgres"
	"aeroclaim/internal/docanalysis"
	"aeroclaim/internal/eligibility"
	eligibilityhandler "aeroclaim/internal/eligibility/handler"
	eligibilitymetrics "aeroclaim/internal/eligibility/metrics"
	"aeroclaim/internal/eligibility/ports"
	"aeroclaim/internal/intake"
	"aeroclaim/internal/jwtauth"
	"aeroclaim/internal/platform/config"
	"aeroclaim/internal/platform/httpserver"
	"aeroclaim/internal/platform/logger"
	"aeroclaim/internal/platform/metrics"
	platformpg "aeroclaim/internal/platform/postgres"
	platformredis "aeroclaim/internal/platform/redis"
	httptransport "aeroclaim/internal/transport/http"
	"aeroclaim/pkg/platform/audit"
	"aeroclaim/pkg/platform/audit/publishers/stream"
	auditmemory "aeroclaim/pkg/platform/audit/store/memory"
	auditpg "aeroclaim/pkg/platform/audit/store/postgres"
	auditworker "aeroclaim/pkg/platform/audit/worker"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	if err := run(cfg, log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appMetrics := metrics.New()

	// Audit pipeline: durable store, background worker, optional Kafka mirror.
	auditStore, auditCleanup, err := buildAuditStore(cfg)
	if err != nil {
		return err
	}
	defer auditCleanup()

	inbox := make(chan audit.Event, 256)
	worker := auditworker.New(auditStore, inbox, log)
	go func() {
		if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("audit worker stopped", "error", err)
		}
	}()

	dispatcherOpts := []audit.DispatcherOption{audit.WithDispatcherLogger(log)}
	if len(cfg.KafkaBrokers) > 0 {
		publisher, err := stream.New(cfg.KafkaBrokers, cfg.KafkaAuditTopic, stream.WithLogger(log))
		if err != nil {
			return err
		}
		defer publisher.Close()
		dispatcherOpts = append(dispatcherOpts, audit.WithStream(publisher))
	}
	auditor := audit.NewDispatcher(auditStore, inbox, dispatcherOpts...)

	// Booking lookup: reservation API in production, allow-list in dev mode,
	// with an optional Redis read-through cache in front.
	bookings, err := buildBookingLookup(cfg, log)
	if err != nil {
		return err
	}

	policy := eligibility.Policy{
		UncoveredCategories:  []string{intake.CategoryOther},
		JurisdictionAirports: cfg.JurisdictionAirports,
		Regulator:            cfg.Regulator,
	}

	eligibilityOpts := []eligibility.Option{
		eligibility.WithLogger(log),
		eligibility.WithMetrics(eligibilitymetrics.New()),
		eligibility.WithAuditor(auditor),
	}
	if docs := buildDocumentAnalysis(cfg); docs != nil {
		eligibilityOpts = append(eligibilityOpts, eligibility.WithDocumentAnalysis(docs))
	}
	checker, err := eligibility.New(bookings, policy, eligibilityOpts...)
	if err != nil {
		return err
	}

	caseStore, storeCleanup, err := buildCaseStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer storeCleanup()

	validator := intake.New(intake.WithCarrierCode(cfg.CarrierCode))
	caseService, err := cases.New(validator, checker, caseStore,
		cases.WithLogger(log),
		cases.WithMetrics(appMetrics),
		cases.WithAuditor(auditor),
	)
	if err != nil {
		return err
	}

	tokens := jwtauth.NewService(cfg.JWTSigningKey, "aeroclaim", "aeroclaim-portal")

	router := httptransport.NewRouter(
		caseshandler.New(caseService, log),
		eligibilityhandler.New(checker, log),
		tokens,
		log,
	)

	srv := httpserver.New(cfg.Addr, router)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("graceful shutdown failed", "error", err)
		}
	}()

	log.Info("starting aeroclaim",
		"addr", cfg.Addr,
		"dev_mode", cfg.DevMode,
		"carrier", cfg.CarrierCode,
		"regulator", cfg.Regulator,
	)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func buildAuditStore(cfg config.Config) (audit.Store, func(), error) {
	if cfg.DevMode || cfg.PostgresURL == "" {
		return auditmemory.New(), func() {}, nil
	}
	db, err := sql.Open("postgres", cfg.PostgresURL)
	if err != nil {
		return nil, nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return auditpg.New(db), func() { _ = db.Close() }, nil
}

func buildBookingLookup(cfg config.Config, log *slog.Logger) (ports.BookingLookup, error) {
	var lookup ports.BookingLookup
	if cfg.DevMode || cfg.ReservationAPIURL == "" {
		lookup = booking.MockClient{Latency: 50 * time.Millisecond}
	} else {
		client, err := booking.NewClient(cfg.ReservationAPIURL, booking.WithTimeout(cfg.ReservationTimeout))
		if err != nil {
			return nil, err
		}
		lookup = client
	}

	redisClient, err := platformredis.New(cfg.RedisURL)
	if err != nil {
		return nil, err
	}
	if redisClient != nil {
		lookup = booking.NewCachedLookup(lookup, redisClient.Client, cfg.BookingCacheTTL,
			booking.WithCacheLogger(log))
	}

	return lookup, nil
}

func buildDocumentAnalysis(cfg config.Config) ports.DocumentAnalysis {
	if cfg.DevMode {
		return docanalysis.MockClient{Latency: 20 * time.Millisecond}
	}
	if cfg.DocumentAnalysisURL == "" {
		return nil
	}
	client, err := docanalysis.NewClient(cfg.DocumentAnalysisURL)
	if err != nil {
		return nil
	}
	return client
}

func buildCaseStore(ctx context.Context, cfg config.Config) (cases.Store, func(), error) {
	if cfg.DevMode || cfg.PostgresURL == "" {
		return casesmemory.New(), func() {}, nil
	}
	pool, err := platformpg.Connect(ctx, cfg.PostgresURL)
	if err != nil {
		return nil, nil, err
	}
	return casespostgres.New(pool), pool.Close, nil
}
