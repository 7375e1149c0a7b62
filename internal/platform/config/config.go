// Package config builds runtime configuration from environment variables so
// main stays lean. Defaults suit local development; production overrides
// everything via the environment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	platformstrings "aeroclaim/pkg/platform/strings"
)

// Config captures all service-level configuration.
type Config struct {
	Addr     string
	LogLevel string

	// DevMode swaps external collaborators for in-process fakes: memory case
	// store, static booking allow-list, memory audit store.
	DevMode bool

	PostgresURL string
	RedisURL    string

	KafkaBrokers    []string
	KafkaAuditTopic string

	// ReservationAPIURL is the base URL of the airline reservation system the
	// booking-existence guard queries.
	ReservationAPIURL   string
	ReservationTimeout  time.Duration
	BookingCacheTTL     time.Duration
	DocumentAnalysisURL string

	// CarrierCode is the flight-number prefix accepted by intake validation.
	CarrierCode string

	// Regulator names the consumer-protection authority in eligible verdicts.
	Regulator string

	// JurisdictionAirports lists the airport codes under the regulator's
	// authority; a route qualifies when either endpoint is in this set.
	JurisdictionAirports []string

	JWTSigningKey string
}

// FromEnv builds a Config from environment variables.
func FromEnv() Config {
	cfg := Config{
		Addr:                 envOr("AEROCLAIM_ADDR", ":8080"),
		LogLevel:             envOr("AEROCLAIM_LOG_LEVEL", "info"),
		DevMode:              os.Getenv("AEROCLAIM_DEV_MODE") == "true",
		PostgresURL:          os.Getenv("AEROCLAIM_POSTGRES_URL"),
		RedisURL:             os.Getenv("AEROCLAIM_REDIS_URL"),
		KafkaAuditTopic:      envOr("AEROCLAIM_KAFKA_AUDIT_TOPIC", "aeroclaim.audit"),
		ReservationAPIURL:    os.Getenv("AEROCLAIM_RESERVATION_API_URL"),
		ReservationTimeout:   envDuration("AEROCLAIM_RESERVATION_TIMEOUT", 5*time.Second),
		BookingCacheTTL:      envDuration("AEROCLAIM_BOOKING_CACHE_TTL", 10*time.Minute),
		DocumentAnalysisURL:  os.Getenv("AEROCLAIM_DOC_ANALYSIS_URL"),
		CarrierCode:          envOr("AEROCLAIM_CARRIER_CODE", "SV"),
		Regulator:            envOr("AEROCLAIM_REGULATOR", "GACA"),
		JurisdictionAirports: envAirportList("AEROCLAIM_JURISDICTION_AIRPORTS", defaultJurisdictionAirports),
		JWTSigningKey:        envOr("AEROCLAIM_JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
	}

	if brokers := os.Getenv("AEROCLAIM_KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = platformstrings.DedupeAndTrim(strings.Split(brokers, ","))
	}

	return cfg
}

// defaultJurisdictionAirports is the regulator's home-country airport set.
var defaultJurisdictionAirports = []string{"RUH", "JED", "DMM", "AHB", "TIF", "MED", "GIZ", "AQI"}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}

func envAirportList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return platformstrings.DedupeAndTrimUpper(strings.Split(v, ","))
}
