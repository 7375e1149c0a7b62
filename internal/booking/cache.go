package booking

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"aeroclaim/internal/eligibility/ports"
	"aeroclaim/pkg/platform/sentinel"
)

const bookingKeyPrefix = "booking:ref:"

// notFoundMarker caches negative lookups so a mistyped reference does not
// hammer the reservation API on every wizard step.
const notFoundMarker = "!"

// CachedLookup is a read-through Redis cache in front of another booking
// lookup. Cache failures fall through to the inner lookup; the cache can
// never make a lookup fail.
type CachedLookup struct {
	inner  ports.BookingLookup
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// CacheOption configures a CachedLookup.
type CacheOption func(*CachedLookup)

// WithCacheLogger sets the logger for cache fallthrough warnings.
func WithCacheLogger(logger *slog.Logger) CacheOption {
	return func(c *CachedLookup) {
		c.logger = logger
	}
}

// NewCachedLookup wraps a booking lookup with a Redis cache.
func NewCachedLookup(inner ports.BookingLookup, client *redis.Client, ttl time.Duration, opts ...CacheOption) *CachedLookup {
	c := &CachedLookup{
		inner:  inner,
		client: client,
		ttl:    ttl,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *CachedLookup) Find(ctx context.Context, bookingReference string) (*ports.BookingRecord, error) {
	key := bookingKeyPrefix + bookingReference

	cached, err := c.client.Get(ctx, key).Result()
	switch {
	case err == nil:
		if cached == notFoundMarker {
			return nil, sentinel.ErrNotFound
		}
		var record ports.BookingRecord
		if err := json.Unmarshal([]byte(cached), &record); err == nil {
			return &record, nil
		}
		// Corrupt entry: treat as a miss and overwrite below.
	case !errors.Is(err, redis.Nil):
		if c.logger != nil {
			c.logger.WarnContext(ctx, "booking cache read failed", "error", err)
		}
	}

	record, err := c.inner.Find(ctx, bookingReference)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			c.store(ctx, key, notFoundMarker)
		}
		return nil, err
	}

	if payload, err := json.Marshal(record); err == nil {
		c.store(ctx, key, string(payload))
	}
	return record, nil
}

func (c *CachedLookup) store(ctx context.Context, key, value string) {
	if err := c.client.Set(ctx, key, value, c.ttl).Err(); err != nil && c.logger != nil {
		c.logger.WarnContext(ctx, "booking cache write failed", "error", err)
	}
}
