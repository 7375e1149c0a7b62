package worker_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	dErrors "aeroclaim/pkg/domain-errors"
	"aeroclaim/pkg/platform/audit"
	auditmemory "aeroclaim/pkg/platform/audit/store/memory"
	"aeroclaim/pkg/platform/audit/worker"
)

// =============================================================================
// Worker
// =============================================================================

type WorkerSuite struct {
	suite.Suite
}

func TestWorkerSuite(t *testing.T) {
	suite.Run(t, new(WorkerSuite))
}

func (s *WorkerSuite) TestDrainsInboxIntoStore() {
	store := auditmemory.New()
	inbox := make(chan audit.Event, 4)
	w := worker.New(store, inbox, slog.New(slog.DiscardHandler))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = w.Run(ctx)
	}()

	inbox <- audit.Event{Action: audit.ActionValidationRejected}
	inbox <- audit.Event{Action: audit.ActionBookingLookupError}

	s.Eventually(func() bool {
		return len(store.Events()) == 2
	}, time.Second, 5*time.Millisecond)

	cancel()
	<-done

	events := store.Events()
	s.Equal(audit.ActionValidationRejected, events[0].Action)
	s.Equal(audit.ActionBookingLookupError, events[1].Action)
}

func (s *WorkerSuite) TestRunReturnsOnContextCancel() {
	w := worker.New(auditmemory.New(), make(chan audit.Event), slog.New(slog.DiscardHandler))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := w.Run(ctx)
	s.ErrorIs(err, context.Canceled)
}

func (s *WorkerSuite) TestFailedAppendDoesNotStopDraining() {
	store := &flakyStore{failFirst: 1, inner: auditmemory.New()}
	inbox := make(chan audit.Event, 2)
	w := worker.New(store, inbox, slog.New(slog.DiscardHandler))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	inbox <- audit.Event{Action: audit.ActionValidationRejected}
	inbox <- audit.Event{Action: audit.ActionBookingLookupError}

	// First event is dropped on append failure; the second still lands.
	s.Eventually(func() bool {
		return len(store.inner.Events()) == 1
	}, time.Second, 5*time.Millisecond)
	s.Equal(audit.ActionBookingLookupError, store.inner.Events()[0].Action)
}

// flakyStore fails the first N appends, then delegates.
type flakyStore struct {
	failFirst int
	inner     *auditmemory.Store
}

func (f *flakyStore) Append(ctx context.Context, event audit.Event) error {
	if f.failFirst > 0 {
		f.failFirst--
		return dErrors.New(dErrors.CodeUnavailable, "audit store down")
	}
	return f.inner.Append(ctx, event)
}
