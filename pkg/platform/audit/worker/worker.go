package worker

import (
	"context"
	"log/slog"

	"aeroclaim/pkg/platform/audit"
	"aeroclaim/pkg/platform/circuit"
)

// Worker consumes audit events from a channel and persists them. It decouples
// request handling from audit persistence for operations events; compliance
// events bypass the worker and are appended synchronously by their publisher.
//
// A circuit breaker tracks store health. Appends are always attempted so the
// breaker can observe recovery, but while the circuit is open per-event
// failures are logged at debug to avoid flooding during an outage.
type Worker struct {
	store   audit.Store
	inbox   <-chan audit.Event
	breaker *circuit.Breaker
	logger  *slog.Logger
}

func New(store audit.Store, inbox <-chan audit.Event, logger *slog.Logger) *Worker {
	return &Worker{
		store:   store,
		inbox:   inbox,
		breaker: circuit.New("audit-store"),
		logger:  logger,
	}
}

// Run blocks until ctx is cancelled, draining the inbox. A failed append is
// logged and dropped; operations events are not worth failing the process for.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-w.inbox:
			w.append(ctx, event)
		}
	}
}

func (w *Worker) append(ctx context.Context, event audit.Event) {
	err := w.store.Append(ctx, event)
	if err == nil {
		if _, change := w.breaker.RecordSuccess(); change.Closed {
			w.log(ctx, slog.LevelInfo, "audit store recovered", "breaker", w.breaker.Name())
		}
		return
	}

	suppress, change := w.breaker.RecordFailure()
	if change.Opened {
		w.log(ctx, slog.LevelError, "audit store circuit opened",
			"breaker", w.breaker.Name(),
			"error", err,
		)
		return
	}

	level := slog.LevelError
	if suppress {
		level = slog.LevelDebug
	}
	w.log(ctx, level, "audit append failed",
		"action", event.Action,
		"error", err,
	)
}

func (w *Worker) log(ctx context.Context, level slog.Level, msg string, args ...any) {
	if w.logger != nil {
		w.logger.Log(ctx, level, msg, args...)
	}
}
