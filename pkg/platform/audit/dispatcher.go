package audit

import (
	"context"
	"log/slog"
	"time"
)

// Dispatcher is the Emitter the services use. It stamps category and
// timestamp, appends compliance events to the durable store synchronously,
// hands operations events to the background worker's inbox, and mirrors
// everything to an optional stream publisher.
type Dispatcher struct {
	store  Store
	inbox  chan<- Event
	stream Emitter
	logger *slog.Logger
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithStream mirrors every event to a stream publisher.
func WithStream(stream Emitter) DispatcherOption {
	return func(d *Dispatcher) {
		d.stream = stream
	}
}

// WithDispatcherLogger sets the logger for drop warnings.
func WithDispatcherLogger(logger *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

// NewDispatcher builds the standard audit pipeline. The inbox is the channel
// a worker.Worker drains; it may be nil, in which case operations events are
// appended synchronously too.
func NewDispatcher(store Store, inbox chan<- Event, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{store: store, inbox: inbox}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Emit routes one event. Compliance events return the store error so callers
// know the durable record failed; operations events never fail the caller.
func (d *Dispatcher) Emit(ctx context.Context, event Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	event.Category = CategoryFor(event.Action)

	if d.stream != nil {
		// Stream delivery is fire-and-forget; the publisher logs failures.
		_ = d.stream.Emit(ctx, event)
	}

	if event.Category == CategoryCompliance || d.inbox == nil {
		return d.store.Append(ctx, event)
	}

	select {
	case d.inbox <- event:
	default:
		if d.logger != nil {
			d.logger.WarnContext(ctx, "audit inbox full, dropping operations event",
				"action", event.Action,
			)
		}
	}
	return nil
}
