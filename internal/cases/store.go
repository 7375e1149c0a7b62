package cases

import "context"

// Store persists cases. Implementations return sentinel.ErrNotFound when a
// case ID resolves to nothing.
type Store interface {
	Save(ctx context.Context, c Case) error
	FindByID(ctx context.Context, id string) (Case, error)
	ListByBookingReference(ctx context.Context, bookingReference string) ([]Case, error)
}
