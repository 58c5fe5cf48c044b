package ports

import (
	"context"
	"time"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Implementations persist the order together with all owned children
// (items, addresses, credit card) atomically, and run the aggregate's
// pre-save total recomputation before every write.
type OrderRepository interface {
	// Add persists a new order aggregate. The order must be valid and not
	// already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, replacing its
	// owned children with the aggregate's current state.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves a fully materialized order by identifier: the order row
	// plus its items and any attached value objects. Returns an
	// errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// DeleteAbandoned removes in_progress orders not touched since the given
	// cutoff, together with their owned children. Returns the number of
	// orders removed.
	DeleteAbandoned(ctx context.Context, cutoff time.Time) (int64, error)
}
