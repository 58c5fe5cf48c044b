package ports

import (
	"context"

	"bookstore/internal/core/domain/model/delivery"
	"bookstore/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for shipping methods.
type DeliveryRepository interface {
	// Add persists a new shipping method.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a shipping method by identifier. Returns an
	// errs.ObjectNotFoundError when no such method exists.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)
}
