package commands

import (
	"context"
	"time"
)

// PurgeAbandonedOrdersCommandHandler deletes stale in_progress orders along
// with their owned children.
type PurgeAbandonedOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPurgeAbandonedOrdersCommandHandler creates a handler for purging
// abandoned carts.
func NewPurgeAbandonedOrdersCommandHandler(uowFactory OrderUoWFactory) PurgeAbandonedOrdersCommandHandler {
	return PurgeAbandonedOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes in_progress orders older than the retention cutoff and
// returns how many were removed.
func (h *PurgeAbandonedOrdersCommandHandler) Handle(ctx context.Context, cmd PurgeAbandonedOrdersCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := time.Now().Add(-cmd.Retention())
	purged, err := uow.OrderRepository().DeleteAbandoned(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return purged, nil
}
