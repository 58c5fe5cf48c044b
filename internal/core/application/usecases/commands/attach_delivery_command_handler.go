package commands

import (
	"context"
)

// AttachDeliveryCommandHandler attaches shipping methods to orders. It is
// the one command that reads a second repository: the delivery record is
// loaded inside the same transaction so the snapshotted price and the order
// update stay consistent.
type AttachDeliveryCommandHandler struct {
	uowFactory UoWFactory
}

// NewAttachDeliveryCommandHandler creates a handler for attaching shipping
// methods.
func NewAttachDeliveryCommandHandler(uowFactory UoWFactory) AttachDeliveryCommandHandler {
	return AttachDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order and the shipping method, snapshots the method's
// price into the order, and persists the aggregate inside one transaction.
func (h *AttachDeliveryCommandHandler) Handle(ctx context.Context, cmd AttachDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shippingMethod, err := uow.DeliveryRepository().Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.AttachDelivery(shippingMethod.ID(), shippingMethod.Price()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
