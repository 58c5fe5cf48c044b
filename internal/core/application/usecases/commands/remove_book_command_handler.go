package commands

import (
	"context"
)

// RemoveBookCommandHandler handles dropping line items from orders.
type RemoveBookCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRemoveBookCommandHandler creates a handler for removing books from
// orders.
func NewRemoveBookCommandHandler(uowFactory OrderUoWFactory) RemoveBookCommandHandler {
	return RemoveBookCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, removes the book's line item, and persists the
// aggregate inside a transaction.
func (h *RemoveBookCommandHandler) Handle(ctx context.Context, cmd RemoveBookCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.RemoveBook(cmd.BookID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
