package commands

import (
	"context"
)

// AddBookCommandHandler handles adding books to an order. When the book is
// already in the order, the existing line item's quantity is incremented
// instead of a duplicate being created.
type AddBookCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAddBookCommandHandler creates a handler for adding books to orders.
func NewAddBookCommandHandler(uowFactory OrderUoWFactory) AddBookCommandHandler {
	return AddBookCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, merges the book into its item collection, and
// persists the aggregate inside a transaction.
func (h *AddBookCommandHandler) Handle(ctx context.Context, cmd AddBookCommand) error {
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

	if _, err = aggregate.AddBook(cmd.BookID(), cmd.Quantity(), cmd.UnitPrice()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
