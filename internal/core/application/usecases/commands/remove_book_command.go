package commands

import (
	"errors"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"
	"bookstore/internal/pkg/guard"
)

var ErrRemoveBookCommandIsNotConstructed = errors.New(
	"RemoveBookCommand must be created via NewRemoveBookCommand constructor",
)

// RemoveBookCommand represents a request to drop a book's line item from an
// order entirely, regardless of its quantity.
type RemoveBookCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	bookID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveBookCommand creates a command to remove a book from an order.
func NewRemoveBookCommand(orderID kernel.UUID, bookID kernel.UUID) (RemoveBookCommand, error) {
	cmd := RemoveBookCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setBookID(bookID),
	); err != nil {
		return RemoveBookCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveBookCommand) Validate() error {
	return c.guard.Validate(ErrRemoveBookCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c RemoveBookCommand) OrderID() kernel.UUID {
	return c.orderID
}

// BookID returns the book's identifier.
func (c RemoveBookCommand) BookID() kernel.UUID {
	return c.bookID
}

func (c *RemoveBookCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RemoveBookCommand) setBookID(bookID kernel.UUID) error {
	if err := bookID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("bookID", err)
	}

	c.bookID = bookID
	return nil
}
