package commands

import (
	"errors"
	"fmt"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"
	"bookstore/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrAddBookCommandIsNotConstructed = errors.New(
	"AddBookCommand must be created via NewAddBookCommand constructor",
)

// AddBookCommand represents a request to put a quantity of one book into an
// order at a snapshotted unit price. The price comes from the caller's
// catalog lookup; the core never re-fetches it.
type AddBookCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	bookID    kernel.UUID
	quantity  int
	unitPrice decimal.Decimal

	guard guard.ConstructorGuard
}

// NewAddBookCommand creates a command to add a book to an order.
// The quantity must be at least 1 and the unit price must not be negative.
func NewAddBookCommand(orderID kernel.UUID, bookID kernel.UUID, quantity int, unitPrice decimal.Decimal) (AddBookCommand, error) {
	cmd := AddBookCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setBookID(bookID),
		cmd.setQuantity(quantity),
		cmd.setUnitPrice(unitPrice),
	); err != nil {
		return AddBookCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddBookCommand) Validate() error {
	return c.guard.Validate(ErrAddBookCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c AddBookCommand) OrderID() kernel.UUID {
	return c.orderID
}

// BookID returns the book's identifier.
func (c AddBookCommand) BookID() kernel.UUID {
	return c.bookID
}

// Quantity returns the number of copies to add.
func (c AddBookCommand) Quantity() int {
	return c.quantity
}

// UnitPrice returns the per-copy price snapshot.
func (c AddBookCommand) UnitPrice() decimal.Decimal {
	return c.unitPrice
}

func (c *AddBookCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddBookCommand) setBookID(bookID kernel.UUID) error {
	if err := bookID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("bookID", err)
	}

	c.bookID = bookID
	return nil
}

func (c *AddBookCommand) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	c.quantity = quantity
	return nil
}

func (c *AddBookCommand) setUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice", fmt.Errorf("%s is negative", unitPrice))
	}

	c.unitPrice = unitPrice
	return nil
}
