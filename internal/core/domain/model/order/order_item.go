package order

import (
	"errors"
	"fmt"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrOrderItemIsNotConstructed is returned when an OrderItem was not created
// through the NewOrderItem or RestoreOrderItem factory functions.
var ErrOrderItemIsNotConstructed = errors.New("OrderItem must be created via NewOrderItem or RestoreOrderItem")

// OrderItem is a line item owned by an Order: a quantity of one book at the
// unit price snapshotted when the book was first added. The snapshot is
// deliberate - later catalog price changes never affect an existing order.
//
// Invariants:
//   - quantity is always >= 1
//   - unit price is never negative
//   - within one order there is exactly one item per book (enforced by the
//     owning Order)
type OrderItem struct {
	id        kernel.UUID
	bookID    kernel.UUID
	quantity  int
	unitPrice decimal.Decimal

	isConstructed bool
}

// NewOrderItem creates a line item for the given book. Quantity must be at
// least 1 and the unit price must not be negative.
func NewOrderItem(id kernel.UUID, bookID kernel.UUID, quantity int, unitPrice decimal.Decimal) (*OrderItem, error) {
	item := &OrderItem{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setBookID(bookID),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreOrderItem reconstructs a line item from persistence. It applies the
// same validation as NewOrderItem so corrupted rows surface immediately.
func RestoreOrderItem(id kernel.UUID, bookID kernel.UUID, quantity int, unitPrice decimal.Decimal) (*OrderItem, error) {
	return NewOrderItem(id, bookID, quantity, unitPrice)
}

// Validate ensures the item was created through a factory function.
func (i *OrderItem) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrOrderItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *OrderItem) ID() kernel.UUID {
	return i.id
}

// BookID returns the identifier of the book this item refers to.
func (i *OrderItem) BookID() kernel.UUID {
	return i.bookID
}

// Quantity returns the number of copies ordered.
func (i *OrderItem) Quantity() int {
	return i.quantity
}

// UnitPrice returns the per-copy price snapshotted at add time.
func (i *OrderItem) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// TotalPrice returns quantity * unitPrice.
func (i *OrderItem) TotalPrice() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}

// addQuantity increments the quantity when the same book is added again.
// The increment must be positive; the merged quantity stays >= 1.
func (i *OrderItem) addQuantity(delta int) error {
	if delta < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", delta))
	}
	i.quantity += delta
	return nil
}

func (i *OrderItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *OrderItem) setBookID(bookID kernel.UUID) error {
	if err := bookID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("bookID", err)
	}
	i.bookID = bookID
	return nil
}

func (i *OrderItem) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *OrderItem) setUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice", fmt.Errorf("%s is negative", unitPrice))
	}
	i.unitPrice = unitPrice
	return nil
}
