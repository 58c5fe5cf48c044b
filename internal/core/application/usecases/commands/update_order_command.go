package commands

import (
	"errors"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a request to apply a bundle of attribute
// changes to an order and its owned value objects in one atomic step.
// When copyBillingToShipping is set, the shipping address is overwritten
// with the billing address - "ship to the billing address" semantics.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID               kernel.UUID
	update                order.OrderUpdate
	copyBillingToShipping bool

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to update an order. The update
// bundle's content is validated by the aggregate when the command is
// handled, so a rejected bundle leaves the stored order untouched.
func NewUpdateOrderCommand(orderID kernel.UUID, update order.OrderUpdate, copyBillingToShipping bool) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		update:                update,
		copyBillingToShipping: copyBillingToShipping,
		guard:                 guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Update returns the attribute bundle to apply.
func (c UpdateOrderCommand) Update() order.OrderUpdate {
	return c.update
}

// CopyBillingToShipping reports whether the shipping address should be
// overwritten with the billing address.
func (c UpdateOrderCommand) CopyBillingToShipping() bool {
	return c.copyBillingToShipping
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
