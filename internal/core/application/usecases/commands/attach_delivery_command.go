package commands

import (
	"errors"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/guard"
)

var ErrAttachDeliveryCommandIsNotConstructed = errors.New(
	"AttachDeliveryCommand must be created via NewAttachDeliveryCommand constructor",
)

// AttachDeliveryCommand represents a request to attach a shipping method to
// an order. The method's flat price is snapshotted into the order and
// included in the total from then on.
type AttachDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAttachDeliveryCommand creates a command to attach a shipping method.
func NewAttachDeliveryCommand(orderID kernel.UUID, deliveryID kernel.UUID) (AttachDeliveryCommand, error) {
	cmd := AttachDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDeliveryID(deliveryID),
	); err != nil {
		return AttachDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AttachDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAttachDeliveryCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c AttachDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DeliveryID returns the shipping method's identifier.
func (c AttachDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c *AttachDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AttachDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}
