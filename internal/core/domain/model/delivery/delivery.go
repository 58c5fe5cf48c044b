// Package delivery contains the shipping-method entity. A Delivery is a
// catalog record (named method, flat price) that orders reference; the order
// snapshots the price when the method is attached.
package delivery

import (
	"errors"
	"fmt"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrDeliveryIsNotConstructed is returned when a Delivery was not created
// through the NewDelivery or RestoreDelivery factory functions.
var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery")

// Delivery is a shipping method with a flat price contributed to the order
// total.
type Delivery struct {
	id    kernel.UUID
	name  string
	price decimal.Decimal

	isConstructed bool
}

// NewDelivery creates a shipping method. The name must not be empty and the
// price must not be negative.
func NewDelivery(id kernel.UUID, name string, price decimal.Decimal) (*Delivery, error) {
	d := &Delivery{
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setPrice(price),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery reconstructs a shipping method from persistence.
func RestoreDelivery(id kernel.UUID, name string, price decimal.Decimal) (*Delivery, error) {
	return NewDelivery(id, name, price)
}

// Validate ensures the delivery was created through a factory function.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// ID returns the shipping method's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// Name returns the human-readable method name.
func (d *Delivery) Name() string {
	return d.name
}

// Price returns the flat delivery price.
func (d *Delivery) Price() decimal.Decimal {
	return d.price
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}

func (d *Delivery) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", price))
	}
	d.price = price
	return nil
}
