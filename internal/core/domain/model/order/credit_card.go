package order

import (
	"errors"

	"bookstore/internal/pkg/errs"
)

// ErrCreditCardIsNotConstructed is returned when a CreditCard was not
// created through one of its factory functions.
var ErrCreditCardIsNotConstructed = errors.New("CreditCard must be created via NewCreditCard or RestoreCreditCard")

// CreditCard is an owned value object holding the payment details attached
// to an order. The card is stored, never charged - payment processing is a
// collaborator's job. At most one card exists per order; it is built empty
// on demand and filled in through ApplyUpdate.
type CreditCard struct {
	number          string
	cvv             string
	expirationMonth int
	expirationYear  int

	isConstructed bool
}

// NewCreditCard creates an empty credit card.
func NewCreditCard() *CreditCard {
	return &CreditCard{isConstructed: true}
}

// RestoreCreditCard reconstructs a credit card from persistence.
func RestoreCreditCard(number, cvv string, expirationMonth, expirationYear int) (*CreditCard, error) {
	card := &CreditCard{
		number:          number,
		cvv:             cvv,
		expirationMonth: expirationMonth,
		expirationYear:  expirationYear,
		isConstructed:   true,
	}

	if err := card.validateExpiration(expirationMonth, expirationYear); err != nil {
		return nil, err
	}

	return card, nil
}

// Validate ensures the card was created through a factory function.
func (c *CreditCard) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCreditCardIsNotConstructed
	}
	return nil
}

// Number returns the card number.
func (c *CreditCard) Number() string { return c.number }

// CVV returns the card verification value.
func (c *CreditCard) CVV() string { return c.cvv }

// ExpirationMonth returns the expiration month (1-12), or 0 when unset.
func (c *CreditCard) ExpirationMonth() int { return c.expirationMonth }

// ExpirationYear returns the expiration year, or 0 when unset.
func (c *CreditCard) ExpirationYear() int { return c.expirationYear }

// CreditCardUpdate is a bundle of attribute changes for the card.
// Nil fields are left untouched.
type CreditCardUpdate struct {
	Number          *string
	CVV             *string
	ExpirationMonth *int
	ExpirationYear  *int
}

// validate checks the update without touching any card. ApplyUpdate calls it
// before mutating anything so a rejected update leaves the card unchanged.
func (u CreditCardUpdate) validate() error {
	if u.ExpirationMonth != nil && (*u.ExpirationMonth < 1 || *u.ExpirationMonth > 12) {
		return errs.NewValueIsOutOfRangeError("expirationMonth", *u.ExpirationMonth, 1, 12)
	}
	if u.ExpirationYear != nil && *u.ExpirationYear < 0 {
		return errs.NewValueIsOutOfRangeError("expirationYear", *u.ExpirationYear, 0, 9999)
	}
	return nil
}

func (c *CreditCard) validateExpiration(month, year int) error {
	if month != 0 && (month < 1 || month > 12) {
		return errs.NewValueIsOutOfRangeError("expirationMonth", month, 1, 12)
	}
	if year < 0 {
		return errs.NewValueIsOutOfRangeError("expirationYear", year, 0, 9999)
	}
	return nil
}

// apply overwrites the set fields. The update must have been validated.
func (c *CreditCard) apply(update CreditCardUpdate) {
	if update.Number != nil {
		c.number = *update.Number
	}
	if update.CVV != nil {
		c.cvv = *update.CVV
	}
	if update.ExpirationMonth != nil {
		c.expirationMonth = *update.ExpirationMonth
	}
	if update.ExpirationYear != nil {
		c.expirationYear = *update.ExpirationYear
	}
}
