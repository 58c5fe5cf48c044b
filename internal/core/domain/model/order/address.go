package order

import (
	"errors"
	"fmt"

	"bookstore/internal/pkg/errs"
)

// ErrAddressIsNotConstructed is returned when an Address was not created
// through one of its factory functions.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewBillingAddress, NewShippingAddress, or RestoreAddress")

// AddressRole distinguishes the two address slots an order owns. The same
// underlying shape serves both; the role tag allows two independent
// instances per order.
type AddressRole int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown AddressRole = iota

	// Billing marks the address the invoice goes to.
	Billing

	// Shipping marks the address the books go to.
	Shipping
)

func getValidRoleNames() map[AddressRole]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[AddressRole]string{
		Billing:  "billing",
		Shipping: "shipping",
	}
}

// RoleFromName resolves an address role from its persisted string name.
func RoleFromName(name string) (AddressRole, error) {
	for role, roleName := range getValidRoleNames() {
		if roleName == name {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("addressRole", fmt.Errorf("%q is not a valid address role", name))
}

// Validate checks that the role is billing or shipping.
func (r AddressRole) Validate() error {
	if _, ok := getValidRoleNames()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("addressRole", fmt.Errorf("%d is not a valid address role", r))
	}
	return nil
}

// String returns "billing" or "shipping", or "unknown" for invalid values.
func (r AddressRole) String() string {
	if name, ok := getValidRoleNames()[r]; ok {
		return name
	}
	return "unknown"
}

// Address is an owned value object attached to exactly one order. It is
// built empty on demand and filled in through ApplyUpdate; it has no
// lifecycle of its own and disappears with the order.
type Address struct {
	role      AddressRole
	firstName string
	lastName  string
	street    string
	city      string
	country   string
	zip       string
	phone     string

	isConstructed bool
}

// NewBillingAddress creates an empty billing address.
func NewBillingAddress() *Address {
	return &Address{role: Billing, isConstructed: true}
}

// NewShippingAddress creates an empty shipping address.
func NewShippingAddress() *Address {
	return &Address{role: Shipping, isConstructed: true}
}

// RestoreAddress reconstructs an address from persistence.
func RestoreAddress(role AddressRole, firstName, lastName, street, city, country, zip, phone string) (*Address, error) {
	if err := role.Validate(); err != nil {
		return nil, err
	}

	return &Address{
		role:          role,
		firstName:     firstName,
		lastName:      lastName,
		street:        street,
		city:          city,
		country:       country,
		zip:           zip,
		phone:         phone,
		isConstructed: true,
	}, nil
}

// Validate ensures the address was created through a factory function.
func (a *Address) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAddressIsNotConstructed
	}
	return a.role.Validate()
}

// Role returns whether this is the billing or the shipping address.
func (a *Address) Role() AddressRole { return a.role }

// FirstName returns the recipient's first name.
func (a *Address) FirstName() string { return a.firstName }

// LastName returns the recipient's last name.
func (a *Address) LastName() string { return a.lastName }

// Street returns the street line.
func (a *Address) Street() string { return a.street }

// City returns the city.
func (a *Address) City() string { return a.city }

// Country returns the country.
func (a *Address) Country() string { return a.country }

// Zip returns the postal code.
func (a *Address) Zip() string { return a.zip }

// Phone returns the contact phone number.
func (a *Address) Phone() string { return a.phone }

// AddressUpdate is a bundle of attribute changes for one address slot.
// Nil fields are left untouched.
type AddressUpdate struct {
	FirstName *string
	LastName  *string
	Street    *string
	City      *string
	Country   *string
	Zip       *string
	Phone     *string
}

// apply overwrites the set fields. The update carries no values that can
// fail validation, so apply is infallible; ApplyUpdate relies on that to
// stay atomic.
func (a *Address) apply(update AddressUpdate) {
	if update.FirstName != nil {
		a.firstName = *update.FirstName
	}
	if update.LastName != nil {
		a.lastName = *update.LastName
	}
	if update.Street != nil {
		a.street = *update.Street
	}
	if update.City != nil {
		a.city = *update.City
	}
	if update.Country != nil {
		a.country = *update.Country
	}
	if update.Zip != nil {
		a.zip = *update.Zip
	}
	if update.Phone != nil {
		a.phone = *update.Phone
	}
}
