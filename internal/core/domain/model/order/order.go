package order

import (
	"errors"
	"fmt"
	"time"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through the NewOrder or RestoreOrder factory functions.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root for one customer purchase. It owns its line
// items, the optional billing/shipping addresses and credit card, and the
// fulfillment state, and it is the only component that mutates any of them.
//
// Invariants:
//   - exactly one OrderItem per distinct book, each with quantity >= 1
//   - userID, status, and completedDate are always set
//   - status changes only through TransitionTo, following the fulfillment
//     transition table
//   - the recorded total equals items total plus delivery price after every
//     PrepareForSave
//
// The aggregate is designed for single-writer access: one checkout workflow
// mutates one order at a time, and the store provides per-order mutual
// exclusion when deployed behind concurrent handlers.
type Order struct {
	id            kernel.UUID
	userID        kernel.UUID
	completedDate time.Time
	status        Status

	// deliveryID references the chosen shipping method; deliveryPrice is the
	// flat price snapshotted when the delivery was attached.
	deliveryID    *kernel.UUID
	deliveryPrice decimal.Decimal

	// recordedTotal is the cached total-price column value, rewritten by
	// PrepareForSave before every persist.
	recordedTotal decimal.Decimal

	items           []*OrderItem
	billingAddress  *Address
	shippingAddress *Address
	creditCard      *CreditCard

	isConstructed bool
}

// NewOrder creates an empty order for the given user in the in_progress
// state. When completedDate is the zero time it defaults to the creation
// date.
func NewOrder(id kernel.UUID, userID kernel.UUID, completedDate time.Time) (*Order, error) {
	if completedDate.IsZero() {
		completedDate = time.Now()
	}

	o := &Order{
		status:        InProgress,
		completedDate: completedDate,
		deliveryPrice: decimal.Zero,
		recordedTotal: decimal.Zero,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs a complete aggregate from persistence, applying
// the same invariants as the live mutation paths: a valid status, one item
// per book, and role-consistent addresses.
func RestoreOrder(
	id kernel.UUID,
	userID kernel.UUID,
	completedDate time.Time,
	status Status,
	deliveryID *kernel.UUID,
	deliveryPrice decimal.Decimal,
	recordedTotal decimal.Decimal,
	items []*OrderItem,
	billingAddress *Address,
	shippingAddress *Address,
	creditCard *CreditCard,
) (*Order, error) {
	o := &Order{
		completedDate: completedDate,
		status:        status,
		deliveryPrice: deliveryPrice,
		recordedTotal: recordedTotal,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setCompletedDate(completedDate),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if deliveryID != nil {
		if err := deliveryID.Validate(); err != nil {
			return nil, err
		}
		if deliveryPrice.IsNegative() {
			return nil, errs.NewValueIsInvalidErrorWithCause("deliveryPrice", fmt.Errorf("%s is negative", deliveryPrice))
		}
		o.deliveryID = deliveryID
	}

	seen := make(map[kernel.UUID]struct{}, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		if _, ok := seen[item.BookID()]; ok {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"items",
				fmt.Errorf("duplicate item for book %s", item.BookID()),
			)
		}
		seen[item.BookID()] = struct{}{}
		o.items = append(o.items, item)
	}

	if billingAddress != nil {
		if err := billingAddress.Validate(); err != nil {
			return nil, err
		}
		if billingAddress.Role() != Billing {
			return nil, errs.NewValueIsInvalidError("billingAddress role")
		}
		o.billingAddress = billingAddress
	}

	if shippingAddress != nil {
		if err := shippingAddress.Validate(); err != nil {
			return nil, err
		}
		if shippingAddress.Role() != Shipping {
			return nil, errs.NewValueIsInvalidError("shippingAddress role")
		}
		o.shippingAddress = shippingAddress
	}

	if creditCard != nil {
		if err := creditCard.Validate(); err != nil {
			return nil, err
		}
		o.creditCard = creditCard
	}

	return o, nil
}

// Validate ensures the Order was properly constructed through a factory
// function and still carries a legal status. Repositories call it before
// every persist.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return o.status.Validate()
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the purchasing user's identifier. Immutable after creation.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// CompletedDate returns the order's completion date.
func (o *Order) CompletedDate() time.Time {
	return o.completedDate
}

// Status returns the current fulfillment state.
func (o *Order) Status() Status {
	return o.status
}

// DeliveryID returns the attached shipping method's identifier, or nil when
// no delivery is attached.
func (o *Order) DeliveryID() *kernel.UUID {
	return o.deliveryID
}

// Items returns the line items in insertion order. The slice is a copy; the
// items themselves are the aggregate's and must not be mutated directly.
func (o *Order) Items() []*OrderItem {
	items := make([]*OrderItem, len(o.items))
	copy(items, o.items)
	return items
}

// BillingAddress returns the billing address, or nil when none was built.
func (o *Order) BillingAddress() *Address {
	return o.billingAddress
}

// ShippingAddress returns the shipping address, or nil when none was built.
func (o *Order) ShippingAddress() *Address {
	return o.shippingAddress
}

// CreditCard returns the attached card, or nil when none was built.
func (o *Order) CreditCard() *CreditCard {
	return o.creditCard
}

// RecordedTotal returns the cached total-price value as last written by
// PrepareForSave (or as restored from storage).
func (o *Order) RecordedTotal() decimal.Decimal {
	return o.recordedTotal
}

// AddBook adds a quantity of one book at the given unit price. When the book
// is already in the order the existing item's quantity is incremented and
// the original price snapshot is kept; otherwise a new item is appended.
// Returns the affected item.
//
// Quantity and price arrive already typed and validated in range by the
// boundary layer; AddBook still rejects non-positive quantities and negative
// prices to keep the invariant local.
func (o *Order) AddBook(bookID kernel.UUID, quantity int, unitPrice decimal.Decimal) (*OrderItem, error) {
	if err := bookID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("bookID", err)
	}

	if current := o.findItem(bookID); current != nil {
		if err := current.addQuantity(quantity); err != nil {
			return nil, err
		}
		return current, nil
	}

	item, err := NewOrderItem(kernel.NewUUID(), bookID, quantity, unitPrice)
	if err != nil {
		return nil, err
	}

	o.items = append(o.items, item)
	return item, nil
}

// RemoveBook removes the line item for the given book. Returns an
// ObjectNotFoundError when the book is not in the order.
func (o *Order) RemoveBook(bookID kernel.UUID) error {
	for idx, item := range o.items {
		if item.BookID().IsEqual(bookID) {
			o.items = append(o.items[:idx], o.items[idx+1:]...)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("bookID", bookID.String())
}

// TotalPrice returns the sum of every item's line total. It is a pure
// function of the current item collection and excludes delivery.
func (o *Order) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.TotalPrice())
	}
	return total
}

// DeliveryPrice returns the attached delivery's price, or zero when no
// delivery is attached.
func (o *Order) DeliveryPrice() decimal.Decimal {
	if o.deliveryID == nil {
		return decimal.Zero
	}
	return o.deliveryPrice
}

// TotalPriceWithDelivery returns TotalPrice plus DeliveryPrice.
func (o *Order) TotalPriceWithDelivery() decimal.Decimal {
	return o.TotalPrice().Add(o.DeliveryPrice())
}

// AttachDelivery attaches a shipping method, snapshotting its flat price
// into the order. Attaching again replaces the previous choice.
func (o *Order) AttachDelivery(deliveryID kernel.UUID, price decimal.Decimal) error {
	if err := deliveryID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("deliveryID", err)
	}
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("deliveryPrice", fmt.Errorf("%s is negative", price))
	}

	o.deliveryID = &deliveryID
	o.deliveryPrice = price
	return nil
}

// PrepareForSave rewrites the recorded total with the delivery-inclusive
// total and returns it. Repositories run it before every persist; it is
// idempotent, so re-running it never changes an already consistent value.
func (o *Order) PrepareForSave() decimal.Decimal {
	o.recordedTotal = o.TotalPriceWithDelivery()
	return o.recordedTotal
}

// TransitionTo fires a fulfillment event. On success the order moves to the
// event's target state; on failure the state is left untouched and an
// IllegalTransitionError is returned.
func (o *Order) TransitionTo(event Event) error {
	next, err := Transition(o.status, event)
	if err != nil {
		return err
	}

	o.status = next
	return nil
}

// EnsureBillingAddress builds an empty billing address if none exists yet
// and returns the order's billing address. Calling it again is a no-op
// returning the existing instance.
func (o *Order) EnsureBillingAddress() *Address {
	if o.billingAddress == nil {
		o.billingAddress = NewBillingAddress()
	}
	return o.billingAddress
}

// EnsureShippingAddress builds an empty shipping address if none exists yet
// and returns the order's shipping address.
func (o *Order) EnsureShippingAddress() *Address {
	if o.shippingAddress == nil {
		o.shippingAddress = NewShippingAddress()
	}
	return o.shippingAddress
}

// EnsureBothAddresses builds whichever of the two addresses is still
// missing.
func (o *Order) EnsureBothAddresses() {
	o.EnsureBillingAddress()
	o.EnsureShippingAddress()
}

// EnsureCreditCard builds an empty credit card if none exists yet and
// returns the order's card.
func (o *Order) EnsureCreditCard() *CreditCard {
	if o.creditCard == nil {
		o.creditCard = NewCreditCard()
	}
	return o.creditCard
}

// OrderUpdate is a bundle of attribute changes applied to the aggregate in
// one atomic step. Nil sections are left untouched.
type OrderUpdate struct {
	CompletedDate   *time.Time
	BillingAddress  *AddressUpdate
	ShippingAddress *AddressUpdate
	CreditCard      *CreditCardUpdate
}

// validate checks every section without touching the aggregate.
func (u OrderUpdate) validate() error {
	var errList []error
	if u.CompletedDate != nil && u.CompletedDate.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("completedDate"))
	}
	if u.CreditCard != nil {
		errList = append(errList, u.CreditCard.validate())
	}
	return errors.Join(errList...)
}

// ApplyUpdate applies an update bundle to the order and its owned value
// objects. When copyBillingToShipping is true the shipping section of the
// update is replaced with the billing section before anything is applied -
// "ship to the billing address" semantics - regardless of what the caller
// put in the shipping section.
//
// The whole bundle is validated first; on a validation error the aggregate
// is left completely unmodified, so a failed update never partially commits.
// Missing value objects are built on demand for the sections present in the
// update.
func (o *Order) ApplyUpdate(update OrderUpdate, copyBillingToShipping bool) error {
	if copyBillingToShipping {
		if update.BillingAddress != nil {
			billing := *update.BillingAddress
			update.ShippingAddress = &billing
		} else {
			update.ShippingAddress = nil
		}
	}

	if err := update.validate(); err != nil {
		return err
	}

	if update.CompletedDate != nil {
		o.completedDate = *update.CompletedDate
	}
	if update.BillingAddress != nil {
		o.EnsureBillingAddress().apply(*update.BillingAddress)
	}
	if update.ShippingAddress != nil {
		o.EnsureShippingAddress().apply(*update.ShippingAddress)
	}
	if update.CreditCard != nil {
		o.EnsureCreditCard().apply(*update.CreditCard)
	}

	return nil
}

func (o *Order) findItem(bookID kernel.UUID) *OrderItem {
	for _, item := range o.items {
		if item.BookID().IsEqual(bookID) {
			return item
		}
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userID", err)
	}
	o.userID = userID
	return nil
}

func (o *Order) setCompletedDate(completedDate time.Time) error {
	if completedDate.IsZero() {
		return errs.NewValueIsRequiredError("completedDate")
	}
	o.completedDate = completedDate
	return nil
}
