package order

import (
	"fmt"

	"bookstore/internal/pkg/errs"
)

// Status represents the fulfillment state of an order.
//
// The fulfillment flow is strictly linear with a single cancellation branch:
//
//	in_progress ──> in_processing ──> in_delivery ──> delivered
//	                      │                 │
//	                      └────> canceled <─┘
//
// delivered and canceled are terminal. Status is a value object; transitions
// are performed by the pure Transition function in event.go, never by
// mutating a Status directly.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// InProgress is the initial status: the customer is still building the
	// order (adding books, filling in addresses and payment details).
	InProgress

	// InProcessing indicates the order has been placed and is being prepared.
	InProcessing

	// InDelivery indicates the order has been handed to the shipping carrier.
	InDelivery

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Canceled indicates the order was canceled during processing or
	// delivery. Terminal.
	Canceled
)

func getStatusNames() map[Status]string {
	return map[Status]string{
		StatusUnknown: "unknown",
		InProgress:    "in_progress",
		InProcessing:  "in_processing",
		InDelivery:    "in_delivery",
		Delivered:     "delivered",
		Canceled:      "canceled",
	}
}

func getValidStatusNames() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		InProgress:   "in_progress",
		InProcessing: "in_processing",
		InDelivery:   "in_delivery",
		Delivered:    "delivered",
		Canceled:     "canceled",
	}
}

// StatusFromName resolves a status from its persisted string name.
// Used when reconstructing orders from storage or parsing boundary input.
func StatusFromName(name string) (Status, error) {
	for status, statusName := range getValidStatusNames() {
		if statusName == name {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status name", name))
}

// Validate checks that the Status is one of the five defined fulfillment
// states. StatusUnknown and any other value are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusNames()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the snake_case name of the status as persisted in storage.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if name, ok := getStatusNames()[s]; ok {
		return name
	}
	return "unknown"
}

// IsTerminal reports whether the status allows no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Canceled
}
