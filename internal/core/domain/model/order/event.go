package order

import (
	"fmt"

	"bookstore/internal/pkg/errs"
)

// Event represents a fulfillment action that advances an order through its
// lifecycle. Each event has a declared set of source states; firing an event
// from any other state is an illegal transition, not a no-op.
type Event int

const (
	// EventUnknown represents an invalid or undefined event.
	EventUnknown Event = iota

	// Process places the order: in_progress -> in_processing.
	Process

	// Deliver hands the order to the carrier: in_processing -> in_delivery.
	Deliver

	// Ship completes the delivery: in_delivery -> delivered.
	Ship

	// Cancel aborts the order: {in_processing, in_delivery} -> canceled.
	Cancel
)

func getEventNames() map[Event]string {
	return map[Event]string{
		EventUnknown: "unknown",
		Process:      "process",
		Deliver:      "deliver",
		Ship:         "ship",
		Cancel:       "cancel",
	}
}

func getValidEventNames() map[Event]string {
	//nolint:exhaustive // EventUnknown is intentionally excluded as it's invalid
	return map[Event]string{
		Process: "process",
		Deliver: "deliver",
		Ship:    "ship",
		Cancel:  "cancel",
	}
}

// EventFromName resolves an event from its string name. Used by the HTTP
// adapter to translate transition requests.
func EventFromName(name string) (Event, error) {
	for event, eventName := range getValidEventNames() {
		if eventName == name {
			return event, nil
		}
	}
	return EventUnknown, errs.NewValueIsInvalidErrorWithCause("event", fmt.Errorf("%q is not a valid event name", name))
}

// Validate checks that the Event is one of the four defined fulfillment
// events.
func (e Event) Validate() error {
	if _, ok := getValidEventNames()[e]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("event", fmt.Errorf("%d is not a valid event", e))
	}
	return nil
}

// String returns the event's name. Implements fmt.Stringer and is safe on
// any value, including invalid ones.
func (e Event) String() string {
	if name, ok := getEventNames()[e]; ok {
		return name
	}
	return "unknown"
}

// transitions is the complete (Event, Status) -> Status partial map.
// A missing entry means the transition is illegal.
func transitions() map[Event]map[Status]Status {
	return map[Event]map[Status]Status{
		Process: {InProgress: InProcessing},
		Deliver: {InProcessing: InDelivery},
		Ship:    {InDelivery: Delivered},
		Cancel: {
			InProcessing: Canceled,
			InDelivery:   Canceled,
		},
	}
}

// Transition computes the status an order moves to when event fires from
// current. It is a pure function with no side effects: on success it returns
// the new status, otherwise StatusUnknown and an IllegalTransitionError.
// The result depends only on the arguments, so a rejected transition can be
// retried any number of times and fails identically each time.
func Transition(current Status, event Event) (Status, error) {
	if err := event.Validate(); err != nil {
		return StatusUnknown, err
	}
	if err := current.Validate(); err != nil {
		return StatusUnknown, err
	}

	next, ok := transitions()[event][current]
	if !ok {
		return StatusUnknown, errs.NewIllegalTransitionError(event.String(), current.String())
	}

	return next, nil
}
