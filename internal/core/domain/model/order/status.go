package order

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with a single forward chain:
//
//	Pending ──> Cooking ──> Ready ──> PickedUp ──> Delivered
//
// Transitions are monotonic: every legal move is to the immediate successor,
// never backward and never skipping a state. Delivered is terminal.
//
// Driver assignment is deliberately not a status. Attaching a driver is a
// field mutation on a Ready order (see Order.AssignDriver); backends that
// persisted an "assigned" status map it to Ready on ingest.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when a checkout creates the order.
	Pending

	// Cooking indicates the kitchen has started preparing the order.
	Cooking

	// Ready indicates the order is prepared and waiting for a driver.
	Ready

	// PickedUp indicates the assigned driver has collected the order.
	PickedUp

	// Delivered indicates the order reached the customer.
	// This is a final state with no further transitions allowed.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Cooking:   "cooking",
		Ready:     "ready",
		PickedUp:  "picked_up",
		Delivered: "delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Cooking:   "cooking",
		Ready:     "ready",
		PickedUp:  "picked_up",
		Delivered: "delivered",
	}
}

// StatusFromString parses a wire status value. The legacy "assigned" value
// maps to Ready: in the canonical model a driver attachment is a field on a
// Ready order, not a status of its own.
func StatusFromString(s string) (Status, error) {
	if s == "assigned" {
		return Ready, nil
	}
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the defined lifecycle states.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", int(s)))
	}
	return nil
}

// String returns the wire name of the status.
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// Next returns the immediate successor in the canonical chain.
// Returns ErrInvalidTransition if the status is terminal or invalid.
func (s Status) Next() (Status, error) {
	switch s {
	case Pending:
		return Cooking, nil
	case Cooking:
		return Ready, nil
	case Ready:
		return PickedUp, nil
	case PickedUp:
		return Delivered, nil
	default:
		return Unknown, fmt.Errorf("%w: no transition out of %s", ErrInvalidTransition, s)
	}
}

// CanTransitionTo checks that next is the immediate successor of s.
// Skipping forward and moving backward both fail with ErrInvalidTransition.
func (s Status) CanTransitionTo(next Status) error {
	successor, err := s.Next()
	if err != nil {
		return err
	}
	if next != successor {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, next)
	}
	return nil
}

// Progress returns the completion fraction shown on tracking progress bars.
// The breakpoints are fixed and monotonically non-decreasing along the
// canonical chain. A Ready order with a driver attached reports a slightly
// higher fraction; that adjustment lives on Order.ProgressFraction because it
// depends on the driver field, not the status alone.
func (s Status) Progress() float64 {
	switch s {
	case Pending:
		return 0.10
	case Cooking:
		return 0.30
	case Ready:
		return 0.50
	case PickedUp:
		return 0.80
	case Delivered:
		return 1.00
	default:
		return 0
	}
}
