package services

import (
	"fmt"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
)

// TransitionOrder moves an order to the next lifecycle status on behalf of an
// actor, combining the state machine with the permission matrix.
//
// Failure order follows the transition contract: an illegal status move fails
// with ErrInvalidTransition before any permission check, then the actor's
// role is checked against the matrix (ErrForbidden), then driver-specific
// scoping applies: a driver may only move orders assigned to them, so pickup
// and delivery record exactly who performed them.
//
// On success only the status field of the order has changed. Persistence is
// the caller's concern.
func TransitionOrder(o *order.Order, next order.Status, actor account.Actor) error {
	if err := o.Validate(); err != nil {
		return err
	}

	action, err := TransitionAction(o.Status(), next)
	if err != nil {
		return err
	}

	if err := Authorize(actor, action, nil); err != nil {
		return err
	}

	if actor.Role() == account.Driver {
		if o.Driver() == nil || !actor.IsSame(*o.Driver()) {
			return fmt.Errorf("%w: driver may only move own assigned orders", ErrForbidden)
		}
	}

	return o.ChangeStatus(next)
}

// AssignDriverToOrder attaches a driver to a ready order on behalf of an
// actor. An order that already has a driver fails with ErrAlreadyAssigned no
// matter who asks; afterwards only admins and kitchen staff may assign
// (ErrForbidden otherwise), and the aggregate enforces the ready-state
// precondition (ErrInvalidState).
func AssignDriverToOrder(o *order.Order, driver *account.User, actor account.Actor) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := driver.Validate(); err != nil {
		return err
	}

	if o.Driver() != nil {
		return order.ErrAlreadyAssigned
	}

	if err := Authorize(actor, AssignDriver, nil); err != nil {
		return err
	}

	if driver.Role() != account.Driver {
		return errs.NewValueIsInvalidErrorWithCause("driver",
			fmt.Errorf("user %s has role %s", driver.ID(), driver.Role()))
	}

	return o.AssignDriver(driver.ID())
}
