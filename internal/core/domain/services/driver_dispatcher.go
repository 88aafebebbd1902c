package services

import (
	"errors"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
)

// ErrDriverNotFound is returned when no suitable driver is available for
// dispatch: either no candidates were provided or none has driver role.
var ErrDriverNotFound = errors.New("driver not found")

// DriverWorkload pairs a driver with how many orders they currently have in
// flight (assigned but not yet delivered). The repository computes the count;
// the dispatcher only compares.
type DriverWorkload struct {
	Driver           *account.User
	ActiveDeliveries int
}

// DriverDispatcher is a domain service that picks the best driver for a
// ready order and attaches them.
//
// Business rules:
//   - The order must be Ready with no driver attached
//   - Candidates must be valid driver accounts
//   - Selection prioritizes the fewest active deliveries; ties keep the
//     first candidate
type DriverDispatcher struct{}

// NewDriverDispatcher creates a new DriverDispatcher instance.
func NewDriverDispatcher() DriverDispatcher {
	return DriverDispatcher{}
}

// Dispatch selects the least-loaded driver and assigns the order to them.
// Returns ErrDriverNotFound if no candidate qualifies, or the aggregate's
// assignment errors (ErrAlreadyAssigned, ErrInvalidState) if the order is not
// assignable.
func (d DriverDispatcher) Dispatch(o *order.Order, candidates []DriverWorkload) (*account.User, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	best, err := d.findLeastLoaded(candidates)
	if err != nil {
		return nil, err
	}

	if err = o.AssignDriver(best.ID()); err != nil {
		return nil, err
	}

	return best, nil
}

func (d DriverDispatcher) findLeastLoaded(candidates []DriverWorkload) (*account.User, error) {
	var best *account.User
	bestLoad := 0

	for _, candidate := range candidates {
		if err := candidate.Driver.Validate(); err != nil {
			return nil, err
		}
		if candidate.Driver.Role() != account.Driver {
			return nil, errs.NewValueIsInvalidError("driver")
		}

		if best == nil || candidate.ActiveDeliveries < bestLoad {
			best = candidate.Driver
			bestLoad = candidate.ActiveDeliveries
		}
	}

	if best == nil {
		return nil, ErrDriverNotFound
	}

	return best, nil
}
