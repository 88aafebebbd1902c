// Package ports defines repository and messaging interfaces for the domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// ErrConcurrentModification is returned when a guarded write lost a race:
// the order's stored status (or driver attachment) no longer matches what the
// caller read. The losing writer gets this conflict instead of silently
// overwriting, so an invalid transition can never slip through via
// last-write-wins.
var ErrConcurrentModification = errors.New("order was modified concurrently")

// OrderRepository defines the persistence contract for order aggregates.
//
// Writes that depend on what the caller previously read (status transitions,
// driver attachment) are conditional: they take effect only if the stored
// record still matches the expected prior state, and fail with
// ErrConcurrentModification otherwise. Reads always load full records, never
// partial field sets.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, including
	// its lines. Returns errs.ObjectNotFoundError for unknown ids.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves every order, newest first. Used by staff and admin
	// dashboards and by reporting.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllForCustomer retrieves the orders placed by one customer account,
	// newest first. This is the server-side scoping for customer reads.
	GetAllForCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)

	// GetAllForDriver retrieves the orders assigned to one driver, newest
	// first. This is the server-side scoping for driver reads.
	GetAllForDriver(ctx context.Context, driverID kernel.UUID) ([]*order.Order, error)

	// GetAllReadyUnassigned retrieves ready orders with no driver attached,
	// oldest first. Used by the auto-dispatch job.
	GetAllReadyUnassigned(ctx context.Context) ([]*order.Order, error)

	// UpdateStatus persists the aggregate's current status, conditional on
	// the stored status still being previous. A concurrent transition that
	// got there first surfaces as ErrConcurrentModification.
	UpdateStatus(ctx context.Context, aggregate *order.Order, previous order.Status) error

	// AttachDriver persists the aggregate's driver attachment, conditional
	// on the stored record being ready with no driver. A concurrent
	// assignment surfaces as ErrConcurrentModification.
	AttachDriver(ctx context.Context, aggregate *order.Order) error
}
