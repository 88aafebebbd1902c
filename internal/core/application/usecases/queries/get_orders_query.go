// Package queries contains read operations in the CQRS architecture.
// Query handlers read the database directly instead of going through
// repositories: listings and reports do not need full aggregates,
// only projection rows shaped for the caller.
package queries

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery lists orders visible to the acting party.
// The scope is decided server-side from the actor's role: staff and admins
// see everything, customers their own orders, drivers their assigned orders.
// Guests cannot list; they track a single order by id instead.
//
// Example:
//
//	query, err := NewGetOrdersQuery(actor)
//	if err != nil {
//	    return err
//	}
//	summaries, err := handler.Handle(ctx, query)
type GetOrdersQuery struct { //nolint:recvcheck //using for validation
	actor account.Actor

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query to list orders for one actor.
func NewGetOrdersQuery(actor account.Actor) (GetOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}

	return GetOrdersQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Actor returns the party requesting the listing.
func (q GetOrdersQuery) Actor() account.Actor {
	return q.actor
}

// OrderSummaryResponse is one row of an order listing.
// The total is the sum of stored line totals, so it always matches what the
// customer saw at checkout regardless of later menu edits.
type OrderSummaryResponse struct {
	ID              kernel.UUID
	Status          string
	Total           string
	DeliveryAddress string
	DriverID        *kernel.UUID
	CreatedAt       time.Time
}
