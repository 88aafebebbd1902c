package queries

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order in full detail for an authorized actor.
// Customers see only their own orders, drivers only orders assigned to them.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   account.Actor

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to fetch one order.
func NewGetOrderQuery(orderID kernel.UUID, actor account.Actor) (GetOrderQuery, error) {
	if err := errors.Join(orderID.Validate(), actor.Validate()); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Actor returns the party requesting the order.
func (q GetOrderQuery) Actor() account.Actor {
	return q.actor
}

// OrderLineResponse is one line of an order detail view. Name and price are
// the snapshot taken at checkout, not the menu's current values.
type OrderLineResponse struct {
	MenuItemID kernel.UUID
	Name       string
	Price      string
	Quantity   int
	LineTotal  string
}

// OrderDetailResponse is the full view of one order.
type OrderDetailResponse struct {
	ID              kernel.UUID
	Status          string
	Progress        float64
	DeliveryAddress string
	Notes           string
	DriverID        *kernel.UUID
	CreatedAt       time.Time
	Lines           []OrderLineResponse
	Total           string
}
