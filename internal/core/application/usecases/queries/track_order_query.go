package queries

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrTrackOrderQueryIsNotConstructed = errors.New(
	"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
)

// TrackOrderQuery is the public tracking read. Knowing the order id is the
// only credential: guests get their tracking link at checkout and never log
// in. The response deliberately contains no customer or address data.
type TrackOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewTrackOrderQuery creates a query to track one order by id.
func NewTrackOrderQuery(orderID kernel.UUID) (TrackOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return TrackOrderQuery{}, err
	}

	return TrackOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the tracked order.
func (q TrackOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// TrackOrderQueryResponse is the public view of an order's progress.
// Progress moves monotonically from 0.10 at pending to 1.0 at delivered.
type TrackOrderQueryResponse struct {
	OrderID        kernel.UUID
	Status         string
	Progress       float64
	DriverAssigned bool
	CreatedAt      time.Time
}
