package queries

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/pkg/guard"
)

var ErrGetSalesReportQueryIsNotConstructed = errors.New(
	"GetSalesReportQuery must be created via NewGetSalesReportQuery constructor",
)

// GetSalesReportQuery builds the sales report: order counts, completed
// revenue and a per-day revenue series. Admin only.
type GetSalesReportQuery struct { //nolint:recvcheck //using for validation
	location *time.Location
	actor    account.Actor

	guard guard.ConstructorGuard
}

// NewGetSalesReportQuery creates a query for the sales report.
// Days are bucketed in the given timezone; nil means UTC. The timezone
// matters: an order placed at 23:30 in the restaurant's zone belongs to
// that day, not the next UTC day.
func NewGetSalesReportQuery(location *time.Location, actor account.Actor) (GetSalesReportQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetSalesReportQuery{}, err
	}
	if location == nil {
		location = time.UTC
	}

	return GetSalesReportQuery{
		location: location,
		actor:    actor,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSalesReportQuery) Validate() error {
	return q.guard.Validate(ErrGetSalesReportQueryIsNotConstructed)
}

// Location returns the timezone used for day bucketing.
func (q GetSalesReportQuery) Location() *time.Location {
	return q.location
}

// Actor returns the party requesting the report.
func (q GetSalesReportQuery) Actor() account.Actor {
	return q.actor
}
