package queries

import (
	"context"
	"fmt"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
)

// OrderReader is the slice of the order repository the report needs.
type OrderReader interface {
	GetAll(ctx context.Context) ([]*order.Order, error)
}

// GetSalesReportQueryHandler builds sales reports.
// Unlike the listing handlers this one goes through the repository: revenue
// must come from the domain's own total arithmetic, not a parallel SQL
// reimplementation that could drift from it.
type GetSalesReportQueryHandler struct {
	orders OrderReader
}

// NewGetSalesReportQueryHandler creates a handler for sales reports.
func NewGetSalesReportQueryHandler(orders OrderReader) GetSalesReportQueryHandler {
	return GetSalesReportQueryHandler{orders: orders}
}

// Handle executes the report build. Only admins may read reports.
func (h GetSalesReportQueryHandler) Handle(
	ctx context.Context,
	query GetSalesReportQuery,
) (services.SalesReport, error) {
	if err := query.Validate(); err != nil {
		return services.SalesReport{}, err
	}

	if query.Actor().Role() != account.Admin {
		return services.SalesReport{}, fmt.Errorf(
			"%w: %s may not read sales reports", services.ErrForbidden, query.Actor().Role(),
		)
	}

	orders, err := h.orders.GetAll(ctx)
	if err != nil {
		return services.SalesReport{}, err
	}

	return services.BuildSalesReport(orders, query.Location()), nil
}
