package queries

import (
	"context"
	"fmt"
	"time"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler lists orders from the database, scoped to the actor.
//
// Example:
//
//	handler := NewGetOrdersQueryHandler(db)
//	query, _ := NewGetOrdersQuery(actor)
//
//	summaries, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("failed to list orders: %v", err)
//	    return err
//	}
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listings.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the listing, newest orders first.
// The WHERE clause is derived from the actor's role; a caller can never
// widen their own scope through query parameters.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	const baseSQL = `
		SELECT
			o.id,
			o.status,
			o.delivery_address,
			o.driver_id,
			o.created_at,
			COALESCE(SUM(i.price_cents * i.quantity), 0) AS total_cents
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		%s
		GROUP BY o.id, o.status, o.delivery_address, o.driver_id, o.created_at
		ORDER BY o.created_at DESC
	`

	actor := query.Actor()

	var (
		where string
		args  []any
	)
	switch actor.Role() {
	case account.Admin, account.KitchenStaff:
	case account.Customer:
		where = "WHERE o.customer_id = ?"
		args = append(args, actor.ID().Bytes())
	case account.Driver:
		where = "WHERE o.driver_id = ?"
		args = append(args, actor.ID().Bytes())
	default:
		return nil, fmt.Errorf("%w: %s may not list orders", services.ErrForbidden, actor.Role())
	}

	rows, err := h.db.WithContext(ctx).Raw(fmt.Sprintf(baseSQL, where), args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]OrderSummaryResponse, 0)
	for rows.Next() {
		var (
			id         uuid.UUID
			status     string
			address    string
			driverID   *uuid.UUID
			createdAt  time.Time
			totalCents int64
		)
		if err = rows.Scan(&id, &status, &address, &driverID, &createdAt, &totalCents); err != nil {
			return nil, err
		}

		summary, convErr := buildOrderSummary(id, status, address, driverID, createdAt, totalCents)
		if convErr != nil {
			return nil, convErr
		}
		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}

func buildOrderSummary(
	id uuid.UUID,
	status, address string,
	driverID *uuid.UUID,
	createdAt time.Time,
	totalCents int64,
) (OrderSummaryResponse, error) {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderSummaryResponse{}, err
	}

	var driver *kernel.UUID
	if driverID != nil {
		d, driverErr := kernel.UUIDFromBytes((*driverID)[:])
		if driverErr != nil {
			return OrderSummaryResponse{}, driverErr
		}
		driver = &d
	}

	total, err := kernel.NewMoneyFromCents(totalCents)
	if err != nil {
		return OrderSummaryResponse{}, err
	}

	return OrderSummaryResponse{
		ID:              orderID,
		Status:          status,
		Total:           total.String(),
		DeliveryAddress: address,
		DriverID:        driver,
		CreatedAt:       createdAt,
	}, nil
}
