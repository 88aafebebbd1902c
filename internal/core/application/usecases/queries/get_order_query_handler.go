package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves single orders with their lines.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order detail reads.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the detail read.
// Ownership is checked after the row is loaded: an actor who may not see the
// order gets forbidden, an order that does not exist gets not found.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (OrderDetailResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderDetailResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, customer_id, status, delivery_address, notes, driver_id, created_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	var (
		id         uuid.UUID
		customerID *uuid.UUID
		status     string
		address    string
		notes      string
		driverID   *uuid.UUID
		createdAt  time.Time
	)
	if err := row.Scan(&id, &customerID, &status, &address, &notes, &driverID, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderDetailResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return OrderDetailResponse{}, err
	}

	ownership, driver, err := buildOwnership(customerID, driverID)
	if err != nil {
		return OrderDetailResponse{}, err
	}
	if err = services.Authorize(query.Actor(), services.ReadOrder, &ownership); err != nil {
		return OrderDetailResponse{}, err
	}

	st, err := order.StatusFromString(status)
	if err != nil {
		return OrderDetailResponse{}, err
	}

	lines, totalCents, err := h.loadLines(ctx, query.OrderID())
	if err != nil {
		return OrderDetailResponse{}, err
	}

	total, err := kernel.NewMoneyFromCents(totalCents)
	if err != nil {
		return OrderDetailResponse{}, err
	}

	return OrderDetailResponse{
		ID:              query.OrderID(),
		Status:          st.String(),
		Progress:        progressOf(st, driver != nil),
		DeliveryAddress: address,
		Notes:           notes,
		DriverID:        driver,
		CreatedAt:       createdAt,
		Lines:           lines,
		Total:           total.String(),
	}, nil
}

func (h GetOrderQueryHandler) loadLines(
	ctx context.Context,
	orderID kernel.UUID,
) ([]OrderLineResponse, int64, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT menu_item_id, name, price_cents, quantity
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	lines := make([]OrderLineResponse, 0)
	var totalCents int64
	for rows.Next() {
		var (
			menuItemID uuid.UUID
			name       string
			priceCents int64
			quantity   int
		)
		if err = rows.Scan(&menuItemID, &name, &priceCents, &quantity); err != nil {
			return nil, 0, err
		}

		itemID, idErr := kernel.UUIDFromBytes(menuItemID[:])
		if idErr != nil {
			return nil, 0, idErr
		}
		price, priceErr := kernel.NewMoneyFromCents(priceCents)
		if priceErr != nil {
			return nil, 0, priceErr
		}
		lineCents := priceCents * int64(quantity)
		lineTotal, lineErr := kernel.NewMoneyFromCents(lineCents)
		if lineErr != nil {
			return nil, 0, lineErr
		}

		totalCents += lineCents
		lines = append(lines, OrderLineResponse{
			MenuItemID: itemID,
			Name:       name,
			Price:      price.String(),
			Quantity:   quantity,
			LineTotal:  lineTotal.String(),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return lines, totalCents, nil
}

func buildOwnership(customerID, driverID *uuid.UUID) (services.OrderOwnership, *kernel.UUID, error) {
	var ownership services.OrderOwnership

	if customerID != nil {
		c, err := kernel.UUIDFromBytes((*customerID)[:])
		if err != nil {
			return services.OrderOwnership{}, nil, err
		}
		ownership.CustomerID = &c
	}

	var driver *kernel.UUID
	if driverID != nil {
		d, err := kernel.UUIDFromBytes((*driverID)[:])
		if err != nil {
			return services.OrderOwnership{}, nil, err
		}
		driver = &d
		ownership.DriverID = driver
	}

	return ownership, driver, nil
}

// progressOf maps a stored status to the tracking fraction. A ready order
// with a driver already attached reports further progress than a bare ready
// order, even though assignment is not a status of its own.
func progressOf(st order.Status, hasDriver bool) float64 {
	if st == order.Ready && hasDriver {
		return 0.60
	}
	return st.Progress()
}
