package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TrackOrderQueryHandler serves the public tracking view.
//
// Example:
//
//	handler := NewTrackOrderQueryHandler(db)
//	query, _ := NewTrackOrderQuery(orderID)
//
//	tracking, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%s: %.0f%%\n", tracking.Status, tracking.Progress*100)
type TrackOrderQueryHandler struct {
	db *gorm.DB
}

// NewTrackOrderQueryHandler creates a handler for order tracking reads.
func NewTrackOrderQueryHandler(db *gorm.DB) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{db: db}
}

// Handle executes the tracking read.
func (h TrackOrderQueryHandler) Handle(
	ctx context.Context,
	query TrackOrderQuery,
) (TrackOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT status, driver_id, created_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	var (
		status    string
		driverID  *uuid.UUID
		createdAt time.Time
	)
	if err := row.Scan(&status, &driverID, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TrackOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return TrackOrderQueryResponse{}, err
	}

	st, err := order.StatusFromString(status)
	if err != nil {
		return TrackOrderQueryResponse{}, err
	}

	return TrackOrderQueryResponse{
		OrderID:        query.OrderID(),
		Status:         st.String(),
		Progress:       progressOf(st, driverID != nil),
		DriverAssigned: driverID != nil,
		CreatedAt:      createdAt,
	}, nil
}
