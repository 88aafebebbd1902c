package ports

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// OrderStatusChanged is the event emitted after a status transition or
// driver attachment commits. Consumers (notification services, dashboards)
// see the move and who performed it.
type OrderStatusChanged struct {
	OrderID    kernel.UUID
	From       order.Status
	To         order.Status
	DriverID   *kernel.UUID
	ActorRole  account.Role
	OccurredAt time.Time
}

// OrderEventPublisher defines the contract for emitting order lifecycle
// events to the message bus. Publishing happens after the storing
// transaction commits; a publish failure must not roll the transition back,
// only be reported.
type OrderEventPublisher interface {
	PublishStatusChanged(ctx context.Context, event OrderStatusChanged) error
	Close() error
}
