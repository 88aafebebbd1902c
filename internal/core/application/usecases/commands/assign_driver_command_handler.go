package commands

import (
	"context"
	"time"

	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"
)

// AssignDriverCommandHandler attaches a chosen driver to a ready order.
// The domain service enforces that only staff may assign, that the target
// account really is a driver, and that the order is ready and unassigned.
//
// Example:
//
//	handler := NewAssignDriverCommandHandler(uowFactory, publisher)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrAlreadyAssigned):
//	    // keep the first driver, reject the second
//	case errors.Is(err, order.ErrInvalidState):
//	    // order is not ready yet (or already picked up)
//	}
type AssignDriverCommandHandler struct {
	uowFactory DispatchUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewAssignDriverCommandHandler creates a handler for manual driver assignment.
func NewAssignDriverCommandHandler(
	uowFactory DispatchUoWFactory,
	publisher ports.OrderEventPublisher,
) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the assignment command.
// The attachment write is conditional on the order still being ready with no
// driver; a racing assignment surfaces as ports.ErrConcurrentModification
// and the first driver stays attached.
func (h AssignDriverCommandHandler) Handle(ctx context.Context, command AssignDriverCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	driver, err := uow.UserRepository().Get(ctx, command.DriverID())
	if err != nil {
		return err
	}

	if err = services.AssignDriverToOrder(aggregate, driver, command.Actor()); err != nil {
		return err
	}

	if err = orderRepo.AttachDriver(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.publisher.PublishStatusChanged(ctx, ports.OrderStatusChanged{
		OrderID:    aggregate.ID(),
		From:       aggregate.Status(),
		To:         aggregate.Status(),
		DriverID:   aggregate.Driver(),
		ActorRole:  command.Actor().Role(),
		OccurredAt: time.Now().UTC(),
	})
}
