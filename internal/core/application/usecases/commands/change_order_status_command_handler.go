package commands

import (
	"context"
	"time"

	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"
)

// ChangeOrderStatusCommandHandler advances orders through their lifecycle.
// Loads the order, applies the transition (authorization and state machine
// rules live in the domain service), and writes the new status conditional
// on the status it read. After the transaction commits the change is
// announced on the event bus.
//
// Example:
//
//	handler := NewChangeOrderStatusCommandHandler(uowFactory, publisher)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrInvalidTransition):
//	    // the requested step does not follow the current status
//	case errors.Is(err, services.ErrForbidden):
//	    // the actor's role may not perform this step
//	case errors.Is(err, ports.ErrConcurrentModification):
//	    // someone else moved the order first; re-read and retry
//	}
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewChangeOrderStatusCommandHandler creates a handler for status transitions.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the status transition command.
// The write is conditional on the status read in this transaction, so two
// racing transitions resolve to one winner and one
// ports.ErrConcurrentModification.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, command ChangeOrderStatusCommand) error {
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

	previous := aggregate.Status()
	if err = services.TransitionOrder(aggregate, command.Next(), command.Actor()); err != nil {
		return err
	}

	if err = orderRepo.UpdateStatus(ctx, aggregate, previous); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.publisher.PublishStatusChanged(ctx, ports.OrderStatusChanged{
		OrderID:    aggregate.ID(),
		From:       previous,
		To:         aggregate.Status(),
		DriverID:   aggregate.Driver(),
		ActorRole:  command.Actor().Role(),
		OccurredAt: time.Now().UTC(),
	})
}
