package commands

import (
	"context"
	"errors"
	"time"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"
)

var (
	ErrNoFreeDriversFound = errors.New("no free drivers found")
	ErrNoReadyOrderFound  = errors.New("no ready unassigned order found")
)

// AssignDriversCommandHandler orchestrates automatic driver dispatch.
// Finds ready unassigned orders and matches them with drivers using the
// least-loaded selection rule. Ensures transactional consistency between the
// order read and the attachment write.
//
// Example:
//
//	handler := NewAssignDriversCommandHandler(uowFactory, publisher)
//	cmd := NewAssignDriversCommand()
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoReadyOrderFound):
//	    log.Println("nothing waiting for a driver")
//	case errors.Is(err, ErrNoFreeDriversFound):
//	    log.Println("no driver accounts registered")
//	case err != nil:
//	    log.Printf("dispatch failed: %v", err)
//	}
type AssignDriversCommandHandler struct {
	uowFactory DispatchUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewAssignDriversCommandHandler creates a handler for automatic dispatch.
// Requires a DispatchUoWFactory for coordinating reads across orders and
// driver accounts with the attachment write.
func NewAssignDriversCommandHandler(
	uowFactory DispatchUoWFactory,
	publisher ports.OrderEventPublisher,
) AssignDriversCommandHandler {
	return AssignDriversCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the dispatch command.
// Takes the oldest ready order without a driver, loads current driver
// workloads, and attaches the least loaded driver. The write is conditional
// on the order still being ready and unassigned, so a manual assignment that
// raced ahead wins and this run reports ports.ErrConcurrentModification.
func (h AssignDriversCommandHandler) Handle(ctx context.Context, command AssignDriversCommand) error {
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

	orders, err := orderRepo.GetAllReadyUnassigned(ctx)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		return ErrNoReadyOrderFound
	}

	workloads, err := uow.UserRepository().GetDriverWorkloads(ctx)
	if err != nil {
		return err
	}
	if len(workloads) == 0 {
		return ErrNoFreeDriversFound
	}

	aggregate := orders[0]
	if _, err = services.NewDriverDispatcher().Dispatch(aggregate, workloads); err != nil {
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
		ActorRole:  account.Admin,
		OccurredAt: time.Now().UTC(),
	})
}
