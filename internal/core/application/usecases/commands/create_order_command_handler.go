package commands

import (
	"context"
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/errs"
)

// ErrMenuItemNotAvailable is returned when an order line references a menu
// item that is unavailable or has been removed from the menu.
var ErrMenuItemNotAvailable = errors.New("menu item is not available for ordering")

// CreateOrderCommandHandler places new orders.
// Resolves each order line against the menu, snapshots the item's name and
// price into the order, and persists the aggregate in pending status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(uowFactory CheckoutUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command.
// Checks the actor may place orders and that the claimed customer identity
// matches the actor, resolves menu lines, and stores the new pending order.
// Later price or name edits to the menu never touch existing orders: the
// lines carry their own copies.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, command CreateOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	actor := command.Actor()
	if err := services.Authorize(actor, services.CreateOrder, nil); err != nil {
		return err
	}
	if err := checkCustomerIdentity(actor, command.Customer()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuRepo := uow.MenuItemRepository()

	items := make([]order.Item, 0, len(command.Lines()))
	for _, line := range command.Lines() {
		menuItem, err := menuRepo.Get(ctx, line.MenuItemID)
		if err != nil {
			return err
		}
		if !menuItem.IsAvailable() {
			return fmt.Errorf("%w: %s", ErrMenuItemNotAvailable, menuItem.Name())
		}

		item, err := order.NewItem(menuItem.ID(), menuItem.Name(), menuItem.Price(), line.Quantity)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	newOrder, err := order.NewOrder(
		command.OrderID(),
		command.Customer(),
		command.DeliveryAddress(),
		command.Notes(),
		items,
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// checkCustomerIdentity ensures the claimed customer matches the acting party:
// a customer account may only place orders as itself, a guest only with guest
// contact details. Admins may place orders on anyone's behalf.
func checkCustomerIdentity(actor account.Actor, customer order.Customer) error {
	switch actor.Role() {
	case account.Admin:
		return nil
	case account.Customer:
		authenticated, ok := customer.(order.AuthenticatedCustomer)
		if !ok || !actor.IsSame(authenticated.ID()) {
			return fmt.Errorf("%w: customer may only order as themselves", services.ErrForbidden)
		}
		return nil
	case account.Guest:
		if _, ok := customer.(order.GuestContact); !ok {
			return fmt.Errorf("%w: guest orders require guest contact details", services.ErrForbidden)
		}
		return nil
	default:
		return errs.NewValueIsInvalidError("actor role")
	}
}
