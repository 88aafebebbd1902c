package commands

import (
	"context"

	"foodorder/internal/core/domain/services"
)

// RemoveMenuItemCommandHandler soft-deletes menu items.
type RemoveMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewRemoveMenuItemCommandHandler creates a handler for menu item removal.
func NewRemoveMenuItemCommandHandler(uowFactory MenuUoWFactory) RemoveMenuItemCommandHandler {
	return RemoveMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the removal command. Removing an already removed item is
// a no-op, not an error.
func (h RemoveMenuItemCommandHandler) Handle(ctx context.Context, command RemoveMenuItemCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	if err := services.Authorize(command.Actor(), services.ManageMenu, nil); err != nil {
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

	item, err := menuRepo.Get(ctx, command.MenuItemID())
	if err != nil {
		return err
	}

	item.MarkDeleted()

	if err = menuRepo.Update(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
