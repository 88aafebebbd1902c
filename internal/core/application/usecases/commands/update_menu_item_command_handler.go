package commands

import (
	"context"

	"foodorder/internal/core/domain/services"
)

// UpdateMenuItemCommandHandler edits existing menu items.
type UpdateMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewUpdateMenuItemCommandHandler creates a handler for menu item edits.
func NewUpdateMenuItemCommandHandler(uowFactory MenuUoWFactory) UpdateMenuItemCommandHandler {
	return UpdateMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the menu item edit command.
func (h UpdateMenuItemCommandHandler) Handle(ctx context.Context, command UpdateMenuItemCommand) error {
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

	if err = item.UpdateDetails(
		command.Name(),
		command.Description(),
		command.Price(),
		command.ImageURL(),
	); err != nil {
		return err
	}
	item.MoveToCategory(command.Category())
	item.SetAvailability(command.Available())

	if err = menuRepo.Update(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
