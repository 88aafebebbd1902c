package commands

import (
	"context"

	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/core/domain/services"
)

// CreateMenuItemCommandHandler adds new items to the menu.
type CreateMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewCreateMenuItemCommandHandler creates a handler for menu item creation.
func NewCreateMenuItemCommandHandler(uowFactory MenuUoWFactory) CreateMenuItemCommandHandler {
	return CreateMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the menu item creation command.
// Only actors with menu management permission (admins) pass authorization.
func (h CreateMenuItemCommandHandler) Handle(ctx context.Context, command CreateMenuItemCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	if err := services.Authorize(command.Actor(), services.ManageMenu, nil); err != nil {
		return err
	}

	item, err := menu.NewMenuItem(
		command.MenuItemID(),
		command.Name(),
		command.Description(),
		command.Price(),
		command.Category(),
		command.ImageURL(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.MenuItemRepository().Add(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
