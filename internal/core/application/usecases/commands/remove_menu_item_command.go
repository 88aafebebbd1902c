package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrRemoveMenuItemCommandIsNotConstructed = errors.New(
	"RemoveMenuItemCommand must be created via NewRemoveMenuItemCommand constructor",
)

// RemoveMenuItemCommand represents a request to take an item off the menu.
// Removal is soft: the record stays so historical order lines keep their
// reference, but the item disappears from listings and cannot be ordered.
type RemoveMenuItemCommand struct { //nolint:recvcheck //using for validation
	menuItemID kernel.UUID
	actor      account.Actor

	guard guard.ConstructorGuard
}

// NewRemoveMenuItemCommand creates a command to remove a menu item.
func NewRemoveMenuItemCommand(menuItemID kernel.UUID, actor account.Actor) (RemoveMenuItemCommand, error) {
	removeCommand := RemoveMenuItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		removeCommand.setMenuItemID(menuItemID),
		removeCommand.setActor(actor),
	); err != nil {
		return RemoveMenuItemCommand{}, err
	}

	return removeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveMenuItemCommandIsNotConstructed)
}

// MenuItemID returns the identifier of the item to remove.
func (c RemoveMenuItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

// Actor returns the party managing the menu.
func (c RemoveMenuItemCommand) Actor() account.Actor {
	return c.actor
}

func (c *RemoveMenuItemCommand) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}

	c.menuItemID = menuItemID
	return nil
}

func (c *RemoveMenuItemCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
