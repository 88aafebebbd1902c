package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrUpdateMenuItemCommandIsNotConstructed = errors.New(
	"UpdateMenuItemCommand must be created via NewUpdateMenuItemCommand constructor",
)

// UpdateMenuItemCommand represents a request to edit an existing menu item.
// Edits never touch order lines already placed; those hold their own
// snapshots of name and price.
type UpdateMenuItemCommand struct { //nolint:recvcheck //using for validation
	menuItemID  kernel.UUID
	name        string
	description string
	price       kernel.Money
	category    string
	imageURL    string
	available   bool
	actor       account.Actor

	guard guard.ConstructorGuard
}

// NewUpdateMenuItemCommand creates a command to edit a menu item.
func NewUpdateMenuItemCommand(
	menuItemID kernel.UUID,
	name, description string,
	price kernel.Money,
	category, imageURL string,
	available bool,
	actor account.Actor,
) (UpdateMenuItemCommand, error) {
	itemCommand := UpdateMenuItemCommand{
		description: description,
		price:       price,
		category:    category,
		imageURL:    imageURL,
		available:   available,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		itemCommand.setMenuItemID(menuItemID),
		itemCommand.setName(name),
		itemCommand.setActor(actor),
	); err != nil {
		return UpdateMenuItemCommand{}, err
	}

	return itemCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuItemCommandIsNotConstructed)
}

// MenuItemID returns the identifier of the item to edit.
func (c UpdateMenuItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

// Name returns the new display name.
func (c UpdateMenuItemCommand) Name() string {
	return c.name
}

// Description returns the new description.
func (c UpdateMenuItemCommand) Description() string {
	return c.description
}

// Price returns the new price.
func (c UpdateMenuItemCommand) Price() kernel.Money {
	return c.price
}

// Category returns the new category. Empty means the default category.
func (c UpdateMenuItemCommand) Category() string {
	return c.category
}

// ImageURL returns the new image location.
func (c UpdateMenuItemCommand) ImageURL() string {
	return c.imageURL
}

// Available returns whether the item can currently be ordered.
func (c UpdateMenuItemCommand) Available() bool {
	return c.available
}

// Actor returns the party managing the menu.
func (c UpdateMenuItemCommand) Actor() account.Actor {
	return c.actor
}

func (c *UpdateMenuItemCommand) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}

	c.menuItemID = menuItemID
	return nil
}

func (c *UpdateMenuItemCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *UpdateMenuItemCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
