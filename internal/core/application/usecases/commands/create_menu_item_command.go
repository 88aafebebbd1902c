package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrCreateMenuItemCommandIsNotConstructed = errors.New(
	"CreateMenuItemCommand must be created via NewCreateMenuItemCommand constructor",
)

// CreateMenuItemCommand represents a request to add a new item to the menu.
type CreateMenuItemCommand struct { //nolint:recvcheck //using for validation
	menuItemID  kernel.UUID
	name        string
	description string
	price       kernel.Money
	category    string
	imageURL    string
	actor       account.Actor

	guard guard.ConstructorGuard
}

// NewCreateMenuItemCommand creates a command to add a menu item.
// Name must be non-empty and price non-negative; an empty category falls
// back to the default at aggregate construction.
func NewCreateMenuItemCommand(
	menuItemID kernel.UUID,
	name, description string,
	price kernel.Money,
	category, imageURL string,
	actor account.Actor,
) (CreateMenuItemCommand, error) {
	itemCommand := CreateMenuItemCommand{
		description: description,
		price:       price,
		category:    category,
		imageURL:    imageURL,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		itemCommand.setMenuItemID(menuItemID),
		itemCommand.setName(name),
		itemCommand.setActor(actor),
	); err != nil {
		return CreateMenuItemCommand{}, err
	}

	return itemCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuItemCommandIsNotConstructed)
}

// MenuItemID returns the identifier for the new menu item.
func (c CreateMenuItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

// Name returns the display name of the item.
func (c CreateMenuItemCommand) Name() string {
	return c.name
}

// Description returns the item description. May be empty.
func (c CreateMenuItemCommand) Description() string {
	return c.description
}

// Price returns the item price.
func (c CreateMenuItemCommand) Price() kernel.Money {
	return c.price
}

// Category returns the menu category. Empty means the default category.
func (c CreateMenuItemCommand) Category() string {
	return c.category
}

// ImageURL returns the item image location. May be empty.
func (c CreateMenuItemCommand) ImageURL() string {
	return c.imageURL
}

// Actor returns the party managing the menu.
func (c CreateMenuItemCommand) Actor() account.Actor {
	return c.actor
}

func (c *CreateMenuItemCommand) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}

	c.menuItemID = menuItemID
	return nil
}

func (c *CreateMenuItemCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateMenuItemCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
