package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrRenameCategoryCommandIsNotConstructed = errors.New(
	"RenameCategoryCommand must be created via NewRenameCategoryCommand constructor",
)

// RenameCategoryCommand represents a request to relabel a menu category.
// Categories exist only as labels on items, so renaming moves every item
// carrying the old label to the new one.
type RenameCategoryCommand struct { //nolint:recvcheck //using for validation
	from  string
	to    string
	actor account.Actor

	guard guard.ConstructorGuard
}

// NewRenameCategoryCommand creates a command to rename a category.
// Both labels must be non-empty and distinct.
func NewRenameCategoryCommand(from, to string, actor account.Actor) (RenameCategoryCommand, error) {
	renameCommand := RenameCategoryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		renameCommand.setLabels(from, to),
		renameCommand.setActor(actor),
	); err != nil {
		return RenameCategoryCommand{}, err
	}

	return renameCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RenameCategoryCommand) Validate() error {
	return c.guard.Validate(ErrRenameCategoryCommandIsNotConstructed)
}

// From returns the current category label.
func (c RenameCategoryCommand) From() string {
	return c.from
}

// To returns the replacement category label.
func (c RenameCategoryCommand) To() string {
	return c.to
}

// Actor returns the party managing categories.
func (c RenameCategoryCommand) Actor() account.Actor {
	return c.actor
}

func (c *RenameCategoryCommand) setLabels(from, to string) error {
	if from == "" {
		return errs.NewValueIsRequiredError("from")
	}
	if to == "" {
		return errs.NewValueIsRequiredError("to")
	}
	if from == to {
		return errs.NewValueIsInvalidError("to")
	}

	c.from = from
	c.to = to
	return nil
}

func (c *RenameCategoryCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
