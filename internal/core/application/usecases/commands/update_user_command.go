package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrUpdateUserCommandIsNotConstructed = errors.New(
	"UpdateUserCommand must be created via NewUpdateUserCommand constructor",
)

// UpdateUserCommand represents a request to edit an account's profile or role.
type UpdateUserCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	name   string
	email  string
	role   account.Role
	actor  account.Actor

	guard guard.ConstructorGuard
}

// NewUpdateUserCommand creates a command to edit a user account.
func NewUpdateUserCommand(
	userID kernel.UUID,
	name, email string,
	role account.Role,
	actor account.Actor,
) (UpdateUserCommand, error) {
	userCommand := UpdateUserCommand{
		name:  name,
		email: email,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		userCommand.setUserID(userID),
		userCommand.setRole(role),
		userCommand.setActor(actor),
	); err != nil {
		return UpdateUserCommand{}, err
	}

	return userCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateUserCommand) Validate() error {
	return c.guard.Validate(ErrUpdateUserCommandIsNotConstructed)
}

// UserID returns the identifier of the account to edit.
func (c UpdateUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Name returns the new display name.
func (c UpdateUserCommand) Name() string {
	return c.name
}

// Email returns the new login email.
func (c UpdateUserCommand) Email() string {
	return c.email
}

// Role returns the role the account should hold.
func (c UpdateUserCommand) Role() account.Role {
	return c.role
}

// Actor returns the party managing users.
func (c UpdateUserCommand) Actor() account.Actor {
	return c.actor
}

func (c *UpdateUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *UpdateUserCommand) setRole(role account.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}

func (c *UpdateUserCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
