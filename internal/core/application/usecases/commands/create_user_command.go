package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrCreateUserCommandIsNotConstructed = errors.New(
	"CreateUserCommand must be created via NewCreateUserCommand constructor",
)

// CreateUserCommand represents a request to register a new user account.
// The password arrives already hashed; handlers never see plaintext.
type CreateUserCommand struct { //nolint:recvcheck //using for validation
	userID       kernel.UUID
	name         string
	email        string
	passwordHash string
	role         account.Role
	actor        account.Actor

	guard guard.ConstructorGuard
}

// NewCreateUserCommand creates a command to register a user account.
// Guest is not a storable role and is rejected by the aggregate.
func NewCreateUserCommand(
	userID kernel.UUID,
	name, email, passwordHash string,
	role account.Role,
	actor account.Actor,
) (CreateUserCommand, error) {
	userCommand := CreateUserCommand{
		name:  name,
		email: email,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		userCommand.setUserID(userID),
		userCommand.setPasswordHash(passwordHash),
		userCommand.setRole(role),
		userCommand.setActor(actor),
	); err != nil {
		return CreateUserCommand{}, err
	}

	return userCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateUserCommand) Validate() error {
	return c.guard.Validate(ErrCreateUserCommandIsNotConstructed)
}

// UserID returns the identifier for the new account.
func (c CreateUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Name returns the display name.
func (c CreateUserCommand) Name() string {
	return c.name
}

// Email returns the unique login email.
func (c CreateUserCommand) Email() string {
	return c.email
}

// PasswordHash returns the pre-hashed credential.
func (c CreateUserCommand) PasswordHash() string {
	return c.passwordHash
}

// Role returns the role granted to the new account.
func (c CreateUserCommand) Role() account.Role {
	return c.role
}

// Actor returns the party managing users.
func (c CreateUserCommand) Actor() account.Actor {
	return c.actor
}

func (c *CreateUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *CreateUserCommand) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("password hash")
	}

	c.passwordHash = passwordHash
	return nil
}

func (c *CreateUserCommand) setRole(role account.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}

func (c *CreateUserCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
