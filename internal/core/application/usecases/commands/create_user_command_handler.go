package commands

import (
	"context"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/services"
)

// CreateUserCommandHandler registers user accounts.
type CreateUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewCreateUserCommandHandler creates a handler for account registration.
func NewCreateUserCommandHandler(uowFactory UserUoWFactory) CreateUserCommandHandler {
	return CreateUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
// Only actors with user management permission (admins) pass authorization.
func (h CreateUserCommandHandler) Handle(ctx context.Context, command CreateUserCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	if err := services.Authorize(command.Actor(), services.ManageUsers, nil); err != nil {
		return err
	}

	user, err := account.NewUser(
		command.UserID(),
		command.Name(),
		command.Email(),
		command.PasswordHash(),
		command.Role(),
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

	if err = uow.UserRepository().Add(ctx, user); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
