package commands

import (
	"context"

	"foodorder/internal/core/domain/services"
)

// UpdateUserCommandHandler edits user accounts.
type UpdateUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewUpdateUserCommandHandler creates a handler for account edits.
func NewUpdateUserCommandHandler(uowFactory UserUoWFactory) UpdateUserCommandHandler {
	return UpdateUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the account edit command.
func (h UpdateUserCommandHandler) Handle(ctx context.Context, command UpdateUserCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	if err := services.Authorize(command.Actor(), services.ManageUsers, nil); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	user, err := userRepo.Get(ctx, command.UserID())
	if err != nil {
		return err
	}

	if err = user.UpdateProfile(command.Name(), command.Email()); err != nil {
		return err
	}
	if err = user.ChangeRole(command.Role()); err != nil {
		return err
	}

	if err = userRepo.Update(ctx, user); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
