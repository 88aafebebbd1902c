package commands

import (
	"context"

	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/errs"
)

// RenameCategoryCommandHandler relabels menu categories in bulk.
type RenameCategoryCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewRenameCategoryCommandHandler creates a handler for category renames.
func NewRenameCategoryCommandHandler(uowFactory MenuUoWFactory) RenameCategoryCommandHandler {
	return RenameCategoryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the category rename command.
// Renaming a category no item carries is reported as not found rather than
// silently succeeding.
func (h RenameCategoryCommandHandler) Handle(ctx context.Context, command RenameCategoryCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	if err := services.Authorize(command.Actor(), services.ManageCategories, nil); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	moved, err := uow.MenuItemRepository().RenameCategory(ctx, command.From(), command.To())
	if err != nil {
		return err
	}
	if moved == 0 {
		return errs.NewObjectNotFoundError("category", command.From())
	}

	return uow.Commit(ctx)
}
