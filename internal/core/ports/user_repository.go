package ports

import (
	"context"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/services"
)

// UserRepository defines the persistence contract for user accounts.
type UserRepository interface {
	// Add persists a new user. Emails are unique; adding a duplicate fails.
	Add(ctx context.Context, user *account.User) error

	// Update persists changes to an existing user.
	Update(ctx context.Context, user *account.User) error

	// Get retrieves a user by id.
	Get(ctx context.Context, id kernel.UUID) (*account.User, error)

	// GetByEmail retrieves a user by their unique email.
	GetByEmail(ctx context.Context, email string) (*account.User, error)

	// GetAll retrieves every user account for the admin dashboard.
	GetAll(ctx context.Context) ([]*account.User, error)

	// GetDriverWorkloads retrieves all driver accounts together with how
	// many orders each currently has in flight (attached but not yet
	// delivered). Input for the auto-dispatch selection.
	GetDriverWorkloads(ctx context.Context) ([]services.DriverWorkload, error)
}
