package queries

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrGetUsersQueryIsNotConstructed = errors.New(
	"GetUsersQuery must be created via NewGetUsersQuery constructor",
)

// GetUsersQuery lists user accounts for the admin dashboard.
type GetUsersQuery struct { //nolint:recvcheck //using for validation
	actor account.Actor

	guard guard.ConstructorGuard
}

// NewGetUsersQuery creates a query to list user accounts.
func NewGetUsersQuery(actor account.Actor) (GetUsersQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetUsersQuery{}, err
	}

	return GetUsersQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUsersQuery) Validate() error {
	return q.guard.Validate(ErrGetUsersQueryIsNotConstructed)
}

// Actor returns the party requesting the listing.
func (q GetUsersQuery) Actor() account.Actor {
	return q.actor
}

// UserResponse is one account row. Password hashes never leave the store.
type UserResponse struct {
	ID        kernel.UUID
	Name      string
	Email     string
	Role      string
	CreatedAt time.Time
}
