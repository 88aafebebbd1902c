package account

import (
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// Actor is the role-bearing identity attempting an operation. It is passed
// explicitly to every operation that needs to know who is acting; there is no
// ambient session lookup anywhere in the core.
//
// An authenticated actor carries the account id its role claim was issued
// for. A guest actor carries no id: guests only ever act on orders they can
// name by id.
type Actor struct {
	id   *kernel.UUID
	role Role
}

// NewActor creates an actor for an authenticated account.
func NewActor(id kernel.UUID, role Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}
	if role == Guest {
		return Actor{}, errs.NewValueIsInvalidError("role")
	}
	return Actor{id: &id, role: role}, nil
}

// NewGuestActor creates the anonymous guest actor.
func NewGuestActor() Actor {
	return Actor{role: Guest}
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

// ID returns the acting account's id, or nil for a guest.
func (a Actor) ID() *kernel.UUID {
	return a.id
}

// IsSame reports whether the actor is the authenticated account with the
// given id. Always false for guests.
func (a Actor) IsSame(id kernel.UUID) bool {
	return a.id != nil && a.id.IsEqual(id)
}

// Validate checks the actor carries a defined role, and an id unless it is
// the guest actor.
func (a Actor) Validate() error {
	if err := a.role.Validate(); err != nil {
		return err
	}
	if a.role != Guest && a.id == nil {
		return errs.NewValueIsRequiredError("actor id")
	}
	return nil
}
