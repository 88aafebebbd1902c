package account

import (
	"errors"
	"strings"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through the NewUser or RestoreUser factory methods.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")

// User represents an authenticated party in the system: an administrator,
// kitchen staff member, driver, or customer. Guests are not Users; they act
// through guest contact fields carried on the order itself.
//
// User follows these invariants:
//   - Must have a valid unique identifier
//   - Name and email must be non-empty, email must look like an address
//   - Password hash is write-only: stored, never exposed through accessors
//     that serialize outward
//   - Role must be one of the defined variants (never Guest: guests do not
//     have accounts)
type User struct {
	id           kernel.UUID
	name         string
	email        string
	passwordHash string
	role         Role
	createdAt    time.Time

	isConstructed bool
}

// NewUser creates a User with validation. The role must be a real account
// role; Guest is rejected because guests have no account record.
func NewUser(id kernel.UUID, name, email, passwordHash string, role Role) (*User, error) {
	user := &User{
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		user.setID(id),
		user.setName(name),
		user.setEmail(email),
		user.setPasswordHash(passwordHash),
		user.setRole(role),
	); err != nil {
		return nil, err
	}

	return user, nil
}

// RestoreUser reconstructs a User from persistence without re-deriving
// creation time.
func RestoreUser(id kernel.UUID, name, email, passwordHash string, role Role, createdAt time.Time) (*User, error) {
	user, err := NewUser(id, name, email, passwordHash, role)
	if err != nil {
		return nil, err
	}
	user.createdAt = createdAt
	return user, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Name returns the user's display name.
func (u *User) Name() string {
	return u.name
}

// Email returns the user's email address.
func (u *User) Email() string {
	return u.email
}

// PasswordHash returns the stored credential hash. The http adapter must
// never serialize this outward; it exists for the authentication collaborator
// only.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// Role returns the user's role.
func (u *User) Role() Role {
	return u.role
}

// CreatedAt returns the account creation time.
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// Actor returns the actor identity this user presents when performing
// operations.
func (u *User) Actor() Actor {
	return Actor{id: &u.id, role: u.role}
}

// UpdateProfile changes the user's name and email with the same validation
// as construction.
func (u *User) UpdateProfile(name, email string) error {
	return errors.Join(
		u.setName(name),
		u.setEmail(email),
	)
}

// ChangeRole moves the user to a different role. Guest is rejected for the
// same reason as in NewUser.
func (u *User) ChangeRole(role Role) error {
	return u.setRole(role)
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}
	u.email = email
	return nil
}

func (u *User) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	u.passwordHash = passwordHash
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	if role == Guest {
		return errs.NewValueIsInvalidErrorWithCause("role",
			errors.New("guests do not have accounts"))
	}
	u.role = role
	return nil
}
