package order

import (
	"strings"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// Customer is the tagged union identifying who placed an order: an
// authenticated account or a guest with contact fields. The two variants are
// mutually exclusive on an order record; there is no order that carries both
// an account id and guest contact details.
type Customer interface {
	// Validate checks the variant's own invariants.
	Validate() error

	// isCustomer seals the union to the two variants below.
	isCustomer()
}

// AuthenticatedCustomer references a registered account by id.
type AuthenticatedCustomer struct {
	id kernel.UUID
}

// NewAuthenticatedCustomer creates the authenticated variant.
func NewAuthenticatedCustomer(id kernel.UUID) (AuthenticatedCustomer, error) {
	if err := id.Validate(); err != nil {
		return AuthenticatedCustomer{}, err
	}
	return AuthenticatedCustomer{id: id}, nil
}

// ID returns the account id of the ordering customer.
func (c AuthenticatedCustomer) ID() kernel.UUID {
	return c.id
}

// Validate checks the account reference is constructed.
func (c AuthenticatedCustomer) Validate() error {
	return c.id.Validate()
}

func (AuthenticatedCustomer) isCustomer() {}

// GuestContact carries the contact fields a guest supplies at checkout.
// Guests have no account; the order id doubles as their tracking reference.
type GuestContact struct {
	name  string
	phone string
	email string
}

// NewGuestContact creates the guest variant. Name and phone are required so
// the kitchen and driver can reach the guest; email is optional.
func NewGuestContact(name, phone, email string) (GuestContact, error) {
	if strings.TrimSpace(name) == "" {
		return GuestContact{}, errs.NewValueIsRequiredError("guest name")
	}
	if strings.TrimSpace(phone) == "" {
		return GuestContact{}, errs.NewValueIsRequiredError("guest phone")
	}
	if email != "" && !strings.Contains(email, "@") {
		return GuestContact{}, errs.NewValueIsInvalidError("guest email")
	}
	return GuestContact{name: name, phone: phone, email: email}, nil
}

// Name returns the guest's name.
func (c GuestContact) Name() string {
	return c.name
}

// Phone returns the guest's phone number.
func (c GuestContact) Phone() string {
	return c.phone
}

// Email returns the guest's email address, possibly empty.
func (c GuestContact) Email() string {
	return c.email
}

// Validate checks the contact fields satisfy the construction invariants.
func (c GuestContact) Validate() error {
	_, err := NewGuestContact(c.name, c.phone, c.email)
	return err
}

func (GuestContact) isCustomer() {}
