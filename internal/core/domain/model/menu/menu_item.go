package menu

import (
	"errors"
	"strings"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// DefaultCategory is assigned when a menu item is created without an
// explicit category label.
const DefaultCategory = "Main"

// ErrMenuItemIsNotConstructed is returned when a MenuItem instance was not
// created through the NewMenuItem or RestoreMenuItem factory methods.
var ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem or RestoreMenuItem constructor")

// MenuItem is a dish offered for ordering. Categories are free-form labels
// used for grouping on the menu page; price is a non-negative amount that
// order lines snapshot at checkout.
//
// Menu items are soft-deleted: removed items disappear from listings but
// remain so historical order lines keep a resolvable reference.
type MenuItem struct {
	id          kernel.UUID
	name        string
	description string
	price       kernel.Money
	category    string
	imageURL    string
	available   bool
	deleted     bool

	isConstructed bool
}

// NewMenuItem creates a MenuItem with validation. An empty category falls
// back to DefaultCategory; new items start available.
func NewMenuItem(id kernel.UUID, name, description string, price kernel.Money, category, imageURL string) (*MenuItem, error) {
	item := &MenuItem{
		available:     true,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setPrice(price),
	); err != nil {
		return nil, err
	}

	item.description = description
	item.imageURL = imageURL
	item.setCategory(category)

	return item, nil
}

// RestoreMenuItem reconstructs a MenuItem from persistence with its
// availability and deletion flags.
func RestoreMenuItem(
	id kernel.UUID,
	name, description string,
	price kernel.Money,
	category, imageURL string,
	available, deleted bool,
) (*MenuItem, error) {
	item, err := NewMenuItem(id, name, description, price, category, imageURL)
	if err != nil {
		return nil, err
	}
	item.available = available
	item.deleted = deleted
	return item, nil
}

// Validate ensures the MenuItem instance was properly constructed.
func (m *MenuItem) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuItemIsNotConstructed
	}
	return nil
}

// IsEqual compares two menu items by their unique identifiers.
func (m *MenuItem) IsEqual(other *MenuItem) bool {
	return other != nil && m.id.IsEqual(other.id)
}

// ID returns the menu item's unique identifier.
func (m *MenuItem) ID() kernel.UUID {
	return m.id
}

// Name returns the display name.
func (m *MenuItem) Name() string {
	return m.name
}

// Description returns the display description, possibly empty.
func (m *MenuItem) Description() string {
	return m.description
}

// Price returns the current unit price.
func (m *MenuItem) Price() kernel.Money {
	return m.price
}

// Category returns the grouping label.
func (m *MenuItem) Category() string {
	return m.category
}

// ImageURL returns the optional image reference.
func (m *MenuItem) ImageURL() string {
	return m.imageURL
}

// IsAvailable reports whether the item can currently be ordered.
func (m *MenuItem) IsAvailable() bool {
	return m.available && !m.deleted
}

// IsDeleted reports whether the item has been soft-deleted.
func (m *MenuItem) IsDeleted() bool {
	return m.deleted
}

// UpdateDetails changes name, description, price, and image with the same
// validation as construction.
func (m *MenuItem) UpdateDetails(name, description string, price kernel.Money, imageURL string) error {
	if err := errors.Join(
		m.setName(name),
		m.setPrice(price),
	); err != nil {
		return err
	}
	m.description = description
	m.imageURL = imageURL
	return nil
}

// MoveToCategory relabels the item; empty falls back to DefaultCategory.
func (m *MenuItem) MoveToCategory(category string) {
	m.setCategory(category)
}

// SetAvailability toggles whether the item can be ordered.
func (m *MenuItem) SetAvailability(available bool) {
	m.available = available
}

// MarkDeleted soft-deletes the item. Deleted items stay in storage for
// historical order lines but never appear in listings.
func (m *MenuItem) MarkDeleted() {
	m.deleted = true
	m.available = false
}

func (m *MenuItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *MenuItem) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	m.name = name
	return nil
}

func (m *MenuItem) setPrice(price kernel.Money) error {
	// Money cannot be negative by construction; nothing further to check.
	m.price = price
	return nil
}

func (m *MenuItem) setCategory(category string) {
	if strings.TrimSpace(category) == "" {
		category = DefaultCategory
	}
	m.category = category
}
