package order

import (
	"strings"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// maxQuantity bounds a single line's quantity; anything larger is a typo,
// not an order.
const maxQuantity = 1000

// Item is one line of an order: a snapshot of a menu item (name and unit
// price at checkout time) plus a quantity. The snapshot makes the line total
// stable even if the menu item is later repriced or removed.
type Item struct {
	menuItemID kernel.UUID
	name       string
	price      kernel.Money
	quantity   int
}

// NewItem creates an order line with validation.
func NewItem(menuItemID kernel.UUID, name string, price kernel.Money, quantity int) (Item, error) {
	if err := menuItemID.Validate(); err != nil {
		return Item{}, err
	}
	if strings.TrimSpace(name) == "" {
		return Item{}, errs.NewValueIsRequiredError("item name")
	}
	if quantity < 1 || quantity > maxQuantity {
		return Item{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxQuantity)
	}
	return Item{
		menuItemID: menuItemID,
		name:       name,
		price:      price,
		quantity:   quantity,
	}, nil
}

// MenuItemID returns the id of the menu item this line snapshots.
func (i Item) MenuItemID() kernel.UUID {
	return i.menuItemID
}

// Name returns the snapshotted menu item name.
func (i Item) Name() string {
	return i.name
}

// Price returns the snapshotted unit price.
func (i Item) Price() kernel.Money {
	return i.price
}

// Quantity returns how many units the line orders.
func (i Item) Quantity() int {
	return i.quantity
}

// LineTotal returns price times quantity. The multiplication is exact in
// cents; quantity is validated positive at construction.
func (i Item) LineTotal() kernel.Money {
	total, _ := i.price.MultiplyInt(i.quantity)
	return total
}
