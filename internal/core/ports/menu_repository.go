package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/menu"
)

// MenuItemRepository defines the persistence contract for menu items.
// Deletion is soft: removed items stay stored for historical order lines but
// are excluded from listings.
type MenuItemRepository interface {
	// Add persists a new menu item.
	Add(ctx context.Context, item *menu.MenuItem) error

	// Update persists changes to an existing menu item.
	Update(ctx context.Context, item *menu.MenuItem) error

	// Get retrieves a menu item by id, including soft-deleted ones so order
	// lines can always resolve their snapshot source.
	Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error)

	// GetAll retrieves all non-deleted menu items, grouped-friendly:
	// ordered by category, then name.
	GetAll(ctx context.Context) ([]*menu.MenuItem, error)

	// GetAllAvailable retrieves the orderable subset of GetAll.
	GetAllAvailable(ctx context.Context) ([]*menu.MenuItem, error)

	// RenameCategory relabels every non-deleted item in one category.
	// Returns how many items moved.
	RenameCategory(ctx context.Context, from, to string) (int64, error)
}
