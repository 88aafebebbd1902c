// Package menurepo persists menu item aggregates.
package menurepo

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/menu"

	"github.com/google/uuid"
)

// MenuItemDTO represents the database structure for menu items.
// Deleted rows stay in the table so historical order lines keep a valid
// reference; listings filter them out.
type MenuItemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string
	Description string
	PriceCents  int64
	Category    string `gorm:"index"`
	ImageURL    string
	Available   bool
	Deleted     bool `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the database table name for menu items.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func fromDomain(item *menu.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:          item.ID().Bytes(),
		Name:        item.Name(),
		Description: item.Description(),
		PriceCents:  item.Price().Cents(),
		Category:    item.Category(),
		ImageURL:    item.ImageURL(),
		Available:   item.IsAvailable(),
		Deleted:     item.IsDeleted(),
	}
}

func toDomain(dto MenuItemDTO) (*menu.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoneyFromCents(dto.PriceCents)
	if err != nil {
		return nil, err
	}

	return menu.RestoreMenuItem(
		id,
		dto.Name,
		dto.Description,
		price,
		dto.Category,
		dto.ImageURL,
		dto.Available,
		dto.Deleted,
	)
}
