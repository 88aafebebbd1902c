package menurepo

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMenuItemRepository implements ports.MenuItemRepository using GORM.
type GormMenuItemRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormMenuItemRepository creates a new GORM menu item repository.
func NewGormMenuItemRepository(db *gorm.DB, tracker aggregateTracker) *GormMenuItemRepository {
	return &GormMenuItemRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new menu item to the database.
func (r *GormMenuItemRepository) Add(ctx context.Context, item *menu.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

// Update saves all fields of an existing menu item, including flags that
// went back to their zero value.
func (r *GormMenuItemRepository) Update(ctx context.Context, item *menu.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

// Get retrieves a menu item by ID, soft-deleted ones included.
func (r *GormMenuItemRepository) Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MenuItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menu item", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves all non-deleted menu items ordered by category then name.
func (r *GormMenuItemRepository) GetAll(ctx context.Context) ([]*menu.MenuItem, error) {
	return r.find(ctx, "deleted = false")
}

// GetAllAvailable retrieves the orderable subset of GetAll.
func (r *GormMenuItemRepository) GetAllAvailable(ctx context.Context) ([]*menu.MenuItem, error) {
	return r.find(ctx, "deleted = false AND available = true")
}

// RenameCategory relabels every non-deleted item in one category and
// reports how many items moved.
func (r *GormMenuItemRepository) RenameCategory(ctx context.Context, from, to string) (int64, error) {
	result := r.db.WithContext(ctx).Model(&MenuItemDTO{}).
		Where("category = ? AND deleted = false", from).
		Update("category", to)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

func (r *GormMenuItemRepository) find(ctx context.Context, where string) ([]*menu.MenuItem, error) {
	var dtos []MenuItemDTO
	err := r.db.WithContext(ctx).Where(where).Order("category, name").Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	items := make([]*menu.MenuItem, 0, len(dtos))
	for _, dto := range dtos {
		item, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		items = append(items, item)
	}

	return items, nil
}
