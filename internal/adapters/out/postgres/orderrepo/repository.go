package orderrepo

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its lines to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID with its lines.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every order, newest first.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	return r.find(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at DESC")
	})
}

// GetAllForCustomer retrieves the orders placed by one customer, newest first.
func (r *GormOrderRepository) GetAllForCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	return r.find(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("customer_id = ?", customerID.Bytes()).Order("created_at DESC")
	})
}

// GetAllForDriver retrieves the orders assigned to one driver, newest first.
func (r *GormOrderRepository) GetAllForDriver(ctx context.Context, driverID kernel.UUID) ([]*order.Order, error) {
	if err := driverID.Validate(); err != nil {
		return nil, err
	}

	return r.find(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("driver_id = ?", driverID.Bytes()).Order("created_at DESC")
	})
}

// GetAllReadyUnassigned retrieves ready orders with no driver, oldest first,
// so dispatch serves the longest-waiting order.
func (r *GormOrderRepository) GetAllReadyUnassigned(ctx context.Context) ([]*order.Order, error) {
	return r.find(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("status = ? AND driver_id IS NULL", order.Ready.String()).Order("created_at ASC")
	})
}

// UpdateStatus writes the aggregate's status, guarded by the status the
// caller read. Zero rows affected means another writer moved the order
// first; the caller gets ports.ErrConcurrentModification and nothing is
// overwritten.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, aggregate *order.Order, previous order.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ?", aggregate.ID().Bytes(), previous.String()).
		Update("status", aggregate.Status().String())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrConcurrentModification
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// AttachDriver writes the aggregate's driver attachment, guarded by the
// order still being ready with no driver. A racing assignment leaves the
// first driver in place and surfaces ports.ErrConcurrentModification here.
func (r *GormOrderRepository) AttachDriver(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if aggregate.Driver() == nil {
		return order.ErrDriverRequired
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ? AND driver_id IS NULL", aggregate.ID().Bytes(), order.Ready.String()).
		Update("driver_id", aggregate.Driver().Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrConcurrentModification
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOrderRepository) find(ctx context.Context, scope func(*gorm.DB) *gorm.DB) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := scope(r.db.WithContext(ctx).Preload("Items")).Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
