package userrepo

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserRepository implements ports.UserRepository using GORM.
type GormUserRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB, tracker aggregateTracker) *GormUserRepository {
	return &GormUserRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new user account. The unique index on email rejects duplicates.
func (r *GormUserRepository) Add(ctx context.Context, user *account.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	dto := fromDomain(user)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(user.ID(), user)
	return nil
}

// Update saves all fields of an existing user account.
func (r *GormUserRepository) Update(ctx context.Context, user *account.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	dto := fromDomain(user)
	if err := r.db.WithContext(ctx).Save(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(user.ID(), user)
	return nil
}

// Get retrieves a user account by ID.
func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (*account.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByEmail retrieves a user account by its unique email.
func (r *GormUserRepository) GetByEmail(ctx context.Context, email string) (*account.User, error) {
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", email)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every user account.
func (r *GormUserRepository) GetAll(ctx context.Context) ([]*account.User, error) {
	var dtos []UserDTO
	if err := r.db.WithContext(ctx).Order("created_at").Find(&dtos).Error; err != nil {
		return nil, err
	}

	users := make([]*account.User, 0, len(dtos))
	for _, dto := range dtos {
		user, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, nil
}

// GetDriverWorkloads retrieves every driver account with its count of
// deliveries in flight: orders attached to the driver and not yet delivered.
func (r *GormUserRepository) GetDriverWorkloads(ctx context.Context) ([]services.DriverWorkload, error) {
	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT
			u.id,
			u.name,
			u.email,
			u.password_hash,
			u.role,
			u.created_at,
			COUNT(o.id) AS active_deliveries
		FROM users u
		LEFT JOIN orders o ON o.driver_id = u.id AND o.status <> ?
		WHERE u.role = ?
		GROUP BY u.id, u.name, u.email, u.password_hash, u.role, u.created_at
		ORDER BY u.created_at
	`, order.Delivered.String(), account.Driver.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workloads := make([]services.DriverWorkload, 0)
	for rows.Next() {
		var dto UserDTO
		var active int
		if err = rows.Scan(
			&dto.ID, &dto.Name, &dto.Email, &dto.PasswordHash, &dto.Role, &dto.CreatedAt, &active,
		); err != nil {
			return nil, err
		}

		driver, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		workloads = append(workloads, services.DriverWorkload{
			Driver:           driver,
			ActiveDeliveries: active,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return workloads, nil
}
