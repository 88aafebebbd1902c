package queries

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUsersQueryHandler lists user accounts from the database.
type GetUsersQueryHandler struct {
	db *gorm.DB
}

// NewGetUsersQueryHandler creates a handler for account listings.
func NewGetUsersQueryHandler(db *gorm.DB) GetUsersQueryHandler {
	return GetUsersQueryHandler{db: db}
}

// Handle executes the listing, newest accounts first.
func (h GetUsersQueryHandler) Handle(
	ctx context.Context,
	query GetUsersQuery,
) ([]UserResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := services.Authorize(query.Actor(), services.ManageUsers, nil); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, email, role, created_at
		FROM users
		ORDER BY created_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]UserResponse, 0)
	for rows.Next() {
		var (
			id        uuid.UUID
			name      string
			email     string
			role      string
			createdAt time.Time
		)
		if err = rows.Scan(&id, &name, &email, &role, &createdAt); err != nil {
			return nil, err
		}

		userID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		users = append(users, UserResponse{
			ID:        userID,
			Name:      name,
			Email:     email,
			Role:      role,
			CreatedAt: createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}
