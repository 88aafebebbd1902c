// Package userrepo persists user account aggregates.
package userrepo

import (
	"time"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for user accounts.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	Role         string `gorm:"index"`
	CreatedAt    time.Time
}

// TableName specifies the database table name for user accounts.
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(user *account.User) UserDTO {
	return UserDTO{
		ID:           user.ID().Bytes(),
		Name:         user.Name(),
		Email:        user.Email(),
		PasswordHash: user.PasswordHash(),
		Role:         user.Role().String(),
		CreatedAt:    user.CreatedAt(),
	}
}

func toDomain(dto UserDTO) (*account.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := account.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return account.RestoreUser(id, dto.Name, dto.Email, dto.PasswordHash, role, dto.CreatedAt)
}
