// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Exactly one of CustomerID or the guest contact columns is populated,
// mirroring the customer union on the aggregate. Status is stored as its
// wire string so conditional updates read naturally in SQL.
type OrderDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID      *uuid.UUID `gorm:"type:uuid;index"`
	GuestName       string
	GuestPhone      string
	GuestEmail      string
	DeliveryAddress string
	Notes           string
	Status          string     `gorm:"index"`
	DriverID        *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt       time.Time
	Items           []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one order line. Name and price are the snapshot taken
// at checkout; they never change when the menu does.
type ItemDTO struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	MenuItemID uuid.UUID `gorm:"type:uuid"`
	Name       string
	PriceCents int64
	Quantity   int
}

// TableName specifies the database table name for order line entities.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:              aggregate.ID().Bytes(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		Notes:           aggregate.Notes(),
		Status:          aggregate.Status().String(),
		CreatedAt:       aggregate.CreatedAt(),
	}

	switch customer := aggregate.Customer().(type) {
	case order.AuthenticatedCustomer:
		raw := customer.ID().Bytes()
		dto.CustomerID = &raw
	case order.GuestContact:
		dto.GuestName = customer.Name()
		dto.GuestPhone = customer.Phone()
		dto.GuestEmail = customer.Email()
	}

	if id := aggregate.Driver(); id != nil {
		raw := id.Bytes()
		dto.DriverID = &raw
	}

	for _, item := range aggregate.Items() {
		dto.Items = append(dto.Items, ItemDTO{
			OrderID:    dto.ID,
			MenuItemID: item.MenuItemID().Bytes(),
			Name:       item.Name(),
			PriceCents: item.Price().Cents(),
			Quantity:   item.Quantity(),
		})
	}

	return dto
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the customer union, the lines and the driver attachment
// using RestoreOrder, so every stored invariant is re-checked on load.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customer, err := customerFromDTO(dto)
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		d, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &d
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		menuItemID, itemErr := kernel.UUIDFromBytes(itemDTO.MenuItemID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		price, priceErr := kernel.NewMoneyFromCents(itemDTO.PriceCents)
		if priceErr != nil {
			return nil, priceErr
		}
		item, lineErr := order.NewItem(menuItemID, itemDTO.Name, price, itemDTO.Quantity)
		if lineErr != nil {
			return nil, lineErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		customer,
		dto.DeliveryAddress,
		dto.Notes,
		items,
		status,
		driverID,
		dto.CreatedAt,
	)
}

func customerFromDTO(dto OrderDTO) (order.Customer, error) {
	if dto.CustomerID != nil {
		customerID, err := kernel.UUIDFromBytes((*dto.CustomerID)[:])
		if err != nil {
			return nil, err
		}
		return order.NewAuthenticatedCustomer(customerID)
	}

	return order.NewGuestContact(dto.GuestName, dto.GuestPhone, dto.GuestEmail)
}
