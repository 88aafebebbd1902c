package queries

import (
	"context"
	"encoding/json"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMenuQueryHandler lists the menu, serving the public listing from cache
// when possible. Only the public (available-only) listing is cached; staff
// views always hit the database.
//
// Example:
//
//	handler := NewGetMenuQueryHandler(db, cache)
//	query, _ := NewGetMenuQuery(false, account.NewGuestActor())
//
//	items, err := handler.Handle(ctx, query)
type GetMenuQueryHandler struct {
	db    *gorm.DB
	cache ports.MenuCache
}

// NewGetMenuQueryHandler creates a handler for menu listings.
func NewGetMenuQueryHandler(db *gorm.DB, cache ports.MenuCache) GetMenuQueryHandler {
	return GetMenuQueryHandler{db: db, cache: cache}
}

// Handle executes the listing, ordered by category then name.
// A cache failure falls through to the database; the menu must stay
// readable when the cache is down.
func (h GetMenuQueryHandler) Handle(
	ctx context.Context,
	query GetMenuQuery,
) ([]MenuItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if query.IncludeUnavailable() {
		if err := services.Authorize(query.Actor(), services.ManageMenu, nil); err != nil {
			return nil, err
		}
		return h.loadItems(ctx, true)
	}

	if payload, ok, err := h.cache.Get(ctx); err == nil && ok {
		var items []MenuItemResponse
		if err = json.Unmarshal(payload, &items); err == nil {
			return items, nil
		}
	}

	items, err := h.loadItems(ctx, false)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(items); err == nil {
		_ = h.cache.Set(ctx, payload)
	}

	return items, nil
}

func (h GetMenuQueryHandler) loadItems(ctx context.Context, includeUnavailable bool) ([]MenuItemResponse, error) {
	sql := `
		SELECT id, name, description, price_cents, category, image_url, available
		FROM menu_items
		WHERE deleted = false
	`
	if !includeUnavailable {
		sql += " AND available = true"
	}
	sql += " ORDER BY category, name"

	rows, err := h.db.WithContext(ctx).Raw(sql).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]MenuItemResponse, 0)
	for rows.Next() {
		var (
			id          uuid.UUID
			name        string
			description string
			priceCents  int64
			category    string
			imageURL    string
			available   bool
		)
		if err = rows.Scan(&id, &name, &description, &priceCents, &category, &imageURL, &available); err != nil {
			return nil, err
		}

		price, priceErr := kernel.NewMoneyFromCents(priceCents)
		if priceErr != nil {
			return nil, priceErr
		}

		items = append(items, MenuItemResponse{
			ID:          id.String(),
			Name:        name,
			Description: description,
			Price:       price.String(),
			Category:    category,
			ImageURL:    imageURL,
			Available:   available,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
