package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/pkg/guard"
)

var ErrGetMenuQueryIsNotConstructed = errors.New(
	"GetMenuQuery must be created via NewGetMenuQuery constructor",
)

// GetMenuQuery lists menu items grouped by category.
// The public listing shows only available items; actors with menu
// management permission can also request the unavailable ones.
type GetMenuQuery struct { //nolint:recvcheck //using for validation
	includeUnavailable bool
	actor              account.Actor

	guard guard.ConstructorGuard
}

// NewGetMenuQuery creates a query to list the menu.
func NewGetMenuQuery(includeUnavailable bool, actor account.Actor) (GetMenuQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetMenuQuery{}, err
	}

	return GetMenuQuery{
		includeUnavailable: includeUnavailable,
		actor:              actor,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

// IncludeUnavailable reports whether unavailable items should be listed too.
func (q GetMenuQuery) IncludeUnavailable() bool {
	return q.includeUnavailable
}

// Actor returns the party requesting the menu.
func (q GetMenuQuery) Actor() account.Actor {
	return q.actor
}

// MenuItemResponse is one menu item in a listing. The id is serialized as a
// plain string so cached payloads can be returned to clients verbatim.
type MenuItemResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price"`
	Category    string `json:"category"`
	ImageURL    string `json:"image_url,omitempty"`
	Available   bool   `json:"available"`
}
