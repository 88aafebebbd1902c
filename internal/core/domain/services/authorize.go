package services

import (
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// ErrForbidden indicates the actor's role lacks permission for the attempted
// action. Any role/action pair absent from the permission matrix is
// forbidden; nothing is implicitly allowed.
var ErrForbidden = errors.New("forbidden")

// Action enumerates the operations the permission matrix governs.
type Action int

const (
	// UnknownAction represents an invalid or undefined action.
	UnknownAction Action = iota

	// CreateOrder places a new order at checkout.
	CreateOrder

	// ReadOrder reads order data. Read scope is role-dependent: customers
	// see their own orders, drivers the orders assigned to them, guests a
	// single order they can name by id.
	ReadOrder

	// StartCooking is the pending -> cooking transition.
	StartCooking

	// FinishCooking is the cooking -> ready transition.
	FinishCooking

	// PickUpOrder is the ready -> picked_up transition.
	PickUpOrder

	// DeliverOrder is the picked_up -> delivered transition.
	DeliverOrder

	// AssignDriver attaches a driver to a ready order.
	AssignDriver

	// ManageMenu covers menu item create/update/delete.
	ManageMenu

	// ManageCategories covers category relabeling.
	ManageCategories

	// ManageUsers covers user account create/update.
	ManageUsers
)

func getActionStrings() map[Action]string {
	return map[Action]string{
		UnknownAction:    "unknown",
		CreateOrder:      "create_order",
		ReadOrder:        "read_order",
		StartCooking:     "start_cooking",
		FinishCooking:    "finish_cooking",
		PickUpOrder:      "pick_up_order",
		DeliverOrder:     "deliver_order",
		AssignDriver:     "assign_driver",
		ManageMenu:       "manage_menu",
		ManageCategories: "manage_categories",
		ManageUsers:      "manage_users",
	}
}

// String returns the wire name of the action.
func (a Action) String() string {
	if s, ok := getActionStrings()[a]; ok {
		return s
	}
	return "unknown"
}

// permissionMatrix is the single source of truth for who may do what.
// Every allowed pair is listed explicitly; lookups of absent pairs deny.
func permissionMatrix() map[account.Role]map[Action]bool {
	return map[account.Role]map[Action]bool{
		account.Admin: {
			CreateOrder:      true,
			ReadOrder:        true,
			StartCooking:     true,
			FinishCooking:    true,
			PickUpOrder:      true,
			DeliverOrder:     true,
			AssignDriver:     true,
			ManageMenu:       true,
			ManageCategories: true,
			ManageUsers:      true,
		},
		account.KitchenStaff: {
			ReadOrder:     true,
			StartCooking:  true,
			FinishCooking: true,
			AssignDriver:  true,
		},
		account.Driver: {
			ReadOrder:    true,
			PickUpOrder:  true,
			DeliverOrder: true,
		},
		account.Customer: {
			CreateOrder: true,
			ReadOrder:   true,
		},
		account.Guest: {
			CreateOrder: true,
			ReadOrder:   true,
		},
	}
}

// OrderOwnership describes who an order belongs to, for scoping read access.
// CustomerID is nil for guest orders; DriverID is nil before assignment.
type OrderOwnership struct {
	CustomerID *kernel.UUID
	DriverID   *kernel.UUID
}

// OwnershipOf extracts the ownership view of an order.
func OwnershipOf(o *order.Order) OrderOwnership {
	return OrderOwnership{
		CustomerID: o.CustomerID(),
		DriverID:   o.Driver(),
	}
}

// Authorize decides whether the actor may perform the action, failing closed.
//
// For ReadOrder on a specific resource, pass its ownership; read access is
// additionally scoped for customers (own orders), drivers (orders assigned to
// them), and guests (must name a specific order: a nil ownership means a
// listing, which guests may not request). Pass nil ownership for actions that
// do not target a single order, and for listing reads by roles whose queries
// are scoped server-side.
func Authorize(actor account.Actor, action Action, ownership *OrderOwnership) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	if !permissionMatrix()[actor.Role()][action] {
		return fmt.Errorf("%w: %s may not %s", ErrForbidden, actor.Role(), action)
	}

	if action == ReadOrder {
		return authorizeRead(actor, ownership)
	}

	return nil
}

func authorizeRead(actor account.Actor, ownership *OrderOwnership) error {
	switch actor.Role() {
	case account.Admin, account.KitchenStaff:
		return nil
	case account.Customer:
		if ownership == nil {
			// Listing: the query handler scopes by customer id server-side.
			return nil
		}
		if ownership.CustomerID == nil || !actor.IsSame(*ownership.CustomerID) {
			return fmt.Errorf("%w: customer may only read own orders", ErrForbidden)
		}
		return nil
	case account.Driver:
		if ownership == nil {
			// Listing: the query handler scopes by driver id server-side.
			return nil
		}
		if ownership.DriverID == nil || !actor.IsSame(*ownership.DriverID) {
			return fmt.Errorf("%w: driver may only read orders assigned to them", ErrForbidden)
		}
		return nil
	case account.Guest:
		if ownership == nil {
			return fmt.Errorf("%w: guests may only track a single order by id", ErrForbidden)
		}
		return nil
	default:
		return fmt.Errorf("%w: %s may not read orders", ErrForbidden, actor.Role())
	}
}

// TransitionAction maps a status edge to the permission matrix action
// governing it. Only the four canonical edges have actions; anything else is
// an invalid transition, reported before any permission check.
func TransitionAction(from, to order.Status) (Action, error) {
	if err := from.CanTransitionTo(to); err != nil {
		return UnknownAction, err
	}

	switch to {
	case order.Cooking:
		return StartCooking, nil
	case order.Ready:
		return FinishCooking, nil
	case order.PickedUp:
		return PickUpOrder, nil
	case order.Delivered:
		return DeliverOrder, nil
	default:
		return UnknownAction, fmt.Errorf("%w: %s -> %s", order.ErrInvalidTransition, from, to)
	}
}
