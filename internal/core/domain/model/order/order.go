package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrInvalidTransition indicates an illegal status move: backward, skipping a
	// state, or out of a terminal state.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrAlreadyAssigned indicates a driver is already attached to the order.
	// An order acquires at most one driver, set exactly once.
	ErrAlreadyAssigned = errors.New("order already has a driver assigned")

	// ErrInvalidState indicates an operation requires a status the order is not
	// in, e.g. assigning a driver to an order that is not Ready.
	ErrInvalidState = errors.New("order is not in a valid state for this operation")

	// ErrDriverRequired indicates a pickup was attempted before any driver was
	// attached to the order.
	ErrDriverRequired = errors.New("order has no driver assigned")
)

// Order is the aggregate root for a single checkout transaction. It manages
// the order lifecycle from creation through kitchen preparation, driver
// assignment, and delivery.
//
// Order maintains these invariants:
//   - Status moves only forward along the canonical chain, one step at a time
//   - At most one driver is ever attached, only while the order is Ready
//   - PickedUp requires an attached driver
//   - The order total always equals the sum of its line totals
//   - The customer is exactly one of: authenticated account, guest contact
//   - Orders are never deleted; Delivered orders are retained for reporting
type Order struct {
	id              kernel.UUID
	customer        Customer
	deliveryAddress string
	notes           string
	items           []Item
	status          Status
	driverID        *kernel.UUID
	createdAt       time.Time

	isConstructed bool
}

// NewOrder creates an Order in Pending status. This is the only way checkout
// produces an order; every invariant is checked here.
func NewOrder(id kernel.UUID, customer Customer, deliveryAddress, notes string, items []Item) (*Order, error) {
	order := &Order{
		status:        Pending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomer(customer),
		order.setDeliveryAddress(deliveryAddress),
		order.setItems(items),
	); err != nil {
		return nil, err
	}
	order.notes = notes

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence with its full state.
// The status must be valid and consistent with the driver attachment:
// a PickedUp or Delivered order must carry a driver.
func RestoreOrder(
	id kernel.UUID,
	customer Customer,
	deliveryAddress, notes string,
	items []Item,
	status Status,
	driverID *kernel.UUID,
	createdAt time.Time,
) (*Order, error) {
	order, err := NewOrder(id, customer, deliveryAddress, notes, items)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return nil, err
		}
	}
	if driverID == nil && (status == PickedUp || status == Delivered) {
		return nil, fmt.Errorf("%w: %s order without driver", ErrDriverRequired, status)
	}

	order.status = status
	order.driverID = driverID
	order.createdAt = createdAt
	return order, nil
}

// Validate ensures the Order instance was properly constructed.
// Called when reconstructing orders from persistence to ensure integrity.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier. For guests this doubles as the
// tracking reference.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Customer returns the ordering party: AuthenticatedCustomer or GuestContact.
func (o *Order) Customer() Customer {
	return o.customer
}

// DeliveryAddress returns the destination address.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// Notes returns free-form checkout notes, possibly empty.
func (o *Order) Notes() string {
	return o.notes
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Driver returns the assigned driver's id, or nil before assignment.
func (o *Order) Driver() *kernel.UUID {
	return o.driverID
}

// CreatedAt returns the immutable checkout time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// IsDelivered reports whether the order reached its terminal state.
func (o *Order) IsDelivered() bool {
	return o.status == Delivered
}

// CustomerID returns the ordering account's id for authenticated orders and
// nil for guest orders.
func (o *Order) CustomerID() *kernel.UUID {
	if authenticated, ok := o.customer.(AuthenticatedCustomer); ok {
		id := authenticated.ID()
		return &id
	}
	return nil
}

// Total returns the order total: the sum of line totals, computed in exact
// cents. Recomputation is idempotent; calling Total any number of times at
// any lifecycle stage yields the same value.
func (o *Order) Total() kernel.Money {
	var total kernel.Money
	for _, item := range o.items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// ProgressFraction returns the completion ratio in [0, 1] for tracking
// progress bars. It follows the fixed status breakpoints, with one
// refinement: a Ready order that already has a driver attached reports 0.60
// instead of 0.50. The fraction never decreases as the order moves forward.
func (o *Order) ProgressFraction() float64 {
	if o.status == Ready && o.driverID != nil {
		return 0.60
	}
	return o.status.Progress()
}

// ChangeStatus moves the order to the next lifecycle status.
//
// The move must be to the immediate successor of the current status
// (ErrInvalidTransition otherwise), and Ready -> PickedUp additionally
// requires an attached driver (ErrDriverRequired). Who may perform which
// transition is the permission matrix's concern, not the aggregate's; see
// services.TransitionOrder.
//
// A pure status transition changes no other order field.
func (o *Order) ChangeStatus(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}
	if err := o.status.CanTransitionTo(next); err != nil {
		return err
	}
	if next == PickedUp && o.driverID == nil {
		return ErrDriverRequired
	}

	o.status = next
	return nil
}

// AssignDriver attaches a driver to a Ready order.
//
// Assignment is a field mutation, not a status transition: the order stays
// Ready until an explicit ChangeStatus(PickedUp). An order acquires at most
// one driver (ErrAlreadyAssigned on a second attempt, regardless of actor),
// and only while Ready (ErrInvalidState otherwise).
func (o *Order) AssignDriver(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if o.driverID != nil {
		return ErrAlreadyAssigned
	}
	if o.status != Ready {
		return fmt.Errorf("%w: cannot assign driver while %s", ErrInvalidState, o.status)
	}

	o.driverID = &driverID
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if customer == nil {
		return errs.NewValueIsRequiredError("customer")
	}
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	o.deliveryAddress = address
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}
