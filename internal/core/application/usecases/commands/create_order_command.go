package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrDeliveryAddressIsRequired = errors.New("delivery address is required")
	ErrOrderLinesAreRequired     = errors.New("order must contain at least one line")
	ErrLineQuantityIsInvalid     = errors.New("line quantity must be greater than 0")
)

// OrderLine is one requested menu item with a quantity. Name and price are
// resolved from the menu at handling time, not supplied by the caller.
type OrderLine struct {
	MenuItemID kernel.UUID
	Quantity   int
}

// CreateOrderCommand represents a request to place a new food order.
// The customer is either an authenticated account reference or guest contact
// details; the acting party decides which one is legal.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	customer, _ := order.NewGuestContact("Dana", "+15550100", "")
//	cmd, err := NewCreateOrderCommand(orderID, customer, "12 Oak Ave", "",
//	    []OrderLine{{MenuItemID: margheritaID, Quantity: 2}}, account.NewGuestActor())
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customer        order.Customer
	deliveryAddress string
	notes           string
	lines           []OrderLine
	actor           account.Actor

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates the order ID, the customer union, the delivery address and that
// every line has a valid menu item ID and a positive quantity.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customer order.Customer,
	deliveryAddress string,
	notes string,
	lines []OrderLine,
	actor account.Actor,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomer(customer),
		orderCommand.setDeliveryAddress(deliveryAddress),
		orderCommand.setLines(lines),
		orderCommand.setActor(actor),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Customer returns the ordering customer (account reference or guest contact).
func (c CreateOrderCommand) Customer() order.Customer {
	return c.customer
}

// DeliveryAddress returns where the order should be delivered.
func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// Notes returns free-form preparation or delivery notes. May be empty.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

// Lines returns the requested menu items with quantities.
func (c CreateOrderCommand) Lines() []OrderLine {
	return c.lines
}

// Actor returns the party placing the order.
func (c CreateOrderCommand) Actor() account.Actor {
	return c.actor
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomer(customer order.Customer) error {
	if customer == nil {
		return errs.NewValueIsRequiredError("customer")
	}
	if err := customer.Validate(); err != nil {
		return err
	}

	c.customer = customer
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(address string) error {
	if address == "" {
		return ErrDeliveryAddressIsRequired
	}

	c.deliveryAddress = address
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return ErrOrderLinesAreRequired
	}

	for _, line := range lines {
		if err := line.MenuItemID.Validate(); err != nil {
			return err
		}
		if line.Quantity <= 0 {
			return ErrLineQuantityIsInvalid
		}
	}

	c.lines = lines
	return nil
}

func (c *CreateOrderCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
