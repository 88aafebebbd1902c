package commands

import (
	"errors"

	"foodorder/internal/pkg/guard"
)

var ErrAssignDriversCommandIsNotConstructed = errors.New(
	"AssignDriversCommand must be created via NewAssignDriversCommand constructor",
)

// AssignDriversCommand triggers automatic driver dispatch. It takes the
// oldest ready order without a driver and attaches the least loaded driver.
// Run periodically by the dispatch job; one order is handled per run.
//
// Example:
//
//	cmd := NewAssignDriversCommand()
//	handler := NewAssignDriversCommandHandler(uowFactory, publisher)
//	err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("nothing to dispatch or no drivers available: %v", err)
//	}
type AssignDriversCommand struct {
	guard guard.ConstructorGuard
}

// NewAssignDriversCommand creates a new command to trigger driver dispatch.
// This is a parameterless command that initiates the driver-order matching process.
func NewAssignDriversCommand() AssignDriversCommand {
	return AssignDriversCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignDriversCommandIsNotConstructed if validation fails.
func (c *AssignDriversCommand) Validate() error {
	return c.guard.Validate(
		ErrAssignDriversCommandIsNotConstructed,
	)
}
