package commands

import (
	"errors"

	"delivery-tracking/internal/pkg/guard"
)

var ErrAssignDriverCommandIsNotConstructed = errors.New(
	"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
)

// AssignDriverCommand triggers the assignment of an available driver to a
// pending delivery. It drains the backlog left behind when deliveries were
// created while the driver pool was exhausted.
//
// Example:
//
//	cmd := NewAssignDriverCommand()
//	handler := NewAssignDriverCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("No pending deliveries or no available drivers: %v", err)
//	}
type AssignDriverCommand struct {
	guard guard.ConstructorGuard
}

// NewAssignDriverCommand creates a new command to trigger driver assignment.
// This is a parameterless command that initiates the backlog draining process.
func NewAssignDriverCommand() AssignDriverCommand {
	return AssignDriverCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignDriverCommandIsNotConstructed if validation fails.
func (c *AssignDriverCommand) Validate() error {
	return c.guard.Validate(
		ErrAssignDriverCommandIsNotConstructed,
	)
}
