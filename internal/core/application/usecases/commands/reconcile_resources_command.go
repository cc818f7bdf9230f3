package commands

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrReconcileResourcesCommandIsNotConstructed = errors.New(
	"ReconcileResourcesCommand must be created via NewReconcileResourcesCommand constructor",
)

// ReconcileResourcesCommand triggers the availability reconciliation sweep.
// The sweep recomputes which resources should be busy from the set of
// non-terminal orders and corrects any drifted availability rows.
//
// Example:
//
//	cmd := NewReconcileResourcesCommand()
//	handler := NewReconcileResourcesCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("reconciliation failed: %v", err)
//	}
type ReconcileResourcesCommand struct {
	guard guard.ConstructorGuard
}

// NewReconcileResourcesCommand creates a new command to trigger reconciliation.
// This is a parameterless command, typically issued by a scheduler.
func NewReconcileResourcesCommand() ReconcileResourcesCommand {
	return ReconcileResourcesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *ReconcileResourcesCommand) Validate() error {
	return c.guard.Validate(ErrReconcileResourcesCommandIsNotConstructed)
}
