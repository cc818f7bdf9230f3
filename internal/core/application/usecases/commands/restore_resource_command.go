package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrRestoreResourceCommandIsNotConstructed = errors.New(
	"RestoreResourceCommand must be created via NewRestoreResourceCommand constructor",
)

// RestoreResourceCommand returns an archived driver, truck, or trailer to
// the active pool.
type RestoreResourceCommand struct { //nolint:recvcheck //using for validation
	kind       kernel.ResourceKind
	resourceID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRestoreResourceCommand creates a command to restore the given resource.
func NewRestoreResourceCommand(kind kernel.ResourceKind, resourceID kernel.UUID) (RestoreResourceCommand, error) {
	restoreCommand := RestoreResourceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		restoreCommand.setKind(kind),
		restoreCommand.setResourceID(resourceID),
	); err != nil {
		return RestoreResourceCommand{}, err
	}

	return restoreCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RestoreResourceCommand) Validate() error {
	return c.guard.Validate(ErrRestoreResourceCommandIsNotConstructed)
}

// Kind returns which resource type the command addresses.
func (c RestoreResourceCommand) Kind() kernel.ResourceKind {
	return c.kind
}

// ResourceID returns the identifier of the resource to restore.
func (c RestoreResourceCommand) ResourceID() kernel.UUID {
	return c.resourceID
}

func (c *RestoreResourceCommand) setKind(kind kernel.ResourceKind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}

func (c *RestoreResourceCommand) setResourceID(resourceID kernel.UUID) error {
	if err := resourceID.Validate(); err != nil {
		return err
	}

	c.resourceID = resourceID
	return nil
}
