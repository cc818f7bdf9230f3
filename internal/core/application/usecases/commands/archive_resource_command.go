package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrArchiveResourceCommandIsNotConstructed = errors.New(
	"ArchiveResourceCommand must be created via NewArchiveResourceCommand constructor",
)

// ArchiveResourceCommand soft-deletes a driver, truck, or trailer.
// Archived resources keep their history but stop appearing in the pool
// offered to new orders. Resources claimed by an active order cannot be
// archived.
type ArchiveResourceCommand struct { //nolint:recvcheck //using for validation
	kind       kernel.ResourceKind
	resourceID kernel.UUID

	guard guard.ConstructorGuard
}

// NewArchiveResourceCommand creates a command to archive the given resource.
func NewArchiveResourceCommand(kind kernel.ResourceKind, resourceID kernel.UUID) (ArchiveResourceCommand, error) {
	archiveCommand := ArchiveResourceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		archiveCommand.setKind(kind),
		archiveCommand.setResourceID(resourceID),
	); err != nil {
		return ArchiveResourceCommand{}, err
	}

	return archiveCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ArchiveResourceCommand) Validate() error {
	return c.guard.Validate(ErrArchiveResourceCommandIsNotConstructed)
}

// Kind returns which resource type the command addresses.
func (c ArchiveResourceCommand) Kind() kernel.ResourceKind {
	return c.kind
}

// ResourceID returns the identifier of the resource to archive.
func (c ArchiveResourceCommand) ResourceID() kernel.UUID {
	return c.resourceID
}

func (c *ArchiveResourceCommand) setKind(kind kernel.ResourceKind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}

func (c *ArchiveResourceCommand) setResourceID(resourceID kernel.UUID) error {
	if err := resourceID.Validate(); err != nil {
		return err
	}

	c.resourceID = resourceID
	return nil
}
