package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
)

// RestoreResourceCommandHandler returns archived resources to the active
// pool. Restoring is always permitted; the resource comes back with
// whatever availability it had when archived.
type RestoreResourceCommandHandler struct {
	uowFactory ResourceUoWFactory
}

// NewRestoreResourceCommandHandler creates a handler for resource restoration.
func NewRestoreResourceCommandHandler(uowFactory ResourceUoWFactory) RestoreResourceCommandHandler {
	return RestoreResourceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the restore command.
func (h *RestoreResourceCommandHandler) Handle(ctx context.Context, cmd RestoreResourceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	switch cmd.Kind() {
	case kernel.KindDriver:
		aggregate, err := uow.DriverRepository().Get(ctx, cmd.ResourceID())
		if err != nil {
			return err
		}
		aggregate.Restore()
		if err = uow.DriverRepository().Update(ctx, aggregate); err != nil {
			return err
		}
	case kernel.KindTruck:
		aggregate, err := uow.TruckRepository().Get(ctx, cmd.ResourceID())
		if err != nil {
			return err
		}
		aggregate.Restore()
		if err = uow.TruckRepository().Update(ctx, aggregate); err != nil {
			return err
		}
	default:
		aggregate, err := uow.TrailerRepository().Get(ctx, cmd.ResourceID())
		if err != nil {
			return err
		}
		aggregate.Restore()
		if err = uow.TrailerRepository().Update(ctx, aggregate); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
