package commands

import (
	"context"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/trailer"
	"logistics/internal/core/domain/model/truck"
)

// ArchiveResourceCommandHandler handles archiving of schedulable resources.
// The aggregate refuses to archive while claimed, and the handler also checks
// the order table for non-terminal references, so a resource whose
// availability flag drifted cannot leave the active pool while an order still
// holds it.
type ArchiveResourceCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewArchiveResourceCommandHandler creates a handler for resource archiving.
func NewArchiveResourceCommandHandler(uowFactory OrderUoWFactory) ArchiveResourceCommandHandler {
	return ArchiveResourceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the archive command.
func (h *ArchiveResourceCommandHandler) Handle(ctx context.Context, cmd ArchiveResourceCommand) error {
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

	claims, err := uow.OrderRepository().ActiveOrderCountFor(ctx, cmd.ResourceID())
	if err != nil {
		return err
	}

	switch cmd.Kind() {
	case kernel.KindDriver:
		if claims > 0 {
			return driver.ErrDriverIsBusy
		}
		aggregate, getErr := uow.DriverRepository().Get(ctx, cmd.ResourceID())
		if getErr != nil {
			return getErr
		}
		if err = aggregate.Archive(); err != nil {
			return err
		}
		if err = uow.DriverRepository().Update(ctx, aggregate); err != nil {
			return err
		}
	case kernel.KindTruck:
		if claims > 0 {
			return truck.ErrTruckIsBusy
		}
		aggregate, getErr := uow.TruckRepository().Get(ctx, cmd.ResourceID())
		if getErr != nil {
			return getErr
		}
		if err = aggregate.Archive(); err != nil {
			return err
		}
		if err = uow.TruckRepository().Update(ctx, aggregate); err != nil {
			return err
		}
	default:
		if claims > 0 {
			return trailer.ErrTrailerIsBusy
		}
		aggregate, getErr := uow.TrailerRepository().Get(ctx, cmd.ResourceID())
		if getErr != nil {
			return getErr
		}
		if err = aggregate.Archive(); err != nil {
			return err
		}
		if err = uow.TrailerRepository().Update(ctx, aggregate); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
