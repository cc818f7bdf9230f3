package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/services"
)

// DeleteOrderCommandHandler removes order records.
//
// Deleting a pending, in-progress, or failed order releases its driver,
// truck, and trailer. Deleting a completed order does not touch them: that
// order released its resources at completion, and they may already be
// claimed by a newer order.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if aggregate.ReleasesResourcesOnDelete() {
		ledger := services.NewResourceLedger(
			uow.DriverRepository(), uow.TruckRepository(), uow.TrailerRepository(),
		)
		if err = ledger.SetStatuses(ctx,
			aggregate.DriverID(), aggregate.TruckID(), aggregate.TrailerID(),
			kernel.Available,
		); err != nil {
			return err
		}
	}

	if err = orderRepo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
