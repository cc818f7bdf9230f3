package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/services"
)

// ChangeOrderStatusCommandHandler advances an order through its lifecycle.
//
// Every transition re-applies the matching resource state: any move into a
// non-terminal status forces the order's driver, truck, and trailer to busy,
// and a move into the failed status releases them. Re-applying a claim that
// is already in place is a no-op, so transitions that skip statuses stay
// safe.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler for status transitions.
// Requires an OrderUoWFactory so the order row and the three availability
// rows commit together.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
// The order aggregate decides whether the transition is legal; the handler
// only applies the resource side effect that the new status implies.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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

	availability := kernel.Busy
	if cmd.Next() == order.Failed {
		if err = aggregate.Fail(); err != nil {
			return err
		}
		availability = kernel.Available
	} else {
		if err = aggregate.Advance(cmd.Next(), time.Now()); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	ledger := services.NewResourceLedger(
		uow.DriverRepository(), uow.TruckRepository(), uow.TrailerRepository(),
	)
	if err = ledger.SetStatuses(ctx,
		aggregate.DriverID(), aggregate.TruckID(), aggregate.TrailerID(),
		availability,
	); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
