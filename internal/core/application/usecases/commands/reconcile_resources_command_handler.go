package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
)

// ReconcileResourcesCommandHandler corrects drifted availability rows.
//
// Availability is derived state: a resource should be busy exactly when
// some non-terminal order references it. Normal operation keeps the two in
// step inside one transaction, but manual data fixes or partial imports can
// leave a resource stranded busy or wrongly available. The sweep recomputes
// the expected availability for every active resource and rewrites the rows
// that disagree.
type ReconcileResourcesCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewReconcileResourcesCommandHandler creates a handler for the sweep.
func NewReconcileResourcesCommandHandler(uowFactory OrderUoWFactory) ReconcileResourcesCommandHandler {
	return ReconcileResourcesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reconciliation command.
// Reads all non-terminal orders and all active resources in one transaction
// and updates only the resources whose availability is wrong.
func (h *ReconcileResourcesCommandHandler) Handle(ctx context.Context, cmd ReconcileResourcesCommand) error {
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

	orders, err := uow.OrderRepository().GetAllNonTerminal(ctx)
	if err != nil {
		return err
	}

	claimed := make(map[kernel.UUID]bool, len(orders)*3)
	for _, activeOrder := range orders {
		claimed[activeOrder.DriverID()] = true
		claimed[activeOrder.TruckID()] = true
		claimed[activeOrder.TrailerID()] = true
	}

	if err = h.reconcileDrivers(ctx, uow, claimed); err != nil {
		return err
	}
	if err = h.reconcileTrucks(ctx, uow, claimed); err != nil {
		return err
	}
	if err = h.reconcileTrailers(ctx, uow, claimed); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *ReconcileResourcesCommandHandler) reconcileDrivers(
	ctx context.Context,
	uow OrderUoW,
	claimed map[kernel.UUID]bool,
) error {
	drivers, err := uow.DriverRepository().GetAllActive(ctx)
	if err != nil {
		return err
	}

	for _, aggregate := range drivers {
		if claimed[aggregate.ID()] == aggregate.Availability().IsBusy() {
			continue
		}
		if claimed[aggregate.ID()] {
			aggregate.Claim()
		} else {
			aggregate.Release()
		}
		if err = uow.DriverRepository().Update(ctx, aggregate); err != nil {
			return err
		}
	}

	return nil
}

func (h *ReconcileResourcesCommandHandler) reconcileTrucks(
	ctx context.Context,
	uow OrderUoW,
	claimed map[kernel.UUID]bool,
) error {
	trucks, err := uow.TruckRepository().GetAllActive(ctx)
	if err != nil {
		return err
	}

	for _, aggregate := range trucks {
		if claimed[aggregate.ID()] == aggregate.Availability().IsBusy() {
			continue
		}
		if claimed[aggregate.ID()] {
			aggregate.Claim()
		} else {
			aggregate.Release()
		}
		if err = uow.TruckRepository().Update(ctx, aggregate); err != nil {
			return err
		}
	}

	return nil
}

func (h *ReconcileResourcesCommandHandler) reconcileTrailers(
	ctx context.Context,
	uow OrderUoW,
	claimed map[kernel.UUID]bool,
) error {
	trailers, err := uow.TrailerRepository().GetAllActive(ctx)
	if err != nil {
		return err
	}

	for _, aggregate := range trailers {
		if claimed[aggregate.ID()] == aggregate.Availability().IsBusy() {
			continue
		}
		if claimed[aggregate.ID()] {
			aggregate.Claim()
		} else {
			aggregate.Release()
		}
		if err = uow.TrailerRepository().Update(ctx, aggregate); err != nil {
			return err
		}
	}

	return nil
}
