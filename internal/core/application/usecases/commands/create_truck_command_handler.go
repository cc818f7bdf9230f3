package commands

import (
	"context"

	"logistics/internal/core/domain/model/truck"
)

// CreateTruckCommandHandler handles registration of new trucks.
type CreateTruckCommandHandler struct {
	uowFactory TruckUoWFactory
}

// NewCreateTruckCommandHandler creates a handler for truck registration.
func NewCreateTruckCommandHandler(uowFactory TruckUoWFactory) CreateTruckCommandHandler {
	return CreateTruckCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the truck creation command.
func (h *CreateTruckCommandHandler) Handle(ctx context.Context, cmd CreateTruckCommand) error {
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

	newTruck, err := truck.NewTruck(
		cmd.TruckID(), cmd.Plate(), cmd.Brand(), cmd.Model(), cmd.OdometerKm(),
	)
	if err != nil {
		return err
	}

	if err = uow.TruckRepository().Add(ctx, newTruck); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
