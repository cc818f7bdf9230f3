package commands

import (
	"context"
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/services"
)

var (
	ErrDriverIsNotAvailable  = errors.New("driver is archived or claimed by another order")
	ErrTruckIsNotAvailable   = errors.New("truck is archived or claimed by another order")
	ErrTrailerIsNotAvailable = errors.New("trailer is archived or claimed by another order")
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Allocates the next order number, registers the order in "pending" status,
// and claims the referenced driver, truck, and trailer.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(...)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Order is now pending and its resources are busy
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a UoWFactory because creation touches the order, the client
// reference, and all three resource aggregates.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
//
// The client must exist and the driver, truck, and trailer must all be
// active and available; otherwise the command is rejected and nothing is
// claimed. The order number is allocated inside the same transaction that
// inserts the order, so concurrent creations cannot commit the same number.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	if _, err := uow.ClientRepository().Get(ctx, cmd.ClientID()); err != nil {
		return err
	}

	if err := h.checkResourcesAvailable(ctx, uow, cmd); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	number, err := orderRepo.NextNumber(ctx, time.Now().Year())
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		number,
		cmd.ClientID(),
		cmd.DriverID(),
		cmd.TruckID(),
		cmd.TrailerID(),
		cmd.TransportType(),
		cmd.GoodsDescription(),
		cmd.LoadingAddress(),
		cmd.UnloadingAddress(),
		cmd.LoadingDate(),
		cmd.Price(),
	)
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return err
	}

	ledger := services.NewResourceLedger(
		uow.DriverRepository(), uow.TruckRepository(), uow.TrailerRepository(),
	)
	if err = ledger.SetStatuses(ctx,
		newOrder.DriverID(), newOrder.TruckID(), newOrder.TrailerID(),
		kernel.Busy,
	); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *CreateOrderCommandHandler) checkResourcesAvailable(
	ctx context.Context,
	uow UoW,
	cmd CreateOrderCommand,
) error {
	driver, err := uow.DriverRepository().Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}
	if !driver.IsActive() || !driver.Availability().IsAvailable() {
		return ErrDriverIsNotAvailable
	}

	truck, err := uow.TruckRepository().Get(ctx, cmd.TruckID())
	if err != nil {
		return err
	}
	if !truck.IsActive() || !truck.Availability().IsAvailable() {
		return ErrTruckIsNotAvailable
	}

	trailer, err := uow.TrailerRepository().Get(ctx, cmd.TrailerID())
	if err != nil {
		return err
	}
	if !trailer.IsActive() || !trailer.Availability().IsAvailable() {
		return ErrTrailerIsNotAvailable
	}

	return nil
}
