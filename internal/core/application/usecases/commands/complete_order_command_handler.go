package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"
)

// CompleteOrderCommandHandler finishes orders with their driven distances.
//
// Completion is the second phase of the order lifecycle: the status machine
// refuses to enter the completed status without distance figures, and this
// handler is the only code path that supplies them. It also releases the
// order's resources and adds the total distance to the truck's odometer,
// which no other operation does.
type CompleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	fuelRate   float64
}

// NewCompleteOrderCommandHandler creates a handler for order completion.
// fuelRate is the configured cost per kilometre used for the fuel estimate;
// it must be positive.
func NewCompleteOrderCommandHandler(uowFactory OrderUoWFactory, fuelRate float64) (CompleteOrderCommandHandler, error) {
	if fuelRate <= 0 {
		return CompleteOrderCommandHandler{}, errs.NewValueIsInvalidError("fuelRate")
	}

	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
		fuelRate:   fuelRate,
	}, nil
}

// Handle processes the completion command.
// Records the distances and the fuel estimate on the order, stamps the end
// date, releases the driver, truck, and trailer, and increments the truck's
// odometer by the total distance. All writes share one transaction.
func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	completion, err := order.NewCompletion(
		cmd.KmDomestic(), cmd.KmInternational(), h.fuelRate, cmd.SkipFuel(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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

	if err = aggregate.Complete(completion, time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	ledger := services.NewResourceLedger(
		uow.DriverRepository(), uow.TruckRepository(), uow.TrailerRepository(),
	)
	if err = ledger.SetStatuses(ctx,
		aggregate.DriverID(), aggregate.TruckID(), aggregate.TrailerID(),
		kernel.Available,
	); err != nil {
		return err
	}

	truckRepo := uow.TruckRepository()
	claimedTruck, err := truckRepo.Get(ctx, aggregate.TruckID())
	if err != nil {
		return err
	}

	if err = claimedTruck.AddDistance(completion.TotalKm()); err != nil {
		return err
	}

	if err = truckRepo.Update(ctx, claimedTruck); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
