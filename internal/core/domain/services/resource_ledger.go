package services

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
)

// ResourceLedger is a domain service that applies availability changes to the
// driver/truck/trailer triplet a transport order claims.
//
// The ledger is deliberately a dumb setter: it loads each resource, applies
// the requested availability, and persists it, without judging whether the
// change is right. All invariant responsibility lives in the order lifecycle
// use cases, which keeps the lifecycle engine the single source of transition
// truth. This asymmetry is intentional.
//
// The ledger is constructed from repositories bound to the caller's unit of
// work, so the availability writes commit or roll back together with the
// order write that caused them.
//
// Example usage:
//
//	ledger := services.NewResourceLedger(
//	    uow.DriverRepository(),
//	    uow.TruckRepository(),
//	    uow.TrailerRepository(),
//	)
//	if err := ledger.SetStatuses(ctx,
//	    order.DriverID(), order.TruckID(), order.TrailerID(),
//	    kernel.Busy,
//	); err != nil {
//	    return err
//	}
type ResourceLedger struct {
	drivers  ports.DriverRepository
	trucks   ports.TruckRepository
	trailers ports.TrailerRepository
}

// NewResourceLedger creates a ledger over the given resource repositories.
// The repositories should be bound to the caller's active transaction.
func NewResourceLedger(
	drivers ports.DriverRepository,
	trucks ports.TruckRepository,
	trailers ports.TrailerRepository,
) ResourceLedger {
	return ResourceLedger{
		drivers:  drivers,
		trucks:   trucks,
		trailers: trailers,
	}
}

// SetStatus applies the requested availability to a single resource.
// Claiming an already busy resource or releasing an already available one
// is a no-op; orders that skip statuses re-apply claims harmlessly.
func (l ResourceLedger) SetStatus(
	ctx context.Context,
	kind kernel.ResourceKind,
	id kernel.UUID,
	availability kernel.Availability,
) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	if err := availability.Validate(); err != nil {
		return err
	}

	switch kind {
	case kernel.KindDriver:
		aggregate, err := l.drivers.Get(ctx, id)
		if err != nil {
			return err
		}
		applyAvailability(availability, aggregate.Claim, aggregate.Release)
		return l.drivers.Update(ctx, aggregate)
	case kernel.KindTruck:
		aggregate, err := l.trucks.Get(ctx, id)
		if err != nil {
			return err
		}
		applyAvailability(availability, aggregate.Claim, aggregate.Release)
		return l.trucks.Update(ctx, aggregate)
	default:
		aggregate, err := l.trailers.Get(ctx, id)
		if err != nil {
			return err
		}
		applyAvailability(availability, aggregate.Claim, aggregate.Release)
		return l.trailers.Update(ctx, aggregate)
	}
}

// SetStatuses applies the same availability to an order's driver, truck, and
// trailer. Every lifecycle transition that touches resources goes through
// this batch operation.
func (l ResourceLedger) SetStatuses(
	ctx context.Context,
	driverID kernel.UUID,
	truckID kernel.UUID,
	trailerID kernel.UUID,
	availability kernel.Availability,
) error {
	if err := l.SetStatus(ctx, kernel.KindDriver, driverID, availability); err != nil {
		return err
	}
	if err := l.SetStatus(ctx, kernel.KindTruck, truckID, availability); err != nil {
		return err
	}
	return l.SetStatus(ctx, kernel.KindTrailer, trailerID, availability)
}

func applyAvailability(availability kernel.Availability, claim, release func()) {
	if availability.IsBusy() {
		claim()
		return
	}
	release()
}
