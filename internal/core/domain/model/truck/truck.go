package truck

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// Domain errors for truck operations.
var (
	// ErrPlateIsRequired is returned when attempting to create a truck without a plate.
	ErrPlateIsRequired = errs.NewValueIsRequiredError("plate")
	// ErrTruckIsNotConstructed is returned when using an improperly initialized Truck.
	ErrTruckIsNotConstructed = errors.New("Truck must be created via NewTruck or RestoreTruck constructor")
	// ErrTruckIsBusy is returned when archiving a truck claimed by an active order.
	ErrTruckIsBusy = errors.New("truck is claimed by an active order and cannot be archived")
)

// Truck represents a truck that transport orders claim exclusively.
//
// Beyond the shared resource behavior (Available ⇄ Busy, archive/restore)
// a truck carries a cumulative odometer. The odometer grows by an order's
// total kilometers exactly once, when that order completes; no other path
// touches it.
type Truck struct {
	id           kernel.UUID
	plate        string
	brand        string
	model        string
	odometerKm   float64
	availability kernel.Availability
	isActive     bool
	guard        guard.ConstructorGuard
}

// NewTruck creates a new Truck, initially Available and active.
// The odometer starts at the vehicle's current reading, which must be
// non-negative.
func NewTruck(id kernel.UUID, plate, brand, model string, odometerKm float64) (*Truck, error) {
	truck := &Truck{
		availability: kernel.Available,
		isActive:     true,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		truck.setID(id),
		truck.setPlate(plate),
		truck.setOdometerKm(odometerKm),
	); err != nil {
		return nil, err
	}

	truck.brand = brand
	truck.model = model
	return truck, nil
}

// RestoreTruck reconstructs a Truck aggregate from persistent storage.
func RestoreTruck(
	id kernel.UUID,
	plate, brand, model string,
	odometerKm float64,
	availability kernel.Availability,
	isActive bool,
) (*Truck, error) {
	truck, err := NewTruck(id, plate, brand, model, odometerKm)
	if err != nil {
		return nil, err
	}

	if err = availability.Validate(); err != nil {
		return nil, err
	}

	truck.availability = availability
	truck.isActive = isActive
	return truck, nil
}

// Validate ensures the Truck instance was properly constructed.
func (t *Truck) Validate() error {
	if t == nil {
		return ErrTruckIsNotConstructed
	}
	return t.guard.Validate(ErrTruckIsNotConstructed)
}

// ID returns the truck's unique identifier.
func (t *Truck) ID() kernel.UUID {
	return t.id
}

// Plate returns the truck's registration plate.
func (t *Truck) Plate() string {
	return t.plate
}

// Brand returns the truck's manufacturer brand.
func (t *Truck) Brand() string {
	return t.brand
}

// Model returns the truck's model.
func (t *Truck) Model() string {
	return t.model
}

// OdometerKm returns the cumulative kilometers driven.
func (t *Truck) OdometerKm() float64 {
	return t.odometerKm
}

// Availability returns whether the truck is free or claimed.
func (t *Truck) Availability() kernel.Availability {
	return t.availability
}

// IsActive reports whether the truck has not been archived.
func (t *Truck) IsActive() bool {
	return t.isActive
}

// Claim marks the truck as claimed by an order. Idempotent.
func (t *Truck) Claim() {
	t.availability = t.availability.Claim()
}

// Release marks the truck as free again. Idempotent.
func (t *Truck) Release() {
	t.availability = t.availability.Release()
}

// AddDistance adds a completed order's total kilometers to the odometer.
// The distance must be non-negative.
func (t *Truck) AddDistance(km float64) error {
	if km < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"distance is invalid",
			fmt.Errorf("%v is negative", km),
		)
	}
	t.odometerKm += km
	return nil
}

// Archive soft-deletes the truck. A claimed truck cannot be archived.
func (t *Truck) Archive() error {
	if t.availability.IsBusy() {
		return ErrTruckIsBusy
	}
	t.isActive = false
	return nil
}

// Restore reverses archiving, making the truck selectable again.
func (t *Truck) Restore() {
	t.isActive = true
}

func (t *Truck) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Truck) setPlate(plate string) error {
	if plate == "" {
		return ErrPlateIsRequired
	}
	t.plate = plate
	return nil
}

func (t *Truck) setOdometerKm(odometerKm float64) error {
	if odometerKm < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"odometer is invalid",
			fmt.Errorf("%v is negative", odometerKm),
		)
	}
	t.odometerKm = odometerKm
	return nil
}
