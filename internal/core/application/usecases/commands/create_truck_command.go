package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrCreateTruckCommandIsNotConstructed = errors.New(
		"CreateTruckCommand must be created via NewCreateTruckCommand constructor",
	)
	ErrTruckPlateIsRequired = errors.New("truck plate is required")
)

// CreateTruckCommand registers a new truck, initially available.
// The odometer reading seeds the running total that completed orders add to.
type CreateTruckCommand struct { //nolint:recvcheck //using for validation
	truckID    kernel.UUID
	plate      string
	brand      string
	model      string
	odometerKm float64

	guard guard.ConstructorGuard
}

// NewCreateTruckCommand creates a command to register a new truck.
// The plate is mandatory and the odometer reading must not be negative.
func NewCreateTruckCommand(
	truckID kernel.UUID,
	plate, brand, model string,
	odometerKm float64,
) (CreateTruckCommand, error) {
	truckCommand := CreateTruckCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		truckCommand.setTruckID(truckID),
		truckCommand.setPlate(plate),
		truckCommand.setOdometerKm(odometerKm),
	); err != nil {
		return CreateTruckCommand{}, err
	}

	truckCommand.brand = brand
	truckCommand.model = model
	return truckCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateTruckCommand) Validate() error {
	return c.guard.Validate(ErrCreateTruckCommandIsNotConstructed)
}

// TruckID returns the unique identifier for the truck.
func (c CreateTruckCommand) TruckID() kernel.UUID {
	return c.truckID
}

// Plate returns the truck's registration plate.
func (c CreateTruckCommand) Plate() string {
	return c.plate
}

// Brand returns the truck's manufacturer.
func (c CreateTruckCommand) Brand() string {
	return c.brand
}

// Model returns the truck's model name.
func (c CreateTruckCommand) Model() string {
	return c.model
}

// OdometerKm returns the truck's odometer reading at registration.
func (c CreateTruckCommand) OdometerKm() float64 {
	return c.odometerKm
}

func (c *CreateTruckCommand) setTruckID(truckID kernel.UUID) error {
	if err := truckID.Validate(); err != nil {
		return err
	}

	c.truckID = truckID
	return nil
}

func (c *CreateTruckCommand) setPlate(plate string) error {
	if plate == "" {
		return ErrTruckPlateIsRequired
	}

	c.plate = plate
	return nil
}

func (c *CreateTruckCommand) setOdometerKm(odometerKm float64) error {
	if odometerKm < 0 {
		return errs.NewValueIsInvalidError("odometerKm")
	}

	c.odometerKm = odometerKm
	return nil
}
