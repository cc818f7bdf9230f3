package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var (
	ErrCreateTrailerCommandIsNotConstructed = errors.New(
		"CreateTrailerCommand must be created via NewCreateTrailerCommand constructor",
	)
	ErrTrailerPlateIsRequired = errors.New("trailer plate is required")
)

// CreateTrailerCommand registers a new trailer, initially available.
type CreateTrailerCommand struct { //nolint:recvcheck //using for validation
	trailerID   kernel.UUID
	plate       string
	model       string
	trailerType string

	guard guard.ConstructorGuard
}

// NewCreateTrailerCommand creates a command to register a new trailer.
// Only the plate is mandatory.
func NewCreateTrailerCommand(
	trailerID kernel.UUID,
	plate, model, trailerType string,
) (CreateTrailerCommand, error) {
	trailerCommand := CreateTrailerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		trailerCommand.setTrailerID(trailerID),
		trailerCommand.setPlate(plate),
	); err != nil {
		return CreateTrailerCommand{}, err
	}

	trailerCommand.model = model
	trailerCommand.trailerType = trailerType
	return trailerCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateTrailerCommand) Validate() error {
	return c.guard.Validate(ErrCreateTrailerCommandIsNotConstructed)
}

// TrailerID returns the unique identifier for the trailer.
func (c CreateTrailerCommand) TrailerID() kernel.UUID {
	return c.trailerID
}

// Plate returns the trailer's registration plate.
func (c CreateTrailerCommand) Plate() string {
	return c.plate
}

// Model returns the trailer's model name.
func (c CreateTrailerCommand) Model() string {
	return c.model
}

// TrailerType returns the trailer's body type, such as tarpaulin or reefer.
func (c CreateTrailerCommand) TrailerType() string {
	return c.trailerType
}

func (c *CreateTrailerCommand) setTrailerID(trailerID kernel.UUID) error {
	if err := trailerID.Validate(); err != nil {
		return err
	}

	c.trailerID = trailerID
	return nil
}

func (c *CreateTrailerCommand) setPlate(plate string) error {
	if plate == "" {
		return ErrTrailerPlateIsRequired
	}

	c.plate = plate
	return nil
}
