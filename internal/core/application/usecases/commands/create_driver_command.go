package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var (
	ErrCreateDriverCommandIsNotConstructed = errors.New(
		"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
	)
	ErrDriverNameIsRequired    = errors.New("driver name is required")
	ErrLicenseNumberIsRequired = errors.New("license number is required")
)

// CreateDriverCommand registers a new driver, initially available.
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID      kernel.UUID
	name          string
	licenseNumber string
	phone         string

	guard guard.ConstructorGuard
}

// NewCreateDriverCommand creates a command to register a new driver.
// Name and license number are mandatory; the phone is optional.
func NewCreateDriverCommand(
	driverID kernel.UUID,
	name, licenseNumber, phone string,
) (CreateDriverCommand, error) {
	driverCommand := CreateDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		driverCommand.setDriverID(driverID),
		driverCommand.setName(name),
		driverCommand.setLicenseNumber(licenseNumber),
	); err != nil {
		return CreateDriverCommand{}, err
	}

	driverCommand.phone = phone
	return driverCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

// DriverID returns the unique identifier for the driver.
func (c CreateDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Name returns the driver's name.
func (c CreateDriverCommand) Name() string {
	return c.name
}

// LicenseNumber returns the driver's license number.
func (c CreateDriverCommand) LicenseNumber() string {
	return c.licenseNumber
}

// Phone returns the driver's contact phone.
func (c CreateDriverCommand) Phone() string {
	return c.phone
}

func (c *CreateDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *CreateDriverCommand) setName(name string) error {
	if name == "" {
		return ErrDriverNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateDriverCommand) setLicenseNumber(licenseNumber string) error {
	if licenseNumber == "" {
		return ErrLicenseNumberIsRequired
	}

	c.licenseNumber = licenseNumber
	return nil
}
