package driver

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// Domain errors for driver operations.
var (
	// ErrNameIsRequired is returned when attempting to create a driver without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrLicenseNumberIsRequired is returned when attempting to create a driver without a license number.
	ErrLicenseNumberIsRequired = errs.NewValueIsRequiredError("license number")
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver constructor")
	// ErrDriverIsBusy is returned when archiving a driver claimed by an active order.
	ErrDriverIsBusy = errors.New("driver is claimed by an active order and cannot be archived")
)

// Driver represents a driver that transport orders claim exclusively.
//
// A driver is a schedulable resource: it is Available until an order claims
// it and Busy until that order completes, fails, or is deleted. The claim
// transitions are driven by the order lifecycle through the resource ledger;
// the aggregate itself applies them without questioning, keeping the engine
// the single source of transition truth.
//
// Drivers are archived (soft-deleted) rather than removed, and only while
// not claimed.
type Driver struct {
	id            kernel.UUID
	name          string
	licenseNumber string
	phone         string
	availability  kernel.Availability
	isActive      bool
	guard         guard.ConstructorGuard
}

// NewDriver creates a new Driver, initially Available and active.
//
// Parameters:
//   - id: Unique identifier (must be valid UUID)
//   - name: Human-readable name (must be non-empty)
//   - licenseNumber: Driving license number (must be non-empty)
//   - phone: Contact phone (optional)
func NewDriver(id kernel.UUID, name, licenseNumber, phone string) (*Driver, error) {
	driver := &Driver{
		availability: kernel.Available,
		isActive:     true,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		driver.setID(id),
		driver.setName(name),
		driver.setLicenseNumber(licenseNumber),
	); err != nil {
		return nil, err
	}

	driver.phone = phone
	return driver, nil
}

// RestoreDriver reconstructs a Driver aggregate from persistent storage,
// including its availability and archive marker.
func RestoreDriver(
	id kernel.UUID,
	name, licenseNumber, phone string,
	availability kernel.Availability,
	isActive bool,
) (*Driver, error) {
	driver, err := NewDriver(id, name, licenseNumber, phone)
	if err != nil {
		return nil, err
	}

	if err = availability.Validate(); err != nil {
		return nil, err
	}

	driver.availability = availability
	driver.isActive = isActive
	return driver, nil
}

// Validate ensures the Driver instance was properly constructed.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Name returns the driver's name.
func (d *Driver) Name() string {
	return d.name
}

// LicenseNumber returns the driver's license number.
func (d *Driver) LicenseNumber() string {
	return d.licenseNumber
}

// Phone returns the driver's contact phone.
func (d *Driver) Phone() string {
	return d.phone
}

// Availability returns whether the driver is free or claimed.
func (d *Driver) Availability() kernel.Availability {
	return d.availability
}

// IsActive reports whether the driver has not been archived.
func (d *Driver) IsActive() bool {
	return d.isActive
}

// Claim marks the driver as claimed by an order. Idempotent.
func (d *Driver) Claim() {
	d.availability = d.availability.Claim()
}

// Release marks the driver as free again. Idempotent.
func (d *Driver) Release() {
	d.availability = d.availability.Release()
}

// Archive soft-deletes the driver. A claimed driver cannot be archived:
// an active order still references it.
func (d *Driver) Archive() error {
	if d.availability.IsBusy() {
		return ErrDriverIsBusy
	}
	d.isActive = false
	return nil
}

// Restore reverses archiving, making the driver selectable again.
func (d *Driver) Restore() {
	d.isActive = true
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	d.name = name
	return nil
}

func (d *Driver) setLicenseNumber(licenseNumber string) error {
	if licenseNumber == "" {
		return ErrLicenseNumberIsRequired
	}
	d.licenseNumber = licenseNumber
	return nil
}
