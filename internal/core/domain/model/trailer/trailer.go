package trailer

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// Domain errors for trailer operations.
var (
	// ErrPlateIsRequired is returned when attempting to create a trailer without a plate.
	ErrPlateIsRequired = errs.NewValueIsRequiredError("plate")
	// ErrTrailerIsNotConstructed is returned when using an improperly initialized Trailer.
	ErrTrailerIsNotConstructed = errors.New("Trailer must be created via NewTrailer or RestoreTrailer constructor")
	// ErrTrailerIsBusy is returned when archiving a trailer claimed by an active order.
	ErrTrailerIsBusy = errors.New("trailer is claimed by an active order and cannot be archived")
)

// Trailer represents a trailer that transport orders claim exclusively.
// It follows the shared resource behavior: Available ⇄ Busy driven by the
// order lifecycle, archived rather than deleted, and only while not claimed.
type Trailer struct {
	id           kernel.UUID
	plate        string
	model        string
	trailerType  string
	availability kernel.Availability
	isActive     bool
	guard        guard.ConstructorGuard
}

// NewTrailer creates a new Trailer, initially Available and active.
func NewTrailer(id kernel.UUID, plate, model, trailerType string) (*Trailer, error) {
	trailer := &Trailer{
		availability: kernel.Available,
		isActive:     true,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		trailer.setID(id),
		trailer.setPlate(plate),
	); err != nil {
		return nil, err
	}

	trailer.model = model
	trailer.trailerType = trailerType
	return trailer, nil
}

// RestoreTrailer reconstructs a Trailer aggregate from persistent storage.
func RestoreTrailer(
	id kernel.UUID,
	plate, model, trailerType string,
	availability kernel.Availability,
	isActive bool,
) (*Trailer, error) {
	trailer, err := NewTrailer(id, plate, model, trailerType)
	if err != nil {
		return nil, err
	}

	if err = availability.Validate(); err != nil {
		return nil, err
	}

	trailer.availability = availability
	trailer.isActive = isActive
	return trailer, nil
}

// Validate ensures the Trailer instance was properly constructed.
func (t *Trailer) Validate() error {
	if t == nil {
		return ErrTrailerIsNotConstructed
	}
	return t.guard.Validate(ErrTrailerIsNotConstructed)
}

// ID returns the trailer's unique identifier.
func (t *Trailer) ID() kernel.UUID {
	return t.id
}

// Plate returns the trailer's registration plate.
func (t *Trailer) Plate() string {
	return t.plate
}

// Model returns the trailer's model.
func (t *Trailer) Model() string {
	return t.model
}

// TrailerType returns the trailer's body type (tarpaulin, refrigerated, ...).
func (t *Trailer) TrailerType() string {
	return t.trailerType
}

// Availability returns whether the trailer is free or claimed.
func (t *Trailer) Availability() kernel.Availability {
	return t.availability
}

// IsActive reports whether the trailer has not been archived.
func (t *Trailer) IsActive() bool {
	return t.isActive
}

// Claim marks the trailer as claimed by an order. Idempotent.
func (t *Trailer) Claim() {
	t.availability = t.availability.Claim()
}

// Release marks the trailer as free again. Idempotent.
func (t *Trailer) Release() {
	t.availability = t.availability.Release()
}

// Archive soft-deletes the trailer. A claimed trailer cannot be archived.
func (t *Trailer) Archive() error {
	if t.availability.IsBusy() {
		return ErrTrailerIsBusy
	}
	t.isActive = false
	return nil
}

// Restore reverses archiving, making the trailer selectable again.
func (t *Trailer) Restore() {
	t.isActive = true
}

func (t *Trailer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Trailer) setPlate(plate string) error {
	if plate == "" {
		return ErrPlateIsRequired
	}
	t.plate = plate
	return nil
}
