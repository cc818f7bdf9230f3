package order

import (
	"fmt"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// ErrCompletionIsNotConstructed is returned when a Completion was not created
// through the NewCompletion constructor.
var ErrCompletionIsNotConstructed = errs.NewValueIsRequiredError(
	"Completion must be created via NewCompletion constructor",
)

// Completion captures the distance and cost figures recorded when a transport
// order finishes. It is a value object owning two invariants:
//
//   - totalKm = kmDomestic + kmInternational
//   - fuelCost = totalKm × fuelRate, unless fuel costing is skipped
//
// When fuel costing is skipped the fuel cost carries no meaning and
// FuelCost reports ok=false.
type Completion struct { //nolint:recvcheck //using for validation
	kmDomestic      float64
	kmInternational float64
	totalKm         float64
	fuelCost        float64
	fuelSkipped     bool

	guard guard.ConstructorGuard
}

// NewCompletion creates completion figures from the driven distances.
//
// Parameters:
//   - kmDomestic: kilometers driven domestically (must be non-negative)
//   - kmInternational: kilometers driven internationally (must be non-negative)
//   - fuelRate: cost per kilometer used to derive the fuel cost (must be positive)
//   - skipFuel: when true, no fuel cost is computed for this order
//
// Returns the completion figures or a validation error.
func NewCompletion(kmDomestic, kmInternational, fuelRate float64, skipFuel bool) (Completion, error) {
	if kmDomestic < 0 {
		return Completion{}, errs.NewValueIsInvalidErrorWithCause(
			"domestic kilometers are invalid",
			fmt.Errorf("%v is negative", kmDomestic),
		)
	}
	if kmInternational < 0 {
		return Completion{}, errs.NewValueIsInvalidErrorWithCause(
			"international kilometers are invalid",
			fmt.Errorf("%v is negative", kmInternational),
		)
	}
	if fuelRate <= 0 {
		return Completion{}, errs.NewValueIsInvalidErrorWithCause(
			"fuel rate is invalid",
			fmt.Errorf("%v is not greater than 0", fuelRate),
		)
	}

	completion := Completion{
		kmDomestic:      kmDomestic,
		kmInternational: kmInternational,
		totalKm:         kmDomestic + kmInternational,
		fuelSkipped:     skipFuel,
		guard:           guard.NewConstructorGuard(),
	}
	if !skipFuel {
		completion.fuelCost = completion.totalKm * fuelRate
	}

	return completion, nil
}

// RestoreCompletion reconstructs completion figures from persistence.
// Unlike NewCompletion it trusts the stored total and fuel cost, so figures
// computed under an older fuel rate survive a rate change.
func RestoreCompletion(kmDomestic, kmInternational, totalKm, fuelCost float64, fuelSkipped bool) (Completion, error) {
	if kmDomestic < 0 || kmInternational < 0 {
		return Completion{}, errs.NewValueIsInvalidError("kilometers are invalid")
	}
	if totalKm != kmDomestic+kmInternational {
		return Completion{}, errs.NewValueIsInvalidErrorWithCause(
			"total kilometers are invalid",
			fmt.Errorf("%v is not the sum of %v and %v", totalKm, kmDomestic, kmInternational),
		)
	}

	return Completion{
		kmDomestic:      kmDomestic,
		kmInternational: kmInternational,
		totalKm:         totalKm,
		fuelCost:        fuelCost,
		fuelSkipped:     fuelSkipped,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// KmDomestic returns the kilometers driven domestically.
func (c Completion) KmDomestic() float64 {
	return c.kmDomestic
}

// KmInternational returns the kilometers driven internationally.
func (c Completion) KmInternational() float64 {
	return c.kmInternational
}

// TotalKm returns the total kilometers driven.
func (c Completion) TotalKm() float64 {
	return c.totalKm
}

// FuelCost returns the computed fuel cost.
// ok is false when fuel costing was skipped for this order, in which case
// the returned amount carries no meaning.
func (c Completion) FuelCost() (amount float64, ok bool) {
	if c.fuelSkipped {
		return 0, false
	}
	return c.fuelCost, true
}

// FuelSkipped reports whether fuel costing was intentionally not computed.
func (c Completion) FuelSkipped() bool {
	return c.fuelSkipped
}

// Validate ensures the Completion was created through a constructor.
func (c Completion) Validate() error {
	return c.guard.Validate(ErrCompletionIsNotConstructed)
}
