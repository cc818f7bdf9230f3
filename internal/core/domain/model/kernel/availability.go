package kernel

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Availability represents whether a schedulable resource (driver, truck,
// trailer) is free to be claimed by a transport order or already claimed.
//
// Availability is a value object that transitions only between two states:
//
//	Available ⇄ Busy
//
// The transitions are driven exclusively by the order lifecycle: creating an
// order or advancing it into a non-terminal status claims its resources,
// completing, failing, or deleting it releases them. Claim and Release are
// idempotent so that repeated lifecycle side effects are harmless.
type Availability int

const (
	// AvailabilityUnknown represents an invalid or undefined availability.
	// This value (0) helps catch uninitialized Availability values.
	AvailabilityUnknown Availability = iota

	// Available means the resource is not claimed by any active order.
	Available

	// Busy means the resource is claimed by an active order.
	Busy
)

// getAvailabilityStrings returns a map of Availability values to their string representations.
func getAvailabilityStrings() map[Availability]string {
	return map[Availability]string{
		AvailabilityUnknown: "Unknown",
		Available:           "Available",
		Busy:                "Busy",
	}
}

// getValidAvailabilityStrings returns a map of only valid Availability values.
func getValidAvailabilityStrings() map[Availability]string {
	//nolint:exhaustive // AvailabilityUnknown is intentionally excluded as it's invalid
	return map[Availability]string{
		Available: "Available",
		Busy:      "Busy",
	}
}

// Validate checks if the Availability value is valid.
// Valid values are Available and Busy; AvailabilityUnknown (0) and any
// other values are invalid.
func (a Availability) Validate() error {
	if _, ok := getValidAvailabilityStrings()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"availability is invalid",
			fmt.Errorf("%d is not a valid availability", a),
		)
	}
	return nil
}

// String returns the human-readable name of the availability.
// Implements fmt.Stringer and is safe to call on any value.
func (a Availability) String() string {
	if str, ok := getAvailabilityStrings()[a]; ok {
		return str
	}
	return "Unknown"
}

// IsAvailable reports whether the resource is free to be claimed.
func (a Availability) IsAvailable() bool {
	return a == Available
}

// IsBusy reports whether the resource is currently claimed.
func (a Availability) IsBusy() bool {
	return a == Busy
}

// Claim transitions the availability to Busy.
// Claiming an already busy resource is a no-op; the order lifecycle may
// re-claim resources when statuses are skipped.
func (a Availability) Claim() Availability {
	return Busy
}

// Release transitions the availability to Available.
// Releasing an already available resource is a no-op.
func (a Availability) Release() Availability {
	return Available
}
