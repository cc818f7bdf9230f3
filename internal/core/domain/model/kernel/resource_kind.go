package kernel

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// ResourceKind identifies which of the three schedulable resource types an
// operation targets. Used by the resource ledger and the archive/restore
// operations, which are kind-parameterized.
type ResourceKind int

const (
	// ResourceKindUnknown represents an invalid or undefined resource kind.
	ResourceKindUnknown ResourceKind = iota

	// KindDriver targets a driver.
	KindDriver

	// KindTruck targets a truck.
	KindTruck

	// KindTrailer targets a trailer.
	KindTrailer
)

func getResourceKindStrings() map[ResourceKind]string {
	return map[ResourceKind]string{
		ResourceKindUnknown: "Unknown",
		KindDriver:          "Driver",
		KindTruck:           "Truck",
		KindTrailer:         "Trailer",
	}
}

func getValidResourceKindStrings() map[ResourceKind]string {
	//nolint:exhaustive // ResourceKindUnknown is intentionally excluded as it's invalid
	return map[ResourceKind]string{
		KindDriver:  "Driver",
		KindTruck:   "Truck",
		KindTrailer: "Trailer",
	}
}

// ResourceKindFromString parses a resource kind from its string representation.
// Matching is exact; used at the HTTP boundary where kinds arrive as path segments.
func ResourceKindFromString(s string) (ResourceKind, error) {
	for kind, str := range getValidResourceKindStrings() {
		if str == s {
			return kind, nil
		}
	}
	return ResourceKindUnknown, errs.NewValueIsInvalidErrorWithCause(
		"resource kind is invalid",
		fmt.Errorf("%q is not a valid resource kind", s),
	)
}

// Validate checks if the ResourceKind value is valid.
func (k ResourceKind) Validate() error {
	if _, ok := getValidResourceKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"resource kind is invalid",
			fmt.Errorf("%d is not a valid resource kind", k),
		)
	}
	return nil
}

// String returns the human-readable name of the resource kind.
func (k ResourceKind) String() string {
	if str, ok := getResourceKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}
