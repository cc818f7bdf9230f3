package order

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// TransportType distinguishes full-load transports, where one order occupies
// the whole truck, from partial-load transports sharing the cargo space.
type TransportType int

const (
	// TransportTypeUnknown represents an invalid or undefined transport type.
	TransportTypeUnknown TransportType = iota

	// FullLoad is a transport dedicated to a single order.
	FullLoad

	// PartialLoad is a transport carrying goods of several orders.
	PartialLoad
)

func getTransportTypeStrings() map[TransportType]string {
	return map[TransportType]string{
		TransportTypeUnknown: "Unknown",
		FullLoad:             "FullLoad",
		PartialLoad:          "PartialLoad",
	}
}

func getValidTransportTypeStrings() map[TransportType]string {
	//nolint:exhaustive // TransportTypeUnknown is intentionally excluded as it's invalid
	return map[TransportType]string{
		FullLoad:    "FullLoad",
		PartialLoad: "PartialLoad",
	}
}

// TransportTypeFromString parses a transport type from its string representation.
func TransportTypeFromString(s string) (TransportType, error) {
	for transportType, str := range getValidTransportTypeStrings() {
		if str == s {
			return transportType, nil
		}
	}
	return TransportTypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"transport type is invalid",
		fmt.Errorf("%q is not a valid transport type", s),
	)
}

// Validate checks if the TransportType value is valid.
func (t TransportType) Validate() error {
	if _, ok := getValidTransportTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"transport type is invalid",
			fmt.Errorf("%d is not a valid transport type", t),
		)
	}
	return nil
}

// String returns the human-readable name of the transport type.
func (t TransportType) String() string {
	if str, ok := getTransportTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}
