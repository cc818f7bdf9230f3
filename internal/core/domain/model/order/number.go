package order

import (
	"fmt"
	"regexp"
	"strconv"

	"logistics/internal/pkg/errs"
)

// ErrNumberIsNotConstructed is returned when validating a zero-value Number.
var ErrNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"Number must be created via NewNumber or NumberFromString",
)

var numberPattern = regexp.MustCompile(`^OD-(\d{2,})/(\d{4})$`)

// Number is the human-readable order number in the format OD-<NN>/<year>,
// e.g. "OD-07/2026". The sequence restarts each year and is zero-padded to
// at least two digits. A Number is immutable after the order is created and
// is unique across all orders.
type Number struct {
	sequence int
	year     int
}

// NewNumber creates an order number from a yearly sequence and a year.
// The sequence must be positive; the year must be a plausible four-digit year.
func NewNumber(sequence int, year int) (Number, error) {
	if sequence <= 0 {
		return Number{}, errs.NewValueIsInvalidErrorWithCause(
			"sequence is invalid",
			fmt.Errorf("%d is not greater than 0", sequence),
		)
	}
	if year < 1000 || year > 9999 {
		return Number{}, errs.NewValueIsOutOfRangeError("year", year, 1000, 9999)
	}
	return Number{sequence: sequence, year: year}, nil
}

// NumberFromString parses an order number from its display form.
// Used when reconstructing orders from persistence.
func NumberFromString(s string) (Number, error) {
	matches := numberPattern.FindStringSubmatch(s)
	if matches == nil {
		return Number{}, errs.NewValueIsInvalidErrorWithCause(
			"order number is invalid",
			fmt.Errorf("%q does not match OD-<NN>/<year>", s),
		)
	}

	sequence, err := strconv.Atoi(matches[1])
	if err != nil {
		return Number{}, errs.NewValueIsInvalidErrorWithCause("order number is invalid", err)
	}
	year, err := strconv.Atoi(matches[2])
	if err != nil {
		return Number{}, errs.NewValueIsInvalidErrorWithCause("order number is invalid", err)
	}

	return NewNumber(sequence, year)
}

// Sequence returns the yearly sequence component of the number.
func (n Number) Sequence() int {
	return n.sequence
}

// Year returns the year component of the number.
func (n Number) Year() int {
	return n.year
}

// String returns the display form, e.g. "OD-03/2026".
// Implements fmt.Stringer.
func (n Number) String() string {
	return fmt.Sprintf("OD-%02d/%d", n.sequence, n.year)
}

// IsEqual compares two order numbers by sequence and year.
func (n Number) IsEqual(other Number) bool {
	return n.sequence == other.sequence && n.year == other.year
}

// Validate checks that the Number was created through a constructor.
func (n Number) Validate() error {
	if n.sequence == 0 || n.year == 0 {
		return ErrNumberIsNotConstructed
	}
	return nil
}
