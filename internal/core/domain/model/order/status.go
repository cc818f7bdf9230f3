package order

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status represents the lifecycle state of a transport order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Started ──> Loaded ──> Unloaded ──> Completed
//	   │           │           │           │
//	   └───────────┴───────────┴───────────┴──────> Failed
//
// Forward movement may skip intermediate states (e.g. Pending directly to
// Unloaded) as long as the position in the sequence strictly increases.
// Backward and lateral moves are rejected. Failed is reachable from any
// non-terminal state. Completed and Failed are terminal: no transitions
// are permitted out of either.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Its resources are already claimed while it waits to start.
	Pending

	// Started indicates the transport has begun. First entry into this
	// status stamps the order's start date.
	Started

	// Loaded indicates the goods have been loaded at the loading address.
	Loaded

	// Unloaded indicates the goods have been unloaded at the unloading address.
	Unloaded

	// Completed indicates the transport finished successfully.
	// Terminal; reached only through the completion sub-flow.
	Completed

	// Failed indicates the transport was aborted.
	// Terminal; reachable from any non-terminal status.
	Failed
)

// statusSequence is the ordered forward progression of an order.
// Failed sits outside the sequence as an absorbing failure state.
func statusSequence() []Status {
	return []Status{Pending, Started, Loaded, Unloaded, Completed}
}

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Started:   "Started",
		Loaded:    "Loaded",
		Unloaded:  "Unloaded",
		Completed: "Completed",
		Failed:    "Failed",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Started:   "Started",
		Loaded:    "Loaded",
		Unloaded:  "Unloaded",
		Completed: "Completed",
		Failed:    "Failed",
	}
}

// StatusFromString parses a status from its string representation.
// Used when accepting status values across the HTTP boundary.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
// Valid statuses are Pending through Failed; Unknown (0) and any other
// values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Failed
}

// sequenceIndex returns the position of the status in the forward
// progression, or -1 for Failed and invalid values.
func (s Status) sequenceIndex() int {
	for i, status := range statusSequence() {
		if status == s {
			return i
		}
	}
	return -1
}

// CanAdvance reports whether a transition from s to next is permitted.
//
// The rules are:
//   - A terminal status (Completed, Failed) permits nothing.
//   - Failed is reachable from any non-terminal status.
//   - Otherwise the transition is permitted iff next sits strictly later
//     in the forward sequence than s. Skipping intermediate states is
//     allowed; self, backward, and lateral moves are not.
func (s Status) CanAdvance(next Status) bool {
	if s.IsTerminal() {
		return false
	}
	if next == Failed {
		return true
	}
	currentIndex := s.sequenceIndex()
	nextIndex := next.sequenceIndex()
	if currentIndex < 0 || nextIndex < 0 {
		return false
	}
	return nextIndex > currentIndex
}

// Advance validates the transition from s to next and returns next.
//
// Returns:
//   - (next, nil) on a permitted transition
//   - (0, error) if the transition is rejected by CanAdvance
func (s Status) Advance(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}
	if !s.CanAdvance(next) {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("cannot advance from %s to %s", s.String(), next.String()),
		)
	}
	return next, nil
}
