// Package truck implements the truck resource aggregate, a schedulable unit
// with a cumulative odometer that grows only when an order completes.
package truck
