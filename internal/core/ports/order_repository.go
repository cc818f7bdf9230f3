// Package ports defines repository interfaces for the logistics domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes an order record. Releasing the order's resources
	// beforehand is the caller's responsibility.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetAllNonTerminal retrieves all orders that are neither Completed nor
	// Failed. Used by the availability reconciliation sweep.
	GetAllNonTerminal(ctx context.Context) ([]*order.Order, error)

	// NextNumber allocates the next order number for the given year.
	// Must be called inside the same transaction that inserts the order:
	// the sequence is derived from the highest committed sequence of the
	// year, and a uniqueness constraint on the number backs the allocation,
	// so two concurrent creations cannot both commit the same number.
	NextNumber(ctx context.Context, year int) (order.Number, error)

	// ActiveOrderCountFor returns how many non-terminal orders reference the
	// given resource id as driver, truck, or trailer. Answers "is this
	// resource currently claimed" without scanning orders in memory.
	ActiveOrderCountFor(ctx context.Context, resourceID kernel.UUID) (int64, error)
}
