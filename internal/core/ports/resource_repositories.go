package ports

import (
	"context"

	"logistics/internal/core/domain/model/client"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/trailer"
	"logistics/internal/core/domain/model/truck"
)

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	// Add persists a new driver aggregate to storage.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists changes to an existing driver aggregate.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetAllActive retrieves all non-archived drivers.
	// Used by the availability reconciliation sweep.
	GetAllActive(ctx context.Context) ([]*driver.Driver, error)
}

// TruckRepository defines the persistence contract for truck aggregates.
type TruckRepository interface {
	// Add persists a new truck aggregate to storage.
	Add(ctx context.Context, aggregate *truck.Truck) error

	// Update persists changes to an existing truck aggregate.
	Update(ctx context.Context, aggregate *truck.Truck) error

	// Get retrieves a truck aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*truck.Truck, error)

	// GetAllActive retrieves all non-archived trucks.
	GetAllActive(ctx context.Context) ([]*truck.Truck, error)
}

// TrailerRepository defines the persistence contract for trailer aggregates.
type TrailerRepository interface {
	// Add persists a new trailer aggregate to storage.
	Add(ctx context.Context, aggregate *trailer.Trailer) error

	// Update persists changes to an existing trailer aggregate.
	Update(ctx context.Context, aggregate *trailer.Trailer) error

	// Get retrieves a trailer aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*trailer.Trailer, error)

	// GetAllActive retrieves all non-archived trailers.
	GetAllActive(ctx context.Context) ([]*trailer.Trailer, error)
}

// ClientRepository defines the persistence contract for client entities.
type ClientRepository interface {
	// Add persists a new client to storage.
	Add(ctx context.Context, aggregate *client.Client) error

	// Get retrieves a client by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*client.Client, error)
}
