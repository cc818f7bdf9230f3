package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetAvailableResourcesQueryIsNotConstructed = errors.New(
	"GetAvailableResourcesQuery must be created via NewGetAvailableResourcesQuery constructor",
)

// GetAvailableResourcesQuery retrieves the pool of resources a new order may
// claim: active, non-archived drivers, trucks, and trailers that are not
// busy with another order.
//
// Example:
//
//	query := NewGetAvailableResourcesQuery()
//	handler := NewGetAvailableResourcesQueryHandler(db)
//
//	pool, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list available resources: %w", err)
//	}
//	fmt.Printf("%d drivers free\n", len(pool.Drivers))
type GetAvailableResourcesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableResourcesQuery creates a query to retrieve the free pool.
func NewGetAvailableResourcesQuery() GetAvailableResourcesQuery {
	return GetAvailableResourcesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableResourcesQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableResourcesQueryIsNotConstructed)
}

// AvailableDriverResponse is one free driver.
type AvailableDriverResponse struct {
	ID            kernel.UUID
	Name          string
	LicenseNumber string
	Phone         string
}

// AvailableTruckResponse is one free truck.
type AvailableTruckResponse struct {
	ID         kernel.UUID
	Plate      string
	Brand      string
	Model      string
	OdometerKm float64
}

// AvailableTrailerResponse is one free trailer.
type AvailableTrailerResponse struct {
	ID          kernel.UUID
	Plate       string
	Model       string
	TrailerType string
}

// AvailableResourcesResponse bundles the free pool of all three resource types.
type AvailableResourcesResponse struct {
	Drivers  []AvailableDriverResponse
	Trucks   []AvailableTruckResponse
	Trailers []AvailableTrailerResponse
}
