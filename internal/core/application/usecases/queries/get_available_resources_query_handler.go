package queries

import (
	"context"

	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableResourcesQueryHandler reads the free resource pool from the
// database. A resource qualifies when it is active and not claimed.
type GetAvailableResourcesQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableResourcesQueryHandler creates a handler for free pool queries.
func NewGetAvailableResourcesQueryHandler(db *gorm.DB) GetAvailableResourcesQueryHandler {
	return GetAvailableResourcesQueryHandler{db: db}
}

// Handle executes the query and returns the free pool of drivers, trucks,
// and trailers.
func (h GetAvailableResourcesQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableResourcesQuery,
) (AvailableResourcesResponse, error) {
	if err := query.Validate(); err != nil {
		return AvailableResourcesResponse{}, err
	}

	response := AvailableResourcesResponse{
		Drivers:  make([]AvailableDriverResponse, 0),
		Trucks:   make([]AvailableTruckResponse, 0),
		Trailers: make([]AvailableTrailerResponse, 0),
	}

	if err := h.loadDrivers(ctx, &response); err != nil {
		return AvailableResourcesResponse{}, err
	}
	if err := h.loadTrucks(ctx, &response); err != nil {
		return AvailableResourcesResponse{}, err
	}
	if err := h.loadTrailers(ctx, &response); err != nil {
		return AvailableResourcesResponse{}, err
	}

	return response, nil
}

func (h GetAvailableResourcesQueryHandler) loadDrivers(
	ctx context.Context,
	response *AvailableResourcesResponse,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, license_number, phone
		FROM drivers
		WHERE is_active AND availability = ?
		ORDER BY name
	`, int(kernel.Available)).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var resp AvailableDriverResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &resp.Name, &resp.LicenseNumber, &resp.Phone); err != nil {
			return err
		}

		resp.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return err
		}

		response.Drivers = append(response.Drivers, resp)
	}

	return rows.Err()
}

func (h GetAvailableResourcesQueryHandler) loadTrucks(
	ctx context.Context,
	response *AvailableResourcesResponse,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, plate, brand, model, odometer_km
		FROM trucks
		WHERE is_active AND availability = ?
		ORDER BY plate
	`, int(kernel.Available)).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var resp AvailableTruckResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &resp.Plate, &resp.Brand, &resp.Model, &resp.OdometerKm); err != nil {
			return err
		}

		resp.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return err
		}

		response.Trucks = append(response.Trucks, resp)
	}

	return rows.Err()
}

func (h GetAvailableResourcesQueryHandler) loadTrailers(
	ctx context.Context,
	response *AvailableResourcesResponse,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, plate, model, trailer_type
		FROM trailers
		WHERE is_active AND availability = ?
		ORDER BY plate
	`, int(kernel.Available)).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var resp AvailableTrailerResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &resp.Plate, &resp.Model, &resp.TrailerType); err != nil {
			return err
		}

		resp.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return err
		}

		response.Trailers = append(response.Trailers, resp)
	}

	return rows.Err()
}
