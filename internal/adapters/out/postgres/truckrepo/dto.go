// Package truckrepo provides data transfer objects and mapping functions
// for truck persistence.
package truckrepo

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/truck"

	"github.com/google/uuid"
)

// TruckDTO represents the database structure for persisting truck aggregates.
type TruckDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Plate        string    `gorm:"index"`
	Brand        string
	Model        string
	OdometerKm   float64
	Availability int  `gorm:"index"`
	IsActive     bool `gorm:"index"`
}

// TableName specifies the database table name for truck entities.
func (TruckDTO) TableName() string {
	return "trucks"
}

func fromDomain(aggregate *truck.Truck) TruckDTO {
	return TruckDTO{
		ID:           aggregate.ID().Bytes(),
		Plate:        aggregate.Plate(),
		Brand:        aggregate.Brand(),
		Model:        aggregate.Model(),
		OdometerKm:   aggregate.OdometerKm(),
		Availability: int(aggregate.Availability()),
		IsActive:     aggregate.IsActive(),
	}
}

func toDomain(dto TruckDTO) (*truck.Truck, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return truck.RestoreTruck(
		id,
		dto.Plate,
		dto.Brand,
		dto.Model,
		dto.OdometerKm,
		kernel.Availability(dto.Availability),
		dto.IsActive,
	)
}
