// Package trailerrepo provides data transfer objects and mapping functions
// for trailer persistence.
package trailerrepo

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/trailer"

	"github.com/google/uuid"
)

// TrailerDTO represents the database structure for persisting trailer aggregates.
type TrailerDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Plate        string    `gorm:"index"`
	Model        string
	TrailerType  string
	Availability int  `gorm:"index"`
	IsActive     bool `gorm:"index"`
}

// TableName specifies the database table name for trailer entities.
func (TrailerDTO) TableName() string {
	return "trailers"
}

func fromDomain(aggregate *trailer.Trailer) TrailerDTO {
	return TrailerDTO{
		ID:           aggregate.ID().Bytes(),
		Plate:        aggregate.Plate(),
		Model:        aggregate.Model(),
		TrailerType:  aggregate.TrailerType(),
		Availability: int(aggregate.Availability()),
		IsActive:     aggregate.IsActive(),
	}
}

func toDomain(dto TrailerDTO) (*trailer.Trailer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return trailer.RestoreTrailer(
		id,
		dto.Plate,
		dto.Model,
		dto.TrailerType,
		kernel.Availability(dto.Availability),
		dto.IsActive,
	)
}
