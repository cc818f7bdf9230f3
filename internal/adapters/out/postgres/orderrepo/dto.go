// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The human-facing number is stored both assembled (with a uniqueness
// constraint backing the allocation) and split into sequence and year for
// per-year allocation queries. Completion figures are nullable and set only
// once the order is completed.
type OrderDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number           string    `gorm:"uniqueIndex"`
	Sequence         int       `gorm:"index:idx_orders_year_sequence"`
	Year             int       `gorm:"index:idx_orders_year_sequence"`
	ClientID         uuid.UUID `gorm:"type:uuid;index"`
	DriverID         uuid.UUID `gorm:"type:uuid;index"`
	TruckID          uuid.UUID `gorm:"type:uuid;index"`
	TrailerID        uuid.UUID `gorm:"type:uuid;index"`
	TransportType    int
	GoodsDescription string
	LoadingAddress   string
	UnloadingAddress string
	LoadingDate      time.Time
	Price            float64
	Status           int `gorm:"index"`
	StartDate        *time.Time
	EndDate          *time.Time
	KmDomestic       *float64
	KmInternational  *float64
	TotalKm          *float64
	FuelCost         *float64
	FuelSkipped      *bool
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:               aggregate.ID().Bytes(),
		Number:           aggregate.Number().String(),
		Sequence:         aggregate.Number().Sequence(),
		Year:             aggregate.Number().Year(),
		ClientID:         aggregate.ClientID().Bytes(),
		DriverID:         aggregate.DriverID().Bytes(),
		TruckID:          aggregate.TruckID().Bytes(),
		TrailerID:        aggregate.TrailerID().Bytes(),
		TransportType:    int(aggregate.TransportType()),
		GoodsDescription: aggregate.GoodsDescription(),
		LoadingAddress:   aggregate.LoadingAddress(),
		UnloadingAddress: aggregate.UnloadingAddress(),
		LoadingDate:      aggregate.LoadingDate(),
		Price:            aggregate.Price(),
		Status:           int(aggregate.Status()),
		StartDate:        aggregate.StartDate(),
		EndDate:          aggregate.EndDate(),
	}

	if completion := aggregate.Completion(); completion != nil {
		kmDomestic := completion.KmDomestic()
		kmInternational := completion.KmInternational()
		totalKm := completion.TotalKm()
		fuelSkipped := completion.FuelSkipped()

		dto.KmDomestic = &kmDomestic
		dto.KmInternational = &kmInternational
		dto.TotalKm = &totalKm
		dto.FuelSkipped = &fuelSkipped
		if fuelCost, ok := completion.FuelCost(); ok {
			dto.FuelCost = &fuelCost
		}
	}

	return dto
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including milestone dates and
// completion figures using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}
	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}
	truckID, err := kernel.UUIDFromBytes(dto.TruckID[:])
	if err != nil {
		return nil, err
	}
	trailerID, err := kernel.UUIDFromBytes(dto.TrailerID[:])
	if err != nil {
		return nil, err
	}

	number, err := order.NewNumber(dto.Sequence, dto.Year)
	if err != nil {
		return nil, err
	}

	var completion *order.Completion
	if dto.TotalKm != nil {
		var fuelCost float64
		if dto.FuelCost != nil {
			fuelCost = *dto.FuelCost
		}
		fuelSkipped := dto.FuelSkipped != nil && *dto.FuelSkipped

		restored, completionErr := order.RestoreCompletion(
			*dto.KmDomestic, *dto.KmInternational, *dto.TotalKm, fuelCost, fuelSkipped,
		)
		if completionErr != nil {
			return nil, completionErr
		}
		completion = &restored
	}

	return order.RestoreOrder(
		id,
		number,
		clientID,
		driverID,
		truckID,
		trailerID,
		order.TransportType(dto.TransportType),
		dto.GoodsDescription,
		dto.LoadingAddress,
		dto.UnloadingAddress,
		dto.LoadingDate,
		dto.Price,
		order.Status(dto.Status),
		dto.StartDate,
		dto.EndDate,
		completion,
	)
}
