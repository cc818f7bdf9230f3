package queries

import (
	"context"
	"database/sql"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCompletedOrdersQueryHandler reads completed orders with their
// completion figures from the database.
type GetCompletedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCompletedOrdersQueryHandler creates a handler for completed order queries.
func NewGetCompletedOrdersQueryHandler(db *gorm.DB) GetCompletedOrdersQueryHandler {
	return GetCompletedOrdersQueryHandler{db: db}
}

// Handle executes the query and returns all completed orders, oldest number
// first. Orders with a skipped fuel estimate carry a nil FuelCost.
func (h GetCompletedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCompletedOrdersQuery,
) ([]CompletedOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.number,
			COALESCE(c.name, ?),
			COALESCE(d.name, ?),
			COALESCE(t.plate, ?),
			COALESCE(tr.plate, ?),
			o.goods_description,
			o.loading_address,
			o.unloading_address,
			o.loading_date,
			o.start_date,
			o.end_date,
			o.price,
			o.km_domestic,
			o.km_international,
			o.total_km,
			o.fuel_cost,
			o.fuel_skipped
		FROM orders o
		LEFT JOIN clients c ON c.id = o.client_id
		LEFT JOIN drivers d ON d.id = o.driver_id
		LEFT JOIN trucks t ON t.id = o.truck_id
		LEFT JOIN trailers tr ON tr.id = o.trailer_id
		WHERE o.status = ?
		ORDER BY o.year, o.sequence
	`,
		displayPlaceholder, displayPlaceholder, displayPlaceholder, displayPlaceholder,
		int(order.Completed),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]CompletedOrderResponse, 0)
	for rows.Next() {
		var resp CompletedOrderResponse
		var id uuid.UUID
		var startDate, endDate sql.NullTime
		var kmDomestic, kmInternational, totalKm, fuelCost sql.NullFloat64
		var fuelSkipped sql.NullBool

		if err = rows.Scan(
			&id,
			&resp.Number,
			&resp.ClientName,
			&resp.DriverName,
			&resp.TruckPlate,
			&resp.TrailerPlate,
			&resp.GoodsDescription,
			&resp.LoadingAddress,
			&resp.UnloadingAddress,
			&resp.LoadingDate,
			&startDate,
			&endDate,
			&resp.Price,
			&kmDomestic,
			&kmInternational,
			&totalKm,
			&fuelCost,
			&fuelSkipped,
		); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		if startDate.Valid {
			resp.StartDate = &startDate.Time
		}
		if endDate.Valid {
			resp.EndDate = &endDate.Time
		}
		resp.KmDomestic = kmDomestic.Float64
		resp.KmInternational = kmInternational.Float64
		resp.TotalKm = totalKm.Float64
		if fuelCost.Valid && !(fuelSkipped.Valid && fuelSkipped.Bool) {
			resp.FuelCost = &fuelCost.Float64
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
