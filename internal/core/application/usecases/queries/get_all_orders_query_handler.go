package queries

import (
	"context"
	"database/sql"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// displayPlaceholder stands in for names of reference records that were
// deleted after the order was created.
const displayPlaceholder = "(deleted)"

// GetAllOrdersQueryHandler reads the order overview from the database.
// Joins the reference tables to resolve client, driver, truck, and trailer
// names in one round trip.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order overview queries.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query and returns the matching orders, oldest number
// first. An order whose client or resources were removed still appears,
// with placeholders for the missing names.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT
			o.id,
			o.number,
			o.status,
			o.transport_type,
			COALESCE(c.name, ?),
			COALESCE(d.name, ?),
			COALESCE(t.plate, ?),
			COALESCE(tr.plate, ?),
			o.goods_description,
			o.loading_address,
			o.unloading_address,
			o.loading_date,
			o.price,
			o.start_date,
			o.end_date
		FROM orders o
		LEFT JOIN clients c ON c.id = o.client_id
		LEFT JOIN drivers d ON d.id = o.driver_id
		LEFT JOIN trucks t ON t.id = o.truck_id
		LEFT JOIN trailers tr ON tr.id = o.trailer_id
	`
	args := []any{
		displayPlaceholder, displayPlaceholder, displayPlaceholder, displayPlaceholder,
	}
	if status, ok := query.Status(); ok {
		sqlQuery += ` WHERE o.status = ?`
		args = append(args, int(status))
	}
	sqlQuery += ` ORDER BY o.year, o.sequence`

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderSummaryResponse, 0)
	for rows.Next() {
		var resp OrderSummaryResponse
		var id uuid.UUID
		var status, transportType int
		var startDate, endDate sql.NullTime

		if err = rows.Scan(
			&id,
			&resp.Number,
			&status,
			&transportType,
			&resp.ClientName,
			&resp.DriverName,
			&resp.TruckPlate,
			&resp.TrailerPlate,
			&resp.GoodsDescription,
			&resp.LoadingAddress,
			&resp.UnloadingAddress,
			&resp.LoadingDate,
			&resp.Price,
			&startDate,
			&endDate,
		); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID
		resp.Status = order.Status(status).String()
		resp.TransportType = order.TransportType(transportType).String()

		if startDate.Valid {
			resp.StartDate = &startDate.Time
		}
		if endDate.Valid {
			resp.EndDate = &endDate.Time
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
