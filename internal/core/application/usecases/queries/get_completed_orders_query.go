package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetCompletedOrdersQueryIsNotConstructed = errors.New(
	"GetCompletedOrdersQuery must be created via NewGetCompletedOrdersQuery constructor",
)

// GetCompletedOrdersQuery retrieves completed orders with their recorded
// distances and fuel estimates. Feeds the completed-orders screen and the
// spreadsheet report.
type GetCompletedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCompletedOrdersQuery creates a query to retrieve completed orders.
func NewGetCompletedOrdersQuery() GetCompletedOrdersQuery {
	return GetCompletedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCompletedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCompletedOrdersQueryIsNotConstructed)
}

// CompletedOrderResponse is one completed order with its completion figures.
// FuelCost is nil when the fuel estimate was skipped for the order.
type CompletedOrderResponse struct {
	ID               kernel.UUID
	Number           string
	ClientName       string
	DriverName       string
	TruckPlate       string
	TrailerPlate     string
	GoodsDescription string
	LoadingAddress   string
	UnloadingAddress string
	LoadingDate      time.Time
	StartDate        *time.Time
	EndDate          *time.Time
	Price            float64
	KmDomestic       float64
	KmInternational  float64
	TotalKm          float64
	FuelCost         *float64
}
