// Package queries contains read operations for the logistics back office.
// Query handlers read denormalized rows straight from the database, bypassing
// the aggregates, and return plain response structs shaped for display.
package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/guard"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via a NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery retrieves the order list for the back-office overview,
// optionally narrowed to a single status.
//
// Example:
//
//	query := NewGetAllOrdersQueryWithStatus(order.Started)
//	handler := NewGetAllOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//	fmt.Printf("%d orders in transit\n", len(orders))
type GetAllOrdersQuery struct {
	status    order.Status
	hasStatus bool

	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query that retrieves every order.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

// NewGetAllOrdersQueryWithStatus creates a query narrowed to the given status.
func NewGetAllOrdersQueryWithStatus(status order.Status) (GetAllOrdersQuery, error) {
	if err := status.Validate(); err != nil {
		return GetAllOrdersQuery{}, err
	}

	return GetAllOrdersQuery{
		status:    status,
		hasStatus: true,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// Status returns the status filter and whether one was set.
func (q GetAllOrdersQuery) Status() (order.Status, bool) {
	return q.status, q.hasStatus
}

// OrderSummaryResponse is one row of the order overview. Reference names are
// resolved for display; references to records that no longer exist show the
// "(deleted)" placeholder instead of failing the whole listing.
type OrderSummaryResponse struct {
	ID               kernel.UUID
	Number           string
	Status           string
	TransportType    string
	ClientName       string
	DriverName       string
	TruckPlate       string
	TrailerPlate     string
	GoodsDescription string
	LoadingAddress   string
	UnloadingAddress string
	LoadingDate      time.Time
	Price            float64
	StartDate        *time.Time
	EndDate          *time.Time
}
