package http

import (
	"time"

	"logistics/internal/core/application/usecases/queries"
)

// Error is the JSON body returned for every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// IDResponse returns the server-assigned identifier of a created entity.
type IDResponse struct {
	ID string `json:"id"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	ClientID         string    `json:"clientId"`
	DriverID         string    `json:"driverId"`
	TruckID          string    `json:"truckId"`
	TrailerID        string    `json:"trailerId"`
	TransportType    string    `json:"transportType"`
	GoodsDescription string    `json:"goodsDescription"`
	LoadingAddress   string    `json:"loadingAddress"`
	UnloadingAddress string    `json:"unloadingAddress"`
	LoadingDate      time.Time `json:"loadingDate"`
	Price            float64   `json:"price"`
}

// ChangeOrderStatusRequest is the body of POST /api/v1/orders/:id/status.
type ChangeOrderStatusRequest struct {
	Status string `json:"status"`
}

// CompleteOrderRequest is the body of POST /api/v1/orders/:id/complete.
type CompleteOrderRequest struct {
	KmDomestic      float64 `json:"kmDomestic"`
	KmInternational float64 `json:"kmInternational"`
	SkipFuel        bool    `json:"skipFuel"`
}

// CreateClientRequest is the body of POST /api/v1/clients.
type CreateClientRequest struct {
	Name          string `json:"name"`
	ContactPerson string `json:"contactPerson"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
}

// CreateDriverRequest is the body of POST /api/v1/drivers.
type CreateDriverRequest struct {
	Name          string `json:"name"`
	LicenseNumber string `json:"licenseNumber"`
	Phone         string `json:"phone"`
}

// CreateTruckRequest is the body of POST /api/v1/trucks.
type CreateTruckRequest struct {
	Plate      string  `json:"plate"`
	Brand      string  `json:"brand"`
	Model      string  `json:"model"`
	OdometerKm float64 `json:"odometerKm"`
}

// CreateTrailerRequest is the body of POST /api/v1/trailers.
type CreateTrailerRequest struct {
	Plate       string `json:"plate"`
	Model       string `json:"model"`
	TrailerType string `json:"trailerType"`
}

// OrderSummary is one order row in GET /api/v1/orders.
type OrderSummary struct {
	ID               string     `json:"id"`
	Number           string     `json:"number"`
	Status           string     `json:"status"`
	TransportType    string     `json:"transportType"`
	ClientName       string     `json:"clientName"`
	DriverName       string     `json:"driverName"`
	TruckPlate       string     `json:"truckPlate"`
	TrailerPlate     string     `json:"trailerPlate"`
	GoodsDescription string     `json:"goodsDescription"`
	LoadingAddress   string     `json:"loadingAddress"`
	UnloadingAddress string     `json:"unloadingAddress"`
	LoadingDate      time.Time  `json:"loadingDate"`
	Price            float64    `json:"price"`
	StartDate        *time.Time `json:"startDate,omitempty"`
	EndDate          *time.Time `json:"endDate,omitempty"`
}

// CompletedOrder is one row in GET /api/v1/orders/completed, carrying the
// completion figures alongside the order summary. FuelCost is absent when
// the fuel estimate was skipped for the order.
type CompletedOrder struct {
	ID               string     `json:"id"`
	Number           string     `json:"number"`
	ClientName       string     `json:"clientName"`
	DriverName       string     `json:"driverName"`
	TruckPlate       string     `json:"truckPlate"`
	TrailerPlate     string     `json:"trailerPlate"`
	GoodsDescription string     `json:"goodsDescription"`
	LoadingAddress   string     `json:"loadingAddress"`
	UnloadingAddress string     `json:"unloadingAddress"`
	LoadingDate      time.Time  `json:"loadingDate"`
	StartDate        *time.Time `json:"startDate,omitempty"`
	EndDate          *time.Time `json:"endDate,omitempty"`
	Price            float64    `json:"price"`
	KmDomestic       float64    `json:"kmDomestic"`
	KmInternational  float64    `json:"kmInternational"`
	TotalKm          float64    `json:"totalKm"`
	FuelCost         *float64   `json:"fuelCost,omitempty"`
}

// AvailableDriver is one free driver in GET /api/v1/resources/available.
type AvailableDriver struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	LicenseNumber string `json:"licenseNumber"`
	Phone         string `json:"phone"`
}

// AvailableTruck is one free truck in GET /api/v1/resources/available.
type AvailableTruck struct {
	ID         string  `json:"id"`
	Plate      string  `json:"plate"`
	Brand      string  `json:"brand"`
	Model      string  `json:"model"`
	OdometerKm float64 `json:"odometerKm"`
}

// AvailableTrailer is one free trailer in GET /api/v1/resources/available.
type AvailableTrailer struct {
	ID          string `json:"id"`
	Plate       string `json:"plate"`
	Model       string `json:"model"`
	TrailerType string `json:"trailerType"`
}

// AvailableResources bundles the free pool of all three resource types.
type AvailableResources struct {
	Drivers  []AvailableDriver  `json:"drivers"`
	Trucks   []AvailableTruck   `json:"trucks"`
	Trailers []AvailableTrailer `json:"trailers"`
}

func orderSummaryFromQuery(row queries.OrderSummaryResponse) OrderSummary {
	return OrderSummary{
		ID:               row.ID.String(),
		Number:           row.Number,
		Status:           row.Status,
		TransportType:    row.TransportType,
		ClientName:       row.ClientName,
		DriverName:       row.DriverName,
		TruckPlate:       row.TruckPlate,
		TrailerPlate:     row.TrailerPlate,
		GoodsDescription: row.GoodsDescription,
		LoadingAddress:   row.LoadingAddress,
		UnloadingAddress: row.UnloadingAddress,
		LoadingDate:      row.LoadingDate,
		Price:            row.Price,
		StartDate:        row.StartDate,
		EndDate:          row.EndDate,
	}
}

func completedOrderFromQuery(row queries.CompletedOrderResponse) CompletedOrder {
	return CompletedOrder{
		ID:               row.ID.String(),
		Number:           row.Number,
		ClientName:       row.ClientName,
		DriverName:       row.DriverName,
		TruckPlate:       row.TruckPlate,
		TrailerPlate:     row.TrailerPlate,
		GoodsDescription: row.GoodsDescription,
		LoadingAddress:   row.LoadingAddress,
		UnloadingAddress: row.UnloadingAddress,
		LoadingDate:      row.LoadingDate,
		StartDate:        row.StartDate,
		EndDate:          row.EndDate,
		Price:            row.Price,
		KmDomestic:       row.KmDomestic,
		KmInternational:  row.KmInternational,
		TotalKm:          row.TotalKm,
		FuelCost:         row.FuelCost,
	}
}

func availableResourcesFromQuery(pool queries.AvailableResourcesResponse) AvailableResources {
	response := AvailableResources{
		Drivers:  make([]AvailableDriver, len(pool.Drivers)),
		Trucks:   make([]AvailableTruck, len(pool.Trucks)),
		Trailers: make([]AvailableTrailer, len(pool.Trailers)),
	}

	for i, d := range pool.Drivers {
		response.Drivers[i] = AvailableDriver{
			ID:            d.ID.String(),
			Name:          d.Name,
			LicenseNumber: d.LicenseNumber,
			Phone:         d.Phone,
		}
	}
	for i, t := range pool.Trucks {
		response.Trucks[i] = AvailableTruck{
			ID:         t.ID.String(),
			Plate:      t.Plate,
			Brand:      t.Brand,
			Model:      t.Model,
			OdometerKm: t.OdometerKm,
		}
	}
	for i, t := range pool.Trailers {
		response.Trailers[i] = AvailableTrailer{
			ID:          t.ID.String(),
			Plate:       t.Plate,
			Model:       t.Model,
			TrailerType: t.TrailerType,
		}
	}

	return response
}
