// Package http exposes the back-office API over echo. Handlers translate
// JSON requests into commands and queries, and map domain errors onto
// HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"logistics/internal/adapters/out/excel"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/trailer"
	"logistics/internal/core/domain/model/truck"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Server wires HTTP routes to the application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	completeOrderHandler     commands.CompleteOrderCommandHandler
	deleteOrderHandler       commands.DeleteOrderCommandHandler
	createClientHandler      commands.CreateClientCommandHandler
	createDriverHandler      commands.CreateDriverCommandHandler
	createTruckHandler       commands.CreateTruckCommandHandler
	createTrailerHandler     commands.CreateTrailerCommandHandler
	archiveResourceHandler   commands.ArchiveResourceCommandHandler
	restoreResourceHandler   commands.RestoreResourceCommandHandler

	// Query handlers
	getAllOrdersHandler       queries.GetAllOrdersQueryHandler
	getCompletedOrdersHandler queries.GetCompletedOrdersQueryHandler
	getAvailableHandler       queries.GetAvailableResourcesQueryHandler

	report excel.CompletedOrdersReport
}

// NewServer creates the HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	createClientHandler commands.CreateClientCommandHandler,
	createDriverHandler commands.CreateDriverCommandHandler,
	createTruckHandler commands.CreateTruckCommandHandler,
	createTrailerHandler commands.CreateTrailerCommandHandler,
	archiveResourceHandler commands.ArchiveResourceCommandHandler,
	restoreResourceHandler commands.RestoreResourceCommandHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getCompletedOrdersHandler queries.GetCompletedOrdersQueryHandler,
	getAvailableHandler queries.GetAvailableResourcesQueryHandler,
	report excel.CompletedOrdersReport,
) *Server {
	return &Server{
		createOrderHandler:        createOrderHandler,
		changeOrderStatusHandler:  changeOrderStatusHandler,
		completeOrderHandler:      completeOrderHandler,
		deleteOrderHandler:        deleteOrderHandler,
		createClientHandler:       createClientHandler,
		createDriverHandler:       createDriverHandler,
		createTruckHandler:        createTruckHandler,
		createTrailerHandler:      createTrailerHandler,
		archiveResourceHandler:    archiveResourceHandler,
		restoreResourceHandler:    restoreResourceHandler,
		getAllOrdersHandler:       getAllOrdersHandler,
		getCompletedOrdersHandler: getCompletedOrdersHandler,
		getAvailableHandler:       getAvailableHandler,
		report:                    report,
	}
}

// RegisterRoutes mounts all API endpoints on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/completed", s.GetCompletedOrders)
	api.GET("/orders/completed/report", s.GetCompletedOrdersReport)
	api.POST("/orders/:id/status", s.ChangeOrderStatus)
	api.POST("/orders/:id/complete", s.CompleteOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)

	api.POST("/clients", s.CreateClient)
	api.POST("/drivers", s.CreateDriver)
	api.POST("/trucks", s.CreateTruck)
	api.POST("/trailers", s.CreateTrailer)

	api.GET("/resources/available", s.GetAvailableResources)
	api.POST("/resources/:kind/:id/archive", s.ArchiveResource)
	api.POST("/resources/:kind/:id/restore", s.RestoreResource)

	e.GET("/health", s.Health)
}

// CreateOrder handles POST /api/v1/orders - registers a new order and claims
// its resources.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	clientID, err := kernel.UUIDFromString(request.ClientID)
	if err != nil {
		return badRequest(ctx, "Invalid client ID: "+err.Error())
	}
	driverID, err := kernel.UUIDFromString(request.DriverID)
	if err != nil {
		return badRequest(ctx, "Invalid driver ID: "+err.Error())
	}
	truckID, err := kernel.UUIDFromString(request.TruckID)
	if err != nil {
		return badRequest(ctx, "Invalid truck ID: "+err.Error())
	}
	trailerID, err := kernel.UUIDFromString(request.TrailerID)
	if err != nil {
		return badRequest(ctx, "Invalid trailer ID: "+err.Error())
	}
	transportType, err := order.TransportTypeFromString(request.TransportType)
	if err != nil {
		return badRequest(ctx, "Invalid transport type: "+err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		clientID,
		driverID,
		truckID,
		trailerID,
		transportType,
		request.GoodsDescription,
		request.LoadingAddress,
		request.UnloadingAddress,
		request.LoadingDate,
		request.Price,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: orderID.String()})
}

// GetOrders handles GET /api/v1/orders - lists orders, optionally filtered
// by ?status=.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()
	if statusParam := ctx.QueryParam("status"); statusParam != "" {
		status, err := order.StatusFromString(statusParam)
		if err != nil {
			return badRequest(ctx, "Invalid status filter: "+err.Error())
		}
		query, err = queries.NewGetAllOrdersQueryWithStatus(status)
		if err != nil {
			return badRequest(ctx, "Invalid status filter: "+err.Error())
		}
	}

	rows, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve orders")
	}

	response := make([]OrderSummary, len(rows))
	for i, row := range rows {
		response[i] = orderSummaryFromQuery(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCompletedOrders handles GET /api/v1/orders/completed.
func (s *Server) GetCompletedOrders(ctx echo.Context) error {
	rows, err := s.getCompletedOrdersHandler.Handle(
		ctx.Request().Context(),
		queries.NewGetCompletedOrdersQuery(),
	)
	if err != nil {
		return internalError(ctx, "Failed to retrieve completed orders")
	}

	response := make([]CompletedOrder, len(rows))
	for i, row := range rows {
		response[i] = completedOrderFromQuery(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCompletedOrdersReport handles GET /api/v1/orders/completed/report -
// downloads the completed-orders workbook.
func (s *Server) GetCompletedOrdersReport(ctx echo.Context) error {
	rows, err := s.getCompletedOrdersHandler.Handle(
		ctx.Request().Context(),
		queries.NewGetCompletedOrdersQuery(),
	)
	if err != nil {
		return internalError(ctx, "Failed to retrieve completed orders")
	}

	data, err := s.report.Render(rows)
	if err != nil {
		return internalError(ctx, "Failed to build report")
	}

	ctx.Response().Header().Set(
		echo.HeaderContentDisposition,
		`attachment; filename="`+s.report.Filename(time.Now())+`"`,
	)

	return ctx.Blob(http.StatusOK, xlsxContentType, data)
}

// ChangeOrderStatus handles POST /api/v1/orders/:id/status - advances the
// order workflow or fails the order.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	var request ChangeOrderStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	next, err := order.StatusFromString(request.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, next)
	if err != nil {
		return badRequest(ctx, "Invalid status change: "+err.Error())
	}

	if handleErr := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteOrder handles POST /api/v1/orders/:id/complete - records distances,
// estimates fuel, and finishes the order.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	var request CompleteOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCompleteOrderCommand(
		orderID,
		request.KmDomestic,
		request.KmInternational,
		request.SkipFuel,
	)
	if err != nil {
		return badRequest(ctx, "Invalid completion data: "+err.Error())
	}

	if handleErr := s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	if handleErr := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateClient handles POST /api/v1/clients.
func (s *Server) CreateClient(ctx echo.Context) error {
	var request CreateClientRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	clientID := kernel.NewUUID()
	cmd, err := commands.NewCreateClientCommand(
		clientID,
		request.Name,
		request.ContactPerson,
		request.Phone,
		request.Email,
		request.Address,
	)
	if err != nil {
		return badRequest(ctx, "Invalid client data: "+err.Error())
	}

	if handleErr := s.createClientHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: clientID.String()})
}

// CreateDriver handles POST /api/v1/drivers.
func (s *Server) CreateDriver(ctx echo.Context) error {
	var request CreateDriverRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	driverID := kernel.NewUUID()
	cmd, err := commands.NewCreateDriverCommand(driverID, request.Name, request.LicenseNumber, request.Phone)
	if err != nil {
		return badRequest(ctx, "Invalid driver data: "+err.Error())
	}

	if handleErr := s.createDriverHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: driverID.String()})
}

// CreateTruck handles POST /api/v1/trucks.
func (s *Server) CreateTruck(ctx echo.Context) error {
	var request CreateTruckRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	truckID := kernel.NewUUID()
	cmd, err := commands.NewCreateTruckCommand(truckID, request.Plate, request.Brand, request.Model, request.OdometerKm)
	if err != nil {
		return badRequest(ctx, "Invalid truck data: "+err.Error())
	}

	if handleErr := s.createTruckHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: truckID.String()})
}

// CreateTrailer handles POST /api/v1/trailers.
func (s *Server) CreateTrailer(ctx echo.Context) error {
	var request CreateTrailerRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	trailerID := kernel.NewUUID()
	cmd, err := commands.NewCreateTrailerCommand(trailerID, request.Plate, request.Model, request.TrailerType)
	if err != nil {
		return badRequest(ctx, "Invalid trailer data: "+err.Error())
	}

	if handleErr := s.createTrailerHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: trailerID.String()})
}

// GetAvailableResources handles GET /api/v1/resources/available - lists
// active resources currently free to be claimed.
func (s *Server) GetAvailableResources(ctx echo.Context) error {
	pool, err := s.getAvailableHandler.Handle(
		ctx.Request().Context(),
		queries.NewGetAvailableResourcesQuery(),
	)
	if err != nil {
		return internalError(ctx, "Failed to retrieve available resources")
	}

	return ctx.JSON(http.StatusOK, availableResourcesFromQuery(pool))
}

// ArchiveResource handles POST /api/v1/resources/:kind/:id/archive.
func (s *Server) ArchiveResource(ctx echo.Context) error {
	kind, resourceID, err := resourceParams(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewArchiveResourceCommand(kind, resourceID)
	if err != nil {
		return badRequest(ctx, "Invalid archive request: "+err.Error())
	}

	if handleErr := s.archiveResourceHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RestoreResource handles POST /api/v1/resources/:kind/:id/restore.
func (s *Server) RestoreResource(ctx echo.Context) error {
	kind, resourceID, err := resourceParams(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewRestoreResourceCommand(kind, resourceID)
	if err != nil {
		return badRequest(ctx, "Invalid restore request: "+err.Error())
	}

	if handleErr := s.restoreResourceHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func resourceParams(ctx echo.Context) (kernel.ResourceKind, kernel.UUID, error) {
	kind, err := kernel.ResourceKindFromString(ctx.Param("kind"))
	if err != nil {
		return kernel.ResourceKindUnknown, kernel.UUID{}, err
	}
	resourceID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.ResourceKindUnknown, kernel.UUID{}, err
	}
	return kind, resourceID, nil
}

// domainError maps use-case failures onto HTTP statuses: missing aggregates
// become 404, workflow conflicts 409, invalid input 400, the rest 500.
func domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return writeError(ctx, http.StatusNotFound, err)
	case isConflict(err):
		return writeError(ctx, http.StatusConflict, err)
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return writeError(ctx, http.StatusBadRequest, err)
	default:
		return writeError(ctx, http.StatusInternalServerError, err)
	}
}

func isConflict(err error) bool {
	return errors.Is(err, commands.ErrDriverIsNotAvailable) ||
		errors.Is(err, commands.ErrTruckIsNotAvailable) ||
		errors.Is(err, commands.ErrTrailerIsNotAvailable) ||
		errors.Is(err, driver.ErrDriverIsBusy) ||
		errors.Is(err, truck.ErrTruckIsBusy) ||
		errors.Is(err, trailer.ErrTrailerIsBusy) ||
		errors.Is(err, order.ErrCompletionFlowRequired)
}

func writeError(ctx echo.Context, code int, err error) error {
	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, Error{Code: http.StatusInternalServerError, Message: message})
}
