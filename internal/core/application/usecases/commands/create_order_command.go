package commands

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrGoodsDescriptionIsRequired = errors.New("goods description is required")
	ErrLoadingAddressIsRequired   = errors.New("loading address is required")
	ErrUnloadingAddressIsRequired = errors.New("unloading address is required")
	ErrLoadingDateIsRequired      = errors.New("loading date is required")
	ErrPriceIsInvalid             = errors.New("price must not be negative")
)

// CreateOrderCommand represents a request to register a new transport order.
// Encapsulates the client reference, the driver/truck/trailer triplet the
// order will claim, and the shipment details.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(
//	    orderID, clientID, driverID, truckID, trailerID,
//	    order.FullLoad, "granite blocks",
//	    "Tirana", "Vienna", loadingDate, 2350,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	clientID         kernel.UUID
	driverID         kernel.UUID
	truckID          kernel.UUID
	trailerID        kernel.UUID
	transportType    order.TransportType
	goodsDescription string
	loadingAddress   string
	unloadingAddress string
	loadingDate      time.Time
	price            float64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new transport order.
// Validates identifiers, the transport type, the shipment texts, and the
// price. Returns an error if any validation fails.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	clientID kernel.UUID,
	driverID kernel.UUID,
	truckID kernel.UUID,
	trailerID kernel.UUID,
	transportType order.TransportType,
	goodsDescription string,
	loadingAddress string,
	unloadingAddress string,
	loadingDate time.Time,
	price float64,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setClientID(clientID),
		orderCommand.setResourceIDs(driverID, truckID, trailerID),
		orderCommand.setTransportType(transportType),
		orderCommand.setGoodsDescription(goodsDescription),
		orderCommand.setAddresses(loadingAddress, unloadingAddress),
		orderCommand.setLoadingDate(loadingDate),
		orderCommand.setPrice(price),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ClientID returns the identifier of the ordering client.
func (c CreateOrderCommand) ClientID() kernel.UUID {
	return c.clientID
}

// DriverID returns the identifier of the driver the order will claim.
func (c CreateOrderCommand) DriverID() kernel.UUID {
	return c.driverID
}

// TruckID returns the identifier of the truck the order will claim.
func (c CreateOrderCommand) TruckID() kernel.UUID {
	return c.truckID
}

// TrailerID returns the identifier of the trailer the order will claim.
func (c CreateOrderCommand) TrailerID() kernel.UUID {
	return c.trailerID
}

// TransportType returns whether the order is a full or partial load.
func (c CreateOrderCommand) TransportType() order.TransportType {
	return c.transportType
}

// GoodsDescription returns a free-text description of the cargo.
func (c CreateOrderCommand) GoodsDescription() string {
	return c.goodsDescription
}

// LoadingAddress returns where the cargo is picked up.
func (c CreateOrderCommand) LoadingAddress() string {
	return c.loadingAddress
}

// UnloadingAddress returns where the cargo is delivered.
func (c CreateOrderCommand) UnloadingAddress() string {
	return c.unloadingAddress
}

// LoadingDate returns the agreed pickup date.
func (c CreateOrderCommand) LoadingDate() time.Time {
	return c.loadingDate
}

// Price returns the agreed freight price.
func (c CreateOrderCommand) Price() float64 {
	return c.price
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *CreateOrderCommand) setResourceIDs(driverID, truckID, trailerID kernel.UUID) error {
	if err := errors.Join(
		driverID.Validate(),
		truckID.Validate(),
		trailerID.Validate(),
	); err != nil {
		return err
	}

	c.driverID = driverID
	c.truckID = truckID
	c.trailerID = trailerID
	return nil
}

func (c *CreateOrderCommand) setTransportType(transportType order.TransportType) error {
	if err := transportType.Validate(); err != nil {
		return err
	}

	c.transportType = transportType
	return nil
}

func (c *CreateOrderCommand) setGoodsDescription(goodsDescription string) error {
	if goodsDescription == "" {
		return ErrGoodsDescriptionIsRequired
	}

	c.goodsDescription = goodsDescription
	return nil
}

func (c *CreateOrderCommand) setAddresses(loadingAddress, unloadingAddress string) error {
	if loadingAddress == "" {
		return ErrLoadingAddressIsRequired
	}
	if unloadingAddress == "" {
		return ErrUnloadingAddressIsRequired
	}

	c.loadingAddress = loadingAddress
	c.unloadingAddress = unloadingAddress
	return nil
}

func (c *CreateOrderCommand) setLoadingDate(loadingDate time.Time) error {
	if loadingDate.IsZero() {
		return ErrLoadingDateIsRequired
	}

	c.loadingDate = loadingDate
	return nil
}

func (c *CreateOrderCommand) setPrice(price float64) error {
	if price < 0 {
		return ErrPriceIsInvalid
	}

	c.price = price
	return nil
}
