package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand finishes an order with the distances actually driven.
// Carries the domestic and international kilometres and whether the fuel
// cost estimate should be skipped for this order.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	kmDomestic      float64
	kmInternational float64
	skipFuel        bool

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command to complete an order.
// Distances must not be negative; either may be zero.
func NewCompleteOrderCommand(
	orderID kernel.UUID,
	kmDomestic float64,
	kmInternational float64,
	skipFuel bool,
) (CompleteOrderCommand, error) {
	completeCommand := CompleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		completeCommand.setOrderID(orderID),
		completeCommand.setDistances(kmDomestic, kmInternational),
	); err != nil {
		return CompleteOrderCommand{}, err
	}

	completeCommand.skipFuel = skipFuel
	return completeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to complete.
func (c CompleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// KmDomestic returns the kilometres driven domestically.
func (c CompleteOrderCommand) KmDomestic() float64 {
	return c.kmDomestic
}

// KmInternational returns the kilometres driven internationally.
func (c CompleteOrderCommand) KmInternational() float64 {
	return c.kmInternational
}

// SkipFuel reports whether the fuel cost estimate is skipped for this order.
func (c CompleteOrderCommand) SkipFuel() bool {
	return c.skipFuel
}

func (c *CompleteOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CompleteOrderCommand) setDistances(kmDomestic, kmInternational float64) error {
	if kmDomestic < 0 {
		return errs.NewValueIsInvalidError("kmDomestic")
	}
	if kmInternational < 0 {
		return errs.NewValueIsInvalidError("kmInternational")
	}

	c.kmDomestic = kmDomestic
	c.kmInternational = kmInternational
	return nil
}
