// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"logistics/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DriverRepoFactory provides access to driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// TruckRepoFactory provides access to truck repository within a transaction.
	TruckRepoFactory interface {
		TruckRepository() ports.TruckRepository
	}

	// TrailerRepoFactory provides access to trailer repository within a transaction.
	TrailerRepoFactory interface {
		TrailerRepository() ports.TrailerRepository
	}

	// ClientRepoFactory provides access to client repository within a transaction.
	ClientRepoFactory interface {
		ClientRepository() ports.ClientRepository
	}

	// ClientUoW manages transactions for client-only operations.
	ClientUoW interface {
		TxManager
		ClientRepoFactory
	}

	// ClientUoWFactory creates new client unit of work instances.
	ClientUoWFactory interface {
		Create() ClientUoW
	}

	// DriverUoW manages transactions for driver-only operations.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	// DriverUoWFactory creates new driver unit of work instances.
	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// TruckUoW manages transactions for truck-only operations.
	TruckUoW interface {
		TxManager
		TruckRepoFactory
	}

	// TruckUoWFactory creates new truck unit of work instances.
	TruckUoWFactory interface {
		Create() TruckUoW
	}

	// TrailerUoW manages transactions for trailer-only operations.
	TrailerUoW interface {
		TxManager
		TrailerRepoFactory
	}

	// TrailerUoWFactory creates new trailer unit of work instances.
	TrailerUoWFactory interface {
		Create() TrailerUoW
	}

	// ResourceUoW manages transactions spanning the three schedulable
	// resource types. Used by archive, restore, and other commands that
	// address a resource by kind at runtime.
	ResourceUoW interface {
		TxManager
		DriverRepoFactory
		TruckRepoFactory
		TrailerRepoFactory
	}

	// ResourceUoWFactory creates new resource unit of work instances.
	ResourceUoWFactory interface {
		Create() ResourceUoW
	}

	// OrderUoW manages transactions for order lifecycle operations.
	// Every lifecycle transition writes the order row and the availability
	// rows of its driver, truck, and trailer in one transaction.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		DriverRepoFactory
		TruckRepoFactory
		TrailerRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW manages transactions across every aggregate type.
	// Used by order creation, which also reads the client reference.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   driverRepo := uow.DriverRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		DriverRepoFactory
		TruckRepoFactory
		TrailerRepoFactory
		ClientRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
