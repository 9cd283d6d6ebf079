// Package commands contains business operations that modify system state.
// Every command follows the same shape: a validated command struct, a handler
// that checks the caller's capability, opens a unit of work, loads and mutates
// aggregates through domain methods, persists them and commits.
package commands

import (
	"context"

	"logistics/internal/core/ports"
)

// Unit of Work interfaces give each handler exactly the repositories it touches.
type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	VehicleRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
	}

	CityRepoFactory interface {
		CityRepository() ports.CityRepository
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	ResourceRegistryFactory interface {
		ResourceRegistry() ports.ResourceRegistry
	}

	// PlaceOrderUoW checks the route cities and stores a new order.
	PlaceOrderUoW interface {
		TxManager
		OrderRepoFactory
		CityRepoFactory
	}

	PlaceOrderUoWFactory interface {
		Create() PlaceOrderUoW
	}

	// UoW spans the order and shipment lifecycles: orders, shipments, the
	// resources they hold and the registry that reserves them.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().GetForUpdate(ctx, id)
	//   ok, err := uow.ResourceRegistry().TryReserveDriver(ctx, driverID)
	//   // ...
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		ShipmentRepoFactory
		DriverRepoFactory
		VehicleRepoFactory
		ResourceRegistryFactory
	}

	UoWFactory interface {
		Create() UoW
	}

	// FleetUoW manages driver and vehicle master data.
	FleetUoW interface {
		TxManager
		DriverRepoFactory
		VehicleRepoFactory
	}

	FleetUoWFactory interface {
		Create() FleetUoW
	}

	CityUoW interface {
		TxManager
		CityRepoFactory
	}

	CityUoWFactory interface {
		Create() CityUoW
	}

	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	UserUoWFactory interface {
		Create() UserUoW
	}
)
