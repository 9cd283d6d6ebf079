package ports

import (
	"context"
)

// UnitOfWorkFactory creates one UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a transaction boundary. Repositories obtained from it run inside
// the transaction opened by Begin.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	ShipmentRepository() ShipmentRepository
	DriverRepository() DriverRepository
	VehicleRepository() VehicleRepository
	CityRepository() CityRepository
	UserRepository() UserRepository
	ResourceRegistry() ResourceRegistry
}
