// Package postgres provides the GORM implementation of the Unit of Work.
//
// A unit of work owns one database transaction. Repositories obtained from it
// after Begin run inside that transaction, so a command that reads an order
// FOR UPDATE, reserves a driver and a vehicle and inserts a shipment commits
// or rolls back as one.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	o, err := uow.OrderRepository().GetForUpdate(ctx, id)
//	// ...
//	ok, err := uow.ResourceRegistry().TryReserveDriver(ctx, driverID)
//	// ...
//	return uow.Commit(ctx)
//
// Rollback after a successful Commit is a harmless no-op that reports
// gorm.ErrInvalidTransaction. Each goroutine needs its own unit of work.
package postgres

import (
	"context"

	"logistics/internal/adapters/out/postgres/cityrepo"
	"logistics/internal/adapters/out/postgres/fleetrepo"
	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/adapters/out/postgres/shipmentrepo"
	"logistics/internal/adapters/out/postgres/userrepo"
	"logistics/internal/core/ports"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// trackedAggregate is an aggregate written during the unit of work.
type trackedAggregate struct {
	Kind string
	ID   string
}

func (a trackedAggregate) String() string {
	return a.Kind + ":" + a.ID
}

// GormUnitOfWorkFactory creates a fresh unit of work per command.
type GormUnitOfWorkFactory struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewGormUnitOfWorkFactory(db *gorm.DB, logger *zap.Logger) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{
		db:     db,
		logger: logger.With(zap.String("component", "unit_of_work")),
	}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return f.CreateGorm()
}

// CreateGorm is Create without the interface conversion.
func (f *GormUnitOfWorkFactory) CreateGorm() *GormUnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		logger:            f.logger,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork implements ports.UnitOfWork. Written aggregates are tracked and
// logged at debug level once the transaction commits.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	logger            *zap.Logger
	trackedAggregates []trackedAggregate
}

// Begin opens the transaction. A second Begin on an open unit of work is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		return err
	}

	if written := uow.TrackedAggregates(); len(written) > 0 {
		uow.logger.Debug("unit of work committed", zap.Strings("aggregates", written))
	}
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return nil
}

func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// conn is the open transaction, or the plain connection outside Begin/Commit.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ShipmentRepository() ports.ShipmentRepository {
	return shipmentrepo.NewGormShipmentRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) DriverRepository() ports.DriverRepository {
	return fleetrepo.NewGormDriverRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) VehicleRepository() ports.VehicleRepository {
	return fleetrepo.NewGormVehicleRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) CityRepository() ports.CityRepository {
	return cityrepo.NewGormCityRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ResourceRegistry() ports.ResourceRegistry {
	return fleetrepo.NewGormResourceRegistry(uow.conn(), uow)
}

// TrackAggregate records a written aggregate. Repositories call it after each
// successful write.
func (uow *GormUnitOfWork) TrackAggregate(kind, id string) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{Kind: kind, ID: id})
}

// TrackedAggregates lists the aggregates written since Begin, as "kind:id".
func (uow *GormUnitOfWork) TrackedAggregates() []string {
	out := make([]string, 0, len(uow.trackedAggregates))
	for _, a := range uow.trackedAggregates {
		out = append(out, a.String())
	}
	return out
}
