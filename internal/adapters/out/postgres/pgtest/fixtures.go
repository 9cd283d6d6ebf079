package pgtest

import (
	"context"
	"fmt"
	"time"

	"logistics/internal/adapters/out/postgres/cityrepo"
	"logistics/internal/adapters/out/postgres/fleetrepo"
	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/adapters/out/postgres/userrepo"
	"logistics/internal/core/domain/model/city"
	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Fixtures inserts the rows that orders and shipments point at, so tests of
// one table do not trip the foreign keys of another.
type Fixtures struct {
	db *gorm.DB
}

func NewFixtures(db *gorm.DB) Fixtures {
	return Fixtures{db: db}
}

type nopTracker struct{}

func (nopTracker) TrackAggregate(string, string) {}

// User stores a user with the given role and returns it as an actor.
func (f Fixtures) User(ctx context.Context, role identity.Role) (identity.Actor, error) {
	id := kernel.NewUUID()
	u, err := identity.NewUser(id, id.String()+"@example.com", role.String()+"-"+id.String()[:8],
		"$2a$10$fixture", role, "", "")
	if err != nil {
		return identity.Actor{}, err
	}

	if err = userrepo.NewGormUserRepository(f.db, nopTracker{}).Add(ctx, u); err != nil {
		return identity.Actor{}, err
	}

	return u.Actor(), nil
}

func (f Fixtures) City(ctx context.Context, name string) (*city.City, error) {
	coordinates, err := kernel.NewCoordinates(decimal.RequireFromString("48.8566"), decimal.RequireFromString("2.3522"))
	if err != nil {
		return nil, err
	}

	c, err := city.NewCity(kernel.NewUUID(), name, coordinates)
	if err != nil {
		return nil, err
	}

	return c, cityrepo.NewGormCityRepository(f.db, nopTracker{}).Add(ctx, c)
}

func (f Fixtures) Driver(ctx context.Context) (*fleet.Driver, error) {
	d, err := fleet.NewDriver(kernel.NewUUID(), "Jean", "Dupont", "", []fleet.LicenceClass{fleet.LicenceCE})
	if err != nil {
		return nil, err
	}

	return d, fleetrepo.NewGormDriverRepository(f.db, nopTracker{}).Add(ctx, d)
}

func (f Fixtures) Vehicle(ctx context.Context, plate string) (*fleet.Vehicle, error) {
	v, err := fleet.NewVehicle(plate, "TRK", 12000, 40)
	if err != nil {
		return nil, err
	}

	return v, fleetrepo.NewGormVehicleRepository(f.db, nopTracker{}).Add(ctx, v)
}

// Order stores a Pending order placed by client between two new cities.
func (f Fixtures) Order(ctx context.Context, client identity.Actor) (*order.Order, error) {
	from, err := f.City(ctx, "Paris")
	if err != nil {
		return nil, fmt.Errorf("city from: %w", err)
	}

	to, err := f.City(ctx, "Lyon")
	if err != nil {
		return nil, fmt.Errorf("city to: %w", err)
	}

	weight, err := kernel.NewAmount("weight", decimal.RequireFromString("10.5"))
	if err != nil {
		return nil, err
	}

	volume, err := kernel.NewAmount("volume", decimal.RequireFromString("2.125"))
	if err != nil {
		return nil, err
	}

	o, err := order.NewOrder(kernel.NewUUID(), client.ID(), weight, volume, from.ID(), to.ID(), time.Now())
	if err != nil {
		return nil, err
	}

	return o, orderrepo.NewGormOrderRepository(f.db, nopTracker{}).Add(ctx, o)
}
