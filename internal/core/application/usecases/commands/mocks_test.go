package commands_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/city"
	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, d *fleet.Driver) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDriverRepository) Update(ctx context.Context, d *fleet.Driver) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDriverRepository) Get(ctx context.Context, id kernel.UUID) (*fleet.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fleet.Driver), args.Error(1)
}

func (m *MockDriverRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockVehicleRepository struct{ mock.Mock }

func (m *MockVehicleRepository) Add(ctx context.Context, v *fleet.Vehicle) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockVehicleRepository) Update(ctx context.Context, v *fleet.Vehicle) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockVehicleRepository) Get(ctx context.Context, plate string) (*fleet.Vehicle, error) {
	args := m.Called(ctx, plate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fleet.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) Delete(ctx context.Context, plate string) error {
	return m.Called(ctx, plate).Error(0)
}

type MockCityRepository struct{ mock.Mock }

func (m *MockCityRepository) Add(ctx context.Context, c *city.City) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCityRepository) Update(ctx context.Context, c *city.City) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCityRepository) Get(ctx context.Context, id kernel.UUID) (*city.City, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*city.City), args.Error(1)
}

func (m *MockCityRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *identity.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

type MockResourceRegistry struct{ mock.Mock }

func (m *MockResourceRegistry) TryReserveDriver(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockResourceRegistry) TryReserveVehicle(ctx context.Context, plate string) (bool, error) {
	args := m.Called(ctx, plate)
	return args.Bool(0), args.Error(1)
}

func (m *MockResourceRegistry) ReleaseDriver(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockResourceRegistry) ReleaseVehicle(ctx context.Context, plate string) error {
	return m.Called(ctx, plate).Error(0)
}

type MockTokenStore struct{ mock.Mock }

func (m *MockTokenStore) Save(ctx context.Context, token identity.Token) error {
	return m.Called(ctx, token).Error(0)
}

func (m *MockTokenStore) Lookup(ctx context.Context, key string, now time.Time) (identity.Token, error) {
	args := m.Called(ctx, key, now)
	return args.Get(0).(identity.Token), args.Error(1)
}

func (m *MockTokenStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

// MockUoW satisfies every unit of work interface of the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	return m.Called().Get(0).(ports.ShipmentRepository)
}

func (m *MockUoW) DriverRepository() ports.DriverRepository {
	return m.Called().Get(0).(ports.DriverRepository)
}

func (m *MockUoW) VehicleRepository() ports.VehicleRepository {
	return m.Called().Get(0).(ports.VehicleRepository)
}

func (m *MockUoW) CityRepository() ports.CityRepository {
	return m.Called().Get(0).(ports.CityRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	return m.Called().Get(0).(ports.UserRepository)
}

func (m *MockUoW) ResourceRegistry() ports.ResourceRegistry {
	return m.Called().Get(0).(ports.ResourceRegistry)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	return m.Called().Get(0).(commands.UoW)
}

type MockPlaceOrderUoWFactory struct{ mock.Mock }

func (m *MockPlaceOrderUoWFactory) Create() commands.PlaceOrderUoW {
	return m.Called().Get(0).(commands.PlaceOrderUoW)
}

type MockFleetUoWFactory struct{ mock.Mock }

func (m *MockFleetUoWFactory) Create() commands.FleetUoW {
	return m.Called().Get(0).(commands.FleetUoW)
}

type MockCityUoWFactory struct{ mock.Mock }

func (m *MockCityUoWFactory) Create() commands.CityUoW {
	return m.Called().Get(0).(commands.CityUoW)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	return m.Called().Get(0).(commands.UserUoW)
}

func newActor(t *testing.T, role identity.Role) identity.Actor {
	t.Helper()
	a, err := identity.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return a
}

func newAmount(t *testing.T, name, v string) kernel.Amount {
	t.Helper()
	a, err := kernel.NewAmount(name, decimal.RequireFromString(v))
	require.NoError(t, err)
	return a
}

func newPendingOrder(t *testing.T, clientID kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), clientID, newAmount(t, "weight", "10.5"),
		newAmount(t, "volume", "2"), kernel.NewUUID(), kernel.NewUUID(), time.Now())
	require.NoError(t, err)
	return o
}

func newDriver(t *testing.T) *fleet.Driver {
	t.Helper()
	d, err := fleet.NewDriver(kernel.NewUUID(), "Jean", "Dupont", "", []fleet.LicenceClass{fleet.LicenceC})
	require.NoError(t, err)
	return d
}

func newVehicle(t *testing.T) *fleet.Vehicle {
	t.Helper()
	v, err := fleet.NewVehicle("AB123CD", "TRK", 20000, 80)
	require.NoError(t, err)
	return v
}

// newShipmentFor accepts o for dispatcher and returns the shipment that came out of it.
func newShipmentFor(t *testing.T, o *order.Order, dispatcher kernel.UUID) *shipment.Shipment {
	t.Helper()
	require.NoError(t, o.Accept(dispatcher))
	s, err := shipment.NewShipment(kernel.NewUUID(), o.ID(), kernel.NewUUID(), "AB123CD",
		time.Now().Add(24*time.Hour), newAmount(t, "price", "150"))
	require.NoError(t, err)
	return s
}
