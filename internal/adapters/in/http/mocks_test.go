package http_test

import (
	"context"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/city"
	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/core/domain/model/identity"

	"github.com/stretchr/testify/mock"
)

type MockCommandHandler[C, R any] struct{ mock.Mock }

func (m *MockCommandHandler[C, R]) Handle(ctx context.Context, cmd C) (R, error) {
	args := m.Called(ctx, cmd)
	out, _ := args.Get(0).(R)
	return out, args.Error(1)
}

type MockActorResolver struct{ mock.Mock }

func (m *MockActorResolver) Handle(ctx context.Context, key string) (identity.Actor, error) {
	args := m.Called(ctx, key)
	actor, _ := args.Get(0).(identity.Actor)
	return actor, args.Error(1)
}

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) List(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderView, error) {
	args := m.Called(ctx, query)
	views, _ := args.Get(0).([]queries.OrderView)
	return views, args.Error(1)
}

func (m *MockOrderReader) Get(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error) {
	args := m.Called(ctx, query)
	view, _ := args.Get(0).(queries.OrderView)
	return view, args.Error(1)
}

type MockShipmentReader struct{ mock.Mock }

func (m *MockShipmentReader) List(ctx context.Context, query queries.ListShipmentsQuery) ([]queries.ShipmentView, error) {
	args := m.Called(ctx, query)
	views, _ := args.Get(0).([]queries.ShipmentView)
	return views, args.Error(1)
}

func (m *MockShipmentReader) Get(ctx context.Context, query queries.GetShipmentQuery) (queries.ShipmentView, error) {
	args := m.Called(ctx, query)
	view, _ := args.Get(0).(queries.ShipmentView)
	return view, args.Error(1)
}

type MockFleetReader struct{ mock.Mock }

func (m *MockFleetReader) ListDrivers(ctx context.Context, query queries.FleetQuery) ([]queries.DriverView, error) {
	args := m.Called(ctx, query)
	views, _ := args.Get(0).([]queries.DriverView)
	return views, args.Error(1)
}

func (m *MockFleetReader) GetDriver(ctx context.Context, query queries.FleetQuery) (queries.DriverView, error) {
	args := m.Called(ctx, query)
	view, _ := args.Get(0).(queries.DriverView)
	return view, args.Error(1)
}

func (m *MockFleetReader) ListVehicles(ctx context.Context, query queries.FleetQuery) ([]queries.VehicleView, error) {
	args := m.Called(ctx, query)
	views, _ := args.Get(0).([]queries.VehicleView)
	return views, args.Error(1)
}

func (m *MockFleetReader) GetVehicle(ctx context.Context, query queries.FleetQuery) (queries.VehicleView, error) {
	args := m.Called(ctx, query)
	view, _ := args.Get(0).(queries.VehicleView)
	return view, args.Error(1)
}

type MockCityReader struct{ mock.Mock }

func (m *MockCityReader) List(ctx context.Context, query queries.CityQuery) ([]queries.CityView, error) {
	args := m.Called(ctx, query)
	views, _ := args.Get(0).([]queries.CityView)
	return views, args.Error(1)
}

func (m *MockCityReader) Get(ctx context.Context, query queries.CityQuery) (queries.CityView, error) {
	args := m.Called(ctx, query)
	view, _ := args.Get(0).(queries.CityView)
	return view, args.Error(1)
}

type MockDriverCommands struct{ mock.Mock }

func (m *MockDriverCommands) Create(ctx context.Context, cmd commands.CreateDriverCommand) (*fleet.Driver, error) {
	args := m.Called(ctx, cmd)
	d, _ := args.Get(0).(*fleet.Driver)
	return d, args.Error(1)
}

func (m *MockDriverCommands) Update(ctx context.Context, cmd commands.UpdateDriverCommand) (*fleet.Driver, error) {
	args := m.Called(ctx, cmd)
	d, _ := args.Get(0).(*fleet.Driver)
	return d, args.Error(1)
}

func (m *MockDriverCommands) Delete(ctx context.Context, cmd commands.DeleteDriverCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockVehicleCommands struct{ mock.Mock }

func (m *MockVehicleCommands) Create(ctx context.Context, cmd commands.CreateVehicleCommand) (*fleet.Vehicle, error) {
	args := m.Called(ctx, cmd)
	v, _ := args.Get(0).(*fleet.Vehicle)
	return v, args.Error(1)
}

func (m *MockVehicleCommands) Update(ctx context.Context, cmd commands.UpdateVehicleCommand) (*fleet.Vehicle, error) {
	args := m.Called(ctx, cmd)
	v, _ := args.Get(0).(*fleet.Vehicle)
	return v, args.Error(1)
}

func (m *MockVehicleCommands) Delete(ctx context.Context, cmd commands.DeleteVehicleCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockCityCommands struct{ mock.Mock }

func (m *MockCityCommands) Create(ctx context.Context, cmd commands.CreateCityCommand) (*city.City, error) {
	args := m.Called(ctx, cmd)
	c, _ := args.Get(0).(*city.City)
	return c, args.Error(1)
}

func (m *MockCityCommands) Update(ctx context.Context, cmd commands.UpdateCityCommand) (*city.City, error) {
	args := m.Called(ctx, cmd)
	c, _ := args.Get(0).(*city.City)
	return c, args.Error(1)
}

func (m *MockCityCommands) Delete(ctx context.Context, cmd commands.DeleteCityCommand) error {
	return m.Called(ctx, cmd).Error(0)
}
