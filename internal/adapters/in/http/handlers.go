package http

import (
	"context"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/city"
	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/shipment"
)

// CommandHandler is satisfied by every single-operation command handler.
type CommandHandler[C, R any] interface {
	Handle(ctx context.Context, cmd C) (R, error)
}

type DriverCommands interface {
	Create(ctx context.Context, cmd commands.CreateDriverCommand) (*fleet.Driver, error)
	Update(ctx context.Context, cmd commands.UpdateDriverCommand) (*fleet.Driver, error)
	Delete(ctx context.Context, cmd commands.DeleteDriverCommand) error
}

type VehicleCommands interface {
	Create(ctx context.Context, cmd commands.CreateVehicleCommand) (*fleet.Vehicle, error)
	Update(ctx context.Context, cmd commands.UpdateVehicleCommand) (*fleet.Vehicle, error)
	Delete(ctx context.Context, cmd commands.DeleteVehicleCommand) error
}

type CityCommands interface {
	Create(ctx context.Context, cmd commands.CreateCityCommand) (*city.City, error)
	Update(ctx context.Context, cmd commands.UpdateCityCommand) (*city.City, error)
	Delete(ctx context.Context, cmd commands.DeleteCityCommand) error
}

type OrderReader interface {
	List(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderView, error)
	Get(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error)
}

type ShipmentReader interface {
	List(ctx context.Context, query queries.ListShipmentsQuery) ([]queries.ShipmentView, error)
	Get(ctx context.Context, query queries.GetShipmentQuery) (queries.ShipmentView, error)
}

type FleetReader interface {
	ListDrivers(ctx context.Context, query queries.FleetQuery) ([]queries.DriverView, error)
	GetDriver(ctx context.Context, query queries.FleetQuery) (queries.DriverView, error)
	ListVehicles(ctx context.Context, query queries.FleetQuery) ([]queries.VehicleView, error)
	GetVehicle(ctx context.Context, query queries.FleetQuery) (queries.VehicleView, error)
}

type CityReader interface {
	List(ctx context.Context, query queries.CityQuery) ([]queries.CityView, error)
	Get(ctx context.Context, query queries.CityQuery) (queries.CityView, error)
}

// ActorResolver turns a token key into the caller it belongs to.
type ActorResolver interface {
	Handle(ctx context.Context, tokenKey string) (identity.Actor, error)
}

// Handlers bundles the use cases the HTTP adapter drives.
type Handlers struct {
	Register CommandHandler[commands.RegisterUserCommand, commands.Session]
	Login    CommandHandler[commands.LoginCommand, commands.Session]

	CreateOrder   CommandHandler[commands.CreateOrderCommand, *order.Order]
	AcceptOrder   CommandHandler[commands.AcceptOrderCommand, order.Status]
	RejectOrder   CommandHandler[commands.RejectOrderCommand, order.Status]
	CloseShipment CommandHandler[commands.CloseShipmentCommand, shipment.Status]
	AttachReview  CommandHandler[commands.AttachReviewCommand, *shipment.Shipment]

	Drivers  DriverCommands
	Vehicles VehicleCommands
	Cities   CityCommands

	OrderQueries    OrderReader
	ShipmentQueries ShipmentReader
	FleetQueries    FleetReader
	CityQueries     CityReader
}
