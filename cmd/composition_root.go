package cmd

import (
	"context"

	httpadapter "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/postgres/userrepo"
	redisstore "logistics/internal/adapters/out/redis"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/jobs"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// HealthService is the name the gRPC health service reports under.
const HealthService = "logistics"

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	redis      *redis.Client
	logger     *zap.Logger
	uowFactory *postgres.GormUnitOfWorkFactory
	tokens     ports.TokenStore
}

// NewCompositionRoot wires the application. redisClient may be nil, in which
// case tokens are kept in Postgres.
func NewCompositionRoot(config Config, gormDB *gorm.DB, redisClient *redis.Client, logger *zap.Logger) CompositionRoot {
	var tokens ports.TokenStore = userrepo.NewGormTokenStore(gormDB)
	if redisClient != nil {
		tokens = redisstore.NewTokenStore(redisClient)
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		redis:      redisClient,
		logger:     logger,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, logger),
		tokens:     tokens,
	}
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterUserCommandHandler(f, c.tokens, c.config.TokenTTL)
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewLoginCommandHandler(f, c.tokens, c.config.TokenTTL)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.PlaceOrderUoWFactory = FuncPlaceOrderUoWFactory(func() commands.PlaceOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.uow(), services.NewOrderDispatcher())
}

func (c *CompositionRoot) CreateRejectOrderCommandHandler() commands.RejectOrderCommandHandler {
	return commands.NewRejectOrderCommandHandler(c.uow(), services.NewOrderDispatcher())
}

func (c *CompositionRoot) CreateCloseShipmentCommandHandler() commands.CloseShipmentCommandHandler {
	return commands.NewCloseShipmentCommandHandler(c.uow(), services.NewShipmentCloser(c.config.ReleaseResourcesOnDelay))
}

func (c *CompositionRoot) CreateAttachReviewCommandHandler() commands.AttachReviewCommandHandler {
	return commands.NewAttachReviewCommandHandler(c.uow())
}

func (c *CompositionRoot) fleetUoW() commands.FleetUoWFactory {
	return FuncFleetUoWFactory(func() commands.FleetUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateDriverCommandHandler() commands.DriverCommandHandler {
	return commands.NewDriverCommandHandler(c.fleetUoW())
}

func (c *CompositionRoot) CreateVehicleCommandHandler() commands.VehicleCommandHandler {
	return commands.NewVehicleCommandHandler(c.fleetUoW())
}

func (c *CompositionRoot) CreateCityCommandHandler() commands.CityCommandHandler {
	var f commands.CityUoWFactory = FuncCityUoWFactory(func() commands.CityUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCityCommandHandler(f)
}

func (c *CompositionRoot) CreateResolveActorQueryHandler() queries.ResolveActorQueryHandler {
	return queries.NewResolveActorQueryHandler(c.tokens, c.gormDB)
}

// CreateHTTPHandlers bundles every use case the REST adapter serves.
func (c *CompositionRoot) CreateHTTPHandlers() httpadapter.Handlers {
	return httpadapter.Handlers{
		Register:        c.CreateRegisterUserCommandHandler(),
		Login:           c.CreateLoginCommandHandler(),
		CreateOrder:     c.CreateCreateOrderCommandHandler(),
		AcceptOrder:     c.CreateAcceptOrderCommandHandler(),
		RejectOrder:     c.CreateRejectOrderCommandHandler(),
		CloseShipment:   c.CreateCloseShipmentCommandHandler(),
		AttachReview:    c.CreateAttachReviewCommandHandler(),
		Drivers:         c.CreateDriverCommandHandler(),
		Vehicles:        c.CreateVehicleCommandHandler(),
		Cities:          c.CreateCityCommandHandler(),
		OrderQueries:    queries.NewOrderQueryHandler(c.gormDB),
		ShipmentQueries: queries.NewShipmentQueryHandler(c.gormDB),
		FleetQueries:    queries.NewFleetQueryHandler(c.gormDB),
		CityQueries:     queries.NewCityQueryHandler(c.gormDB),
	}
}

// CreateJobManager schedules the background jobs. health receives the result
// of every dependency probe.
func (c *CompositionRoot) CreateJobManager(health jobs.HealthStatusSetter) (*jobs.JobManager, error) {
	sqlDB, err := c.gormDB.DB()
	if err != nil {
		return nil, err
	}

	probes := map[string]jobs.Probe{
		"postgres": sqlDB.PingContext,
	}
	if c.redis != nil {
		probes["redis"] = func(ctx context.Context) error {
			return c.redis.Ping(ctx).Err()
		}
	}

	return jobs.NewJobManager(
		jobs.NewTokenCleanupJob(c.tokens, c.config.TokenCleanupSchedule, c.logger),
		jobs.NewOverdueShipmentsReportJob(
			queries.NewOverdueShipmentsQueryHandler(c.gormDB),
			c.config.OverdueReportSchedule,
			c.logger,
		),
		jobs.NewHealthProbeJob(HealthService, probes, health, c.config.HealthProbeSchedule, c.logger),
	), nil
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncPlaceOrderUoWFactory func() commands.PlaceOrderUoW

func (f FuncPlaceOrderUoWFactory) Create() commands.PlaceOrderUoW {
	return f()
}

type FuncFleetUoWFactory func() commands.FleetUoW

func (f FuncFleetUoWFactory) Create() commands.FleetUoW {
	return f()
}

type FuncCityUoWFactory func() commands.CityUoW

func (f FuncCityUoWFactory) Create() commands.CityUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
