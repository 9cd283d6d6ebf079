package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (POST /api/register)
	Register(ctx echo.Context) error
	// (POST /api/login)
	Login(ctx echo.Context) error

	// (GET /api/client/orders)
	ListClientOrders(ctx echo.Context) error
	// (POST /api/client/orders)
	CreateOrder(ctx echo.Context) error
	// (GET /api/client/orders/{id})
	GetClientOrder(ctx echo.Context, id openapi_types.UUID) error

	// (GET /api/client/shipments)
	ListClientShipments(ctx echo.Context) error
	// (GET /api/client/shipments/{id})
	GetClientShipment(ctx echo.Context, id openapi_types.UUID) error
	// (PATCH /api/client/shipments/{id})
	ReviewShipment(ctx echo.Context, id openapi_types.UUID) error

	// (GET /api/dispatcher/orders)
	ListDispatcherOrders(ctx echo.Context) error
	// (GET /api/dispatcher/orders/{id})
	GetDispatcherOrder(ctx echo.Context, id openapi_types.UUID) error
	// (POST /api/dispatcher/orders/{id}/accept)
	AcceptOrder(ctx echo.Context, id openapi_types.UUID) error
	// (POST /api/dispatcher/orders/{id}/reject)
	RejectOrder(ctx echo.Context, id openapi_types.UUID) error

	// (GET /api/dispatcher/shipments)
	ListDispatcherShipments(ctx echo.Context) error
	// (GET /api/dispatcher/shipments/{id})
	GetDispatcherShipment(ctx echo.Context, id openapi_types.UUID) error
	// (POST /api/dispatcher/shipments/{id}/deliver)
	DeliverShipment(ctx echo.Context, id openapi_types.UUID) error
	// (POST /api/dispatcher/shipments/{id}/delay)
	DelayShipment(ctx echo.Context, id openapi_types.UUID) error

	// (GET /api/drivers)
	ListDrivers(ctx echo.Context) error
	// (POST /api/drivers)
	CreateDriver(ctx echo.Context) error
	// (GET /api/drivers/{id})
	GetDriver(ctx echo.Context, id openapi_types.UUID) error
	// (PUT /api/drivers/{id})
	UpdateDriver(ctx echo.Context, id openapi_types.UUID) error
	// (DELETE /api/drivers/{id})
	DeleteDriver(ctx echo.Context, id openapi_types.UUID) error

	// (GET /api/vehicles)
	ListVehicles(ctx echo.Context) error
	// (POST /api/vehicles)
	CreateVehicle(ctx echo.Context) error
	// (GET /api/vehicles/{plate})
	GetVehicle(ctx echo.Context, plate string) error
	// (PUT /api/vehicles/{plate})
	UpdateVehicle(ctx echo.Context, plate string) error
	// (DELETE /api/vehicles/{plate})
	DeleteVehicle(ctx echo.Context, plate string) error

	// (GET /api/cities)
	ListCities(ctx echo.Context) error
	// (POST /api/cities)
	CreateCity(ctx echo.Context) error
	// (GET /api/cities/{id})
	GetCity(ctx echo.Context, id openapi_types.UUID) error
	// (PUT /api/cities/{id})
	UpdateCity(ctx echo.Context, id openapi_types.UUID) error
	// (DELETE /api/cities/{id})
	DeleteCity(ctx echo.Context, id openapi_types.UUID) error
}

func bindID(ctx echo.Context) (openapi_types.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}
	return id, nil
}

func bindPlate(ctx echo.Context) (string, error) {
	var plate string
	err := runtime.BindStyledParameterWithOptions("simple", "plate", ctx.Param("plate"), &plate,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return plate, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter plate: %s", err))
	}
	return plate, nil
}

// withID binds the "id" path parameter and invokes h with it.
func withID(h func(echo.Context, openapi_types.UUID) error) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		id, err := bindID(ctx)
		if err != nil {
			return err
		}
		return h(ctx, id)
	}
}

// withPlate binds the "plate" path parameter and invokes h with it.
func withPlate(h func(echo.Context, string) error) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		plate, err := bindPlate(ctx)
		if err != nil {
			return err
		}
		return h(ctx, plate)
	}
}

// EchoRouter is the subset of echo routing used to register the operations.
// Both *echo.Echo and *echo.Group satisfy it.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the
// paths, so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	router.POST(baseURL+"/api/register", si.Register)
	router.POST(baseURL+"/api/login", si.Login)

	router.GET(baseURL+"/api/client/orders", si.ListClientOrders)
	router.POST(baseURL+"/api/client/orders", si.CreateOrder)
	router.GET(baseURL+"/api/client/orders/:id", withID(si.GetClientOrder))

	router.GET(baseURL+"/api/client/shipments", si.ListClientShipments)
	router.GET(baseURL+"/api/client/shipments/:id", withID(si.GetClientShipment))
	router.PATCH(baseURL+"/api/client/shipments/:id", withID(si.ReviewShipment))

	router.GET(baseURL+"/api/dispatcher/orders", si.ListDispatcherOrders)
	router.GET(baseURL+"/api/dispatcher/orders/:id", withID(si.GetDispatcherOrder))
	router.POST(baseURL+"/api/dispatcher/orders/:id/accept", withID(si.AcceptOrder))
	router.POST(baseURL+"/api/dispatcher/orders/:id/reject", withID(si.RejectOrder))

	router.GET(baseURL+"/api/dispatcher/shipments", si.ListDispatcherShipments)
	router.GET(baseURL+"/api/dispatcher/shipments/:id", withID(si.GetDispatcherShipment))
	router.POST(baseURL+"/api/dispatcher/shipments/:id/deliver", withID(si.DeliverShipment))
	router.POST(baseURL+"/api/dispatcher/shipments/:id/delay", withID(si.DelayShipment))

	router.GET(baseURL+"/api/drivers", si.ListDrivers)
	router.POST(baseURL+"/api/drivers", si.CreateDriver)
	router.GET(baseURL+"/api/drivers/:id", withID(si.GetDriver))
	router.PUT(baseURL+"/api/drivers/:id", withID(si.UpdateDriver))
	router.DELETE(baseURL+"/api/drivers/:id", withID(si.DeleteDriver))

	router.GET(baseURL+"/api/vehicles", si.ListVehicles)
	router.POST(baseURL+"/api/vehicles", si.CreateVehicle)
	router.GET(baseURL+"/api/vehicles/:plate", withPlate(si.GetVehicle))
	router.PUT(baseURL+"/api/vehicles/:plate", withPlate(si.UpdateVehicle))
	router.DELETE(baseURL+"/api/vehicles/:plate", withPlate(si.DeleteVehicle))

	router.GET(baseURL+"/api/cities", si.ListCities)
	router.POST(baseURL+"/api/cities", si.CreateCity)
	router.GET(baseURL+"/api/cities/:id", withID(si.GetCity))
	router.PUT(baseURL+"/api/cities/:id", withID(si.UpdateCity))
	router.DELETE(baseURL+"/api/cities/:id", withID(si.DeleteCity))
}
