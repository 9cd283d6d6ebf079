package http

import (
	"net/http"

	"logistics/internal/adapters/in/http/api"
	"logistics/internal/core/application/authz"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ListClientOrders handles GET /api/client/orders - orders placed by the caller.
func (s *Server) ListClientOrders(c echo.Context) error {
	return s.listOrders(c, authz.ReadOwnOrders)
}

// ListDispatcherOrders handles GET /api/dispatcher/orders - the pending queue
// plus orders the caller decided.
func (s *Server) ListDispatcherOrders(c echo.Context) error {
	return s.listOrders(c, authz.ReadOrderQueue)
}

func (s *Server) listOrders(c echo.Context, capability authz.Capability) error {
	actor, err := authorize(c, capability)
	if err != nil {
		return err
	}

	views, err := s.h.OrderQueries.List(c.Request().Context(), queries.NewListOrdersQuery(actor))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, mapSlice(views, orderFromView))
}

// GetClientOrder handles GET /api/client/orders/{id}.
func (s *Server) GetClientOrder(c echo.Context, id openapi_types.UUID) error {
	return s.getOrder(c, authz.ReadOwnOrders, id)
}

// GetDispatcherOrder handles GET /api/dispatcher/orders/{id}.
func (s *Server) GetDispatcherOrder(c echo.Context, id openapi_types.UUID) error {
	return s.getOrder(c, authz.ReadOrderQueue, id)
}

func (s *Server) getOrder(c echo.Context, capability authz.Capability, id openapi_types.UUID) error {
	actor, err := authorize(c, capability)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(actor, toID(id))
	if err != nil {
		return err
	}

	view, err := s.h.OrderQueries.Get(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, orderFromView(view))
}

// CreateOrder handles POST /api/client/orders - places a Pending order.
func (s *Server) CreateOrder(c echo.Context) error {
	actor, err := authorize(c, authz.PlaceOrder)
	if err != nil {
		return err
	}

	var body api.CreateOrderJSONRequestBody
	if err = c.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewCreateOrderCommand(actor, body.Weight, body.Volume, toID(body.CityFrom), toID(body.CityTo))
	if err != nil {
		return err
	}

	o, err := s.h.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, orderFromAggregate(o))
}

// AcceptOrder handles POST /api/dispatcher/orders/{id}/accept - confirms the
// order, reserves the driver and vehicle and creates the shipment.
func (s *Server) AcceptOrder(c echo.Context, id openapi_types.UUID) error {
	actor, err := authorize(c, authz.DecideOrder)
	if err != nil {
		return err
	}

	var body api.AcceptOrderJSONRequestBody
	if err = c.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewAcceptOrderCommand(
		actor,
		toID(id),
		toID(body.Driver),
		body.Vehicle,
		body.ArrivalTime,
		body.Price,
	)
	if err != nil {
		return err
	}

	status, err := s.h.AcceptOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, api.StatusResponse{Status: status.String()})
}

// RejectOrder handles POST /api/dispatcher/orders/{id}/reject - cancels a Pending order.
func (s *Server) RejectOrder(c echo.Context, id openapi_types.UUID) error {
	actor, err := authorize(c, authz.DecideOrder)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRejectOrderCommand(actor, toID(id))
	if err != nil {
		return err
	}

	status, err := s.h.RejectOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, api.StatusResponse{Status: status.String()})
}
