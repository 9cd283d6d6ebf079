package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"logistics/internal/adapters/in/http/api"
	"logistics/internal/core/application/authz"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ListClientShipments handles GET /api/client/shipments.
func (s *Server) ListClientShipments(c echo.Context) error {
	return s.listShipments(c, authz.ReadOwnShipments)
}

// ListDispatcherShipments handles GET /api/dispatcher/shipments.
func (s *Server) ListDispatcherShipments(c echo.Context) error {
	return s.listShipments(c, authz.ReadAssignedShipments)
}

func (s *Server) listShipments(c echo.Context, capability authz.Capability) error {
	actor, err := authorize(c, capability)
	if err != nil {
		return err
	}

	views, err := s.h.ShipmentQueries.List(c.Request().Context(), queries.NewListShipmentsQuery(actor))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, mapSlice(views, shipmentFromView))
}

// GetClientShipment handles GET /api/client/shipments/{id}.
func (s *Server) GetClientShipment(c echo.Context, id openapi_types.UUID) error {
	return s.getShipment(c, authz.ReadOwnShipments, id)
}

// GetDispatcherShipment handles GET /api/dispatcher/shipments/{id}.
func (s *Server) GetDispatcherShipment(c echo.Context, id openapi_types.UUID) error {
	return s.getShipment(c, authz.ReadAssignedShipments, id)
}

func (s *Server) getShipment(c echo.Context, capability authz.Capability, id openapi_types.UUID) error {
	actor, err := authorize(c, capability)
	if err != nil {
		return err
	}

	query, err := queries.NewGetShipmentQuery(actor, toID(id))
	if err != nil {
		return err
	}

	view, err := s.h.ShipmentQueries.Get(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, shipmentFromView(view))
}

// ReviewShipment handles PATCH /api/client/shipments/{id} - attaches the
// client's review to a delivered shipment. Only review_rating and review_text
// may be sent.
func (s *Server) ReviewShipment(c echo.Context, id openapi_types.UUID) error {
	actor, err := authorize(c, authz.ReviewShipment)
	if err != nil {
		return err
	}

	body, err := decodeReview(c.Request().Body)
	if err != nil {
		return err
	}

	rating := 0
	if body.ReviewRating != nil {
		rating = *body.ReviewRating
	}

	cmd, err := commands.NewAttachReviewCommand(actor, toID(id), rating, valueOf(body.ReviewText))
	if err != nil {
		return err
	}

	reviewed, err := s.h.AttachReview.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, shipmentFromAggregate(reviewed))
}

// decodeReview rejects unknown fields, so attempts to patch status, price or
// any other shipment field surface as BadRequest instead of being ignored.
func decodeReview(r io.Reader) (api.ReviewShipmentJSONRequestBody, error) {
	var body api.ReviewShipmentJSONRequestBody

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&body); err != nil {
		if errors.Is(err, io.EOF) {
			return body, errs.NewBadRequestError("body")
		}
		return body, errs.NewBadRequestErrorWithCause("body", err)
	}
	return body, nil
}

// DeliverShipment handles POST /api/dispatcher/shipments/{id}/deliver.
func (s *Server) DeliverShipment(c echo.Context, id openapi_types.UUID) error {
	return s.closeShipment(c, id, commands.NewDeliverShipmentCommand)
}

// DelayShipment handles POST /api/dispatcher/shipments/{id}/delay.
func (s *Server) DelayShipment(c echo.Context, id openapi_types.UUID) error {
	return s.closeShipment(c, id, commands.NewDelayShipmentCommand)
}

func (s *Server) closeShipment(
	c echo.Context,
	id openapi_types.UUID,
	newCommand func(identity.Actor, kernel.UUID) (commands.CloseShipmentCommand, error),
) error {
	actor, err := authorize(c, authz.CloseShipment)
	if err != nil {
		return err
	}

	cmd, err := newCommand(actor, toID(id))
	if err != nil {
		return err
	}

	status, err := s.h.CloseShipment.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, api.StatusResponse{Status: status.String()})
}
