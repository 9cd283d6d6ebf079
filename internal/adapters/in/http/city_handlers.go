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

func cityFields(body api.CityRequest) commands.CityFields {
	return commands.CityFields{
		Name:      body.CityName,
		Latitude:  body.Latitude,
		Longitude: body.Longitude,
	}
}

// ListCities handles GET /api/cities. Clients may read cities to place orders.
func (s *Server) ListCities(c echo.Context) error {
	actor, err := authorize(c, authz.ReadCities)
	if err != nil {
		return err
	}

	views, err := s.h.CityQueries.List(c.Request().Context(), queries.NewListCitiesQuery(actor))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, mapSlice(views, cityFromView))
}

// GetCity handles GET /api/cities/{id}.
func (s *Server) GetCity(c echo.Context, id openapi_types.UUID) error {
	actor, err := authorize(c, authz.ReadCities)
	if err != nil {
		return err
	}

	query, err := queries.NewGetCityQuery(actor, toID(id))
	if err != nil {
		return err
	}

	view, err := s.h.CityQueries.Get(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, cityFromView(view))
}

// CreateCity handles POST /api/cities.
func (s *Server) CreateCity(c echo.Context) error {
	actor, err := authorize(c, authz.ManageCities)
	if err != nil {
		return err
	}

	var body api.CreateCityJSONRequestBody
	if err = c.Bind(&body); err != nil {
		return err
	}

	created, err := s.h.Cities.Create(c.Request().Context(), commands.NewCreateCityCommand(actor, cityFields(body)))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, cityFromAggregate(created))
}

// UpdateCity handles PUT /api/cities/{id}.
func (s *Server) UpdateCity(c echo.Context, id openapi_types.UUID) error {
	actor, err := authorize(c, authz.ManageCities)
	if err != nil {
		return err
	}

	var body api.UpdateCityJSONRequestBody
	if err = c.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateCityCommand(actor, toID(id), cityFields(body))
	if err != nil {
		return err
	}

	updated, err := s.h.Cities.Update(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, cityFromAggregate(updated))
}

// DeleteCity handles DELETE /api/cities/{id}. Cities used by orders are kept.
func (s *Server) DeleteCity(c echo.Context, id openapi_types.UUID) error {
	actor, err := authorize(c, authz.ManageCities)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteCityCommand(actor, toID(id))
	if err != nil {
		return err
	}

	if err = s.h.Cities.Delete(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
