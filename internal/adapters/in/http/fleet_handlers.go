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

func driverFields(body api.DriverRequest) commands.DriverFields {
	return commands.DriverFields{
		FirstName:  body.FirstName,
		LastName:   body.LastName,
		SecondName: valueOf(body.SecondName),
		Licences:   licenceClasses(body.LicenceClasses),
	}
}

func vehicleFields(body api.VehicleRequest) commands.VehicleFields {
	return commands.VehicleFields{
		TransportType: body.TransportType,
		MaxWeight:     body.MaxWeight,
		MaxVolume:     body.MaxVolume,
	}
}

// ListDrivers handles GET /api/drivers.
func (s *Server) ListDrivers(c echo.Context) error {
	actor, err := authorize(c, authz.ManageFleet)
	if err != nil {
		return err
	}

	views, err := s.h.FleetQueries.ListDrivers(c.Request().Context(), queries.NewListFleetQuery(actor))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, mapSlice(views, driverFromView))
}

// GetDriver handles GET /api/drivers/{id}.
func (s *Server) GetDriver(c echo.Context, id openapi_types.UUID) error {
	actor, err := authorize(c, authz.ManageFleet)
	if err != nil {
		return err
	}

	query, err := queries.NewGetDriverQuery(actor, toID(id))
	if err != nil {
		return err
	}

	view, err := s.h.FleetQueries.GetDriver(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, driverFromView(view))
}

// CreateDriver handles POST /api/drivers. New drivers are available.
func (s *Server) CreateDriver(c echo.Context) error {
	actor, err := authorize(c, authz.ManageFleet)
	if err != nil {
		return err
	}

	var body api.CreateDriverJSONRequestBody
	if err = c.Bind(&body); err != nil {
		return err
	}

	d, err := s.h.Drivers.Create(c.Request().Context(), commands.NewCreateDriverCommand(actor, driverFields(body)))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, driverFromAggregate(d))
}

// UpdateDriver handles PUT /api/drivers/{id}. Availability is not writable here.
func (s *Server) UpdateDriver(c echo.Context, id openapi_types.UUID) error {
	actor, err := authorize(c, authz.ManageFleet)
	if err != nil {
		return err
	}

	var body api.UpdateDriverJSONRequestBody
	if err = c.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateDriverCommand(actor, toID(id), driverFields(body))
	if err != nil {
		return err
	}

	d, err := s.h.Drivers.Update(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, driverFromAggregate(d))
}

// DeleteDriver handles DELETE /api/drivers/{id}.
func (s *Server) DeleteDriver(c echo.Context, id openapi_types.UUID) error {
	actor, err := authorize(c, authz.ManageFleet)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteDriverCommand(actor, toID(id))
	if err != nil {
		return err
	}

	if err = s.h.Drivers.Delete(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// ListVehicles handles GET /api/vehicles.
func (s *Server) ListVehicles(c echo.Context) error {
	actor, err := authorize(c, authz.ManageFleet)
	if err != nil {
		return err
	}

	views, err := s.h.FleetQueries.ListVehicles(c.Request().Context(), queries.NewListFleetQuery(actor))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, mapSlice(views, vehicleFromView))
}

// GetVehicle handles GET /api/vehicles/{plate}.
func (s *Server) GetVehicle(c echo.Context, plate string) error {
	actor, err := authorize(c, authz.ManageFleet)
	if err != nil {
		return err
	}

	query, err := queries.NewGetVehicleQuery(actor, plate)
	if err != nil {
		return err
	}

	view, err := s.h.FleetQueries.GetVehicle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, vehicleFromView(view))
}

// CreateVehicle handles POST /api/vehicles. The plate is the vehicle's identity.
func (s *Server) CreateVehicle(c echo.Context) error {
	actor, err := authorize(c, authz.ManageFleet)
	if err != nil {
		return err
	}

	var body api.CreateVehicleJSONRequestBody
	if err = c.Bind(&body); err != nil {
		return err
	}

	cmd := commands.NewCreateVehicleCommand(actor, valueOf(body.LicensePlate), vehicleFields(body))
	v, err := s.h.Vehicles.Create(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, vehicleFromAggregate(v))
}

// UpdateVehicle handles PUT /api/vehicles/{plate}. A plate in the body is
// ignored; plates cannot be changed.
func (s *Server) UpdateVehicle(c echo.Context, plate string) error {
	actor, err := authorize(c, authz.ManageFleet)
	if err != nil {
		return err
	}

	var body api.UpdateVehicleJSONRequestBody
	if err = c.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateVehicleCommand(actor, plate, vehicleFields(body))
	if err != nil {
		return err
	}

	v, err := s.h.Vehicles.Update(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, vehicleFromAggregate(v))
}

// DeleteVehicle handles DELETE /api/vehicles/{plate}.
func (s *Server) DeleteVehicle(c echo.Context, plate string) error {
	actor, err := authorize(c, authz.ManageFleet)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteVehicleCommand(actor, plate)
	if err != nil {
		return err
	}

	if err = s.h.Vehicles.Delete(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
