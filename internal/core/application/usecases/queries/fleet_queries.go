package queries

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrFleetQueryIsNotConstructed = errors.New(
	"FleetQuery must be created via one of the New*Query fleet constructors",
)

// FleetQuery reads driver and vehicle master data. Exactly one of driverID and
// plate is set for a single-record read; neither for a list.
type FleetQuery struct {
	actor    identity.Actor
	driverID *kernel.UUID
	plate    string
	guard    guard.ConstructorGuard
}

func NewListFleetQuery(actor identity.Actor) FleetQuery {
	return FleetQuery{actor: actor, guard: guard.NewConstructorGuard()}
}

func NewGetDriverQuery(actor identity.Actor, driverID kernel.UUID) (FleetQuery, error) {
	if err := driverID.Validate(); err != nil {
		return FleetQuery{}, err
	}
	return FleetQuery{actor: actor, driverID: &driverID, guard: guard.NewConstructorGuard()}, nil
}

func NewGetVehicleQuery(actor identity.Actor, plate string) (FleetQuery, error) {
	plate = strings.TrimSpace(plate)
	if plate == "" {
		return FleetQuery{}, errs.NewValueIsRequiredError("license_plate")
	}
	return FleetQuery{actor: actor, plate: plate, guard: guard.NewConstructorGuard()}, nil
}

func (q FleetQuery) Validate() error {
	return q.guard.Validate(ErrFleetQueryIsNotConstructed)
}

func (q FleetQuery) Actor() identity.Actor {
	return q.actor
}

// DriverView is the read model of a driver.
type DriverView struct {
	ID          kernel.UUID
	FirstName   string
	LastName    string
	SecondName  string
	Licences    []fleet.LicenceClass
	IsAvailable bool
}

// VehicleView is the read model of a vehicle.
type VehicleView struct {
	LicensePlate  string
	TransportType string
	MaxWeight     int
	MaxVolume     int
	IsAvailable   bool
}
