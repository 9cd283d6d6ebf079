package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrVehicleCommandIsNotConstructed = errors.New("vehicle command must be created via its constructor")

// VehicleFields is the editable specification of a vehicle.
type VehicleFields struct {
	TransportType string
	MaxWeight     int
	MaxVolume     int
}

type CreateVehicleCommand struct { //nolint:recvcheck //using for validation
	actor  identity.Actor
	plate  string
	fields VehicleFields

	guard guard.ConstructorGuard
}

func NewCreateVehicleCommand(actor identity.Actor, plate string, fields VehicleFields) CreateVehicleCommand {
	return CreateVehicleCommand{actor: actor, plate: plate, fields: fields, guard: guard.NewConstructorGuard()}
}

func (c CreateVehicleCommand) Validate() error {
	return c.guard.Validate(ErrVehicleCommandIsNotConstructed)
}

func (c CreateVehicleCommand) Actor() identity.Actor {
	return c.actor
}

func (c CreateVehicleCommand) Plate() string {
	return c.plate
}

func (c CreateVehicleCommand) Fields() VehicleFields {
	return c.fields
}

type UpdateVehicleCommand struct { //nolint:recvcheck //using for validation
	actor  identity.Actor
	plate  string
	fields VehicleFields

	guard guard.ConstructorGuard
}

func NewUpdateVehicleCommand(actor identity.Actor, plate string, fields VehicleFields) (UpdateVehicleCommand, error) {
	if err := requirePlate(plate); err != nil {
		return UpdateVehicleCommand{}, err
	}
	return UpdateVehicleCommand{actor: actor, plate: plate, fields: fields, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateVehicleCommand) Validate() error {
	return c.guard.Validate(ErrVehicleCommandIsNotConstructed)
}

func (c UpdateVehicleCommand) Actor() identity.Actor {
	return c.actor
}

func (c UpdateVehicleCommand) Plate() string {
	return c.plate
}

func (c UpdateVehicleCommand) Fields() VehicleFields {
	return c.fields
}

type DeleteVehicleCommand struct { //nolint:recvcheck //using for validation
	actor identity.Actor
	plate string

	guard guard.ConstructorGuard
}

func NewDeleteVehicleCommand(actor identity.Actor, plate string) (DeleteVehicleCommand, error) {
	if err := requirePlate(plate); err != nil {
		return DeleteVehicleCommand{}, err
	}
	return DeleteVehicleCommand{actor: actor, plate: plate, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteVehicleCommand) Validate() error {
	return c.guard.Validate(ErrVehicleCommandIsNotConstructed)
}

func (c DeleteVehicleCommand) Actor() identity.Actor {
	return c.actor
}

func (c DeleteVehicleCommand) Plate() string {
	return c.plate
}

func requirePlate(plate string) error {
	if strings.TrimSpace(plate) == "" {
		return errs.NewValueIsRequiredError("license_plate")
	}
	return nil
}
