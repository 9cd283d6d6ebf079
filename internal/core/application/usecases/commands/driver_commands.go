package commands

import (
	"errors"

	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrDriverCommandIsNotConstructed = errors.New("driver command must be created via its constructor")

// DriverFields is the editable master data of a driver.
type DriverFields struct {
	FirstName  string
	LastName   string
	SecondName string
	Licences   []fleet.LicenceClass
}

type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	actor  identity.Actor
	fields DriverFields

	guard guard.ConstructorGuard
}

func NewCreateDriverCommand(actor identity.Actor, fields DriverFields) CreateDriverCommand {
	return CreateDriverCommand{actor: actor, fields: fields, guard: guard.NewConstructorGuard()}
}

func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrDriverCommandIsNotConstructed)
}

func (c CreateDriverCommand) Actor() identity.Actor {
	return c.actor
}

func (c CreateDriverCommand) Fields() DriverFields {
	return c.fields
}

type UpdateDriverCommand struct { //nolint:recvcheck //using for validation
	actor    identity.Actor
	driverID kernel.UUID
	fields   DriverFields

	guard guard.ConstructorGuard
}

func NewUpdateDriverCommand(actor identity.Actor, driverID kernel.UUID, fields DriverFields) (UpdateDriverCommand, error) {
	if err := driverID.Validate(); err != nil {
		return UpdateDriverCommand{}, err
	}
	return UpdateDriverCommand{actor: actor, driverID: driverID, fields: fields, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateDriverCommand) Validate() error {
	return c.guard.Validate(ErrDriverCommandIsNotConstructed)
}

func (c UpdateDriverCommand) Actor() identity.Actor {
	return c.actor
}

func (c UpdateDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c UpdateDriverCommand) Fields() DriverFields {
	return c.fields
}

type DeleteDriverCommand struct { //nolint:recvcheck //using for validation
	actor    identity.Actor
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteDriverCommand(actor identity.Actor, driverID kernel.UUID) (DeleteDriverCommand, error) {
	if err := driverID.Validate(); err != nil {
		return DeleteDriverCommand{}, err
	}
	return DeleteDriverCommand{actor: actor, driverID: driverID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteDriverCommand) Validate() error {
	return c.guard.Validate(ErrDriverCommandIsNotConstructed)
}

func (c DeleteDriverCommand) Actor() identity.Actor {
	return c.actor
}

func (c DeleteDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}
