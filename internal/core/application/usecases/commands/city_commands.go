package commands

import (
	"errors"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCityCommandIsNotConstructed = errors.New("city command must be created via its constructor")

// CityFields is the editable data of a city.
type CityFields struct {
	Name      string
	Latitude  decimal.Decimal
	Longitude decimal.Decimal
}

func (f CityFields) coordinates() (kernel.Coordinates, error) {
	return kernel.NewCoordinates(f.Latitude, f.Longitude)
}

type CreateCityCommand struct { //nolint:recvcheck //using for validation
	actor  identity.Actor
	fields CityFields

	guard guard.ConstructorGuard
}

func NewCreateCityCommand(actor identity.Actor, fields CityFields) CreateCityCommand {
	return CreateCityCommand{actor: actor, fields: fields, guard: guard.NewConstructorGuard()}
}

func (c CreateCityCommand) Validate() error {
	return c.guard.Validate(ErrCityCommandIsNotConstructed)
}

func (c CreateCityCommand) Actor() identity.Actor {
	return c.actor
}

func (c CreateCityCommand) Fields() CityFields {
	return c.fields
}

type UpdateCityCommand struct { //nolint:recvcheck //using for validation
	actor  identity.Actor
	cityID kernel.UUID
	fields CityFields

	guard guard.ConstructorGuard
}

func NewUpdateCityCommand(actor identity.Actor, cityID kernel.UUID, fields CityFields) (UpdateCityCommand, error) {
	if err := cityID.Validate(); err != nil {
		return UpdateCityCommand{}, err
	}
	return UpdateCityCommand{actor: actor, cityID: cityID, fields: fields, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateCityCommand) Validate() error {
	return c.guard.Validate(ErrCityCommandIsNotConstructed)
}

func (c UpdateCityCommand) Actor() identity.Actor {
	return c.actor
}

func (c UpdateCityCommand) CityID() kernel.UUID {
	return c.cityID
}

func (c UpdateCityCommand) Fields() CityFields {
	return c.fields
}

type DeleteCityCommand struct { //nolint:recvcheck //using for validation
	actor  identity.Actor
	cityID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteCityCommand(actor identity.Actor, cityID kernel.UUID) (DeleteCityCommand, error) {
	if err := cityID.Validate(); err != nil {
		return DeleteCityCommand{}, err
	}
	return DeleteCityCommand{actor: actor, cityID: cityID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteCityCommand) Validate() error {
	return c.guard.Validate(ErrCityCommandIsNotConstructed)
}

func (c DeleteCityCommand) Actor() identity.Actor {
	return c.actor
}

func (c DeleteCityCommand) CityID() kernel.UUID {
	return c.cityID
}
