package commands

import (
	"errors"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand asks to place a new order on behalf of the calling client.
// The client is always the actor; callers cannot choose it.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(actor, decimal.RequireFromString("10.5"),
//	    decimal.RequireFromString("2"), parisID, lyonID)
//	if err != nil {
//	    return err // ValidationError
//	}
//	o, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor    identity.Actor
	weight   kernel.Amount
	volume   kernel.Amount
	cityFrom kernel.UUID
	cityTo   kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates weight and volume (positive, three decimals)
// and both city ids.
func NewCreateOrderCommand(
	actor identity.Actor,
	weight, volume decimal.Decimal,
	cityFrom, cityTo kernel.UUID,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAmounts(weight, volume),
		cmd.setRoute(cityFrom, cityTo),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Actor() identity.Actor {
	return c.actor
}

func (c CreateOrderCommand) Weight() kernel.Amount {
	return c.weight
}

func (c CreateOrderCommand) Volume() kernel.Amount {
	return c.volume
}

func (c CreateOrderCommand) CityFrom() kernel.UUID {
	return c.cityFrom
}

func (c CreateOrderCommand) CityTo() kernel.UUID {
	return c.cityTo
}

func (c *CreateOrderCommand) setAmounts(weight, volume decimal.Decimal) error {
	w, wErr := kernel.NewAmount("weight", weight)
	v, vErr := kernel.NewAmount("volume", volume)
	if err := errors.Join(wErr, vErr); err != nil {
		return err
	}
	c.weight = w
	c.volume = v
	return nil
}

func (c *CreateOrderCommand) setRoute(cityFrom, cityTo kernel.UUID) error {
	if err := errors.Join(cityFrom.Validate(), cityTo.Validate()); err != nil {
		return err
	}
	c.cityFrom = cityFrom
	c.cityTo = cityTo
	return nil
}
