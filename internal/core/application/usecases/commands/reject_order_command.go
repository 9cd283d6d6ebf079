package commands

import (
	"errors"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrRejectOrderCommandIsNotConstructed = errors.New(
	"RejectOrderCommand must be created via NewRejectOrderCommand constructor",
)

type RejectOrderCommand struct { //nolint:recvcheck //using for validation
	actor   identity.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRejectOrderCommand(actor identity.Actor, orderID kernel.UUID) (RejectOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return RejectOrderCommand{}, err
	}

	return RejectOrderCommand{
		actor:   actor,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c RejectOrderCommand) Validate() error {
	return c.guard.Validate(ErrRejectOrderCommandIsNotConstructed)
}

func (c RejectOrderCommand) Actor() identity.Actor {
	return c.actor
}

func (c RejectOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
