package commands

import (
	"errors"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/guard"
)

var ErrCloseShipmentCommandIsNotConstructed = errors.New(
	"CloseShipmentCommand must be created via NewDeliverShipmentCommand or NewDelayShipmentCommand",
)

// CloseShipmentCommand ends an InProgress shipment with the given outcome.
type CloseShipmentCommand struct { //nolint:recvcheck //using for validation
	actor      identity.Actor
	shipmentID kernel.UUID
	outcome    shipment.Status

	guard guard.ConstructorGuard
}

// NewDeliverShipmentCommand closes the shipment as Delivered.
func NewDeliverShipmentCommand(actor identity.Actor, shipmentID kernel.UUID) (CloseShipmentCommand, error) {
	return newCloseShipmentCommand(actor, shipmentID, shipment.Delivered)
}

// NewDelayShipmentCommand closes the shipment as Delayed.
func NewDelayShipmentCommand(actor identity.Actor, shipmentID kernel.UUID) (CloseShipmentCommand, error) {
	return newCloseShipmentCommand(actor, shipmentID, shipment.Delayed)
}

func newCloseShipmentCommand(
	actor identity.Actor,
	shipmentID kernel.UUID,
	outcome shipment.Status,
) (CloseShipmentCommand, error) {
	if err := shipmentID.Validate(); err != nil {
		return CloseShipmentCommand{}, err
	}

	return CloseShipmentCommand{
		actor:      actor,
		shipmentID: shipmentID,
		outcome:    outcome,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CloseShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCloseShipmentCommandIsNotConstructed)
}

func (c CloseShipmentCommand) Actor() identity.Actor {
	return c.actor
}

func (c CloseShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c CloseShipmentCommand) Outcome() shipment.Status {
	return c.outcome
}
