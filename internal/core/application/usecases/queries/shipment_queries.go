package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/guard"
)

var (
	ErrListShipmentsQueryIsNotConstructed = errors.New(
		"ListShipmentsQuery must be created via NewListShipmentsQuery constructor",
	)
	ErrGetShipmentQueryIsNotConstructed = errors.New(
		"GetShipmentQuery must be created via NewGetShipmentQuery constructor",
	)
)

// ListShipmentsQuery lists the shipments visible to an actor, soonest arrival first.
type ListShipmentsQuery struct {
	actor identity.Actor
	guard guard.ConstructorGuard
}

func NewListShipmentsQuery(actor identity.Actor) ListShipmentsQuery {
	return ListShipmentsQuery{actor: actor, guard: guard.NewConstructorGuard()}
}

func (q ListShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrListShipmentsQueryIsNotConstructed)
}

func (q ListShipmentsQuery) Actor() identity.Actor {
	return q.actor
}

// GetShipmentQuery fetches one shipment inside the actor's scope.
type GetShipmentQuery struct {
	actor      identity.Actor
	shipmentID kernel.UUID
	guard      guard.ConstructorGuard
}

func NewGetShipmentQuery(actor identity.Actor, shipmentID kernel.UUID) (GetShipmentQuery, error) {
	if err := shipmentID.Validate(); err != nil {
		return GetShipmentQuery{}, err
	}
	return GetShipmentQuery{actor: actor, shipmentID: shipmentID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}

func (q GetShipmentQuery) Actor() identity.Actor {
	return q.actor
}

func (q GetShipmentQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}

// ShipmentView is the read model of a shipment. Review is nil until the client
// reviews a delivered shipment.
type ShipmentView struct {
	ID           kernel.UUID
	OrderID      kernel.UUID
	DriverID     kernel.UUID
	VehiclePlate string
	ArrivalTime  time.Time
	Price        kernel.Amount
	Status       shipment.Status
	Review       *ReviewView
}

type ReviewView struct {
	Rating    int
	Text      string
	CreatedAt time.Time
}
