package services

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/shipment"
)

// Acceptance carries the dispatcher's decision for one order.
type Acceptance struct {
	ShipmentID   kernel.UUID
	DispatcherID kernel.UUID
	ArrivalTime  time.Time
	Price        kernel.Amount
}

// OrderDispatcher decides pending orders.
//
// Example usage:
//
//	s, err := services.NewOrderDispatcher().Accept(o, driver, vehicle, services.Acceptance{...})
//	if errs.KindOf(err) == errs.KindResourceUnavailable {
//	    // pick another driver or vehicle
//	}
type OrderDispatcher struct{}

func NewOrderDispatcher() OrderDispatcher {
	return OrderDispatcher{}
}

// Accept confirms o, reserves driver and vehicle and returns the new InProgress shipment.
//
// Checks run in this order: order status (InvalidState), driver availability,
// vehicle availability (ResourceUnavailable), shipment fields (ValidationError).
// Nothing is mutated unless all of them pass.
func (OrderDispatcher) Accept(
	o *order.Order,
	driver *fleet.Driver,
	vehicle *fleet.Vehicle,
	decision Acceptance,
) (*shipment.Shipment, error) {
	if err := errors.Join(
		o.Validate(), driver.Validate(), vehicle.Validate(), decision.DispatcherID.Validate(),
	); err != nil {
		return nil, err
	}

	if err := o.ValidateAccept(); err != nil {
		return nil, err
	}

	if !driver.IsAvailable() {
		return nil, driver.Reserve()
	}
	if !vehicle.IsAvailable() {
		return nil, vehicle.Reserve()
	}

	s, err := shipment.NewShipment(
		decision.ShipmentID,
		o.ID(),
		driver.ID(),
		vehicle.Plate(),
		decision.ArrivalTime,
		decision.Price,
	)
	if err != nil {
		return nil, err
	}

	if err := errors.Join(driver.Reserve(), vehicle.Reserve(), o.Accept(decision.DispatcherID)); err != nil {
		return nil, err
	}

	return s, nil
}

// Reject cancels o on behalf of dispatcherID. Resources are never touched.
func (OrderDispatcher) Reject(o *order.Order, dispatcherID kernel.UUID) error {
	if err := o.Validate(); err != nil {
		return err
	}
	return o.Reject(dispatcherID)
}
