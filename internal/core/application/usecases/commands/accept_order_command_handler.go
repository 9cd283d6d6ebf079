package commands

import (
	"context"

	"logistics/internal/core/application/authz"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"
)

// AcceptOrderCommandHandler confirms an order and opens its shipment.
//
// Everything happens in one unit of work: the order row is locked, the
// dispatcher decision is validated by the domain, then the driver and the
// vehicle are reserved through the registry's conditional update. A racing
// Accept that already took the driver makes TryReserveDriver return false and
// the whole unit of work rolls back with ResourceUnavailable.
type AcceptOrderCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.OrderDispatcher
}

func NewAcceptOrderCommandHandler(uowFactory UoWFactory, dispatcher services.OrderDispatcher) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle returns the order's new status (Confirmed).
//
// Errors, in the order they are checked: Forbidden (role), NotFound (order),
// InvalidState (order not Pending), NotFound (driver, vehicle),
// ResourceUnavailable (driver, vehicle).
func (h AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) (order.Status, error) {
	if err := cmd.Validate(); err != nil {
		return order.Unknown, err
	}

	if err := authz.Require(cmd.Actor(), authz.DecideOrder); err != nil {
		return order.Unknown, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.Unknown, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	shipmentRepo := uow.ShipmentRepository()
	registry := uow.ResourceRegistry()

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return order.Unknown, err
	}

	if err = o.ValidateAccept(); err != nil {
		return order.Unknown, err
	}

	driver, err := uow.DriverRepository().Get(ctx, cmd.DriverID())
	if err != nil {
		return order.Unknown, err
	}

	vehicle, err := uow.VehicleRepository().Get(ctx, cmd.VehiclePlate())
	if err != nil {
		return order.Unknown, err
	}

	s, err := h.dispatcher.Accept(o, driver, vehicle, services.Acceptance{
		ShipmentID:   kernel.NewUUID(),
		DispatcherID: cmd.Actor().ID(),
		ArrivalTime:  cmd.ArrivalTime(),
		Price:        cmd.Price(),
	})
	if err != nil {
		return order.Unknown, err
	}

	reserved, err := registry.TryReserveDriver(ctx, driver.ID())
	if err != nil {
		return order.Unknown, err
	}
	if !reserved {
		return order.Unknown, errs.NewResourceUnavailableError("driver", driver.ID().String())
	}

	reserved, err = registry.TryReserveVehicle(ctx, vehicle.Plate())
	if err != nil {
		return order.Unknown, err
	}
	if !reserved {
		return order.Unknown, errs.NewResourceUnavailableError("vehicle", vehicle.Plate())
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return order.Unknown, err
	}

	if err = shipmentRepo.Add(ctx, s); err != nil {
		return order.Unknown, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.Unknown, err
	}

	return o.Status(), nil
}
