package commands

import (
	"context"

	"logistics/internal/core/application/authz"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
)

// CloseShipmentCommandHandler delivers or delays shipments. Only the dispatcher
// who accepted the parent order may close it. When the closer says so, the
// driver and vehicle are released in the same unit of work as the status change.
type CloseShipmentCommandHandler struct {
	uowFactory UoWFactory
	closer     services.ShipmentCloser
}

func NewCloseShipmentCommandHandler(uowFactory UoWFactory, closer services.ShipmentCloser) CloseShipmentCommandHandler {
	return CloseShipmentCommandHandler{
		uowFactory: uowFactory,
		closer:     closer,
	}
}

// Handle returns the shipment's new status.
func (h CloseShipmentCommandHandler) Handle(ctx context.Context, cmd CloseShipmentCommand) (shipment.Status, error) {
	if err := cmd.Validate(); err != nil {
		return shipment.Unknown, err
	}

	if err := authz.Require(cmd.Actor(), authz.CloseShipment); err != nil {
		return shipment.Unknown, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return shipment.Unknown, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	orderRepo := uow.OrderRepository()

	s, err := shipmentRepo.GetForUpdate(ctx, cmd.ShipmentID())
	if err != nil {
		return shipment.Unknown, err
	}

	o, err := orderRepo.Get(ctx, s.OrderID())
	if err != nil {
		return shipment.Unknown, err
	}

	if err = authz.RequireOrderDispatcher(cmd.Actor(), o); err != nil {
		return shipment.Unknown, err
	}

	var release bool
	if cmd.Outcome() == shipment.Delivered {
		release, err = h.closer.Deliver(s)
	} else {
		release, err = h.closer.Delay(s)
	}
	if err != nil {
		return shipment.Unknown, err
	}

	if err = shipmentRepo.Update(ctx, s); err != nil {
		return shipment.Unknown, err
	}

	if release {
		registry := uow.ResourceRegistry()
		if err = registry.ReleaseDriver(ctx, s.DriverID()); err != nil {
			return shipment.Unknown, err
		}
		if err = registry.ReleaseVehicle(ctx, s.VehiclePlate()); err != nil {
			return shipment.Unknown, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return shipment.Unknown, err
	}

	return s.Status(), nil
}
