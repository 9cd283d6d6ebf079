package commands

import (
	"context"

	"logistics/internal/core/application/authz"
	"logistics/internal/core/domain/model/fleet"
)

// VehicleCommandHandler maintains vehicle master data for dispatchers.
type VehicleCommandHandler struct {
	uowFactory FleetUoWFactory
}

func NewVehicleCommandHandler(uowFactory FleetUoWFactory) VehicleCommandHandler {
	return VehicleCommandHandler{uowFactory: uowFactory}
}

// Create registers a vehicle. A taken plate is reported by the repository as ValidationError.
func (h VehicleCommandHandler) Create(ctx context.Context, cmd CreateVehicleCommand) (*fleet.Vehicle, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := authz.Require(cmd.Actor(), authz.ManageFleet); err != nil {
		return nil, err
	}

	f := cmd.Fields()
	vehicle, err := fleet.NewVehicle(cmd.Plate(), f.TransportType, f.MaxWeight, f.MaxVolume)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.VehicleRepository().Add(ctx, vehicle); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return vehicle, nil
}

func (h VehicleCommandHandler) Update(ctx context.Context, cmd UpdateVehicleCommand) (*fleet.Vehicle, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := authz.Require(cmd.Actor(), authz.ManageFleet); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.VehicleRepository()

	vehicle, err := repo.Get(ctx, cmd.Plate())
	if err != nil {
		return nil, err
	}

	f := cmd.Fields()
	if err = vehicle.Update(f.TransportType, f.MaxWeight, f.MaxVolume); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, vehicle); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return vehicle, nil
}

// Delete removes an idle vehicle. A reserved vehicle yields InvalidState.
func (h VehicleCommandHandler) Delete(ctx context.Context, cmd DeleteVehicleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := authz.Require(cmd.Actor(), authz.ManageFleet); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.VehicleRepository().Delete(ctx, cmd.Plate()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
