package commands

import (
	"context"

	"logistics/internal/core/application/authz"
	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/core/domain/model/kernel"
)

// DriverCommandHandler maintains driver master data for dispatchers.
// Availability is never written here.
type DriverCommandHandler struct {
	uowFactory FleetUoWFactory
}

func NewDriverCommandHandler(uowFactory FleetUoWFactory) DriverCommandHandler {
	return DriverCommandHandler{uowFactory: uowFactory}
}

func (h DriverCommandHandler) Create(ctx context.Context, cmd CreateDriverCommand) (*fleet.Driver, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := authz.Require(cmd.Actor(), authz.ManageFleet); err != nil {
		return nil, err
	}

	f := cmd.Fields()
	driver, err := fleet.NewDriver(kernel.NewUUID(), f.FirstName, f.LastName, f.SecondName, f.Licences)
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

	if err = uow.DriverRepository().Add(ctx, driver); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return driver, nil
}

func (h DriverCommandHandler) Update(ctx context.Context, cmd UpdateDriverCommand) (*fleet.Driver, error) {
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

	repo := uow.DriverRepository()

	driver, err := repo.Get(ctx, cmd.DriverID())
	if err != nil {
		return nil, err
	}

	f := cmd.Fields()
	if err = driver.Update(f.FirstName, f.LastName, f.SecondName, f.Licences); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, driver); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return driver, nil
}

// Delete removes an idle driver. A reserved driver yields InvalidState.
func (h DriverCommandHandler) Delete(ctx context.Context, cmd DeleteDriverCommand) error {
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

	if err := uow.DriverRepository().Delete(ctx, cmd.DriverID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
