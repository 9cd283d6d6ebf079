package commands

import (
	"context"

	"logistics/internal/core/application/authz"
	"logistics/internal/core/domain/model/city"
	"logistics/internal/core/domain/model/kernel"
)

// CityCommandHandler maintains the reference list of cities.
type CityCommandHandler struct {
	uowFactory CityUoWFactory
}

func NewCityCommandHandler(uowFactory CityUoWFactory) CityCommandHandler {
	return CityCommandHandler{uowFactory: uowFactory}
}

func (h CityCommandHandler) Create(ctx context.Context, cmd CreateCityCommand) (*city.City, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := authz.Require(cmd.Actor(), authz.ManageCities); err != nil {
		return nil, err
	}

	coordinates, err := cmd.Fields().coordinates()
	if err != nil {
		return nil, err
	}

	c, err := city.NewCity(kernel.NewUUID(), cmd.Fields().Name, coordinates)
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

	if err = uow.CityRepository().Add(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}

func (h CityCommandHandler) Update(ctx context.Context, cmd UpdateCityCommand) (*city.City, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := authz.Require(cmd.Actor(), authz.ManageCities); err != nil {
		return nil, err
	}

	coordinates, err := cmd.Fields().coordinates()
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

	repo := uow.CityRepository()

	c, err := repo.Get(ctx, cmd.CityID())
	if err != nil {
		return nil, err
	}

	if err = c.Update(cmd.Fields().Name, coordinates); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}

// Delete removes a city no order refers to; otherwise InvalidState.
func (h CityCommandHandler) Delete(ctx context.Context, cmd DeleteCityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := authz.Require(cmd.Actor(), authz.ManageCities); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.CityRepository().Delete(ctx, cmd.CityID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
