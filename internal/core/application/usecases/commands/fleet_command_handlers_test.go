package commands_test

import (
	"context"
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDriverCommandHandler(t *testing.T) {
	t.Run("should create an available driver", func(t *testing.T) {
		// Given
		ctx := context.Background()
		driverRepo := new(MockDriverRepository)
		uow := new(MockUoW)
		factory := new(MockFleetUoWFactory)
		factory.On("Create").Return(uow).Once()

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("DriverRepository").Return(driverRepo).Once(),
			driverRepo.On("Add", ctx, mock.AnythingOfType("*fleet.Driver")).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		cmd := commands.NewCreateDriverCommand(newActor(t, identity.RoleDispatcher), commands.DriverFields{
			FirstName: "Jean",
			LastName:  "Dupont",
			Licences:  []fleet.LicenceClass{fleet.LicenceCE, fleet.LicenceB, fleet.LicenceB},
		})

		// When
		d, err := commands.NewDriverCommandHandler(factory).Create(ctx, cmd)

		// Then
		require.NoError(t, err)
		assert.True(t, d.IsAvailable())
		assert.Equal(t, []fleet.LicenceClass{fleet.LicenceB, fleet.LicenceCE}, d.Licences())
		driverRepo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("should validate before opening a unit of work", func(t *testing.T) {
		factory := new(MockFleetUoWFactory)
		cmd := commands.NewCreateDriverCommand(newActor(t, identity.RoleDispatcher), commands.DriverFields{
			FirstName: "Jean",
		})

		_, err := commands.NewDriverCommandHandler(factory).Create(context.Background(), cmd)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		factory.AssertNotCalled(t, "Create")
	})

	t.Run("should update names without touching availability", func(t *testing.T) {
		// Given a driver currently on a shipment
		ctx := context.Background()
		d := newDriver(t)
		require.NoError(t, d.Reserve())

		driverRepo := new(MockDriverRepository)
		uow := new(MockUoW)
		factory := new(MockFleetUoWFactory)
		factory.On("Create").Return(uow).Once()

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("DriverRepository").Return(driverRepo).Once(),
			driverRepo.On("Get", ctx, d.ID()).Return(d, nil).Once(),
			driverRepo.On("Update", ctx, d).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		cmd, err := commands.NewUpdateDriverCommand(newActor(t, identity.RoleDispatcher), d.ID(), commands.DriverFields{
			FirstName: "Jeanne",
			LastName:  "Dupont",
			Licences:  []fleet.LicenceClass{fleet.LicenceC},
		})
		require.NoError(t, err)

		// When
		updated, err := commands.NewDriverCommandHandler(factory).Update(ctx, cmd)

		// Then
		require.NoError(t, err)
		assert.Equal(t, "Jeanne", updated.FirstName())
		assert.False(t, updated.IsAvailable())
		uow.AssertExpectations(t)
	})

	t.Run("should pass through the repository refusal to delete a reserved driver", func(t *testing.T) {
		ctx := context.Background()
		id := kernel.NewUUID()

		driverRepo := new(MockDriverRepository)
		uow := new(MockUoW)
		factory := new(MockFleetUoWFactory)
		factory.On("Create").Return(uow).Once()

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("DriverRepository").Return(driverRepo).Once(),
			driverRepo.On("Delete", ctx, id).Return(errs.NewInvalidStateError("driver", "reserved", "delete")).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		cmd, err := commands.NewDeleteDriverCommand(newActor(t, identity.RoleDispatcher), id)
		require.NoError(t, err)

		err = commands.NewDriverCommandHandler(factory).Delete(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrInvalidState)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("should forbid clients", func(t *testing.T) {
		factory := new(MockFleetUoWFactory)
		cmd, err := commands.NewDeleteDriverCommand(newActor(t, identity.RoleClient), kernel.NewUUID())
		require.NoError(t, err)

		err = commands.NewDriverCommandHandler(factory).Delete(context.Background(), cmd)

		require.ErrorIs(t, err, errs.ErrForbidden)
		factory.AssertNotCalled(t, "Create")
	})
}

func TestVehicleCommandHandler(t *testing.T) {
	t.Run("should create a vehicle keyed by plate", func(t *testing.T) {
		ctx := context.Background()
		vehicleRepo := new(MockVehicleRepository)
		uow := new(MockUoW)
		factory := new(MockFleetUoWFactory)
		factory.On("Create").Return(uow).Once()

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("VehicleRepository").Return(vehicleRepo).Once(),
			vehicleRepo.On("Add", ctx, mock.AnythingOfType("*fleet.Vehicle")).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		cmd := commands.NewCreateVehicleCommand(newActor(t, identity.RoleDispatcher), "EF456GH", commands.VehicleFields{
			TransportType: "VAN",
			MaxWeight:     3500,
			MaxVolume:     12,
		})

		v, err := commands.NewVehicleCommandHandler(factory).Create(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "EF456GH", v.Plate())
		assert.True(t, v.IsAvailable())
		vehicleRepo.AssertExpectations(t)
	})

	t.Run("should reject a non positive capacity", func(t *testing.T) {
		factory := new(MockFleetUoWFactory)
		cmd := commands.NewCreateVehicleCommand(newActor(t, identity.RoleDispatcher), "EF456GH", commands.VehicleFields{
			TransportType: "VAN",
			MaxWeight:     0,
			MaxVolume:     12,
		})

		_, err := commands.NewVehicleCommandHandler(factory).Create(context.Background(), cmd)

		require.Error(t, err)
		factory.AssertNotCalled(t, "Create")
	})

	t.Run("should update the capacity of an existing vehicle", func(t *testing.T) {
		ctx := context.Background()
		v := newVehicle(t)

		vehicleRepo := new(MockVehicleRepository)
		uow := new(MockUoW)
		factory := new(MockFleetUoWFactory)
		factory.On("Create").Return(uow).Once()

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("VehicleRepository").Return(vehicleRepo).Once(),
			vehicleRepo.On("Get", ctx, "AB123CD").Return(v, nil).Once(),
			vehicleRepo.On("Update", ctx, v).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		cmd, err := commands.NewUpdateVehicleCommand(newActor(t, identity.RoleDispatcher), "AB123CD", commands.VehicleFields{
			TransportType: "TRK",
			MaxWeight:     18000,
			MaxVolume:     70,
		})
		require.NoError(t, err)

		updated, err := commands.NewVehicleCommandHandler(factory).Update(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, 18000, updated.MaxWeight())
		assert.Equal(t, 70, updated.MaxVolume())
		uow.AssertExpectations(t)
	})

	t.Run("should report a missing vehicle", func(t *testing.T) {
		ctx := context.Background()
		vehicleRepo := new(MockVehicleRepository)
		uow := new(MockUoW)
		factory := new(MockFleetUoWFactory)
		factory.On("Create").Return(uow).Once()

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("VehicleRepository").Return(vehicleRepo).Once(),
			vehicleRepo.On("Delete", ctx, "ZZ000ZZ").Return(errs.NewObjectNotFoundError("vehicle", "ZZ000ZZ")).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		cmd, err := commands.NewDeleteVehicleCommand(newActor(t, identity.RoleDispatcher), "ZZ000ZZ")
		require.NoError(t, err)

		err = commands.NewVehicleCommandHandler(factory).Delete(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should require a plate", func(t *testing.T) {
		_, err := commands.NewDeleteVehicleCommand(newActor(t, identity.RoleDispatcher), " ")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
