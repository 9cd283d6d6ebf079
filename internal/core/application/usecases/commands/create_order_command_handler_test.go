package commands_test

import (
	"context"

	"errors"
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/city"
	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCity(t *testing.T, name string) *city.City {
	t.Helper()
	coords, err := kernel.NewCoordinates(decimal.RequireFromString("48.8566"), decimal.RequireFromString("2.3522"))
	require.NoError(t, err)
	c, err := city.NewCity(kernel.NewUUID(), name, coords)
	require.NoError(t, err)
	return c
}

func newCreateOrderCommand(t *testing.T, actor identity.Actor, from, to kernel.UUID) commands.CreateOrderCommand {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(actor,
		decimal.RequireFromString("10.5"), decimal.RequireFromString("2"), from, to)
	require.NoError(t, err)
	return cmd
}

func TestCreateOrderCommandHandler_Handle(t *testing.T) {
	t.Run("should place a pending order for the calling client", func(t *testing.T) {
		// Given
		ctx := context.Background()
		client := newActor(t, identity.RoleClient)
		paris := newCity(t, "Paris")
		lyon := newCity(t, "Lyon")
		cmd := newCreateOrderCommand(t, client, paris.ID(), lyon.ID())

		cityRepo := new(MockCityRepository)
		orderRepo := new(MockOrderRepository)
		uow := new(MockUoW)
		factory := new(MockPlaceOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("CityRepository").Return(cityRepo).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			cityRepo.On("Get", ctx, paris.ID()).Return(paris, nil).Once(),
			cityRepo.On("Get", ctx, lyon.ID()).Return(lyon, nil).Once(),
			orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		handler := commands.NewCreateOrderCommandHandler(factory)

		// When
		o, err := handler.Handle(ctx, cmd)

		// Then
		require.NoError(t, err)
		assert.Equal(t, order.Pending, o.Status())
		assert.True(t, o.IsPlacedBy(client.ID()))
		assert.Nil(t, o.DispatcherID())
		assert.Equal(t, "10.500", o.Weight().String())
		assert.Equal(t, "2.000", o.Volume().String())
		assert.True(t, o.CityFrom().IsEqual(paris.ID()))
		assert.True(t, o.CityTo().IsEqual(lyon.ID()))

		cityRepo.AssertExpectations(t)
		orderRepo.AssertExpectations(t)
		uow.AssertExpectations(t)
		factory.AssertExpectations(t)
	})

	t.Run("should return not found when the destination city does not exist", func(t *testing.T) {
		// Given
		ctx := context.Background()
		paris := newCity(t, "Paris")
		missing := kernel.NewUUID()
		cmd := newCreateOrderCommand(t, newActor(t, identity.RoleClient), paris.ID(), missing)

		cityRepo := new(MockCityRepository)
		orderRepo := new(MockOrderRepository)
		uow := new(MockUoW)
		factory := new(MockPlaceOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("CityRepository").Return(cityRepo).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			cityRepo.On("Get", ctx, paris.ID()).Return(paris, nil).Once(),
			cityRepo.On("Get", ctx, missing).Return(nil, errs.NewObjectNotFoundError("city", missing.String())).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		// When
		o, err := commands.NewCreateOrderCommandHandler(factory).Handle(ctx, cmd)

		// Then
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Nil(t, o)
		orderRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
		uow.AssertExpectations(t)
	})

	t.Run("should forbid dispatchers from placing orders", func(t *testing.T) {
		cmd := newCreateOrderCommand(t, newActor(t, identity.RoleDispatcher), kernel.NewUUID(), kernel.NewUUID())
		factory := new(MockPlaceOrderUoWFactory)

		_, err := commands.NewCreateOrderCommandHandler(factory).Handle(context.Background(), cmd)

		require.ErrorIs(t, err, errs.ErrForbidden)
		factory.AssertNotCalled(t, "Create")
	})

	t.Run("should reject an anonymous actor", func(t *testing.T) {
		cmd := newCreateOrderCommand(t, identity.Actor{}, kernel.NewUUID(), kernel.NewUUID())
		factory := new(MockPlaceOrderUoWFactory)

		_, err := commands.NewCreateOrderCommandHandler(factory).Handle(context.Background(), cmd)

		require.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("should surface the storage error", func(t *testing.T) {
		ctx := context.Background()
		paris := newCity(t, "Paris")
		cmd := newCreateOrderCommand(t, newActor(t, identity.RoleClient), paris.ID(), paris.ID())

		cityRepo := new(MockCityRepository)
		orderRepo := new(MockOrderRepository)
		uow := new(MockUoW)
		factory := new(MockPlaceOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("CityRepository").Return(cityRepo).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			cityRepo.On("Get", ctx, paris.ID()).Return(paris, nil).Twice(),
			orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(errors.New("disk full")).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		_, err := commands.NewCreateOrderCommandHandler(factory).Handle(ctx, cmd)

		require.EqualError(t, err, "disk full")
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})
}

func TestNewCreateOrderCommand(t *testing.T) {
	client := newActor(t, identity.RoleClient)

	t.Run("should reject non positive amounts", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(client,
			decimal.Zero, decimal.RequireFromString("-1"), kernel.NewUUID(), kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "weight")
		assert.Contains(t, err.Error(), "volume")
	})

	t.Run("should reject more than three decimal places", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(client,
			decimal.RequireFromString("1.0001"), decimal.RequireFromString("1"), kernel.NewUUID(), kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should require both cities", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(client,
			decimal.RequireFromString("1"), decimal.RequireFromString("1"), kernel.UUID{}, kernel.UUID{})

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		require.ErrorIs(t, commands.CreateOrderCommand{}.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
