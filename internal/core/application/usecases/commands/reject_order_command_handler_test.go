package commands_test

import (
	"context"
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRejectOrderCommandHandler_Handle(t *testing.T) {
	t.Run("should cancel a pending order", func(t *testing.T) {
		// Given
		ctx := context.Background()
		dispatcher := newActor(t, identity.RoleDispatcher)
		testOrder := newPendingOrder(t, kernel.NewUUID())
		cmd, err := commands.NewRejectOrderCommand(dispatcher, testOrder.ID())
		require.NoError(t, err)

		orderRepo := new(MockOrderRepository)
		uow := new(MockUoW)
		factory := new(MockUoWFactory)
		factory.On("Create").Return(uow).Once()

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			orderRepo.On("GetForUpdate", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
			orderRepo.On("Update", ctx, testOrder).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		handler := commands.NewRejectOrderCommandHandler(factory, services.NewOrderDispatcher())

		// When
		status, err := handler.Handle(ctx, cmd)

		// Then
		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, status)
		assert.True(t, testOrder.IsDecidedBy(dispatcher.ID()))
		orderRepo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("should refuse to cancel a confirmed order", func(t *testing.T) {
		// Given
		ctx := context.Background()
		testOrder := newPendingOrder(t, kernel.NewUUID())
		require.NoError(t, testOrder.Accept(kernel.NewUUID()))
		cmd, err := commands.NewRejectOrderCommand(newActor(t, identity.RoleDispatcher), testOrder.ID())
		require.NoError(t, err)

		orderRepo := new(MockOrderRepository)
		uow := new(MockUoW)
		factory := new(MockUoWFactory)
		factory.On("Create").Return(uow).Once()

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			orderRepo.On("GetForUpdate", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		// When
		_, err = commands.NewRejectOrderCommandHandler(factory, services.NewOrderDispatcher()).Handle(ctx, cmd)

		// Then
		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, order.Confirmed, testOrder.Status())
		orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("should forbid clients", func(t *testing.T) {
		cmd, err := commands.NewRejectOrderCommand(newActor(t, identity.RoleClient), kernel.NewUUID())
		require.NoError(t, err)
		factory := new(MockUoWFactory)

		_, err = commands.NewRejectOrderCommandHandler(factory, services.NewOrderDispatcher()).Handle(context.Background(), cmd)

		require.ErrorIs(t, err, errs.ErrForbidden)
		factory.AssertNotCalled(t, "Create")
	})

	t.Run("should require an order id", func(t *testing.T) {
		_, err := commands.NewRejectOrderCommand(newActor(t, identity.RoleDispatcher), kernel.UUID{})

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}
