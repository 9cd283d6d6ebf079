package commands_test

import (
	"context"
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reviewFixture struct {
	client       identity.Actor
	order        *order.Order
	shipment     *shipment.Shipment
	shipmentRepo *MockShipmentRepository
	orderRepo    *MockOrderRepository
	uow          *MockUoW
	factory      *MockUoWFactory
}

// newReviewFixture prepares a shipment of an order placed by a fresh client,
// and expects the handler to read both rows.
func newReviewFixture(t *testing.T, delivered bool) reviewFixture {
	t.Helper()
	ctx := context.Background()
	client := newActor(t, identity.RoleClient)
	o := newPendingOrder(t, client.ID())
	s := newShipmentFor(t, o, kernel.NewUUID())
	if delivered {
		require.NoError(t, s.Deliver())
	}

	f := reviewFixture{
		client:       client,
		order:        o,
		shipment:     s,
		shipmentRepo: new(MockShipmentRepository),
		orderRepo:    new(MockOrderRepository),
		uow:          new(MockUoW),
		factory:      new(MockUoWFactory),
	}
	f.factory.On("Create").Return(f.uow).Once()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("ShipmentRepository").Return(f.shipmentRepo).Once()
	f.uow.On("OrderRepository").Return(f.orderRepo).Once()
	f.shipmentRepo.On("GetForUpdate", ctx, s.ID()).Return(s, nil).Once()
	f.orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()
	return f
}

func (f reviewFixture) handle(t *testing.T, actor identity.Actor, rating int, text string) (*shipment.Shipment, error) {
	t.Helper()
	cmd, err := commands.NewAttachReviewCommand(actor, f.shipment.ID(), rating, text)
	require.NoError(t, err)
	return commands.NewAttachReviewCommandHandler(f.factory).Handle(context.Background(), cmd)
}

func TestAttachReviewCommandHandler_Handle(t *testing.T) {
	t.Run("should store the review on a delivered shipment", func(t *testing.T) {
		// Given
		f := newReviewFixture(t, true)
		f.shipmentRepo.On("Update", context.Background(), f.shipment).Return(nil).Once()
		f.uow.On("Commit", context.Background()).Return(nil).Once()

		// When
		s, err := f.handle(t, f.client, 5, "On time")

		// Then
		require.NoError(t, err)
		require.NotNil(t, s.Review())
		assert.Equal(t, 5, s.Review().Rating())
		assert.Equal(t, "On time", s.Review().Text())
		assert.False(t, s.Review().CreatedAt().IsZero())
		f.shipmentRepo.AssertExpectations(t)
		f.uow.AssertExpectations(t)
	})

	t.Run("should forbid another client", func(t *testing.T) {
		f := newReviewFixture(t, true)

		_, err := f.handle(t, newActor(t, identity.RoleClient), 5, "On time")

		require.ErrorIs(t, err, errs.ErrForbidden)
		assert.Nil(t, f.shipment.Review())
		f.shipmentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("should refuse a shipment that is still in progress", func(t *testing.T) {
		f := newReviewFixture(t, false)

		_, err := f.handle(t, f.client, 5, "On time")

		require.ErrorIs(t, err, errs.ErrInvalidState)
		f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("should report state before an invalid rating", func(t *testing.T) {
		f := newReviewFixture(t, false)

		_, err := f.handle(t, f.client, 9, "")

		require.ErrorIs(t, err, errs.ErrInvalidState)
		require.NotErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject a rating outside one to five", func(t *testing.T) {
		f := newReviewFixture(t, true)

		_, err := f.handle(t, f.client, 0, "Late")

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Nil(t, f.shipment.Review())
	})

	t.Run("should refuse a second review", func(t *testing.T) {
		f := newReviewFixture(t, true)
		require.NoError(t, f.shipment.AttachReview(4, "Fine", f.order.CreatedAt()))

		_, err := f.handle(t, f.client, 1, "Changed my mind")

		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, 4, f.shipment.Review().Rating())
	})

	t.Run("should forbid dispatchers before touching storage", func(t *testing.T) {
		cmd, err := commands.NewAttachReviewCommand(newActor(t, identity.RoleDispatcher), kernel.NewUUID(), 5, "ok")
		require.NoError(t, err)
		factory := new(MockUoWFactory)

		_, err = commands.NewAttachReviewCommandHandler(factory).Handle(context.Background(), cmd)

		require.ErrorIs(t, err, errs.ErrForbidden)
		factory.AssertNotCalled(t, "Create")
	})
}
