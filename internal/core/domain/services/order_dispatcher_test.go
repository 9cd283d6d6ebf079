package services_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amount(t *testing.T, name, v string) kernel.Amount {
	t.Helper()
	a, err := kernel.NewAmount(name, decimal.RequireFromString(v))
	require.NoError(t, err)
	return a
}

func pendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), amount(t, "weight", "10.5"),
		amount(t, "volume", "2"), kernel.NewUUID(), kernel.NewUUID(), time.Now())
	require.NoError(t, err)
	return o
}

func availableDriver(t *testing.T) *fleet.Driver {
	t.Helper()
	d, err := fleet.NewDriver(kernel.NewUUID(), "Jean", "Dupont", "", []fleet.LicenceClass{fleet.LicenceC})
	require.NoError(t, err)
	return d
}

func availableVehicle(t *testing.T) *fleet.Vehicle {
	t.Helper()
	v, err := fleet.NewVehicle("AB123CD", "TRK", 20000, 80)
	require.NoError(t, err)
	return v
}

func acceptance(t *testing.T) services.Acceptance {
	t.Helper()
	return services.Acceptance{
		ShipmentID:   kernel.NewUUID(),
		DispatcherID: kernel.NewUUID(),
		ArrivalTime:  time.Now().Add(48 * time.Hour),
		Price:        amount(t, "price", "150"),
	}
}

func TestOrderDispatcher_Accept(t *testing.T) {
	t.Run("should confirm the order, reserve both resources and create a shipment", func(t *testing.T) {
		// Given
		o := pendingOrder(t)
		d := availableDriver(t)
		v := availableVehicle(t)
		decision := acceptance(t)

		// When
		s, err := services.NewOrderDispatcher().Accept(o, d, v, decision)

		// Then
		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, o.Status())
		assert.True(t, o.IsDecidedBy(decision.DispatcherID))
		assert.False(t, d.IsAvailable())
		assert.False(t, v.IsAvailable())
		assert.Equal(t, shipment.InProgress, s.Status())
		assert.True(t, s.ID().IsEqual(decision.ShipmentID))
		assert.True(t, s.OrderID().IsEqual(o.ID()))
		assert.True(t, s.DriverID().IsEqual(d.ID()))
		assert.Equal(t, v.Plate(), s.VehiclePlate())
	})

	t.Run("should refuse a confirmed order without touching resources", func(t *testing.T) {
		// Given
		o := pendingOrder(t)
		require.NoError(t, o.Accept(kernel.NewUUID()))
		d := availableDriver(t)
		v := availableVehicle(t)

		// When
		s, err := services.NewOrderDispatcher().Accept(o, d, v, acceptance(t))

		// Then
		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Nil(t, s)
		assert.True(t, d.IsAvailable())
		assert.True(t, v.IsAvailable())
	})

	t.Run("should refuse a busy driver and leave the vehicle free", func(t *testing.T) {
		o := pendingOrder(t)
		d := availableDriver(t)
		require.NoError(t, d.Reserve())
		v := availableVehicle(t)

		_, err := services.NewOrderDispatcher().Accept(o, d, v, acceptance(t))

		require.ErrorIs(t, err, errs.ErrResourceUnavailable)
		assert.Contains(t, err.Error(), "driver")
		assert.True(t, v.IsAvailable())
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should refuse a busy vehicle and leave the driver free", func(t *testing.T) {
		o := pendingOrder(t)
		d := availableDriver(t)
		v := availableVehicle(t)
		require.NoError(t, v.Reserve())

		_, err := services.NewOrderDispatcher().Accept(o, d, v, acceptance(t))

		require.ErrorIs(t, err, errs.ErrResourceUnavailable)
		assert.Contains(t, err.Error(), "vehicle")
		assert.True(t, d.IsAvailable())
		assert.Nil(t, o.DispatcherID())
	})

	t.Run("should refuse a missing price before any mutation", func(t *testing.T) {
		o := pendingOrder(t)
		d := availableDriver(t)
		v := availableVehicle(t)
		decision := acceptance(t)
		decision.Price = kernel.Amount{}

		_, err := services.NewOrderDispatcher().Accept(o, d, v, decision)

		require.ErrorIs(t, err, kernel.ErrAmountIsNotConstructed)
		assert.True(t, d.IsAvailable())
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should refuse unconstructed aggregates", func(t *testing.T) {
		_, err := services.NewOrderDispatcher().Accept(&order.Order{}, availableDriver(t), availableVehicle(t), acceptance(t))

		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}

func TestOrderDispatcher_Reject(t *testing.T) {
	o := pendingOrder(t)
	dispatcher := kernel.NewUUID()

	require.NoError(t, services.NewOrderDispatcher().Reject(o, dispatcher))
	assert.Equal(t, order.Cancelled, o.Status())

	err := services.NewOrderDispatcher().Reject(o, dispatcher)
	require.ErrorIs(t, err, errs.ErrInvalidState)
}
