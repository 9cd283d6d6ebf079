package shipment_test

import (
	"testing"

	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "In Progress", shipment.InProgress.String())
	assert.Equal(t, "Delivered", shipment.Delivered.String())
	assert.Equal(t, "Delayed", shipment.Delayed.String())
	assert.Equal(t, "Unknown", shipment.Status(17).String())
}

func TestParseStatus(t *testing.T) {
	s, err := shipment.ParseStatus("In Progress")
	require.NoError(t, err)
	assert.Equal(t, shipment.InProgress, s)

	_, err = shipment.ParseStatus("InProgress")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStatus_Close(t *testing.T) {
	t.Run("should close InProgress to either terminal status", func(t *testing.T) {
		delivered, err := shipment.InProgress.Close(shipment.Delivered, "deliver")
		require.NoError(t, err)
		assert.Equal(t, shipment.Delivered, delivered)

		delayed, err := shipment.InProgress.Close(shipment.Delayed, "delay")
		require.NoError(t, err)
		assert.Equal(t, shipment.Delayed, delayed)
	})

	t.Run("should refuse from terminal statuses", func(t *testing.T) {
		for _, from := range []shipment.Status{shipment.Delivered, shipment.Delayed} {
			_, err := from.Close(shipment.Delivered, "deliver")

			require.ErrorIs(t, err, errs.ErrInvalidState)
		}
	})

	t.Run("should refuse a non closing target", func(t *testing.T) {
		_, err := shipment.InProgress.Close(shipment.InProgress, "reopen")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
