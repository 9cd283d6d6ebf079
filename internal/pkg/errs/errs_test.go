package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", "123")

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("order", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: order, ID is: 123 (cause: database connection failed)",
			err.Error())
	})

	t.Run("Error with different ID types", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("vehicle", 456)
		assert.Equal(t, "object not found: %!s(int=456)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("email")

		assert.Equal(t, "email", err.ParamName)
		assert.Equal(t, "value is invalid: email", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("email", errors.New("already in use"))

		assert.Equal(t, "value is invalid: email (cause: already in use)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("rating", 7, 1, 5)

		assert.Equal(t, 7, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 5, err.Max)
		assert.Equal(t, "value is invalid: 7 is rating, min value is 1, max value is 5", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeErrorWithCause("latitude", 91, -90, 90, errors.New("not on earth"))

		assert.Equal(t,
			"value is invalid: 91 is latitude, min value is -90, max value is 90 (cause: not on earth)",
			err.Error())
	})

	t.Run("newlines are flattened", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("username")
	assert.Equal(t, "value is required: username", err.Error())

	withCause := errs.NewValueIsRequiredErrorWithCause("username", errors.New("blank"))
	assert.Equal(t, "value is required: username (cause: blank)", withCause.Error())
	assert.Equal(t, errs.ErrValueIsRequired, withCause.Unwrap())
}

func TestLifecycleErrors(t *testing.T) {
	t.Run("invalid state", func(t *testing.T) {
		err := errs.NewInvalidStateError("order", "Confirmed", "accept")
		assert.Equal(t, "invalid state: order is Confirmed, cannot accept", err.Error())
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("resource unavailable", func(t *testing.T) {
		err := errs.NewResourceUnavailableError("vehicle", "AB123CD")
		assert.Equal(t, "resource unavailable: vehicle AB123CD is not available", err.Error())
		require.ErrorIs(t, err, errs.ErrResourceUnavailable)
	})

	t.Run("version conflict", func(t *testing.T) {
		err := errs.NewVersionIsInvalidError("shipment")
		assert.Equal(t, "version is invalid: shipment", err.Error())
		require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	})
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want errs.Kind
	}{
		{"nil", nil, ""},
		{"unauthenticated", errs.NewUnauthenticatedError("token expired"), errs.KindUnauthenticated},
		{"forbidden", errs.NewForbiddenError("not your order"), errs.KindForbidden},
		{"not found", errs.NewObjectNotFoundError("driver", "x"), errs.KindNotFound},
		{"invalid state", errs.NewInvalidStateError("shipment", "Delivered", "delay"), errs.KindInvalidState},
		{"version conflict", errs.NewVersionIsInvalidError("shipment"), errs.KindInvalidState},
		{"resource unavailable", errs.NewResourceUnavailableError("driver", "x"), errs.KindResourceUnavailable},
		{"bad request", errs.NewBadRequestError("status"), errs.KindBadRequest},
		{"invalid value", errs.NewValueIsInvalidError("weight"), errs.KindValidation},
		{"out of range", errs.NewValueIsOutOfRangeError("rating", 0, 1, 5), errs.KindValidation},
		{"required", errs.NewValueIsRequiredError("email"), errs.KindValidation},
		{"wrapped", fmt.Errorf("accept: %w", errs.NewInvalidStateError("order", "Cancelled", "accept")),
			errs.KindInvalidState},
		{"joined validation", errors.Join(errs.NewValueIsInvalidError("weight"), errs.NewValueIsInvalidError("volume")),
			errs.KindValidation},
		{"forbidden wins over not found",
			errors.Join(errs.NewObjectNotFoundError("order", "x"), errs.NewForbiddenError("role")),
			errs.KindForbidden},
		{"unknown", errors.New("connection reset"), errs.KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errs.KindOf(tt.err))
		})
	}
}
