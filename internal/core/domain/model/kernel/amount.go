package kernel

import (
	"errors"
	"fmt"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// AmountScale is the number of fractional digits an Amount keeps (numeric(10,3) columns).
const AmountScale = 3

var (
	// ErrAmountIsNotConstructed is returned when a zero-value Amount is used.
	ErrAmountIsNotConstructed = errors.New("Amount must be created via NewAmount constructor")

	amountMin = decimal.New(1, -AmountScale)
	amountMax = decimal.RequireFromString("9999999.999")
)

// Amount is a strictly positive decimal with at most three fractional digits.
// Orders measure weight and volume with it; shipments carry their price in it.
type Amount struct { //nolint:recvcheck //using for validation
	value decimal.Decimal
	guard guard.ConstructorGuard
}

// NewAmount validates value under the given parameter name ("weight", "volume", "price").
//
// Example:
//
//	weight, err := kernel.NewAmount("weight", decimal.RequireFromString("10.5"))
//	if err != nil {
//	    return err // ValueIsInvalid or ValueIsOutOfRange
//	}
func NewAmount(paramName string, value decimal.Decimal) (Amount, error) {
	if !value.IsPositive() {
		return Amount{}, errs.NewValueIsInvalidErrorWithCause(
			paramName, fmt.Errorf("%s is not greater than 0", value.String()))
	}

	if !value.Equal(value.Round(AmountScale)) {
		return Amount{}, errs.NewValueIsInvalidErrorWithCause(
			paramName, fmt.Errorf("%s has more than %d decimal places", value.String(), AmountScale))
	}

	if value.GreaterThan(amountMax) {
		return Amount{}, errs.NewValueIsOutOfRangeError(paramName, value.String(), amountMin.String(), amountMax.String())
	}

	return Amount{
		value: value.Round(AmountScale),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate reports ErrAmountIsNotConstructed for a zero value.
func (a Amount) Validate() error {
	return a.guard.Validate(ErrAmountIsNotConstructed)
}

// Decimal returns the underlying value.
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// IsEqual compares numerically, so 10.5 equals 10.500.
func (a Amount) IsEqual(other Amount) bool {
	return a.value.Equal(other.value)
}

// String renders the amount with exactly three fractional digits ("150.000").
func (a Amount) String() string {
	return a.value.StringFixed(AmountScale)
}
