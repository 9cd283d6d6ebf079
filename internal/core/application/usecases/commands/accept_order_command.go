package commands

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand carries a dispatcher's decision to take an order with a
// given driver, vehicle, expected arrival and price.
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	actor        identity.Actor
	orderID      kernel.UUID
	driverID     kernel.UUID
	vehiclePlate string
	arrivalTime  time.Time
	price        kernel.Amount

	guard guard.ConstructorGuard
}

func NewAcceptOrderCommand(
	actor identity.Actor,
	orderID, driverID kernel.UUID,
	vehiclePlate string,
	arrivalTime time.Time,
	price decimal.Decimal,
) (AcceptOrderCommand, error) {
	cmd := AcceptOrderCommand{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}

	p, priceErr := kernel.NewAmount("price", price)

	var errList []error
	errList = append(errList, orderID.Validate(), driverID.Validate(), priceErr)
	if strings.TrimSpace(vehiclePlate) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("vehicle"))
	}
	if arrivalTime.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("arrival_time"))
	}
	if err := errors.Join(errList...); err != nil {
		return AcceptOrderCommand{}, err
	}

	cmd.orderID = orderID
	cmd.driverID = driverID
	cmd.vehiclePlate = strings.TrimSpace(vehiclePlate)
	cmd.arrivalTime = arrivalTime
	cmd.price = p
	return cmd, nil
}

func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

func (c AcceptOrderCommand) Actor() identity.Actor {
	return c.actor
}

func (c AcceptOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AcceptOrderCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c AcceptOrderCommand) VehiclePlate() string {
	return c.vehiclePlate
}

func (c AcceptOrderCommand) ArrivalTime() time.Time {
	return c.arrivalTime
}

func (c AcceptOrderCommand) Price() kernel.Amount {
	return c.price
}
