package order

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order was not created through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root for a client's shipping request.
//
// Invariants:
//   - weight and volume are positive amounts with at most three decimals
//   - dispatcherID is nil iff status is Pending
//   - createdAt never changes after construction
type Order struct {
	id           kernel.UUID
	clientID     kernel.UUID
	dispatcherID *kernel.UUID
	weight       kernel.Amount
	volume       kernel.Amount
	cityFrom     kernel.UUID
	cityTo       kernel.UUID
	status       Status
	createdAt    time.Time
	guard        guard.ConstructorGuard
}

// NewOrder creates a Pending order placed by clientID. The origin and destination
// may be the same city.
//
// Example:
//
//	weight, _ := kernel.NewAmount("weight", decimal.RequireFromString("10.5"))
//	volume, _ := kernel.NewAmount("volume", decimal.RequireFromString("2"))
//	o, err := order.NewOrder(kernel.NewUUID(), clientID, weight, volume, paris, lyon, time.Now())
func NewOrder(
	id, clientID kernel.UUID,
	weight, volume kernel.Amount,
	cityFrom, cityTo kernel.UUID,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		status:    Pending,
		createdAt: createdAt.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setClient(clientID),
		order.setAmounts(weight, volume),
		order.setRoute(cityFrom, cityTo),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder rebuilds an order from storage, re-checking the status/dispatcher invariant.
func RestoreOrder(
	id, clientID kernel.UUID,
	dispatcherID *kernel.UUID,
	weight, volume kernel.Amount,
	cityFrom, cityTo kernel.UUID,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		createdAt: createdAt.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setClient(clientID),
		order.setAmounts(weight, volume),
		order.setRoute(cityFrom, cityTo),
		order.setStatus(status, dispatcherID),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the order was built by a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

// DispatcherID returns nil while the order is Pending.
func (o *Order) DispatcherID() *kernel.UUID {
	return o.dispatcherID
}

func (o *Order) Weight() kernel.Amount {
	return o.weight
}

func (o *Order) Volume() kernel.Amount {
	return o.volume
}

func (o *Order) CityFrom() kernel.UUID {
	return o.cityFrom
}

func (o *Order) CityTo() kernel.UUID {
	return o.cityTo
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// IsPlacedBy reports whether userID is the client who created the order.
func (o *Order) IsPlacedBy(userID kernel.UUID) bool {
	return o.clientID.IsEqual(userID)
}

// IsDecidedBy reports whether userID is the dispatcher who accepted or rejected the order.
func (o *Order) IsDecidedBy(userID kernel.UUID) bool {
	return o.dispatcherID != nil && o.dispatcherID.IsEqual(userID)
}

// ValidateAccept checks, without side effects, that the order may be accepted.
func (o *Order) ValidateAccept() error {
	return o.status.ValidateDecision("accept")
}

// Accept confirms a Pending order and records the deciding dispatcher.
// It returns InvalidState for any other status and leaves the order untouched.
func (o *Order) Accept(dispatcherID kernel.UUID) error {
	if err := dispatcherID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.dispatcherID = &dispatcherID
	return nil
}

// Reject cancels a Pending order. No resources are touched.
func (o *Order) Reject(dispatcherID kernel.UUID) error {
	if err := dispatcherID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.dispatcherID = &dispatcherID
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setClient(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	o.clientID = clientID
	return nil
}

func (o *Order) setAmounts(weight, volume kernel.Amount) error {
	if err := errors.Join(weight.Validate(), volume.Validate()); err != nil {
		return err
	}
	o.weight = weight
	o.volume = volume
	return nil
}

func (o *Order) setRoute(cityFrom, cityTo kernel.UUID) error {
	if err := errors.Join(cityFrom.Validate(), cityTo.Validate()); err != nil {
		return err
	}
	o.cityFrom = cityFrom
	o.cityTo = cityTo
	return nil
}

func (o *Order) setStatus(status Status, dispatcherID *kernel.UUID) error {
	if err := status.Validate(); err != nil {
		return err
	}

	if err := status.ValidateCanHaveDispatcher(dispatcherID != nil); err != nil {
		return err
	}

	if dispatcherID != nil {
		if err := dispatcherID.Validate(); err != nil {
			return err
		}
		id := *dispatcherID
		o.dispatcherID = &id
	}

	o.status = status
	return nil
}
