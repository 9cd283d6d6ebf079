package shipment

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

// Shipment is the aggregate root for an accepted order in transit.
//
// Invariants:
//   - exactly one shipment exists per confirmed order
//   - status leaves InProgress at most once
//   - a review exists only on a Delivered shipment and is never replaced
//
// version is the optimistic concurrency token; repositories bump it on every update.
type Shipment struct {
	id           kernel.UUID
	orderID      kernel.UUID
	driverID     kernel.UUID
	vehiclePlate string
	arrivalTime  time.Time
	price        kernel.Amount
	status       Status
	review       *Review
	version      int
	guard        guard.ConstructorGuard
}

// NewShipment creates an InProgress shipment for an order that is being accepted.
func NewShipment(
	id, orderID, driverID kernel.UUID,
	vehiclePlate string,
	arrivalTime time.Time,
	price kernel.Amount,
) (*Shipment, error) {
	s := &Shipment{
		status: InProgress,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setIDs(id, orderID, driverID),
		s.setVehicle(vehiclePlate),
		s.setArrivalTime(arrivalTime),
		s.setPrice(price),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment rebuilds a shipment from storage.
func RestoreShipment(
	id, orderID, driverID kernel.UUID,
	vehiclePlate string,
	arrivalTime time.Time,
	price kernel.Amount,
	status Status,
	review *Review,
	version int,
) (*Shipment, error) {
	s := &Shipment{
		version: version,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setIDs(id, orderID, driverID),
		s.setVehicle(vehiclePlate),
		s.setArrivalTime(arrivalTime),
		s.setPrice(price),
		s.setStatus(status, review),
	); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

func (s *Shipment) ID() kernel.UUID {
	return s.id
}

func (s *Shipment) OrderID() kernel.UUID {
	return s.orderID
}

func (s *Shipment) DriverID() kernel.UUID {
	return s.driverID
}

func (s *Shipment) VehiclePlate() string {
	return s.vehiclePlate
}

func (s *Shipment) ArrivalTime() time.Time {
	return s.arrivalTime
}

func (s *Shipment) Price() kernel.Amount {
	return s.price
}

func (s *Shipment) Status() Status {
	return s.status
}

func (s *Shipment) Version() int {
	return s.version
}

// Review returns nil until the client has reviewed the shipment.
func (s *Shipment) Review() *Review {
	if s.review == nil {
		return nil
	}
	r := *s.review
	return &r
}

// Deliver closes the shipment as Delivered. Releasing the driver and vehicle is
// the caller's job and must happen in the same unit of work.
func (s *Shipment) Deliver() error {
	newStatus, err := s.status.Close(Delivered, "deliver")
	if err != nil {
		return err
	}
	s.status = newStatus
	return nil
}

// Delay closes the shipment as Delayed.
func (s *Shipment) Delay() error {
	newStatus, err := s.status.Close(Delayed, "delay")
	if err != nil {
		return err
	}
	s.status = newStatus
	return nil
}

// AttachReview stores the client's review written at the given time. Only a
// Delivered shipment without a review accepts one; state is checked before the
// rating and text.
func (s *Shipment) AttachReview(rating int, text string, at time.Time) error {
	if s.status != Delivered {
		return errs.NewInvalidStateError("shipment", s.status.String(), "be reviewed")
	}

	if s.review != nil {
		return errs.NewInvalidStateError("shipment", "already reviewed", "be reviewed again")
	}

	review, err := NewReview(rating, text, at)
	if err != nil {
		return err
	}

	s.review = &review
	return nil
}

func (s *Shipment) setIDs(id, orderID, driverID kernel.UUID) error {
	if err := errors.Join(id.Validate(), orderID.Validate(), driverID.Validate()); err != nil {
		return err
	}
	s.id = id
	s.orderID = orderID
	s.driverID = driverID
	return nil
}

func (s *Shipment) setVehicle(plate string) error {
	if strings.TrimSpace(plate) == "" {
		return errs.NewValueIsRequiredError("vehicle")
	}
	s.vehiclePlate = plate
	return nil
}

func (s *Shipment) setArrivalTime(arrivalTime time.Time) error {
	if arrivalTime.IsZero() {
		return errs.NewValueIsRequiredError("arrival_time")
	}
	s.arrivalTime = arrivalTime.UTC()
	return nil
}

func (s *Shipment) setPrice(price kernel.Amount) error {
	if err := price.Validate(); err != nil {
		return err
	}
	s.price = price
	return nil
}

func (s *Shipment) setStatus(status Status, review *Review) error {
	if err := status.Validate(); err != nil {
		return err
	}

	if review != nil {
		if err := review.Validate(); err != nil {
			return err
		}
		if status != Delivered {
			return errs.NewValueIsInvalidErrorWithCause("review",
				errors.New(status.String()+" shipment cannot carry a review"))
		}
		r := *review
		s.review = &r
	}

	s.status = status
	return nil
}
