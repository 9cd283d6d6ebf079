package order

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──┬──> Confirmed
//	          └──> Cancelled
//
// Confirmed and Cancelled are terminal.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: submitted by a client, not yet reviewed.
	Pending

	// Confirmed means a dispatcher accepted the order and a shipment exists for it.
	Confirmed

	// Cancelled means a dispatcher rejected the order.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Confirmed: "Confirmed",
		Cancelled: "Cancelled",
	}
}

// ParseStatus maps a persisted or transported name back to a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks that the Status is one of Pending, Confirmed or Cancelled.
func (s Status) Validate() error {
	if s != Pending && s != Confirmed && s != Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String implements fmt.Stringer; invalid values render as "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Confirmed || s == Cancelled
}

// ValidateDecision checks that a dispatcher may still accept or reject the order.
// action names the attempted operation and ends up in the error message.
func (s Status) ValidateDecision(action string) error {
	if s != Pending {
		return errs.NewInvalidStateError("order", s.String(), action)
	}
	return nil
}

// ValidateCanHaveDispatcher enforces that a dispatcher is recorded iff the order left Pending.
func (s Status) ValidateCanHaveDispatcher(dispatcher bool) error {
	if dispatcher && s == Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have a dispatcher", s.String()),
		)
	}

	if !dispatcher && s.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have no dispatcher", s.String()),
		)
	}

	return nil
}

// Confirm transitions Pending to Confirmed.
func (s Status) Confirm() (Status, error) {
	if err := s.ValidateDecision("accept"); err != nil {
		return Unknown, err
	}
	return Confirmed, nil
}

// Cancel transitions Pending to Cancelled.
func (s Status) Cancel() (Status, error) {
	if err := s.ValidateDecision("reject"); err != nil {
		return Unknown, err
	}
	return Cancelled, nil
}
