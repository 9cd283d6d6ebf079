package shipment

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
type Status int

const (
	Unknown Status = iota
	InProgress
	Delivered
	Delayed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		InProgress: "In Progress",
		Delivered:  "Delivered",
		Delayed:    "Delayed",
	}
}

// ParseStatus maps a persisted name ("In Progress", "Delivered", "Delayed") to a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid shipment status", s))
}

func (s Status) Validate() error {
	if s != InProgress && s != Delivered && s != Delayed {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Close moves an InProgress shipment to target (Delivered or Delayed).
func (s Status) Close(target Status, action string) (Status, error) {
	if s != InProgress {
		return Unknown, errs.NewInvalidStateError("shipment", s.String(), action)
	}
	if target != Delivered && target != Delayed {
		return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%s is not a closing status", target))
	}
	return target, nil
}
