package services

import (
	"logistics/internal/core/domain/model/shipment"
)

// ShipmentCloser applies the terminal transitions of a shipment.
// releaseOnDelay controls whether a delayed shipment gives its driver and
// vehicle back; delivered shipments always do.
type ShipmentCloser struct {
	releaseOnDelay bool
}

func NewShipmentCloser(releaseOnDelay bool) ShipmentCloser {
	return ShipmentCloser{releaseOnDelay: releaseOnDelay}
}

// Deliver marks s Delivered. The returned flag is always true on success.
func (c ShipmentCloser) Deliver(s *shipment.Shipment) (bool, error) {
	if err := s.Validate(); err != nil {
		return false, err
	}
	if err := s.Deliver(); err != nil {
		return false, err
	}
	return true, nil
}

// Delay marks s Delayed and reports whether resources must be released.
func (c ShipmentCloser) Delay(s *shipment.Shipment) (bool, error) {
	if err := s.Validate(); err != nil {
		return false, err
	}
	if err := s.Delay(); err != nil {
		return false, err
	}
	return c.releaseOnDelay, nil
}
