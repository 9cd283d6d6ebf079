package fleet

import (
	"errors"
	"strings"
	"unicode/utf8"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

const (
	maxPlateLength         = 9
	maxTransportTypeLength = 3
)

var ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")

// Vehicle is identified by its licence plate and can carry one shipment at a time.
type Vehicle struct {
	plate         string
	transportType string
	maxWeight     int
	maxVolume     int
	available     bool
	version       int
	guard         guard.ConstructorGuard
}

// NewVehicle registers an available vehicle.
func NewVehicle(plate, transportType string, maxWeight, maxVolume int) (*Vehicle, error) {
	v := &Vehicle{
		available: true,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setPlate(plate),
		v.setSpec(transportType, maxWeight, maxVolume),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// RestoreVehicle rebuilds a vehicle from storage.
func RestoreVehicle(plate, transportType string, maxWeight, maxVolume int, available bool, version int) (*Vehicle, error) {
	v, err := NewVehicle(plate, transportType, maxWeight, maxVolume)
	if err != nil {
		return nil, err
	}
	v.available = available
	v.version = version
	return v, nil
}

func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

func (v *Vehicle) Plate() string {
	return v.plate
}

func (v *Vehicle) TransportType() string {
	return v.transportType
}

func (v *Vehicle) MaxWeight() int {
	return v.maxWeight
}

func (v *Vehicle) MaxVolume() int {
	return v.maxVolume
}

func (v *Vehicle) IsAvailable() bool {
	return v.available
}

func (v *Vehicle) Version() int {
	return v.version
}

// Update replaces the vehicle's specification. The plate is the identity and cannot change.
func (v *Vehicle) Update(transportType string, maxWeight, maxVolume int) error {
	probe := &Vehicle{}
	if err := probe.setSpec(transportType, maxWeight, maxVolume); err != nil {
		return err
	}
	v.transportType, v.maxWeight, v.maxVolume = probe.transportType, probe.maxWeight, probe.maxVolume
	return nil
}

// Reserve marks the vehicle busy, or reports ResourceUnavailable.
func (v *Vehicle) Reserve() error {
	if !v.available {
		return errs.NewResourceUnavailableError("vehicle", v.plate)
	}
	v.available = false
	return nil
}

// Release is idempotent.
func (v *Vehicle) Release() {
	v.available = true
}

func (v *Vehicle) setPlate(plate string) error {
	plate = strings.TrimSpace(plate)
	if plate == "" {
		return errs.NewValueIsRequiredError("license_plate")
	}
	if n := utf8.RuneCountInString(plate); n > maxPlateLength {
		return errs.NewValueIsOutOfRangeError("license_plate", n, 1, maxPlateLength)
	}
	v.plate = plate
	return nil
}

func (v *Vehicle) setSpec(transportType string, maxWeight, maxVolume int) error {
	var errList []error

	transportType = strings.TrimSpace(transportType)
	if transportType == "" {
		errList = append(errList, errs.NewValueIsRequiredError("transport_type"))
	} else if n := utf8.RuneCountInString(transportType); n > maxTransportTypeLength {
		errList = append(errList, errs.NewValueIsOutOfRangeError("transport_type", n, 1, maxTransportTypeLength))
	}

	if maxWeight <= 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("max_weight", maxWeight, 1, "unbounded"))
	}
	if maxVolume <= 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("max_volume", maxVolume, 1, "unbounded"))
	}

	if err := errors.Join(errList...); err != nil {
		return err
	}

	v.transportType = transportType
	v.maxWeight = maxWeight
	v.maxVolume = maxVolume
	return nil
}
