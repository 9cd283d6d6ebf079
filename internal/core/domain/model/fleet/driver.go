package fleet

import (
	"errors"
	"slices"
	"strings"
	"unicode/utf8"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

const maxNameLength = 50

var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")

// Driver is a person who can be assigned to shipments.
type Driver struct {
	id         kernel.UUID
	firstName  string
	lastName   string
	secondName string
	licences   []LicenceClass
	available  bool
	version    int
	guard      guard.ConstructorGuard
}

// NewDriver registers an available driver. secondName may be empty.
func NewDriver(id kernel.UUID, firstName, lastName, secondName string, licences []LicenceClass) (*Driver, error) {
	d := &Driver{
		available: true,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setNames(firstName, lastName, secondName),
		d.setLicences(licences),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver rebuilds a driver from storage.
func RestoreDriver(
	id kernel.UUID,
	firstName, lastName, secondName string,
	licences []LicenceClass,
	available bool,
	version int,
) (*Driver, error) {
	d, err := NewDriver(id, firstName, lastName, secondName, licences)
	if err != nil {
		return nil, err
	}
	d.available = available
	d.version = version
	return d, nil
}

func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

func (d *Driver) ID() kernel.UUID {
	return d.id
}

func (d *Driver) FirstName() string {
	return d.firstName
}

func (d *Driver) LastName() string {
	return d.lastName
}

func (d *Driver) SecondName() string {
	return d.secondName
}

func (d *Driver) Licences() []LicenceClass {
	return slices.Clone(d.licences)
}

func (d *Driver) HasLicence(c LicenceClass) bool {
	return slices.Contains(d.licences, c)
}

func (d *Driver) IsAvailable() bool {
	return d.available
}

func (d *Driver) Version() int {
	return d.version
}

// Update replaces the master data. Availability is not affected.
func (d *Driver) Update(firstName, lastName, secondName string, licences []LicenceClass) error {
	probe := &Driver{}
	if err := errors.Join(
		probe.setNames(firstName, lastName, secondName),
		probe.setLicences(licences),
	); err != nil {
		return err
	}

	d.firstName, d.lastName, d.secondName = probe.firstName, probe.lastName, probe.secondName
	d.licences = probe.licences
	return nil
}

// Reserve marks the driver busy, or reports ResourceUnavailable.
func (d *Driver) Reserve() error {
	if !d.available {
		return errs.NewResourceUnavailableError("driver", d.id.String())
	}
	d.available = false
	return nil
}

// Release marks the driver available again. Releasing an available driver is a no-op.
func (d *Driver) Release() {
	d.available = true
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setNames(firstName, lastName, secondName string) error {
	if err := errors.Join(
		validateName("first_name", firstName, true),
		validateName("last_name", lastName, true),
		validateName("second_name", secondName, false),
	); err != nil {
		return err
	}
	d.firstName = strings.TrimSpace(firstName)
	d.lastName = strings.TrimSpace(lastName)
	d.secondName = strings.TrimSpace(secondName)
	return nil
}

func (d *Driver) setLicences(licences []LicenceClass) error {
	normalized, err := normalizeLicences(licences)
	if err != nil {
		return err
	}
	d.licences = normalized
	return nil
}

func validateName(param, value string, required bool) error {
	value = strings.TrimSpace(value)
	if value == "" {
		if required {
			return errs.NewValueIsRequiredError(param)
		}
		return nil
	}
	if n := utf8.RuneCountInString(value); n > maxNameLength {
		return errs.NewValueIsOutOfRangeError(param, n, 1, maxNameLength)
	}
	return nil
}
