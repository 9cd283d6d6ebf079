// Package city holds the reference list of cities orders travel between.
package city

import (
	"errors"
	"strings"
	"unicode/utf8"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

const maxNameLength = 50

var ErrCityIsNotConstructed = errors.New("City must be created via NewCity constructor")

type City struct {
	id          kernel.UUID
	name        string
	coordinates kernel.Coordinates
	guard       guard.ConstructorGuard
}

func NewCity(id kernel.UUID, name string, coordinates kernel.Coordinates) (*City, error) {
	c := &City{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setCoordinates(coordinates),
	); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *City) Validate() error {
	if c == nil {
		return ErrCityIsNotConstructed
	}
	return c.guard.Validate(ErrCityIsNotConstructed)
}

func (c *City) ID() kernel.UUID {
	return c.id
}

func (c *City) Name() string {
	return c.name
}

func (c *City) Coordinates() kernel.Coordinates {
	return c.coordinates
}

// Update renames or relocates the city.
func (c *City) Update(name string, coordinates kernel.Coordinates) error {
	probe := &City{}
	if err := errors.Join(probe.setName(name), probe.setCoordinates(coordinates)); err != nil {
		return err
	}
	c.name = probe.name
	c.coordinates = probe.coordinates
	return nil
}

func (c *City) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *City) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("city_name")
	}
	if n := utf8.RuneCountInString(name); n > maxNameLength {
		return errs.NewValueIsOutOfRangeError("city_name", n, 1, maxNameLength)
	}
	c.name = name
	return nil
}

func (c *City) setCoordinates(coordinates kernel.Coordinates) error {
	if err := coordinates.Validate(); err != nil {
		return err
	}
	c.coordinates = coordinates
	return nil
}
