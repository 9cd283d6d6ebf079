package kernel

import (
	"errors"
	"fmt"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// CoordinatesScale is the number of fractional digits stored for latitude and longitude.
const CoordinatesScale = 6

var (
	// ErrCoordinatesIsNotConstructed is returned when a zero-value Coordinates is used.
	ErrCoordinatesIsNotConstructed = errs.NewValueIsRequiredError(
		"coordinates must be created via NewCoordinates constructor")

	latitudeMin  = decimal.NewFromInt(-90)
	latitudeMax  = decimal.NewFromInt(90)
	longitudeMin = decimal.NewFromInt(-180)
	longitudeMax = decimal.NewFromInt(180)
)

// Coordinates is a WGS84 latitude/longitude pair rounded to six fractional digits.
// It only locates reference cities; no distance or routing math is done with it.
type Coordinates struct { //nolint:recvcheck //using for validation
	latitude  decimal.Decimal
	longitude decimal.Decimal
	guard     guard.ConstructorGuard
}

// NewCoordinates validates latitude ∈ [-90, 90] and longitude ∈ [-180, 180].
// Both violations are reported together.
func NewCoordinates(latitude, longitude decimal.Decimal) (Coordinates, error) {
	c := Coordinates{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(c.setLatitude(latitude), c.setLongitude(longitude)); err != nil {
		return Coordinates{}, err
	}

	return c, nil
}

// Validate reports ErrCoordinatesIsNotConstructed for a zero value.
func (c Coordinates) Validate() error {
	return c.guard.Validate(ErrCoordinatesIsNotConstructed)
}

func (c Coordinates) Latitude() decimal.Decimal {
	return c.latitude
}

func (c Coordinates) Longitude() decimal.Decimal {
	return c.longitude
}

func (c Coordinates) String() string {
	return fmt.Sprintf("(%s, %s)",
		c.latitude.StringFixed(CoordinatesScale), c.longitude.StringFixed(CoordinatesScale))
}

func (c *Coordinates) setLatitude(v decimal.Decimal) error {
	if v.LessThan(latitudeMin) || v.GreaterThan(latitudeMax) {
		return errs.NewValueIsOutOfRangeError("latitude", v.String(), latitudeMin.String(), latitudeMax.String())
	}
	c.latitude = v.Round(CoordinatesScale)
	return nil
}

func (c *Coordinates) setLongitude(v decimal.Decimal) error {
	if v.LessThan(longitudeMin) || v.GreaterThan(longitudeMax) {
		return errs.NewValueIsOutOfRangeError("longitude", v.String(), longitudeMin.String(), longitudeMax.String())
	}
	c.longitude = v.Round(CoordinatesScale)
	return nil
}
