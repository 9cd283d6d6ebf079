// Package cityrepo persists cities.
package cityrepo

import (
	"logistics/internal/core/domain/model/city"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CityDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name      string          `gorm:"type:varchar(50);not null;index"`
	Latitude  decimal.Decimal `gorm:"type:numeric(9,6);not null"`
	Longitude decimal.Decimal `gorm:"type:numeric(9,6);not null"`
}

func (CityDTO) TableName() string {
	return "cities"
}

func fromDomain(c *city.City) CityDTO {
	return CityDTO{
		ID:        c.ID().Bytes(),
		Name:      c.Name(),
		Latitude:  c.Coordinates().Latitude(),
		Longitude: c.Coordinates().Longitude(),
	}
}

func toDomain(dto CityDTO) (*city.City, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	coordinates, err := kernel.NewCoordinates(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	return city.NewCity(id, dto.Name, coordinates)
}
