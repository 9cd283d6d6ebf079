// Package fleetrepo persists drivers and vehicles and implements the resource
// registry that reserves them.
package fleetrepo

import (
	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type DriverDTO struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey"`
	FirstName      string         `gorm:"type:varchar(50);not null"`
	LastName       string         `gorm:"type:varchar(50);not null"`
	SecondName     *string        `gorm:"type:varchar(50)"`
	LicenceClasses pq.StringArray `gorm:"type:text[];not null"`
	IsAvailable    bool           `gorm:"not null;index"`
	Version        int            `gorm:"not null"`
}

func (DriverDTO) TableName() string {
	return "drivers"
}

type VehicleDTO struct {
	LicensePlate  string `gorm:"type:varchar(9);primaryKey"`
	TransportType string `gorm:"type:varchar(3);not null"`
	MaxWeight     int    `gorm:"not null"`
	MaxVolume     int    `gorm:"not null"`
	IsAvailable   bool   `gorm:"not null;index"`
	Version       int    `gorm:"not null"`
}

func (VehicleDTO) TableName() string {
	return "vehicles"
}

func driverFromDomain(d *fleet.Driver) DriverDTO {
	var secondName *string
	if s := d.SecondName(); s != "" {
		secondName = &s
	}

	licences := make(pq.StringArray, 0, len(d.Licences()))
	for _, c := range d.Licences() {
		licences = append(licences, string(c))
	}

	return DriverDTO{
		ID:             d.ID().Bytes(),
		FirstName:      d.FirstName(),
		LastName:       d.LastName(),
		SecondName:     secondName,
		LicenceClasses: licences,
		IsAvailable:    d.IsAvailable(),
		Version:        d.Version(),
	}
}

func driverToDomain(dto DriverDTO) (*fleet.Driver, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	var secondName string
	if dto.SecondName != nil {
		secondName = *dto.SecondName
	}

	licences := make([]fleet.LicenceClass, 0, len(dto.LicenceClasses))
	for _, c := range dto.LicenceClasses {
		licences = append(licences, fleet.LicenceClass(c))
	}

	return fleet.RestoreDriver(id, dto.FirstName, dto.LastName, secondName, licences, dto.IsAvailable, dto.Version)
}

func vehicleFromDomain(v *fleet.Vehicle) VehicleDTO {
	return VehicleDTO{
		LicensePlate:  v.Plate(),
		TransportType: v.TransportType(),
		MaxWeight:     v.MaxWeight(),
		MaxVolume:     v.MaxVolume(),
		IsAvailable:   v.IsAvailable(),
		Version:       v.Version(),
	}
}

func vehicleToDomain(dto VehicleDTO) (*fleet.Vehicle, error) {
	return fleet.RestoreVehicle(dto.LicensePlate, dto.TransportType, dto.MaxWeight, dto.MaxVolume,
		dto.IsAvailable, dto.Version)
}
