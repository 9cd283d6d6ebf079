// Package orderrepo maps order aggregates to the orders table.
package orderrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Foreign keys of the orders table.
const (
	ClientFK     = "fk_orders_client"
	DispatcherFK = "fk_orders_dispatcher"
	CityFromFK   = "fk_orders_city_from"
	CityToFK     = "fk_orders_city_to"
)

// OrderDTO is the orders row. Status is stored by name so reports read it directly.
type OrderDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ClientID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	DispatcherID *uuid.UUID      `gorm:"type:uuid;index"`
	Weight       decimal.Decimal `gorm:"type:numeric(10,3);not null"`
	Volume       decimal.Decimal `gorm:"type:numeric(10,3);not null"`
	CityFromID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	CityToID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Status       string          `gorm:"type:varchar(20);not null;index"`
	CreatedAt    time.Time       `gorm:"not null;index"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	var dispatcherID *uuid.UUID
	if id := o.DispatcherID(); id != nil {
		raw := id.Bytes()
		dispatcherID = &raw
	}

	return OrderDTO{
		ID:           o.ID().Bytes(),
		ClientID:     o.ClientID().Bytes(),
		DispatcherID: dispatcherID,
		Weight:       o.Weight().Decimal(),
		Volume:       o.Volume().Decimal(),
		CityFromID:   o.CityFrom().Bytes(),
		CityToID:     o.CityTo().Bytes(),
		Status:       o.Status().String(),
		CreatedAt:    o.CreatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromGoogle(dto.ClientID)
	if err != nil {
		return nil, err
	}

	var dispatcherID *kernel.UUID
	if dto.DispatcherID != nil {
		dID, dispatcherErr := kernel.UUIDFromGoogle(*dto.DispatcherID)
		if dispatcherErr != nil {
			return nil, dispatcherErr
		}
		dispatcherID = &dID
	}

	weight, err := kernel.NewAmount("weight", dto.Weight)
	if err != nil {
		return nil, err
	}

	volume, err := kernel.NewAmount("volume", dto.Volume)
	if err != nil {
		return nil, err
	}

	cityFrom, err := kernel.UUIDFromGoogle(dto.CityFromID)
	if err != nil {
		return nil, err
	}

	cityTo, err := kernel.UUIDFromGoogle(dto.CityToID)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, clientID, dispatcherID, weight, volume, cityFrom, cityTo, status, dto.CreatedAt)
}
