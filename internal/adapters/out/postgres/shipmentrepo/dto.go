// Package shipmentrepo maps shipment aggregates to the shipments table.
package shipmentrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Foreign keys of the shipments table.
const (
	OrderFK   = "fk_shipments_order"
	DriverFK  = "fk_shipments_driver"
	VehicleFK = "fk_shipments_vehicle"
)

// ShipmentDTO is the shipments row. The review columns are all null or all set.
type ShipmentDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID         uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	DriverID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	VehiclePlate    string          `gorm:"type:varchar(9);not null;index"`
	ArrivalTime     time.Time       `gorm:"not null;index"`
	Price           decimal.Decimal `gorm:"type:numeric(10,3);not null"`
	Status          string          `gorm:"type:varchar(20);not null;index"`
	ReviewRating    *int
	ReviewText      *string `gorm:"type:text"`
	ReviewWrittenAt *time.Time
	Version         int `gorm:"not null"`
}

func (ShipmentDTO) TableName() string {
	return "shipments"
}

func fromDomain(s *shipment.Shipment) ShipmentDTO {
	dto := ShipmentDTO{
		ID:           s.ID().Bytes(),
		OrderID:      s.OrderID().Bytes(),
		DriverID:     s.DriverID().Bytes(),
		VehiclePlate: s.VehiclePlate(),
		ArrivalTime:  s.ArrivalTime(),
		Price:        s.Price().Decimal(),
		Status:       s.Status().String(),
		Version:      s.Version(),
	}

	if r := s.Review(); r != nil {
		rating := r.Rating()
		text := r.Text()
		writtenAt := r.CreatedAt()
		dto.ReviewRating = &rating
		dto.ReviewText = &text
		dto.ReviewWrittenAt = &writtenAt
	}

	return dto
}

func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromGoogle(dto.OrderID)
	if err != nil {
		return nil, err
	}

	driverID, err := kernel.UUIDFromGoogle(dto.DriverID)
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewAmount("price", dto.Price)
	if err != nil {
		return nil, err
	}

	status, err := shipment.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var review *shipment.Review
	if dto.ReviewRating != nil && dto.ReviewText != nil && dto.ReviewWrittenAt != nil {
		r, reviewErr := shipment.NewReview(*dto.ReviewRating, *dto.ReviewText, *dto.ReviewWrittenAt)
		if reviewErr != nil {
			return nil, reviewErr
		}
		review = &r
	}

	return shipment.RestoreShipment(id, orderID, driverID, dto.VehiclePlate, dto.ArrivalTime, price,
		status, review, dto.Version)
}
