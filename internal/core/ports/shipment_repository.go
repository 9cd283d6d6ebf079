package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
)

// ShipmentRepository persists shipment aggregates.
type ShipmentRepository interface {
	// Add persists a new shipment. A second shipment for the same order is rejected.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update writes status and review, guarded by the aggregate's version.
	// A concurrent change yields VersionIsInvalid.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetForUpdate locks the shipment row until the transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)
}
