package ports

import (
	"context"

	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/core/domain/model/kernel"
)

// DriverRepository persists driver master data. Update never writes availability;
// that belongs to ResourceRegistry.
type DriverRepository interface {
	Add(ctx context.Context, driver *fleet.Driver) error
	Update(ctx context.Context, driver *fleet.Driver) error
	Get(ctx context.Context, id kernel.UUID) (*fleet.Driver, error)

	// Delete removes an available driver. A reserved driver yields InvalidState.
	Delete(ctx context.Context, id kernel.UUID) error
}

// VehicleRepository persists vehicle master data keyed by licence plate.
type VehicleRepository interface {
	Add(ctx context.Context, vehicle *fleet.Vehicle) error
	Update(ctx context.Context, vehicle *fleet.Vehicle) error
	Get(ctx context.Context, plate string) (*fleet.Vehicle, error)
	Delete(ctx context.Context, plate string) error
}
