package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
)

// ResourceRegistry is the only writer of driver and vehicle availability.
//
// TryReserve* is an atomic check-and-set: it returns false when the resource is
// already taken, including by a transaction that committed a moment earlier.
// Release* is idempotent.
type ResourceRegistry interface {
	TryReserveDriver(ctx context.Context, id kernel.UUID) (bool, error)
	TryReserveVehicle(ctx context.Context, plate string) (bool, error)
	ReleaseDriver(ctx context.Context, id kernel.UUID) error
	ReleaseVehicle(ctx context.Context, plate string) error
}
