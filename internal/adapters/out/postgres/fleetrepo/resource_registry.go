package fleetrepo

import (
	"context"

	"logistics/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormResourceRegistry flips is_available with conditional updates:
//
//	UPDATE drivers SET is_available = false, version = version + 1
//	WHERE id = ? AND is_available = true
//
// Inside a transaction the row lock taken by the first writer makes a racing
// writer wait, then re-evaluate the predicate and update nothing.
type GormResourceRegistry struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormResourceRegistry(db *gorm.DB, tracker aggregateTracker) *GormResourceRegistry {
	return &GormResourceRegistry{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormResourceRegistry) TryReserveDriver(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}
	ok, err := r.flip(ctx, &DriverDTO{}, "id = ?", id.Bytes(), true)
	if ok {
		r.tracker.TrackAggregate("driver", id.String())
	}
	return ok, err
}

func (r *GormResourceRegistry) TryReserveVehicle(ctx context.Context, plate string) (bool, error) {
	ok, err := r.flip(ctx, &VehicleDTO{}, "license_plate = ?", plate, true)
	if ok {
		r.tracker.TrackAggregate("vehicle", plate)
	}
	return ok, err
}

// ReleaseDriver is a no-op for a driver that is already available.
func (r *GormResourceRegistry) ReleaseDriver(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	ok, err := r.flip(ctx, &DriverDTO{}, "id = ?", id.Bytes(), false)
	if ok {
		r.tracker.TrackAggregate("driver", id.String())
	}
	return err
}

// ReleaseVehicle is a no-op for a vehicle that is already available.
func (r *GormResourceRegistry) ReleaseVehicle(ctx context.Context, plate string) error {
	ok, err := r.flip(ctx, &VehicleDTO{}, "license_plate = ?", plate, false)
	if ok {
		r.tracker.TrackAggregate("vehicle", plate)
	}
	return err
}

// flip sets is_available to !reserve on the row matching key when it currently
// holds reserve, and reports whether a row changed.
func (r *GormResourceRegistry) flip(ctx context.Context, model any, key string, value any, reserve bool) (bool, error) {
	result := r.db.WithContext(ctx).Model(model).
		Where(key, value).
		Where("is_available = ?", reserve).
		Updates(map[string]any{
			"is_available": !reserve,
			"version":      gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}
