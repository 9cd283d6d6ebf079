package fleetrepo

import (
	"context"
	"errors"
	"fmt"

	"logistics/internal/adapters/out/postgres/pgerrs"
	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormVehicleRepository implements ports.VehicleRepository.
type GormVehicleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormVehicleRepository(db *gorm.DB, tracker aggregateTracker) *GormVehicleRepository {
	return &GormVehicleRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a vehicle. A plate already registered is ValueIsInvalid.
func (r *GormVehicleRepository) Add(ctx context.Context, vehicle *fleet.Vehicle) error {
	if err := vehicle.Validate(); err != nil {
		return err
	}

	dto := vehicleFromDomain(vehicle)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerrs.IsUniqueViolation(err) {
			return errs.NewValueIsInvalidErrorWithCause("license_plate",
				fmt.Errorf("vehicle %s already exists", vehicle.Plate()))
		}
		return err
	}

	r.tracker.TrackAggregate("vehicle", vehicle.Plate())
	return nil
}

func (r *GormVehicleRepository) Update(ctx context.Context, vehicle *fleet.Vehicle) error {
	if err := vehicle.Validate(); err != nil {
		return err
	}

	dto := vehicleFromDomain(vehicle)
	result := r.db.WithContext(ctx).Model(&VehicleDTO{}).Where("license_plate = ?", dto.LicensePlate).
		Updates(map[string]any{
			"transport_type": dto.TransportType,
			"max_weight":     dto.MaxWeight,
			"max_volume":     dto.MaxVolume,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("vehicle", vehicle.Plate())
	}

	r.tracker.TrackAggregate("vehicle", vehicle.Plate())
	return nil
}

func (r *GormVehicleRepository) Get(ctx context.Context, plate string) (*fleet.Vehicle, error) {
	var dto VehicleDTO
	if err := r.db.WithContext(ctx).First(&dto, "license_plate = ?", plate).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vehicle", plate)
		}
		return nil, err
	}

	return vehicleToDomain(dto)
}

// Delete removes the vehicle only while it is available and no shipment names
// it.
func (r *GormVehicleRepository) Delete(ctx context.Context, plate string) error {
	result := r.db.WithContext(ctx).Where("license_plate = ? AND is_available = ?", plate, true).Delete(&VehicleDTO{})
	if pgerrs.IsForeignKeyViolation(result.Error) {
		return errs.NewInvalidStateError("vehicle", "referenced by shipments", "delete")
	}
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		if _, err := r.Get(ctx, plate); err != nil {
			return err
		}
		return errs.NewInvalidStateError("vehicle", "reserved", "delete")
	}

	r.tracker.TrackAggregate("vehicle", plate)
	return nil
}
