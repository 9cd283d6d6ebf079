package fleetrepo

import (
	"context"
	"errors"

	"logistics/internal/adapters/out/postgres/pgerrs"
	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

type aggregateTracker interface {
	TrackAggregate(kind, id string)
}

// GormDriverRepository implements ports.DriverRepository. It never writes
// is_available after the insert.
type GormDriverRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormDriverRepository(db *gorm.DB, tracker aggregateTracker) *GormDriverRepository {
	return &GormDriverRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormDriverRepository) Add(ctx context.Context, driver *fleet.Driver) error {
	if err := driver.Validate(); err != nil {
		return err
	}

	dto := driverFromDomain(driver)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate("driver", driver.ID().String())
	return nil
}

func (r *GormDriverRepository) Update(ctx context.Context, driver *fleet.Driver) error {
	if err := driver.Validate(); err != nil {
		return err
	}

	dto := driverFromDomain(driver)
	result := r.db.WithContext(ctx).Model(&DriverDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"first_name":      dto.FirstName,
		"last_name":       dto.LastName,
		"second_name":     dto.SecondName,
		"licence_classes": dto.LicenceClasses,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("driver", driver.ID().String())
	}

	r.tracker.TrackAggregate("driver", driver.ID().String())
	return nil
}

func (r *GormDriverRepository) Get(ctx context.Context, id kernel.UUID) (*fleet.Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DriverDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", id.String())
		}
		return nil, err
	}

	return driverToDomain(dto)
}

// Delete removes the driver only while it is available and no shipment,
// finished or not, names it.
func (r *GormDriverRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Where("id = ? AND is_available = ?", id.Bytes(), true).Delete(&DriverDTO{})
	if pgerrs.IsForeignKeyViolation(result.Error) {
		return errs.NewInvalidStateError("driver", "referenced by shipments", "delete")
	}
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		if _, err := r.Get(ctx, id); err != nil {
			return err
		}
		return errs.NewInvalidStateError("driver", "reserved", "delete")
	}

	r.tracker.TrackAggregate("driver", id.String())
	return nil
}
