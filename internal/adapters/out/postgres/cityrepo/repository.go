package cityrepo

import (
	"context"
	"errors"

	"logistics/internal/adapters/out/postgres/pgerrs"
	"logistics/internal/core/domain/model/city"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

type aggregateTracker interface {
	TrackAggregate(kind, id string)
}

// GormCityRepository implements ports.CityRepository.
type GormCityRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormCityRepository(db *gorm.DB, tracker aggregateTracker) *GormCityRepository {
	return &GormCityRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormCityRepository) Add(ctx context.Context, c *city.City) error {
	if err := c.Validate(); err != nil {
		return err
	}

	dto := fromDomain(c)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate("city", c.ID().String())
	return nil
}

func (r *GormCityRepository) Update(ctx context.Context, c *city.City) error {
	if err := c.Validate(); err != nil {
		return err
	}

	dto := fromDomain(c)
	result := r.db.WithContext(ctx).Model(&CityDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"name":      dto.Name,
		"latitude":  dto.Latitude,
		"longitude": dto.Longitude,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("city", c.ID().String())
	}

	r.tracker.TrackAggregate("city", c.ID().String())
	return nil
}

func (r *GormCityRepository) Get(ctx context.Context, id kernel.UUID) (*city.City, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CityDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("city", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a city unless an order starts or ends there.
func (r *GormCityRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if _, err := r.Get(ctx, id); err != nil {
		return err
	}

	var refs int64
	if err := r.db.WithContext(ctx).Table("orders").
		Where("city_from_id = ? OR city_to_id = ?", id.Bytes(), id.Bytes()).
		Count(&refs).Error; err != nil {
		return err
	}
	if refs > 0 {
		return errs.NewInvalidStateError("city", "referenced by orders", "delete")
	}

	// The count misses orders inserted by transactions that have not
	// committed yet; the foreign keys on orders catch those.
	if err := r.db.WithContext(ctx).Delete(&CityDTO{}, "id = ?", id.Bytes()).Error; err != nil {
		if pgerrs.IsForeignKeyViolation(err) {
			return errs.NewInvalidStateError("city", "referenced by orders", "delete")
		}
		return err
	}

	r.tracker.TrackAggregate("city", id.String())
	return nil
}
