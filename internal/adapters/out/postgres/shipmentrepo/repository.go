package shipmentrepo

import (
	"context"
	"errors"
	"fmt"

	"logistics/internal/adapters/out/postgres/pgerrs"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormShipmentRepository implements ports.ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(kind, id string)
}

func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a shipment. The unique index on order_id turns a second shipment
// for the same order into ValueIsInvalid; a missing order, driver or vehicle
// is NotFound.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerrs.IsUniqueViolation(err) {
			return errs.NewValueIsInvalidErrorWithCause("order",
				fmt.Errorf("order %s already has a shipment", aggregate.OrderID()))
		}
		if pgerrs.IsForeignKeyViolation(err) {
			switch pgerrs.ConstraintName(err) {
			case OrderFK:
				return errs.NewObjectNotFoundErrorWithCause("order", aggregate.OrderID().String(), err)
			case DriverFK:
				return errs.NewObjectNotFoundErrorWithCause("driver", aggregate.DriverID().String(), err)
			case VehicleFK:
				return errs.NewObjectNotFoundErrorWithCause("vehicle", aggregate.VehiclePlate(), err)
			}
		}
		return err
	}

	r.tracker.TrackAggregate("shipment", aggregate.ID().String())
	return nil
}

// Update writes status and review when the stored version still matches the
// aggregate's, and bumps the version.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ShipmentDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"status":            dto.Status,
			"review_rating":     dto.ReviewRating,
			"review_text":       dto.ReviewText,
			"review_written_at": dto.ReviewWrittenAt,
			"version":           gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&ShipmentDTO{}).Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("shipment", aggregate.ID().String())
		}
		return errs.NewVersionIsInvalidError("shipment")
	}

	r.tracker.TrackAggregate("shipment", aggregate.ID().String())
	return nil
}

func (r *GormShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate reads the shipment with SELECT ... FOR UPDATE.
func (r *GormShipmentRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	return r.get(ctx, id, true)
}

func (r *GormShipmentRepository) get(ctx context.Context, id kernel.UUID, forUpdate bool) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)
	if forUpdate {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto ShipmentDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
