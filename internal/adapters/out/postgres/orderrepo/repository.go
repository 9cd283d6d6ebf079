package orderrepo

import (
	"context"
	"errors"

	"logistics/internal/adapters/out/postgres/pgerrs"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(kind, id string)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return missingReference(err, aggregate)
	}

	r.tracker.TrackAggregate("order", aggregate.ID().String())
	return nil
}

// Update writes the decision of an order: its status and dispatcher. Nothing
// else on an order ever changes.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"status":        dto.Status,
		"dispatcher_id": dto.DispatcherID,
	})
	if result.Error != nil {
		return missingReference(result.Error, aggregate)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate("order", aggregate.ID().String())
	return nil
}

// missingReference reports a write that points at a user or city that does
// not exist (or was deleted by a concurrent transaction) as NotFound.
func missingReference(err error, o *order.Order) error {
	if !pgerrs.IsForeignKeyViolation(err) {
		return err
	}

	switch pgerrs.ConstraintName(err) {
	case ClientFK:
		return errs.NewObjectNotFoundErrorWithCause("user", o.ClientID().String(), err)
	case DispatcherFK:
		return errs.NewObjectNotFoundErrorWithCause("user", o.DispatcherID(), err)
	case CityFromFK:
		return errs.NewObjectNotFoundErrorWithCause("city", o.CityFrom().String(), err)
	case CityToFK:
		return errs.NewObjectNotFoundErrorWithCause("city", o.CityTo().String(), err)
	default:
		return err
	}
}

func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate reads the order with SELECT ... FOR UPDATE.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, id, true)
}

func (r *GormOrderRepository) get(ctx context.Context, id kernel.UUID, forUpdate bool) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)
	if forUpdate {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto OrderDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
