package userrepo

import (
	"context"
	"errors"

	"logistics/internal/adapters/out/postgres/pgerrs"
	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

var ErrEmailIsTaken = errors.New("a user with this email already exists")

type aggregateTracker interface {
	TrackAggregate(kind, id string)
}

// GormUserRepository implements ports.UserRepository.
type GormUserRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormUserRepository(db *gorm.DB, tracker aggregateTracker) *GormUserRepository {
	return &GormUserRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a user. The unique email index yields ValueIsInvalid("email").
func (r *GormUserRepository) Add(ctx context.Context, user *identity.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	dto := userFromDomain(user)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerrs.IsUniqueViolation(err) {
			return errs.NewValueIsInvalidErrorWithCause("email", ErrEmailIsTaken)
		}
		return err
	}

	r.tracker.TrackAggregate("user", user.ID().String())
	return nil
}

func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (*identity.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id.String())
		}
		return nil, err
	}

	return userToDomain(dto)
}

// GetByEmail matches the stored lower-case email.
func (r *GormUserRepository) GetByEmail(ctx context.Context, email string) (*identity.User, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", email)
		}
		return nil, err
	}

	return userToDomain(dto)
}
