package userrepo

import (
	"context"
	"errors"
	"time"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTokenStore keeps tokens in the auth_tokens table. Expired rows stay until
// DeleteExpired runs; Lookup ignores them.
type GormTokenStore struct {
	db *gorm.DB
}

func NewGormTokenStore(db *gorm.DB) *GormTokenStore {
	return &GormTokenStore{db: db}
}

func (s *GormTokenStore) Save(ctx context.Context, token identity.Token) error {
	dto := tokenFromDomain(token)
	return s.db.WithContext(ctx).Create(&dto).Error
}

func (s *GormTokenStore) Lookup(ctx context.Context, key string, now time.Time) (identity.Token, error) {
	var dto TokenDTO
	err := s.db.WithContext(ctx).First(&dto, "key = ? AND expires_at > ?", key, now).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return identity.Token{}, errs.NewObjectNotFoundError("token", "provided")
	}
	if err != nil {
		return identity.Token{}, err
	}

	return tokenToDomain(dto)
}

func (s *GormTokenStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := s.db.WithContext(ctx).Where("expires_at <= ?", now).Delete(&TokenDTO{})
	return result.RowsAffected, result.Error
}
