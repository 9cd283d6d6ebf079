// Package userrepo persists user accounts and their authentication tokens.
package userrepo

import (
	"time"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(254);not null;uniqueIndex"`
	Username     string    `gorm:"type:varchar(150);not null"`
	PasswordHash string    `gorm:"type:varchar(128);not null"`
	Role         string    `gorm:"type:varchar(20);not null"`
	FirstName    string    `gorm:"type:varchar(150)"`
	LastName     string    `gorm:"type:varchar(150)"`
	CreatedAt    time.Time
}

func (UserDTO) TableName() string {
	return "users"
}

type TokenDTO struct {
	Key       string    `gorm:"type:varchar(40);primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
}

func (TokenDTO) TableName() string {
	return "auth_tokens"
}

func userFromDomain(u *identity.User) UserDTO {
	return UserDTO{
		ID:           u.ID().Bytes(),
		Email:        u.Email(),
		Username:     u.Username(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		FirstName:    u.FirstName(),
		LastName:     u.LastName(),
	}
}

func userToDomain(dto UserDTO) (*identity.User, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	role, err := identity.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}

	return identity.NewUser(id, dto.Email, dto.Username, dto.PasswordHash, role, dto.FirstName, dto.LastName)
}

func tokenFromDomain(t identity.Token) TokenDTO {
	return TokenDTO{
		Key:       t.Key,
		UserID:    t.UserID.Bytes(),
		CreatedAt: t.CreatedAt,
		ExpiresAt: t.ExpiresAt,
	}
}

func tokenToDomain(dto TokenDTO) (identity.Token, error) {
	userID, err := kernel.UUIDFromGoogle(dto.UserID)
	if err != nil {
		return identity.Token{}, err
	}

	return identity.Token{
		Key:       dto.Key,
		UserID:    userID,
		CreatedAt: dto.CreatedAt.UTC(),
		ExpiresAt: dto.ExpiresAt.UTC(),
	}, nil
}
