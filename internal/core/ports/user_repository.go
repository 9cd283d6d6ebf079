package ports

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
)

type UserRepository interface {
	// Add persists a new user. A taken email yields ValueIsInvalid.
	Add(ctx context.Context, user *identity.User) error
	Get(ctx context.Context, id kernel.UUID) (*identity.User, error)
	GetByEmail(ctx context.Context, email string) (*identity.User, error)
}

// TokenStore keeps issued authentication tokens.
type TokenStore interface {
	Save(ctx context.Context, token identity.Token) error

	// Lookup returns the token for key, or ObjectNotFound when the key is unknown
	// or expired at now.
	Lookup(ctx context.Context, key string, now time.Time) (identity.Token, error)

	// DeleteExpired purges tokens expired at now and reports how many went away.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
