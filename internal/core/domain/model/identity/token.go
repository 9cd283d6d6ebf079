package identity

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// tokenBytes yields a 40 character hex key.
const tokenBytes = 20

// Token is an opaque bearer credential bound to one user.
type Token struct {
	Key       string
	UserID    kernel.UUID
	CreatedAt time.Time
	ExpiresAt time.Time
}

// NewToken issues a random key for userID valid for ttl from now.
func NewToken(userID kernel.UUID, now time.Time, ttl time.Duration) (Token, error) {
	if err := userID.Validate(); err != nil {
		return Token{}, err
	}
	if ttl <= 0 {
		return Token{}, errs.NewValueIsOutOfRangeError("token_ttl", ttl.String(), "1s", "unbounded")
	}

	raw := make([]byte, tokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return Token{}, errors.Join(errors.New("generate token"), err)
	}

	now = now.UTC()
	return Token{
		Key:       hex.EncodeToString(raw),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}, nil
}

// IsExpired reports whether the token is no longer valid at now.
func (t Token) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
