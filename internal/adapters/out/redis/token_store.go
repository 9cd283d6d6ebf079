// Package redis keeps authentication tokens in Redis. Every token is a hash
// under "token:<key>" that Redis expires on its own at the token's expiry.
package redis

import (
	"context"
	"errors"
	"strconv"
	"time"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const (
	tokenKeyPrefix = "token:"
	scanBatch      = 200
)

// TokenStore implements ports.TokenStore.
type TokenStore struct {
	client *redis.Client
}

func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{client: client}
}

func (s *TokenStore) Save(ctx context.Context, token identity.Token) error {
	key := tokenKeyPrefix + token.Key

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key,
			"user_id", token.UserID.String(),
			"created_at", token.CreatedAt.UnixNano(),
			"expires_at", token.ExpiresAt.UnixNano(),
		)
		pipe.ExpireAt(ctx, key, token.ExpiresAt)
		return nil
	})
	return err
}

// Lookup also checks the stored expiry against now, so a key Redis has not
// evicted yet is still refused.
func (s *TokenStore) Lookup(ctx context.Context, key string, now time.Time) (identity.Token, error) {
	fields, err := s.client.HGetAll(ctx, tokenKeyPrefix+key).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return identity.Token{}, err
	}
	if len(fields) == 0 {
		return identity.Token{}, errs.NewObjectNotFoundError("token", "provided")
	}

	token, err := decodeToken(key, fields)
	if err != nil {
		return identity.Token{}, err
	}
	if token.IsExpired(now) {
		return identity.Token{}, errs.NewObjectNotFoundError("token", "provided")
	}

	return token, nil
}

// DeleteExpired removes tokens whose stored expiry is not after now. Redis
// normally evicts them first; this catches keys saved without a TTL and clock skew.
func (s *TokenStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	var removed int64
	iter := s.client.Scan(ctx, 0, tokenKeyPrefix+"*", scanBatch).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()

		raw, err := s.client.HGet(ctx, key, "expires_at").Int64()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return removed, err
		}
		if time.Unix(0, raw).After(now) {
			continue
		}

		n, err := s.client.Del(ctx, key).Result()
		if err != nil {
			return removed, err
		}
		removed += n
	}

	return removed, iter.Err()
}

func decodeToken(key string, fields map[string]string) (identity.Token, error) {
	userID, err := kernel.UUIDFromString(fields["user_id"])
	if err != nil {
		return identity.Token{}, err
	}

	createdAt, err := strconv.ParseInt(fields["created_at"], 10, 64)
	if err != nil {
		return identity.Token{}, errs.NewValueIsInvalidErrorWithCause("created_at", err)
	}

	expiresAt, err := strconv.ParseInt(fields["expires_at"], 10, 64)
	if err != nil {
		return identity.Token{}, errs.NewValueIsInvalidErrorWithCause("expires_at", err)
	}

	return identity.Token{
		Key:       key,
		UserID:    userID,
		CreatedAt: time.Unix(0, createdAt).UTC(),
		ExpiresAt: time.Unix(0, expiresAt).UTC(),
	}, nil
}
