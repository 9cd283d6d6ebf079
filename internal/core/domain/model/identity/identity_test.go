package identity_test

import (
	"strings"
	"testing"
	"time"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	r, err := identity.ParseRole("dispatcher")
	require.NoError(t, err)
	assert.Equal(t, identity.RoleDispatcher, r)

	_, err = identity.ParseRole("admin")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewActor(t *testing.T) {
	t.Run("should carry id and role", func(t *testing.T) {
		id := kernel.NewUUID()

		a, err := identity.NewActor(id, identity.RoleClient)

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.True(t, a.ID().IsEqual(id))
		assert.True(t, a.IsClient())
		assert.False(t, a.IsDispatcher())
	})

	t.Run("should refuse an unknown role", func(t *testing.T) {
		_, err := identity.NewActor(kernel.NewUUID(), identity.Role("root"))

		require.Error(t, err)
	})

	t.Run("zero value is not an actor", func(t *testing.T) {
		var a identity.Actor

		assert.Equal(t, identity.ErrActorIsNotConstructed, a.Validate())
	})
}

func TestHashPassword(t *testing.T) {
	t.Run("should hash and verify", func(t *testing.T) {
		hash, err := identity.HashPassword("correct horse")
		require.NoError(t, err)
		assert.NotEqual(t, "correct horse", hash)

		u, err := identity.NewUser(kernel.NewUUID(), "a@b.io", "a", hash, identity.RoleClient, "", "")
		require.NoError(t, err)
		assert.True(t, u.CheckPassword("correct horse"))
		assert.False(t, u.CheckPassword("wrong horse"))
	})

	t.Run("should refuse short and oversized passwords", func(t *testing.T) {
		_, err := identity.HashPassword("short")
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = identity.HashPassword(strings.Repeat("p", 73))
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestNewUser(t *testing.T) {
	t.Run("should normalize email", func(t *testing.T) {
		u, err := identity.NewUser(kernel.NewUUID(), " Client@Example.COM ", "client", "hash",
			identity.RoleClient, "Ann", "Lee")

		require.NoError(t, err)
		assert.Equal(t, "client@example.com", u.Email())
		assert.Equal(t, "Ann", u.FirstName())
		assert.Equal(t, identity.RoleClient, u.Actor().Role())
		assert.True(t, u.Actor().ID().IsEqual(u.ID()))
	})

	t.Run("should join field errors", func(t *testing.T) {
		_, err := identity.NewUser(kernel.NewUUID(), "not an email", "", "", identity.Role("x"), "", "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "email")
		assert.Contains(t, err.Error(), "username")
		assert.Contains(t, err.Error(), "password")
		assert.Contains(t, err.Error(), "role")
	})
}

func TestNewToken(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	user := kernel.NewUUID()

	t.Run("should issue a 40 hex key", func(t *testing.T) {
		tok, err := identity.NewToken(user, now, time.Hour)

		require.NoError(t, err)
		assert.Len(t, tok.Key, 40)
		assert.Equal(t, strings.ToLower(tok.Key), tok.Key)
		assert.True(t, tok.UserID.IsEqual(user))
		assert.Equal(t, now.Add(time.Hour), tok.ExpiresAt)
	})

	t.Run("should issue distinct keys", func(t *testing.T) {
		a, _ := identity.NewToken(user, now, time.Hour)
		b, _ := identity.NewToken(user, now, time.Hour)

		assert.NotEqual(t, a.Key, b.Key)
	})

	t.Run("should expire at the deadline", func(t *testing.T) {
		tok, _ := identity.NewToken(user, now, time.Minute)

		assert.False(t, tok.IsExpired(now.Add(59*time.Second)))
		assert.True(t, tok.IsExpired(now.Add(time.Minute)))
	})

	t.Run("should refuse a non positive ttl", func(t *testing.T) {
		_, err := identity.NewToken(user, now, 0)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}
