package queries

import (
	"context"
	"errors"
	"strings"
	"time"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResolveActorQueryHandler turns a bearer token into the Actor it authenticates.
// A missing, unknown or expired token and a deleted user are Unauthenticated;
// storage failures pass through.
//
// Example:
//
//	actor, err := handler.Handle(ctx, key)
//	if errs.KindOf(err) == errs.KindUnauthenticated {
//	    // 401
//	}
type ResolveActorQueryHandler struct {
	tokens ports.TokenStore
	db     *gorm.DB
	now    func() time.Time
}

func NewResolveActorQueryHandler(tokens ports.TokenStore, db *gorm.DB) ResolveActorQueryHandler {
	return ResolveActorQueryHandler{tokens: tokens, db: db, now: time.Now}
}

// WithClock replaces the time source used to check token expiry.
func (h ResolveActorQueryHandler) WithClock(now func() time.Time) ResolveActorQueryHandler {
	h.now = now
	return h
}

func (h ResolveActorQueryHandler) Handle(ctx context.Context, tokenKey string) (identity.Actor, error) {
	tokenKey = strings.TrimSpace(tokenKey)
	if tokenKey == "" {
		return identity.Actor{}, errs.NewUnauthenticatedError("authentication credentials were not provided")
	}

	token, err := h.tokens.Lookup(ctx, tokenKey, h.now())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return identity.Actor{}, errs.NewUnauthenticatedError("invalid or expired token")
	}
	if err != nil {
		return identity.Actor{}, err
	}

	var (
		id   uuid.UUID
		role string
	)
	row := h.db.WithContext(ctx).Raw(`SELECT id, role FROM users WHERE id = ?`, token.UserID.Bytes()).Row()
	if err = row.Scan(&id, &role); err != nil {
		if isNoRows(err) {
			return identity.Actor{}, errs.NewUnauthenticatedError("user is no longer registered")
		}
		return identity.Actor{}, err
	}

	userID, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return identity.Actor{}, err
	}
	parsed, err := identity.ParseRole(role)
	if err != nil {
		return identity.Actor{}, err
	}

	return identity.NewActor(userID, parsed)
}
