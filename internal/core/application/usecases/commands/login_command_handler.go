package commands

import (
	"context"
	"errors"
	"time"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// LoginCommandHandler exchanges email and password for a token.
type LoginCommandHandler struct {
	uowFactory UserUoWFactory
	tokens     ports.TokenStore
	tokenTTL   time.Duration
}

func NewLoginCommandHandler(uowFactory UserUoWFactory, tokens ports.TokenStore, tokenTTL time.Duration) LoginCommandHandler {
	return LoginCommandHandler{
		uowFactory: uowFactory,
		tokens:     tokens,
		tokenTTL:   tokenTTL,
	}
}

// Handle reports Unauthenticated for an unknown email and a wrong password alike.
func (h LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (Session, error) {
	if err := cmd.Validate(); err != nil {
		return Session{}, err
	}

	uow := h.uowFactory.Create()

	user, err := uow.UserRepository().GetByEmail(ctx, cmd.Email())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return Session{}, errs.NewUnauthenticatedError("unable to log in with provided credentials")
	}
	if err != nil {
		return Session{}, err
	}

	if !user.CheckPassword(cmd.Password()) {
		return Session{}, errs.NewUnauthenticatedError("unable to log in with provided credentials")
	}

	token, err := identity.NewToken(user.ID(), time.Now(), h.tokenTTL)
	if err != nil {
		return Session{}, err
	}

	if err = h.tokens.Save(ctx, token); err != nil {
		return Session{}, err
	}

	return Session{User: user, Token: token}, nil
}
