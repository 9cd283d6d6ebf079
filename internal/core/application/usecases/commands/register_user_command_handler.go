package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
)

// Session is a user together with a freshly issued token.
type Session struct {
	User  *identity.User
	Token identity.Token
}

// RegisterUserCommandHandler creates accounts and logs them in straight away.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	tokens     ports.TokenStore
	tokenTTL   time.Duration
}

func NewRegisterUserCommandHandler(
	uowFactory UserUoWFactory,
	tokens ports.TokenStore,
	tokenTTL time.Duration,
) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		tokens:     tokens,
		tokenTTL:   tokenTTL,
	}
}

// Handle hashes the password, stores the user and issues a token.
// A taken email is reported as ValidationError by the repository.
func (h RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (Session, error) {
	if err := cmd.Validate(); err != nil {
		return Session{}, err
	}

	hash, err := identity.HashPassword(cmd.Password())
	if err != nil {
		return Session{}, err
	}

	user, err := identity.NewUser(
		kernel.NewUUID(),
		cmd.Email(),
		cmd.Username(),
		hash,
		cmd.Role(),
		cmd.FirstName(),
		cmd.LastName(),
	)
	if err != nil {
		return Session{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return Session{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.UserRepository().Add(ctx, user); err != nil {
		return Session{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return Session{}, err
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
