package commands

import (
	"errors"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	email     string
	username  string
	password  string
	role      identity.Role
	firstName string
	lastName  string

	guard guard.ConstructorGuard
}

func NewRegisterUserCommand(email, username, password, role, firstName, lastName string) (RegisterUserCommand, error) {
	r, roleErr := identity.ParseRole(role)

	var passwordErr error
	if password == "" {
		passwordErr = errs.NewValueIsRequiredError("password")
	}

	if err := errors.Join(roleErr, passwordErr); err != nil {
		return RegisterUserCommand{}, err
	}

	return RegisterUserCommand{
		email:     email,
		username:  username,
		password:  password,
		role:      r,
		firstName: firstName,
		lastName:  lastName,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

func (c RegisterUserCommand) Email() string {
	return c.email
}

func (c RegisterUserCommand) Username() string {
	return c.username
}

func (c RegisterUserCommand) Password() string {
	return c.password
}

func (c RegisterUserCommand) Role() identity.Role {
	return c.role
}

func (c RegisterUserCommand) FirstName() string {
	return c.firstName
}

func (c RegisterUserCommand) LastName() string {
	return c.lastName
}
