package identity

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Role is the closed set of user roles.
type Role string

const (
	RoleClient     Role = "client"
	RoleDispatcher Role = "dispatcher"
)

func ParseRole(s string) (Role, error) {
	r := Role(s)
	if err := r.Validate(); err != nil {
		return "", err
	}
	return r, nil
}

func (r Role) Validate() error {
	switch r {
	case RoleClient, RoleDispatcher:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a role", string(r)))
	}
}

func (r Role) String() string {
	return string(r)
}
