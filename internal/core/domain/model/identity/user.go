package identity

import (
	"errors"
	"net/mail"
	"strings"
	"unicode/utf8"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"golang.org/x/crypto/bcrypt"
)

const (
	MinPasswordLength = 8
	// bcrypt refuses input longer than 72 bytes.
	maxPasswordBytes  = 72
	maxUsernameLength = 150
)

var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User is a registered account. The email is the login and is unique.
type User struct {
	id           kernel.UUID
	email        string
	username     string
	passwordHash string
	role         Role
	firstName    string
	lastName     string
	guard        guard.ConstructorGuard
}

// HashPassword validates the plain password and returns its bcrypt hash.
func HashPassword(plain string) (string, error) {
	if n := utf8.RuneCountInString(plain); n < MinPasswordLength || len(plain) > maxPasswordBytes {
		return "", errs.NewValueIsOutOfRangeError("password length", n, MinPasswordLength, maxPasswordBytes)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// NewUser builds a user around an already hashed password.
func NewUser(id kernel.UUID, email, username, passwordHash string, role Role, firstName, lastName string) (*User, error) {
	u := &User{
		firstName: strings.TrimSpace(firstName),
		lastName:  strings.TrimSpace(lastName),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setUsername(username),
		u.setPasswordHash(passwordHash),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

func (u *User) ID() kernel.UUID {
	return u.id
}

func (u *User) Email() string {
	return u.email
}

func (u *User) Username() string {
	return u.username
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Role() Role {
	return u.role
}

func (u *User) FirstName() string {
	return u.firstName
}

func (u *User) LastName() string {
	return u.lastName
}

// CheckPassword compares plain against the stored hash in constant time.
func (u *User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(plain)) == nil
}

// Actor returns the caller identity for this user.
func (u *User) Actor() Actor {
	return Actor{id: u.id, role: u.role, guard: guard.NewConstructorGuard()}
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return errs.NewValueIsInvalidErrorWithCause("email", errors.New("not a valid address"))
	}
	u.email = email
	return nil
}

func (u *User) setUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	if n := utf8.RuneCountInString(username); n > maxUsernameLength {
		return errs.NewValueIsOutOfRangeError("username", n, 1, maxUsernameLength)
	}
	u.username = username
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("password")
	}
	u.passwordHash = hash
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
