package http

import (
	"net/http"

	"logistics/internal/adapters/in/http/api"
	"logistics/internal/core/application/authz"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/identity"

	"github.com/labstack/echo/v4"
)

const actorContextKey = "actor"

var _ api.ServerInterface = (*Server)(nil)

// Server implements api.ServerInterface on top of the application use cases.
// Handlers return errors; NewErrorHandler turns them into responses.
type Server struct {
	h Handlers
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{h: handlers}
}

// actorOf returns the caller resolved by the token middleware, or the zero
// Actor for anonymous requests.
func actorOf(c echo.Context) identity.Actor {
	actor, _ := c.Get(actorContextKey).(identity.Actor)
	return actor
}

// authorize checks the caller before any request body is interpreted, so an
// anonymous or wrong-role caller never learns about validation rules.
func authorize(c echo.Context, capability authz.Capability) (identity.Actor, error) {
	actor := actorOf(c)
	if err := authz.Require(actor, capability); err != nil {
		return identity.Actor{}, err
	}
	return actor, nil
}

// Register handles POST /api/register - creates an account and returns its first token.
func (s *Server) Register(c echo.Context) error {
	var body api.RegisterJSONRequestBody
	if err := c.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewRegisterUserCommand(
		string(body.Email),
		body.Username,
		body.Password,
		string(body.Role),
		valueOf(body.FirstName),
		valueOf(body.LastName),
	)
	if err != nil {
		return err
	}

	session, err := s.h.Register.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, sessionResponse(session))
}

// Login handles POST /api/login - exchanges credentials for a new token.
func (s *Server) Login(c echo.Context) error {
	var body api.LoginJSONRequestBody
	if err := c.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewLoginCommand(string(body.Email), body.Password)
	if err != nil {
		return err
	}

	session, err := s.h.Login.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, sessionResponse(session))
}

func sessionResponse(session commands.Session) api.AuthResponse {
	return api.AuthResponse{
		Token:     session.Token.Key,
		ExpiresAt: session.Token.ExpiresAt,
		User:      userResponse(session.User),
	}
}
