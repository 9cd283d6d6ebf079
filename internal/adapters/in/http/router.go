package http

import (
	"net/http"

	"logistics/internal/adapters/in/http/api"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

// NewRouter wires the API operations, the health endpoint, the OpenAPI
// document and Swagger UI into one echo instance.
func NewRouter(handlers Handlers, resolver ActorResolver, logger *zap.Logger) (*echo.Echo, error) {
	doc, err := api.GetSwagger()
	if err != nil {
		return nil, err
	}

	validator, err := RequestValidator(doc)
	if err != nil {
		return nil, err
	}

	if err = api.RegisterSwaggerDoc(); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(log.ERROR)
	e.HTTPErrorHandler = NewErrorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(RequestLogger(logger))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/api/schema", func(c echo.Context) error {
		data, err := api.SpecJSON()
		if err != nil {
			return err
		}
		return c.JSONBlob(http.StatusOK, data)
	})
	e.GET("/api/docs/*", echoSwagger.WrapHandler)

	g := e.Group("", TokenAuth(resolver), validator)
	api.RegisterHandlers(g, NewServer(handlers))

	return e, nil
}
