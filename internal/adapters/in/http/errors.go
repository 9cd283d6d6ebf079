package http

import (
	"errors"
	"fmt"
	"net/http"

	"logistics/internal/adapters/in/http/api"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

var kindStatus = map[errs.Kind]int{
	errs.KindUnauthenticated:     http.StatusUnauthorized,
	errs.KindForbidden:           http.StatusForbidden,
	errs.KindNotFound:            http.StatusNotFound,
	errs.KindInvalidState:        http.StatusConflict,
	errs.KindResourceUnavailable: http.StatusConflict,
	errs.KindBadRequest:          http.StatusBadRequest,
	errs.KindValidation:          http.StatusUnprocessableEntity,
	errs.KindInternal:            http.StatusInternalServerError,
}

// errorResponse classifies err into a status code and an api.Error body.
// Echo's own errors (unknown route, bad path parameter, malformed JSON) keep
// their status. Internal failures never leak their message.
func errorResponse(err error) (int, api.Error) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, api.Error{Code: codeForStatus(he.Code), Message: fmt.Sprint(he.Message)}
	}

	kind := errs.KindOf(err)
	status := kindStatus[kind]
	if kind == errs.KindInternal {
		return status, api.Error{Code: api.ErrorCodeInternal, Message: "internal server error"}
	}
	return status, api.Error{Code: api.ErrorCode(kind), Message: err.Error()}
}

func codeForStatus(status int) api.ErrorCode {
	switch status {
	case http.StatusUnauthorized:
		return api.ErrorCodeUnauthenticated
	case http.StatusForbidden:
		return api.ErrorCodeForbidden
	case http.StatusNotFound:
		return api.ErrorCodeNotFound
	case http.StatusConflict:
		return api.ErrorCodeInvalidState
	case http.StatusUnprocessableEntity:
		return api.ErrorCodeValidationError
	}
	if status >= http.StatusInternalServerError {
		return api.ErrorCodeInternal
	}
	return api.ErrorCodeBadRequest
}

// NewErrorHandler renders every handler error as an api.Error and logs the
// ones that end in a 5xx.
func NewErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := errorResponse(err)
		if status >= http.StatusInternalServerError {
			logger.Error("request failed",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Path()),
				zap.Error(err))
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, body)
		}
		if err != nil {
			logger.Error("write error response", zap.Error(err))
		}
	}
}
