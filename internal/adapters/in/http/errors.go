package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"bakery/internal/generated/servers"
	"bakery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

var errIDMismatch = errors.New("ID mismatch")

// entityName turns a repository parameter name such as "customer" into the
// form used in response messages.
func entityName(param string) string {
	if param == "" {
		return "Record"
	}
	return strings.ToUpper(param[:1]) + param[1:]
}

// problem classifies err into a status code and the message returned to the client.
func problem(err error) (int, string) {
	var (
		notFound   *errs.ObjectNotFoundError
		duplicate  *errs.DuplicateValueError
		reference  *errs.ReferenceNotFoundError
		transition *errs.InvalidTransitionError
		conflict   *errs.ConcurrencyConflictError
		httpErr    *echo.HTTPError
	)

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound, fmt.Sprintf("%s with ID %v not found", entityName(notFound.ParamName), notFound.ID)
	case errors.As(err, &duplicate):
		if duplicate.ParamName == "email" {
			return http.StatusBadRequest, "A customer with this email already exists"
		}
		return http.StatusBadRequest, fmt.Sprintf("%s is already taken", duplicate.ParamName)
	case errors.As(err, &reference):
		return http.StatusBadRequest, fmt.Sprintf("%s with ID %v does not exist", entityName(reference.Reference), reference.ID)
	case errors.As(err, &transition):
		return http.StatusBadRequest, transition.Reason
	case errors.As(err, &conflict):
		return http.StatusConflict, fmt.Sprintf("%s with ID %v was modified concurrently", entityName(conflict.ParamName), conflict.ID)
	case errors.Is(err, errIDMismatch):
		return http.StatusBadRequest, errIDMismatch.Error()
	case errs.IsValidation(err):
		return http.StatusBadRequest, strings.ReplaceAll(err.Error(), "\n", "; ")
	case errors.As(err, &httpErr):
		return httpErr.Code, fmt.Sprint(httpErr.Message)
	default:
		return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	}
}

// NewErrorHandler replaces echo's default error handler so every failure is
// answered with a servers.Error body. Server errors are logged.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, message := problem(err)
		if code >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
				"error", err,
			)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(code)
		} else {
			writeErr = c.JSON(code, servers.Error{Code: code, Message: message})
		}
		if writeErr != nil {
			logger.ErrorContext(c.Request().Context(), "write error response", "error", writeErr)
		}
	}
}
