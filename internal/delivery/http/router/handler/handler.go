// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"subsplit/internal/delivery/http/middleware"
	"subsplit/internal/delivery/http/response"
	"subsplit/internal/delivery/http/validator"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// errResponded stops a handler after an error response has been written.
// The error handler skips committed responses, so returning it is enough.
type errResponded struct {
	err error
}

func (e *errResponded) Error() string {
	if e.err == nil {
		return "response already written"
	}

	return e.err.Error()
}

func (e *errResponded) Unwrap() error {
	return e.err
}

// currentUserID returns the authenticated user or writes a 401.
func currentUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, &errResponded{err: response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")}
	}

	return userID, nil
}

// uuidParam parses the named path parameter or writes a 400.
func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, &errResponded{err: response.BadRequest(c, "INVALID_ID", "Invalid "+name)}
	}

	return id, nil
}

// bindAndValidate decodes the body into req and checks its validate tags,
// writing a 400 on failure.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return &errResponded{err: response.BindingError(c, "INVALID_INPUT", "Malformed request body")}
	}
	if err := c.Validate(req); err != nil {
		return &errResponded{err: response.ValidationError(c, validator.Describe(err))}
	}

	return nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
