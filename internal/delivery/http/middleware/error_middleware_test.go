package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "subsplit/internal/domain/errors"
	"subsplit/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails string
	}{
		{
			name:        "domain error keeps details",
			err:         errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("cost must be positive"), "invalid subscription"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantDetails: "cost must be positive",
		},
		{
			name:       "forbidden hides details",
			err:        domainerrors.ErrForbidden.WithDetails("owner only"),
			wantStatus: http.StatusForbidden,
			wantCode:   "FORBIDDEN",
		},
		{
			name:       "revoked identity",
			err:        errors.Wrap(service.ErrIdentityRevoked, "tx aborted"),
			wantStatus: http.StatusUnauthorized,
			wantCode:   "SESSION_REVOKED",
		},
		{
			name:        "echo http error",
			err:         echo.NewHTTPError(http.StatusNotFound, "Not Found"),
			wantStatus:  http.StatusNotFound,
			wantCode:    "HTTP_ERROR",
			wantDetails: "Not Found",
		},
		{
			name:       "unknown error",
			err:        errors.New("connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			NewErrorMiddleware(slog.New(slog.DiscardHandler)).HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantDetails, body.Error.Details)
		})
	}
}

func TestErrorMiddleware_HandleHTTPError_CancelledBySessionRevoke(t *testing.T) {
	ctx, cancel := context.WithCancelCause(context.Background())
	cancel(service.ErrIdentityRevoked)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx), rec)

	NewErrorMiddleware(slog.New(slog.DiscardHandler)).HandleHTTPError(context.Canceled, c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "SESSION_REVOKED", decodeError(t, rec).Error.Code)
}

func TestErrorMiddleware_HandleHTTPError_SkipsCommitted(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	_ = c.NoContent(http.StatusAccepted)

	NewErrorMiddleware(slog.New(slog.DiscardHandler)).HandleHTTPError(errors.New("late"), c)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Empty(t, rec.Body.String())
}
