package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"subsplit/internal/delivery/http/response"
	"subsplit/internal/domain/service"
	mockservice "subsplit/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func runAuthenticate(t *testing.T, m *AuthMiddleware, req *http.Request, next echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, m.Authenticate(next)(c))

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body
}

func TestAuthMiddleware_Authenticate_BindsSession(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	sessions := mockservice.NewMockSessionRegistry(t)
	m := NewAuthMiddleware(tokenSvc, sessions, slog.New(slog.DiscardHandler))

	userID, sessionID := uuid.New(), uuid.New()
	tokenSvc.EXPECT().ValidateToken("good", service.TokenTypeAccess).
		Return(&service.Claims{UserID: userID, SessionID: sessionID, Type: service.TokenTypeAccess}, nil)

	released := false
	sessions.EXPECT().Bind(mock.Anything, sessionID, userID).
		RunAndReturn(func(ctx context.Context, _, _ uuid.UUID) (context.Context, func()) {
			return ctx, func() { released = true }
		})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer good")

	var gotUser, gotSession uuid.UUID
	rec := runAuthenticate(t, m, req, func(c echo.Context) error {
		gotUser, _ = GetUserID(c)
		gotSession, _ = GetSessionID(c)

		return c.NoContent(http.StatusNoContent)
	})

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, userID, gotUser)
	assert.Equal(t, sessionID, gotSession)
	assert.True(t, released, "binding must be released when the request ends")
}

func TestAuthMiddleware_Authenticate_QueryToken(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	sessions := mockservice.NewMockSessionRegistry(t)
	m := NewAuthMiddleware(tokenSvc, sessions, slog.New(slog.DiscardHandler))

	userID, sessionID := uuid.New(), uuid.New()
	tokenSvc.EXPECT().ValidateToken("from-query", service.TokenTypeAccess).
		Return(&service.Claims{UserID: userID, SessionID: sessionID}, nil)
	sessions.EXPECT().Bind(mock.Anything, sessionID, userID).
		RunAndReturn(func(ctx context.Context, _, _ uuid.UUID) (context.Context, func()) {
			return ctx, func() {}
		})

	req := httptest.NewRequest(http.MethodGet, "/events?access_token=from-query", nil)
	rec := runAuthenticate(t, m, req, func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAuthMiddleware_Authenticate_Rejects(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		setup    func(tokenSvc *mockservice.MockTokenService, sessions *mockservice.MockSessionRegistry)
		wantCode string
	}{
		{
			name:     "missing header",
			wantCode: "INVALID_TOKEN",
		},
		{
			name:     "not a bearer token",
			header:   "Basic abc",
			wantCode: "INVALID_TOKEN",
		},
		{
			name:   "invalid token",
			header: "Bearer expired",
			setup: func(tokenSvc *mockservice.MockTokenService, _ *mockservice.MockSessionRegistry) {
				tokenSvc.EXPECT().ValidateToken("expired", service.TokenTypeAccess).Return(nil, errors.New("token is expired"))
			},
			wantCode: "INVALID_TOKEN",
		},
		{
			name:   "revoked session",
			header: "Bearer revoked",
			setup: func(tokenSvc *mockservice.MockTokenService, sessions *mockservice.MockSessionRegistry) {
				userID, sessionID := uuid.New(), uuid.New()
				tokenSvc.EXPECT().ValidateToken("revoked", service.TokenTypeAccess).
					Return(&service.Claims{UserID: userID, SessionID: sessionID}, nil)
				sessions.EXPECT().Bind(mock.Anything, sessionID, userID).
					RunAndReturn(func(ctx context.Context, _, _ uuid.UUID) (context.Context, func()) {
						ctx, cancel := context.WithCancelCause(ctx)
						cancel(service.ErrIdentityRevoked)

						return ctx, func() {}
					})
			},
			wantCode: "SESSION_REVOKED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockservice.NewMockTokenService(t)
			sessions := mockservice.NewMockSessionRegistry(t)
			if tt.setup != nil {
				tt.setup(tokenSvc, sessions)
			}
			m := NewAuthMiddleware(tokenSvc, sessions, slog.New(slog.DiscardHandler))

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}

			rec := runAuthenticate(t, m, req, func(echo.Context) error {
				t.Fatal("next must not run")

				return nil
			})

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			body := decodeError(t, rec)
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantCode, body.Error.Code)
		})
	}
}
