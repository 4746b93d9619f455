package middleware

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "subsplit/internal/delivery/context"
	"subsplit/internal/delivery/http/response"
	domainerrors "subsplit/internal/domain/errors"
	"subsplit/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	keyUserID    = "userID"
	keySessionID = "sessionID"
)

// AuthMiddleware validates access tokens and binds each request to its session.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	sessions service.SessionRegistry
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, sessions service.SessionRegistry, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, sessions: sessions, logger: logger}
}

// Authenticate validates the bearer access token. The request context is
// bound to the token's session and is cancelled if the session is revoked
// while the handler runs.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := bearerToken(c)
		if !ok {
			return response.Unauthorized(c, "INVALID_TOKEN", "Authorization header must carry a Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString, service.TokenTypeAccess)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		ctx, release := m.sessions.Bind(c.Request().Context(), claims.SessionID, claims.UserID)
		defer release()

		if errors.Is(context.Cause(ctx), service.ErrIdentityRevoked) {
			return response.Unauthorized(c, domainerrors.ErrSessionRevoked.ErrorCode(), domainerrors.ErrSessionRevoked.Message())
		}

		reqLogger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(slog.String("user_id", claims.UserID.String()))
		ctx = deliverycontext.WithLogger(ctx, reqLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		SetIdentity(c, claims.UserID, claims.SessionID)

		return next(c)
	}
}

// bearerToken reads the token from the Authorization header. Browsers cannot
// set headers on an EventSource, so the access_token query parameter is
// accepted as well.
func bearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		token := c.QueryParam("access_token")

		return token, token != ""
	}

	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found || token == "" {
		return "", false
	}

	return token, true
}

// SetIdentity records the authenticated user and session on the echo context.
func SetIdentity(c echo.Context, userID, sessionID uuid.UUID) {
	c.Set(keyUserID, userID)
	c.Set(keySessionID, sessionID)
}

// GetUserID returns the authenticated user set by Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(keyUserID).(uuid.UUID)

	return userID, ok && userID != uuid.Nil
}

// GetSessionID returns the session set by Authenticate.
func GetSessionID(c echo.Context) (uuid.UUID, bool) {
	sessionID, ok := c.Get(keySessionID).(uuid.UUID)

	return sessionID, ok && sessionID != uuid.Nil
}
