package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"subsplit/config"
	deliverycontext "subsplit/internal/delivery/context"
	"subsplit/internal/domain/constants"
	domainerrors "subsplit/internal/domain/errors"
	"subsplit/internal/domain/service"
	mockusecase "subsplit/internal/mocks/usecase"
	"subsplit/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestConfig(provider, env string) *config.Config {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: provider}}
	cfg.Env.Env = env

	return cfg
}

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockusecase.MockPushUsecase) {
	uc := mockusecase.NewMockPushUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		PushUC: uc,
	})

	return h, uc
}

func pushBody(t *testing.T, data string, attributes map[string]string) string {
	t.Helper()

	var msg PubSubMessage
	msg.Message.Data = data
	msg.Message.MessageID = "msg-1"
	msg.Message.Attributes = attributes
	msg.Subscription = "projects/p/subscriptions/push"

	raw, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(raw)
}

func encodeEvent(t *testing.T, event *service.PushEvent) string {
	t.Helper()

	raw, err := json.Marshal(event)
	require.NoError(t, err)

	return base64.StdEncoding.EncodeToString(raw)
}

func doPush(h *PushHandler, body, authorization string) *httptest.ResponseRecorder {
	e := echo.New()
	e.POST("/push", h.HandlePush)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	event := &service.PushEvent{
		RequestID:        "req-from-event",
		NotificationID:   "n-1",
		UserID:           "u-1",
		NotificationType: "friend_request",
		Title:            "New friend request",
		Body:             "bob wants to be friends",
	}

	tests := []struct {
		name       string
		body       func(t *testing.T) string
		setupMock  func(uc *mockusecase.MockPushUsecase)
		wantStatus int
	}{
		{
			name: "delivered",
			body: func(t *testing.T) string { return pushBody(t, encodeEvent(t, event), nil) },
			setupMock: func(uc *mockusecase.MockPushUsecase) {
				uc.EXPECT().DeliverPush(mock.Anything, event).Return(&usecase.PushDeliveryResult{Devices: 2, SuccessCount: 2}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "undecodable data is acknowledged",
			body:       func(t *testing.T) string { return pushBody(t, "%%%not-base64", nil) },
			wantStatus: http.StatusOK,
		},
		{
			name: "invalid event is acknowledged",
			body: func(t *testing.T) string { return pushBody(t, encodeEvent(t, event), nil) },
			setupMock: func(uc *mockusecase.MockPushUsecase) {
				uc.EXPECT().DeliverPush(mock.Anything, event).
					Return(nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("user_id"), "bad event"))
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "transient failure is retried",
			body: func(t *testing.T) string { return pushBody(t, encodeEvent(t, event), nil) },
			setupMock: func(uc *mockusecase.MockPushUsecase) {
				uc.EXPECT().DeliverPush(mock.Anything, event).Return(nil, errors.New("fcm unavailable"))
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "malformed envelope",
			body:       func(*testing.T) string { return `{"message":` },
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, uc := newTestPushHandler(t, newTestConfig(constants.PubSubProviderLocal, constants.EnvDevelop))
			if tt.setupMock != nil {
				tt.setupMock(uc)
			}

			rec := doPush(h, tt.body(t), "")

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_RequestIDFromAttributes(t *testing.T) {
	h, uc := newTestPushHandler(t, newTestConfig(constants.PubSubProviderLocal, constants.EnvDevelop))
	event := &service.PushEvent{RequestID: "req-from-event", NotificationID: "n-1", UserID: "u-1"}

	var seen string
	uc.EXPECT().DeliverPush(mock.Anything, event).
		Run(func(ctx context.Context, _ *service.PushEvent) {
			seen = deliverycontext.GetRequestIDFromContext(ctx)
		}).
		Return(&usecase.PushDeliveryResult{}, nil)

	rec := doPush(h, pushBody(t, encodeEvent(t, event), map[string]string{"request_id": "req-from-attr"}), "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-from-attr", seen)
}

func TestPushHandler_VerifiesGoogleToken(t *testing.T) {
	event := &service.PushEvent{NotificationID: "n-1", UserID: "u-1"}

	tests := []struct {
		name          string
		authorization string
		payload       *idtoken.Payload
		validateErr   error
		wantStatus    int
	}{
		{name: "missing header", wantStatus: http.StatusUnauthorized},
		{name: "not bearer", authorization: "Basic abc", wantStatus: http.StatusUnauthorized},
		{
			name:          "rejected token",
			authorization: "Bearer bad",
			validateErr:   errors.New("idtoken: token expired"),
			wantStatus:    http.StatusUnauthorized,
		},
		{
			name:          "foreign issuer",
			authorization: "Bearer tok",
			payload:       &idtoken.Payload{Issuer: "https://evil.example.com"},
			wantStatus:    http.StatusUnauthorized,
		},
		{
			name:          "unverified email",
			authorization: "Bearer tok",
			payload:       &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": false}},
			wantStatus:    http.StatusUnauthorized,
		},
		{
			name:          "valid token",
			authorization: "Bearer tok",
			payload:       &idtoken.Payload{Issuer: "accounts.google.com", Claims: map[string]any{"email_verified": true}},
			wantStatus:    http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, uc := newTestPushHandler(t, newTestConfig(constants.PubSubProviderGoogle, constants.EnvProduction))
			require.True(t, h.verifyPushAuth)

			var gotAudience string
			h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
				gotAudience = audience
				if tt.validateErr != nil {
					return nil, tt.validateErr
				}

				return tt.payload, nil
			}
			if tt.wantStatus == http.StatusOK {
				uc.EXPECT().DeliverPush(mock.Anything, event).Return(&usecase.PushDeliveryResult{Devices: 1}, nil)
			}

			rec := doPush(h, pushBody(t, encodeEvent(t, event), nil), tt.authorization)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.payload != nil {
				assert.Equal(t, "http://example.com/push", gotAudience)
			}
		})
	}
}

func TestNewPushHandler_SkipsAuthInDevelop(t *testing.T) {
	h, _ := newTestPushHandler(t, newTestConfig(constants.PubSubProviderGoogle, constants.EnvDevelop))

	assert.False(t, h.verifyPushAuth)
}
