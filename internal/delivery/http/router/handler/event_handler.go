package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"subsplit/config"
	deliverycontext "subsplit/internal/delivery/context"
	"subsplit/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// streamBufferSize bounds the events queued for one slow client.
const streamBufferSize = 32

// SSE event names.
const (
	sseEventReady   = "ready"
	sseEventChange  = "change"
	sseEventResync  = "resync"
	sseEventRevoked = "revoked"
)

// EventHandlerParams holds dependencies for EventHandler, injected by Fx.
type EventHandlerParams struct {
	fx.In

	Bus    service.ChangeBus
	Config *config.Config
	Logger *slog.Logger
}

// EventHandler streams the change events that affect the signed-in user.
type EventHandler struct {
	bus       service.ChangeBus
	heartbeat time.Duration
	logger    *slog.Logger
}

// NewEventHandler is the constructor for EventHandler.
func NewEventHandler(params EventHandlerParams) *EventHandler {
	return &EventHandler{
		bus:       params.Bus,
		heartbeat: params.Config.SSE.Heartbeat,
		logger:    params.Logger,
	}
}

// Stream handles GET /events. The stream ends when the client disconnects or
// the session is revoked; in the second case a final revoked event is sent.
// When the client falls behind, events are dropped and a resync event tells
// it to refetch.
func (h *EventHandler) Stream(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	events := make(chan service.ChangeEvent, streamBufferSize)
	var overflowed atomic.Bool
	registration := h.bus.Subscribe(service.TopicAll, service.ForUser(userID), func(_ context.Context, event service.ChangeEvent) {
		select {
		case events <- event:
		default:
			overflowed.Store(true)
		}
	})
	defer registration.Close()

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.Header().Set("X-Accel-Buffering", "no")
	res.WriteHeader(http.StatusOK)

	if err := writeSSE(res, sseEventReady, map[string]string{"userId": userID.String()}); err != nil {
		return nil
	}

	logger.Debug("Event stream opened")

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if errors.Is(context.Cause(ctx), service.ErrIdentityRevoked) {
				_ = writeSSE(res, sseEventRevoked, map[string]string{"reason": "session revoked"})
			}
			logger.Debug("Event stream closed", slog.Any("cause", context.Cause(ctx)))

			return nil

		case event := <-events:
			if overflowed.Swap(false) {
				if err := writeSSE(res, sseEventResync, nil); err != nil {
					return nil
				}
			}
			if err := writeSSE(res, sseEventChange, event); err != nil {
				return nil
			}

		case <-ticker.C:
			if overflowed.Swap(false) {
				if err := writeSSE(res, sseEventResync, nil); err != nil {
					return nil
				}

				continue
			}
			if _, err := fmt.Fprint(res, ": ping\n\n"); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}

// writeSSE writes one named event with a JSON data line and flushes it.
func writeSSE(res *echo.Response, name string, payload any) error {
	data := []byte("{}")
	if payload != nil {
		var err error
		if data, err = json.Marshal(payload); err != nil {
			return errors.WithStack(err)
		}
	}

	if _, err := fmt.Fprintf(res, "event: %s\ndata: %s\n\n", name, data); err != nil {
		return errors.WithStack(err)
	}
	res.Flush()

	return nil
}
