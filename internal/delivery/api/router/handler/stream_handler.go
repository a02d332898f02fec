package handler

import (
	"log/slog"

	deliverycontext "lawyerup/internal/delivery/context"
	"lawyerup/internal/infra/realtime"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StreamHandlerParams holds dependencies for StreamHandler, injected by Fx.
type StreamHandlerParams struct {
	fx.In

	Hub    *realtime.Hub
	Logger *slog.Logger
}

// StreamHandler upgrades authenticated requests to the realtime websocket.
type StreamHandler struct {
	hub    *realtime.Hub
	logger *slog.Logger
}

// NewStreamHandler is the constructor for StreamHandler
func NewStreamHandler(params StreamHandlerParams) *StreamHandler {
	return &StreamHandler{hub: params.Hub, logger: params.Logger}
}

// Stream blocks until the client disconnects or the hub closes.
func (h *StreamHandler) Stream(c echo.Context) error {
	userID := deliverycontext.GetUserID(c)

	// After the upgrade the response is hijacked; errors can only be logged.
	if err := h.hub.Serve(c.Response(), c.Request(), userID); err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
			Debug("Realtime stream ended", slog.Any("error", err))
	}

	return nil
}
