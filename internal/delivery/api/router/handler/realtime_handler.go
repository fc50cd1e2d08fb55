package handler

import (
	"log/slog"

	"wedump/internal/delivery/api/realtime"
	deliverycontext "wedump/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RealtimeHandlerParams holds dependencies for RealtimeHandler, injected by Fx.
type RealtimeHandlerParams struct {
	fx.In

	Hub    *realtime.Hub
	Logger *slog.Logger
}

// RealtimeHandler upgrades browser tabs to the feed change stream.
type RealtimeHandler struct {
	hub    *realtime.Hub
	logger *slog.Logger
}

// NewRealtimeHandler is the constructor for RealtimeHandler
func NewRealtimeHandler(params RealtimeHandlerParams) *RealtimeHandler {
	return &RealtimeHandler{
		hub:    params.Hub,
		logger: params.Logger,
	}
}

// Connect serves the websocket until the tab goes away
func (h *RealtimeHandler) Connect(c echo.Context) error {
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)

	return h.hub.Serve(c.Response(), c.Request(), logger)
}
