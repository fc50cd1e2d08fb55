package handler

import (
	"log/slog"
	"net/http"

	"wedump/internal/delivery/api/response"
	"wedump/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	Feed   usecase.FeedUsecase
	Logger *slog.Logger
}

// NotificationHandler serves the unread notification inbox.
type NotificationHandler struct {
	feed   usecase.FeedUsecase
	logger *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		feed:   params.Feed,
		logger: params.Logger,
	}
}

// NotificationIDParam is the notification id path parameter.
type NotificationIDParam struct {
	ID string `param:"id" validate:"required"`
}

// ListNotifications returns the unread notifications of the current user
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.feed.Notifications())
}

// MarkRead marks one notification as read
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	var req NotificationIDParam
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.feed.MarkNotificationRead(c.Request().Context(), req.ID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": req.ID})
}
