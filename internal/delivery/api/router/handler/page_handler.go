package handler

import (
	"log/slog"
	"net/http"

	"wedump/internal/delivery/api/response"
	"wedump/internal/delivery/api/view"
	deliverycontext "wedump/internal/delivery/context"
	"wedump/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

var pages = []usecase.Page{usecase.PageHome, usecase.PageProfile, usecase.PageFriends, usecase.PageAlbums}

// PageHandlerParams holds dependencies for PageHandler, injected by Fx.
type PageHandlerParams struct {
	fx.In

	Session usecase.SessionUsecase
	Feed    usecase.FeedUsecase
	Logger  *slog.Logger
}

// PageHandler renders the screen and handles navigation between pages.
type PageHandler struct {
	session usecase.SessionUsecase
	feed    usecase.FeedUsecase
	logger  *slog.Logger
}

// NewPageHandler is the constructor for PageHandler
func NewPageHandler(params PageHandlerParams) *PageHandler {
	return &PageHandler{
		session: params.Session,
		feed:    params.Feed,
		logger:  params.Logger,
	}
}

// PageRequest names a navigation target.
type PageRequest struct {
	Page string `param:"page" query:"page"`
}

// PageResponse reports the active page.
type PageResponse struct {
	Page usecase.Page `json:"page"`
}

// Screen renders the auth screen or the app screen. A page query parameter
// navigates before rendering.
func (h *PageHandler) Screen(c echo.Context) error {
	var req PageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid page")
	}

	if req.Page != "" && h.session.IsAuthenticated() {
		if err := h.feed.NavigateTo(c.Request().Context(), usecase.Page(req.Page)); err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
				Warn("Navigation failed", slog.String("page", req.Page), slog.Any("error", err))
		}
	}

	return c.Render(http.StatusOK, view.TemplateScreen, h.screen())
}

// Wall renders just the photo wall for live refreshes
func (h *PageHandler) Wall(c echo.Context) error {
	return c.Render(http.StatusOK, view.TemplateWall, h.screen())
}

// Navigate switches the active page
func (h *PageHandler) Navigate(c echo.Context) error {
	var req PageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid page")
	}

	if err := h.feed.NavigateTo(c.Request().Context(), usecase.Page(req.Page)); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, PageResponse{Page: h.feed.CurrentPage()})
}

func (h *PageHandler) screen() *view.Screen {
	identity := h.session.CurrentSession()
	if identity == nil {
		return &view.Screen{}
	}

	return &view.Screen{
		Identity:      identity,
		Page:          h.feed.CurrentPage(),
		Pages:         pages,
		Photos:        h.feed.Photos(),
		Users:         h.feed.Users(),
		Notifications: h.feed.Notifications(),
		Stats:         h.feed.Stats(),
	}
}
