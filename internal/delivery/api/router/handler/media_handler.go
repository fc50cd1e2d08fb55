package handler

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"net/url"

	"wedump/internal/delivery/api/response"
	"wedump/internal/domain/service"
	"wedump/internal/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MediaHandlerParams holds dependencies for MediaHandler, injected by Fx.
type MediaHandlerParams struct {
	fx.In

	ObjectStore service.ObjectStore
	Logger      *slog.Logger
}

// MediaHandler serves stored photos when the bucket has no public URL.
type MediaHandler struct {
	store  service.ObjectStore
	logger *slog.Logger
}

// NewMediaHandler is the constructor for MediaHandler
func NewMediaHandler(params MediaHandlerParams) *MediaHandler {
	return &MediaHandler{
		store:  params.ObjectStore,
		logger: params.Logger,
	}
}

// Download streams an object. The token query parameter must match the
// token issued with the object's download URL.
func (h *MediaHandler) Download(c echo.Context) error {
	path, err := url.PathUnescape(c.Param("*"))
	if err != nil || path == "" {
		return response.Error(c, http.StatusNotFound, "NOT_FOUND", "Resource not found", nil)
	}

	obj, err := h.store.Download(c.Request().Context(), path)
	if err != nil {
		if errors.Is(err, service.ErrObjectNotFound) {
			return response.Error(c, http.StatusNotFound, "NOT_FOUND", "Resource not found", nil)
		}

		return errors.Wrap(err, "download object")
	}

	token := c.QueryParam("token")
	if obj.DownloadToken == "" || subtle.ConstantTimeCompare([]byte(token), []byte(obj.DownloadToken)) != 1 {
		return response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied", nil)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "private, max-age=3600")

	return c.Blob(http.StatusOK, obj.ContentType, obj.Data)
}
