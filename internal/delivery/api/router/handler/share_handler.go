package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"wedump/internal/delivery/api/response"
	"wedump/internal/domain/entity"
	domainerrors "wedump/internal/domain/errors"
	"wedump/internal/domain/service"
	"wedump/internal/errors"
	"wedump/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ShareHandlerParams holds dependencies for ShareHandler, injected by Fx.
type ShareHandlerParams struct {
	fx.In

	Feed   usecase.FeedUsecase
	QRCode service.QRCodeService
	Logger *slog.Logger
}

// ShareHandler hands out QR codes pointing at photos on the wall.
type ShareHandler struct {
	feed   usecase.FeedUsecase
	qrcode service.QRCodeService
	logger *slog.Logger
}

// NewShareHandler is the constructor for ShareHandler
func NewShareHandler(params ShareHandlerParams) *ShareHandler {
	return &ShareHandler{
		feed:   params.Feed,
		qrcode: params.QRCode,
		logger: params.Logger,
	}
}

// PhotoQRCode renders the image URL of a loaded photo as a PNG QR code
func (h *ShareHandler) PhotoQRCode(c echo.Context) error {
	var req PhotoIDParam
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	photo := findPhoto(h.feed.Photos(), req.ID)
	if photo == nil {
		return response.HandleAppError(c, domainerrors.ErrPhotoNotFound)
	}

	png, err := h.qrcode.Encode(absoluteURL(c, photo.ImageURL))
	if err != nil {
		return response.HandleAppError(c, errors.Wrap(err, "encode share code"))
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "private, max-age=300")

	return c.Blob(http.StatusOK, "image/png", png)
}

func findPhoto(photos []*entity.Photo, id string) *entity.Photo {
	for _, photo := range photos {
		if photo.ID == id {
			return photo
		}
	}

	return nil
}

// absoluteURL resolves locally served media against the request host.
func absoluteURL(c echo.Context, ref string) string {
	if !strings.HasPrefix(ref, "/") {
		return ref
	}

	return c.Scheme() + "://" + c.Request().Host + ref
}
