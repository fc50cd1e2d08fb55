package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"wedump/config"
	"wedump/internal/domain/entity"
	"wedump/internal/infra/qrcode"
	mockusecase "wedump/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShareHandler_PhotoQRCode(t *testing.T) {
	feed := mockusecase.NewMockFeedUsecase(t)
	feed.EXPECT().Photos().Return([]*entity.Photo{
		{ID: "p1", ImageURL: "/media/photos%2Fu1%2F1_sun.png?alt=media&token=t"},
	})

	cfg := &config.Config{Share: &config.ShareConfig{QRSize: 128, QRLevel: "L"}}
	h := NewShareHandler(ShareHandlerParams{Feed: feed, QRCode: qrcode.NewQRCodeService(cfg), Logger: discardLogger()})

	e := newTestEcho(t)
	e.GET("/photos/:id/qr", h.PhotoQRCode)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/photos/p1/qr", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, pngBytes[:4], rec.Body.Bytes()[:4])

	rec = serve(e, httptest.NewRequest(http.MethodGet, "/photos/missing/qr", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Photo not found", decodeError(t, rec).Message)
}

func TestAbsoluteURL(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Host = "127.0.0.1:8080"
	c := e.NewContext(req, httptest.NewRecorder())

	assert.Equal(t, "http://127.0.0.1:8080/media/a.png", absoluteURL(c, "/media/a.png"))
	assert.Equal(t, "https://cdn.example.com/a.png", absoluteURL(c, "https://cdn.example.com/a.png"))
}
