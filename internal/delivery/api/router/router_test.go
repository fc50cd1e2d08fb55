package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"wedump/internal/delivery/api/middleware"
	"wedump/internal/delivery/api/router/handler"
	"wedump/internal/delivery/api/validator"
	"wedump/internal/domain/entity"
	mockusecase "wedump/internal/mocks/usecase"
	"wedump/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newRoutedEcho(session usecase.SessionUsecase, feed usecase.FeedUsecase) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	NewRouter(RouterParams{
		AuthHandler:         handler.NewAuthHandler(handler.AuthHandlerParams{Session: session, Logger: logger}),
		FeedHandler:         handler.NewFeedHandler(handler.FeedHandlerParams{Feed: feed, Logger: logger}),
		NotificationHandler: handler.NewNotificationHandler(handler.NotificationHandlerParams{Feed: feed, Logger: logger}),
		PageHandler:         handler.NewPageHandler(handler.PageHandlerParams{Session: session, Feed: feed, Logger: logger}),
		MediaHandler:        &handler.MediaHandler{},
		RealtimeHandler:     &handler.RealtimeHandler{},
		ShareHandler:        &handler.ShareHandler{},
		SessionMiddleware:   middleware.NewSessionMiddleware(session),
	}).RegisterRoutes(e)

	return e
}

func TestRegisterRoutes_RejectsCrossSiteWrites(t *testing.T) {
	session := mockusecase.NewMockSessionUsecase(t)
	feed := mockusecase.NewMockFeedUsecase(t)
	e := newRoutedEcho(session, feed)

	like := httptest.NewRequest(http.MethodPost, "http://127.0.0.1:8080/api/v1/photos/p1/like", nil)
	like.Header.Set(echo.HeaderOrigin, "https://evil.example")
	like.Header.Set("Sec-Fetch-Site", "cross-site")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, like)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	login := httptest.NewRequest(http.MethodPost, "http://127.0.0.1:8080/auth/login",
		strings.NewReader(url.Values{"email": {"attacker@example.com"}, "password": {"secret1"}}.Encode()))
	login.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	login.Header.Set(echo.HeaderOrigin, "https://evil.example")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, login)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRegisterRoutes_AllowsSameOriginWrites(t *testing.T) {
	session := mockusecase.NewMockSessionUsecase(t)
	session.EXPECT().CurrentSession().Return(&entity.Identity{UID: "victim"})
	feed := mockusecase.NewMockFeedUsecase(t)
	feed.EXPECT().ToggleLike(mock.Anything, "p1").Return(&usecase.LikeResult{PhotoID: "p1", Liked: true}, nil)
	e := newRoutedEcho(session, feed)

	req := httptest.NewRequest(http.MethodPost, "http://127.0.0.1:8080/api/v1/photos/p1/like", nil)
	req.Header.Set(echo.HeaderOrigin, "http://127.0.0.1:8080")
	req.Header.Set("Sec-Fetch-Site", "same-origin")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
