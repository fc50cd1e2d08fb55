package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"wedump/internal/delivery/api/response"
	"wedump/internal/domain/entity"
	domainerrors "wedump/internal/domain/errors"
	"wedump/internal/errors"
	mockusecase "wedump/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError

	return e
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorInfo {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	require.NotNil(t, body.Meta)

	return *body.Error
}

func TestHandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name:        "app error keeps its message",
			err:         errors.Wrap(domainerrors.ErrPasswordMismatch, "register"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "PASSWORD_MISMATCH",
			wantMessage: "Passwords do not match",
		},
		{
			name:        "auth error uses the fixed table",
			err:         domainerrors.NewAuthError(domainerrors.AuthWrongPassword, "INVALID_PASSWORD"),
			wantStatus:  http.StatusUnauthorized,
			wantCode:    "AUTH_wrong-password",
			wantMessage: "Incorrect password",
		},
		{
			name:        "echo http error",
			err:         echo.NewHTTPError(http.StatusNotFound, "not here"),
			wantStatus:  http.StatusNotFound,
			wantCode:    "HTTP_ERROR",
			wantMessage: "not here",
		},
		{
			name:        "unknown error is hidden",
			err:         errors.New("boom"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL_ERROR",
			wantMessage: "Internal server error, please try again later",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho()
			e.GET("/", func(echo.Context) error { return tt.err })

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			info := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, info.Code)
			assert.Equal(t, tt.wantMessage, info.Message)
		})
	}
}

func TestHandleHTTPError_OversizedUpload(t *testing.T) {
	e := newTestEcho()
	e.Use(echomiddleware.BodyLimit("1K"))
	e.POST("/photos", func(c echo.Context) error {
		t.Fatal("handler must not run")

		return nil
	})
	e.POST("/auth/login", func(c echo.Context) error {
		t.Fatal("handler must not run")

		return nil
	})

	upload := httptest.NewRequest(http.MethodPost, "/photos", bytes.NewReader(make([]byte, 4096)))
	upload.Header.Set(echo.HeaderContentType, echo.MIMEMultipartForm+"; boundary=x")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, upload)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	info := decodeError(t, rec)
	assert.Equal(t, "IMAGE_TOO_LARGE", info.Code)
	assert.Equal(t, "Image must be less than 5MB", info.Message)

	form := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(make([]byte, 4096)))
	form.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, form)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "HTTP_ERROR", decodeError(t, rec).Code)
}

func TestRequireSession(t *testing.T) {
	t.Run("signed out", func(t *testing.T) {
		session := mockusecase.NewMockSessionUsecase(t)
		session.EXPECT().CurrentSession().Return(nil)

		e := newTestEcho()
		e.GET("/", func(c echo.Context) error {
			t.Fatal("handler must not run")

			return nil
		}, NewSessionMiddleware(session).RequireSession)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Please login first", decodeError(t, rec).Message)
	})

	t.Run("signed in", func(t *testing.T) {
		session := mockusecase.NewMockSessionUsecase(t)
		session.EXPECT().CurrentSession().Return(&entity.Identity{UID: "u1"})

		e := newTestEcho()
		e.GET("/", func(c echo.Context) error {
			identity, ok := GetIdentity(c)
			require.True(t, ok)

			return c.String(http.StatusOK, identity.UID)
		}, NewSessionMiddleware(session).RequireSession)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "u1", rec.Body.String())
	})
}
