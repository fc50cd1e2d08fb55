package worker

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wedump/config"
	"wedump/internal/delivery/worker/handler"
	"wedump/internal/domain/constants"
	"wedump/internal/domain/service"
	mockService "wedump/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*echo.Echo, *mockService.MockPushService) {
	t.Helper()

	cfg := &config.Config{
		PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal},
		Push:   &config.PushConfig{Enabled: true, TopicPrefix: "user-"},
	}
	cfg.Env.Env = constants.EnvDevelop
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	pushSvc := mockService.NewMockPushService(t)
	pushHandler := handler.NewPushHandler(handler.PushHandlerParams{
		Config:  cfg,
		Logger:  logger,
		PushSvc: pushSvc,
	})

	return newEcho(cfg, logger, pushHandler), pushSvc
}

func TestWorkerHealth(t *testing.T) {
	e, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, true, body["push_enabled"])
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestWorkerPushRoute(t *testing.T) {
	e, pushSvc := newTestServer(t)
	pushSvc.EXPECT().
		SendToTopic(mock.Anything, "user-u1", "New photo", "bob shared a new photo", mock.Anything).
		Return("msg-1", nil)

	event, err := json.Marshal(&service.NotificationEvent{
		NotificationID: "n1",
		UserID:         "u1",
		Type:           "new_photo",
		Data:           map[string]string{"userName": "bob", "photoId": "p1"},
	})
	require.NoError(t, err)

	var msg handler.PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(event)
	msg.Message.MessageID = "m1"
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
