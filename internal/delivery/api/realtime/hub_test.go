package realtime

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"wedump/internal/domain/entity"
	mockusecase "wedump/internal/mocks/usecase"
	"wedump/internal/usecase"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func dial(t *testing.T, hub *Hub) *websocket.Conn {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = hub.Serve(w, r, discardLogger())
	}))
	t.Cleanup(srv.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.Eventually(t, func() bool { return hub.Len() == 1 }, time.Second, 10*time.Millisecond)

	return conn
}

func TestHubForwardsFeedEvents(t *testing.T) {
	var listener usecase.FeedListener
	unsubscribed := false

	feed := mockusecase.NewMockFeedUsecase(t)
	feed.EXPECT().Subscribe(mock.Anything).
		RunAndReturn(func(l usecase.FeedListener) func() {
			listener = l

			return func() { unsubscribed = true }
		})

	lc := fxtest.NewLifecycle(t)
	hub := NewHub(HubParams{Lc: lc, Feed: feed, Logger: discardLogger()})
	require.NotNil(t, listener)

	conn := dial(t, hub)

	listener(context.Background(), entity.FeedEvent{Kind: entity.FeedEventPhotos})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg Message
	require.NoError(t, json.Unmarshal(payload, &msg))
	assert.Equal(t, MessageTypeFeedChanged, msg.Type)
	assert.Equal(t, entity.FeedEventPhotos, msg.Kind)

	lc.RequireStart().RequireStop()
	assert.True(t, unsubscribed)
	assert.Equal(t, 0, hub.Len())
}

func TestHubRejectsAfterClose(t *testing.T) {
	hub := newHub(discardLogger())
	hub.Close()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = hub.Serve(w, r, discardLogger())
	}))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err = conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway))
	assert.Equal(t, 0, hub.Len())
}

func TestHubDropsSlowClient(t *testing.T) {
	hub := newHub(discardLogger())
	client := &Client{id: "slow", hub: hub, send: make(chan []byte, 1)}
	require.True(t, hub.register(client))

	hub.Broadcast(Message{Type: MessageTypeFeedChanged, Kind: entity.FeedEventUsers})
	assert.Equal(t, 1, hub.Len())

	hub.Broadcast(Message{Type: MessageTypeFeedChanged, Kind: entity.FeedEventUsers})
	assert.Equal(t, 0, hub.Len())

	_, open := <-client.send
	assert.True(t, open)
	_, open = <-client.send
	assert.False(t, open)
}
