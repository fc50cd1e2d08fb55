package firestore

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"wedump/internal/domain/entity"
	"wedump/internal/infra/persistence/model"

	firestoreLib "cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestChangeKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind firestoreLib.DocumentChangeKind
		want entity.ChangeKind
	}{
		{kind: firestoreLib.DocumentAdded, want: entity.ChangeAdded},
		{kind: firestoreLib.DocumentModified, want: entity.ChangeModified},
		{kind: firestoreLib.DocumentRemoved, want: entity.ChangeRemoved},
	}

	for _, tt := range tests {
		t.Run(string(tt.want), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, changeKind(tt.kind))
		})
	}
}

func TestStatusHelpers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		err          error
		wantCanceled bool
		wantNotFound bool
	}{
		{name: "canceled", err: status.Error(codes.Canceled, "listener stopped"), wantCanceled: true},
		{name: "deadline", err: status.Error(codes.DeadlineExceeded, "too slow"), wantCanceled: true},
		{name: "not found", err: status.Error(codes.NotFound, "no such document"), wantNotFound: true},
		{name: "unavailable", err: status.Error(codes.Unavailable, "backend down")},
		{name: "plain error", err: fmt.Errorf("boom")},
		{name: "nil", err: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantCanceled, isCanceled(tt.err))
			assert.Equal(t, tt.wantNotFound, isNotFound(tt.err))
		})
	}
}

func TestPhotoDocumentMapping(t *testing.T) {
	t.Parallel()

	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	photo := &entity.Photo{
		ImageURL:     "https://cdn.example.com/p.jpg",
		StoragePath:  "photos/u1/p.jpg",
		Caption:      "first dance",
		UserID:       "u1",
		UserName:     "Ann",
		UserPhotoURL: "https://cdn.example.com/ann.jpg",
		Likes:        []string{"u2"},
		Comments: []entity.Comment{
			{UserID: "u2", UserName: "Bo", Text: "lovely", CreatedAt: created},
		},
		CreatedAt: created,
		UpdatedAt: created,
	}

	got := model.ToPhotoDomain("p1", model.FromPhotoDomain(photo))

	want := *photo
	want.ID = "p1"
	assert.Equal(t, &want, got)
}

// The tests below need a running emulator, e.g.
// FIRESTORE_EMULATOR_HOST=127.0.0.1:8081 go test ./internal/infra/persistence/firestore/...
func newEmulatorClient(t *testing.T) *firestoreLib.Client {
	t.Helper()

	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}

	client, err := firestoreLib.NewClient(context.Background(), "demo-wedump")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestWatchRecent_FlagsOnlyFirstDelivery(t *testing.T) {
	client := newEmulatorClient(t)
	repo := NewPhotoRepository(client, slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	photo := &entity.Photo{ImageURL: "https://cdn.example.com/w.jpg", Caption: "watch", UserID: "u1", UserName: "Ann"}
	require.NoError(t, repo.Create(ctx, photo))
	t.Cleanup(func() { _ = repo.Delete(context.Background(), photo.ID) })

	sets := make(chan entity.PhotoChangeSet, 8)
	sub, err := repo.WatchRecent(ctx, 50, func(set entity.PhotoChangeSet) { sets <- set })
	require.NoError(t, err)
	defer sub.Close()

	first := receiveSet(t, sets)
	assert.True(t, first.Initial)
	assert.True(t, containsChange(first, photo.ID, entity.ChangeAdded))

	require.NoError(t, repo.AddLike(ctx, photo.ID, "u2"))

	for {
		next := receiveSet(t, sets)
		assert.False(t, next.Initial)
		if containsChange(next, photo.ID, entity.ChangeModified) {
			return
		}
	}
}

func receiveSet(t *testing.T, sets <-chan entity.PhotoChangeSet) entity.PhotoChangeSet {
	t.Helper()

	select {
	case set := <-sets:
		return set
	case <-time.After(10 * time.Second):
		t.Fatal("no change set delivered")

		return entity.PhotoChangeSet{}
	}
}

func containsChange(set entity.PhotoChangeSet, id string, kind entity.ChangeKind) bool {
	for _, change := range set.Changes {
		if change.Photo != nil && change.Photo.ID == id && change.Kind == kind {
			return true
		}
	}

	return false
}
