package storage

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"testing"

	"wedump/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newTestStore(t *testing.T, publicBaseURL string) service.ObjectStore {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return NewBlobStore(bucket, publicBaseURL, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestBlobStore_UploadAndDownload(t *testing.T) {
	store := newTestStore(t, "https://firebasestorage.googleapis.com/v0/b/demo.appspot.com/o/")
	ctx := context.Background()

	downloadURL, err := store.Upload(ctx, "photos/u1/1700000000000_cat.png", "image/png", []byte("png-bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(downloadURL, "https://firebasestorage.googleapis.com/v0/b/demo.appspot.com/o/photos%2Fu1%2F1700000000000_cat.png?"))
	parsed, err := url.Parse(downloadURL)
	require.NoError(t, err)
	assert.Equal(t, "media", parsed.Query().Get("alt"))
	token := parsed.Query().Get("token")
	assert.NotEmpty(t, token)

	object, err := store.Download(ctx, "photos/u1/1700000000000_cat.png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", object.ContentType)
	assert.Equal(t, []byte("png-bytes"), object.Data)
	assert.Equal(t, token, object.DownloadToken)
}

func TestBlobStore_LocalMediaURL(t *testing.T) {
	store := newTestStore(t, "")

	downloadURL, err := store.Upload(context.Background(), "photos/u1/1_a b.png", "image/png", []byte("x"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(downloadURL, LocalMediaPrefix+"photos%2Fu1%2F1_a%20b.png?"))
}

func TestBlobStore_UploadsGetDistinctTokens(t *testing.T) {
	store := newTestStore(t, "")
	ctx := context.Background()

	first, err := store.Upload(ctx, "photos/u1/a.png", "image/png", []byte("x"))
	require.NoError(t, err)
	second, err := store.Upload(ctx, "photos/u1/b.png", "image/png", []byte("x"))
	require.NoError(t, err)

	assert.NotEqual(t, first[strings.Index(first, "token="):], second[strings.Index(second, "token="):])
}

func TestBlobStore_Delete(t *testing.T) {
	store := newTestStore(t, "")
	ctx := context.Background()

	_, err := store.Upload(ctx, "photos/u1/a.png", "image/png", []byte("x"))
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, "photos/u1/a.png"))
	require.NoError(t, store.Delete(ctx, "photos/u1/a.png"))

	_, err = store.Download(ctx, "photos/u1/a.png")
	assert.ErrorIs(t, err, service.ErrObjectNotFound)
}
