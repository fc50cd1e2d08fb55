// Package storage keeps photo bytes in a gocloud.dev blob bucket.
package storage

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"wedump/config"
	"wedump/internal/domain/service"
	"wedump/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

// DownloadTokenKey is the object metadata key holding the download token.
const DownloadTokenKey = "firebaseStorageDownloadTokens"

// LocalMediaPrefix serves objects through the process itself when no public
// base URL is configured.
const LocalMediaPrefix = "/media/"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type blobStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// New opens the configured bucket and closes it when the app stops.
func New(params Params) (service.ObjectStore, error) {
	bucket, err := blob.OpenBucket(context.Background(), params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", params.Config.Storage.BucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return NewBlobStore(bucket, params.Config.Storage.PublicBaseURL, params.Logger), nil
}

// NewBlobStore wraps an open bucket.
func NewBlobStore(bucket *blob.Bucket, publicBaseURL string, logger *slog.Logger) service.ObjectStore {
	return &blobStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        logger,
	}
}

// Upload writes the object with a fresh download token and returns its URL.
func (s *blobStore) Upload(ctx context.Context, path, contentType string, data []byte) (string, error) {
	token := uuid.NewString()

	err := s.bucket.WriteAll(ctx, path, data, &blob.WriterOptions{
		ContentType: contentType,
		Metadata:    map[string]string{DownloadTokenKey: token},
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to write object %s", path)
	}

	return s.downloadURL(path, token), nil
}

// Download reads an object and its download token.
func (s *blobStore) Download(ctx context.Context, path string) (*service.StoredObject, error) {
	attrs, err := s.bucket.Attributes(ctx, path)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, service.ErrObjectNotFound
		}

		return nil, errors.Wrapf(err, "failed to stat object %s", path)
	}

	data, err := s.bucket.ReadAll(ctx, path)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, service.ErrObjectNotFound
		}

		return nil, errors.Wrapf(err, "failed to read object %s", path)
	}

	return &service.StoredObject{
		ContentType:   attrs.ContentType,
		Data:          data,
		DownloadToken: attrs.Metadata[strings.ToLower(DownloadTokenKey)],
	}, nil
}

// Delete removes the object. A missing object counts as deleted.
func (s *blobStore) Delete(ctx context.Context, path string) error {
	if err := s.bucket.Delete(ctx, path); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			s.logger.Debug("Object already gone", slog.String("path", path))

			return nil
		}

		return errors.Wrapf(err, "failed to delete object %s", path)
	}

	return nil
}

// downloadURL follows the Firebase Storage layout: the whole object path is a
// single escaped segment and the token authorizes the read.
func (s *blobStore) downloadURL(path, token string) string {
	query := url.Values{}
	query.Set("alt", "media")
	query.Set("token", token)

	if s.publicBaseURL == "" {
		return LocalMediaPrefix + url.PathEscape(path) + "?" + query.Encode()
	}

	return s.publicBaseURL + "/" + url.PathEscape(path) + "?" + query.Encode()
}
