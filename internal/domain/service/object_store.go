package service

import (
	"context"
	"errors"
)

// ErrObjectNotFound is returned when no object exists at a path.
var ErrObjectNotFound = errors.New("object not found")

// StoredObject is an object read back from the store.
type StoredObject struct {
	ContentType   string
	Data          []byte
	DownloadToken string // token embedded in the object's download URL
}

// ObjectStore is the managed blob storage holding photo bytes.
type ObjectStore interface {
	// Upload writes data under path and returns a public download URL.
	Upload(ctx context.Context, path, contentType string, data []byte) (downloadURL string, err error)

	// Download reads the object at path or returns ErrObjectNotFound.
	Download(ctx context.Context, path string) (*StoredObject, error)

	// Delete removes the object. Deleting a missing object is not an error.
	Delete(ctx context.Context, path string) error
}
