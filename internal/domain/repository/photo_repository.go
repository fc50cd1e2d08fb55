package repository

import (
	"context"
	"errors"

	"wedump/internal/domain/entity"
)

// ErrPhotoNotFound is returned when a photo document does not exist.
var ErrPhotoNotFound = errors.New("photo not found")

// PhotoRepository defines the document operations on the photos collection.
type PhotoRepository interface {
	// FindRecent returns up to limit photos, newest first.
	FindRecent(ctx context.Context, limit int) ([]*entity.Photo, error)

	// FindByID returns a single photo or ErrPhotoNotFound.
	FindByID(ctx context.Context, id string) (*entity.Photo, error)

	// Create stores a new photo. ID, CreatedAt and UpdatedAt are assigned by the store
	// and written back to photo.
	Create(ctx context.Context, photo *entity.Photo) error

	// AddLike adds userID to the like set. Adding twice is a no-op.
	AddLike(ctx context.Context, id, userID string) error

	// RemoveLike removes userID from the like set.
	RemoveLike(ctx context.Context, id, userID string) error

	// Delete removes the photo document.
	Delete(ctx context.Context, id string) error

	// WatchRecent opens a live query over the newest limit photos. onChange runs
	// on a store-owned goroutine.
	WatchRecent(ctx context.Context, limit int, onChange func(entity.PhotoChangeSet)) (Subscription, error)
}
