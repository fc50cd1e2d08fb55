package repository

import (
	"context"
	"errors"

	"wedump/internal/domain/entity"
)

// ErrProfileNotFound is returned when no profile exists for a uid.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines the document operations on the users collection.
type ProfileRepository interface {
	// Merge upserts the profile keyed by uid, writing only the fields set in update.
	Merge(ctx context.Context, uid string, update *entity.ProfileUpdate) error

	// FindByID returns the profile or ErrProfileNotFound.
	FindByID(ctx context.Context, uid string) (*entity.UserProfile, error)

	// List returns up to limit profiles in store order.
	List(ctx context.Context, limit int) ([]*entity.UserProfile, error)
}
