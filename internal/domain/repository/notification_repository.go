package repository

import (
	"context"
	"errors"

	"wedump/internal/domain/entity"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the document operations on the notifications collection.
type NotificationRepository interface {
	// Create stores a notification. ID and CreatedAt are assigned by the store.
	Create(ctx context.Context, notification *entity.Notification) error

	// FindByID returns one notification or ErrNotificationNotFound.
	FindByID(ctx context.Context, id string) (*entity.Notification, error)

	// FindUnread returns up to limit unread notifications for userID, newest first.
	FindUnread(ctx context.Context, userID string, limit int) ([]*entity.Notification, error)

	// MarkRead flags a notification as read.
	MarkRead(ctx context.Context, id string) error

	// WatchUnread opens a live query over userID's unread notifications.
	// onChange fires for every delivery, the initial one included.
	WatchUnread(ctx context.Context, userID string, onChange func()) (Subscription, error)
}
