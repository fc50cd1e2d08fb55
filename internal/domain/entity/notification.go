package entity

import (
	"maps"
	"time"
)

// NotificationType tags the payload shape of a notification.
type NotificationType string

const (
	NotificationTypeNewPhoto NotificationType = "new_photo"
)

// Notification data keys for NotificationTypeNewPhoto.
const (
	NotificationDataUserName   = "userName"
	NotificationDataPhotoID    = "photoId"
	NotificationDataFromUserID = "fromUserId"
)

// Notification is a per-user inbox record.
type Notification struct {
	ID        string            `json:"id"`
	UserID    string            `json:"user_id"` // Recipient identity id.
	Type      NotificationType  `json:"type"`
	Data      map[string]string `json:"data"`
	Read      bool              `json:"read"`
	CreatedAt time.Time         `json:"created_at"`
}

// Clone returns a copy with its own data map.
func (n *Notification) Clone() *Notification {
	c := *n
	c.Data = maps.Clone(n.Data)

	return &c
}
