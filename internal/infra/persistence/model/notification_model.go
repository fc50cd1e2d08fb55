package model

import (
	"maps"
	"time"

	"wedump/internal/domain/entity"
)

// NotificationModel is a document of the notifications collection.
type NotificationModel struct {
	UserID    string            `firestore:"userId"`
	Type      string            `firestore:"type"`
	Data      map[string]string `firestore:"data"`
	Read      bool              `firestore:"read"`
	CreatedAt time.Time         `firestore:"createdAt,serverTimestamp"`
}

// ToNotificationDomain converts a stored document into the entity.
func ToNotificationDomain(id string, data *NotificationModel) *entity.Notification {
	if data == nil {
		return nil
	}

	return &entity.Notification{
		ID:        id,
		UserID:    data.UserID,
		Type:      entity.NotificationType(data.Type),
		Data:      maps.Clone(data.Data),
		Read:      data.Read,
		CreatedAt: data.CreatedAt,
	}
}

// FromNotificationDomain converts the entity into a document.
func FromNotificationDomain(data *entity.Notification) *NotificationModel {
	if data == nil {
		return nil
	}

	return &NotificationModel{
		UserID:    data.UserID,
		Type:      string(data.Type),
		Data:      maps.Clone(data.Data),
		Read:      data.Read,
		CreatedAt: data.CreatedAt,
	}
}
