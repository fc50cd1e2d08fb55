package service

import (
	"context"
)

// PushService sends push notifications through the messaging backend.
type PushService interface {
	// SendToTopic pushes a message to every device subscribed to topic and
	// returns the backend message id.
	SendToTopic(ctx context.Context, topic, title, body string, data map[string]string) (string, error)
}
