package pubsub

import (
	"encoding/json"

	"wedump/internal/domain/service"
	"wedump/internal/errors"
)

// Attribute keys set on every notification message. The push worker reads
// request_id back for tracing.
const (
	attrNotificationID = "notification_id"
	attrUserID         = "user_id"
	attrType           = "type"
	attrRequestID      = "request_id"
)

// message is a notification event ready to hand to a transport.
type message struct {
	data       []byte
	attributes map[string]string

	// Events for one recipient are delivered in publish order.
	orderingKey string
}

func newMessage(event *service.NotificationEvent) (*message, error) {
	if event == nil || event.NotificationID == "" {
		return nil, errors.New("notification event without id")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "encode notification event")
	}

	attributes := map[string]string{
		attrNotificationID: event.NotificationID,
		attrUserID:         event.UserID,
		attrType:           event.Type,
	}
	if event.RequestID != "" {
		attributes[attrRequestID] = event.RequestID
	}

	return &message{
		data:        data,
		attributes:  attributes,
		orderingKey: event.UserID,
	}, nil
}
