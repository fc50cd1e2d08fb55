// Package notification delivers push messages through Firebase Cloud Messaging.
package notification

import (
	"context"
	"fmt"
	"sync"

	"wedump/internal/domain/service"
	"wedump/internal/infra/firebase"

	"firebase.google.com/go/v4/messaging"
)

// messageSender is the part of the messaging client the service uses.
type messageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseService struct {
	apps *firebase.AppProvider

	once   sync.Once
	sender messageSender
	err    error
}

// NewFirebaseService creates a new Firebase push service. The messaging client
// is created on the first send.
func NewFirebaseService(apps *firebase.AppProvider) service.PushService {
	return &firebaseService{apps: apps}
}

func (s *firebaseService) client(ctx context.Context) (messageSender, error) {
	s.once.Do(func() {
		app, err := s.apps.App(ctx)
		if err != nil {
			s.err = err

			return
		}

		client, err := app.Messaging(ctx)
		if err != nil {
			s.err = fmt.Errorf("failed to get messaging client: %w", err)

			return
		}
		s.sender = client
	})

	return s.sender, s.err
}

// SendToTopic sends a push notification to every device subscribed to topic
func (s *firebaseService) SendToTopic(ctx context.Context, topic, title, body string, data map[string]string) (string, error) {
	sender, err := s.client(ctx)
	if err != nil {
		return "", err
	}

	message := &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	messageID, err := sender.Send(ctx, message)
	if err != nil {
		return "", fmt.Errorf("failed to send notification: %w", err)
	}

	return messageID, nil
}
