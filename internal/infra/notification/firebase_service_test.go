package notification

import (
	"context"
	"testing"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	messages []*messaging.Message
	err      error
}

func (r *recordingSender) Send(_ context.Context, message *messaging.Message) (string, error) {
	r.messages = append(r.messages, message)
	if r.err != nil {
		return "", r.err
	}

	return "projects/demo/messages/1", nil
}

func newTestService(sender messageSender) *firebaseService {
	s := &firebaseService{sender: sender}
	s.once.Do(func() {})

	return s
}

func TestFirebaseService_SendToTopic(t *testing.T) {
	sender := &recordingSender{}
	svc := newTestService(sender)

	id, err := svc.SendToTopic(context.Background(), "user-u1", "New photo", "Bob shared a new photo", map[string]string{"photoId": "p1"})
	require.NoError(t, err)
	assert.Equal(t, "projects/demo/messages/1", id)

	require.Len(t, sender.messages, 1)
	msg := sender.messages[0]
	assert.Equal(t, "user-u1", msg.Topic)
	assert.Empty(t, msg.Token)
	assert.Equal(t, "New photo", msg.Notification.Title)
	assert.Equal(t, "Bob shared a new photo", msg.Notification.Body)
	assert.Equal(t, "p1", msg.Data["photoId"])
}

func TestFirebaseService_SendError(t *testing.T) {
	svc := newTestService(&recordingSender{err: assert.AnError})

	_, err := svc.SendToTopic(context.Background(), "user-u1", "t", "b", nil)
	assert.ErrorIs(t, err, assert.AnError)
}
