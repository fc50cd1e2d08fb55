package memory

import (
	"context"

	"wedump/internal/domain/entity"
	"wedump/internal/domain/repository"
)

type notificationRepository struct {
	store *Store
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(store *Store) repository.NotificationRepository {
	return &notificationRepository{store: store}
}

func (repo *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	repo.store.mu.Lock()
	id, seq := repo.store.nextID("notification_")
	notification.ID = id
	notification.Read = false
	notification.CreatedAt = repo.store.now()
	repo.store.notifications[id] = &notificationDoc{notification: notification.Clone(), seq: seq}
	pending := repo.store.notificationsChanged(notification.UserID)
	repo.store.mu.Unlock()

	run(pending)

	return nil
}

func (repo *notificationRepository) FindByID(ctx context.Context, id string) (*entity.Notification, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	doc, ok := repo.store.notifications[id]
	if !ok {
		return nil, repository.ErrNotificationNotFound
	}

	return doc.notification.Clone(), nil
}

func (repo *notificationRepository) FindUnread(ctx context.Context, userID string, limit int) ([]*entity.Notification, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	docs := repo.store.unreadNotifications(userID)
	if len(docs) > limit {
		docs = docs[:limit]
	}

	notifications := make([]*entity.Notification, len(docs))
	for i, doc := range docs {
		notifications[i] = doc.notification.Clone()
	}

	return notifications, nil
}

func (repo *notificationRepository) MarkRead(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	repo.store.mu.Lock()
	doc, ok := repo.store.notifications[id]
	if !ok {
		repo.store.mu.Unlock()

		return repository.ErrNotificationNotFound
	}
	if doc.notification.Read {
		repo.store.mu.Unlock()

		return nil
	}
	doc.notification.Read = true
	pending := repo.store.notificationsChanged(doc.notification.UserID)
	repo.store.mu.Unlock()

	run(pending)

	return nil
}

// WatchUnread fires onChange once before returning and again on every change
// to userID's notifications.
func (repo *notificationRepository) WatchUnread(ctx context.Context, userID string, onChange func()) (repository.Subscription, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	w := &notificationWatch{userID: userID, onChange: onChange}

	repo.store.mu.Lock()
	repo.store.nextWatchID++
	watchID := repo.store.nextWatchID
	repo.store.notifWatches[watchID] = w
	repo.store.mu.Unlock()

	sub := newSubscription(ctx, func() {
		w.closed.Store(true)
		repo.store.mu.Lock()
		delete(repo.store.notifWatches, watchID)
		repo.store.mu.Unlock()
	})

	w.deliver()

	return sub, nil
}
