package firestore

import (
	"context"
	"log/slog"

	"wedump/internal/domain/constants"
	"wedump/internal/domain/entity"
	domainerrors "wedump/internal/domain/errors"
	"wedump/internal/domain/repository"
	"wedump/internal/errors"
	"wedump/internal/infra/persistence/model"

	firestoreLib "cloud.google.com/go/firestore"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	client *firestoreLib.Client
	logger *slog.Logger
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(client *firestoreLib.Client, logger *slog.Logger) repository.NotificationRepository {
	return &notificationRepository{
		client: client,
		logger: logger,
	}
}

func (repo *notificationRepository) collection() *firestoreLib.CollectionRef {
	return repo.client.Collection(constants.CollectionNotifications)
}

func (repo *notificationRepository) unreadQuery(userID string) firestoreLib.Query {
	return repo.collection().Where("userId", "==", userID).Where("read", "==", false)
}

// Create stores a notification with a server-assigned creation time.
func (repo *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	notificationM := model.FromNotificationDomain(notification)
	notificationM.Read = false

	ref, result, err := repo.collection().Add(ctx, notificationM)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	notification.ID = ref.ID
	notification.Read = false
	notification.CreatedAt = result.UpdateTime

	return nil
}

// FindByID retrieves a notification by its document id.
func (repo *notificationRepository) FindByID(ctx context.Context, id string) (*entity.Notification, error) {
	doc, err := repo.collection().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification by ID")
	}

	return toNotification(doc)
}

// FindUnread returns the newest unread notifications of userID.
func (repo *notificationRepository) FindUnread(ctx context.Context, userID string, limit int) ([]*entity.Notification, error) {
	docs, err := repo.unreadQuery(userID).
		OrderBy("createdAt", firestoreLib.Desc).
		Limit(limit).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to query unread notifications")
	}

	notifications := make([]*entity.Notification, 0, len(docs))
	for _, doc := range docs {
		notification, err := toNotification(doc)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, notification)
	}

	return notifications, nil
}

// MarkRead flags a notification as read.
func (repo *notificationRepository) MarkRead(ctx context.Context, id string) error {
	_, err := repo.collection().Doc(id).Update(ctx, []firestoreLib.Update{
		{Path: "read", Value: true},
	})
	if err != nil {
		if isNotFound(err) {
			return repository.ErrNotificationNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to mark notification read")
	}

	return nil
}

// WatchUnread listens to the unread notifications of userID.
func (repo *notificationRepository) WatchUnread(ctx context.Context, userID string, onChange func()) (repository.Subscription, error) {
	sub := watchQuery(ctx, repo.logger, "notifications", repo.unreadQuery(userID), func(*firestoreLib.QuerySnapshot, bool) {
		onChange()
	})

	return sub, nil
}

func toNotification(doc *firestoreLib.DocumentSnapshot) (*entity.Notification, error) {
	var notificationM model.NotificationModel
	if err := doc.DataTo(&notificationM); err != nil {
		return nil, errors.Wrapf(err, "failed to decode notification %s", doc.Ref.ID)
	}

	return model.ToNotificationDomain(doc.Ref.ID, &notificationM), nil
}
