package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"wedump/config"
	deliverycontext "wedump/internal/delivery/context"
	"wedump/internal/domain/entity"
	domainerrors "wedump/internal/domain/errors"
	"wedump/internal/domain/repository"
	"wedump/internal/domain/service"
	"wedump/internal/errors"
	"wedump/internal/usecase"
	"wedump/internal/util"

	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// FeedServiceParams holds the dependencies of the feed service.
type FeedServiceParams struct {
	fx.In

	Config           *config.Config
	Session          usecase.SessionUsecase
	PhotoRepo        repository.PhotoRepository
	ProfileRepo      repository.ProfileRepository
	NotificationRepo repository.NotificationRepository
	ObjectStore      service.ObjectStore
	Publisher        service.EventPublisher
	Logger           *slog.Logger
	Clock            func() time.Time `optional:"true"`
}

type feedLimits struct {
	bulk          int
	live          int
	users         int
	notifications int
	maxUpload     int64
	deleteObjects bool
}

// feedService implements the FeedUsecase interface. It keeps the last applied
// snapshot of each collection and rebuilds them from the store on every change.
type feedService struct {
	session          usecase.SessionUsecase
	photoRepo        repository.PhotoRepository
	profileRepo      repository.ProfileRepository
	notificationRepo repository.NotificationRepository
	objectStore      service.ObjectStore
	publisher        service.EventPublisher
	logger           *slog.Logger
	limits           feedLimits
	now              func() time.Time

	// baseCtx outlives requests and scopes the live queries.
	baseCtx    context.Context
	cancelBase context.CancelFunc

	mu            sync.RWMutex
	photos        []*entity.Photo
	users         []*entity.UserProfile
	notifications []*entity.Notification
	page          usecase.Page
	photoSub      repository.Subscription
	notifSub      repository.Subscription

	photoLoads loadSequence
	userLoads  loadSequence
	notifLoads loadSequence

	listeners          *util.Emitter[entity.FeedEvent]
	unsubscribeSession func()
}

// NewFeedService creates the feed service and attaches it to the session.
func NewFeedService(params FeedServiceParams) usecase.FeedUsecase {
	now := params.Clock
	if now == nil {
		now = time.Now
	}

	baseCtx, cancel := context.WithCancel(context.Background())
	srv := &feedService{
		session:          params.Session,
		photoRepo:        params.PhotoRepo,
		profileRepo:      params.ProfileRepo,
		notificationRepo: params.NotificationRepo,
		objectStore:      params.ObjectStore,
		publisher:        params.Publisher,
		logger:           params.Logger,
		limits: feedLimits{
			bulk:          params.Config.Feed.BulkLimit,
			live:          params.Config.Feed.LiveLimit,
			users:         params.Config.Feed.UsersLimit,
			notifications: params.Config.Feed.NotificationsLimit,
			maxUpload:     params.Config.Storage.MaxUploadBytes,
			deleteObjects: params.Config.Storage.DeleteObjectsOnPhotoDelete,
		},
		now:        now,
		baseCtx:    baseCtx,
		cancelBase: cancel,
		page:       usecase.PageHome,
		listeners:  util.NewEmitter[entity.FeedEvent](),
	}
	srv.unsubscribeSession = params.Session.Subscribe(srv.handleSessionEvent)

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *feedService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// LoadPhotos replaces the wall with the newest photos.
func (srv *feedService) LoadPhotos(ctx context.Context) error {
	ticket := srv.photoLoads.next()

	photos, err := srv.photoRepo.FindRecent(ctx, srv.limits.bulk)
	if err != nil {
		srv.log(ctx).Error("Error loading photos", slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrLoadPhotosFailed, err.Error())
	}

	srv.mu.Lock()
	applied := srv.photoLoads.tryApply(ticket)
	if applied {
		srv.photos = photos
	}
	srv.mu.Unlock()

	if !applied {
		srv.log(ctx).Debug("Discarded stale photo load", slog.Uint64("ticket", ticket))

		return nil
	}
	srv.listeners.Emit(ctx, entity.FeedEvent{Kind: entity.FeedEventPhotos})

	return nil
}

// LoadUsers refreshes the user list used for the friends counter.
func (srv *feedService) LoadUsers(ctx context.Context) error {
	ticket := srv.userLoads.next()

	users, err := srv.profileRepo.List(ctx, srv.limits.users)
	if err != nil {
		srv.log(ctx).Error("Error loading users", slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrLoadUsersFailed, err.Error())
	}

	srv.mu.Lock()
	applied := srv.userLoads.tryApply(ticket)
	if applied {
		srv.users = users
	}
	srv.mu.Unlock()

	if applied {
		srv.listeners.Emit(ctx, entity.FeedEvent{Kind: entity.FeedEventUsers})
	}

	return nil
}

// LoadNotifications refreshes the unread inbox of the current identity.
func (srv *feedService) LoadNotifications(ctx context.Context) error {
	identity := srv.session.CurrentSession()
	if identity == nil {
		return nil
	}

	ticket := srv.notifLoads.next()

	notifications, err := srv.notificationRepo.FindUnread(ctx, identity.UID, srv.limits.notifications)
	if err != nil {
		srv.log(ctx).Error("Error loading notifications", slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrLoadNotificationsFailed, err.Error())
	}

	srv.mu.Lock()
	applied := srv.notifLoads.tryApply(ticket)
	if applied {
		srv.notifications = notifications
	}
	srv.mu.Unlock()

	if applied {
		srv.listeners.Emit(ctx, entity.FeedEvent{Kind: entity.FeedEventNotifications})
	}

	return nil
}

// UploadPhoto validates the image, stores the blob, writes the photo record and reloads the wall.
func (srv *feedService) UploadPhoto(ctx context.Context, input usecase.UploadPhotoInput) (*entity.Photo, error) {
	identity := srv.session.CurrentSession()
	if identity == nil {
		return nil, domainerrors.ErrNotAuthenticated
	}

	contentType, err := validateImage(input.File, srv.limits.maxUpload)
	if err != nil {
		return nil, err
	}

	started := srv.now()
	objectPath := fmt.Sprintf("photos/%s/%d_%s", identity.UID, started.UnixMilli(), objectFileName(input.File.Name))

	downloadURL, err := srv.objectStore.Upload(ctx, objectPath, contentType, input.File.Data)
	if err != nil {
		srv.log(ctx).Error("Upload error", slog.String("path", objectPath), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUploadFailed, err.Error())
	}

	photo := &entity.Photo{
		ImageURL:     downloadURL,
		StoragePath:  objectPath,
		Caption:      input.Caption,
		UserID:       identity.UID,
		UserName:     identity.Name(),
		UserPhotoURL: identity.PhotoURL,
		Likes:        []string{},
		Comments:     []entity.Comment{},
	}
	if err := srv.photoRepo.Create(ctx, photo); err != nil {
		srv.log(ctx).Error("Upload error", slog.String("path", objectPath), slog.Any("error", err))
		if delErr := srv.objectStore.Delete(ctx, objectPath); delErr != nil {
			srv.log(ctx).Warn("Failed to remove orphaned object", slog.String("path", objectPath), slog.Any("error", delErr))
		}

		return nil, errors.Wrap(domainerrors.ErrUploadFailed, err.Error())
	}

	srv.log(ctx).Info("Photo uploaded",
		slog.String("photo_id", photo.ID),
		slog.String("size", util.FormatBytes(input.File.ByteSize())),
		slog.String("took", util.FormatDuration(srv.now().Sub(started))),
	)

	if err := srv.LoadPhotos(ctx); err != nil {
		srv.log(ctx).Warn("Reload after upload failed", slog.Any("error", err))
	}

	return photo.Clone(), nil
}

// PreviewImage validates the image and returns it as a data URL.
func (srv *feedService) PreviewImage(_ context.Context, file *entity.ImageFile) (string, error) {
	contentType, err := validateImage(file, srv.limits.maxUpload)
	if err != nil {
		return "", err
	}

	return dataURL(contentType, file.Data), nil
}

// ToggleLike flips the current identity's membership in a photo's like set.
func (srv *feedService) ToggleLike(ctx context.Context, photoID string) (*usecase.LikeResult, error) {
	identity := srv.session.CurrentSession()
	if identity == nil {
		return nil, domainerrors.ErrNotAuthenticated
	}

	photo, err := srv.photoRepo.FindByID(ctx, photoID)
	if err != nil {
		if errors.Is(err, repository.ErrPhotoNotFound) {
			return nil, domainerrors.ErrPhotoNotFound
		}
		srv.log(ctx).Error("Error liking photo", slog.String("photo_id", photoID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrLikeFailed, err.Error())
	}

	liked := !photo.IsLikedBy(identity.UID)
	if liked {
		err = srv.photoRepo.AddLike(ctx, photoID, identity.UID)
	} else {
		err = srv.photoRepo.RemoveLike(ctx, photoID, identity.UID)
	}
	if err != nil {
		if errors.Is(err, repository.ErrPhotoNotFound) {
			return nil, domainerrors.ErrPhotoNotFound
		}
		srv.log(ctx).Error("Error liking photo", slog.String("photo_id", photoID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrLikeFailed, err.Error())
	}

	return &usecase.LikeResult{PhotoID: photoID, Liked: liked}, nil
}

// DeletePhoto removes a photo owned by the current identity. Ownership is
// checked against the loaded wall before anything reaches the store.
func (srv *feedService) DeletePhoto(ctx context.Context, photoID string) error {
	identity := srv.session.CurrentSession()
	if identity == nil {
		return domainerrors.ErrNotAuthenticated
	}

	photo := srv.loadedPhoto(photoID)
	if photo == nil {
		return domainerrors.ErrPhotoNotFound
	}
	if !photo.IsOwnedBy(identity.UID) {
		return domainerrors.ErrNotPhotoOwner
	}

	if err := srv.photoRepo.Delete(ctx, photoID); err != nil {
		srv.log(ctx).Error("Error deleting photo", slog.String("photo_id", photoID), slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrDeletePhotoFailed, err.Error())
	}

	if srv.limits.deleteObjects && photo.StoragePath != "" {
		if err := srv.objectStore.Delete(ctx, photo.StoragePath); err != nil {
			srv.log(ctx).Warn("Failed to delete photo object", slog.String("path", photo.StoragePath), slog.Any("error", err))
		}
	}

	if err := srv.LoadPhotos(ctx); err != nil {
		srv.log(ctx).Warn("Reload after delete failed", slog.Any("error", err))
	}

	return nil
}

func (srv *feedService) CommentOnPhoto(context.Context, string, string) error {
	return domainerrors.ErrCommentsNotImplemented
}

// MarkNotificationRead marks one of the current identity's notifications as read.
func (srv *feedService) MarkNotificationRead(ctx context.Context, notificationID string) error {
	identity := srv.session.CurrentSession()
	if identity == nil {
		return domainerrors.ErrNotAuthenticated
	}

	notification, err := srv.notificationRepo.FindByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotificationNotFound
		}

		return errors.Wrap(err, "find notification")
	}
	if notification.UserID != identity.UID {
		return domainerrors.ErrForbidden
	}

	if err := srv.notificationRepo.MarkRead(ctx, notificationID); err != nil {
		return errors.Wrap(err, "mark notification read")
	}

	return srv.LoadNotifications(ctx)
}

// StartRealtimeSync opens the live photo and notification queries for the
// current identity, replacing any that are already open.
func (srv *feedService) StartRealtimeSync(ctx context.Context) error {
	identity := srv.session.CurrentSession()
	if identity == nil {
		return domainerrors.ErrNotAuthenticated
	}

	srv.StopRealtimeSync()

	photoSub, err := srv.photoRepo.WatchRecent(srv.baseCtx, srv.limits.live, srv.onPhotoChanges)
	if err != nil {
		srv.log(ctx).Error("Failed to watch photos", slog.Any("error", err))

		return errors.Wrap(err, "watch photos")
	}

	notifSub, err := srv.notificationRepo.WatchUnread(srv.baseCtx, identity.UID, srv.onNotificationChanges)
	if err != nil {
		photoSub.Close()
		srv.log(ctx).Error("Failed to watch notifications", slog.Any("error", err))

		return errors.Wrap(err, "watch notifications")
	}

	srv.mu.Lock()
	srv.photoSub, srv.notifSub = photoSub, notifSub
	srv.mu.Unlock()

	srv.log(ctx).Debug("Realtime sync started", slog.String("uid", identity.UID))

	return nil
}

// StopRealtimeSync closes the live queries. Safe to call when none are open.
func (srv *feedService) StopRealtimeSync() {
	srv.mu.Lock()
	photoSub, notifSub := srv.photoSub, srv.notifSub
	srv.photoSub, srv.notifSub = nil, nil
	srv.mu.Unlock()

	if photoSub != nil {
		photoSub.Close()
	}
	if notifSub != nil {
		notifSub.Close()
	}
}

// NavigateTo switches the visible page. Only the home page has content, it
// reloads the wall.
func (srv *feedService) NavigateTo(ctx context.Context, page usecase.Page) error {
	if !page.IsValid() {
		return domainerrors.ErrUnknownPage.WithDetails(string(page))
	}

	srv.mu.Lock()
	srv.page = page
	srv.mu.Unlock()

	if page == usecase.PageHome {
		return srv.LoadPhotos(ctx)
	}

	return nil
}

func (srv *feedService) CurrentPage() usecase.Page {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.page
}

func (srv *feedService) Photos() []*entity.Photo {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	out := make([]*entity.Photo, len(srv.photos))
	for i, p := range srv.photos {
		out[i] = p.Clone()
	}

	return out
}

func (srv *feedService) Users() []*entity.UserProfile {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return slices.Clone(srv.users)
}

func (srv *feedService) Notifications() []*entity.Notification {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	out := make([]*entity.Notification, len(srv.notifications))
	for i, n := range srv.notifications {
		out[i] = n.Clone()
	}

	return out
}

// Stats derives the sidebar counters from the loaded snapshots.
func (srv *feedService) Stats() usecase.FeedStats {
	identity := srv.session.CurrentSession()

	srv.mu.RLock()
	defer srv.mu.RUnlock()

	stats := usecase.FeedStats{
		TotalPhotos: len(srv.photos),
		ActiveUsers: max(1, len(srv.photos)/5+1),
		Friends:     max(0, len(srv.users)-1),
	}
	if identity != nil {
		for _, p := range srv.photos {
			if p.IsOwnedBy(identity.UID) {
				stats.MyUploads++
			}
		}
	}

	return stats
}

func (srv *feedService) Subscribe(listener usecase.FeedListener) func() {
	return srv.listeners.Subscribe(listener)
}

// Close detaches from the session and stops the live queries.
func (srv *feedService) Close() {
	if srv.unsubscribeSession != nil {
		srv.unsubscribeSession()
	}
	srv.StopRealtimeSync()
	srv.cancelBase()
}

// handleSessionEvent loads everything on login and clears everything on logout.
func (srv *feedService) handleSessionEvent(ctx context.Context, event entity.SessionEvent) {
	switch event.Kind {
	case entity.SessionEventLogin:
		var group errgroup.Group
		group.Go(func() error { return srv.LoadPhotos(ctx) })
		group.Go(func() error { return srv.LoadUsers(ctx) })
		group.Go(func() error { return srv.LoadNotifications(ctx) })
		if err := group.Wait(); err != nil {
			srv.log(ctx).Warn("Initial feed load incomplete", slog.Any("error", err))
		}

		if err := srv.StartRealtimeSync(ctx); err != nil {
			srv.log(ctx).Error("Failed to start realtime sync", slog.Any("error", err))
		}
	case entity.SessionEventLogout:
		srv.StopRealtimeSync()
		srv.clear()
	}

	srv.listeners.Emit(ctx, entity.FeedEvent{Kind: entity.FeedEventSession})
}

// clear drops all state and invalidates loads still in flight.
func (srv *feedService) clear() {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.photos = nil
	srv.users = nil
	srv.notifications = nil
	srv.page = usecase.PageHome
	srv.photoLoads.invalidate()
	srv.userLoads.invalidate()
	srv.notifLoads.invalidate()
}

func (srv *feedService) loadedPhoto(photoID string) *entity.Photo {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	for _, p := range srv.photos {
		if p.ID == photoID {
			return p.Clone()
		}
	}

	return nil
}

// onPhotoChanges notifies the current identity about photos added by others
// and reloads the wall. The initial delivery only reloads.
func (srv *feedService) onPhotoChanges(changes entity.PhotoChangeSet) {
	ctx := srv.baseCtx
	identity := srv.session.CurrentSession()
	if identity == nil {
		return
	}

	if !changes.Initial {
		for _, change := range changes.Changes {
			if change.Kind == entity.ChangeAdded && !change.Photo.IsOwnedBy(identity.UID) {
				srv.notifyNewPhoto(ctx, identity, change.Photo)
			}
		}
	}

	if err := srv.LoadPhotos(ctx); err != nil {
		srv.log(ctx).Warn("Reload after live change failed", slog.Any("error", err))
	}
}

func (srv *feedService) onNotificationChanges() {
	if err := srv.LoadNotifications(srv.baseCtx); err != nil {
		srv.log(srv.baseCtx).Warn("Reload after notification change failed", slog.Any("error", err))
	}
}

// notifyNewPhoto writes a new_photo notification and hands it to the push pipeline.
func (srv *feedService) notifyNewPhoto(ctx context.Context, recipient *entity.Identity, photo *entity.Photo) {
	notification := &entity.Notification{
		UserID: recipient.UID,
		Type:   entity.NotificationTypeNewPhoto,
		Data: map[string]string{
			entity.NotificationDataUserName:   photo.UserName,
			entity.NotificationDataPhotoID:    photo.ID,
			entity.NotificationDataFromUserID: photo.UserID,
		},
	}
	if err := srv.notificationRepo.Create(ctx, notification); err != nil {
		srv.log(ctx).Error("Error creating notification", slog.String("photo_id", photo.ID), slog.Any("error", err))

		return
	}

	event := &service.NotificationEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		NotificationID: notification.ID,
		UserID:         notification.UserID,
		Type:           string(notification.Type),
		Data:           notification.Data,
	}
	if err := srv.publisher.PublishNotificationEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish notification event", slog.String("notification_id", notification.ID), slog.Any("error", err))
	}
}
