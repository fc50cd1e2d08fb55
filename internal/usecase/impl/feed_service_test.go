package impl

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"wedump/config"
	"wedump/internal/domain/entity"
	domainerrors "wedump/internal/domain/errors"
	"wedump/internal/domain/repository"
	"wedump/internal/domain/service"
	"wedump/internal/errors"
	mockRepo "wedump/internal/mocks/repository"
	mockService "wedump/internal/mocks/service"
	mockUsecase "wedump/internal/mocks/usecase"
	"wedump/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func pngFile(name string, size int) *entity.ImageFile {
	data := make([]byte, size)
	copy(data, pngHeader)

	return &entity.ImageFile{Name: name, ContentType: "image/png", Data: data}
}

type feedFixture struct {
	session          *mockUsecase.MockSessionUsecase
	photoRepo        *mockRepo.MockPhotoRepository
	profileRepo      *mockRepo.MockProfileRepository
	notificationRepo *mockRepo.MockNotificationRepository
	objectStore      *mockService.MockObjectStore
	publisher        *mockService.MockEventPublisher
	service          usecase.FeedUsecase
	onSession        usecase.SessionListener
	identity         *entity.Identity
	events           []entity.FeedEventKind
}

func newFeedFixture(t *testing.T, mutate ...func(cfg *config.Config)) *feedFixture {
	t.Helper()

	cfg := &config.Config{}
	for _, fn := range mutate {
		fn(cfg)
	}
	cfg.Feed = &config.FeedConfig{BulkLimit: 50, LiveLimit: 20, UsersLimit: 20, NotificationsLimit: 20}
	if cfg.Storage == nil {
		cfg.Storage = &config.StorageConfig{MaxUploadBytes: 5 * 1024 * 1024}
	}

	f := &feedFixture{
		session:          mockUsecase.NewMockSessionUsecase(t),
		photoRepo:        mockRepo.NewMockPhotoRepository(t),
		profileRepo:      mockRepo.NewMockProfileRepository(t),
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		objectStore:      mockService.NewMockObjectStore(t),
		publisher:        mockService.NewMockEventPublisher(t),
		identity:         &entity.Identity{UID: "u1", Email: "ann@x.io", DisplayName: "Ann"},
	}

	f.session.EXPECT().
		Subscribe(mock.Anything).
		RunAndReturn(func(listener usecase.SessionListener) func() {
			f.onSession = listener

			return func() {}
		})
	f.session.EXPECT().
		CurrentSession().
		RunAndReturn(func() *entity.Identity { return f.identity.Clone() }).
		Maybe()

	f.service = NewFeedService(FeedServiceParams{
		Config:           cfg,
		Session:          f.session,
		PhotoRepo:        f.photoRepo,
		ProfileRepo:      f.profileRepo,
		NotificationRepo: f.notificationRepo,
		ObjectStore:      f.objectStore,
		Publisher:        f.publisher,
		Logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
		Clock:            func() time.Time { return fixedNow },
	})
	f.service.Subscribe(func(_ context.Context, event entity.FeedEvent) {
		f.events = append(f.events, event.Kind)
	})
	t.Cleanup(f.service.Close)

	return f
}

func (f *feedFixture) withPhotos(t *testing.T, photos ...*entity.Photo) {
	t.Helper()

	f.photoRepo.EXPECT().FindRecent(mock.Anything, 50).Return(photos, nil).Once()
	require.NoError(t, f.service.LoadPhotos(context.Background()))
}

func TestFeedService_LoginLoadsEverythingAndStartsSync(t *testing.T) {
	f := newFeedFixture(t)
	ctx := context.Background()
	photoSub := mockRepo.NewMockSubscription(t)
	notifSub := mockRepo.NewMockSubscription(t)

	f.photoRepo.EXPECT().FindRecent(ctx, 50).Return([]*entity.Photo{{ID: "p1", UserID: "u2"}}, nil)
	f.profileRepo.EXPECT().List(ctx, 20).Return([]*entity.UserProfile{{UID: "u1"}, {UID: "u2"}}, nil)
	f.notificationRepo.EXPECT().FindUnread(ctx, "u1", 20).Return([]*entity.Notification{{ID: "n1", UserID: "u1"}}, nil)
	f.photoRepo.EXPECT().WatchRecent(mock.Anything, 20, mock.Anything).Return(photoSub, nil)
	f.notificationRepo.EXPECT().WatchUnread(mock.Anything, "u1", mock.Anything).Return(notifSub, nil)

	f.onSession(ctx, entity.SessionEvent{Kind: entity.SessionEventLogin, Identity: f.identity})

	assert.Len(t, f.service.Photos(), 1)
	assert.Len(t, f.service.Users(), 2)
	assert.Len(t, f.service.Notifications(), 1)
	assert.Contains(t, f.events, entity.FeedEventSession)

	photoSub.EXPECT().Close().Return()
	notifSub.EXPECT().Close().Return()

	f.identity = nil
	f.onSession(ctx, entity.SessionEvent{Kind: entity.SessionEventLogout})

	assert.Empty(t, f.service.Photos())
	assert.Empty(t, f.service.Users())
	assert.Empty(t, f.service.Notifications())
}

func TestFeedService_LoadPhotos_DiscardsStaleResult(t *testing.T) {
	f := newFeedFixture(t)
	ctx := context.Background()

	older := []*entity.Photo{{ID: "old"}}
	newer := []*entity.Photo{{ID: "new"}}
	entered := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32

	f.photoRepo.EXPECT().
		FindRecent(ctx, 50).
		RunAndReturn(func(context.Context, int) ([]*entity.Photo, error) {
			if calls.Add(1) == 1 {
				close(entered)
				<-release

				return older, nil
			}

			return newer, nil
		})

	done := make(chan error)
	go func() { done <- f.service.LoadPhotos(ctx) }()

	<-entered
	require.NoError(t, f.service.LoadPhotos(ctx))
	close(release)
	require.NoError(t, <-done)

	photos := f.service.Photos()
	require.Len(t, photos, 1)
	assert.Equal(t, "new", photos[0].ID)
}

func TestFeedService_LoadPhotos_Failure(t *testing.T) {
	f := newFeedFixture(t)
	ctx := context.Background()

	f.photoRepo.EXPECT().FindRecent(ctx, 50).Return(nil, errors.New("unavailable"))

	err := f.service.LoadPhotos(ctx)

	assert.ErrorIs(t, err, domainerrors.ErrLoadPhotosFailed)
}

func TestFeedService_LoadNotifications_SignedOutIsNoop(t *testing.T) {
	f := newFeedFixture(t)
	f.identity = nil

	assert.NoError(t, f.service.LoadNotifications(context.Background()))
	assert.Empty(t, f.service.Notifications())
}

func TestFeedService_UploadPhoto_Success(t *testing.T) {
	f := newFeedFixture(t)
	ctx := context.Background()
	file := pngFile("cat.png", 4*1024*1024)
	caption := "  sunset <b>at</b> the beach  "
	pathPattern := regexp.MustCompile(`^photos/u1/\d+_cat\.png$`)

	f.objectStore.EXPECT().
		Upload(ctx, mock.MatchedBy(pathPattern.MatchString), "image/png", file.Data).
		Return("https://cdn.example/photos%2Fu1?alt=media&token=t", nil)
	f.photoRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Photo")).
		RunAndReturn(func(_ context.Context, photo *entity.Photo) error {
			photo.ID = "p1"
			photo.CreatedAt = fixedNow
			photo.UpdatedAt = fixedNow

			return nil
		})
	f.photoRepo.EXPECT().FindRecent(ctx, 50).Return([]*entity.Photo{{ID: "p1", UserID: "u1"}}, nil)

	photo, err := f.service.UploadPhoto(ctx, usecase.UploadPhotoInput{File: file, Caption: caption})

	require.NoError(t, err)
	assert.Equal(t, "p1", photo.ID)
	assert.Equal(t, caption, photo.Caption)
	assert.Equal(t, "Ann", photo.UserName)
	assert.Empty(t, photo.Likes)
	assert.NotNil(t, photo.Likes)
	assert.False(t, photo.CreatedAt.IsZero())
	assert.False(t, photo.UpdatedAt.IsZero())
	assert.Len(t, f.service.Photos(), 1)
}

func TestFeedService_UploadPhoto_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		file     *entity.ImageFile
		expected *domainerrors.BaseError
	}{
		{"no file", nil, domainerrors.ErrNoFileSelected},
		{"not an image", &entity.ImageFile{Name: "notes.txt", Data: []byte("just some text")}, domainerrors.ErrNotAnImage},
		{"declared image but text payload", &entity.ImageFile{Name: "x.png", ContentType: "image/png", Data: []byte("plain")}, domainerrors.ErrNotAnImage},
		{"too large", pngFile("big.png", 6*1024*1024), domainerrors.ErrImageTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFeedFixture(t)

			_, err := f.service.UploadPhoto(context.Background(), usecase.UploadPhotoInput{File: tt.file})

			assert.ErrorIs(t, err, tt.expected)
			f.objectStore.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestFeedService_UploadPhoto_RequiresSession(t *testing.T) {
	f := newFeedFixture(t)
	f.identity = nil

	_, err := f.service.UploadPhoto(context.Background(), usecase.UploadPhotoInput{File: pngFile("a.png", 64)})

	assert.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)
}

func TestFeedService_UploadPhoto_RecordFailureRemovesObject(t *testing.T) {
	f := newFeedFixture(t)
	ctx := context.Background()
	file := pngFile("cat.png", 128)

	f.objectStore.EXPECT().Upload(ctx, mock.Anything, "image/png", file.Data).Return("https://cdn/x", nil)
	f.photoRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("write failed"))
	f.objectStore.EXPECT().Delete(ctx, mock.MatchedBy(func(p string) bool { return strings.HasPrefix(p, "photos/u1/") })).Return(nil)

	_, err := f.service.UploadPhoto(ctx, usecase.UploadPhotoInput{File: file})

	assert.ErrorIs(t, err, domainerrors.ErrUploadFailed)
}

func TestFeedService_PreviewImage(t *testing.T) {
	f := newFeedFixture(t)

	url, err := f.service.PreviewImage(context.Background(), pngFile("a.png", 32))

	require.NoError(t, err)
	assert.Regexp(t, `^data:image/png;base64,`, url)
}

func TestFeedService_ToggleLike(t *testing.T) {
	f := newFeedFixture(t)
	ctx := context.Background()

	f.photoRepo.EXPECT().FindByID(ctx, "p1").Return(&entity.Photo{ID: "p1", Likes: []string{"u2"}}, nil).Once()
	f.photoRepo.EXPECT().AddLike(ctx, "p1", "u1").Return(nil)

	result, err := f.service.ToggleLike(ctx, "p1")
	require.NoError(t, err)
	assert.True(t, result.Liked)

	f.photoRepo.EXPECT().FindByID(ctx, "p1").Return(&entity.Photo{ID: "p1", Likes: []string{"u2", "u1"}}, nil).Once()
	f.photoRepo.EXPECT().RemoveLike(ctx, "p1", "u1").Return(nil)

	result, err = f.service.ToggleLike(ctx, "p1")
	require.NoError(t, err)
	assert.False(t, result.Liked)
}

func TestFeedService_ToggleLike_MissingPhoto(t *testing.T) {
	f := newFeedFixture(t)
	ctx := context.Background()

	f.photoRepo.EXPECT().FindByID(ctx, "gone").Return(nil, repository.ErrPhotoNotFound)

	_, err := f.service.ToggleLike(ctx, "gone")

	assert.ErrorIs(t, err, domainerrors.ErrPhotoNotFound)
}

func TestFeedService_DeletePhoto_RejectsNonOwner(t *testing.T) {
	f := newFeedFixture(t)
	f.withPhotos(t, &entity.Photo{ID: "p1", UserID: "u2"})

	err := f.service.DeletePhoto(context.Background(), "p1")

	assert.ErrorIs(t, err, domainerrors.ErrNotPhotoOwner)
	f.photoRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestFeedService_DeletePhoto_Owner(t *testing.T) {
	f := newFeedFixture(t, func(cfg *config.Config) {
		cfg.Storage = &config.StorageConfig{MaxUploadBytes: 1024, DeleteObjectsOnPhotoDelete: true}
	})
	ctx := context.Background()
	f.withPhotos(t, &entity.Photo{ID: "p1", UserID: "u1", StoragePath: "photos/u1/1_a.png"})

	f.photoRepo.EXPECT().Delete(ctx, "p1").Return(nil)
	f.objectStore.EXPECT().Delete(ctx, "photos/u1/1_a.png").Return(nil)
	f.photoRepo.EXPECT().FindRecent(ctx, 50).Return([]*entity.Photo{}, nil)

	require.NoError(t, f.service.DeletePhoto(ctx, "p1"))
	assert.Empty(t, f.service.Photos())
}

func TestFeedService_DeletePhoto_UnknownPhoto(t *testing.T) {
	f := newFeedFixture(t)

	err := f.service.DeletePhoto(context.Background(), "nope")

	assert.ErrorIs(t, err, domainerrors.ErrPhotoNotFound)
}

func TestFeedService_LivePhotoChanges(t *testing.T) {
	f := newFeedFixture(t)
	ctx := context.Background()

	photoSub := mockRepo.NewMockSubscription(t)
	photoSub.EXPECT().Close().Return().Maybe()
	notifSub := mockRepo.NewMockSubscription(t)
	notifSub.EXPECT().Close().Return().Maybe()

	var deliver func(entity.PhotoChangeSet)
	f.photoRepo.EXPECT().
		WatchRecent(mock.Anything, 20, mock.Anything).
		RunAndReturn(func(_ context.Context, _ int, onChange func(entity.PhotoChangeSet)) (repository.Subscription, error) {
			deliver = onChange

			return photoSub, nil
		})
	f.notificationRepo.EXPECT().WatchUnread(mock.Anything, "u1", mock.Anything).Return(notifSub, nil)
	require.NoError(t, f.service.StartRealtimeSync(ctx))

	f.photoRepo.EXPECT().FindRecent(mock.Anything, 50).Return([]*entity.Photo{}, nil)

	// The initial delivery lists existing photos as added, none of them notify.
	deliver(entity.PhotoChangeSet{
		Initial: true,
		Changes: []entity.PhotoChange{{Kind: entity.ChangeAdded, Photo: &entity.Photo{ID: "old", UserID: "u2"}}},
	})

	f.notificationRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(n *entity.Notification) bool {
			return n.UserID == "u1" &&
				n.Type == entity.NotificationTypeNewPhoto &&
				n.Data[entity.NotificationDataUserName] == "Bob" &&
				n.Data[entity.NotificationDataPhotoID] == "p9"
		})).
		RunAndReturn(func(_ context.Context, n *entity.Notification) error {
			n.ID = "n1"

			return nil
		}).
		Once()
	f.publisher.EXPECT().
		PublishNotificationEvent(mock.Anything, mock.MatchedBy(func(ev *service.NotificationEvent) bool {
			return ev.NotificationID == "n1" && ev.UserID == "u1" && ev.Type == "new_photo"
		})).
		Return(nil).
		Once()

	deliver(entity.PhotoChangeSet{Changes: []entity.PhotoChange{
		{Kind: entity.ChangeAdded, Photo: &entity.Photo{ID: "p9", UserID: "u2", UserName: "Bob"}},
		{Kind: entity.ChangeAdded, Photo: &entity.Photo{ID: "mine", UserID: "u1", UserName: "Ann"}},
		{Kind: entity.ChangeModified, Photo: &entity.Photo{ID: "p8", UserID: "u2"}},
	}})
}

func TestFeedService_StartRealtimeSync_RequiresSession(t *testing.T) {
	f := newFeedFixture(t)
	f.identity = nil

	err := f.service.StartRealtimeSync(context.Background())

	assert.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)
}

func TestFeedService_LogoutDiscardsLoadInFlight(t *testing.T) {
	f := newFeedFixture(t)
	ctx := context.Background()
	entered := make(chan struct{})
	release := make(chan struct{})

	f.photoRepo.EXPECT().
		FindRecent(ctx, 50).
		RunAndReturn(func(context.Context, int) ([]*entity.Photo, error) {
			close(entered)
			<-release

			return []*entity.Photo{{ID: "late"}}, nil
		})

	done := make(chan error)
	go func() { done <- f.service.LoadPhotos(ctx) }()
	<-entered

	f.identity = nil
	f.onSession(ctx, entity.SessionEvent{Kind: entity.SessionEventLogout})
	close(release)
	require.NoError(t, <-done)

	assert.Empty(t, f.service.Photos())
}

func TestFeedService_Stats(t *testing.T) {
	f := newFeedFixture(t)
	ctx := context.Background()

	f.withPhotos(t,
		&entity.Photo{ID: "1", UserID: "u1"},
		&entity.Photo{ID: "2", UserID: "u2"},
		&entity.Photo{ID: "3", UserID: "u1"},
		&entity.Photo{ID: "4", UserID: "u3"},
		&entity.Photo{ID: "5", UserID: "u3"},
		&entity.Photo{ID: "6", UserID: "u3"},
	)
	f.profileRepo.EXPECT().List(ctx, 20).Return([]*entity.UserProfile{{UID: "u1"}, {UID: "u2"}, {UID: "u3"}}, nil)
	require.NoError(t, f.service.LoadUsers(ctx))

	stats := f.service.Stats()

	assert.Equal(t, usecase.FeedStats{TotalPhotos: 6, MyUploads: 2, ActiveUsers: 2, Friends: 2}, stats)
}

func TestFeedService_StatsEmpty(t *testing.T) {
	f := newFeedFixture(t)

	assert.Equal(t, usecase.FeedStats{ActiveUsers: 1}, f.service.Stats())
}

func TestFeedService_CommentOnPhoto(t *testing.T) {
	f := newFeedFixture(t)

	err := f.service.CommentOnPhoto(context.Background(), "p1", "nice")

	assert.ErrorIs(t, err, domainerrors.ErrCommentsNotImplemented)
	assert.Equal(t, "Comment feature coming soon!", err.Error())
}

func TestFeedService_NavigateTo(t *testing.T) {
	f := newFeedFixture(t)
	ctx := context.Background()

	require.NoError(t, f.service.NavigateTo(ctx, usecase.PageFriends))
	assert.Equal(t, usecase.PageFriends, f.service.CurrentPage())

	f.photoRepo.EXPECT().FindRecent(ctx, 50).Return([]*entity.Photo{}, nil)
	require.NoError(t, f.service.NavigateTo(ctx, usecase.PageHome))

	assert.ErrorIs(t, f.service.NavigateTo(ctx, usecase.Page("settings")), domainerrors.ErrUnknownPage)
}

func TestFeedService_MarkNotificationRead(t *testing.T) {
	f := newFeedFixture(t)
	ctx := context.Background()

	f.notificationRepo.EXPECT().FindByID(ctx, "n2").Return(&entity.Notification{ID: "n2", UserID: "u9"}, nil)
	assert.ErrorIs(t, f.service.MarkNotificationRead(ctx, "n2"), domainerrors.ErrForbidden)

	f.notificationRepo.EXPECT().FindByID(ctx, "n1").Return(&entity.Notification{ID: "n1", UserID: "u1"}, nil)
	f.notificationRepo.EXPECT().MarkRead(ctx, "n1").Return(nil)
	f.notificationRepo.EXPECT().FindUnread(ctx, "u1", 20).Return([]*entity.Notification{}, nil)

	assert.NoError(t, f.service.MarkNotificationRead(ctx, "n1"))
}
