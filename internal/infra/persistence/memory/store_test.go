package memory

import (
	"context"
	"testing"
	"time"

	"wedump/internal/domain/entity"
	"wedump/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func steppingClock() func() time.Time {
	current := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	return func() time.Time {
		current = current.Add(time.Second)

		return current
	}
}

func newPhoto(uid string) *entity.Photo {
	return &entity.Photo{UserID: uid, UserName: uid, ImageURL: "https://img/" + uid, StoragePath: "photos/" + uid}
}

func TestPhotoRepository_CreateAndFindRecent(t *testing.T) {
	ctx := context.Background()
	repo := NewPhotoRepository(NewStoreWithClock(steppingClock()))

	first := newPhoto("a")
	second := newPhoto("b")
	third := newPhoto("c")
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Create(ctx, third))

	assert.NotEmpty(t, first.ID)
	assert.Equal(t, first.CreatedAt, first.UpdatedAt)
	assert.True(t, second.CreatedAt.After(first.CreatedAt))

	photos, err := repo.FindRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, photos, 2)
	assert.Equal(t, third.ID, photos[0].ID)
	assert.Equal(t, second.ID, photos[1].ID)
	assert.NotNil(t, photos[0].Likes)
}

func TestPhotoRepository_SameTimestampOrdersByInsertion(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := NewPhotoRepository(NewStoreWithClock(func() time.Time { return fixed }))

	first := newPhoto("a")
	second := newPhoto("b")
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	photos, err := repo.FindRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, photos, 2)
	assert.Equal(t, second.ID, photos[0].ID)
}

func TestPhotoRepository_Likes(t *testing.T) {
	ctx := context.Background()
	repo := NewPhotoRepository(NewStoreWithClock(steppingClock()))

	photo := newPhoto("a")
	require.NoError(t, repo.Create(ctx, photo))

	require.NoError(t, repo.AddLike(ctx, photo.ID, "u1"))
	require.NoError(t, repo.AddLike(ctx, photo.ID, "u1"))
	require.NoError(t, repo.AddLike(ctx, photo.ID, "u2"))

	stored, err := repo.FindByID(ctx, photo.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"u1", "u2"}, stored.Likes)
	assert.True(t, stored.UpdatedAt.After(stored.CreatedAt))

	require.NoError(t, repo.RemoveLike(ctx, photo.ID, "u1"))
	stored, err = repo.FindByID(ctx, photo.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"u2"}, stored.Likes)

	assert.ErrorIs(t, repo.AddLike(ctx, "missing", "u1"), repository.ErrPhotoNotFound)
}

func TestPhotoRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewPhotoRepository(NewStore())

	photo := newPhoto("a")
	require.NoError(t, repo.Create(ctx, photo))
	photo.Caption = "changed after create"

	stored, err := repo.FindByID(ctx, photo.ID)
	require.NoError(t, err)
	stored.Likes = append(stored.Likes, "intruder")

	again, err := repo.FindByID(ctx, photo.ID)
	require.NoError(t, err)
	assert.Empty(t, again.Caption)
	assert.Empty(t, again.Likes)
}

func TestPhotoRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewPhotoRepository(NewStore())

	photo := newPhoto("a")
	require.NoError(t, repo.Create(ctx, photo))
	require.NoError(t, repo.Delete(ctx, photo.ID))
	require.NoError(t, repo.Delete(ctx, photo.ID))

	_, err := repo.FindByID(ctx, photo.ID)
	assert.ErrorIs(t, err, repository.ErrPhotoNotFound)
}

func TestPhotoRepository_WatchRecent(t *testing.T) {
	ctx := context.Background()
	repo := NewPhotoRepository(NewStoreWithClock(steppingClock()))

	existing := newPhoto("a")
	require.NoError(t, repo.Create(ctx, existing))

	var sets []entity.PhotoChangeSet
	sub, err := repo.WatchRecent(ctx, 2, func(set entity.PhotoChangeSet) {
		sets = append(sets, set)
	})
	require.NoError(t, err)

	require.Len(t, sets, 1)
	assert.True(t, sets[0].Initial)
	require.Len(t, sets[0].Changes, 1)
	assert.Equal(t, entity.ChangeAdded, sets[0].Changes[0].Kind)
	assert.Equal(t, existing.ID, sets[0].Changes[0].Photo.ID)

	added := newPhoto("b")
	require.NoError(t, repo.Create(ctx, added))
	require.Len(t, sets, 2)
	assert.False(t, sets[1].Initial)
	require.Len(t, sets[1].Changes, 1)
	assert.Equal(t, entity.ChangeAdded, sets[1].Changes[0].Kind)
	assert.Equal(t, added.ID, sets[1].Changes[0].Photo.ID)

	require.NoError(t, repo.AddLike(ctx, existing.ID, "u9"))
	require.Len(t, sets, 3)
	require.Len(t, sets[2].Changes, 1)
	assert.Equal(t, entity.ChangeModified, sets[2].Changes[0].Kind)
	assert.Equal(t, []string{"u9"}, sets[2].Changes[0].Photo.Likes)

	// A third photo pushes the oldest out of the window.
	pusher := newPhoto("c")
	require.NoError(t, repo.Create(ctx, pusher))
	require.Len(t, sets, 4)
	kinds := map[string]entity.ChangeKind{}
	for _, change := range sets[3].Changes {
		kinds[change.Photo.ID] = change.Kind
	}
	assert.Equal(t, map[string]entity.ChangeKind{
		pusher.ID:   entity.ChangeAdded,
		existing.ID: entity.ChangeRemoved,
	}, kinds)

	sub.Close()
	sub.Close()
	require.NoError(t, repo.Create(ctx, newPhoto("d")))
	assert.Len(t, sets, 4)
}

func TestPhotoRepository_WatchRecent_StopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	repo := NewPhotoRepository(NewStore())

	calls := make(chan struct{}, 8)
	_, err := repo.WatchRecent(ctx, 5, func(entity.PhotoChangeSet) { calls <- struct{}{} })
	require.NoError(t, err)
	<-calls

	cancel()
	assert.Eventually(t, func() bool {
		for len(calls) > 0 {
			<-calls
		}
		_ = repo.Create(context.Background(), newPhoto("a"))

		return len(calls) == 0
	}, time.Second, 10*time.Millisecond)
}

func TestWatches_CloseDetachesFromContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := NewStore()

	photoSub, err := NewPhotoRepository(store).WatchRecent(ctx, 5, func(entity.PhotoChangeSet) {})
	require.NoError(t, err)
	notifSub, err := NewNotificationRepository(store).WatchUnread(ctx, "u1", func() {})
	require.NoError(t, err)

	for _, sub := range []repository.Subscription{photoSub, notifSub} {
		sub.Close()

		// The context hook was already stopped by Close.
		assert.False(t, sub.(*subscription).stop())
	}
}

func TestWatches_ContextCancelRemovesWatch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	store := NewStore()

	sub, err := NewPhotoRepository(store).WatchRecent(ctx, 5, func(entity.PhotoChangeSet) {})
	require.NoError(t, err)

	cancel()
	assert.Eventually(t, func() bool {
		store.mu.Lock()
		defer store.mu.Unlock()

		return len(store.photoWatches) == 0
	}, time.Second, 10*time.Millisecond)

	sub.Close()
}

func TestProfileRepository_Merge(t *testing.T) {
	ctx := context.Background()
	repo := NewProfileRepository(NewStore())

	name := "Ann"
	prefs := entity.DefaultPreferences()
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Merge(ctx, "u1", &entity.ProfileUpdate{DisplayName: &name, Preferences: &prefs, CreatedAt: &created}))

	login := created.Add(time.Hour)
	require.NoError(t, repo.Merge(ctx, "u1", &entity.ProfileUpdate{LastLogin: &login}))

	profile, err := repo.FindByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", profile.UID)
	assert.Equal(t, "Ann", profile.DisplayName)
	assert.Equal(t, created, profile.CreatedAt)
	assert.Equal(t, login, profile.LastLogin)
	require.NotNil(t, profile.Preferences)
	assert.Equal(t, "light", profile.Preferences.Theme)

	_, err = repo.FindByID(ctx, "nobody")
	assert.ErrorIs(t, err, repository.ErrProfileNotFound)
}

func TestProfileRepository_List(t *testing.T) {
	ctx := context.Background()
	repo := NewProfileRepository(NewStore())

	for _, uid := range []string{"u1", "u2", "u3"} {
		require.NoError(t, repo.Merge(ctx, uid, &entity.ProfileUpdate{}))
	}

	profiles, err := repo.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, "u1", profiles[0].UID)
	assert.Equal(t, "u2", profiles[1].UID)
}

func TestNotificationRepository_Unread(t *testing.T) {
	ctx := context.Background()
	repo := NewNotificationRepository(NewStoreWithClock(steppingClock()))

	older := &entity.Notification{UserID: "u1", Type: entity.NotificationTypeNewPhoto}
	newer := &entity.Notification{UserID: "u1", Type: entity.NotificationTypeNewPhoto, Read: true}
	other := &entity.Notification{UserID: "u2", Type: entity.NotificationTypeNewPhoto}
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))
	require.NoError(t, repo.Create(ctx, other))

	assert.False(t, newer.Read)

	unread, err := repo.FindUnread(ctx, "u1", 10)
	require.NoError(t, err)
	require.Len(t, unread, 2)
	assert.Equal(t, newer.ID, unread[0].ID)

	require.NoError(t, repo.MarkRead(ctx, newer.ID))
	unread, err = repo.FindUnread(ctx, "u1", 10)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, older.ID, unread[0].ID)

	assert.ErrorIs(t, repo.MarkRead(ctx, "missing"), repository.ErrNotificationNotFound)
}

func TestNotificationRepository_WatchUnread(t *testing.T) {
	ctx := context.Background()
	repo := NewNotificationRepository(NewStore())

	calls := 0
	sub, err := repo.WatchUnread(ctx, "u1", func() { calls++ })
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	require.NoError(t, repo.Create(ctx, &entity.Notification{UserID: "u2"}))
	assert.Equal(t, 1, calls)

	mine := &entity.Notification{UserID: "u1"}
	require.NoError(t, repo.Create(ctx, mine))
	assert.Equal(t, 2, calls)

	require.NoError(t, repo.MarkRead(ctx, mine.ID))
	require.NoError(t, repo.MarkRead(ctx, mine.ID))
	assert.Equal(t, 3, calls)

	sub.Close()
	require.NoError(t, repo.Create(ctx, &entity.Notification{UserID: "u1"}))
	assert.Equal(t, 3, calls)
}

func TestRepositories_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	store := NewStore()

	_, err := NewPhotoRepository(store).FindRecent(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, NewProfileRepository(store).Merge(ctx, "u1", &entity.ProfileUpdate{}), context.Canceled)
	_, err = NewNotificationRepository(store).WatchUnread(ctx, "u1", func() {})
	assert.ErrorIs(t, err, context.Canceled)
}
