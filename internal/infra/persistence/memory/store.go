// Package memory contains an in-process document store with live queries.
// It backs local development and the end-to-end tests.
package memory

import (
	"cmp"
	"context"
	"slices"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"wedump/internal/domain/entity"
)

// Store holds the three collections. Live query callbacks run on the
// goroutine that made the change, after the store lock is released.
type Store struct {
	now func() time.Time

	mu            sync.Mutex
	seq           uint64
	photos        map[string]*photoDoc
	profiles      map[string]*profileDoc
	notifications map[string]*notificationDoc
	photoWatches  map[uint64]*photoWatch
	notifWatches  map[uint64]*notificationWatch
	nextWatchID   uint64
}

type photoDoc struct {
	photo   *entity.Photo
	seq     uint64
	version uint64
}

type profileDoc struct {
	profile *entity.UserProfile
	seq     uint64
}

type notificationDoc struct {
	notification *entity.Notification
	seq          uint64
}

// NewStore creates an empty store.
func NewStore() *Store {
	return NewStoreWithClock(time.Now)
}

// NewStoreWithClock creates an empty store that stamps documents with now.
func NewStoreWithClock(now func() time.Time) *Store {
	return &Store{
		now:           now,
		photos:        make(map[string]*photoDoc),
		profiles:      make(map[string]*profileDoc),
		notifications: make(map[string]*notificationDoc),
		photoWatches:  make(map[uint64]*photoWatch),
		notifWatches:  make(map[uint64]*notificationWatch),
	}
}

// nextID must be called with mu held.
func (s *Store) nextID(prefix string) (string, uint64) {
	s.seq++

	return prefix + strconv.FormatUint(s.seq, 36), s.seq
}

// recentPhotos must be called with mu held.
func (s *Store) recentPhotos(limit int) []*photoDoc {
	docs := make([]*photoDoc, 0, len(s.photos))
	for _, doc := range s.photos {
		docs = append(docs, doc)
	}
	slices.SortFunc(docs, func(a, b *photoDoc) int {
		if c := b.photo.CreatedAt.Compare(a.photo.CreatedAt); c != 0 {
			return c
		}

		return cmp.Compare(b.seq, a.seq)
	})
	if limit >= 0 && len(docs) > limit {
		docs = docs[:limit]
	}

	return docs
}

// unreadNotifications must be called with mu held.
func (s *Store) unreadNotifications(userID string) []*notificationDoc {
	docs := make([]*notificationDoc, 0)
	for _, doc := range s.notifications {
		if doc.notification.UserID == userID && !doc.notification.Read {
			docs = append(docs, doc)
		}
	}
	slices.SortFunc(docs, func(a, b *notificationDoc) int {
		if c := b.notification.CreatedAt.Compare(a.notification.CreatedAt); c != 0 {
			return c
		}

		return cmp.Compare(b.seq, a.seq)
	})

	return docs
}

// photosChanged diffs every photo watch against the current state and returns
// the deliveries to run once the lock is released. Must be called with mu held.
func (s *Store) photosChanged() []func() {
	var pending []func()
	for _, w := range s.photoWatches {
		if set, ok := w.diff(s.recentPhotos(w.limit)); ok {
			pending = append(pending, func() { w.deliver(set) })
		}
	}

	return pending
}

// notificationsChanged must be called with mu held.
func (s *Store) notificationsChanged(userID string) []func() {
	var pending []func()
	for _, w := range s.notifWatches {
		if w.userID == userID {
			pending = append(pending, w.deliver)
		}
	}

	return pending
}

func run(pending []func()) {
	for _, fn := range pending {
		fn()
	}
}

// photoWatch tracks the window last reported to one live photo query.
type photoWatch struct {
	limit    int
	onChange func(entity.PhotoChangeSet)
	closed   atomic.Bool
	window   map[string]uint64
}

// diff must be called with the store lock held.
func (w *photoWatch) diff(docs []*photoDoc) (entity.PhotoChangeSet, bool) {
	set := entity.PhotoChangeSet{}
	next := make(map[string]uint64, len(docs))
	for _, doc := range docs {
		next[doc.photo.ID] = doc.version
		version, seen := w.window[doc.photo.ID]
		switch {
		case !seen:
			set.Changes = append(set.Changes, entity.PhotoChange{Kind: entity.ChangeAdded, Photo: doc.photo.Clone()})
		case version != doc.version:
			set.Changes = append(set.Changes, entity.PhotoChange{Kind: entity.ChangeModified, Photo: doc.photo.Clone()})
		}
	}
	for id := range w.window {
		if _, ok := next[id]; !ok {
			set.Changes = append(set.Changes, entity.PhotoChange{Kind: entity.ChangeRemoved, Photo: &entity.Photo{ID: id}})
		}
	}
	w.window = next

	return set, len(set.Changes) > 0
}

func (w *photoWatch) deliver(set entity.PhotoChangeSet) {
	if w.closed.Load() {
		return
	}
	w.onChange(set)
}

type notificationWatch struct {
	userID   string
	onChange func()
	closed   atomic.Bool
}

func (w *notificationWatch) deliver() {
	if w.closed.Load() {
		return
	}
	w.onChange()
}

// subscription removes a watch from the store on Close, or when the context
// it was opened with ends.
type subscription struct {
	once   sync.Once
	remove func()

	mu     sync.Mutex
	closed bool
	stop   func() bool // detaches the context hook
}

func newSubscription(ctx context.Context, remove func()) *subscription {
	sub := &subscription{remove: remove}
	stop := context.AfterFunc(ctx, sub.Close)

	sub.mu.Lock()
	sub.stop = stop
	closed := sub.closed
	sub.mu.Unlock()
	if closed {
		stop()
	}

	return sub
}

func (s *subscription) Close() {
	s.once.Do(func() {
		s.remove()

		s.mu.Lock()
		s.closed = true
		stop := s.stop
		s.mu.Unlock()
		if stop != nil {
			stop()
		}
	})
}
