package memory

import (
	"context"
	"slices"

	"wedump/internal/domain/entity"
	"wedump/internal/domain/repository"
)

type photoRepository struct {
	store *Store
}

// NewPhotoRepository is the constructor for photoRepository.
func NewPhotoRepository(store *Store) repository.PhotoRepository {
	return &photoRepository{store: store}
}

func (repo *photoRepository) FindRecent(ctx context.Context, limit int) ([]*entity.Photo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	docs := repo.store.recentPhotos(limit)
	photos := make([]*entity.Photo, len(docs))
	for i, doc := range docs {
		photos[i] = doc.photo.Clone()
	}

	return photos, nil
}

func (repo *photoRepository) FindByID(ctx context.Context, id string) (*entity.Photo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	doc, ok := repo.store.photos[id]
	if !ok {
		return nil, repository.ErrPhotoNotFound
	}

	return doc.photo.Clone(), nil
}

func (repo *photoRepository) Create(ctx context.Context, photo *entity.Photo) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	repo.store.mu.Lock()
	id, seq := repo.store.nextID("photo_")
	now := repo.store.now()
	photo.ID = id
	photo.CreatedAt = now
	photo.UpdatedAt = now
	stored := photo.Clone()
	if stored.Likes == nil {
		stored.Likes = []string{}
	}
	if stored.Comments == nil {
		stored.Comments = []entity.Comment{}
	}
	repo.store.photos[id] = &photoDoc{photo: stored, seq: seq, version: 1}
	pending := repo.store.photosChanged()
	repo.store.mu.Unlock()

	run(pending)

	return nil
}

func (repo *photoRepository) AddLike(ctx context.Context, id, userID string) error {
	return repo.updateLikes(ctx, id, func(likes []string) []string {
		if slices.Contains(likes, userID) {
			return likes
		}

		return append(likes, userID)
	})
}

func (repo *photoRepository) RemoveLike(ctx context.Context, id, userID string) error {
	return repo.updateLikes(ctx, id, func(likes []string) []string {
		return slices.DeleteFunc(likes, func(uid string) bool { return uid == userID })
	})
}

func (repo *photoRepository) updateLikes(ctx context.Context, id string, apply func([]string) []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	repo.store.mu.Lock()
	doc, ok := repo.store.photos[id]
	if !ok {
		repo.store.mu.Unlock()

		return repository.ErrPhotoNotFound
	}
	doc.photo.Likes = apply(slices.Clone(doc.photo.Likes))
	doc.photo.UpdatedAt = repo.store.now()
	doc.version++
	pending := repo.store.photosChanged()
	repo.store.mu.Unlock()

	run(pending)

	return nil
}

func (repo *photoRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	repo.store.mu.Lock()
	if _, ok := repo.store.photos[id]; !ok {
		repo.store.mu.Unlock()

		return nil
	}
	delete(repo.store.photos, id)
	pending := repo.store.photosChanged()
	repo.store.mu.Unlock()

	run(pending)

	return nil
}

// WatchRecent delivers the current window before returning.
func (repo *photoRepository) WatchRecent(ctx context.Context, limit int, onChange func(entity.PhotoChangeSet)) (repository.Subscription, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	w := &photoWatch{limit: limit, onChange: onChange}

	repo.store.mu.Lock()
	repo.store.nextWatchID++
	watchID := repo.store.nextWatchID
	repo.store.photoWatches[watchID] = w
	initial, _ := w.diff(repo.store.recentPhotos(limit))
	repo.store.mu.Unlock()

	sub := newSubscription(ctx, func() {
		w.closed.Store(true)
		repo.store.mu.Lock()
		delete(repo.store.photoWatches, watchID)
		repo.store.mu.Unlock()
	})

	initial.Initial = true
	w.deliver(initial)

	return sub, nil
}
