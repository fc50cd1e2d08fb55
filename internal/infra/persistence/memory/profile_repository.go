package memory

import (
	"cmp"
	"context"
	"slices"

	"wedump/internal/domain/entity"
	"wedump/internal/domain/repository"
)

type profileRepository struct {
	store *Store
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(store *Store) repository.ProfileRepository {
	return &profileRepository{store: store}
}

func (repo *profileRepository) Merge(ctx context.Context, uid string, update *entity.ProfileUpdate) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	doc, ok := repo.store.profiles[uid]
	if !ok {
		repo.store.seq++
		doc = &profileDoc{profile: &entity.UserProfile{UID: uid}, seq: repo.store.seq}
		repo.store.profiles[uid] = doc
	}
	update.Apply(doc.profile)

	return nil
}

func (repo *profileRepository) FindByID(ctx context.Context, uid string) (*entity.UserProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	doc, ok := repo.store.profiles[uid]
	if !ok {
		return nil, repository.ErrProfileNotFound
	}

	return cloneProfile(doc.profile), nil
}

// List returns profiles in creation order.
func (repo *profileRepository) List(ctx context.Context, limit int) ([]*entity.UserProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	docs := make([]*profileDoc, 0, len(repo.store.profiles))
	for _, doc := range repo.store.profiles {
		docs = append(docs, doc)
	}
	slices.SortFunc(docs, func(a, b *profileDoc) int { return cmp.Compare(a.seq, b.seq) })
	if len(docs) > limit {
		docs = docs[:limit]
	}

	profiles := make([]*entity.UserProfile, len(docs))
	for i, doc := range docs {
		profiles[i] = cloneProfile(doc.profile)
	}

	return profiles, nil
}

func cloneProfile(p *entity.UserProfile) *entity.UserProfile {
	c := *p
	if p.Preferences != nil {
		prefs := *p.Preferences
		c.Preferences = &prefs
	}

	return &c
}
