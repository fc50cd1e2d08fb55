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

// photoRepository implements the repository.PhotoRepository interface.
type photoRepository struct {
	client *firestoreLib.Client
	logger *slog.Logger
}

// NewPhotoRepository is the constructor for photoRepository.
func NewPhotoRepository(client *firestoreLib.Client, logger *slog.Logger) repository.PhotoRepository {
	return &photoRepository{
		client: client,
		logger: logger,
	}
}

func (repo *photoRepository) collection() *firestoreLib.CollectionRef {
	return repo.client.Collection(constants.CollectionPhotos)
}

func (repo *photoRepository) recentQuery(limit int) firestoreLib.Query {
	return repo.collection().OrderBy("createdAt", firestoreLib.Desc).Limit(limit)
}

// FindRecent returns up to limit photos, newest first.
func (repo *photoRepository) FindRecent(ctx context.Context, limit int) ([]*entity.Photo, error) {
	docs, err := repo.recentQuery(limit).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to query recent photos")
	}

	photos := make([]*entity.Photo, 0, len(docs))
	for _, doc := range docs {
		photo, err := toPhoto(doc)
		if err != nil {
			return nil, err
		}
		photos = append(photos, photo)
	}

	return photos, nil
}

// FindByID returns a single photo.
func (repo *photoRepository) FindByID(ctx context.Context, id string) (*entity.Photo, error) {
	doc, err := repo.collection().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrPhotoNotFound
		}

		return nil, errors.Wrap(err, "failed to find photo by ID")
	}

	return toPhoto(doc)
}

// Create stores a new photo with server-assigned timestamps.
func (repo *photoRepository) Create(ctx context.Context, photo *entity.Photo) error {
	photoM := model.FromPhotoDomain(photo)

	ref, result, err := repo.collection().Add(ctx, photoM)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create photo")
	}

	// Server timestamps resolve to the commit time.
	photo.ID = ref.ID
	photo.CreatedAt = result.UpdateTime
	photo.UpdatedAt = result.UpdateTime

	return nil
}

// AddLike adds userID to the like set atomically.
func (repo *photoRepository) AddLike(ctx context.Context, id, userID string) error {
	return repo.updateLikes(ctx, id, firestoreLib.ArrayUnion(userID))
}

// RemoveLike removes userID from the like set atomically.
func (repo *photoRepository) RemoveLike(ctx context.Context, id, userID string) error {
	return repo.updateLikes(ctx, id, firestoreLib.ArrayRemove(userID))
}

func (repo *photoRepository) updateLikes(ctx context.Context, id string, transform any) error {
	_, err := repo.collection().Doc(id).Update(ctx, []firestoreLib.Update{
		{Path: "likes", Value: transform},
	})
	if err != nil {
		if isNotFound(err) {
			return repository.ErrPhotoNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update photo likes")
	}

	return nil
}

// Delete removes the photo document.
func (repo *photoRepository) Delete(ctx context.Context, id string) error {
	if _, err := repo.collection().Doc(id).Delete(ctx); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete photo")
	}

	return nil
}

// WatchRecent listens to the newest limit photos.
func (repo *photoRepository) WatchRecent(ctx context.Context, limit int, onChange func(entity.PhotoChangeSet)) (repository.Subscription, error) {
	sub := watchQuery(ctx, repo.logger, "photos", repo.recentQuery(limit), func(snap *firestoreLib.QuerySnapshot, initial bool) {
		set := entity.PhotoChangeSet{Initial: initial, Changes: make([]entity.PhotoChange, 0, len(snap.Changes))}
		for _, change := range snap.Changes {
			photo, err := toPhoto(change.Doc)
			if err != nil {
				repo.logger.Warn("Skipping undecodable photo", slog.String("photo_id", change.Doc.Ref.ID), slog.Any("error", err))

				continue
			}
			set.Changes = append(set.Changes, entity.PhotoChange{Kind: changeKind(change.Kind), Photo: photo})
		}
		onChange(set)
	})

	return sub, nil
}

func toPhoto(doc *firestoreLib.DocumentSnapshot) (*entity.Photo, error) {
	var photoM model.PhotoModel
	if err := doc.DataTo(&photoM); err != nil {
		return nil, errors.Wrapf(err, "failed to decode photo %s", doc.Ref.ID)
	}

	return model.ToPhotoDomain(doc.Ref.ID, &photoM), nil
}

func changeKind(kind firestoreLib.DocumentChangeKind) entity.ChangeKind {
	switch kind {
	case firestoreLib.DocumentAdded:
		return entity.ChangeAdded
	case firestoreLib.DocumentRemoved:
		return entity.ChangeRemoved
	default:
		return entity.ChangeModified
	}
}
