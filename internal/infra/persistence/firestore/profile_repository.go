package firestore

import (
	"context"

	"wedump/internal/domain/constants"
	"wedump/internal/domain/entity"
	domainerrors "wedump/internal/domain/errors"
	"wedump/internal/domain/repository"
	"wedump/internal/errors"
	"wedump/internal/infra/persistence/model"

	firestoreLib "cloud.google.com/go/firestore"
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	client *firestoreLib.Client
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(client *firestoreLib.Client) repository.ProfileRepository {
	return &profileRepository{
		client: client,
	}
}

func (repo *profileRepository) collection() *firestoreLib.CollectionRef {
	return repo.client.Collection(constants.CollectionUsers)
}

// Merge upserts only the fields set on update.
func (repo *profileRepository) Merge(ctx context.Context, uid string, update *entity.ProfileUpdate) error {
	fields := model.ProfileUpdateFields(uid, update)

	if _, err := repo.collection().Doc(uid).Set(ctx, fields, firestoreLib.MergeAll); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to merge user profile")
	}

	return nil
}

// FindByID returns the profile keyed by uid.
func (repo *profileRepository) FindByID(ctx context.Context, uid string) (*entity.UserProfile, error) {
	doc, err := repo.collection().Doc(uid).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find user profile")
	}

	return toProfile(doc)
}

// List returns up to limit profiles.
func (repo *profileRepository) List(ctx context.Context, limit int) ([]*entity.UserProfile, error) {
	docs, err := repo.collection().Limit(limit).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user profiles")
	}

	profiles := make([]*entity.UserProfile, 0, len(docs))
	for _, doc := range docs {
		profile, err := toProfile(doc)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}

	return profiles, nil
}

func toProfile(doc *firestoreLib.DocumentSnapshot) (*entity.UserProfile, error) {
	var profileM model.ProfileModel
	if err := doc.DataTo(&profileM); err != nil {
		return nil, errors.Wrapf(err, "failed to decode profile %s", doc.Ref.ID)
	}

	return model.ToProfileDomain(doc.Ref.ID, &profileM), nil
}
