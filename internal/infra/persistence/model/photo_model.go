// Package model holds the document shapes stored in the managed document store.
package model

import (
	"time"

	"wedump/internal/domain/entity"
)

// PhotoModel is a document of the photos collection.
type PhotoModel struct {
	ImageURL     string         `firestore:"imageURL"`
	StoragePath  string         `firestore:"storagePath,omitempty"`
	Caption      string         `firestore:"caption"`
	UserID       string         `firestore:"userId"`
	UserName     string         `firestore:"userName"`
	UserPhotoURL string         `firestore:"userPhotoURL"`
	Likes        []string       `firestore:"likes"`
	Comments     []CommentModel `firestore:"comments"`
	CreatedAt    time.Time      `firestore:"createdAt,serverTimestamp"`
	UpdatedAt    time.Time      `firestore:"updatedAt,serverTimestamp"`
}

// CommentModel is an element of PhotoModel.Comments.
type CommentModel struct {
	UserID    string    `firestore:"userId"`
	UserName  string    `firestore:"userName"`
	Text      string    `firestore:"text"`
	CreatedAt time.Time `firestore:"createdAt"`
}

// ToPhotoDomain converts a stored document into the entity.
func ToPhotoDomain(id string, data *PhotoModel) *entity.Photo {
	if data == nil {
		return nil
	}

	likes := data.Likes
	if likes == nil {
		likes = []string{}
	}
	comments := make([]entity.Comment, 0, len(data.Comments))
	for _, c := range data.Comments {
		comments = append(comments, entity.Comment{
			UserID:    c.UserID,
			UserName:  c.UserName,
			Text:      c.Text,
			CreatedAt: c.CreatedAt,
		})
	}

	return &entity.Photo{
		ID:           id,
		ImageURL:     data.ImageURL,
		StoragePath:  data.StoragePath,
		Caption:      data.Caption,
		UserID:       data.UserID,
		UserName:     data.UserName,
		UserPhotoURL: data.UserPhotoURL,
		Likes:        likes,
		Comments:     comments,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// FromPhotoDomain converts the entity into a document. Zero timestamps are
// filled by the server.
func FromPhotoDomain(data *entity.Photo) *PhotoModel {
	if data == nil {
		return nil
	}

	likes := data.Likes
	if likes == nil {
		likes = []string{}
	}
	comments := make([]CommentModel, 0, len(data.Comments))
	for _, c := range data.Comments {
		comments = append(comments, CommentModel{
			UserID:    c.UserID,
			UserName:  c.UserName,
			Text:      c.Text,
			CreatedAt: c.CreatedAt,
		})
	}

	return &PhotoModel{
		ImageURL:     data.ImageURL,
		StoragePath:  data.StoragePath,
		Caption:      data.Caption,
		UserID:       data.UserID,
		UserName:     data.UserName,
		UserPhotoURL: data.UserPhotoURL,
		Likes:        likes,
		Comments:     comments,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
