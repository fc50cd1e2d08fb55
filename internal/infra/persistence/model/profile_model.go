package model

import (
	"time"

	"wedump/internal/domain/entity"
)

// ProfileModel is a document of the users collection, keyed by uid.
type ProfileModel struct {
	UID         string            `firestore:"uid"`
	Email       string            `firestore:"email"`
	DisplayName string            `firestore:"displayName"`
	PhotoURL    string            `firestore:"photoURL"`
	Preferences *PreferencesModel `firestore:"preferences,omitempty"`
	CreatedAt   time.Time         `firestore:"createdAt,omitempty"`
	UpdatedAt   time.Time         `firestore:"updatedAt,omitempty"`
	LastLogin   time.Time         `firestore:"lastLogin,omitempty"`
}

// PreferencesModel is the nested preferences map.
type PreferencesModel struct {
	Theme         string `firestore:"theme"`
	Notifications bool   `firestore:"notifications"`
}

// ToProfileDomain converts a stored document into the entity.
func ToProfileDomain(uid string, data *ProfileModel) *entity.UserProfile {
	if data == nil {
		return nil
	}

	profile := &entity.UserProfile{
		UID:         uid,
		Email:       data.Email,
		DisplayName: data.DisplayName,
		PhotoURL:    data.PhotoURL,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
		LastLogin:   data.LastLogin,
	}
	if data.Preferences != nil {
		profile.Preferences = &entity.Preferences{
			Theme:         data.Preferences.Theme,
			Notifications: data.Preferences.Notifications,
		}
	}

	return profile
}

// ProfileUpdateFields lists the document fields written by a merge update.
// Only fields set on the update appear in the result.
func ProfileUpdateFields(uid string, update *entity.ProfileUpdate) map[string]any {
	fields := map[string]any{"uid": uid}
	if update.Email != nil {
		fields["email"] = *update.Email
	}
	if update.DisplayName != nil {
		fields["displayName"] = *update.DisplayName
	}
	if update.PhotoURL != nil {
		fields["photoURL"] = *update.PhotoURL
	}
	if update.Preferences != nil {
		fields["preferences"] = map[string]any{
			"theme":         update.Preferences.Theme,
			"notifications": update.Preferences.Notifications,
		}
	}
	if update.CreatedAt != nil {
		fields["createdAt"] = *update.CreatedAt
	}
	if update.UpdatedAt != nil {
		fields["updatedAt"] = *update.UpdatedAt
	}
	if update.LastLogin != nil {
		fields["lastLogin"] = *update.LastLogin
	}

	return fields
}
