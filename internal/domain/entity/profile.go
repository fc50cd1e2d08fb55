package entity

import "time"

// Preferences are per-user UI settings stored with the profile.
type Preferences struct {
	Theme         string `json:"theme"`
	Notifications bool   `json:"notifications"`
}

// DefaultPreferences are written on registration.
func DefaultPreferences() Preferences {
	return Preferences{Theme: "light", Notifications: true}
}

// UserProfile is the per-identity record in the users collection.
type UserProfile struct {
	UID         string       `json:"uid"`
	Email       string       `json:"email"`
	DisplayName string       `json:"display_name"`
	PhotoURL    string       `json:"photo_url"`
	Preferences *Preferences `json:"preferences,omitempty"` // nil until registration writes defaults
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	LastLogin   time.Time    `json:"last_login"`
}

// ProfileUpdate is a merge write: only non-nil fields are written, the rest of
// the stored record is left untouched.
type ProfileUpdate struct {
	Email       *string
	DisplayName *string
	PhotoURL    *string
	Preferences *Preferences
	CreatedAt   *time.Time
	UpdatedAt   *time.Time
	LastLogin   *time.Time
}

// Apply merges the update into profile.
func (u *ProfileUpdate) Apply(profile *UserProfile) {
	if u.Email != nil {
		profile.Email = *u.Email
	}
	if u.DisplayName != nil {
		profile.DisplayName = *u.DisplayName
	}
	if u.PhotoURL != nil {
		profile.PhotoURL = *u.PhotoURL
	}
	if u.Preferences != nil {
		prefs := *u.Preferences
		profile.Preferences = &prefs
	}
	if u.CreatedAt != nil {
		profile.CreatedAt = *u.CreatedAt
	}
	if u.UpdatedAt != nil {
		profile.UpdatedAt = *u.UpdatedAt
	}
	if u.LastLogin != nil {
		profile.LastLogin = *u.LastLogin
	}
}
