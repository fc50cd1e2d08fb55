// Package entity contains the core business objects of wedump.
package entity

import (
	"strings"
	"time"
)

// Identity is the signed-in user handle issued by the identity provider.
type Identity struct {
	UID         string    `json:"uid"`          // Provider-assigned user id.
	Email       string    `json:"email"`        // Sign-in email address.
	DisplayName string    `json:"display_name"` // Optional display name, empty when never set.
	PhotoURL    string    `json:"photo_url"`    // Optional avatar URL.
	IDToken     string    `json:"-"`            // Provider ID token for the current session.
	ExpiresAt   time.Time `json:"expires_at"`   // Expiry of IDToken, zero when unknown.
}

// Name returns the display name, falling back to the local part of the email.
func (i *Identity) Name() string {
	if i == nil {
		return ""
	}
	if i.DisplayName != "" {
		return i.DisplayName
	}

	return EmailLocalPart(i.Email)
}

// Clone returns a copy safe to hand out of a lock.
func (i *Identity) Clone() *Identity {
	if i == nil {
		return nil
	}
	c := *i

	return &c
}

// EmailLocalPart returns the part of an email address before the '@'.
func EmailLocalPart(email string) string {
	local, _, _ := strings.Cut(email, "@")

	return local
}

// SessionEventKind tags a session transition.
type SessionEventKind string

const (
	SessionEventLogin  SessionEventKind = "login"
	SessionEventLogout SessionEventKind = "logout"
)

// SessionEvent is delivered to session listeners on every SignedOut/SignedIn transition.
type SessionEvent struct {
	Kind     SessionEventKind
	Identity *Identity // nil for logout
}
