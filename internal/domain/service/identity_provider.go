package service

import (
	"context"

	"wedump/internal/domain/entity"
)

// Federated identity provider ids accepted by SignInWithIDToken.
const (
	ProviderGoogle = "google.com"
)

// IdentityProvider is the managed authentication backend. It owns the
// current identity and reports every change through OnStateChanged.
// Failures are returned as *errors.AuthError.
type IdentityProvider interface {
	// SignIn authenticates with email and password.
	SignIn(ctx context.Context, email, password string) (*entity.Identity, error)

	// SignUp creates an account, signs it in and sets its display name.
	SignUp(ctx context.Context, email, password, displayName string) (*entity.Identity, error)

	// SignInWithIDToken exchanges a federated provider ID token for a session.
	SignInWithIDToken(ctx context.Context, providerID, idToken string) (*entity.Identity, error)

	// SignOut clears the current identity. The state change is reported even
	// when revoking the session upstream fails.
	SignOut(ctx context.Context) error

	// SendPasswordReset asks the provider to email a reset link.
	SendPasswordReset(ctx context.Context, email string) error

	// CurrentIdentity returns the signed-in identity or nil.
	CurrentIdentity() *entity.Identity

	// OnStateChanged registers fn for identity changes, nil meaning signed out.
	// The returned func removes the registration.
	OnStateChanged(fn func(ctx context.Context, identity *entity.Identity)) (unsubscribe func())
}
