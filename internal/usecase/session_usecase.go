// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"wedump/internal/domain/entity"
)

// MinPasswordLength is the shortest password the registration form accepts.
const MinPasswordLength = 6

// --- Input DTOs ---

// LoginInput defines the data required to sign in with email and password.
type LoginInput struct {
	Email    string `json:"email" form:"email" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// RegisterInput defines the registration form. Validation runs in field order
// but empty fields are always reported first.
type RegisterInput struct {
	Name            string `json:"name" form:"name" validate:"required"`
	Email           string `json:"email" form:"email" validate:"required"`
	Password        string `json:"password" form:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password" validate:"required,eqfield=Password"`
	AgreeTerms      bool   `json:"agree_terms" form:"agree_terms" validate:"required"`
}

// FederatedLoginInput carries an ID token issued by a federated provider.
type FederatedLoginInput struct {
	ProviderID string `json:"provider_id" form:"provider_id"`
	IDToken    string `json:"id_token" form:"id_token" validate:"required"`
}

// PasswordResetInput requests a password reset email.
type PasswordResetInput struct {
	Email string `json:"email" form:"email" validate:"required"`
}

// SessionListener observes login and logout transitions.
type SessionListener func(ctx context.Context, event entity.SessionEvent)

// SessionUsecase owns the current identity of the client process.
type SessionUsecase interface {
	Login(ctx context.Context, input LoginInput) (*entity.Identity, error)
	Register(ctx context.Context, input RegisterInput) (*entity.Identity, error)
	FederatedLogin(ctx context.Context, input FederatedLoginInput) (*entity.Identity, error)
	Logout(ctx context.Context) error
	ResetPassword(ctx context.Context, input PasswordResetInput) error

	// Subscribe registers a transition listener and returns its disposer.
	Subscribe(listener SessionListener) (unsubscribe func())

	IsAuthenticated() bool

	// CurrentSession returns a copy of the signed-in identity or nil.
	CurrentSession() *entity.Identity

	// Close stops observing the identity provider.
	Close()
}
