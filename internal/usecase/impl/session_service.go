// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	deliverycontext "wedump/internal/delivery/context"
	"wedump/internal/domain/entity"
	domainerrors "wedump/internal/domain/errors"
	"wedump/internal/domain/repository"
	"wedump/internal/domain/service"
	"wedump/internal/errors"
	"wedump/internal/usecase"
	"wedump/internal/util"

	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"
)

// SessionServiceParams holds the dependencies of the session service.
type SessionServiceParams struct {
	fx.In

	Provider    service.IdentityProvider
	ProfileRepo repository.ProfileRepository
	Logger      *slog.Logger
	Clock       func() time.Time `optional:"true"`
}

// sessionService implements the SessionUsecase interface. The identity
// provider is the source of truth, the service mirrors its state and turns
// transitions into login/logout events.
type sessionService struct {
	provider    service.IdentityProvider
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
	validate    *validator.Validate
	now         func() time.Time

	mu      sync.RWMutex
	current *entity.Identity

	listeners     *util.Emitter[entity.SessionEvent]
	stopObserving func()
}

// NewSessionService creates the session service and starts observing the provider.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	now := params.Clock
	if now == nil {
		now = time.Now
	}

	srv := &sessionService{
		provider:    params.Provider,
		profileRepo: params.ProfileRepo,
		logger:      params.Logger,
		validate:    validator.New(),
		now:         now,
		listeners:   util.NewEmitter[entity.SessionEvent](),
	}
	srv.stopObserving = params.Provider.OnStateChanged(srv.handleStateChange)

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login signs in with email and password.
func (srv *sessionService) Login(ctx context.Context, input usecase.LoginInput) (*entity.Identity, error) {
	input.Email = strings.TrimSpace(input.Email)
	if err := srv.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrFieldsRequired
	}

	identity, err := srv.provider.SignIn(ctx, input.Email, input.Password)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "login")
	}

	return identity.Clone(), nil
}

// Register validates the form, creates the account and writes the initial profile.
func (srv *sessionService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.Identity, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	if err := srv.validate.Struct(input); err != nil {
		return nil, registrationError(err)
	}

	identity, err := srv.provider.SignUp(ctx, input.Email, input.Password, input.Name)
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "register")
	}

	now := srv.now()
	prefs := entity.DefaultPreferences()
	update := &entity.ProfileUpdate{
		Email:       &identity.Email,
		DisplayName: &input.Name,
		PhotoURL:    &identity.PhotoURL,
		Preferences: &prefs,
		CreatedAt:   &now,
		UpdatedAt:   &now,
	}
	if err := srv.profileRepo.Merge(ctx, identity.UID, update); err != nil {
		// The account exists at this point, a missing profile is repaired on next sign-in.
		srv.log(ctx).Error("Error creating user document", slog.String("uid", identity.UID), slog.Any("error", err))
	}

	return identity.Clone(), nil
}

// FederatedLogin signs in with a federated provider ID token.
func (srv *sessionService) FederatedLogin(ctx context.Context, input usecase.FederatedLoginInput) (*entity.Identity, error) {
	input.IDToken = strings.TrimSpace(input.IDToken)
	if err := srv.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("id_token is required")
	}
	if input.ProviderID == "" {
		input.ProviderID = service.ProviderGoogle
	}

	identity, err := srv.provider.SignInWithIDToken(ctx, input.ProviderID, input.IDToken)
	if err != nil {
		srv.log(ctx).Warn("Federated login failed", slog.String("provider", input.ProviderID), slog.Any("error", err))

		return nil, errors.Wrap(err, "federated login")
	}

	return identity.Clone(), nil
}

// Logout signs out. Listeners see a logout event even when the provider call fails.
func (srv *sessionService) Logout(ctx context.Context) error {
	err := srv.provider.SignOut(ctx)

	// Providers report the transition themselves, this covers one that failed before doing so.
	srv.handleStateChange(ctx, nil)

	if err != nil {
		srv.log(ctx).Error("Logout error", slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrLogoutFailed, err.Error())
	}

	return nil
}

// ResetPassword asks the provider to send a reset email.
func (srv *sessionService) ResetPassword(ctx context.Context, input usecase.PasswordResetInput) error {
	input.Email = strings.TrimSpace(input.Email)
	if err := srv.validate.Struct(input); err != nil {
		return domainerrors.ErrEmailRequired
	}

	if err := srv.provider.SendPasswordReset(ctx, input.Email); err != nil {
		srv.log(ctx).Warn("Password reset failed", slog.String("email", input.Email), slog.Any("error", err))

		return errors.Wrap(err, "password reset")
	}

	return nil
}

func (srv *sessionService) Subscribe(listener usecase.SessionListener) func() {
	return srv.listeners.Subscribe(listener)
}

func (srv *sessionService) IsAuthenticated() bool {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.current != nil
}

func (srv *sessionService) CurrentSession() *entity.Identity {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.current.Clone()
}

func (srv *sessionService) Close() {
	if srv.stopObserving != nil {
		srv.stopObserving()
	}
}

// handleStateChange mirrors the provider state. Only SignedOut/SignedIn
// transitions are announced; a refreshed identity for the same uid is stored
// silently.
func (srv *sessionService) handleStateChange(ctx context.Context, identity *entity.Identity) {
	srv.mu.Lock()
	previous := srv.current
	srv.current = identity.Clone()
	srv.mu.Unlock()

	if identity == nil {
		if previous == nil {
			return
		}
		srv.log(ctx).Info("User signed out", slog.String("uid", previous.UID))
		srv.listeners.Emit(ctx, entity.SessionEvent{Kind: entity.SessionEventLogout})

		return
	}

	if previous != nil && previous.UID == identity.UID {
		return
	}
	if previous != nil {
		srv.listeners.Emit(ctx, entity.SessionEvent{Kind: entity.SessionEventLogout})
	}

	srv.log(ctx).Info("User signed in", slog.String("uid", identity.UID), slog.String("email", identity.Email))
	srv.touchProfile(ctx, identity)
	srv.listeners.Emit(ctx, entity.SessionEvent{Kind: entity.SessionEventLogin, Identity: identity.Clone()})
}

// touchProfile upserts the identity fields and the last login time.
func (srv *sessionService) touchProfile(ctx context.Context, identity *entity.Identity) {
	now := srv.now()
	displayName := identity.Name()
	update := &entity.ProfileUpdate{
		Email:       &identity.Email,
		DisplayName: &displayName,
		PhotoURL:    &identity.PhotoURL,
		LastLogin:   &now,
	}
	if err := srv.profileRepo.Merge(ctx, identity.UID, update); err != nil {
		srv.log(ctx).Error("Error updating user document", slog.String("uid", identity.UID), slog.Any("error", err))
	}
}

// registrationError maps validator failures to the form messages. Any empty
// text field wins over the other rules.
func registrationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	for _, fe := range verrs {
		if fe.Tag() == "required" && fe.Field() != "AgreeTerms" {
			return domainerrors.ErrFieldsRequired
		}
	}

	for _, fe := range verrs {
		switch {
		case fe.Field() == "Password" && fe.Tag() == "min":
			return domainerrors.ErrPasswordTooShort
		case fe.Field() == "ConfirmPassword" && fe.Tag() == "eqfield":
			return domainerrors.ErrPasswordMismatch
		case fe.Field() == "AgreeTerms":
			return domainerrors.ErrTermsNotAccepted
		}
	}

	return domainerrors.ErrValidationFailed.WithDetails(verrs.Error())
}
