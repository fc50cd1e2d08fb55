// Package memory implements an in-process identity provider for local runs and tests.
package memory

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"wedump/internal/domain/entity"
	domainerrors "wedump/internal/domain/errors"
	"wedump/internal/domain/service"
	"wedump/internal/infra/auth"
	"wedump/internal/infra/auth/google"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	minPasswordLength = 6
	tokenIssuer       = "wedump-memory"
	tokenTTL          = time.Hour
)

type account struct {
	uid          string
	email        string
	displayName  string
	photoURL     string
	passwordHash string
	federatedID  string
	disabled     bool
}

// Params defines the required parameters
type Params struct {
	fx.In

	Hasher   auth.PasswordHasher
	Verifier *google.IDTokenVerifier
	Logger   *slog.Logger
	Clock    func() time.Time `optional:"true"`
}

// Provider keeps accounts in memory and signs its own session tokens.
type Provider struct {
	hasher   auth.PasswordHasher
	verifier *google.IDTokenVerifier
	tokens   *auth.TokenIssuer
	validate *validator.Validate
	logger   *slog.Logger
	state    *auth.SessionState

	mu       sync.Mutex
	accounts map[string]*account // keyed by lower-cased email
	resets   []string
}

// New creates an empty provider.
func New(params Params) *Provider {
	return &Provider{
		hasher:   params.Hasher,
		verifier: params.Verifier,
		tokens:   auth.NewTokenIssuer("", tokenIssuer, tokenTTL, params.Clock),
		validate: validator.New(),
		logger:   params.Logger,
		state:    auth.NewSessionState(),
		accounts: make(map[string]*account),
	}
}

// NewIdentityProvider exposes the provider through the domain interface.
func NewIdentityProvider(p *Provider) service.IdentityProvider {
	return p
}

func accountKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (p *Provider) checkEmail(email string) error {
	if err := p.validate.Var(email, "required,email"); err != nil {
		return domainerrors.NewAuthError(domainerrors.AuthInvalidEmail, "INVALID_EMAIL")
	}

	return nil
}

func (p *Provider) SignIn(ctx context.Context, email, password string) (*entity.Identity, error) {
	if err := p.checkEmail(email); err != nil {
		return nil, err
	}

	p.mu.Lock()
	acc, ok := p.accounts[accountKey(email)]
	var snapshot account
	if ok {
		snapshot = *acc
	}
	p.mu.Unlock()

	switch {
	case !ok:
		return nil, domainerrors.NewAuthError(domainerrors.AuthUserNotFound, "EMAIL_NOT_FOUND")
	case snapshot.disabled:
		return nil, domainerrors.NewAuthError(domainerrors.AuthUserDisabled, "USER_DISABLED")
	case snapshot.passwordHash == "" || !p.hasher.Check(password, snapshot.passwordHash):
		return nil, domainerrors.NewAuthError(domainerrors.AuthWrongPassword, "INVALID_PASSWORD")
	}

	return p.establish(ctx, &snapshot)
}

func (p *Provider) SignUp(ctx context.Context, email, password, displayName string) (*entity.Identity, error) {
	if err := p.checkEmail(email); err != nil {
		return nil, err
	}
	if len(password) < minPasswordLength {
		return nil, domainerrors.NewAuthError(domainerrors.AuthWeakPassword, "WEAK_PASSWORD")
	}

	hash, err := p.hasher.Hash(password)
	if err != nil {
		return nil, domainerrors.NewAuthError(domainerrors.AuthUnclassified, err.Error())
	}

	key := accountKey(email)
	p.mu.Lock()
	if _, exists := p.accounts[key]; exists {
		p.mu.Unlock()

		return nil, domainerrors.NewAuthError(domainerrors.AuthEmailInUse, "EMAIL_EXISTS")
	}
	acc := &account{
		uid:          uuid.NewString(),
		email:        strings.TrimSpace(email),
		displayName:  displayName,
		passwordHash: hash,
	}
	p.accounts[key] = acc
	snapshot := *acc
	p.mu.Unlock()

	p.logger.Info("Account created", slog.String("uid", snapshot.uid))

	return p.establish(ctx, &snapshot)
}

// SignInWithIDToken signs in with a Google ID token, creating the account on
// first use or linking it to an existing account with the same email.
func (p *Provider) SignInWithIDToken(ctx context.Context, providerID, idToken string) (*entity.Identity, error) {
	if providerID != service.ProviderGoogle {
		return nil, domainerrors.NewAuthError(domainerrors.AuthOperationNotAllowed, "OPERATION_NOT_ALLOWED")
	}

	claims, err := p.verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, domainerrors.NewAuthError(domainerrors.AuthInvalidCredential, err.Error())
	}
	if claims.Email == "" {
		return nil, domainerrors.NewAuthError(domainerrors.AuthInvalidCredential, "token has no email")
	}

	key := accountKey(claims.Email)
	p.mu.Lock()
	acc, ok := p.accounts[key]
	if !ok {
		acc = &account{uid: uuid.NewString(), email: claims.Email}
		p.accounts[key] = acc
	}
	acc.federatedID = claims.Subject
	if acc.displayName == "" {
		acc.displayName = claims.Name
	}
	if acc.photoURL == "" {
		acc.photoURL = claims.Picture
	}
	snapshot := *acc
	p.mu.Unlock()

	if snapshot.disabled {
		return nil, domainerrors.NewAuthError(domainerrors.AuthUserDisabled, "USER_DISABLED")
	}

	return p.establish(ctx, &snapshot)
}

func (p *Provider) SignOut(ctx context.Context) error {
	p.state.Set(ctx, nil)

	return nil
}

func (p *Provider) SendPasswordReset(ctx context.Context, email string) error {
	if err := p.checkEmail(email); err != nil {
		return err
	}

	p.mu.Lock()
	_, ok := p.accounts[accountKey(email)]
	if ok {
		p.resets = append(p.resets, accountKey(email))
	}
	p.mu.Unlock()

	if !ok {
		return domainerrors.NewAuthError(domainerrors.AuthUserNotFound, "EMAIL_NOT_FOUND")
	}
	p.logger.InfoContext(ctx, "Password reset requested")

	return nil
}

func (p *Provider) CurrentIdentity() *entity.Identity {
	return p.state.Current()
}

func (p *Provider) OnStateChanged(fn func(ctx context.Context, identity *entity.Identity)) func() {
	return p.state.OnStateChanged(fn)
}

// Disable blocks further sign-ins for email.
func (p *Provider) Disable(email string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if acc, ok := p.accounts[accountKey(email)]; ok {
		acc.disabled = true
	}
}

// PasswordResets lists the emails a reset was requested for, oldest first.
func (p *Provider) PasswordResets() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]string(nil), p.resets...)
}

func (p *Provider) establish(ctx context.Context, acc *account) (*entity.Identity, error) {
	identity := &entity.Identity{
		UID:         acc.uid,
		Email:       acc.email,
		DisplayName: acc.displayName,
		PhotoURL:    acc.photoURL,
	}

	token, expiresAt, err := p.tokens.Issue(identity)
	if err != nil {
		return nil, domainerrors.NewAuthError(domainerrors.AuthUnclassified, err.Error())
	}
	identity.IDToken = token
	identity.ExpiresAt = expiresAt

	p.state.Set(ctx, identity)

	return identity.Clone(), nil
}
