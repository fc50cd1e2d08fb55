// Package identitytoolkit implements the identity provider on the Firebase
// Authentication REST API.
package identitytoolkit

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"wedump/config"
	"wedump/internal/domain/entity"
	domainerrors "wedump/internal/domain/errors"
	"wedump/internal/domain/service"
	"wedump/internal/errors"
	"wedump/internal/infra/auth"
	"wedump/internal/infra/auth/google"
	"wedump/internal/infra/firebase"

	"go.uber.org/fx"
	itk "google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"
)

const (
	passwordResetRequest = "PASSWORD_RESET"
	assertionRequestURI  = "http://localhost"
)

// Params defines the required parameters
type Params struct {
	fx.In

	Config   *config.Config
	Apps     *firebase.AppProvider
	Verifier *google.IDTokenVerifier
	Logger   *slog.Logger
}

// provider implements service.IdentityProvider against the relying party API.
type provider struct {
	relyingParty *itk.RelyingpartyService
	apps         *firebase.AppProvider
	verifier     *google.IDTokenVerifier
	state        *auth.SessionState
	logger       *slog.Logger

	// revoke is nil unless logout should end the user's sessions everywhere.
	revoke func(ctx context.Context, uid string) error
}

// New creates the identity provider. The API key identifies the project;
// with an emulator host configured requests go to the emulator instead.
func New(params Params) (service.IdentityProvider, error) {
	opts := []option.ClientOption{option.WithAPIKey(params.Config.Firebase.APIKey)}
	emulated := params.Config.Firebase.AuthEmulatorHost != ""
	if emulated {
		opts = append(opts,
			option.WithEndpoint("http://"+params.Config.Firebase.AuthEmulatorHost+"/www.googleapis.com/identitytoolkit/v3/relyingparty/"),
			option.WithoutAuthentication(),
		)
	}

	svc, err := itk.NewService(context.Background(), opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create identity toolkit client")
	}

	p := &provider{
		relyingParty: svc.Relyingparty,
		apps:         params.Apps,
		verifier:     params.Verifier,
		state:        auth.NewSessionState(),
		logger:       params.Logger,
	}
	// The emulator has no revocation endpoint.
	if params.Config.Auth.RevokeOnLogout && !emulated {
		p.revoke = p.revokeRefreshTokens
	}

	return p, nil
}

func (p *provider) SignIn(ctx context.Context, email, password string) (*entity.Identity, error) {
	resp, err := p.relyingParty.VerifyPassword(&itk.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return nil, classifyError(err)
	}

	identity := &entity.Identity{
		UID:         resp.LocalId,
		Email:       resp.Email,
		DisplayName: resp.DisplayName,
		PhotoURL:    resp.PhotoUrl,
		IDToken:     resp.IdToken,
		ExpiresAt:   auth.ExpiryOf(resp.IdToken),
	}
	p.state.Set(ctx, identity)

	return identity.Clone(), nil
}

func (p *provider) SignUp(ctx context.Context, email, password, displayName string) (*entity.Identity, error) {
	resp, err := p.relyingParty.SignupNewUser(&itk.IdentitytoolkitRelyingpartySignupNewUserRequest{
		Email:    email,
		Password: password,
	}).Context(ctx).Do()
	if err != nil {
		return nil, classifyError(err)
	}

	identity := &entity.Identity{
		UID:       resp.LocalId,
		Email:     resp.Email,
		IDToken:   resp.IdToken,
		ExpiresAt: auth.ExpiryOf(resp.IdToken),
	}

	// The account exists from here on; a failed profile update leaves it
	// without a display name rather than failing the sign-up.
	if displayName != "" {
		_, err := p.relyingParty.SetAccountInfo(&itk.IdentitytoolkitRelyingpartySetAccountInfoRequest{
			IdToken:     resp.IdToken,
			DisplayName: displayName,
		}).Context(ctx).Do()
		if err != nil {
			p.logger.Warn("Failed to set display name", slog.String("uid", resp.LocalId), slog.Any("error", err))
		} else {
			identity.DisplayName = displayName
		}
	}
	p.state.Set(ctx, identity)

	return identity.Clone(), nil
}

func (p *provider) SignInWithIDToken(ctx context.Context, providerID, idToken string) (*entity.Identity, error) {
	if providerID != service.ProviderGoogle {
		return nil, domainerrors.NewAuthError(domainerrors.AuthOperationNotAllowed, "unsupported provider "+providerID)
	}
	if _, err := p.verifier.VerifyIDToken(ctx, idToken); err != nil {
		return nil, domainerrors.NewAuthError(domainerrors.AuthInvalidCredential, err.Error())
	}

	postBody := url.Values{}
	postBody.Set("id_token", idToken)
	postBody.Set("providerId", providerID)

	resp, err := p.relyingParty.VerifyAssertion(&itk.IdentitytoolkitRelyingpartyVerifyAssertionRequest{
		PostBody:          postBody.Encode(),
		RequestUri:        assertionRequestURI,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return nil, classifyError(err)
	}
	if resp.ErrorMessage != "" {
		return nil, classifyMessage(resp.ErrorMessage)
	}

	identity := &entity.Identity{
		UID:         resp.LocalId,
		Email:       resp.Email,
		DisplayName: resp.DisplayName,
		PhotoURL:    resp.PhotoUrl,
		IDToken:     resp.IdToken,
		ExpiresAt:   auth.ExpiryOf(resp.IdToken),
	}
	p.state.Set(ctx, identity)

	return identity.Clone(), nil
}

// SignOut ends the session held by this process. Other devices stay signed
// in unless auth.revokeOnLogout is set.
func (p *provider) SignOut(ctx context.Context) error {
	current := p.state.Current()
	p.state.Set(ctx, nil)

	if current == nil || p.revoke == nil {
		return nil
	}

	return p.revoke(ctx, current.UID)
}

// revokeRefreshTokens invalidates every refresh token of uid through the
// Admin SDK, which needs service account credentials.
func (p *provider) revokeRefreshTokens(ctx context.Context, uid string) error {
	app, err := p.apps.App(ctx)
	if err != nil {
		return err
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to create auth client")
	}
	if err := client.RevokeRefreshTokens(ctx, uid); err != nil {
		return errors.Wrap(err, "failed to revoke refresh tokens")
	}

	return nil
}

func (p *provider) SendPasswordReset(ctx context.Context, email string) error {
	_, err := p.relyingParty.GetOobConfirmationCode(&itk.Relyingparty{
		RequestType: passwordResetRequest,
		Email:       email,
	}).Context(ctx).Do()
	if err != nil {
		return classifyError(err)
	}

	return nil
}

func (p *provider) CurrentIdentity() *entity.Identity {
	return p.state.Current()
}

func (p *provider) OnStateChanged(fn func(ctx context.Context, identity *entity.Identity)) func() {
	return p.state.OnStateChanged(fn)
}

// trimDetail drops the " : detail" suffix the API appends to some codes.
func trimDetail(message string) string {
	code, _, _ := strings.Cut(message, " : ")

	return strings.TrimSpace(code)
}
