package memory

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"wedump/config"
	"wedump/internal/domain/entity"
	domainerrors "wedump/internal/domain/errors"
	"wedump/internal/domain/service"
	"wedump/internal/infra/auth"
	"wedump/internal/infra/auth/google"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestProvider(t *testing.T) *Provider {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Auth: &config.AuthConfig{}}

	return New(Params{
		Hasher:   auth.NewBcryptHasher(bcrypt.MinCost),
		Verifier: google.NewIDTokenVerifier(cfg, logger),
		Logger:   logger,
	})
}

func authReason(t *testing.T, err error) domainerrors.AuthFailureReason {
	t.Helper()

	var authErr *domainerrors.AuthError
	require.ErrorAs(t, err, &authErr)

	return authErr.Reason()
}

func googleToken(t *testing.T, sub, email, name string) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss":     "https://accounts.google.com",
		"sub":     sub,
		"email":   email,
		"name":    name,
		"picture": "https://lh3/" + sub,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("unused"))
	require.NoError(t, err)

	return token
}

func TestProvider_SignUpThenSignIn(t *testing.T) {
	p := newTestProvider(t)
	ctx := context.Background()

	var changes []*entity.Identity
	p.OnStateChanged(func(_ context.Context, identity *entity.Identity) {
		changes = append(changes, identity)
	})

	created, err := p.SignUp(ctx, "ann@x.io", "secret1", "Ann")
	require.NoError(t, err)
	assert.NotEmpty(t, created.UID)
	assert.Equal(t, "Ann", created.DisplayName)
	assert.NotEmpty(t, created.IDToken)
	assert.False(t, created.ExpiresAt.IsZero())

	require.NoError(t, p.SignOut(ctx))
	assert.Nil(t, p.CurrentIdentity())

	signedIn, err := p.SignIn(ctx, "ANN@x.io", "secret1")
	require.NoError(t, err)
	assert.Equal(t, created.UID, signedIn.UID)
	assert.Equal(t, "Ann", signedIn.DisplayName)
	assert.Equal(t, created.UID, p.CurrentIdentity().UID)

	assert.True(t, signedIn.ExpiresAt.Equal(auth.ExpiryOf(signedIn.IDToken)))

	require.Len(t, changes, 3)
	assert.Equal(t, created.UID, changes[0].UID)
	assert.Nil(t, changes[1])
	assert.Equal(t, created.UID, changes[2].UID)
}

func TestProvider_SignInFailures(t *testing.T) {
	p := newTestProvider(t)
	ctx := context.Background()

	_, err := p.SignUp(ctx, "ann@x.io", "secret1", "Ann")
	require.NoError(t, err)
	require.NoError(t, p.SignOut(ctx))

	_, err = p.SignIn(ctx, "not-an-email", "secret1")
	assert.Equal(t, domainerrors.AuthInvalidEmail, authReason(t, err))

	_, err = p.SignIn(ctx, "bob@x.io", "secret1")
	assert.Equal(t, domainerrors.AuthUserNotFound, authReason(t, err))

	_, err = p.SignIn(ctx, "ann@x.io", "wrong-pass")
	assert.Equal(t, domainerrors.AuthWrongPassword, authReason(t, err))

	p.Disable("ann@x.io")
	_, err = p.SignIn(ctx, "ann@x.io", "secret1")
	assert.Equal(t, domainerrors.AuthUserDisabled, authReason(t, err))

	assert.Nil(t, p.CurrentIdentity())
}

func TestProvider_SignUpFailures(t *testing.T) {
	p := newTestProvider(t)
	ctx := context.Background()

	_, err := p.SignUp(ctx, "ann@x.io", "secret1", "Ann")
	require.NoError(t, err)

	_, err = p.SignUp(ctx, "ann@x.io", "secret2", "Ann again")
	assert.Equal(t, domainerrors.AuthEmailInUse, authReason(t, err))

	_, err = p.SignUp(ctx, "bob@x.io", "12345", "Bob")
	assert.Equal(t, domainerrors.AuthWeakPassword, authReason(t, err))

	_, err = p.SignUp(ctx, "bob", "secret1", "Bob")
	assert.Equal(t, domainerrors.AuthInvalidEmail, authReason(t, err))
}

func TestProvider_SignInWithIDToken(t *testing.T) {
	p := newTestProvider(t)
	ctx := context.Background()

	identity, err := p.SignInWithIDToken(ctx, service.ProviderGoogle, googleToken(t, "g-1", "cat@gmail.com", "Cat"))
	require.NoError(t, err)
	assert.Equal(t, "cat@gmail.com", identity.Email)
	assert.Equal(t, "Cat", identity.DisplayName)
	assert.Equal(t, "https://lh3/g-1", identity.PhotoURL)

	again, err := p.SignInWithIDToken(ctx, service.ProviderGoogle, googleToken(t, "g-1", "cat@gmail.com", "Cat"))
	require.NoError(t, err)
	assert.Equal(t, identity.UID, again.UID)

	// A federated-only account has no password.
	_, err = p.SignIn(ctx, "cat@gmail.com", "anything")
	assert.Equal(t, domainerrors.AuthWrongPassword, authReason(t, err))
}

func TestProvider_SignInWithIDToken_LinksPasswordAccount(t *testing.T) {
	p := newTestProvider(t)
	ctx := context.Background()

	created, err := p.SignUp(ctx, "ann@x.io", "secret1", "Ann")
	require.NoError(t, err)

	linked, err := p.SignInWithIDToken(ctx, service.ProviderGoogle, googleToken(t, "g-2", "ann@x.io", "Ann Google"))
	require.NoError(t, err)
	assert.Equal(t, created.UID, linked.UID)
	assert.Equal(t, "Ann", linked.DisplayName)
}

func TestProvider_SignInWithIDToken_Rejects(t *testing.T) {
	p := newTestProvider(t)
	ctx := context.Background()

	_, err := p.SignInWithIDToken(ctx, "github.com", googleToken(t, "g-1", "cat@gmail.com", "Cat"))
	assert.Equal(t, domainerrors.AuthOperationNotAllowed, authReason(t, err))

	_, err = p.SignInWithIDToken(ctx, service.ProviderGoogle, "garbage")
	assert.Equal(t, domainerrors.AuthInvalidCredential, authReason(t, err))

	_, err = p.SignInWithIDToken(ctx, service.ProviderGoogle, googleToken(t, "g-1", "", "Cat"))
	assert.Equal(t, domainerrors.AuthInvalidCredential, authReason(t, err))
}

func TestProvider_SendPasswordReset(t *testing.T) {
	p := newTestProvider(t)
	ctx := context.Background()

	_, err := p.SignUp(ctx, "ann@x.io", "secret1", "Ann")
	require.NoError(t, err)

	require.NoError(t, p.SendPasswordReset(ctx, "Ann@x.io"))
	assert.Equal(t, []string{"ann@x.io"}, p.PasswordResets())

	err = p.SendPasswordReset(ctx, "bob@x.io")
	assert.Equal(t, domainerrors.AuthUserNotFound, authReason(t, err))

	err = p.SendPasswordReset(ctx, "")
	assert.Equal(t, domainerrors.AuthInvalidEmail, authReason(t, err))
}
