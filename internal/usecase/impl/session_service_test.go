package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"wedump/internal/domain/entity"
	domainerrors "wedump/internal/domain/errors"
	"wedump/internal/errors"
	mockRepo "wedump/internal/mocks/repository"
	mockService "wedump/internal/mocks/service"
	"wedump/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

type sessionFixture struct {
	provider    *mockService.MockIdentityProvider
	profileRepo *mockRepo.MockProfileRepository
	service     usecase.SessionUsecase
	notify      func(ctx context.Context, identity *entity.Identity)
	events      []entity.SessionEvent
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()

	f := &sessionFixture{
		provider:    mockService.NewMockIdentityProvider(t),
		profileRepo: mockRepo.NewMockProfileRepository(t),
	}

	f.provider.EXPECT().
		OnStateChanged(mock.Anything).
		RunAndReturn(func(fn func(context.Context, *entity.Identity)) func() {
			f.notify = fn

			return func() {}
		})

	f.service = NewSessionService(SessionServiceParams{
		Provider:    f.provider,
		ProfileRepo: f.profileRepo,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		Clock:       func() time.Time { return fixedNow },
	})
	f.service.Subscribe(func(_ context.Context, event entity.SessionEvent) {
		f.events = append(f.events, event)
	})

	return f
}

func testIdentity() *entity.Identity {
	return &entity.Identity{UID: "u1", Email: "ann@x.io", DisplayName: "Ann"}
}

func TestSessionService_Login_Success(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	identity := testIdentity()

	f.provider.EXPECT().
		SignIn(ctx, "ann@x.io", "secret1").
		RunAndReturn(func(ctx context.Context, _, _ string) (*entity.Identity, error) {
			f.notify(ctx, identity)

			return identity, nil
		})
	f.profileRepo.EXPECT().
		Merge(ctx, "u1", mock.MatchedBy(func(update *entity.ProfileUpdate) bool {
			return *update.DisplayName == "Ann" && update.LastLogin.Equal(fixedNow) && update.CreatedAt == nil
		})).
		Return(nil)

	got, err := f.service.Login(ctx, usecase.LoginInput{Email: " ann@x.io ", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, "u1", got.UID)
	assert.True(t, f.service.IsAuthenticated())
	assert.Equal(t, "ann@x.io", f.service.CurrentSession().Email)
	require.Len(t, f.events, 1)
	assert.Equal(t, entity.SessionEventLogin, f.events[0].Kind)
	assert.Equal(t, "u1", f.events[0].Identity.UID)
}

func TestSessionService_Login_EmptyFields(t *testing.T) {
	f := newSessionFixture(t)

	_, err := f.service.Login(context.Background(), usecase.LoginInput{Email: "ann@x.io"})

	assert.ErrorIs(t, err, domainerrors.ErrFieldsRequired)
	f.provider.AssertNotCalled(t, "SignIn", mock.Anything, mock.Anything, mock.Anything)
}

func TestSessionService_Login_ClassifiedFailure(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	f.provider.EXPECT().
		SignIn(ctx, "ann@x.io", "wrong").
		Return(nil, domainerrors.NewAuthError(domainerrors.AuthWrongPassword, "INVALID_PASSWORD"))

	_, err := f.service.Login(ctx, usecase.LoginInput{Email: "ann@x.io", Password: "wrong"})

	var authErr *domainerrors.AuthError
	require.True(t, errors.As(err, &authErr))
	assert.Equal(t, "Incorrect password", authErr.Message())
	assert.False(t, f.service.IsAuthenticated())
	assert.Empty(t, f.events)
}

func TestSessionService_Register_Validation(t *testing.T) {
	valid := usecase.RegisterInput{
		Name:            "Ann",
		Email:           "ann@x.io",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		AgreeTerms:      true,
	}

	tests := []struct {
		name     string
		mutate   func(in *usecase.RegisterInput)
		expected *domainerrors.BaseError
	}{
		{"missing name", func(in *usecase.RegisterInput) { in.Name = "  " }, domainerrors.ErrFieldsRequired},
		{"missing confirmation wins over short password", func(in *usecase.RegisterInput) {
			in.Password = "abc"
			in.ConfirmPassword = ""
		}, domainerrors.ErrFieldsRequired},
		{"short password", func(in *usecase.RegisterInput) {
			in.Password = "abc"
			in.ConfirmPassword = "abc"
		}, domainerrors.ErrPasswordTooShort},
		{"mismatch", func(in *usecase.RegisterInput) { in.ConfirmPassword = "secret2" }, domainerrors.ErrPasswordMismatch},
		{"terms", func(in *usecase.RegisterInput) { in.AgreeTerms = false }, domainerrors.ErrTermsNotAccepted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSessionFixture(t)
			input := valid
			tt.mutate(&input)

			_, err := f.service.Register(context.Background(), input)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.expected)
			assert.Equal(t, tt.expected.Message(), err.Error())
		})
	}
}

func TestSessionService_Register_WritesDefaultProfile(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	identity := &entity.Identity{UID: "u2", Email: "bob@x.io", DisplayName: "Bob"}

	f.provider.EXPECT().SignUp(ctx, "bob@x.io", "secret1", "Bob").Return(identity, nil)
	f.profileRepo.EXPECT().
		Merge(ctx, "u2", mock.MatchedBy(func(update *entity.ProfileUpdate) bool {
			return update.Preferences != nil &&
				update.Preferences.Theme == "light" &&
				update.Preferences.Notifications &&
				update.CreatedAt.Equal(fixedNow) &&
				*update.DisplayName == "Bob"
		})).
		Return(nil)

	got, err := f.service.Register(ctx, usecase.RegisterInput{
		Name:            "Bob",
		Email:           "bob@x.io",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		AgreeTerms:      true,
	})

	require.NoError(t, err)
	assert.Equal(t, "u2", got.UID)
}

func TestSessionService_Register_ProfileFailureIsNotFatal(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	identity := &entity.Identity{UID: "u2", Email: "bob@x.io", DisplayName: "Bob"}

	f.provider.EXPECT().SignUp(ctx, "bob@x.io", "secret1", "Bob").Return(identity, nil)
	f.profileRepo.EXPECT().Merge(ctx, "u2", mock.Anything).Return(errors.New("unavailable"))

	_, err := f.service.Register(ctx, usecase.RegisterInput{
		Name: "Bob", Email: "bob@x.io", Password: "secret1", ConfirmPassword: "secret1", AgreeTerms: true,
	})

	assert.NoError(t, err)
}

func TestSessionService_Logout_FiresEvenWhenProviderFails(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	f.profileRepo.EXPECT().Merge(ctx, "u1", mock.Anything).Return(nil)
	f.notify(ctx, testIdentity())
	require.True(t, f.service.IsAuthenticated())

	f.provider.EXPECT().SignOut(ctx).Return(errors.New("revoke failed"))

	err := f.service.Logout(ctx)

	assert.ErrorIs(t, err, domainerrors.ErrLogoutFailed)
	assert.False(t, f.service.IsAuthenticated())
	require.Len(t, f.events, 2)
	assert.Equal(t, entity.SessionEventLogout, f.events[1].Kind)
}

func TestSessionService_Logout_NotAnnouncedTwice(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	f.profileRepo.EXPECT().Merge(ctx, "u1", mock.Anything).Return(nil)
	f.notify(ctx, testIdentity())

	f.provider.EXPECT().
		SignOut(ctx).
		RunAndReturn(func(ctx context.Context) error {
			f.notify(ctx, nil)

			return nil
		})

	require.NoError(t, f.service.Logout(ctx))

	logouts := 0
	for _, ev := range f.events {
		if ev.Kind == entity.SessionEventLogout {
			logouts++
		}
	}
	assert.Equal(t, 1, logouts)
}

func TestSessionService_TokenRefreshIsSilent(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	f.profileRepo.EXPECT().Merge(ctx, "u1", mock.Anything).Return(nil).Once()

	first := testIdentity()
	f.notify(ctx, first)

	refreshed := testIdentity()
	refreshed.IDToken = "new-token"
	f.notify(ctx, refreshed)

	assert.Len(t, f.events, 1)
}

func TestSessionService_SubscribeDisposer(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	calls := 0

	dispose := f.service.Subscribe(func(context.Context, entity.SessionEvent) { calls++ })
	dispose()
	dispose()

	f.profileRepo.EXPECT().Merge(ctx, "u1", mock.Anything).Return(nil)
	f.notify(ctx, testIdentity())

	assert.Equal(t, 0, calls)
}

func TestSessionService_ResetPassword(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	err := f.service.ResetPassword(ctx, usecase.PasswordResetInput{Email: " "})
	assert.ErrorIs(t, err, domainerrors.ErrEmailRequired)

	f.provider.EXPECT().SendPasswordReset(ctx, "ann@x.io").Return(nil)
	assert.NoError(t, f.service.ResetPassword(ctx, usecase.PasswordResetInput{Email: "ann@x.io"}))
}

func TestSessionService_FederatedLogin_DefaultsToGoogle(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	f.provider.EXPECT().SignInWithIDToken(ctx, "google.com", "tok").Return(testIdentity(), nil)

	got, err := f.service.FederatedLogin(ctx, usecase.FederatedLoginInput{IDToken: "tok"})

	require.NoError(t, err)
	assert.Equal(t, "u1", got.UID)
}
