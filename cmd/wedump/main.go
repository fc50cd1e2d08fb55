package main

import (
	"context"
	"log/slog"
	"os"

	"wedump/config"
	"wedump/internal/delivery"
	"wedump/internal/delivery/api"
	apimiddleware "wedump/internal/delivery/api/middleware"
	"wedump/internal/delivery/api/realtime"
	"wedump/internal/delivery/api/router/handler"
	"wedump/internal/domain/constants"
	"wedump/internal/domain/repository"
	"wedump/internal/domain/service"
	"wedump/internal/errors"
	"wedump/internal/infra/auth"
	"wedump/internal/infra/auth/google"
	"wedump/internal/infra/auth/identitytoolkit"
	authmemory "wedump/internal/infra/auth/memory"
	"wedump/internal/infra/firebase"
	logs "wedump/internal/infra/log"
	"wedump/internal/infra/persistence/firestore"
	"wedump/internal/infra/persistence/memory"
	"wedump/internal/infra/pubsub"
	"wedump/internal/infra/qrcode"
	"wedump/internal/infra/storage"
	"wedump/internal/usecase"
	"wedump/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			registerCloseHooks,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		firebase.NewAppProvider,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newRepositories,
		),
	)
}

type repositoriesParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Apps   *firebase.AppProvider
	Logger *slog.Logger
}

type repositories struct {
	fx.Out

	Photos        repository.PhotoRepository
	Profiles      repository.ProfileRepository
	Notifications repository.NotificationRepository
}

// newRepositories picks the document store backend from configuration
func newRepositories(params repositoriesParams) (repositories, error) {
	switch params.Config.Store.Provider {
	case constants.StoreProviderMemory:
		params.Logger.Info("Using in-memory document store")
		store := memory.NewStore()

		return repositories{
			Photos:        memory.NewPhotoRepository(store),
			Profiles:      memory.NewProfileRepository(store),
			Notifications: memory.NewNotificationRepository(store),
		}, nil

	case constants.StoreProviderFirestore:
		client, err := firestore.New(firestore.Params{
			Lifecycle: params.Lc,
			Apps:      params.Apps,
			Logger:    params.Logger,
		})
		if err != nil {
			return repositories{}, err
		}

		return repositories{
			Photos:        firestore.NewPhotoRepository(client, params.Logger),
			Profiles:      firestore.NewProfileRepository(client),
			Notifications: firestore.NewNotificationRepository(client, params.Logger),
		}, nil

	default:
		return repositories{}, errors.Errorf("unknown store provider %q", params.Config.Store.Provider)
	}
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPasswordHasher,
			google.NewIDTokenVerifier,
			newIdentityProvider,
			storage.New,
			pubsub.NewEventPublisher,
			qrcode.NewQRCodeService,
		),
	)
}

func newPasswordHasher(cfg *config.Config) auth.PasswordHasher {
	return auth.NewBcryptHasher(cfg.Auth.BcryptCost)
}

type identityProviderParams struct {
	fx.In

	Config   *config.Config
	Apps     *firebase.AppProvider
	Hasher   auth.PasswordHasher
	Verifier *google.IDTokenVerifier
	Logger   *slog.Logger
}

// newIdentityProvider picks the identity provider from configuration
func newIdentityProvider(params identityProviderParams) (service.IdentityProvider, error) {
	switch params.Config.Auth.Provider {
	case constants.AuthProviderMemory:
		params.Logger.Info("Using in-memory identity provider")

		return authmemory.NewIdentityProvider(authmemory.New(authmemory.Params{
			Hasher:   params.Hasher,
			Verifier: params.Verifier,
			Logger:   params.Logger,
		})), nil

	case constants.AuthProviderFirebase:
		return identitytoolkit.New(identitytoolkit.Params{
			Config:   params.Config,
			Apps:     params.Apps,
			Verifier: params.Verifier,
			Logger:   params.Logger,
		})

	default:
		return nil, errors.Errorf("unknown auth provider %q", params.Config.Auth.Provider)
	}
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewFeedService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewSessionMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			realtime.NewHub,
			handler.NewAuthHandler,
			handler.NewFeedHandler,
			handler.NewNotificationHandler,
			handler.NewPageHandler,
			handler.NewMediaHandler,
			handler.NewRealtimeHandler,
			handler.NewShareHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// registerCloseHooks detaches the feed from the session before the session
// stops observing the identity provider.
func registerCloseHooks(lc fx.Lifecycle, session usecase.SessionUsecase, feed usecase.FeedUsecase) {
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			feed.Close()
			session.Close()

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
