// Package pubsub publishes notification events for the push worker.
package pubsub

import (
	"context"
	"log/slog"

	"wedump/config"
	"wedump/internal/domain/constants"
	"wedump/internal/domain/service"
	"wedump/internal/errors"
	"wedump/internal/infra/firebase"

	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// noopPublisher drops events when no transport is configured.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishNotificationEvent(_ context.Context, event *service.NotificationEvent) error {
	p.logger.Debug("Event publishing disabled, skipping",
		slog.String("notification_id", event.NotificationID),
		slog.String("user_id", event.UserID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Apps   *firebase.AppProvider
	Logger *slog.Logger
}

// NewEventPublisher picks the transport from configuration and closes it on
// shutdown.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	publisher, err := newPublisher(params.Ctx, params.Config.PubSub, params.Logger, params.Apps.ClientOptions()...)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

func newPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger, opts ...option.ClientOption) (service.EventPublisher, error) {
	if cfg == nil {
		cfg = &config.PubSubConfig{}
	}

	switch cfg.Provider {
	case "", constants.PubSubProviderNoop:
		logger.Info("PubSub not configured, using no-op publisher")

		return &noopPublisher{logger: logger}, nil

	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher", slog.String("endpoint", cfg.LocalEndpoint))

		return newLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		publisher, err := newGooglePublisher(ctx, cfg, logger, opts...)
		if err != nil {
			return nil, err
		}

		return publisher, nil

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
}
