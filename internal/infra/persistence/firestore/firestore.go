// Package firestore contains the implementation of the persistence layer on Cloud Firestore.
package firestore

import (
	"context"
	"log/slog"

	"wedump/internal/domain/lifecycle"
	"wedump/internal/errors"
	"wedump/internal/infra/firebase"

	firestoreLib "cloud.google.com/go/firestore"
	"go.uber.org/fx"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Apps   *firebase.AppProvider
	Logger *slog.Logger
}

// New creates the Firestore client and ties it to the app lifecycle.
func New(params Params) (*firestoreLib.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	app, err := params.Apps.App(ctx)
	if err != nil {
		return nil, err
	}

	client, err := app.Firestore(context.Background())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			// A missing document is fine, anything else means the store is unreachable.
			_, err := client.Collection("users").Doc("_healthcheck").Get(ctx)
			if err != nil && status.Code(err) != codes.NotFound {
				return errors.Wrap(err, "failed to reach Firestore")
			}
			params.Logger.Info("Firestore connected", slog.String("project_id", params.Apps.ProjectID()))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

func isCanceled(err error) bool {
	code := status.Code(err)

	return code == codes.Canceled || code == codes.DeadlineExceeded
}
