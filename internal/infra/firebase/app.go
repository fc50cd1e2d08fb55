// Package firebase builds the shared Firebase app used by the managed backends.
package firebase

import (
	"context"
	"sync"

	"wedump/config"
	"wedump/internal/errors"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// AppProvider creates the Firebase app on first use, so processes running
// entirely on in-memory backends never need credentials.
type AppProvider struct {
	cfg *config.FirebaseConfig

	once sync.Once
	app  *firebase.App
	err  error
}

// NewAppProvider is the fx constructor for AppProvider.
func NewAppProvider(cfg *config.Config) *AppProvider {
	return &AppProvider{cfg: cfg.Firebase}
}

// App returns the shared app, creating it on the first call.
func (p *AppProvider) App(ctx context.Context) (*firebase.App, error) {
	p.once.Do(func() {
		p.app, p.err = firebase.NewApp(ctx, &firebase.Config{ProjectID: p.cfg.ProjectID}, p.ClientOptions()...)
		if p.err != nil {
			p.err = errors.Wrap(p.err, "failed to initialize Firebase app")
		}
	})

	return p.app, p.err
}

// ClientOptions returns the credentials options shared with the Google API clients.
func (p *AppProvider) ClientOptions() []option.ClientOption {
	if p.cfg.CredentialsPath == "" {
		return nil
	}

	return []option.ClientOption{option.WithCredentialsFile(p.cfg.CredentialsPath)}
}

// ProjectID returns the configured project id.
func (p *AppProvider) ProjectID() string {
	return p.cfg.ProjectID
}
