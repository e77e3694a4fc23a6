// Package account connects the viewer to plex.tv and to the account's Plex Media Servers.
package account

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/clambin/plex-library-viewer/internal/gateway"
	"github.com/clambin/plex-library-viewer/plex/plextv"
)

var (
	_ gateway.Authenticator = (*Authenticator)(nil)
	_ gateway.Account       = (*Account)(nil)
)

const defaultProbeTimeout = 10 * time.Second

// Option configures an Authenticator.
type Option func(*Authenticator)

// WithHTTPClient sets the HTTP client used to call plex.tv and the servers.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(a *Authenticator) {
		a.httpClient = httpClient
	}
}

// WithLogger configures an optional logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Authenticator) {
		a.logger = logger
	}
}

// WithProbeTimeout sets how long Connect waits for each of a server's addresses to respond.
func WithProbeTimeout(timeout time.Duration) Option {
	return func(a *Authenticator) {
		a.probeTimeout = timeout
	}
}

// Authenticator signs in to plex.tv with a username and password.
type Authenticator struct {
	httpClient   *http.Client
	logger       *slog.Logger
	config       plextv.Config
	probeTimeout time.Duration
}

// NewAuthenticator returns an Authenticator that identifies itself to plex.tv with config.
func NewAuthenticator(config plextv.Config, opts ...Option) *Authenticator {
	a := Authenticator{
		httpClient:   http.DefaultClient,
		logger:       slog.New(slog.DiscardHandler),
		config:       config,
		probeTimeout: defaultProbeTimeout,
	}
	for _, opt := range opts {
		opt(&a)
	}
	return &a
}

// SignIn signs in to plex.tv. For accounts with two-factor authentication, the current code is appended to password.
func (a *Authenticator) SignIn(ctx context.Context, username, password string) (gateway.Account, error) {
	client := a.config.PlexTVClient(
		plextv.WithCredentials(username, password),
		plextv.WithLogger(a.logger),
	)
	if _, err := client.Token(plextv.ContextWithHTTPClient(ctx, a.httpClient)); err != nil {
		return nil, err
	}
	a.logger.Debug("signed in", "username", username)
	return &Account{client: client, authenticator: a}, nil
}

// Account is a signed-in plex.tv account.
type Account struct {
	authenticator *Authenticator
	client        plextv.Client
}

// Resources returns the devices linked to the account, including their relay connections.
func (a *Account) Resources(ctx context.Context) ([]gateway.Resource, error) {
	ctx = plextv.ContextWithHTTPClient(ctx, a.authenticator.httpClient)
	resources, err := a.client.Resources(ctx, url.Values{
		"includeHttps": []string{"1"},
		"includeRelay": []string{"1"},
	})
	if err != nil {
		return nil, fmt.Errorf("plex.tv: %w", err)
	}
	a.authenticator.logger.Debug("resources found", "count", len(resources))
	result := make([]gateway.Resource, len(resources))
	for i := range resources {
		result[i] = &Resource{resource: resources[i], authenticator: a.authenticator}
	}
	return result, nil
}
