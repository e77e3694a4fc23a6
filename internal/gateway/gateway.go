// Package gateway signs the user in to their plex.tv account and connects to one of the account's servers.
package gateway

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/clambin/plex-library-viewer/internal/catalog"
	"github.com/clambin/plex-library-viewer/internal/config"
	"github.com/clambin/plex-library-viewer/internal/ui"
)

var (
	// ErrCanceled is returned when the user cancels the username or password prompt.
	ErrCanceled = errors.New("sign in canceled")
	// ErrNoServers is returned when the account has no Plex Media Servers.
	ErrNoServers = errors.New("no Plex Media Servers found")
)

// An Authenticator signs in to an account with a username and password.
type Authenticator interface {
	SignIn(ctx context.Context, username, password string) (Account, error)
}

// An Account lists the resources (servers, players, ...) linked to a plex.tv account.
type Account interface {
	Resources(ctx context.Context) ([]Resource, error)
}

// A Resource is a device linked to the account.
type Resource interface {
	Name() string
	Identifier() string
	// Provides returns the resource's comma-separated capabilities, e.g. "server" or "client,player".
	Provides() string
	Connect(ctx context.Context) (Server, error)
}

// A Server is a connected Plex Media Server.
type Server interface {
	Name() string
	catalog.Source
	Sessions(ctx context.Context) ([]Session, error)
}

// Session is an active playback session on a Server.
type Session struct {
	User      string
	Title     string
	VideoMode string
	Progress  float64
}

// Authenticate asks the user for their username and password and signs in.
func Authenticate(ctx context.Context, dialogs ui.Dialogs, cfg *config.Config, authenticator Authenticator) (Account, error) {
	username, err := dialogs.Input(ctx, cfg.Title(), cfg.Text.PromptUsername, false)
	if err != nil {
		return nil, err
	}
	if username.IsCanceled() {
		return nil, ErrCanceled
	}
	password, err := dialogs.Input(ctx, cfg.Title(), cfg.Text.PromptPassword, cfg.MaskPassword)
	if err != nil {
		return nil, err
	}
	if password.IsCanceled() {
		return nil, ErrCanceled
	}
	u, _ := username.Value()
	p, _ := password.Value()
	account, err := authenticator.SignIn(ctx, u, p)
	if err != nil {
		return nil, fmt.Errorf("authenticate: %w", err)
	}
	return account, nil
}

// ListServers returns the account's Plex Media Servers, ordered by cfg.ServerSort.
func ListServers(ctx context.Context, account Account, cfg *config.Config) ([]ui.Option[Resource], error) {
	resources, err := account.Resources(ctx)
	if err != nil {
		return nil, fmt.Errorf("resources: %w", err)
	}
	var servers []Resource
	for _, r := range resources {
		if IsServer(r) {
			servers = append(servers, r)
		}
	}
	sortKey := Resource.Name
	if cfg.ServerSort == config.SortByIdentifier {
		sortKey = Resource.Identifier
	}
	slices.SortStableFunc(servers, func(a, b Resource) int {
		return cmp.Compare(sortKey(a), sortKey(b))
	})
	options := make([]ui.Option[Resource], len(servers))
	for i, server := range servers {
		options[i] = ui.Option[Resource]{Value: server, Label: server.Name()}
	}
	return options, nil
}

// IsServer returns true if the resource provides a server, in any letter case.
func IsServer(r Resource) bool {
	return strings.Contains(strings.ToLower(r.Provides()), "server")
}

// SelectServer asks the user to pick one of the account's servers and connects to it.
// If the user cancels, SelectServer returns a Canceled selection. A failed connection is returned as an error.
func SelectServer(ctx context.Context, dialogs ui.Dialogs, account Account, cfg *config.Config) (ui.Selection[Server], error) {
	servers, err := ListServers(ctx, account, cfg)
	if err != nil {
		return ui.Canceled[Server](), err
	}
	if len(servers) == 0 {
		return ui.Canceled[Server](), ErrNoServers
	}
	selection, err := ui.Choose(ctx, dialogs, cfg.Title(), cfg.Text.SelectServer, servers)
	if err != nil {
		return ui.Canceled[Server](), err
	}
	resource, ok := selection.Value()
	if !ok {
		return ui.Canceled[Server](), nil
	}
	server, err := resource.Connect(ctx)
	if err != nil {
		return ui.Canceled[Server](), fmt.Errorf("connect %s: %w", resource.Name(), err)
	}
	return ui.Chosen(server), nil
}
