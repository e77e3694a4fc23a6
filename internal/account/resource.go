package account

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/clambin/plex-library-viewer/internal/catalog"
	"github.com/clambin/plex-library-viewer/internal/gateway"
	"github.com/clambin/plex-library-viewer/plex"
	"github.com/clambin/plex-library-viewer/plex/plexhttp"
	"github.com/clambin/plex-library-viewer/plex/plextv"
)

var (
	_ gateway.Resource = (*Resource)(nil)
	_ gateway.Server   = (*Server)(nil)
)

// ErrNoConnections is returned when a resource has no addresses to connect to.
var ErrNoConnections = errors.New("no connections available")

// Resource is a device linked to the account.
type Resource struct {
	authenticator *Authenticator
	resource      plextv.Resource
}

func (r *Resource) Name() string       { return r.resource.Name }
func (r *Resource) Identifier() string { return r.resource.ClientIdentifier }
func (r *Resource) Provides() string   { return r.resource.Provides }

// Connect tries each of the resource's connections until a server responds.
// Local connections are tried first, then remote ones. Relay connections are a last resort.
// If a server rejects the resource's access token, Connect gives up immediately.
func (r *Resource) Connect(ctx context.Context) (gateway.Server, error) {
	connections := preferredConnections(r.resource.Connections)
	if len(connections) == 0 {
		return nil, ErrNoConnections
	}
	logger := r.authenticator.logger.With("server", r.resource.Name)
	var errs []error
	for _, conn := range connections {
		client := plex.NewPMSClient(conn.URI, r.resource.AccessToken,
			plex.WithHTTPClient(r.authenticator.httpClient),
			plex.WithLogger(logger),
		)
		identity, err := r.probe(ctx, client)
		if err == nil {
			logger.Debug("connected", "uri", conn.URI, "version", identity.Version)
			return &Server{name: r.resource.Name, client: client}, nil
		}
		logger.Debug("connection failed", "uri", conn.URI, "err", err)
		if plexhttp.IsAuthError(err) {
			return nil, err
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		errs = append(errs, fmt.Errorf("%s: %w", conn.URI, err))
	}
	return nil, errors.Join(errs...)
}

func (r *Resource) probe(ctx context.Context, client *plex.PMSClient) (plex.Identity, error) {
	ctx, cancel := context.WithTimeout(ctx, r.authenticator.probeTimeout)
	defer cancel()
	return client.GetIdentity(ctx)
}

// preferredConnections orders connections: local ones first, then remote ones, then relays.
func preferredConnections(connections []plextv.Connection) []plextv.Connection {
	rank := func(c plextv.Connection) int {
		switch {
		case c.Relay:
			return 2
		case c.Local:
			return 0
		default:
			return 1
		}
	}
	sorted := slices.Clone(connections)
	slices.SortStableFunc(sorted, func(a, b plextv.Connection) int {
		return rank(a) - rank(b)
	})
	return sorted
}

// Server is a connected Plex Media Server.
type Server struct {
	client *plex.PMSClient
	name   string
}

func (s *Server) Name() string {
	return s.name
}

// Items returns the items of all the server's library sections.
func (s *Server) Items(ctx context.Context) ([]catalog.Item, error) {
	items, err := s.client.GetAllItems(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]catalog.Item, len(items))
	for i, item := range items {
		result[i] = toCatalogItem(item)
	}
	return result, nil
}

func toCatalogItem(item plex.Item) catalog.Item {
	releaseDate, _ := item.ReleaseDate()
	return catalog.Item{
		ReleaseDate:   releaseDate,
		Kind:          item.Type,
		Title:         item.Title,
		EditionTitle:  item.EditionTitle,
		OriginalTitle: item.OriginalTitle,
		ContentRating: item.ContentRating,
		Rating:        item.Rating,
		Year:          item.Year,
		Duration:      item.Duration,
	}
}

// Sessions returns the server's active playback sessions.
func (s *Server) Sessions(ctx context.Context) ([]gateway.Session, error) {
	sessions, err := s.client.GetSessions(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]gateway.Session, len(sessions))
	for i, session := range sessions {
		result[i] = gateway.Session{
			User:      session.User.Title,
			Title:     session.GetTitle(),
			VideoMode: session.GetVideoMode(),
			Progress:  session.GetProgress(),
		}
	}
	return result, nil
}
