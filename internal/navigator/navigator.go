// Package navigator runs the viewer's menus: server, operation, media type and item.
//
// Cancelling a menu goes back one level. Cancelling the server menu ends the session.
package navigator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/clambin/plex-library-viewer/internal/catalog"
	"github.com/clambin/plex-library-viewer/internal/config"
	"github.com/clambin/plex-library-viewer/internal/detail"
	"github.com/clambin/plex-library-viewer/internal/format"
	"github.com/clambin/plex-library-viewer/internal/gateway"
	"github.com/clambin/plex-library-viewer/internal/ui"
)

// Operation is something the user can do with a connected server.
type Operation int

const (
	// OperationBrowse browses all media from all library sections.
	OperationBrowse Operation = iota
	// OperationSessions shows the server's active sessions.
	OperationSessions
)

var operations = []Operation{OperationBrowse, OperationSessions}

func (o Operation) label(cfg *config.Config) string {
	switch o {
	case OperationBrowse:
		return cfg.Text.OperationBrowse
	case OperationSessions:
		return cfg.Text.OperationSessions
	default:
		return fmt.Sprintf("operation %d", int(o))
	}
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithLogger configures an optional logger.
func WithLogger(logger *slog.Logger) Option {
	return func(n *Navigator) {
		n.logger = logger
	}
}

// WithRenderer sets the Renderer used for the item detail view.
func WithRenderer(renderer *detail.Renderer) Option {
	return func(n *Navigator) {
		n.renderer = renderer
	}
}

// Navigator walks the user through the menus.
type Navigator struct {
	dialogs  ui.Dialogs
	status   ui.Status
	config   *config.Config
	renderer *detail.Renderer
	logger   *slog.Logger
}

// New returns a Navigator that shows its menus with dialogs and its loading messages with status.
func New(dialogs ui.Dialogs, status ui.Status, cfg *config.Config, opts ...Option) *Navigator {
	n := Navigator{
		dialogs:  dialogs,
		status:   status,
		config:   cfg,
		renderer: detail.NewRenderer(cfg.KindLabel, detail.DefaultStyles()),
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&n)
	}
	return &n
}

// Run welcomes the user, signs them in with authenticator and runs the menus until the user cancels the server menu.
// Run returns gateway.ErrCanceled if the user cancels signing in.
func (n *Navigator) Run(ctx context.Context, authenticator gateway.Authenticator) error {
	if err := n.dialogs.Message(ctx, n.config.Title(), format.BreakLines(n.config.Welcome(), n.config.LineWidth)); err != nil {
		return err
	}
	account, err := gateway.Authenticate(ctx, n.dialogs, n.config, authenticator)
	if err != nil {
		return err
	}
	for {
		selection, err := gateway.SelectServer(ctx, n.dialogs, account, n.config)
		if err != nil {
			return err
		}
		server, ok := selection.Value()
		if !ok {
			return nil
		}
		n.logger.Debug("server selected", "server", server.Name())
		if err = n.serve(ctx, server); err != nil {
			return err
		}
	}
}

// serve runs the operation menu for server. The catalog is loaded the first time the user browses it,
// and kept until the user leaves the server.
func (n *Navigator) serve(ctx context.Context, server gateway.Server) error {
	options := make([]ui.Option[Operation], len(operations))
	for i, op := range operations {
		options[i] = ui.Option[Operation]{Value: op, Label: op.label(n.config)}
	}
	ui.SortByLabel(options)

	var cat *catalog.Catalog
	for {
		selection, err := ui.Choose(ctx, n.dialogs, server.Name(), n.config.Text.SelectOperation, options)
		if err != nil {
			return err
		}
		op, ok := selection.Value()
		if !ok {
			return nil
		}
		switch op {
		case OperationBrowse:
			if cat == nil {
				c, err := catalog.Load(ctx, server, n.status, n.config.Text.StatusLoadingAll)
				if err != nil {
					return err
				}
				n.logger.Debug("catalog loaded", "server", server.Name(), "items", c.Len())
				cat = &c
			}
			err = n.browse(ctx, server.Name(), *cat)
		case OperationSessions:
			err = n.sessions(ctx, server)
		}
		if err != nil {
			return err
		}
	}
}

// browse runs the media type menu.
func (n *Navigator) browse(ctx context.Context, serverName string, cat catalog.Catalog) error {
	options := make([]ui.Option[catalog.Group], 0, len(cat.Groups()))
	for _, group := range cat.Groups() {
		options = append(options, ui.Option[catalog.Group]{
			Value: group,
			Label: fmt.Sprintf("%s (%d items)", n.config.KindLabel(group.Kind), len(group.Items)),
		})
	}
	ui.SortByLabel(options)

	for {
		selection, err := ui.Choose(ctx, n.dialogs, serverName, n.config.Text.SelectMediaType, options)
		if err != nil {
			return err
		}
		group, ok := selection.Value()
		if !ok {
			return nil
		}
		if err = n.browseGroup(ctx, serverName, group); err != nil {
			return err
		}
	}
}

// browseGroup runs the item menu for one kind, showing the detail of every chosen item.
func (n *Navigator) browseGroup(ctx context.Context, serverName string, group catalog.Group) error {
	options := make([]ui.Option[catalog.Item], len(group.Items))
	for i, item := range group.Items {
		options[i] = ui.Option[catalog.Item]{Value: item, Label: itemLabel(item)}
	}
	ui.SortByLabel(options)

	title := fmt.Sprintf("%ss (%s)", n.config.KindLabel(group.Kind), serverName)
	prompt := fmt.Sprintf(n.config.Text.SelectItem, group.Kind)
	for {
		selection, err := ui.Choose(ctx, n.dialogs, title, prompt, options)
		if err != nil {
			return err
		}
		item, ok := selection.Value()
		if !ok {
			return nil
		}
		if err = n.dialogs.Message(ctx, serverName, n.renderer.Render(item)); err != nil {
			return err
		}
	}
}

func itemLabel(item catalog.Item) string {
	if item.Year == 0 {
		return item.Title
	}
	return fmt.Sprintf("%s (%d)", item.Title, item.Year)
}

// sessions shows the server's active sessions.
func (n *Navigator) sessions(ctx context.Context, server gateway.Server) error {
	var sessions []gateway.Session
	err := n.status.Run(ctx, n.config.Text.StatusLoadingSessions, func(ctx context.Context) (err error) {
		sessions, err = server.Sessions(ctx)
		return err
	})
	if err != nil {
		return fmt.Errorf("sessions: %w", err)
	}
	text := n.config.Text.NoSessions
	if len(sessions) > 0 {
		lines := make([]string, len(sessions))
		for i, s := range sessions {
			lines[i] = fmt.Sprintf("- %s: %s (%.0f%%, %s)", s.User, s.Title, 100*s.Progress, s.VideoMode)
		}
		text = strings.Join(lines, "\n")
	}
	return n.dialogs.Message(ctx, server.Name(), text)
}
