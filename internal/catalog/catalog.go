// Package catalog loads a server's media items and groups them by kind.
package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/clambin/plex-library-viewer/internal/ui"
)

// Item is one media item of a server's catalog. A zero value means the server did not provide the field.
type Item struct {
	ReleaseDate   time.Time
	Kind          string
	Title         string
	EditionTitle  string
	OriginalTitle string
	ContentRating string
	Rating        float64
	Year          int
	Duration      int
}

// Group holds all items of one kind, in the order the server returned them.
type Group struct {
	Kind  string
	Items []Item
}

// Catalog holds a server's items, grouped by kind. A Catalog is not modified after it is created.
type Catalog struct {
	groups []Group
}

// GroupByKind groups items by kind. Kinds are ordered by their first occurrence in items.
// Every group holds at least one item.
func GroupByKind(items []Item) Catalog {
	var c Catalog
	index := make(map[string]int)
	for _, item := range items {
		i, ok := index[item.Kind]
		if !ok {
			i = len(c.groups)
			index[item.Kind] = i
			c.groups = append(c.groups, Group{Kind: item.Kind})
		}
		c.groups[i].Items = append(c.groups[i].Items, item)
	}
	return c
}

// Groups returns the catalog's groups.
func (c Catalog) Groups() []Group {
	return c.groups
}

// Len returns the number of items in the catalog.
func (c Catalog) Len() int {
	var n int
	for _, g := range c.groups {
		n += len(g.Items)
	}
	return n
}

// Source returns the complete list of items of a server.
type Source interface {
	Items(ctx context.Context) ([]Item, error)
}

// Load retrieves all items from source and groups them. status shows title while the items are being retrieved.
func Load(ctx context.Context, source Source, status ui.Status, title string) (Catalog, error) {
	var items []Item
	err := status.Run(ctx, title, func(ctx context.Context) (err error) {
		items, err = source.Items(ctx)
		return err
	})
	if err != nil {
		return Catalog{}, fmt.Errorf("load catalog: %w", err)
	}
	return GroupByKind(items), nil
}
