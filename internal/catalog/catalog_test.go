package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByKind(t *testing.T) {
	items := []Item{
		{Kind: "show", Title: "Severance"},
		{Kind: "movie", Title: "Alien"},
		{Kind: "show", Title: "Andor"},
		{Kind: "artist", Title: "Bowie"},
		{Kind: "movie", Title: "Heat"},
		{Kind: "movie", Title: "Brazil"},
	}

	c := GroupByKind(items)
	assert.Equal(t, len(items), c.Len())
	require.Len(t, c.Groups(), 3)

	var kinds []string
	for _, g := range c.Groups() {
		kinds = append(kinds, g.Kind)
		assert.NotEmpty(t, g.Items)
		for _, item := range g.Items {
			assert.Equal(t, g.Kind, item.Kind)
		}
	}
	assert.Equal(t, []string{"show", "movie", "artist"}, kinds)
	assert.Equal(t, []Item{items[1], items[4], items[5]}, c.Groups()[1].Items)

	assert.Equal(t, c, GroupByKind(items), "grouping must be stable")
}

func TestGroupByKind_Empty(t *testing.T) {
	c := GroupByKind(nil)
	assert.Empty(t, c.Groups())
	assert.Zero(t, c.Len())
}

type fakeSource struct {
	items []Item
	err   error
	calls int
}

func (f *fakeSource) Items(context.Context) ([]Item, error) {
	f.calls++
	return f.items, f.err
}

type fakeStatus struct {
	titles []string
}

func (f *fakeStatus) Run(ctx context.Context, title string, action func(context.Context) error) error {
	f.titles = append(f.titles, title)
	return action(ctx)
}

func TestLoad(t *testing.T) {
	source := fakeSource{items: []Item{{Kind: "movie", Title: "Alien"}, {Kind: "show", Title: "Andor"}}}
	var status fakeStatus

	c, err := Load(t.Context(), &source, &status, "loading")
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 1, source.calls)
	assert.Equal(t, []string{"loading"}, status.titles)

	source.err = errors.New("connection refused")
	_, err = Load(t.Context(), &source, &status, "loading")
	assert.EqualError(t, err, "load catalog: connection refused")
}
