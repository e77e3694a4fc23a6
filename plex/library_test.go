package plex_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/clambin/plex-library-viewer/plex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPMSClient_GetLibraries(t *testing.T) {
	c, testServer := makeClientAndServer(nil)
	t.Cleanup(testServer.Close)

	libraries, err := c.GetLibraries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []plex.Library{
		{Key: "1", Type: "movie", Title: "Movies"},
		{Key: "2", Type: "show", Title: "Shows"},
	}, libraries)
}

func TestPMSClient_GetLibraryItems(t *testing.T) {
	c, s := makeClientAndServer(nil)
	t.Cleanup(s.Close)

	items, err := c.GetLibraryItems(context.Background(), "1")
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, plex.Item{
		RatingKey:             "11",
		Type:                  "movie",
		Title:                 "Blade Runner",
		EditionTitle:          "Final Cut",
		Year:                  1982,
		Duration:              7_065_000,
		OriginallyAvailableAt: "1982-06-25",
		ContentRating:         "R",
		Rating:                8.9,
	}, items[0])

	_, err = c.GetLibraryItems(context.Background(), "3")
	assert.Error(t, err)
}

func TestPMSClient_GetAllItems(t *testing.T) {
	c, s := makeClientAndServer(nil)
	t.Cleanup(s.Close)

	items, err := c.GetAllItems(context.Background())
	require.NoError(t, err)
	var titles []string
	for _, item := range items {
		titles = append(titles, item.Title)
	}
	assert.Equal(t, []string{"Blade Runner", "Amélie", "Alien", "Severance", "Andor"}, titles)
}

func TestPMSClient_GetAllItems_Failure(t *testing.T) {
	c, s := makeClientAndServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/library/sections" {
			_, _ = w.Write([]byte(`{ "MediaContainer": { "Directory": [ { "key": "1", "title": "Movies" } ] } }`))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(s.Close)

	_, err := c.GetAllItems(context.Background())
	assert.EqualError(t, err, `library "Movies": plex: 500 Internal Server Error`)
}

func TestItem_ReleaseDate(t *testing.T) {
	date, ok := plex.Item{OriginallyAvailableAt: "1982-06-25"}.ReleaseDate()
	assert.True(t, ok)
	assert.Equal(t, time.Date(1982, time.June, 25, 0, 0, 0, 0, time.UTC), date)

	_, ok = plex.Item{}.ReleaseDate()
	assert.False(t, ok)

	_, ok = plex.Item{OriginallyAvailableAt: "sometime"}.ReleaseDate()
	assert.False(t, ok)
}
