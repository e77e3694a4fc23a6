package plex

import (
	"context"
	"fmt"
	"time"
)

// Library is one library section of a Plex Media Server.
type Library struct {
	Key        string `json:"key"`
	Type       string `json:"type"`
	Title      string `json:"title"`
	Agent      string `json:"agent"`
	Scanner    string `json:"scanner"`
	Language   string `json:"language"`
	Uuid       string `json:"uuid"`
	Hidden     int    `json:"hidden"`
	Refreshing bool   `json:"refreshing"`
}

// Item is one entry of a library section, as returned by /library/sections/<key>/all.
//
// Which attributes are set depends on the item's Type ("movie", "show", "artist", ...).
// The server omits attributes it doesn't have, leaving them at their zero value.
type Item struct {
	RatingKey             string  `json:"ratingKey"`
	Key                   string  `json:"key"`
	Guid                  string  `json:"guid"`
	Type                  string  `json:"type"`
	Title                 string  `json:"title"`
	TitleSort             string  `json:"titleSort,omitempty"`
	EditionTitle          string  `json:"editionTitle,omitempty"`
	OriginalTitle         string  `json:"originalTitle,omitempty"`
	Studio                string  `json:"studio,omitempty"`
	ContentRating         string  `json:"contentRating,omitempty"`
	Summary               string  `json:"summary,omitempty"`
	OriginallyAvailableAt string  `json:"originallyAvailableAt,omitempty"`
	LibrarySectionTitle   string  `json:"librarySectionTitle,omitempty"`
	Rating                float64 `json:"rating,omitempty"`
	AudienceRating        float64 `json:"audienceRating,omitempty"`
	Year                  int     `json:"year,omitempty"`
	Duration              int     `json:"duration,omitempty"`
	AddedAt               int     `json:"addedAt,omitempty"`
	ChildCount            int     `json:"childCount,omitempty"`
	LeafCount             int     `json:"leafCount,omitempty"`
}

// ReleaseDate parses OriginallyAvailableAt. It returns false if the item has no (valid) release date.
func (i Item) ReleaseDate() (time.Time, bool) {
	if i.OriginallyAvailableAt == "" {
		return time.Time{}, false
	}
	date, err := time.Parse(time.DateOnly, i.OriginallyAvailableAt)
	return date, err == nil
}

// GetLibraries returns all library sections of the server.
func (c *PMSClient) GetLibraries(ctx context.Context) ([]Library, error) {
	type response struct {
		Directory []Library `json:"Directory"`
	}
	resp, err := call[response](ctx, c, "/library/sections")
	return resp.Directory, err
}

// GetLibraryItems returns all items in the library section with the given key.
func (c *PMSClient) GetLibraryItems(ctx context.Context, key string) ([]Item, error) {
	type response struct {
		Metadata []Item `json:"Metadata"`
	}
	resp, err := call[response](ctx, c, "/library/sections/"+key+"/all")
	return resp.Metadata, err
}

// GetAllItems returns the items of all library sections, in the order the server lists its sections.
// There is no pagination: on large servers, this call may take a while.
func (c *PMSClient) GetAllItems(ctx context.Context) ([]Item, error) {
	libraries, err := c.GetLibraries(ctx)
	if err != nil {
		return nil, fmt.Errorf("libraries: %w", err)
	}
	var items []Item
	for _, library := range libraries {
		libraryItems, err := c.GetLibraryItems(ctx, library.Key)
		if err != nil {
			return nil, fmt.Errorf("library %q: %w", library.Title, err)
		}
		c.logger.Debug("library loaded", "library", library.Title, "items", len(libraryItems))
		items = append(items, libraryItems...)
	}
	return items, nil
}
