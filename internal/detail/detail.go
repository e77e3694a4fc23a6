// Package detail renders the detail view of a catalog item.
package detail

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/clambin/plex-library-viewer/internal/catalog"
	"github.com/clambin/plex-library-viewer/internal/format"
)

// Field is one labeled line of a detail view.
type Field struct {
	Label string
	Value string
}

// A Detailer returns the fields to show for an item.
type Detailer interface {
	Detail(item catalog.Item) []Field
}

// DetailerFunc adapts a function to a Detailer.
type DetailerFunc func(item catalog.Item) []Field

func (f DetailerFunc) Detail(item catalog.Item) []Field {
	return f(item)
}

// Styles determine how a detail view is emphasised.
type Styles struct {
	Label lipgloss.Style
}

// DefaultStyles renders labels in red.
func DefaultStyles() Styles {
	return Styles{
		Label: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

// Renderer renders items with the Detailer registered for their kind.
// Kinds without a Detailer show the item's title and kind.
type Renderer struct {
	detailers map[string]Detailer
	kindLabel func(string) string
	styles    Styles
}

// NewRenderer returns a Renderer with a Detailer for movies. kindLabel returns the name of a kind.
func NewRenderer(kindLabel func(string) string, styles Styles) *Renderer {
	r := Renderer{
		detailers: make(map[string]Detailer),
		kindLabel: kindLabel,
		styles:    styles,
	}
	r.Register("movie", DetailerFunc(Movie))
	return &r
}

// Register sets the Detailer for a kind.
func (r *Renderer) Register(kind string, d Detailer) {
	r.detailers[kind] = d
}

// Render returns the detail view of item.
func (r *Renderer) Render(item catalog.Item) string {
	var fields []Field
	if d, ok := r.detailers[item.Kind]; ok {
		fields = d.Detail(item)
	} else {
		fields = r.fallback(item)
	}
	lines := make([]string, len(fields))
	for i, f := range fields {
		lines[i] = r.styles.Label.Render("- "+f.Label+":") + " " + f.Value
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) fallback(item catalog.Item) []Field {
	return []Field{
		{Label: "Title", Value: item.Title},
		{Label: "Kind", Value: r.kindLabel(item.Kind)},
	}
}

// Movie returns the fields of a movie. Fields the server did not provide are left out.
func Movie(item catalog.Item) []Field {
	title := item.Title
	if item.EditionTitle != "" {
		title += " [" + item.EditionTitle + "]"
	}
	fields := []Field{{Label: "Title", Value: title}}
	if item.OriginalTitle != "" {
		fields = append(fields, Field{Label: "Original Title", Value: item.OriginalTitle})
	}
	if item.Duration != 0 {
		fields = append(fields, Field{Label: "Duration", Value: format.FormatDuration(item.Duration)})
	}
	if !item.ReleaseDate.IsZero() {
		fields = append(fields, Field{Label: "Release Date", Value: item.ReleaseDate.Format(time.DateOnly)})
	}
	if item.ContentRating != "" {
		fields = append(fields, Field{Label: "Content Rating", Value: item.ContentRating})
	}
	if item.Rating != 0 {
		fields = append(fields, Field{Label: "Critic Rating", Value: fmt.Sprintf("%.1f", item.Rating)})
	}
	return fields
}
