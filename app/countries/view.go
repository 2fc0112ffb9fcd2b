package countries

import (
	"embed"
	"html/template"
	"strconv"

	"github.com/joefazee/countrysearch/models"
)

const (
	PageTitle          = "Country Search App"
	SearchPlaceholder  = "Search for a country..."
	LoadingMessage     = "Loading countries..."
	EmptyMessage       = "No countries found matching your search."
	UnknownCountryName = "Unknown Country"
	unnamedFlagAlt     = "Country flag"
)

// ViewMode is what the page shows in place of the grid.
type ViewMode int

const (
	ViewLoading ViewMode = iota
	ViewGrid
	ViewEmpty
)

func (m ViewMode) String() string {
	switch m {
	case ViewLoading:
		return "loading"
	case ViewGrid:
		return "grid"
	case ViewEmpty:
		return "empty"
	default:
		return ""
	}
}

// Card is a single rendered country.
type Card struct {
	Key     string
	Name    string
	FlagURL string
	FlagAlt string
}

// PageView is everything the templates need to paint the page.
type PageView struct {
	Title             string
	SearchPlaceholder string
	Query             string
	Mode              ViewMode
	Cards             []Card
	Message           string
}

func (v PageView) Loading() bool { return v.Mode == ViewLoading }

// BuildView renders state into a view. It has no side effects.
func BuildView(snap Snapshot, query, placeholderFlagURL string) PageView {
	view := PageView{
		Title:             PageTitle,
		SearchPlaceholder: SearchPlaceholder,
		Query:             query,
	}

	if snap.Loading {
		view.Mode = ViewLoading
		view.Message = LoadingMessage
		return view
	}

	visible := snap.Visible(query)
	if len(visible) == 0 {
		view.Mode = ViewEmpty
		view.Message = EmptyMessage
		return view
	}

	view.Mode = ViewGrid
	view.Cards = make([]Card, len(visible))
	for i := range visible {
		view.Cards[i] = NewCard(visible[i], placeholderFlagURL)
	}
	return view
}

// NewCard applies the display fallbacks. Cards are keyed by position in the
// loaded list, which stays unique when upstream names repeat.
func NewCard(c models.Country, placeholderFlagURL string) Card {
	card := Card{
		Key:     strconv.Itoa(c.Position),
		Name:    c.Name,
		FlagURL: c.Flag,
		FlagAlt: c.Name + " flag",
	}
	if !c.HasName() {
		card.Name = UnknownCountryName
		card.FlagAlt = unnamedFlagAlt
	}
	if card.FlagURL == "" {
		card.FlagURL = placeholderFlagURL
	}
	return card
}

//go:embed templates/*.html
var templateFS embed.FS

// ParseTemplates parses the "index" page and its "grid" fragment.
func ParseTemplates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}
