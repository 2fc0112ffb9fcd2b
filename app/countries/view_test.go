package countries

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joefazee/countrysearch/models"
)

const testPlaceholder = "https://example.test/placeholder.png"

func mustAtoi(t *testing.T, s string) int {
	t.Helper()
	n, err := strconv.Atoi(s)
	require.NoError(t, err)
	return n
}

func TestBuildView_Loading(t *testing.T) {
	snap := Snapshot{All: sampleCountries(), Loading: true}

	view := BuildView(snap, "fr", testPlaceholder)

	assert.Equal(t, ViewLoading, view.Mode)
	assert.True(t, view.Loading())
	assert.Equal(t, LoadingMessage, view.Message)
	assert.Empty(t, view.Cards)
	assert.Equal(t, "fr", view.Query)
	assert.Equal(t, PageTitle, view.Title)
	assert.Equal(t, SearchPlaceholder, view.SearchPlaceholder)
}

func TestBuildView_Grid(t *testing.T) {
	snap := Snapshot{All: sampleCountries()}

	view := BuildView(snap, "", testPlaceholder)

	require.Equal(t, ViewGrid, view.Mode)
	assert.False(t, view.Loading())
	assert.Empty(t, view.Message)
	require.Len(t, view.Cards, len(snap.All))
	for i, card := range view.Cards {
		assert.Equal(t, snap.All[i].Position, mustAtoi(t, card.Key))
	}
}

func TestBuildView_Empty(t *testing.T) {
	tests := []struct {
		name  string
		snap  Snapshot
		query string
	}{
		{name: "no match", snap: Snapshot{All: sampleCountries()}, query: "atlantis"},
		{name: "empty list", snap: Snapshot{All: []models.Country{}}, query: ""},
		{name: "failed load", snap: Snapshot{All: []models.Country{}, Failed: true}, query: "fr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := BuildView(tt.snap, tt.query, testPlaceholder)
			assert.Equal(t, ViewEmpty, view.Mode)
			assert.Equal(t, EmptyMessage, view.Message)
			assert.Empty(t, view.Cards)
		})
	}
}

func TestNewCard_Fallbacks(t *testing.T) {
	tests := []struct {
		name    string
		country models.Country
		want    Card
	}{
		{
			name:    "complete record",
			country: models.Country{Name: "France", Flag: "f.png", Position: 3},
			want:    Card{Key: "3", Name: "France", FlagURL: "f.png", FlagAlt: "France flag"},
		},
		{
			name:    "missing flag",
			country: models.Country{Name: "Chad", Position: 0},
			want:    Card{Key: "0", Name: "Chad", FlagURL: testPlaceholder, FlagAlt: "Chad flag"},
		},
		{
			name:    "missing name",
			country: models.Country{Flag: "x.png", Position: 7},
			want:    Card{Key: "7", Name: UnknownCountryName, FlagURL: "x.png", FlagAlt: "Country flag"},
		},
		{
			name:    "missing everything",
			country: models.Country{Position: 1},
			want:    Card{Key: "1", Name: UnknownCountryName, FlagURL: testPlaceholder, FlagAlt: "Country flag"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewCard(tt.country, testPlaceholder))
		})
	}
}

func TestNewCard_KeysStayUniqueForDuplicateNames(t *testing.T) {
	snap := Snapshot{All: []models.Country{
		{Name: "Congo", Position: 0},
		{Name: "Congo", Position: 1},
	}}

	view := BuildView(snap, "congo", testPlaceholder)

	require.Len(t, view.Cards, 2)
	assert.NotEqual(t, view.Cards[0].Key, view.Cards[1].Key)
}

func TestViewMode_String(t *testing.T) {
	assert.Equal(t, "loading", ViewLoading.String())
	assert.Equal(t, "grid", ViewGrid.String())
	assert.Equal(t, "empty", ViewEmpty.String())
	assert.Empty(t, ViewMode(9).String())
}

func TestTemplates_RenderModes(t *testing.T) {
	tmpl, err := ParseTemplates()
	require.NoError(t, err)

	render := func(name string, view PageView) string {
		var buf bytes.Buffer
		require.NoError(t, tmpl.ExecuteTemplate(&buf, name, view))
		return buf.String()
	}

	loading := render("index", BuildView(Snapshot{Loading: true}, "", testPlaceholder))
	assert.Contains(t, loading, "<h1>Country Search App</h1>")
	assert.Contains(t, loading, `placeholder="Search for a country..."`)
	assert.Contains(t, loading, LoadingMessage)
	assert.Contains(t, loading, `http-equiv="refresh"`)

	grid := render("grid", BuildView(Snapshot{All: sampleCountries()}, "fr", testPlaceholder))
	assert.Equal(t, 2, strings.Count(grid, `class="countryCard"`))
	assert.Contains(t, grid, `alt="France flag"`)
	assert.NotContains(t, grid, LoadingMessage)
	assert.Less(t, strings.Index(grid, "France"), strings.Index(grid, "French Guiana"))

	empty := render("grid", BuildView(Snapshot{All: sampleCountries()}, "zzz", testPlaceholder))
	assert.Contains(t, empty, EmptyMessage)
	assert.NotContains(t, empty, "countryCard")

	page := render("index", BuildView(Snapshot{All: sampleCountries()}, `"><script>`, testPlaceholder))
	assert.NotContains(t, page, `"><script>`)
	assert.NotContains(t, page, `http-equiv="refresh"`)
}
