package countries

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joefazee/countrysearch/models"
)

func TestService_SearchWhileLoading(t *testing.T) {
	svc := NewService(NewState(), testPlaceholder)

	cards, err := svc.Search(context.Background(), "fr")

	assert.ErrorIs(t, err, models.ErrStillLoading)
	assert.Nil(t, cards)
}

func TestService_Search(t *testing.T) {
	state := NewState()
	state.Apply(LoadResult{Countries: sampleCountries()})
	svc := NewService(state, testPlaceholder)

	cards, err := svc.Search(context.Background(), "NIG")
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, CardResponse{Key: "4", Name: "Niger", FlagURL: testPlaceholder, FlagAlt: "Niger flag"}, cards[0])
	assert.Equal(t, "Nigeria", cards[1].Name)

	none, err := svc.Search(context.Background(), "atlantis")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestService_Page(t *testing.T) {
	state := NewState()
	svc := NewService(state, testPlaceholder)

	assert.Equal(t, ViewLoading, svc.Page(context.Background(), "").Mode)

	state.Apply(LoadResult{Countries: sampleCountries()})
	view := svc.Page(context.Background(), "")
	assert.Equal(t, ViewGrid, view.Mode)
	assert.Len(t, view.Cards, len(sampleCountries()))
}

func TestService_Status(t *testing.T) {
	at := time.Date(2026, 10, 19, 8, 30, 0, 0, time.UTC)
	state := fixedState(at)
	svc := NewService(state, testPlaceholder)

	loading := svc.Status(context.Background())
	assert.True(t, loading.Loading)
	assert.Nil(t, loading.LoadedAt)

	state.Apply(LoadResult{Err: errors.New("boom")})
	failed := svc.Status(context.Background())
	assert.False(t, failed.Loading)
	assert.True(t, failed.Failed)
	assert.Zero(t, failed.Total)
	require.NotNil(t, failed.LoadedAt)
	assert.Equal(t, at, *failed.LoadedAt)
}

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := &Config{SourceURL: "http://upstream.internal/countries", SnapshotTTL: time.Minute}
	cfg.ApplyDefaults()

	assert.Equal(t, "http://upstream.internal/countries", cfg.SourceURL)
	assert.Equal(t, DefaultPlaceholderFlagURL, cfg.PlaceholderFlagURL)
	assert.Equal(t, DefaultFetchTimeout, cfg.FetchTimeout)
	assert.Equal(t, time.Minute, cfg.SnapshotTTL)

	assert.Equal(t, &Config{
		SourceURL:          DefaultSourceURL,
		FetchTimeout:       DefaultFetchTimeout,
		PlaceholderFlagURL: DefaultPlaceholderFlagURL,
		SnapshotTTL:        DefaultSnapshotTTL,
	}, GetDefaultConfig())
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, GetDefaultConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "relative source", mutate: func(c *Config) { c.SourceURL = "/countries" }},
		{name: "non-http source", mutate: func(c *Config) { c.SourceURL = "ftp://example.com/countries" }},
		{name: "empty placeholder", mutate: func(c *Config) { c.PlaceholderFlagURL = "" }},
		{name: "negative timeout", mutate: func(c *Config) { c.FetchTimeout = -time.Second }},
		{name: "negative ttl", mutate: func(c *Config) { c.SnapshotTTL = -time.Minute }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := GetDefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
