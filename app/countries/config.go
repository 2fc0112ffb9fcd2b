package countries

import (
	"errors"
	"time"

	"github.com/joefazee/countrysearch/internal/validator"
)

const (
	DefaultSourceURL          = "https://countries-search-data-prod-812920491762.asia-south1.run.app/countries"
	DefaultPlaceholderFlagURL = "https://via.placeholder.com/320x213?text=Flag+Not+Available"
	DefaultFetchTimeout       = 15 * time.Second
	DefaultSnapshotTTL        = time.Hour
)

// Config of the country loader. Unset fields take the Default* values in
// ApplyDefaults; Validate holds every rule, the struct carries no validate tags.
type Config struct {
	SourceURL          string        `env:"COUNTRIES_SOURCE_URL"`
	FetchTimeout       time.Duration `env:"COUNTRIES_FETCH_TIMEOUT"`
	PlaceholderFlagURL string        `env:"COUNTRIES_PLACEHOLDER_FLAG_URL"`
	SnapshotTTL        time.Duration `env:"COUNTRIES_SNAPSHOT_TTL"`
}

// ApplyDefaults fills the unset fields. A zero duration counts as unset.
func (c *Config) ApplyDefaults() {
	if c.SourceURL == "" {
		c.SourceURL = DefaultSourceURL
	}
	if c.PlaceholderFlagURL == "" {
		c.PlaceholderFlagURL = DefaultPlaceholderFlagURL
	}
	if c.FetchTimeout == 0 {
		c.FetchTimeout = DefaultFetchTimeout
	}
	if c.SnapshotTTL == 0 {
		c.SnapshotTTL = DefaultSnapshotTTL
	}
}

func (c *Config) Validate() error {
	if !validator.IsURL(c.SourceURL) {
		return errors.New("countries source URL must be an absolute http(s) URL")
	}
	if !validator.IsURL(c.PlaceholderFlagURL) {
		return errors.New("placeholder flag URL must be an absolute http(s) URL")
	}
	if c.FetchTimeout < 0 || c.SnapshotTTL < 0 {
		return errors.New("countries durations cannot be negative")
	}
	return nil
}

func GetDefaultConfig() *Config {
	c := &Config{}
	c.ApplyDefaults()
	return c
}
