package app

import (
	"github.com/joefazee/countrysearch/app/countries"
	"github.com/joefazee/countrysearch/internal/cache"
	"github.com/joefazee/countrysearch/internal/nexus"
)

type Config struct {
	Countries countries.Config
	Cache     cache.Config

	AppHost  string `env:"APP_HOST" env-default:"localhost"`
	AppPort  string `env:"APP_PORT" env-default:"8080" validate:"required,numeric"`
	Env      string `env:"APP_ENV" env-default:"development" validate:"oneof=development staging production test"`
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`
}

// Addr is the listen address of the HTTP server.
func (c *Config) Addr() string {
	return c.AppHost + ":" + c.AppPort
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// LoadConfig loads the application configuration from environment variables
// and, when present, a config file. An empty file falls back to ".env".
func LoadConfig(file string) (*Config, error) {
	var opts []nexus.LoaderOption
	if file != "" {
		opts = append(opts, nexus.WithFileName(file))
	}

	c := &Config{}
	if err := nexus.NewLoader(opts...).Load(c); err != nil {
		return nil, err
	}
	c.Countries.ApplyDefaults()
	if err := c.Countries.Validate(); err != nil {
		return nil, &nexus.ConfigError{
			Code:    nexus.ErrCodeValidation,
			Message: "invalid countries configuration",
			Cause:   err,
		}
	}
	return c, nil
}
