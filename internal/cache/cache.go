package cache

import (
	"context"
	"errors"
	"fmt"
	"time"
)

const (
	RedisBackend  = "redis"
	MemoryBackend = "memory"
)

var ErrCacheMiss = errors.New("cache: key not found")

// Cache stores values by key with an optional TTL.
type Cache[V any] interface {
	// Get returns the value or ErrCacheMiss.
	Get(ctx context.Context, key string) (V, error)
	// Set stores value under key. Zero ttl = no expiration.
	Set(ctx context.Context, key string, value V, ttl time.Duration) error
	// Delete removes the key.
	Delete(ctx context.Context, key string) error
}

// Config selects and tunes the cache backend.
type Config struct {
	Backend   string        `env:"CACHE_BACKEND" env-default:"memory" validate:"oneof=memory redis"`
	Addr      string        `env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password  string        `env:"REDIS_PASSWORD"`
	DB        int           `env:"REDIS_DB" env-default:"0"`
	OpTimeout time.Duration `env:"REDIS_OP_TIMEOUT" env-default:"200ms"`
}

// RedisOptions converts the config to client options.
func (c *Config) RedisOptions() *RedisOptions {
	return &RedisOptions{
		Addr:      c.Addr,
		Password:  c.Password,
		DB:        c.DB,
		OpTimeout: c.OpTimeout,
	}
}

// New builds the backend named in cfg.
func New[V any](cfg *Config) (Cache[V], error) {
	switch cfg.Backend {
	case RedisBackend:
		return NewRedisCache[V](cfg.RedisOptions()), nil
	case MemoryBackend, "":
		return NewMemoryCache[V](), nil
	default:
		return nil, fmt.Errorf("cache: unknown backend %q", cfg.Backend)
	}
}
