package deps

import (
	"net/http"

	"github.com/joefazee/countrysearch/internal/cache"
	"github.com/joefazee/countrysearch/internal/logger"
	"github.com/joefazee/countrysearch/internal/sanitizer"
	"github.com/joefazee/countrysearch/models"
)

// Container holds all shared dependencies
type Container struct {
	HTTPClient *http.Client
	Sanitizer  sanitizer.HTMLStripperer
	Logger     logger.Logger
	Snapshots  cache.Cache[[]models.Country]

	// Store repositories as interfaces to avoid imports
	repositories map[string]interface{}
	services     map[string]interface{}
}

func NewContainer(client *http.Client,
	sanitizer sanitizer.HTMLStripperer,
	log logger.Logger,
	snapshots cache.Cache[[]models.Country],
) *Container {
	return &Container{
		HTTPClient:   client,
		Sanitizer:    sanitizer,
		Logger:       log,
		Snapshots:    snapshots,
		repositories: make(map[string]interface{}),
		services:     make(map[string]interface{}),
	}
}

// RegisterRepository stores a repository with a key
func (c *Container) RegisterRepository(key string, repo interface{}) {
	c.repositories[key] = repo
}

// GetRepository retrieves a repository by key
func (c *Container) GetRepository(key string) interface{} {
	return c.repositories[key]
}

// RegisterService stores a service with a key
func (c *Container) RegisterService(key string, service interface{}) {
	c.services[key] = service
}

// GetService retrieves a service by key
func (c *Container) GetService(key string) interface{} {
	return c.services[key]
}
