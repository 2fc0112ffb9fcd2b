package countries

import (
	"html/template"

	"github.com/gin-gonic/gin"
	"github.com/joefazee/countrysearch/internal/deps"
)

const (
	RepoKey    = "country_repository"
	ServiceKey = "country_service"
	LoaderKey  = "country_loader"
)

// MountPublic mounts the JSON search routes
func MountPublic(r *gin.RouterGroup, container *deps.Container) {
	handler := createHandler(container)

	countriesGroup := r.Group("/countries")
	countriesGroup.GET("", handler.SearchCountries)
	countriesGroup.GET("/status", handler.GetStatus)
}

// MountPages mounts the server-rendered search page
func MountPages(r *gin.RouterGroup, container *deps.Container) {
	handler := createHandler(container)

	r.GET("/", handler.Page)
}

// Init wires the repository, state, loader and service into the container.
// The returned loader has not been started.
func Init(container *deps.Container, cfg *Config) *Loader {
	repo := NewRepository(container.HTTPClient, cfg.SourceURL)
	container.RegisterRepository(RepoKey, repo)

	state := NewState()
	loader := NewLoader(repo, container.Snapshots, state, container.Logger, cfg)
	container.RegisterService(LoaderKey, loader)
	container.RegisterService(ServiceKey, NewService(state, cfg.PlaceholderFlagURL))

	return loader
}

// createHandler creates a handler with all dependencies
func createHandler(container *deps.Container) *Handler {
	service := container.GetService(ServiceKey).(Service)
	templates := template.Must(ParseTemplates())

	return NewHandler(service, templates, container.Sanitizer, container.Logger)
}
