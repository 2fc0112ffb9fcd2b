package router

import (
	"github.com/gin-gonic/gin"
	"github.com/joefazee/countrysearch/internal/deps"
)

// APIPrefix is the base path of the JSON API.
const APIPrefix = "/api/v1"

// MountFunc represents a function that mounts routes for a module
type MountFunc func(*gin.RouterGroup, *deps.Container)

type Mounter struct {
	container *deps.Container
}

func NewMounter(container *deps.Container) *Mounter {
	return &Mounter{container: container}
}

// API returns the versioned JSON API group
func (m *Mounter) API(engine *gin.Engine) *RouteGroup {
	return &RouteGroup{group: engine.Group(APIPrefix), container: m.container}
}

// Pages returns the root group for server-rendered pages
func (m *Mounter) Pages(engine *gin.Engine) *RouteGroup {
	return &RouteGroup{group: engine.Group("/"), container: m.container}
}

type RouteGroup struct {
	group     *gin.RouterGroup
	container *deps.Container
}

// Mount provides a fluent interface for mounting modules
func (rg *RouteGroup) Mount(mountFunc MountFunc) *RouteGroup {
	mountFunc(rg.group, rg.container)
	return rg
}

// Group creates a sub-group for organizing routes
func (rg *RouteGroup) Group(path string) *RouteGroup {
	return &RouteGroup{group: rg.group.Group(path), container: rg.container}
}

// Use adds middleware to the group
func (rg *RouteGroup) Use(middleware ...gin.HandlerFunc) *RouteGroup {
	rg.group.Use(middleware...)
	return rg
}
