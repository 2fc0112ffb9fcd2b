package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/joefazee/countrysearch/app"
	"github.com/joefazee/countrysearch/app/api"
	"github.com/joefazee/countrysearch/app/countries"
	apiDoc "github.com/joefazee/countrysearch/app/doc"
	_ "github.com/joefazee/countrysearch/docs"
	"github.com/joefazee/countrysearch/internal/cache"
	"github.com/joefazee/countrysearch/internal/deps"
	"github.com/joefazee/countrysearch/internal/logger"
	"github.com/joefazee/countrysearch/internal/router"
	"github.com/joefazee/countrysearch/internal/sanitizer"
	"github.com/joefazee/countrysearch/models"
)

var version = "dev"

// @title Country Search API
// @version 1.0
// @description Search a list of countries loaded once from an upstream endpoint.
// @x-logo {"url": "https://go.dev/images/go-logo-white.svg", "altText": "Go API Logo"}

// @contact.name API Support Team

// @license.name MIT License
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https
func main() {
	configFile := flag.String("config", "", "path to a config file (defaults to .env when present)")
	flag.Parse()

	cfg, err := app.LoadConfig(*configFile)
	if err != nil {
		logger.NewZeroLogger(os.Stderr, logger.LevelInfo, nil).
			Fatal(err, map[string]interface{}{"stage": "config"})
	}

	log := logger.NewZeroLogger(os.Stdout, logger.ParseLevel(cfg.LogLevel), logger.Fields{
		"service": "countrysearch",
		"env":     cfg.Env,
	})

	snapshots, err := cache.New[[]models.Country](&cfg.Cache)
	if err != nil {
		log.Fatal(err, map[string]interface{}{"stage": "cache"})
	}

	container := deps.NewContainer(
		&http.Client{},
		sanitizer.NewHTMLStripper(),
		log,
		snapshots,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loader := countries.Init(container, &cfg.Countries)
	loader.Start(ctx)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), api.RequestID(), api.RequestLogger(log), api.CorsMiddleware())

	mounter := router.NewMounter(container)
	mounter.Pages(r).Mount(countries.MountPages)
	mounter.API(r).
		Mount(countries.MountPublic).
		Mount(mountHealth(cfg))
	apiDoc.Init(r, cfg.Env)

	r.NoRoute(func(c *gin.Context) {
		api.NotFoundResponse(c, "Route")
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("starting country search server", map[string]interface{}{"addr": srv.Addr, "version": version})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err, map[string]interface{}{"stage": "listen"})
		}
	}()

	<-ctx.Done()
	log.Info("shutting down", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(err, map[string]interface{}{"stage": "shutdown"})
	}
	if closer, ok := snapshots.(interface{ Close() error }); ok {
		_ = closer.Close()
	}
}

func mountHealth(cfg *app.Config) router.MountFunc {
	return func(r *gin.RouterGroup, _ *deps.Container) {
		r.GET("/healthz", api.HealthCheck(cfg.Env, version))
	}
}
