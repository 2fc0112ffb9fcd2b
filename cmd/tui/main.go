package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joefazee/countrysearch/app"
	"github.com/joefazee/countrysearch/app/countries"
	"github.com/joefazee/countrysearch/internal/cache"
	"github.com/joefazee/countrysearch/internal/logger"
	"github.com/joefazee/countrysearch/internal/tui"
	"github.com/joefazee/countrysearch/models"
)

func main() {
	configFile := flag.String("config", "", "path to a config file (defaults to .env when present)")
	flag.Parse()

	cfg, err := app.LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the UI, so logs only go to a file in debug mode.
	var log logger.Logger = logger.NewNullLogger()
	if level := logger.ParseLevel(cfg.LogLevel); level == logger.LevelDebug {
		f, err := tea.LogToFile("countrysearch-debug.log", "")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log = logger.NewZeroLogger(f, level, logger.Fields{"service": "countrysearch-tui"})
	}

	snapshots, err := cache.New[[]models.Country](&cfg.Cache)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	state := countries.NewState()
	repo := countries.NewRepository(&http.Client{}, cfg.Countries.SourceURL)
	loader := countries.NewLoader(repo, snapshots, state, log, &cfg.Countries)

	m := tui.New(tui.Options{
		Loader:             loader,
		State:              state,
		PlaceholderFlagURL: cfg.Countries.PlaceholderFlagURL,
	})

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
