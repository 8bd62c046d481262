package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"workoutmap/internal/config"
	"workoutmap/internal/location"
	"workoutmap/internal/logging"
	"workoutmap/internal/store"
	"workoutmap/internal/tracker"
	"workoutmap/internal/tui"
	"workoutmap/internal/workout"
)

func main() {
	if err := run(); err != nil {
		// Logs went to the file while the UI owned the terminal
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if errors.Is(err, config.ErrNoConfig) {
		if err := config.CreateExample(); err != nil {
			return fmt.Errorf("creating example config: %w", err)
		}
		defaults := config.DefaultConfig()
		cfg = &defaults
	} else if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		configDir, _ := config.GetConfigDir()
		return fmt.Errorf("invalid config at %s/config.json: %w", configDir, err)
	}

	logPath, err := cfg.LogPath()
	if err != nil {
		return fmt.Errorf("resolving log path: %w", err)
	}
	logCloser := logging.Setup(logging.SetupParams{
		LogFileName:   logPath,
		LogLevel:      cfg.Log.Level,
		LogFormatJSON: cfg.Log.JSON,
	})
	defer logCloser.Close()

	// Open database
	dbPath, err := cfg.StoragePath()
	if err != nil {
		return fmt.Errorf("resolving storage path: %w", err)
	}
	db, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	app := tui.NewApp(tracker.Options{
		Locator:      newLocator(cfg),
		Storage:      db,
		StorageKey:   cfg.Storage.Key,
		Zoom:         cfg.Map.Zoom,
		RecenterZoom: cfg.Map.RecenterZoom,
		ReopenDelay:  cfg.ReopenDelay(),
	}, tui.Config{
		LocateTimeout: cfg.LocationTimeout(),
		PanDuration:   cfg.PanDuration(),
	})

	log.WithField("provider", cfg.Location.Provider).Info("starting workoutmap")

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}

func newLocator(cfg *config.Config) location.Locator {
	if cfg.Location.Provider == config.ProviderStatic {
		return location.Static{Coordinates: workout.Coordinates{cfg.Location.Latitude, cfg.Location.Longitude}}
	}
	return location.NewIPInfo(nil, cfg.Location.IPInfoToken)
}
