package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config represents the application configuration
type Config struct {
	Map      MapConfig      `json:"map"`
	Location LocationConfig `json:"location"`
	Storage  StorageConfig  `json:"storage"`
	Form     FormConfig     `json:"form"`
	Log      LogConfig      `json:"log"`
}

// MapConfig holds map view settings
type MapConfig struct {
	Zoom         int     `json:"zoom"`
	RecenterZoom int     `json:"recenter_zoom"`
	PanSeconds   float64 `json:"pan_seconds"`
}

// LocationConfig selects how the starting position is found
type LocationConfig struct {
	Provider       string  `json:"provider"` // "ipinfo" or "static"
	IPInfoToken    string  `json:"ipinfo_token"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	TimeoutSeconds int     `json:"timeout_seconds"`
}

// StorageConfig holds persistence settings
type StorageConfig struct {
	Path string `json:"path"` // empty means <config dir>/data.db
	Key  string `json:"key"`
}

// FormConfig holds workout form behavior
type FormConfig struct {
	ReopenDelayMs int `json:"reopen_delay_ms"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `json:"level"`
	File  string `json:"file"` // empty means <config dir>/workoutmap.log
	JSON  bool   `json:"json"`
}

const (
	ProviderIPInfo = "ipinfo"
	ProviderStatic = "static"
)

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Map: MapConfig{
			Zoom:         13,
			RecenterZoom: 13,
			PanSeconds:   1,
		},
		Location: LocationConfig{
			Provider:       ProviderIPInfo,
			TimeoutSeconds: 10,
		},
		Storage: StorageConfig{
			Key: "workouts",
		},
		Form: FormConfig{
			ReopenDelayMs: 1000,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the configuration from ~/.workoutmap/config.json
func Load() (*Config, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads the configuration from path
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNoConfig
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// applyDefaults fills in missing values
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Map.Zoom == 0 {
		c.Map.Zoom = defaults.Map.Zoom
	}
	if c.Map.RecenterZoom == 0 {
		c.Map.RecenterZoom = defaults.Map.RecenterZoom
	}
	if c.Map.PanSeconds == 0 {
		c.Map.PanSeconds = defaults.Map.PanSeconds
	}
	if c.Location.Provider == "" {
		c.Location.Provider = defaults.Location.Provider
	}
	if c.Location.TimeoutSeconds == 0 {
		c.Location.TimeoutSeconds = defaults.Location.TimeoutSeconds
	}
	if c.Storage.Key == "" {
		c.Storage.Key = defaults.Storage.Key
	}
	if c.Form.ReopenDelayMs == 0 {
		c.Form.ReopenDelayMs = defaults.Form.ReopenDelayMs
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
}

// Save writes the configuration to ~/.workoutmap/config.json
func Save(cfg *Config) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}
	return SaveFile(path, cfg)
}

// SaveFile writes the configuration to path
func SaveFile(path string, cfg *Config) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// CreateExample creates an example config file if none exists
func CreateExample() error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		return nil // Config exists, don't overwrite
	}

	example := DefaultConfig()
	return SaveFile(path, &example)
}

// Validate checks that the config values are usable
func (c *Config) Validate() error {
	if c.Map.Zoom < 1 || c.Map.Zoom > 18 {
		return fmt.Errorf("map.zoom must be between 1 and 18, got %d", c.Map.Zoom)
	}
	if c.Map.RecenterZoom < 1 || c.Map.RecenterZoom > 18 {
		return fmt.Errorf("map.recenter_zoom must be between 1 and 18, got %d", c.Map.RecenterZoom)
	}
	if c.Map.PanSeconds < 0 {
		return fmt.Errorf("map.pan_seconds must not be negative, got %v", c.Map.PanSeconds)
	}

	switch c.Location.Provider {
	case ProviderIPInfo:
	case ProviderStatic:
		if c.Location.Latitude < -90 || c.Location.Latitude > 90 {
			return fmt.Errorf("location.latitude must be between -90 and 90, got %v", c.Location.Latitude)
		}
		if c.Location.Longitude < -180 || c.Location.Longitude > 180 {
			return fmt.Errorf("location.longitude must be between -180 and 180, got %v", c.Location.Longitude)
		}
	default:
		return fmt.Errorf("location.provider must be %q or %q, got %q", ProviderIPInfo, ProviderStatic, c.Location.Provider)
	}
	if c.Location.TimeoutSeconds < 0 {
		return fmt.Errorf("location.timeout_seconds must not be negative, got %d", c.Location.TimeoutSeconds)
	}

	if c.Storage.Key == "" {
		return errors.New("storage.key is required")
	}
	if c.Form.ReopenDelayMs < 0 {
		return fmt.Errorf("form.reopen_delay_ms must not be negative, got %d", c.Form.ReopenDelayMs)
	}

	return nil
}

// LocationTimeout returns the geolocation timeout
func (c *Config) LocationTimeout() time.Duration {
	return time.Duration(c.Location.TimeoutSeconds) * time.Second
}

// ReopenDelay returns how long the form stays hidden after a submit
func (c *Config) ReopenDelay() time.Duration {
	return time.Duration(c.Form.ReopenDelayMs) * time.Millisecond
}

// PanDuration returns how long an animated recenter takes
func (c *Config) PanDuration() time.Duration {
	return time.Duration(c.Map.PanSeconds * float64(time.Second))
}

// StoragePath returns the database path, defaulting into the config directory
func (c *Config) StoragePath() (string, error) {
	if c.Storage.Path != "" {
		return c.Storage.Path, nil
	}
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "data.db"), nil
}

// LogPath returns the log file path, defaulting into the config directory
func (c *Config) LogPath() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "workoutmap.log"), nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// GetConfigDir returns the path to the config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".workoutmap"), nil
}
