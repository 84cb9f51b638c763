package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the application configuration
type Config struct {
	Source  string        `json:"source"`
	Garmin  GarminConfig  `json:"garmin"`
	Athlete AthleteConfig `json:"athlete"`
	Sync    SyncConfig    `json:"sync"`
	Display DisplayConfig `json:"display"`
}

// GarminConfig holds Garmin Connect API credentials. Either field may
// be overridden by the GARMIN_CLIENT_ID / GARMIN_CLIENT_SECRET
// environment variables (a .env file is honored at startup).
type GarminConfig struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

// AthleteConfig holds athlete-specific settings. L2MaxHR is the heart
// rate ceiling below which an activity counts as low-intensity
// endurance work.
type AthleteConfig struct {
	MaxHR   float64 `json:"max_hr"`
	L2MaxHR float64 `json:"l2_max_hr"`
}

// SyncConfig holds data-sync settings
type SyncConfig struct {
	LookbackDays int `json:"lookback_days"`
}

// DisplayConfig holds display preferences
type DisplayConfig struct {
	ChartWeeks int `json:"chart_weeks"`
}

// Valid data source names
const (
	SourceGarmin = "garmin"
	SourceMock   = "mock"
)

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

// DefaultConfig returns the default configuration. The mock source is
// the default so a fresh install works without credentials.
func DefaultConfig() Config {
	return Config{
		Source: SourceMock,
		Athlete: AthleteConfig{
			MaxHR:   185,
			L2MaxHR: 135,
		},
		Sync: SyncConfig{
			LookbackDays: 200,
		},
		Display: DisplayConfig{
			ChartWeeks: 12,
		},
	}
}

// Load reads the configuration from ~/.zone2/config.json and applies
// defaults and environment overrides.
func Load() (*Config, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

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
	cfg.applyEnv()

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Source == "" {
		c.Source = defaults.Source
	}
	if c.Athlete.MaxHR == 0 {
		c.Athlete.MaxHR = defaults.Athlete.MaxHR
	}
	if c.Athlete.L2MaxHR == 0 {
		c.Athlete.L2MaxHR = defaults.Athlete.L2MaxHR
	}
	if c.Sync.LookbackDays == 0 {
		c.Sync.LookbackDays = defaults.Sync.LookbackDays
	}
	if c.Display.ChartWeeks == 0 {
		c.Display.ChartWeeks = defaults.Display.ChartWeeks
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv("GARMIN_CLIENT_ID"); v != "" {
		c.Garmin.ClientID = v
	}
	if v := os.Getenv("GARMIN_CLIENT_SECRET"); v != "" {
		c.Garmin.ClientSecret = v
	}
}

// Save writes the configuration to ~/.zone2/config.json
func Save(cfg *Config) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

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

	if _, err := os.Stat(path); err == nil {
		return nil // Config exists, don't overwrite
	}

	example := DefaultConfig()
	example.Garmin = GarminConfig{
		ClientID:     "YOUR_CLIENT_ID",
		ClientSecret: "YOUR_CLIENT_SECRET",
	}

	return Save(&example)
}

// Validate checks if the config has required fields
func (c *Config) Validate() error {
	if c.Source != SourceGarmin && c.Source != SourceMock {
		return fmt.Errorf("source must be %q or %q, got %q", SourceGarmin, SourceMock, c.Source)
	}

	if c.Source == SourceGarmin {
		if c.Garmin.ClientID == "" || c.Garmin.ClientID == "YOUR_CLIENT_ID" {
			return errors.New("garmin.client_id is required - register an app at https://developer.garmin.com")
		}
		if c.Garmin.ClientSecret == "" || c.Garmin.ClientSecret == "YOUR_CLIENT_SECRET" {
			return errors.New("garmin.client_secret is required - register an app at https://developer.garmin.com")
		}
	}

	if c.Athlete.L2MaxHR > 0 && c.Athlete.MaxHR > 0 && c.Athlete.L2MaxHR >= c.Athlete.MaxHR {
		return fmt.Errorf("athlete.l2_max_hr (%v) must be less than athlete.max_hr (%v)", c.Athlete.L2MaxHR, c.Athlete.MaxHR)
	}

	if c.Sync.LookbackDays < 0 {
		return fmt.Errorf("sync.lookback_days must not be negative, got %d", c.Sync.LookbackDays)
	}
	if c.Display.ChartWeeks < 0 {
		return fmt.Errorf("display.chart_weeks must not be negative, got %d", c.Display.ChartWeeks)
	}

	return nil
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
	return filepath.Join(home, ".zone2"), nil
}
