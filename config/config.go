package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	BackendURL  string   `mapstructure:"backend_url"`
	Location    Location `mapstructure:"location"`
	Unit        string   `mapstructure:"unit"`
	Hours       int      `mapstructure:"hours"`
	Days        int      `mapstructure:"days"`
	HistoryDays int      `mapstructure:"history_days"`
	RefreshSec  int      `mapstructure:"refresh_seconds"`
	ExportDir   string   `mapstructure:"export_dir"`
	Compare     []string `mapstructure:"compare_locations"`
}

type Location struct {
	Label     string  `mapstructure:"label"`
	Latitude  float64 `mapstructure:"latitude"`
	Longitude float64 `mapstructure:"longitude"`
}

// HasCoords reports whether the stored location carries a usable coordinate
// pair. (0,0) is open ocean and doubles as the unset value.
func (l Location) HasCoords() bool {
	return l.Latitude != 0 || l.Longitude != 0
}

func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	cfgDir := filepath.Join(home, ".config", "skycast")
	cfgFile := filepath.Join(cfgDir, "config.yaml")

	if !ConfigExists() {
		return nil, fmt.Errorf("config not found at %s. Please run setup.", cfgFile)
	}

	viper.SetConfigFile(cfgFile)
	viper.SetEnvPrefix("skycast")
	viper.AutomaticEnv()

	// Allow env override for the backend endpoint
	viper.BindEnv("backend_url", "SKYCAST_BACKEND_URL")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Defaults
	if cfg.BackendURL == "" {
		cfg.BackendURL = "http://localhost:5000"
	}
	if cfg.Unit == "" {
		cfg.Unit = "fahrenheit"
	}
	if cfg.Hours == 0 {
		cfg.Hours = 24
	}
	if cfg.Days == 0 {
		cfg.Days = 7
	}
	if cfg.HistoryDays == 0 {
		cfg.HistoryDays = 30
	}
	if cfg.RefreshSec == 0 {
		cfg.RefreshSec = 300
	}
	if cfg.ExportDir == "" {
		cfg.ExportDir = "."
	}

	return &cfg, nil
}

func ConfigExists() bool {
	home, err := os.UserHomeDir()
	if err != nil {
		return false
	}
	cfgFile := filepath.Join(home, ".config", "skycast", "config.yaml")
	_, err = os.Stat(cfgFile)
	return err == nil
}

func Save(cfg *Config) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("getting home dir: %w", err)
	}

	cfgDir := filepath.Join(home, ".config", "skycast")
	if err := os.MkdirAll(cfgDir, 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	cfgFile := filepath.Join(cfgDir, "config.yaml")

	v := viper.New()
	v.SetConfigFile(cfgFile)
	v.Set("backend_url", cfg.BackendURL)
	v.Set("location", map[string]interface{}{
		"label":     cfg.Location.Label,
		"latitude":  cfg.Location.Latitude,
		"longitude": cfg.Location.Longitude,
	})
	v.Set("unit", cfg.Unit)
	v.Set("hours", cfg.Hours)
	v.Set("days", cfg.Days)
	v.Set("history_days", cfg.HistoryDays)
	v.Set("refresh_seconds", cfg.RefreshSec)
	v.Set("export_dir", cfg.ExportDir)
	v.Set("compare_locations", cfg.Compare)

	if err := v.WriteConfig(); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}
