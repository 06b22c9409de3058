// Package config holds the user-editable CLI configuration, persisted as a
// YAML file in the user config directory. Environment variables act as
// read-only overrides at runtime.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// GeometryConfig tunes profile polygon construction.
type GeometryConfig struct {
	// SegmentAngle is the largest arc angle one tessellation chord may
	// cover, in degrees.
	SegmentAngle float64 `yaml:"segment_angle"`
}

// LoggingConfig mirrors the log package options.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// AppConfig is the root configuration document.
type AppConfig struct {
	ConfigVersion int            `yaml:"config_version"`
	Geometry      GeometryConfig `yaml:"geometry"`
	Logging       LoggingConfig  `yaml:"logging"`
}

// Defaults returns the application defaults.
func Defaults() AppConfig {
	return AppConfig{
		ConfigVersion: 1,
		Geometry:      GeometryConfig{SegmentAngle: 5},
		Logging:       LoggingConfig{Level: "info", Format: "console"},
	}
}

// Env var names used as overrides.
const (
	EnvSegmentAngle = "GOSAF_SEGMENT_ANGLE"
	EnvLogLevel     = "GOSAF_LOG_LEVEL"
	EnvLogFormat    = "GOSAF_LOG_FORMAT"
	EnvLogFile      = "GOSAF_LOG_FILE"
)

// Path returns the config file location in the user scope.
func Path() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "gosaf", "config.yaml"), nil
}

// Load reads the config file if present, fills defaults and applies env
// overrides. A missing file is not an error.
func Load() (AppConfig, error) {
	cfg := Defaults()
	path, err := Path()
	if err == nil {
		data, readErr := os.ReadFile(path)
		switch {
		case readErr == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, err
			}
		case !errors.Is(readErr, os.ErrNotExist):
			return cfg, readErr
		}
	}
	cfg.applyEnv()
	if cfg.Geometry.SegmentAngle <= 0 {
		cfg.Geometry.SegmentAngle = Defaults().Geometry.SegmentAngle
	}
	return cfg, nil
}

func (c *AppConfig) applyEnv() {
	if v := os.Getenv(EnvSegmentAngle); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Geometry.SegmentAngle = f
		}
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		c.Logging.File = v
	}
}

// Save writes the configuration to the user config path.
func (c AppConfig) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
