package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Storage driver names (duplicated from reminder package to avoid import cycle)
const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
)

const envPrefix = "REMINDERS_"

type Config struct {
	Storage   StorageConfig   `koanf:"storage"`
	Scheduler SchedulerConfig `koanf:"scheduler"`
	UI        UIConfig        `koanf:"ui"`
	Log       LogConfig       `koanf:"log"`
}

type StorageConfig struct {
	Driver string `koanf:"driver"`
	Path   string `koanf:"path"`
}

// SchedulerConfig holds alarm timing in seconds.
type SchedulerConfig struct {
	Interval   int `koanf:"interval"`   // Seconds between alarm checks
	Tolerance  int `koanf:"tolerance"`  // Seconds after the target a reminder still counts as due
	Visibility int `koanf:"visibility"` // Seconds an alert stays on screen
}

type UIConfig struct {
	ColoredOutput bool `koanf:"colored_output"`
}

type LogConfig struct {
	File string `koanf:"file"` // Empty logs to stderr
}

func (s SchedulerConfig) IntervalDuration() time.Duration {
	return time.Duration(s.Interval) * time.Second
}

func (s SchedulerConfig) ToleranceDuration() time.Duration {
	return time.Duration(s.Tolerance) * time.Second
}

func (s SchedulerConfig) VisibilityDuration() time.Duration {
	return time.Duration(s.Visibility) * time.Second
}

func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(NewDefaultProvider(), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath != "" {
		configPath = expandPath(configPath)

		if _, err := os.Stat(configPath); err == nil {
			if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load config file: %w", err)
			}
		}
	}

	// REMINDERS_STORAGE_DRIVER -> storage.driver, REMINDERS_UI_COLORED_OUTPUT -> ui.colored_output
	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Storage.Path = expandPath(cfg.Storage.Path)
	cfg.Log.File = expandPath(cfg.Log.File)

	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverFile, DriverSQLite:
	default:
		return fmt.Errorf("unknown storage driver: %s (supported: %s, %s)",
			c.Storage.Driver, DriverFile, DriverSQLite)
	}

	if c.Storage.Path == "" {
		return fmt.Errorf("storage path is required")
	}

	if c.Scheduler.Interval <= 0 {
		return fmt.Errorf("scheduler interval must be positive")
	}

	if c.Scheduler.Tolerance <= c.Scheduler.Interval {
		return fmt.Errorf("scheduler tolerance (%ds) must exceed the interval (%ds)",
			c.Scheduler.Tolerance, c.Scheduler.Interval)
	}

	if c.Scheduler.Visibility <= 0 {
		return fmt.Errorf("scheduler visibility must be positive")
	}

	return nil
}

func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	return strings.Replace(key, "_", ".", 1)
}

func expandPath(path string) string {
	if path == "" {
		return path
	}

	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}

	return path
}
