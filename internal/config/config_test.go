package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Storage.Driver != DriverFile {
		t.Errorf("Driver = %q, want %q", cfg.Storage.Driver, DriverFile)
	}
	if cfg.Scheduler.IntervalDuration() != 30*time.Second {
		t.Errorf("Interval = %s, want 30s", cfg.Scheduler.IntervalDuration())
	}
	if cfg.Scheduler.ToleranceDuration() != time.Minute {
		t.Errorf("Tolerance = %s, want 1m", cfg.Scheduler.ToleranceDuration())
	}
	if cfg.Scheduler.VisibilityDuration() != 10*time.Second {
		t.Errorf("Visibility = %s, want 10s", cfg.Scheduler.VisibilityDuration())
	}
	if filepath.Base(cfg.Storage.Path) != "items.json" || cfg.Storage.Path[0] == '~' {
		t.Errorf("expected expanded storage path, got %q", cfg.Storage.Path)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("storage:\n  driver: sqlite\n  path: /tmp/items.db\nscheduler:\n  interval: 15\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("REMINDERS_SCHEDULER_TOLERANCE", "45")
	t.Setenv("REMINDERS_UI_COLORED_OUTPUT", "false")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Storage.Driver != DriverSQLite || cfg.Storage.Path != "/tmp/items.db" {
		t.Errorf("unexpected storage config %+v", cfg.Storage)
	}
	if cfg.Scheduler.Interval != 15 {
		t.Errorf("Interval = %d, want 15", cfg.Scheduler.Interval)
	}
	if cfg.Scheduler.Tolerance != 45 {
		t.Errorf("Tolerance = %d, want 45 from env", cfg.Scheduler.Tolerance)
	}
	if cfg.UI.ColoredOutput {
		t.Error("expected colored output disabled from env")
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Scheduler.Interval != 30 {
		t.Errorf("Interval = %d, want default", cfg.Scheduler.Interval)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Storage:   StorageConfig{Driver: DriverFile, Path: "/tmp/items.json"},
			Scheduler: SchedulerConfig{Interval: 30, Tolerance: 60, Visibility: 10},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"unknown driver", func(c *Config) { c.Storage.Driver = "postgres" }, true},
		{"empty path", func(c *Config) { c.Storage.Path = "" }, true},
		{"zero interval", func(c *Config) { c.Scheduler.Interval = 0 }, true},
		{"tolerance equals interval", func(c *Config) { c.Scheduler.Tolerance = 30 }, true},
		{"tolerance below interval", func(c *Config) { c.Scheduler.Tolerance = 10 }, true},
		{"zero visibility", func(c *Config) { c.Scheduler.Visibility = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			if err := c.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"REMINDERS_STORAGE_DRIVER":    "storage.driver",
		"REMINDERS_UI_COLORED_OUTPUT": "ui.colored_output",
		"REMINDERS_LOG_FILE":          "log.file",
	}
	for in, want := range tests {
		if got := envKey(in); got != want {
			t.Errorf("envKey(%q) = %q, want %q", in, got, want)
		}
	}
}
