package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Game.TicksPerSecond != 60 || cfg.Store.Driver != StoreFile {
		t.Errorf("unexpected defaults: tps=%d store=%s", cfg.Game.TicksPerSecond, cfg.Store.Driver)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "roids.toml", `
[game]
lives = 5
roids_num = 2

[store]
driver = "sqlite"
path = "scores.db"

[logging]
level = "debug"
format = "json"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Game.Lives != 5 || cfg.Game.RoidsNum != 2 {
		t.Errorf("game = lives %d roids %d, want 5/2", cfg.Game.Lives, cfg.Game.RoidsNum)
	}
	// Unset keys keep their defaults.
	if cfg.Game.FieldWidth != 760 {
		t.Errorf("field width = %g, want default 760", cfg.Game.FieldWidth)
	}
	if cfg.Store.Driver != StoreSQLite || cfg.Logging.Format != "json" {
		t.Errorf("store=%s format=%s", cfg.Store.Driver, cfg.Logging.Format)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "roids.yml", `
game:
  laser_max: 3
web:
  port: "9090"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Game.LaserMax != 3 || cfg.Web.Port != "9090" {
		t.Errorf("laser_max=%d port=%s", cfg.Game.LaserMax, cfg.Web.Port)
	}
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr string
	}{
		{"unknown extension", "roids.ini", "x=1", "unsupported format"},
		{"bad toml", "roids.toml", "[game\n", "parse config"},
		{"invalid tuning", "roids.toml", "[game]\nticks_per_second = 0\n", "ticks_per_second"},
		{"unknown store", "roids.yaml", "store:\n  driver: redis\n", "unknown driver"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("SSH_PORT", "2323")
	t.Setenv("ROIDS_STORE", StoreMemory)

	cfg := Defaults()
	cfg.ApplyEnv()
	if cfg.SSH.Port != "2323" || cfg.Store.Driver != StoreMemory {
		t.Errorf("port=%s store=%s", cfg.SSH.Port, cfg.Store.Driver)
	}
	if cfg.Web.Port != "8080" {
		t.Errorf("unset variable changed web port to %s", cfg.Web.Port)
	}
}

func TestNewLogger(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		log, err := NewLogger(LoggingConfig{Level: "nonsense", Format: format})
		if err != nil {
			t.Fatalf("%s: %v", format, err)
		}
		if !log.Core().Enabled(0) {
			t.Errorf("%s: info level should be enabled", format)
		}
		if log.Core().Enabled(-1) {
			t.Errorf("%s: debug level should be disabled on fallback", format)
		}
	}
}

func TestOpenStore(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	for _, sc := range []StoreConfig{
		{Driver: StoreMemory},
		{Driver: StoreFile, Path: filepath.Join(dir, "scores.yaml")},
		{Driver: StoreSQLite, Path: filepath.Join(dir, "scores.db")},
	} {
		t.Run(sc.Driver, func(t *testing.T) {
			store, closeStore, err := sc.OpenStore(ctx, nil)
			if err != nil {
				t.Fatalf("OpenStore: %v", err)
			}
			defer closeStore()

			if err := store.Save(ctx, "ada", 300); err != nil {
				t.Fatalf("Save: %v", err)
			}
			if got, err := store.Load(ctx, "ada"); err != nil || got != 300 {
				t.Errorf("Load = %d, %v; want 300", got, err)
			}
		})
	}

	if _, _, err := (StoreConfig{Driver: "redis"}).OpenStore(ctx, nil); err == nil {
		t.Error("unknown driver accepted")
	}
}
