package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TIMERDECK_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Timers.TickIntervalMS != 1000 {
		t.Fatalf("expected default tick interval 1000, got %d", cfg.Timers.TickIntervalMS)
	}
	if cfg.Timers.MaxTimers != 0 {
		t.Fatalf("expected unlimited timers by default, got %d", cfg.Timers.MaxTimers)
	}
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := "[timers]\ntick_interval_ms = 250\n\n[keys.actions]\n\"timer-add\" = [\"n\"]\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("TIMERDECK_CONFIG", path)
	t.Setenv("TIMERDECK_TIMERS_MAX_TIMERS", "6")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Timers.TickIntervalMS != 250 {
		t.Fatalf("expected file tick interval 250, got %d", cfg.Timers.TickIntervalMS)
	}
	if cfg.Timers.MaxTimers != 6 {
		t.Fatalf("expected env max timers 6, got %d", cfg.Timers.MaxTimers)
	}
	if keys := cfg.Keys.Actions["timer-add"]; len(keys) != 1 || keys[0] != "n" {
		t.Fatalf("expected keybinding override, got %+v", cfg.Keys.Actions)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("TIMERDECK_CONFIG", path)

	in := Config{
		Timers:  TimersConfig{TickIntervalMS: 500, MaxTimers: 9},
		Keys:    KeysConfig{Actions: map[string][]string{"quit": {"ctrl+q"}}},
		Logging: LoggingConfig{Debug: true, Dir: t.TempDir()},
	}
	if err := Save(in); err != nil {
		t.Fatalf("save: %v", err)
	}
	out, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if out.Timers.TickIntervalMS != 500 || out.Timers.MaxTimers != 9 {
		t.Fatalf("unexpected timers config after round trip: %+v", out.Timers)
	}
	if !out.Logging.Debug {
		t.Fatalf("expected debug flag to survive round trip")
	}
	if keys := out.Keys.Actions["quit"]; len(keys) != 1 || keys[0] != "ctrl+q" {
		t.Fatalf("expected quit override after round trip, got %+v", out.Keys.Actions)
	}
}
