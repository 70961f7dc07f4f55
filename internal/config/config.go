package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Timers  TimersConfig
	Keys    KeysConfig
	Logging LoggingConfig
}

// TimersConfig holds cluster behavior settings.
type TimersConfig struct {
	TickIntervalMS int
	// MaxTimers caps the cluster size; 0 means unlimited.
	MaxTimers int
}

// KeysConfig holds per-action keybinding overrides, e.g.
// [keys.actions] "timer-add" = ["n"].
type KeysConfig struct {
	Actions map[string][]string
}

// LoggingConfig holds debug log settings. The TUI owns the terminal, so logs
// only ever go to a file.
type LoggingConfig struct {
	Debug bool
	Dir   string
}

// Load reads configuration from file and env. Env var overrides use prefix TIMERDECK_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("timers.tick_interval_ms", 1000)
	v.SetDefault("timers.max_timers", 0)
	v.SetDefault("logging.debug", false)
	v.SetDefault("logging.dir", filepath.Join(os.Getenv("HOME"), ".local", "state", "timerdeck"))

	v.SetConfigType("toml")

	cfgPath := os.Getenv("TIMERDECK_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "timerdeck"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("TIMERDECK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Timers.TickIntervalMS <= 0 {
		c.Timers.TickIntervalMS = 1000
	}
	if c.Timers.MaxTimers < 0 {
		c.Timers.MaxTimers = 0
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := os.Getenv("TIMERDECK_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "timerdeck", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("timers.tick_interval_ms", cfg.Timers.TickIntervalMS)
	v.Set("timers.max_timers", cfg.Timers.MaxTimers)
	v.Set("keys.actions", cfg.Keys.Actions)
	v.Set("logging.debug", cfg.Logging.Debug)
	v.Set("logging.dir", cfg.Logging.Dir)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
