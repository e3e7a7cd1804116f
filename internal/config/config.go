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
	Database DatabaseConfig
	Picker   PickerConfig
	UI       UIConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// PickerConfig holds range-picker behavior settings.
type PickerConfig struct {
	Granularity    string
	BlackoutPolicy string // "clamp" keeps a newly-blocked start date, "clear" reverts it
}

// UIConfig holds presentation settings.
type UIConfig struct {
	DateFormat  string
	Timezone    string
	ShowBoth    bool // render both calendar panes even while only one is active
	AutoAdvance bool // move focus to the end pane after picking a start date
}

// Load reads configuration from file and env. Env var overrides use prefix RANGEPICK_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "rangepick", "rangepick.db"))
	v.SetDefault("picker.granularity", "date")
	v.SetDefault("picker.blackout_policy", "clamp")
	v.SetDefault("ui.date_format", "2006-01-02")
	v.SetDefault("ui.timezone", "UTC")
	v.SetDefault("ui.show_both", true)
	v.SetDefault("ui.auto_advance", true)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("RANGEPICK_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "rangepick"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("RANGEPICK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if
// needed. Used by the TUI settings commands.
func Save(cfg Config) error {
	path := os.Getenv("RANGEPICK_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "rangepick", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("picker.granularity", cfg.Picker.Granularity)
	v.Set("picker.blackout_policy", cfg.Picker.BlackoutPolicy)
	v.Set("ui.date_format", cfg.UI.DateFormat)
	v.Set("ui.timezone", cfg.UI.Timezone)
	v.Set("ui.show_both", cfg.UI.ShowBoth)
	v.Set("ui.auto_advance", cfg.UI.AutoAdvance)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
