package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Board BoardConfig
	UI    UIConfig
	Log   LogConfig
}

// BoardConfig holds the zone layout and where the seed comes from.
type BoardConfig struct {
	Zones    []string
	SeedFile string `mapstructure:"seed_file"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme     string
	Mouse     bool
	AltScreen bool `mapstructure:"alt_screen"`
}

// LogConfig points the debug log at a file. Empty disables logging.
type LogConfig struct {
	File string
}

var Themes = []string{"classic", "neon", "mono"}

// Load reads configuration from file and env. Env var overrides use prefix DROPBOARD_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("board.zones", []string{"today", "tomorrow"})
	v.SetDefault("board.seed_file", "")
	v.SetDefault("ui.theme", "classic")
	v.SetDefault("ui.mouse", true)
	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("log.file", "")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("DROPBOARD_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "dropboard"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("DROPBOARD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// an explicitly named file must exist; the default location is optional
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Validate checks the settings the board cannot run without.
func (c Config) Validate() error {
	if len(c.Board.Zones) == 0 {
		return errors.New("board.zones: at least one zone is required")
	}
	seen := make(map[string]bool, len(c.Board.Zones))
	for _, z := range c.Board.Zones {
		if strings.TrimSpace(z) == "" {
			return errors.New("board.zones: blank zone name")
		}
		if seen[z] {
			return fmt.Errorf("board.zones: duplicate zone %q", z)
		}
		seen[z] = true
	}
	for _, t := range Themes {
		if strings.EqualFold(c.UI.Theme, t) {
			return nil
		}
	}
	return fmt.Errorf("ui.theme: unknown theme %q (want one of %s)", c.UI.Theme, strings.Join(Themes, ", "))
}
