// Package config loads wordgrid settings from defaults, an optional TOML
// file, WORDGRID_* environment variables and bound command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/wordgrid/internal/logging"
)

// EnvPrefix is prepended to every environment override, e.g. WORDGRID_SEARCH_WORD.
const EnvPrefix = "WORDGRID"

// Keys shared by defaults, flag bindings and the config file.
const (
	KeySearchWord      = "search.word"
	KeySearchCrossWord = "search.cross_word"
	KeySearchWorkers   = "search.workers"
	KeyLogLevel        = "log.level"
	KeyLogFormat       = "log.format"
	KeyRenderHighlight = "render.highlight"
)

// Config holds application configuration.
type Config struct {
	Search SearchConfig
	Log    LogConfig
	Render RenderConfig
}

// SearchConfig selects the words to look for and the worker count.
type SearchConfig struct {
	Word      string
	CrossWord string `mapstructure:"cross_word"`
	Workers   int
}

// LogConfig holds slog settings.
type LogConfig struct {
	Level  string
	Format string
}

// RenderConfig holds output settings.
type RenderConfig struct {
	Highlight bool
}

// New returns a viper instance with defaults and environment overrides
// installed. Callers bind flags on it before calling Load.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeySearchWord, "XMAS")
	v.SetDefault(KeySearchCrossWord, "MAS")
	v.SetDefault(KeySearchWorkers, 1)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyRenderHighlight, false)

	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the config file and unmarshals v into a validated Config.
// An explicit path (or WORDGRID_CONFIG) must exist; otherwise
// $XDG_CONFIG_HOME/wordgrid/config.toml is read if present.
func Load(v *viper.Viper, path string) (Config, error) {
	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "wordgrid"))
		}
		v.SetConfigName("config")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate rejects settings no search could run with. Word shape rules
// (odd cross word) are left to the search itself.
func (c Config) Validate() error {
	if c.Search.Word == "" {
		return errors.New("search.word must not be empty")
	}
	if c.Search.CrossWord == "" {
		return errors.New("search.cross_word must not be empty")
	}
	if c.Search.Workers < 1 {
		return fmt.Errorf("search.workers must be at least 1, got %d", c.Search.Workers)
	}

	return logging.Validate(c.Log.Level, c.Log.Format)
}
