package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/spf13/viper"

	"github.com/jask/makemecoffee/internal/catalog"
)

// Config holds application configuration.
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	UI      UIConfig      `mapstructure:"ui"`
	Log     LogConfig     `mapstructure:"log"`
}

// CatalogConfig selects where the menu comes from.
type CatalogConfig struct {
	// Source is "builtin" or a path to a SQLite menu file.
	Source  string        `mapstructure:"source"`
	Latency time.Duration `mapstructure:"latency"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	CurrencySymbol  string `mapstructure:"currency_symbol"`
	DefaultCategory string `mapstructure:"default_category"`
}

// LogConfig holds logger settings. An empty path disables logging.
type LogConfig struct {
	Level string `mapstructure:"level"`
	Path  string `mapstructure:"path"`
}

// SourceBuiltin selects the in-memory menu.
const SourceBuiltin = "builtin"

// DefaultPath is where Load looks when neither an explicit path nor
// MAKEMECOFFEE_CONFIG is given.
func DefaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "makemecoffee", "config.toml")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("catalog.source", SourceBuiltin)
	v.SetDefault("catalog.latency", catalog.DefaultLatency.String())
	v.SetDefault("ui.currency_symbol", "₽")
	v.SetDefault("ui.default_category", string(catalog.CategoryHotBeverage))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.path", filepath.Join(os.Getenv("HOME"), ".local", "state", "makemecoffee", "makemecoffee.log"))
}

// Load reads configuration from file and env. Env var overrides use prefix MAKEMECOFFEE_.
// An explicit path must exist; the default location is optional.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("toml")

	explicit := path != ""
	if !explicit {
		path = os.Getenv("MAKEMECOFFEE_CONFIG")
		explicit = path != ""
	}
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Dir(DefaultPath()))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("MAKEMECOFFEE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, errors.Wrap(err, "read config")
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "unmarshal config")
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the UI cannot work with.
func (c Config) Validate() error {
	if c.Catalog.Latency < 0 {
		return errors.Errorf("catalog.latency must not be negative, got %s", c.Catalog.Latency)
	}
	if strings.TrimSpace(c.Catalog.Source) == "" {
		return errors.New("catalog.source is required")
	}
	if _, err := catalog.ParseCategory(c.UI.DefaultCategory); err != nil {
		return errors.Wrap(err, "ui.default_category")
	}
	return nil
}

// DefaultCategory returns the parsed ui.default_category, falling back to hot beverages.
func (c Config) DefaultCategory() catalog.Category {
	cat, err := catalog.ParseCategory(c.UI.DefaultCategory)
	if err != nil {
		return catalog.CategoryHotBeverage
	}
	return cat
}

// Save writes the provided config to path, creating the directory if needed.
// An empty path writes to DefaultPath.
func Save(path string, cfg Config) error {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "mkdir config dir")
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("catalog.source", cfg.Catalog.Source)
	v.Set("catalog.latency", cfg.Catalog.Latency.String())
	v.Set("ui.currency_symbol", cfg.UI.CurrencySymbol)
	v.Set("ui.default_category", cfg.UI.DefaultCategory)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.path", cfg.Log.Path)

	if err := v.WriteConfigAs(path); err != nil {
		return errors.Wrap(err, "write config")
	}
	return nil
}
