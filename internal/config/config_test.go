package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/makemecoffee/internal/catalog"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("MAKEMECOFFEE_CONFIG", "")
	return home
}

func TestLoadDefaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, SourceBuiltin, cfg.Catalog.Source)
	require.Equal(t, catalog.DefaultLatency, cfg.Catalog.Latency)
	require.Equal(t, "₽", cfg.UI.CurrencySymbol)
	require.Equal(t, catalog.CategoryHotBeverage, cfg.DefaultCategory())
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, filepath.Join(home, ".local", "state", "makemecoffee", "makemecoffee.log"), cfg.Log.Path)
}

func TestLoadFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
[catalog]
source = "menu.db"
latency = "20ms"

[ui]
currency_symbol = "$"
default_category = "tea"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "menu.db", cfg.Catalog.Source)
	require.Equal(t, 20*time.Millisecond, cfg.Catalog.Latency)
	require.Equal(t, "$", cfg.UI.CurrencySymbol)
	require.Equal(t, catalog.CategoryTea, cfg.DefaultCategory())
}

func TestLoadEnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("MAKEMECOFFEE_LOG_LEVEL", "debug")
	t.Setenv("MAKEMECOFFEE_CATALOG_LATENCY", "0s")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Zero(t, cfg.Catalog.Latency)
}

func TestLoadEnvConfigPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\ncurrency_symbol = \"€\"\n"), 0o600))
	t.Setenv("MAKEMECOFFEE_CONFIG", path)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "€", cfg.UI.CurrencySymbol)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	isolate(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestLoadRejectsUnknownCategory(t *testing.T) {
	isolate(t)
	t.Setenv("MAKEMECOFFEE_UI_DEFAULT_CATEGORY", "soup")
	_, err := Load("")
	require.ErrorIs(t, err, catalog.ErrUnknownCategory)
}

func TestValidate(t *testing.T) {
	cfg := Config{
		Catalog: CatalogConfig{Source: SourceBuiltin, Latency: -time.Second},
		UI:      UIConfig{DefaultCategory: "tea"},
	}
	require.Error(t, cfg.Validate())

	cfg.Catalog.Latency = 0
	require.NoError(t, cfg.Validate())

	cfg.Catalog.Source = " "
	require.Error(t, cfg.Validate())
}

func TestSaveRoundTrip(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	want := Config{
		Catalog: CatalogConfig{Source: "menu.db", Latency: 250 * time.Millisecond},
		UI:      UIConfig{CurrencySymbol: "$", DefaultCategory: "dessert"},
		Log:     LogConfig{Level: "warn", Path: "/tmp/makemecoffee.log"},
	}
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, want, got)
}
