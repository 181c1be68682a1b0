package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/jask/makemecoffee/internal/catalog"
	"github.com/jask/makemecoffee/internal/config"
	"github.com/jask/makemecoffee/internal/database"
	"github.com/jask/makemecoffee/internal/database/repository"
	"github.com/jask/makemecoffee/internal/logging"
	"github.com/jask/makemecoffee/internal/session"
	"github.com/jask/makemecoffee/internal/state"
	"github.com/jask/makemecoffee/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "config file (default $MAKEMECOFFEE_CONFIG or ~/.config/makemecoffee/config.toml)")
	source := flag.String("catalog", "", `menu source: "builtin" or a SQLite file`)
	writeConfig := flag.Bool("write-config", false, "write the effective config and exit")
	flag.Parse()

	if err := run(context.Background(), *configPath, *source, *writeConfig); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run owns every deferred cleanup so that main exits only after they ran.
func run(ctx context.Context, configPath, source string, writeConfig bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return errors.Wrap(err, "config")
	}
	if s := strings.TrimSpace(source); s != "" {
		cfg.Catalog.Source = s
	}

	if writeConfig {
		path := configPath
		if path == "" {
			path = config.DefaultPath()
		}
		if err := config.Save(path, cfg); err != nil {
			return errors.Wrap(err, "write config")
		}
		fmt.Println(path)
		return nil
	}

	logger, err := logging.New(logging.Options{Path: cfg.Log.Path, Level: cfg.Log.Level, Service: "makemecoffee"})
	if err != nil {
		return errors.Wrap(err, "logger")
	}
	defer func() { _ = logger.Sync() }()

	provider, closeProvider, err := catalogProvider(cfg.Catalog)
	if err != nil {
		logger.Error("open catalog", zap.Error(err))
		return errors.Wrap(err, "catalog")
	}
	defer closeProvider()
	logger.Info("starting", zap.String("catalog", cfg.Catalog.Source))

	app := tui.New(ctx, cfg, state.New(provider, session.NewMockAuthenticator()), logger)
	defer app.Close()

	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		logger.Error("ui exited", zap.Error(err))
		return errors.Wrap(err, "ui")
	}
	return nil
}

// catalogProvider returns the built-in menu or one backed by a migrated
// SQLite file. The returned func releases the database.
func catalogProvider(cfg config.CatalogConfig) (catalog.Provider, func(), error) {
	if cfg.Source == "" || cfg.Source == config.SourceBuiltin {
		return catalog.NewStaticProvider(cfg.Latency), func() {}, nil
	}

	db, err := database.Open(cfg.Source)
	if err != nil {
		return nil, nil, err
	}
	if err := database.RunMigrations(db); err != nil {
		_ = db.Close()
		return nil, nil, errors.Wrap(err, "migrate menu")
	}
	closeDB := func() { _ = db.Close() }
	return &catalog.SQLProvider{Items: repository.NewItemRepo(db)}, closeDB, nil
}
