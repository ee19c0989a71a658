package app

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hance08/coin/internal/config"
	"github.com/hance08/coin/internal/constants"
	"github.com/hance08/coin/internal/service"
	"github.com/hance08/coin/internal/store"
	"github.com/pterm/pterm"
)

type App struct {
	Service *service.Service
	Store   store.Repository
	Logger  *pterm.Logger
	DBPath  string
}

// NewApp initialize config, logger, database and services, then return App
// entity with a cleanup that closes the database
func NewApp(cfg *config.Config, migrationFS fs.FS) (*App, func(), error) {
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, nil, err
	}
	logger := pterm.DefaultLogger.WithLevel(level)

	dbPath, err := ResolveDBPath(cfg)
	if err != nil {
		return nil, nil, err
	}

	dbStore, err := store.NewStore(dbPath, migrationFS)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	logger.Debug("database opened", logger.Args("path", dbPath))

	svc := service.NewService(dbStore, cfg, logger)

	cleanup := func() {
		if err := dbStore.Close(); err != nil {
			logger.Error("failed to close database", logger.Args("error", err))
		}
	}

	return &App{
		Service: svc,
		Store:   dbStore,
		Logger:  logger,
		DBPath:  dbPath,
	}, cleanup, nil
}

// ResolveDBPath returns the configured database path with "~" expanded, or
// the default file in the app data directory.
func ResolveDBPath(cfg *config.Config) (string, error) {
	if cfg.Database.Path == "" {
		appDir, err := DataDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(appDir, constants.DefaultDBName), nil
	}

	path, err := ExpandPath(cfg.Database.Path)
	if err != nil {
		return "", fmt.Errorf("failed to expand database path: %w", err)
	}
	return path, nil
}

// DataDir is where the config file and the default database live.
func DataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, "."+constants.AppName), nil
	}

	return filepath.Join(configDir, constants.AppName), nil
}

func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return home, nil
		}
		if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~\\") {
			return filepath.Join(home, path[2:]), nil
		}
	}
	return path, nil
}
