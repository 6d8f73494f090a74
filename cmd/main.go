package main

import (
	"context"
	"errors"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/myflix/internal/repositories"
	"github.com/desertthunder/myflix/internal/services"
	"github.com/desertthunder/myflix/internal/session"
	"github.com/desertthunder/myflix/internal/shared"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Warn("failed to load .env", "error", err)
	}

	configPath := os.Getenv(shared.EnvConfigPath)
	if configPath == "" {
		configPath = "config.toml"
	}

	config := shared.DefaultConfig()
	if _, err := os.Stat(configPath); err == nil {
		if loadedConfig, err := shared.LoadConfig(configPath); err == nil {
			config = loadedConfig
		} else {
			logger.Warn("failed to load config, using defaults", "path", configPath, "error", err)
		}
	}
	config.ApplyEnv(os.Getenv)
	shared.SetLogLevel(logger, config.Log.Level)

	if err := config.Validate(); err != nil {
		logger.Fatalf("configuration error: %v", err)
	}

	store, closeStore := openSession(config, logger)
	defer closeStore()

	client := services.NewClient(services.ClientOpts{
		BaseURL:   config.API.BaseURL,
		Session:   store,
		RateLimit: config.API.RateLimit,
		UserAgent: config.API.UserAgent,
		Timeout:   config.API.RequestTimeout(),
		Logger:    logger,
	})

	runner := NewRunner(RunnerOpts{
		Config:     config,
		ConfigPath: configPath,
		API:        client,
		Raw:        client,
		Session:    store,
		Logger:     logger,
	})

	app := &cli.Command{
		Name:     "myflix",
		Usage:    "Browse the myFlix movie catalog and manage your favorites",
		Version:  "0.1.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		closeStore()
		logger.Fatalf("%v", err)
	}
}

// openSession opens the persisted session. When the database is unusable the
// session only lives for this process.
func openSession(config *shared.Config, logger *log.Logger) (session.Store, func()) {
	db, err := shared.OpenDatabase(config.Database)
	if err != nil {
		logger.Warn("session database unavailable, using an in-memory session", "path", config.Database.Path, "error", err)
		return session.NewMemoryStore(), func() {}
	}

	store, err := session.OpenPersistentStore(repositories.NewSessionRepository(db))
	if err != nil {
		logger.Warn("failed to read stored session", "error", err)
		db.Close()
		return session.NewMemoryStore(), func() {}
	}
	return store, func() { db.Close() }
}
