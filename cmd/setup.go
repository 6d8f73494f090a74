package main

import (
	"context"
	"fmt"
	"os"

	"github.com/desertthunder/myflix/internal/repositories"
	"github.com/desertthunder/myflix/internal/shared"
	"github.com/urfave/cli/v3"
)

// SetupConfig writes the embedded example configuration to disk.
func (r *Runner) SetupConfig(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	if err := shared.CreateConfigFile(configPath); err != nil {
		return err
	}

	r.logger.Info("config file created", "path", configPath)
	return r.writePlain("✓ Config written to %s\n", configPath)
}

// SetupDatabase initializes the session database and runs migrations. With
// --reset the schema is rolled back and reapplied, dropping the stored session.
func (r *Runner) SetupDatabase(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	var config *shared.Config
	if _, err := os.Stat(configPath); err == nil {
		if config, err = shared.LoadConfig(configPath); err != nil {
			r.logger.Warn("failed to load config, using defaults", "error", err)
			config = shared.DefaultConfig()
		}
	} else {
		r.logger.Info("config file not found, creating from template", "path", configPath)
		if err := shared.CreateConfigFile(configPath); err != nil {
			r.logger.Warn("failed to create config file, using defaults", "error", err)
		} else {
			r.logger.Info("config file created", "path", configPath)
		}
		config = shared.DefaultConfig()
	}
	config.ApplyEnv(os.Getenv)

	r.logger.Info("initializing database", "path", config.Database.Path)

	db, err := shared.OpenDatabase(config.Database)
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	defer db.Close()

	if cmd.Bool("reset") {
		if err := shared.ResetMigrations(db); err != nil {
			return fmt.Errorf("failed to reset database: %w", err)
		}
		if err := r.session.Clear(); err != nil {
			return err
		}
		r.logger.Info("database reset", "path", config.Database.Path)
		r.writePlain("✓ Stored session cleared\n")
	}

	entries, err := repositories.NewSessionRepository(db).All()
	if err != nil {
		return err
	}

	r.logger.Infof("setup complete for database: %v", config.Database.Path)
	r.writePlain("✓ Database ready at %s\n", config.Database.Path)
	return r.writePlain("Stored session entries: %d\n", len(entries))
}
