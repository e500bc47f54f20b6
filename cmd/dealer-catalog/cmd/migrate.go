package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

const migrateTimeout = 60 * time.Second

var errNoDatabase = errors.New("database.host is not configured")

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	if !cfg.Database.Configured() {
		return errNoDatabase
	}

	ctx, cancel := exitOnSignal(cmd.Context())
	defer cancel()
	ctx, cancelTimeout := context.WithTimeout(ctx, migrateTimeout)
	defer cancelTimeout()

	a, err := newApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.close()

	log.Info("running migrations", "host", cfg.Database.Host)
	if err := a.store.Migrate(ctx); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	log.Info("migrations complete")
	return nil
}
