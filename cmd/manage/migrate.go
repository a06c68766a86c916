package main

import (
	"context"
	"database/sql"
	"fmt"

	"legal-buddy/internal/repository"
	"legal-buddy/pkg/migrations"
	"legal-buddy/pkg/postgres"
	"legal-buddy/pkg/sqlite"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type migrateFunc func(ctx context.Context, db *sql.DB, dialect string, log *zap.Logger) error

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the chat history schema",
	Long:  `Runs goose migrations against the database selected by HISTORY_DRIVER. The badger driver has no schema.`,
}

func newMigrateCommand(use, short string, fn migrateFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigration(cmd.Context(), fn)
		},
	}
}

func runMigration(ctx context.Context, fn migrateFunc) error {
	switch cfg.History.Driver {
	case repository.DriverSQLite, "":
		db, err := sqlite.Open(ctx, cfg.History.SQLitePath, log)
		if err != nil {
			return err
		}
		defer db.Close()
		return fn(ctx, db, migrations.DialectSQLite, log)

	case repository.DriverPostgres:
		pool, err := postgres.NewPool(ctx, &cfg.Database, log)
		if err != nil {
			return err
		}
		defer pool.Close()

		db := postgres.SQLDB(pool)
		defer db.Close()
		return fn(ctx, db, migrations.DialectPostgres, log)

	case repository.DriverBadger:
		log.Info("Badger history store has no schema, nothing to migrate")
		return nil

	default:
		return fmt.Errorf("%w: %q", repository.ErrUnknownDriver, cfg.History.Driver)
	}
}

func init() {
	migrateCmd.AddCommand(
		newMigrateCommand("up", "Apply all pending migrations", migrations.Up),
		newMigrateCommand("down", "Roll back the latest migration", migrations.Down),
		newMigrateCommand("status", "Show applied and pending migrations", migrations.Status),
	)
	rootCmd.AddCommand(migrateCmd)
}
