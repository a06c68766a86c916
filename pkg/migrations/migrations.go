// Package migrations holds the chat history schema for the SQL history
// drivers and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"sync"

	"legal-buddy/pkg/logger"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// goose keeps dialect, base FS and logger in package globals
var mu sync.Mutex

func Up(ctx context.Context, db *sql.DB, dialect string, log *zap.Logger) error {
	return run(dialect, log, func(dir string) error {
		return goose.UpContext(ctx, db, dir)
	})
}

func Down(ctx context.Context, db *sql.DB, dialect string, log *zap.Logger) error {
	return run(dialect, log, func(dir string) error {
		return goose.DownContext(ctx, db, dir)
	})
}

func Status(ctx context.Context, db *sql.DB, dialect string, log *zap.Logger) error {
	return run(dialect, log, func(dir string) error {
		return goose.StatusContext(ctx, db, dir)
	})
}

func run(dialect string, log *zap.Logger, fn func(dir string) error) error {
	dir, err := dirFor(dialect)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(logger.NewGooseLogger(log))

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := fn(dir); err != nil {
		return fmt.Errorf("goose %s migration failed: %w", dialect, err)
	}

	return nil
}

func dirFor(dialect string) (string, error) {
	switch dialect {
	case DialectPostgres:
		return "postgres", nil
	case DialectSQLite:
		return "sqlite", nil
	default:
		return "", fmt.Errorf("unsupported migration dialect %q", dialect)
	}
}
