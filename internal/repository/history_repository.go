package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"legal-buddy/internal/models"
	"legal-buddy/pkg/badger"
	"legal-buddy/pkg/config"
	"legal-buddy/pkg/migrations"
	"legal-buddy/pkg/postgres"
	"legal-buddy/pkg/sqlite"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverBadger   = "badger"
)

var ErrUnknownDriver = errors.New("unknown history driver")

const historyTable = "chat_history"

var historyColumns = []string{"id", "user_id", "scheme_id", "message", "response", "sources", "language", "created_at"}

// HistoryRepository is the append-only chat history store.
type HistoryRepository interface {
	Create(ctx context.Context, exchange *models.ChatExchange) error
	// ListByUserID returns up to limit exchanges of a user, newest first.
	ListByUserID(ctx context.Context, userID int64, limit int) ([]*models.ChatExchange, error)
	Close() error
}

// NewHistoryRepository opens the storage selected by cfg.Driver and, for the
// SQL drivers, brings the schema up to date.
func NewHistoryRepository(ctx context.Context, cfg *config.Config, logger *zap.Logger) (HistoryRepository, error) {
	switch cfg.History.Driver {
	case DriverSQLite, "":
		db, err := sqlite.Open(ctx, cfg.History.SQLitePath, logger)
		if err != nil {
			return nil, err
		}
		if err := migrations.Up(ctx, db, migrations.DialectSQLite, logger); err != nil {
			db.Close()
			return nil, err
		}
		return NewSQLiteHistoryRepository(db, logger), nil

	case DriverPostgres:
		pool, err := postgres.NewPool(ctx, &cfg.Database, logger)
		if err != nil {
			return nil, err
		}
		sqlDB := postgres.SQLDB(pool)
		err = migrations.Up(ctx, sqlDB, migrations.DialectPostgres, logger)
		sqlDB.Close()
		if err != nil {
			pool.Close()
			return nil, err
		}
		return NewPostgresHistoryRepository(pool, logger), nil

	case DriverBadger:
		store, err := badger.Open(cfg.History.BadgerPath, logger)
		if err != nil {
			return nil, err
		}
		return NewBadgerHistoryRepository(store, logger), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.History.Driver)
	}
}

// prepareExchange fills the id and timestamp of a new exchange and drops
// invalid UTF-8, which postgres rejects in text columns.
func prepareExchange(exchange *models.ChatExchange) {
	exchange.Message = strings.ToValidUTF8(exchange.Message, "")
	exchange.Response = strings.ToValidUTF8(exchange.Response, "")
	sources := make([]string, 0, len(exchange.Sources))
	for _, src := range exchange.Sources {
		sources = append(sources, strings.ToValidUTF8(src, ""))
	}
	exchange.Sources = sources

	if exchange.ID == uuid.Nil {
		exchange.ID = uuid.New()
	}
	if exchange.CreatedAt.IsZero() {
		exchange.CreatedAt = time.Now().UTC()
	}
}

func encodeSources(sources []string) (string, error) {
	if sources == nil {
		sources = []string{}
	}
	data, err := json.Marshal(sources)
	if err != nil {
		return "", fmt.Errorf("failed to encode sources: %w", err)
	}
	return string(data), nil
}

func decodeSources(raw string) []string {
	sources := []string{}
	if raw == "" {
		return sources
	}
	if err := json.Unmarshal([]byte(raw), &sources); err != nil {
		return []string{}
	}
	return sources
}
