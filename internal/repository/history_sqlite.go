package repository

import (
	"context"
	"database/sql"
	"fmt"

	"legal-buddy/internal/models"

	"github.com/Masterminds/squirrel"
	"go.uber.org/zap"
)

type SQLiteHistoryRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewSQLiteHistoryRepository(db *sql.DB, logger *zap.Logger) *SQLiteHistoryRepository {
	return &SQLiteHistoryRepository{
		db:     db,
		logger: logger,
	}
}

func (r *SQLiteHistoryRepository) Create(ctx context.Context, exchange *models.ChatExchange) error {
	prepareExchange(exchange)

	sources, err := encodeSources(exchange.Sources)
	if err != nil {
		return err
	}

	query := squirrel.Insert(historyTable).
		Columns(historyColumns...).
		Values(exchange.ID.String(), exchange.UserID, exchange.SchemeID, exchange.Message,
			exchange.Response, sources, exchange.Language, exchange.CreatedAt).
		PlaceholderFormat(squirrel.Question)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("failed to insert chat exchange: %w", err)
	}

	return nil
}

func (r *SQLiteHistoryRepository) ListByUserID(ctx context.Context, userID int64, limit int) ([]*models.ChatExchange, error) {
	query := squirrel.Select(historyColumns...).
		From(historyTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "rowid DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Question)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query chat history: %w", err)
	}
	defer rows.Close()

	exchanges := make([]*models.ChatExchange, 0, limit)
	for rows.Next() {
		var ex models.ChatExchange
		var sources string
		if err := rows.Scan(&ex.ID, &ex.UserID, &ex.SchemeID, &ex.Message, &ex.Response,
			&sources, &ex.Language, &ex.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan chat exchange: %w", err)
		}
		ex.Sources = decodeSources(sources)
		exchanges = append(exchanges, &ex)
	}

	return exchanges, rows.Err()
}

func (r *SQLiteHistoryRepository) Close() error {
	return r.db.Close()
}
