package repository

import (
	"context"
	"fmt"

	"legal-buddy/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type PostgresHistoryRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewPostgresHistoryRepository(db *pgxpool.Pool, logger *zap.Logger) *PostgresHistoryRepository {
	return &PostgresHistoryRepository{
		db:     db,
		logger: logger,
	}
}

func buildPostgresInsert(exchange *models.ChatExchange) (string, []interface{}, error) {
	sources, err := encodeSources(exchange.Sources)
	if err != nil {
		return "", nil, err
	}

	return squirrel.Insert(historyTable).
		Columns(historyColumns...).
		Values(exchange.ID.String(), exchange.UserID, exchange.SchemeID, exchange.Message,
			exchange.Response, sources, exchange.Language, exchange.CreatedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func buildPostgresList(userID int64, limit int) (string, []interface{}, error) {
	return squirrel.Select(historyColumns...).
		From(historyTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *PostgresHistoryRepository) Create(ctx context.Context, exchange *models.ChatExchange) error {
	prepareExchange(exchange)

	sql, args, err := buildPostgresInsert(exchange)
	if err != nil {
		return fmt.Errorf("failed to build insert query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("failed to insert chat exchange: %w", err)
	}

	return nil
}

func (r *PostgresHistoryRepository) ListByUserID(ctx context.Context, userID int64, limit int) ([]*models.ChatExchange, error) {
	sql, args, err := buildPostgresList(userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
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

func (r *PostgresHistoryRepository) Close() error {
	r.db.Close()
	return nil
}
