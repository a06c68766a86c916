package repository

import (
	"context"
	"fmt"

	"legal-buddy/internal/models"

	"github.com/timshannon/badgerhold/v4"
	"go.uber.org/zap"
)

// BadgerHistoryRepository keeps chat history in an embedded badger store,
// indexed by user id.
type BadgerHistoryRepository struct {
	store  *badgerhold.Store
	logger *zap.Logger
}

func NewBadgerHistoryRepository(store *badgerhold.Store, logger *zap.Logger) *BadgerHistoryRepository {
	return &BadgerHistoryRepository{
		store:  store,
		logger: logger,
	}
}

func (r *BadgerHistoryRepository) Create(ctx context.Context, exchange *models.ChatExchange) error {
	prepareExchange(exchange)

	if err := r.store.Insert(exchange.ID, exchange); err != nil {
		return fmt.Errorf("failed to insert chat exchange: %w", err)
	}

	return nil
}

func (r *BadgerHistoryRepository) ListByUserID(ctx context.Context, userID int64, limit int) ([]*models.ChatExchange, error) {
	var records []models.ChatExchange
	query := badgerhold.Where("UserID").Eq(userID).Index("UserID").
		SortBy("CreatedAt").Reverse().
		Limit(limit)

	if err := r.store.Find(&records, query); err != nil {
		return nil, fmt.Errorf("failed to query chat history: %w", err)
	}

	exchanges := make([]*models.ChatExchange, 0, len(records))
	for i := range records {
		if records[i].Sources == nil {
			records[i].Sources = []string{}
		}
		exchanges = append(exchanges, &records[i])
	}

	return exchanges, nil
}

func (r *BadgerHistoryRepository) Close() error {
	return r.store.Close()
}
