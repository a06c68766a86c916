package service

import (
	"context"
	"fmt"

	"legal-buddy/internal/models"
	"legal-buddy/internal/repository"

	"go.uber.org/zap"
)

// DefaultHistoryLimit is both the default and the maximum page of history.
const DefaultHistoryLimit = 50

type HistoryService struct {
	repo   repository.HistoryRepository
	logger *zap.Logger
}

func NewHistoryService(repo repository.HistoryRepository, logger *zap.Logger) *HistoryService {
	return &HistoryService{
		repo:   repo,
		logger: logger,
	}
}

// Record stores one answered exchange. The write is not cancelled with the
// request that produced it.
func (s *HistoryService) Record(ctx context.Context, userID int64, schemeID *string, message, response string, sources []string, language string) error {
	exchange := &models.ChatExchange{
		UserID:   userID,
		SchemeID: schemeID,
		Message:  message,
		Response: response,
		Sources:  sources,
		Language: language,
	}

	if err := s.repo.Create(context.WithoutCancel(ctx), exchange); err != nil {
		s.logger.Error("Failed to save chat exchange",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return fmt.Errorf("failed to save chat exchange: %w", err)
	}

	s.logger.Debug("Chat exchange saved",
		zap.String("id", exchange.ID.String()),
		zap.Int64("user_id", userID),
	)

	return nil
}

// RecentFor returns the newest exchanges of a user. limit outside
// 1..DefaultHistoryLimit is clamped to DefaultHistoryLimit.
func (s *HistoryService) RecentFor(ctx context.Context, userID int64, limit int) ([]*models.ChatExchange, error) {
	if limit <= 0 || limit > DefaultHistoryLimit {
		limit = DefaultHistoryLimit
	}

	exchanges, err := s.repo.ListByUserID(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load chat history: %w", err)
	}

	return exchanges, nil
}
