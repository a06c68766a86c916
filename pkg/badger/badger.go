package badger

import (
	"fmt"
	"os"

	"github.com/timshannon/badgerhold/v4"
	"go.uber.org/zap"
)

// Open opens the badgerhold store rooted at dir.
func Open(dir string, logger *zap.Logger) (*badgerhold.Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	options := badgerhold.DefaultOptions
	options.Dir = dir
	options.ValueDir = dir
	options.Logger = nil

	store, err := badgerhold.Open(options)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger database: %w", err)
	}

	logger.Info("Badger database opened", zap.String("path", dir))

	return store, nil
}
