package models

import (
	"time"

	"github.com/google/uuid"
)

// ChatExchange is one answered chat turn.
type ChatExchange struct {
	ID        uuid.UUID `db:"id" badgerhold:"key"`
	UserID    int64     `db:"user_id" badgerhold:"index"`
	SchemeID  *string   `db:"scheme_id"`
	Message   string    `db:"message"`
	Response  string    `db:"response"`
	Sources   []string  `db:"sources"` // stored as a JSON array in SQL tables
	Language  string    `db:"language"`
	CreatedAt time.Time `db:"created_at"`
}
