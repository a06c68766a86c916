package service

import (
	"context"
	"errors"
	"sync"

	"legal-buddy/internal/models"
	"legal-buddy/internal/repository"
	"legal-buddy/pkg/llm"

	"go.uber.org/zap"
)

type fakeReply struct {
	text string
	err  error
}

// fakeGenerator replays scripted replies and records every prompt.
type fakeGenerator struct {
	mu      sync.Mutex
	replies []fakeReply
	prompts []string
}

func (g *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.prompts = append(g.prompts, prompt)
	if len(g.replies) == 0 {
		return "", errors.New("no scripted reply")
	}
	r := g.replies[0]
	g.replies = g.replies[1:]
	return r.text, r.err
}

func (g *fakeGenerator) Close() error { return nil }

type fakeHistoryRepository struct {
	mu        sync.Mutex
	exchanges []*models.ChatExchange
	createErr error
	ctxErr    error
	lastLimit int
}

func (r *fakeHistoryRepository) Create(ctx context.Context, exchange *models.ChatExchange) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ctxErr = ctx.Err()
	if r.createErr != nil {
		return r.createErr
	}
	r.exchanges = append(r.exchanges, exchange)
	return nil
}

func (r *fakeHistoryRepository) ListByUserID(ctx context.Context, userID int64, limit int) ([]*models.ChatExchange, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastLimit = limit
	out := make([]*models.ChatExchange, 0)
	for i := len(r.exchanges) - 1; i >= 0 && len(out) < limit; i-- {
		if r.exchanges[i].UserID == userID {
			out = append(out, r.exchanges[i])
		}
	}
	return out, nil
}

func (r *fakeHistoryRepository) Close() error { return nil }

var _ repository.HistoryRepository = (*fakeHistoryRepository)(nil)
var _ llm.Generator = (*fakeGenerator)(nil)

func strPtr(s string) *string { return &s }

func testSchemes() *repository.SchemeRepository {
	return repository.NewSchemeRepository([]*models.Scheme{
		{ID: "s1", Name: "PM-KISAN", Category: strPtr("Agriculture"), Description: "Income support for farmers",
			OfficialWebsite: strPtr("https://pmkisan.gov.in")},
		{ID: "s2", Name: "Soil Health Card", Category: strPtr("Agriculture"), Description: "Soil testing for farmers"},
		{ID: "s3", Name: "Fasal Bima", Category: strPtr("Agriculture"), Description: "Crop insurance for farmers",
			OfficialWebsite: strPtr("https://pmfby.gov.in")},
		{ID: "s4", Name: "Kisan Credit", Category: strPtr("Agriculture"), Description: "Credit for farmers"},
		{ID: "s5", Name: "Ayushman Bharat", Category: strPtr("Health"), Description: "Hospital cover"},
	}, zap.NewNop())
}

func testProvider() llm.Provider {
	return llm.Provider{
		Name:        llm.ProviderGemini,
		DisplayName: "Google Gemini",
		Label:       "Gemini",
		KeyEnv:      "GEMINI_API_KEY",
		APIKey:      "secret-key",
		Model:       "gemini-1.5-flash",
	}
}
