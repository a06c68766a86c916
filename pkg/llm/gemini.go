package llm

import (
	"context"
	"fmt"
	"strings"

	"legal-buddy/pkg/config"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

type Gemini struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

func NewGemini(ctx context.Context, cfg *config.GeminiConfig, logger *zap.Logger) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize genai client: %w", err)
	}

	return &Gemini{
		client: client,
		model:  cfg.Model,
		logger: logger,
	}, nil
}

func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return "", ErrEmptyResponse
	}

	return strings.TrimSpace(resp.Text()), nil
}

// Close is a no-op; genai.Client holds no resources that need releasing.
func (g *Gemini) Close() error {
	return nil
}
