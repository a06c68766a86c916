package llm

import (
	"context"
	"fmt"
	"strings"

	"legal-buddy/pkg/config"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
	"go.uber.org/zap"
)

// Groq talks to Groq's OpenAI-compatible chat completions endpoint.
type Groq struct {
	client openai.Client
	model  string
	logger *zap.Logger
}

func NewGroq(cfg *config.GroqConfig, logger *zap.Logger) (*Groq, error) {
	clientOpts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		// a failed call is a failed turn; the SDK would otherwise retry twice
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(cfg.BaseURL))
	}

	return &Groq{
		client: openai.NewClient(clientOpts...),
		model:  cfg.Model,
		logger: logger,
	}, nil
}

func (g *Groq) Generate(ctx context.Context, prompt string) (string, error) {
	completion, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: shared.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("groq completion failed: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}

func (g *Groq) Close() error {
	return nil
}
