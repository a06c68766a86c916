// Package llm wraps the hosted language model APIs behind a single
// prompt-in, text-out Generator.
package llm

import (
	"context"
	"errors"
	"fmt"

	"legal-buddy/pkg/config"

	"go.uber.org/zap"
)

const (
	ProviderGemini   = "gemini"
	ProviderGigaChat = "gigachat"
	ProviderGroq     = "groq"
)

var (
	ErrMissingAPIKey   = errors.New("api key is not set")
	ErrUnknownProvider = errors.New("unknown ai provider")
	ErrEmptyResponse   = errors.New("no response from model")
)

// Generator sends a single prompt to a model and returns its text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Close() error
}

// Provider describes the configured model backend.
type Provider struct {
	Name        string
	DisplayName string
	Label       string
	KeyEnv      string
	APIKey      string
	Model       string
}

// Describe resolves the active provider from configuration without
// contacting it.
func Describe(cfg *config.LLMConfig) (Provider, error) {
	switch cfg.Provider {
	case ProviderGemini, "":
		return Provider{
			Name:        ProviderGemini,
			DisplayName: "Google Gemini",
			Label:       "Gemini",
			KeyEnv:      "GEMINI_API_KEY",
			APIKey:      cfg.Gemini.APIKey,
			Model:       cfg.Gemini.Model,
		}, nil
	case ProviderGigaChat:
		return Provider{
			Name:        ProviderGigaChat,
			DisplayName: "Sber GigaChat",
			Label:       "GigaChat",
			KeyEnv:      "GIGACHAT_API_KEY",
			APIKey:      cfg.GigaChat.APIKey,
			Model:       cfg.GigaChat.Model,
		}, nil
	case ProviderGroq:
		return Provider{
			Name:        ProviderGroq,
			DisplayName: "Groq",
			Label:       "Groq",
			KeyEnv:      "GROQ_API_KEY",
			APIKey:      cfg.Groq.APIKey,
			Model:       cfg.Groq.Model,
		}, nil
	default:
		return Provider{}, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}

// New builds the Generator for the configured provider. It returns
// ErrMissingAPIKey when the provider has no credentials.
func New(ctx context.Context, cfg *config.LLMConfig, logger *zap.Logger) (Generator, error) {
	provider, err := Describe(cfg)
	if err != nil {
		return nil, err
	}

	if provider.APIKey == "" {
		return nil, fmt.Errorf("%s: %w", provider.KeyEnv, ErrMissingAPIKey)
	}

	var gen Generator
	switch provider.Name {
	case ProviderGemini:
		gen, err = NewGemini(ctx, &cfg.Gemini, logger)
	case ProviderGigaChat:
		gen, err = NewGigaChat(ctx, &cfg.GigaChat, logger)
	case ProviderGroq:
		gen, err = NewGroq(&cfg.Groq, logger)
	}
	if err != nil {
		return nil, err
	}

	logger.Info("Language model initialized",
		zap.String("provider", provider.DisplayName),
		zap.String("model", provider.Model),
	)

	return gen, nil
}
