package service

import (
	"context"
	"errors"
	"fmt"

	"legal-buddy/pkg/llm"

	"go.uber.org/zap"
)

const (
	LanguageEnglish = "english"
	LanguageHindi   = "hindi"

	healthProbePrompt = "Say 'API working'"

	fallbackEnglish = "I apologize, but I'm having trouble processing your request right now. Please try again."
	fallbackHindi   = "मुझे खेद है, लेकिन मुझे आपके अनुरोध को संसाधित करने में समस्या हो रही है। कृपया पुनः प्रयास करें।"
)

var (
	ErrNotConfigured = errors.New("language model is not configured")
	ErrUnavailable   = errors.New("language model is unavailable")
)

// AnswerService turns a prompt into a final answer, translating it to Hindi
// when asked. The generator may be nil, in which case every call reports
// ErrNotConfigured.
type AnswerService struct {
	gen      llm.Generator
	provider llm.Provider
	logger   *zap.Logger
}

func NewAnswerService(gen llm.Generator, provider llm.Provider, logger *zap.Logger) *AnswerService {
	return &AnswerService{
		gen:      gen,
		provider: provider,
		logger:   logger,
	}
}

func (s *AnswerService) Configured() bool {
	return s.gen != nil
}

func (s *AnswerService) Provider() llm.Provider {
	return s.provider
}

func (s *AnswerService) Model() string {
	return s.provider.Model
}

// Answer asks the model once and, for Hindi, once more to translate. Any
// failure of either call is ErrUnavailable; the untranslated answer is not
// returned in that case.
func (s *AnswerService) Answer(ctx context.Context, prompt, language string) (string, error) {
	if s.gen == nil {
		return "", ErrNotConfigured
	}

	s.logger.Debug("Sending prompt to model",
		zap.String("provider", s.provider.Name),
		zap.String("model", s.provider.Model),
		zap.Int("prompt_length", len(prompt)),
	)

	answer, err := s.generate(ctx, prompt)
	if err != nil {
		return "", err
	}

	if language != LanguageHindi {
		return answer, nil
	}

	s.logger.Debug("Translating answer to Hindi", zap.Int("answer_length", len(answer)))
	translated, err := s.generate(ctx, fmt.Sprintf(translationPrompt, answer))
	if err != nil {
		return "", fmt.Errorf("translation: %w", err)
	}

	return translated, nil
}

func (s *AnswerService) generate(ctx context.Context, prompt string) (string, error) {
	text, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		s.logger.Error("Model call failed", zap.String("provider", s.provider.Name), zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if text == "" {
		s.logger.Warn("Model returned an empty answer", zap.String("provider", s.provider.Name))
		return "", fmt.Errorf("%w: %v", ErrUnavailable, llm.ErrEmptyResponse)
	}
	return text, nil
}

// Probe makes a trial call for the health endpoint. It returns nil when no
// model is configured, otherwise "working" or "failed".
func (s *AnswerService) Probe(ctx context.Context) *string {
	if s.gen == nil {
		return nil
	}

	result := "working"
	if _, err := s.Answer(ctx, healthProbePrompt, LanguageEnglish); err != nil {
		result = "failed"
	}
	return &result
}

// FallbackMessage is the apology shown when the model is unavailable:
// English for "english", Hindi for every other language.
func FallbackMessage(language string) string {
	if language == LanguageEnglish {
		return fallbackEnglish
	}
	return fallbackHindi
}

// NotConfiguredMessage is the answer text returned while no model is set up.
func (s *AnswerService) NotConfiguredMessage() string {
	return fmt.Sprintf("%s API key not configured. Please set %s environment variable.", s.provider.Label, s.provider.KeyEnv)
}

// NotConfiguredDebug explains the configuration problem for the debug field.
func (s *AnswerService) NotConfiguredDebug() string {
	return fmt.Sprintf("%s API not configured. API Key length: %d", s.provider.Label, len(s.provider.APIKey))
}
