package service

import (
	"context"

	"legal-buddy/pkg/markdown"

	"go.uber.org/zap"
)

type ChatInput struct {
	Message  string
	Language string
	UserID   int64
	SchemeID *string
}

type ChatResult struct {
	Answer     string
	AnswerHTML string
	Sources    []string
}

// ChatService runs one chat turn: context, prompt, answer, history.
type ChatService struct {
	rag     *RAGService
	answers *AnswerService
	history *HistoryService
	logger  *zap.Logger
}

func NewChatService(rag *RAGService, answers *AnswerService, history *HistoryService, logger *zap.Logger) *ChatService {
	return &ChatService{
		rag:     rag,
		answers: answers,
		history: history,
		logger:  logger,
	}
}

// Chat answers an already validated user message. It returns
// ErrNotConfigured when no model is set up and ErrUnavailable when the model
// fails. History failures are logged and do not fail the turn.
func (s *ChatService) Chat(ctx context.Context, in ChatInput) (*ChatResult, error) {
	if !s.answers.Configured() {
		return nil, ErrNotConfigured
	}

	schemeID := ""
	if in.SchemeID != nil {
		schemeID = *in.SchemeID
	}

	contextText, sources := s.rag.BuildContext(schemeID, in.Message)
	s.logger.Debug("Context built",
		zap.Int("context_length", len(contextText)),
		zap.Int("sources", len(sources)),
	)

	answer, err := s.answers.Answer(ctx, ComposePrompt(contextText, in.Message), in.Language)
	if err != nil {
		return nil, err
	}

	// best-effort; the error is already logged
	_ = s.history.Record(ctx, in.UserID, in.SchemeID, in.Message, answer, sources, in.Language)

	return &ChatResult{
		Answer:     answer,
		AnswerHTML: markdown.ToHTML(answer),
		Sources:    sources,
	}, nil
}
