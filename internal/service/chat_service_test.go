package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestChatService(gen *fakeGenerator, repo *fakeHistoryRepository) *ChatService {
	logger := zap.NewNop()
	var answers *AnswerService
	if gen == nil {
		answers = NewAnswerService(nil, testProvider(), logger)
	} else {
		answers = NewAnswerService(gen, testProvider(), logger)
	}
	return NewChatService(
		NewRAGService(testSchemes(), logger),
		answers,
		NewHistoryService(repo, logger),
		logger,
	)
}

func TestChatSchemeScoped(t *testing.T) {
	gen := &fakeGenerator{replies: []fakeReply{{text: "**PM-KISAN** pays Rs 6000."}}}
	repo := &fakeHistoryRepository{}
	svc := newTestChatService(gen, repo)

	res, err := svc.Chat(context.Background(), ChatInput{
		Message:  "How much does it pay?",
		Language: LanguageEnglish,
		UserID:   42,
		SchemeID: strPtr("s1"),
	})
	require.NoError(t, err)

	assert.Equal(t, "**PM-KISAN** pays Rs 6000.", res.Answer)
	assert.Contains(t, res.AnswerHTML, "<strong>PM-KISAN</strong>")
	assert.Equal(t, []string{"https://pmkisan.gov.in"}, res.Sources)

	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "Scheme: PM-KISAN\n")
	assert.True(t, strings.HasSuffix(gen.prompts[0], "Question: How much does it pay?\n\nProvide a helpful, accurate answer in a friendly tone. Keep it clear and concise."))

	require.Len(t, repo.exchanges, 1)
	ex := repo.exchanges[0]
	assert.Equal(t, int64(42), ex.UserID)
	assert.Equal(t, "How much does it pay?", ex.Message)
	assert.Equal(t, "english", ex.Language)
	assert.Equal(t, []string{"https://pmkisan.gov.in"}, ex.Sources)
}

func TestChatWithoutContextUsesGenericPrompt(t *testing.T) {
	gen := &fakeGenerator{replies: []fakeReply{{text: "Several schemes exist."}}}
	svc := newTestChatService(gen, &fakeHistoryRepository{})

	res, err := svc.Chat(context.Background(), ChatInput{Message: "What schemes help farmers in Punjab?", Language: LanguageEnglish})
	require.NoError(t, err)
	assert.Equal(t, []string{}, res.Sources)
	assert.NotContains(t, gen.prompts[0], "Based on these government schemes")
}

func TestChatNotConfigured(t *testing.T) {
	repo := &fakeHistoryRepository{}
	svc := newTestChatService(nil, repo)

	_, err := svc.Chat(context.Background(), ChatInput{Message: "hello"})
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Empty(t, repo.exchanges)
}

func TestChatUnavailableRecordsNothing(t *testing.T) {
	gen := &fakeGenerator{replies: []fakeReply{{err: errors.New("503")}}}
	repo := &fakeHistoryRepository{}
	svc := newTestChatService(gen, repo)

	_, err := svc.Chat(context.Background(), ChatInput{Message: "hello", Language: LanguageHindi})
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Empty(t, repo.exchanges)
}

func TestChatPassesLanguageThrough(t *testing.T) {
	gen := &fakeGenerator{replies: []fakeReply{{text: "answer"}}}
	repo := &fakeHistoryRepository{}
	svc := newTestChatService(gen, repo)

	_, err := svc.Chat(context.Background(), ChatInput{Message: "hello", Language: ""})
	require.NoError(t, err)
	assert.Len(t, gen.prompts, 1)
	require.Len(t, repo.exchanges, 1)
	assert.Equal(t, "", repo.exchanges[0].Language)
}

func TestChatSurvivesHistoryFailure(t *testing.T) {
	gen := &fakeGenerator{replies: []fakeReply{{text: "fine"}}}
	svc := newTestChatService(gen, &fakeHistoryRepository{createErr: errors.New("locked")})

	res, err := svc.Chat(context.Background(), ChatInput{Message: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "fine", res.Answer)
}
