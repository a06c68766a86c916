package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAnswerEnglishSingleCall(t *testing.T) {
	gen := &fakeGenerator{replies: []fakeReply{{text: "PM-KISAN gives Rs 6000."}}}
	svc := NewAnswerService(gen, testProvider(), zap.NewNop())

	answer, err := svc.Answer(context.Background(), "prompt", LanguageEnglish)
	require.NoError(t, err)
	assert.Equal(t, "PM-KISAN gives Rs 6000.", answer)
	assert.Equal(t, []string{"prompt"}, gen.prompts)
}

func TestAnswerOtherLanguageUntouched(t *testing.T) {
	gen := &fakeGenerator{replies: []fakeReply{{text: "answer"}}}
	svc := NewAnswerService(gen, testProvider(), zap.NewNop())

	answer, err := svc.Answer(context.Background(), "prompt", "tamil")
	require.NoError(t, err)
	assert.Equal(t, "answer", answer)
	assert.Len(t, gen.prompts, 1)
}

func TestAnswerHindiTranslates(t *testing.T) {
	gen := &fakeGenerator{replies: []fakeReply{{text: "Scheme A helps farmers."}, {text: "Scheme A किसानों की मदद करती है।"}}}
	svc := NewAnswerService(gen, testProvider(), zap.NewNop())

	answer, err := svc.Answer(context.Background(), "prompt", LanguageHindi)
	require.NoError(t, err)
	assert.Equal(t, "Scheme A किसानों की मदद करती है।", answer)
	require.Len(t, gen.prompts, 2)
	assert.Equal(t, "Translate this to Hindi, keep scheme names in English:\n\nScheme A helps farmers.", gen.prompts[1])
}

func TestAnswerTranslationFailure(t *testing.T) {
	gen := &fakeGenerator{replies: []fakeReply{{text: "English answer"}, {err: errors.New("quota exceeded")}}}
	svc := NewAnswerService(gen, testProvider(), zap.NewNop())

	answer, err := svc.Answer(context.Background(), "prompt", LanguageHindi)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Empty(t, answer)
}

func TestAnswerFailures(t *testing.T) {
	tests := []struct {
		name  string
		reply fakeReply
	}{
		{"call error", fakeReply{err: errors.New("timeout")}},
		{"empty text", fakeReply{text: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &fakeGenerator{replies: []fakeReply{tt.reply}}
			svc := NewAnswerService(gen, testProvider(), zap.NewNop())

			_, err := svc.Answer(context.Background(), "prompt", LanguageHindi)
			assert.ErrorIs(t, err, ErrUnavailable)
			assert.Len(t, gen.prompts, 1)
		})
	}
}

func TestAnswerNotConfigured(t *testing.T) {
	svc := NewAnswerService(nil, testProvider(), zap.NewNop())

	assert.False(t, svc.Configured())
	_, err := svc.Answer(context.Background(), "prompt", LanguageEnglish)
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Nil(t, svc.Probe(context.Background()))

	assert.Equal(t, "Gemini API key not configured. Please set GEMINI_API_KEY environment variable.", svc.NotConfiguredMessage())
	assert.Equal(t, "Gemini API not configured. API Key length: 10", svc.NotConfiguredDebug())
}

func TestProbe(t *testing.T) {
	gen := &fakeGenerator{replies: []fakeReply{{text: "API working"}, {err: errors.New("down")}}}
	svc := NewAnswerService(gen, testProvider(), zap.NewNop())

	result := svc.Probe(context.Background())
	require.NotNil(t, result)
	assert.Equal(t, "working", *result)
	assert.Equal(t, "Say 'API working'", gen.prompts[0])

	result = svc.Probe(context.Background())
	require.NotNil(t, result)
	assert.Equal(t, "failed", *result)
}

func TestFallbackMessage(t *testing.T) {
	assert.Equal(t, "I apologize, but I'm having trouble processing your request right now. Please try again.", FallbackMessage("english"))
	assert.Equal(t, FallbackMessage("hindi"), FallbackMessage("tamil"))
	assert.Contains(t, FallbackMessage("hindi"), "मुझे खेद है")
}
