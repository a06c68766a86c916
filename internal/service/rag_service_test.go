package service

import (
	"strings"
	"testing"

	"legal-buddy/internal/models"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestFormatSchemeFull(t *testing.T) {
	scheme := &models.Scheme{
		ID:                "x",
		Name:              "PM-KISAN",
		Category:          strPtr("Agriculture"),
		Description:       "Income support",
		Eligibility:       []string{"Small farmers", "Land owners"},
		Benefits:          strPtr("Rs 6000 per year"),
		DocumentsRequired: []string{"Aadhaar", "Bank passbook"},
		HowToApply:        []string{"Visit portal", "Register"},
		OfficialWebsite:   strPtr("https://pmkisan.gov.in"),
		Helpline:          strPtr("155261"),
	}

	want := "Scheme: PM-KISAN\n" +
		"Category: Agriculture\n" +
		"Description: Income support\n" +
		"Eligibility: Small farmers; Land owners\n" +
		"Benefits: Rs 6000 per year\n" +
		"Documents: Aadhaar, Bank passbook\n" +
		"How to Apply: Visit portal; Register\n" +
		"Website: https://pmkisan.gov.in\n" +
		"Helpline: 155261\n" +
		"\n"

	assert.Equal(t, want, FormatScheme(scheme))
}

func TestFormatSchemeMinimal(t *testing.T) {
	scheme := &models.Scheme{Name: "Bare", Description: "Nothing else", Eligibility: []string{}, Benefits: strPtr("")}

	assert.Equal(t, "Scheme: Bare\nCategory: N/A\nDescription: Nothing else\nBenefits: \n\n", FormatScheme(scheme))
}

func TestBuildContextBySchemeID(t *testing.T) {
	rag := NewRAGService(testSchemes(), zap.NewNop())

	ctxText, sources := rag.BuildContext("s2", "anything at all")
	assert.True(t, strings.HasPrefix(ctxText, "Scheme: Soil Health Card\n"))
	assert.Equal(t, 1, strings.Count(ctxText, "Scheme: "))
	assert.Equal(t, []string{""}, sources)
}

func TestBuildContextUnknownSchemeFallsBackToQuery(t *testing.T) {
	rag := NewRAGService(testSchemes(), zap.NewNop())

	ctxText, sources := rag.BuildContext("missing", "hospital")
	assert.Equal(t, 1, strings.Count(ctxText, "Scheme: "))
	assert.Contains(t, ctxText, "Ayushman Bharat")
	assert.Equal(t, []string{""}, sources)
}

func TestBuildContextCapsAtThree(t *testing.T) {
	rag := NewRAGService(testSchemes(), zap.NewNop())

	ctxText, sources := rag.BuildContext("", "farmers")
	assert.Equal(t, 3, strings.Count(ctxText, "Scheme: "))
	assert.Equal(t, []string{"https://pmkisan.gov.in", "", "https://pmfby.gov.in"}, sources)
	assert.NotContains(t, ctxText, "Kisan Credit")

	ctxText, sources = rag.BuildContext("", "")
	assert.Equal(t, 3, strings.Count(ctxText, "Scheme: "))
	assert.Len(t, sources, 3)
}

func TestBuildContextNoMatch(t *testing.T) {
	rag := NewRAGService(testSchemes(), zap.NewNop())

	ctxText, sources := rag.BuildContext("", "What schemes help farmers in Punjab?")
	assert.Equal(t, "", ctxText)
	assert.Equal(t, []string{}, sources)
}

func TestComposePrompt(t *testing.T) {
	withContext := ComposePrompt("Scheme: A\n\n", "What is A?")
	assert.Equal(t, "You are AI Legal Buddy, an expert assistant for Indian Government Schemes. \n\n"+
		"Based on these government schemes, answer the user's question clearly and concisely:\n\n"+
		"Scheme: A\n\n\n\n"+
		"Question: What is A?\n\n"+
		"Provide a helpful, accurate answer in a friendly tone. Keep it clear and concise.", withContext)

	withoutContext := ComposePrompt("", "What is A?")
	assert.Equal(t, "You are AI Legal Buddy, an expert assistant for Indian Government Schemes.\n\n"+
		"Question: What is A?\n\n"+
		"Provide helpful information about Indian government schemes in a friendly, professional tone.", withoutContext)

	assert.Equal(t, withContext, ComposePrompt("Scheme: A\n\n", "What is A?"))
}
