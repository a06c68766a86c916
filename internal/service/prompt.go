package service

import "fmt"

const (
	promptWithContext = `You are AI Legal Buddy, an expert assistant for Indian Government Schemes. 

Based on these government schemes, answer the user's question clearly and concisely:

%s

Question: %s

Provide a helpful, accurate answer in a friendly tone. Keep it clear and concise.`

	promptWithoutContext = `You are AI Legal Buddy, an expert assistant for Indian Government Schemes.

Question: %s

Provide helpful information about Indian government schemes in a friendly, professional tone.`

	translationPrompt = "Translate this to Hindi, keep scheme names in English:\n\n%s"
)

// ComposePrompt builds the model prompt for a user message, grounding it in
// contextText when there is any.
func ComposePrompt(contextText, userMessage string) string {
	if contextText == "" {
		return fmt.Sprintf(promptWithoutContext, userMessage)
	}
	return fmt.Sprintf(promptWithContext, contextText, userMessage)
}
