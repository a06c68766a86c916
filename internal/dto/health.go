package dto

type HealthResponse struct {
	Status        string  `json:"status"`
	AIProvider    string  `json:"ai_provider"`
	GeminiStatus  string  `json:"gemini_status"`
	GeminiTest    *string `json:"gemini_test"`
	GeminiModel   string  `json:"gemini_model"`
	SchemesLoaded int     `json:"schemes_loaded"`
	APIKeySet     bool    `json:"api_key_set"`
	APIKeyLength  int     `json:"api_key_length"`
}
