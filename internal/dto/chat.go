package dto

type ChatRequest struct {
	Message  string  `json:"message" validate:"required"`
	Language *string `json:"language"`
	UserID   int64   `json:"user_id"`
	SchemeID *string `json:"scheme_id"`
}

type ChatResponse struct {
	Success    bool     `json:"success"`
	Answer     string   `json:"answer"`
	AnswerHTML string   `json:"answer_html,omitempty"`
	Sources    []string `json:"sources"`
	Debug      string   `json:"debug,omitempty"`
}

type ChatHistoryItem struct {
	Message   string   `json:"message"`
	Response  string   `json:"response"`
	Sources   []string `json:"sources"`
	Timestamp string   `json:"timestamp"`
}

type ChatHistoryResponse struct {
	Success bool              `json:"success"`
	History []ChatHistoryItem `json:"history"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
