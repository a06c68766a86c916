package handlers

import (
	"legal-buddy/internal/dto"
	"legal-buddy/internal/repository"
	"legal-buddy/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type HealthHandler struct {
	answerService *service.AnswerService
	schemes       *repository.SchemeRepository
	logger        *zap.Logger
}

func NewHealthHandler(answerService *service.AnswerService, schemes *repository.SchemeRepository, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		answerService: answerService,
		schemes:       schemes,
		logger:        logger,
	}
}

// Health godoc
// @Summary Service health
// @Description Reports configuration and makes a live trial call to the language model
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	provider := h.answerService.Provider()

	status := "not configured"
	if h.answerService.Configured() {
		status = "connected"
	}

	return c.JSON(dto.HealthResponse{
		Status:        "running",
		AIProvider:    provider.DisplayName,
		GeminiStatus:  status,
		GeminiTest:    h.answerService.Probe(c.UserContext()),
		GeminiModel:   provider.Model,
		SchemesLoaded: h.schemes.Count(),
		APIKeySet:     provider.APIKey != "",
		APIKeyLength:  len(provider.APIKey),
	})
}
