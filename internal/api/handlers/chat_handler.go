package handlers

import (
	"errors"
	"strconv"
	"strings"

	"legal-buddy/internal/dto"
	"legal-buddy/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const historyTimestampLayout = "2006-01-02 15:04:05"

type ChatHandler struct {
	chatService    *service.ChatService
	answerService  *service.AnswerService
	historyService *service.HistoryService
	validate       *validator.Validate
	logger         *zap.Logger
}

func NewChatHandler(
	chatService *service.ChatService,
	answerService *service.AnswerService,
	historyService *service.HistoryService,
	logger *zap.Logger,
) *ChatHandler {
	return &ChatHandler{
		chatService:    chatService,
		answerService:  answerService,
		historyService: historyService,
		validate:       validator.New(),
		logger:         logger,
	}
}

// Chat godoc
// @Summary Ask AI Legal Buddy
// @Description Answers a question about government schemes, grounded in matching scheme records. Model failures are reported with success=false and a localized apology.
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Chat request"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/chat [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false,
			Error:   "Invalid request body",
		})
	}

	req.Message = strings.TrimSpace(req.Message)
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false,
			Error:   "Message is required",
		})
	}

	// only a missing field defaults; "" is kept and gets the Hindi fallback
	language := service.LanguageEnglish
	if req.Language != nil {
		language = *req.Language
	}

	h.logger.Info("Chat request",
		zap.Int64("user_id", req.UserID),
		zap.String("language", language),
		zap.Int("message_length", len(req.Message)),
	)

	result, err := h.chatService.Chat(c.UserContext(), service.ChatInput{
		Message:  req.Message,
		Language: language,
		UserID:   req.UserID,
		SchemeID: req.SchemeID,
	})
	switch {
	case err == nil:
		return c.JSON(dto.ChatResponse{
			Success:    true,
			Answer:     result.Answer,
			AnswerHTML: result.AnswerHTML,
			Sources:    result.Sources,
		})

	case errors.Is(err, service.ErrNotConfigured):
		debug := h.answerService.NotConfiguredDebug()
		h.logger.Error("Chat rejected", zap.String("reason", debug))
		return c.JSON(dto.ChatResponse{
			Success: false,
			Answer:  h.answerService.NotConfiguredMessage(),
			Sources: []string{},
			Debug:   debug,
		})

	case errors.Is(err, service.ErrUnavailable):
		return c.JSON(dto.ChatResponse{
			Success: false,
			Answer:  service.FallbackMessage(language),
			Sources: []string{},
		})

	default:
		return err
	}
}

// GetHistory godoc
// @Summary Chat history of a user
// @Description Returns up to 50 of the user's most recent exchanges, newest first
// @Tags chat
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} dto.ChatHistoryResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/chat-history/{user_id} [get]
func (h *ChatHandler) GetHistory(c *fiber.Ctx) error {
	userID, err := strconv.ParseInt(c.Params("user_id"), 10, 64)
	if err != nil || userID < 0 {
		return fiber.ErrNotFound
	}

	exchanges, err := h.historyService.RecentFor(c.UserContext(), userID, service.DefaultHistoryLimit)
	if err != nil {
		return err
	}

	history := make([]dto.ChatHistoryItem, 0, len(exchanges))
	for _, ex := range exchanges {
		sources := ex.Sources
		if sources == nil {
			sources = []string{}
		}
		history = append(history, dto.ChatHistoryItem{
			Message:   ex.Message,
			Response:  ex.Response,
			Sources:   sources,
			Timestamp: ex.CreatedAt.UTC().Format(historyTimestampLayout),
		})
	}

	return c.JSON(dto.ChatHistoryResponse{
		Success: true,
		History: history,
	})
}
