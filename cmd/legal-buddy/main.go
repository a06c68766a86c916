package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"legal-buddy/internal/api"
	"legal-buddy/internal/api/handlers"
	"legal-buddy/internal/repository"
	"legal-buddy/internal/service"
	"legal-buddy/pkg/config"
	"legal-buddy/pkg/llm"
	"legal-buddy/pkg/logger"

	"go.uber.org/zap"
)

// @title AI Legal Buddy API
// @version 1.0
// @description Question answering over Indian government welfare schemes
// @termsOfService http://swagger.io/terms/

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting AI Legal Buddy service", zap.Bool("debug", cfg.Server.IsDebug()))

	ctx := context.Background()

	// Scheme dataset
	schemeRepo := repository.LoadSchemes(cfg.Schemes.File, appLogger)

	// Chat history storage
	historyRepo, err := repository.NewHistoryRepository(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to open chat history storage",
			zap.String("driver", cfg.History.Driver),
			zap.Error(err),
		)
	}
	defer historyRepo.Close()

	// Language model; the service starts without one and reports it per request
	provider, err := llm.Describe(&cfg.LLM)
	if err != nil {
		appLogger.Fatal("Invalid AI provider", zap.Error(err))
	}

	generator, err := llm.New(ctx, &cfg.LLM, appLogger)
	switch {
	case errors.Is(err, llm.ErrMissingAPIKey):
		appLogger.Warn("API key not set, chat is disabled", zap.String("env", provider.KeyEnv))
	case err != nil:
		appLogger.Error("Failed to initialize language model", zap.Error(err))
	default:
		defer generator.Close()
	}

	// Initialize services
	answerService := service.NewAnswerService(generator, provider, appLogger)
	ragService := service.NewRAGService(schemeRepo, appLogger)
	historyService := service.NewHistoryService(historyRepo, appLogger)
	chatService := service.NewChatService(ragService, answerService, historyService, appLogger)

	// Initialize handlers
	schemeHandler := handlers.NewSchemeHandler(schemeRepo, appLogger)
	chatHandler := handlers.NewChatHandler(chatService, answerService, historyService, appLogger)
	healthHandler := handlers.NewHealthHandler(answerService, schemeRepo, appLogger)

	// Setup router
	app := api.SetupRouter(&cfg.Server, schemeHandler, chatHandler, healthHandler, appLogger)

	appLogger.Info("Configuration",
		zap.String("ai_provider", provider.DisplayName),
		zap.String("model", provider.Model),
		zap.Bool("api_key_set", provider.APIKey != ""),
		zap.Int("schemes_loaded", schemeRepo.Count()),
		zap.String("history_driver", cfg.History.Driver),
	)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
