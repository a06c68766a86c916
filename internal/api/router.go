package api

import (
	"os"
	"path/filepath"

	"legal-buddy/docs"
	"legal-buddy/internal/api/handlers"
	"legal-buddy/internal/dto"
	"legal-buddy/pkg/config"
	"legal-buddy/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func SetupRouter(
	cfg *config.ServerConfig,
	schemeHandler *handlers.SchemeHandler,
	chatHandler *handlers.ChatHandler,
	healthHandler *handlers.HealthHandler,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "AI Legal Buddy",
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			if code == fiber.StatusInternalServerError {
				appLogger.Error("Unhandled error",
					zap.String("path", c.Path()),
					zap.String("request_id", middleware.RequestID(c)),
					zap.Error(err),
				)
			}
			return c.Status(code).JSON(dto.ErrorResponse{
				Success: false,
				Error:   err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))
	app.Use(middleware.RequestLogger(appLogger))

	// docs registers itself with swag on import
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", healthHandler.Health)

	api := app.Group("/api")
	api.Get("/schemes", schemeHandler.ListSchemes)
	api.Get("/categories", schemeHandler.ListCategories)
	api.Post("/chat", chatHandler.Chat)
	api.Get("/chat-history/:user_id", chatHandler.GetHistory)

	// Web interface: index.html, styles.css and app.js at the root
	if staticPath := findWebStaticPath(cfg.StaticDir, appLogger); staticPath != "" {
		appLogger.Info("Serving static files", zap.String("path", staticPath))
		app.Static("/", staticPath)
	} else {
		appLogger.Warn("Web static directory not found, static files will not be served")
	}

	return app
}

// findWebStaticPath returns the configured static directory or the first
// web/static directory holding an index.html near the working directory.
func findWebStaticPath(configured string, logger *zap.Logger) string {
	if configured != "" {
		if fileExists(filepath.Join(configured, "index.html")) {
			return configured
		}
		logger.Warn("Configured static directory has no index.html", zap.String("path", configured))
		return ""
	}

	paths := []string{
		"./web/static",
		"../web/static",
		"../../web/static",
	}

	for _, path := range paths {
		if fileExists(filepath.Join(path, "index.html")) {
			return path
		}
		logger.Debug("Tried path", zap.String("path", path))
	}

	return ""
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
