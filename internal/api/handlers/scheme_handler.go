package handlers

import (
	"legal-buddy/internal/dto"
	"legal-buddy/internal/repository"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type SchemeHandler struct {
	schemes *repository.SchemeRepository
	logger  *zap.Logger
}

func NewSchemeHandler(schemes *repository.SchemeRepository, logger *zap.Logger) *SchemeHandler {
	return &SchemeHandler{
		schemes: schemes,
		logger:  logger,
	}
}

// ListSchemes godoc
// @Summary List government schemes
// @Description Returns schemes, optionally filtered by exact category and a case-insensitive search over name and description
// @Tags schemes
// @Produce json
// @Param category query string false "Exact category"
// @Param search query string false "Search text"
// @Success 200 {object} dto.SchemesResponse
// @Router /api/schemes [get]
func (h *SchemeHandler) ListSchemes(c *fiber.Ctx) error {
	schemes := h.schemes.Filter(c.Query("category"), c.Query("search"))

	return c.JSON(dto.SchemesResponse{
		Success: true,
		Schemes: schemes,
	})
}

// ListCategories godoc
// @Summary List scheme categories
// @Description Returns the distinct scheme categories in ascending order
// @Tags schemes
// @Produce json
// @Success 200 {object} dto.CategoriesResponse
// @Router /api/categories [get]
func (h *SchemeHandler) ListCategories(c *fiber.Ctx) error {
	return c.JSON(dto.CategoriesResponse{
		Success:    true,
		Categories: h.schemes.Categories(),
	})
}
