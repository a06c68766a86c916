package service

import (
	"fmt"
	"strings"

	"legal-buddy/internal/models"
	"legal-buddy/internal/repository"

	"go.uber.org/zap"
)

// MaxContextSchemes caps how many schemes go into one prompt.
const MaxContextSchemes = 3

type RAGService struct {
	schemes *repository.SchemeRepository
	logger  *zap.Logger
}

func NewRAGService(schemes *repository.SchemeRepository, logger *zap.Logger) *RAGService {
	return &RAGService{
		schemes: schemes,
		logger:  logger,
	}
}

// BuildContext renders the schemes relevant to a request. A scheme id that
// resolves wins over the query. Otherwise the first MaxContextSchemes
// matches of query, in dataset order, are used; an empty query matches all.
// sources holds each rendered scheme's website ("" when absent), in order.
func (s *RAGService) BuildContext(schemeID, query string) (string, []string) {
	if schemeID != "" {
		if scheme, ok := s.schemes.GetByID(schemeID); ok {
			return FormatScheme(scheme), []string{scheme.Website()}
		}
		s.logger.Debug("Scheme not found, falling back to search", zap.String("scheme_id", schemeID))
	}

	candidates := s.schemes.Match(query)
	if len(candidates) > MaxContextSchemes {
		candidates = candidates[:MaxContextSchemes]
	}

	var builder strings.Builder
	sources := make([]string, 0, len(candidates))
	for _, scheme := range candidates {
		builder.WriteString(FormatScheme(scheme))
		sources = append(sources, scheme.Website())
	}

	return builder.String(), sources
}

// FormatScheme renders one scheme as plain text for the prompt. The block
// ends with an empty line.
func FormatScheme(scheme *models.Scheme) string {
	var builder strings.Builder

	category := "N/A"
	if scheme.Category != nil {
		category = *scheme.Category
	}

	builder.WriteString(fmt.Sprintf("Scheme: %s\n", scheme.Name))
	builder.WriteString(fmt.Sprintf("Category: %s\n", category))
	builder.WriteString(fmt.Sprintf("Description: %s\n", scheme.Description))

	if len(scheme.Eligibility) > 0 {
		builder.WriteString("Eligibility: " + strings.Join(scheme.Eligibility, "; ") + "\n")
	}
	if scheme.Benefits != nil {
		builder.WriteString(fmt.Sprintf("Benefits: %s\n", *scheme.Benefits))
	}
	if len(scheme.DocumentsRequired) > 0 {
		builder.WriteString("Documents: " + strings.Join(scheme.DocumentsRequired, ", ") + "\n")
	}
	if len(scheme.HowToApply) > 0 {
		builder.WriteString("How to Apply: " + strings.Join(scheme.HowToApply, "; ") + "\n")
	}
	if scheme.OfficialWebsite != nil {
		builder.WriteString(fmt.Sprintf("Website: %s\n", *scheme.OfficialWebsite))
	}
	if scheme.Helpline != nil {
		builder.WriteString(fmt.Sprintf("Helpline: %s\n", *scheme.Helpline))
	}

	builder.WriteString("\n")
	return builder.String()
}
