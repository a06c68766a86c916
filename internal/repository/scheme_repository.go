package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"legal-buddy/internal/models"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// SchemeRepository is the in-memory scheme dataset. It is filled once at
// startup and only read afterwards, so it needs no locking.
type SchemeRepository struct {
	schemes []*models.Scheme
	byID    map[string]*models.Scheme
}

func NewSchemeRepository(schemes []*models.Scheme, logger *zap.Logger) *SchemeRepository {
	r := &SchemeRepository{
		schemes: make([]*models.Scheme, 0, len(schemes)),
		byID:    make(map[string]*models.Scheme, len(schemes)),
	}

	for _, s := range schemes {
		if s == nil {
			continue
		}
		if _, dup := r.byID[s.ID]; dup {
			logger.Warn("Duplicate scheme id, keeping first occurrence", zap.String("id", s.ID))
			continue
		}
		r.byID[s.ID] = s
		r.schemes = append(r.schemes, s)
	}

	return r
}

// LoadSchemes reads the dataset from a JSON or YAML file. A missing or
// malformed file yields an empty repository; the service keeps running.
func LoadSchemes(path string, logger *zap.Logger) *SchemeRepository {
	schemes, err := readSchemes(path)
	if err != nil {
		logger.Error("Failed to load schemes, starting with an empty dataset",
			zap.String("path", path),
			zap.Error(err),
		)
		return NewSchemeRepository(nil, logger)
	}

	repo := NewSchemeRepository(schemes, logger)
	logger.Info("Schemes loaded", zap.String("path", path), zap.Int("count", repo.Count()))
	return repo
}

func readSchemes(path string) ([]*models.Scheme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schemes file: %w", err)
	}

	var schemes []*models.Scheme
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &schemes)
	default:
		err = json.Unmarshal(data, &schemes)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse schemes file: %w", err)
	}

	return schemes, nil
}

func (r *SchemeRepository) GetByID(id string) (*models.Scheme, bool) {
	s, ok := r.byID[id]
	return s, ok
}

// All returns every scheme in dataset order.
func (r *SchemeRepository) All() []*models.Scheme {
	out := make([]*models.Scheme, len(r.schemes))
	copy(out, r.schemes)
	return out
}

func (r *SchemeRepository) Count() int {
	return len(r.schemes)
}

// Filter applies the catalogue filters: exact category match and a
// case-insensitive substring search over name and description. Empty
// arguments are ignored.
func (r *SchemeRepository) Filter(category, search string) []*models.Scheme {
	needle := strings.ToLower(search)

	out := make([]*models.Scheme, 0, len(r.schemes))
	for _, s := range r.schemes {
		if category != "" && (s.Category == nil || *s.Category != category) {
			continue
		}
		if search != "" && !containsFold(needle, s.Name, s.Description) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Match returns schemes whose name, description or category contains query
// (case-insensitive). An empty query matches everything.
func (r *SchemeRepository) Match(query string) []*models.Scheme {
	if query == "" {
		return r.All()
	}

	needle := strings.ToLower(query)
	out := make([]*models.Scheme, 0)
	for _, s := range r.schemes {
		if containsFold(needle, s.Name, s.Description, s.CategoryName()) {
			out = append(out, s)
		}
	}
	return out
}

// Categories returns the distinct categories, sorted ascending.
func (r *SchemeRepository) Categories() []string {
	seen := make(map[string]struct{})
	categories := make([]string, 0)
	for _, s := range r.schemes {
		if s.Category == nil {
			continue
		}
		if _, ok := seen[*s.Category]; ok {
			continue
		}
		seen[*s.Category] = struct{}{}
		categories = append(categories, *s.Category)
	}
	sort.Strings(categories)
	return categories
}

func containsFold(lowerNeedle string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), lowerNeedle) {
			return true
		}
	}
	return false
}
