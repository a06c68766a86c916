package dto

import "legal-buddy/internal/models"

type SchemesResponse struct {
	Success bool             `json:"success"`
	Schemes []*models.Scheme `json:"schemes"`
}

type CategoriesResponse struct {
	Success    bool     `json:"success"`
	Categories []string `json:"categories"`
}
