package dto

import (
	"encoding/json"

	"github.com/ilogush/cars-api/internal/domain/repository"
)

// Límites de paginación para listados.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PageRequest paginación, orden y filtros para listados.
// Filters es un blob JSON plano: {"status":"active","plate":"ABC"}.
type PageRequest struct {
	Page      int    `query:"page"`
	PageSize  int    `query:"pageSize"`
	SortBy    string `query:"sortBy"`
	SortOrder string `query:"sortOrder"`
	Filters   string `query:"filters"`
}

// Normalize aplica defaults y topes: page >= 1, pageSize en [1, 100].
func (p *PageRequest) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	if p.SortOrder != "asc" && p.SortOrder != "desc" {
		p.SortOrder = "desc"
	}
}

// Limit devuelve el tamaño de página ya normalizado.
func (p *PageRequest) Limit() int { return p.PageSize }

// Offset devuelve el desplazamiento derivado de page/pageSize.
func (p *PageRequest) Offset() int { return (p.Page - 1) * p.PageSize }

// ToListParams convierte el request en parámetros de repositorio.
// Los filtros JSON malformados se ignoran (listado sin filtro, no error).
func (p *PageRequest) ToListParams() repository.ListParams {
	p.Normalize()
	params := repository.ListParams{
		Limit:     p.Limit(),
		Offset:    p.Offset(),
		SortBy:    p.SortBy,
		SortOrder: p.SortOrder,
	}
	if p.Filters != "" {
		var filters map[string]string
		if err := json.Unmarshal([]byte(p.Filters), &filters); err == nil {
			params.Filters = filters
		}
	}
	return params
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
	Total    int `json:"total,omitempty"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
