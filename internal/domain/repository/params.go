package repository

// ListParams parámetros comunes de listado: paginación, orden y filtros.
// SortBy debe validarse contra la whitelist de columnas de cada repo antes
// de interpolarse en SQL.
type ListParams struct {
	Limit     int
	Offset    int
	SortBy    string
	SortOrder string            // asc | desc
	Filters   map[string]string // campo -> valor (igualdad o ILIKE según repo)
}
