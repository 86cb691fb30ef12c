package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/ilogush/cars-api/internal/domain/entity"
	"github.com/ilogush/cars-api/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)
var _ repository.LocationRepository = (*LocationRepo)(nil)

// CatalogRepo lectura de catálogos globales (marcas y monedas).
type CatalogRepo struct {
	db db
}

// NewCatalogRepository construye el adaptador de catálogos.
func NewCatalogRepository(db db) *CatalogRepo {
	return &CatalogRepo{db: db}
}

// ListBrands lista todas las marcas.
func (r *CatalogRepo) ListBrands() ([]*entity.Brand, error) {
	rows, err := r.db.Query(context.Background(), `SELECT id, name, created_at FROM brands ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	defer rows.Close()
	var list []*entity.Brand
	for rows.Next() {
		var b entity.Brand
		if err := rows.Scan(&b.ID, &b.Name, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan brand: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// GetBrand obtiene una marca por ID.
func (r *CatalogRepo) GetBrand(id string) (*entity.Brand, error) {
	var b entity.Brand
	err := r.db.QueryRow(context.Background(), `SELECT id, name, created_at FROM brands WHERE id = $1`, id).
		Scan(&b.ID, &b.Name, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get brand: %w", err)
	}
	return &b, nil
}

// ListCurrencies lista todas las monedas.
func (r *CatalogRepo) ListCurrencies() ([]*entity.Currency, error) {
	rows, err := r.db.Query(context.Background(), `SELECT id, code, name, symbol, created_at FROM currencies ORDER BY code ASC`)
	if err != nil {
		return nil, fmt.Errorf("list currencies: %w", err)
	}
	defer rows.Close()
	var list []*entity.Currency
	for rows.Next() {
		var c entity.Currency
		if err := rows.Scan(&c.ID, &c.Code, &c.Name, &c.Symbol, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan currency: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// GetCurrency obtiene una moneda por ID.
func (r *CatalogRepo) GetCurrency(id string) (*entity.Currency, error) {
	var c entity.Currency
	err := r.db.QueryRow(context.Background(), `SELECT id, code, name, symbol, created_at FROM currencies WHERE id = $1`, id).
		Scan(&c.ID, &c.Code, &c.Name, &c.Symbol, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get currency: %w", err)
	}
	return &c, nil
}

// LocationRepo persistencia de ubicaciones.
type LocationRepo struct {
	db db
}

// NewLocationRepository construye el adaptador de ubicaciones.
func NewLocationRepository(db db) *LocationRepo {
	return &LocationRepo{db: db}
}

// Create persiste una ubicación.
func (r *LocationRepo) Create(location *entity.Location) error {
	query := `INSERT INTO locations (id, name, country, timezone, created_at) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(context.Background(), query,
		location.ID, location.Name, location.Country, location.Timezone, location.CreatedAt)
	if err != nil {
		return translateConstraint(err, "insert location")
	}
	return nil
}

// GetByID obtiene una ubicación por ID.
func (r *LocationRepo) GetByID(id string) (*entity.Location, error) {
	var l entity.Location
	err := r.db.QueryRow(context.Background(), `SELECT id, name, country, timezone, created_at FROM locations WHERE id = $1`, id).
		Scan(&l.ID, &l.Name, &l.Country, &l.Timezone, &l.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return &l, nil
}

// List lista todas las ubicaciones.
func (r *LocationRepo) List() ([]*entity.Location, error) {
	rows, err := r.db.Query(context.Background(), `SELECT id, name, country, timezone, created_at FROM locations ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Location
	for rows.Next() {
		var l entity.Location
		if err := rows.Scan(&l.ID, &l.Name, &l.Country, &l.Timezone, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
