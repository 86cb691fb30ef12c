package repository

import "github.com/ilogush/cars-api/internal/domain/entity"

// CatalogRepository puerto de lectura de catálogos globales (marcas y monedas).
type CatalogRepository interface {
	ListBrands() ([]*entity.Brand, error)
	GetBrand(id string) (*entity.Brand, error)
	ListCurrencies() ([]*entity.Currency, error)
	GetCurrency(id string) (*entity.Currency, error)
}

// LocationRepository puerto de persistencia para Location.
type LocationRepository interface {
	Create(location *entity.Location) error
	GetByID(id string) (*entity.Location, error)
	List() ([]*entity.Location, error)
}
