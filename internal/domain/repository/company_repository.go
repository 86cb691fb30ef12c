package repository

import "github.com/ilogush/cars-api/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company (DIP).
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	GetByNIT(nit string) (*entity.Company, error)
	GetByOwner(ownerID string) (*entity.Company, error)
	Update(company *entity.Company) error
	List(params ListParams) ([]*entity.Company, error)
	Delete(id string) error
}
