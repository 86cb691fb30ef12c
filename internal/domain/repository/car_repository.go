package repository

import "github.com/ilogush/cars-api/internal/domain/entity"

// CarRepository define el puerto de persistencia para Car (DIP).
type CarRepository interface {
	Create(car *entity.Car) error
	GetByID(id string) (*entity.Car, error)
	GetByPlate(companyID, plate string) (*entity.Car, error)
	Update(car *entity.Car) error
	UpdateStatus(id, status string) error
	ListByCompany(companyID string, params ListParams) ([]*entity.Car, error)
	List(params ListParams) ([]*entity.Car, error)
	Delete(id string) error
}
