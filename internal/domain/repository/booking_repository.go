package repository

import (
	"time"

	"github.com/ilogush/cars-api/internal/domain/entity"
)

// BookingRepository define el puerto de persistencia para Booking (DIP).
type BookingRepository interface {
	Create(booking *entity.Booking) error
	GetByID(id string) (*entity.Booking, error)
	Update(booking *entity.Booking) error
	ListByCompany(companyID string, params ListParams) ([]*entity.Booking, error)
	ListByClient(clientID string, params ListParams) ([]*entity.Booking, error)
	HasOverlap(carID string, start, end time.Time) (bool, error)
	Delete(id string) error
}
