package repository

import "github.com/ilogush/cars-api/internal/domain/entity"

// PaymentRepository define el puerto de persistencia para Payment (DIP).
type PaymentRepository interface {
	Create(payment *entity.Payment) error
	GetByID(id string) (*entity.Payment, error)
	Update(payment *entity.Payment) error
	ListByBooking(bookingID string) ([]*entity.Payment, error)
	ListByCompany(companyID string, params ListParams) ([]*entity.Payment, error)
}
