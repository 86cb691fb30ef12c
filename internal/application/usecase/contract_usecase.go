package usecase

import (
	"context"

	"github.com/ilogush/cars-api/internal/application/access"
	"github.com/ilogush/cars-api/internal/domain"
	"github.com/ilogush/cars-api/internal/domain/entity"
	"github.com/ilogush/cars-api/internal/domain/repository"
)

// ContractPDFGenerator puerto de generación del contrato de renta en PDF.
// La implementación (Maroto) vive en infrastructure/pdf.
type ContractPDFGenerator interface {
	GenerateContractPDF(ctx context.Context, booking *entity.Booking, car *entity.Car, company *entity.Company, client *entity.User, payments []*entity.Payment) ([]byte, error)
}

// ContractUseCase arma el contrato de renta (PDF) de una reserva.
type ContractUseCase struct {
	bookingRepo repository.BookingRepository
	carRepo     repository.CarRepository
	companyRepo repository.CompanyRepository
	userRepo    repository.UserRepository
	paymentRepo repository.PaymentRepository
	generator   ContractPDFGenerator
}

// NewContractUseCase construye el caso de uso.
func NewContractUseCase(
	bookingRepo repository.BookingRepository,
	carRepo repository.CarRepository,
	companyRepo repository.CompanyRepository,
	userRepo repository.UserRepository,
	paymentRepo repository.PaymentRepository,
	generator ContractPDFGenerator,
) *ContractUseCase {
	return &ContractUseCase{
		bookingRepo: bookingRepo,
		carRepo:     carRepo,
		companyRepo: companyRepo,
		userRepo:    userRepo,
		paymentRepo: paymentRepo,
		generator:   generator,
	}
}

// Generate carga reserva + auto + empresa + cliente + pagos y produce el PDF.
// Mismo chequeo de scope que la lectura de la reserva.
func (uc *ContractUseCase) Generate(ctx context.Context, scope access.Scope, adminCompany, callerID, bookingID string) ([]byte, error) {
	booking, err := uc.bookingRepo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, domain.ErrNotFound
	}
	car, err := uc.carRepo.GetByID(booking.CarID)
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, domain.ErrNotFound
	}
	if scope.Role == entity.RoleClient {
		if booking.ClientID != callerID {
			return nil, domain.ErrForbidden
		}
	} else if err := access.CheckEntityCompany(scope, adminCompany, car.CompanyID); err != nil {
		return nil, err
	}

	company, err := uc.companyRepo.GetByID(car.CompanyID)
	if err != nil {
		return nil, err
	}
	client, err := uc.userRepo.GetByID(booking.ClientID)
	if err != nil {
		return nil, err
	}
	payments, err := uc.paymentRepo.ListByBooking(booking.ID)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateContractPDF(ctx, booking, car, company, client, payments)
}
