package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ilogush/cars-api/internal/application/access"
	"github.com/ilogush/cars-api/internal/application/dto"
	"github.com/ilogush/cars-api/internal/domain"
	"github.com/ilogush/cars-api/internal/domain/entity"
	"github.com/ilogush/cars-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// TxRunner ejecuta un callback con repos atados a una transacción. La
// implementación vive en infrastructure/postgres.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		bookingRepo repository.BookingRepository,
		paymentRepo repository.PaymentRepository,
		carRepo repository.CarRepository,
	) error) error
}

// BookingUseCase reglas de negocio de reservas/contratos de renta.
type BookingUseCase struct {
	tx          TxRunner
	bookingRepo repository.BookingRepository
	carRepo     repository.CarRepository
	userRepo    repository.UserRepository
}

// NewBookingUseCase construye el caso de uso.
func NewBookingUseCase(tx TxRunner, bookingRepo repository.BookingRepository, carRepo repository.CarRepository, userRepo repository.UserRepository) *BookingUseCase {
	return &BookingUseCase{tx: tx, bookingRepo: bookingRepo, carRepo: carRepo, userRepo: userRepo}
}

// Create crea una reserva. Reserva + pago inicial (si viene) se persisten en
// una sola transacción. Un client reserva para sí mismo; owner/manager/admin
// reservan dentro de su empresa efectiva (chequeo contra la empresa del auto).
func (uc *BookingUseCase) Create(ctx context.Context, scope access.Scope, adminCompany, callerID string, in dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	if in.CarID == "" || in.EndDate.Before(in.StartDate) {
		return nil, domain.ErrInvalidInput
	}
	car, err := uc.carRepo.GetByID(in.CarID)
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, domain.ErrNotFound
	}
	if car.Status != entity.CarAvailable {
		return nil, domain.ErrCarUnavailable
	}

	clientID := in.ClientID
	if scope.Role == entity.RoleClient {
		// un client solo reserva para sí mismo
		clientID = callerID
	} else {
		if err := access.CheckEntityCompany(scope, adminCompany, car.CompanyID); err != nil {
			return nil, err
		}
		if clientID == "" {
			return nil, domain.ErrInvalidInput
		}
	}

	overlap, err := uc.bookingRepo.HasOverlap(car.ID, in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}
	if overlap {
		return nil, domain.ErrConflict
	}

	now := time.Now()
	booking := &entity.Booking{
		ID:         uuid.New().String(),
		CompanyID:  car.CompanyID,
		CarID:      car.ID,
		ClientID:   clientID,
		StartDate:  in.StartDate,
		EndDate:    in.EndDate,
		CurrencyID: car.CurrencyID,
		Status:     entity.BookingPending,
		Notes:      in.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	booking.TotalPrice = car.DailyRate.Mul(decimal.NewFromInt(int64(booking.Days())))

	err = uc.tx.Run(ctx, func(bookings repository.BookingRepository, payments repository.PaymentRepository, _ repository.CarRepository) error {
		if err := bookings.Create(booking); err != nil {
			return err
		}
		if in.InitialAmount.IsPositive() {
			paidAt := now
			return payments.Create(&entity.Payment{
				ID:         uuid.New().String(),
				BookingID:  booking.ID,
				CompanyID:  booking.CompanyID,
				Amount:     in.InitialAmount,
				CurrencyID: booking.CurrencyID,
				Method:     in.PaymentMethod,
				Status:     entity.PaymentConfirmed,
				PaidAt:     &paidAt,
				CreatedAt:  now,
				UpdatedAt:  now,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toBookingResponse(booking), nil
}

// GetByID obtiene una reserva. El scope se valida contra la empresa real del
// auto de la reserva; un client solo ve reservas propias.
func (uc *BookingUseCase) GetByID(scope access.Scope, adminCompany, callerID, id string) (*dto.BookingResponse, error) {
	booking, car, err := uc.loadChecked(scope, adminCompany, callerID, id)
	if err != nil {
		return nil, err
	}
	_ = car
	return toBookingResponse(booking), nil
}

// Update cambia estado/fechas. Activar renta marca el auto como rentado;
// completar o cancelar lo libera — ambas cosas en la misma transacción.
func (uc *BookingUseCase) Update(ctx context.Context, scope access.Scope, adminCompany, callerID, id string, in dto.UpdateBookingRequest) (*dto.BookingResponse, *entity.Booking, error) {
	booking, car, err := uc.loadChecked(scope, adminCompany, callerID, id)
	if err != nil {
		return nil, nil, err
	}
	if scope.Role == entity.RoleClient {
		// un client solo puede cancelar su reserva pendiente
		if in.Status == nil || *in.Status != entity.BookingCancelled || booking.Status != entity.BookingPending {
			return nil, nil, domain.ErrForbidden
		}
	}
	before := *booking
	if in.EndDate != nil {
		booking.EndDate = *in.EndDate
	}
	if in.Notes != nil {
		booking.Notes = *in.Notes
	}
	carStatus := ""
	if in.Status != nil && *in.Status != booking.Status {
		switch *in.Status {
		case entity.BookingActive:
			carStatus = entity.CarRented
		case entity.BookingCompleted, entity.BookingCancelled:
			carStatus = entity.CarAvailable
		case entity.BookingPending:
		default:
			return nil, nil, domain.ErrInvalidInput
		}
		booking.Status = *in.Status
	}
	booking.UpdatedAt = time.Now()

	err = uc.tx.Run(ctx, func(bookings repository.BookingRepository, _ repository.PaymentRepository, cars repository.CarRepository) error {
		if err := bookings.Update(booking); err != nil {
			return err
		}
		if carStatus != "" {
			return cars.UpdateStatus(car.ID, carStatus)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return toBookingResponse(booking), &before, nil
}

// Delete elimina una reserva pendiente o cancelada.
func (uc *BookingUseCase) Delete(scope access.Scope, adminCompany, callerID, id string) (*entity.Booking, error) {
	booking, _, err := uc.loadChecked(scope, adminCompany, callerID, id)
	if err != nil {
		return nil, err
	}
	if booking.Status == entity.BookingActive {
		return nil, domain.ErrConflict
	}
	if err := uc.bookingRepo.Delete(id); err != nil {
		return nil, err
	}
	return booking, nil
}

// List lista reservas: un client las propias, el resto las de su empresa
// efectiva (admin sin admin-mode no tiene empresa destino y debe entrar a una).
func (uc *BookingUseCase) List(scope access.Scope, adminCompany, callerID string, page dto.PageRequest) (*dto.BookingListResponse, error) {
	params := page.ToListParams()

	var (
		list []*entity.Booking
		err  error
	)
	if scope.Role == entity.RoleClient {
		list, err = uc.bookingRepo.ListByClient(callerID, params)
	} else {
		company := access.EffectiveCompany(scope, adminCompany)
		if company == "" {
			return nil, domain.ErrMissingScope
		}
		list, err = uc.bookingRepo.ListByCompany(company, params)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.BookingResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toBookingResponse(b))
	}
	return &dto.BookingListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: page.Page, PageSize: page.PageSize},
	}, nil
}

// loadChecked carga la reserva y su auto y aplica el chequeo de scope contra
// la empresa real del auto (no contra el CompanyID desnormalizado).
func (uc *BookingUseCase) loadChecked(scope access.Scope, adminCompany, callerID, id string) (*entity.Booking, *entity.Car, error) {
	booking, err := uc.bookingRepo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	if booking == nil {
		return nil, nil, domain.ErrNotFound
	}
	car, err := uc.carRepo.GetByID(booking.CarID)
	if err != nil {
		return nil, nil, err
	}
	if scope.Role == entity.RoleClient {
		if booking.ClientID != callerID {
			return nil, nil, domain.ErrForbidden
		}
		return booking, car, nil
	}
	companyID := booking.CompanyID
	if car != nil {
		companyID = car.CompanyID
	}
	if err := access.CheckEntityCompany(scope, adminCompany, companyID); err != nil {
		return nil, nil, err
	}
	return booking, car, nil
}

func toBookingResponse(b *entity.Booking) *dto.BookingResponse {
	if b == nil {
		return nil
	}
	return &dto.BookingResponse{
		ID:         b.ID,
		CompanyID:  b.CompanyID,
		CarID:      b.CarID,
		ClientID:   b.ClientID,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		TotalPrice: b.TotalPrice,
		CurrencyID: b.CurrencyID,
		Status:     b.Status,
		Notes:      b.Notes,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}
