package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/ilogush/cars-api/internal/application/access"
	"github.com/ilogush/cars-api/internal/application/dto"
	"github.com/ilogush/cars-api/internal/domain"
	"github.com/ilogush/cars-api/internal/domain/entity"
	"github.com/ilogush/cars-api/internal/domain/repository"
)

// PaymentUseCase registro y consulta de pagos de reservas.
type PaymentUseCase struct {
	repo        repository.PaymentRepository
	bookingRepo repository.BookingRepository
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(repo repository.PaymentRepository, bookingRepo repository.BookingRepository) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, bookingRepo: bookingRepo}
}

// Create registra un pago confirmado sobre una reserva de la empresa efectiva.
func (uc *PaymentUseCase) Create(scope access.Scope, adminCompany string, in dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	if in.BookingID == "" || !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	booking, err := uc.bookingRepo.GetByID(in.BookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, domain.ErrNotFound
	}
	if err := access.CheckEntityCompany(scope, adminCompany, booking.CompanyID); err != nil {
		return nil, err
	}
	now := time.Now()
	payment := &entity.Payment{
		ID:         uuid.New().String(),
		BookingID:  booking.ID,
		CompanyID:  booking.CompanyID,
		Amount:     in.Amount,
		CurrencyID: booking.CurrencyID,
		Method:     in.Method,
		Status:     entity.PaymentConfirmed,
		PaidAt:     &now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(payment); err != nil {
		return nil, err
	}
	return toPaymentResponse(payment), nil
}

// Correct corrige un pago mal registrado: monto, medio o estado. La fila
// original no se borra; el ajuste queda reflejado en auditoría con la acción
// de corrección.
func (uc *PaymentUseCase) Correct(scope access.Scope, adminCompany, id string, in dto.CorrectPaymentRequest) (*dto.PaymentResponse, *entity.Payment, error) {
	payment, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	if payment == nil {
		return nil, nil, domain.ErrNotFound
	}
	if err := access.CheckEntityCompany(scope, adminCompany, payment.CompanyID); err != nil {
		return nil, nil, err
	}
	if in.Amount != nil && !in.Amount.IsPositive() {
		return nil, nil, domain.ErrInvalidInput
	}
	if in.Status != nil && !entity.ValidPaymentStatus(*in.Status) {
		return nil, nil, domain.ErrInvalidInput
	}
	before := *payment
	if in.Amount != nil {
		payment.Amount = *in.Amount
	}
	if in.Method != nil {
		payment.Method = *in.Method
	}
	if in.Status != nil {
		payment.Status = *in.Status
	}
	payment.UpdatedAt = time.Now()
	if err := uc.repo.Update(payment); err != nil {
		return nil, nil, err
	}
	return toPaymentResponse(payment), &before, nil
}

// ListByBooking lista los pagos de una reserva (scope contra su empresa; un
// client solo los de reservas propias).
func (uc *PaymentUseCase) ListByBooking(scope access.Scope, adminCompany, callerID, bookingID string) ([]dto.PaymentResponse, error) {
	booking, err := uc.bookingRepo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, domain.ErrNotFound
	}
	if scope.Role == entity.RoleClient {
		if booking.ClientID != callerID {
			return nil, domain.ErrForbidden
		}
	} else if err := access.CheckEntityCompany(scope, adminCompany, booking.CompanyID); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByBooking(bookingID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PaymentResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPaymentResponse(p))
	}
	return items, nil
}

// List lista los pagos de la empresa efectiva.
func (uc *PaymentUseCase) List(scope access.Scope, adminCompany string, page dto.PageRequest) (*dto.PaymentListResponse, error) {
	company := access.EffectiveCompany(scope, adminCompany)
	if company == "" {
		return nil, domain.ErrMissingScope
	}
	params := page.ToListParams()
	list, err := uc.repo.ListByCompany(company, params)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PaymentResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPaymentResponse(p))
	}
	return &dto.PaymentListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: page.Page, PageSize: page.PageSize},
	}, nil
}

func toPaymentResponse(p *entity.Payment) *dto.PaymentResponse {
	if p == nil {
		return nil
	}
	return &dto.PaymentResponse{
		ID:         p.ID,
		BookingID:  p.BookingID,
		CompanyID:  p.CompanyID,
		Amount:     p.Amount,
		CurrencyID: p.CurrencyID,
		Method:     p.Method,
		Status:     p.Status,
		PaidAt:     p.PaidAt,
		CreatedAt:  p.CreatedAt,
	}
}
