package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateBookingRequest alta de reserva. El precio total se calcula del auto
// (tarifa diaria x días) salvo que un pago inicial lo acompañe.
type CreateBookingRequest struct {
	CarID         string          `json:"carId"`
	ClientID      string          `json:"clientId"`
	StartDate     time.Time       `json:"startDate"`
	EndDate       time.Time       `json:"endDate"`
	Notes         string          `json:"notes"`
	InitialAmount decimal.Decimal `json:"initialAmount"` // pago inicial opcional
	PaymentMethod string          `json:"paymentMethod"` // cash, card, transfer
}

// UpdateBookingRequest cambio de estado/fechas de reserva.
type UpdateBookingRequest struct {
	Status  *string    `json:"status"`
	EndDate *time.Time `json:"endDate"`
	Notes   *string    `json:"notes"`
}

// BookingResponse representación pública de una reserva.
type BookingResponse struct {
	ID         string          `json:"id"`
	CompanyID  string          `json:"companyId"`
	CarID      string          `json:"carId"`
	ClientID   string          `json:"clientId"`
	StartDate  time.Time       `json:"startDate"`
	EndDate    time.Time       `json:"endDate"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	CurrencyID string          `json:"currencyId"`
	Status     string          `json:"status"`
	Notes      string          `json:"notes,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// BookingListResponse listado paginado.
type BookingListResponse struct {
	Items []BookingResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
