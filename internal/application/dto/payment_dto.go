package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePaymentRequest registro de pago sobre una reserva.
type CreatePaymentRequest struct {
	BookingID string          `json:"bookingId"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"` // cash, card, transfer
}

// CorrectPaymentRequest corrección de un pago mal registrado (monto, medio o
// estado). Campos nulos quedan como están.
type CorrectPaymentRequest struct {
	Amount *decimal.Decimal `json:"amount"`
	Method *string          `json:"method"`
	Status *string          `json:"status"` // pending, confirmed, refunded
}

// PaymentResponse representación pública de un pago.
type PaymentResponse struct {
	ID         string          `json:"id"`
	BookingID  string          `json:"bookingId"`
	CompanyID  string          `json:"companyId"`
	Amount     decimal.Decimal `json:"amount"`
	CurrencyID string          `json:"currencyId"`
	Method     string          `json:"method"`
	Status     string          `json:"status"`
	PaidAt     *time.Time      `json:"paidAt,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// PaymentListResponse listado paginado.
type PaymentListResponse struct {
	Items []PaymentResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
