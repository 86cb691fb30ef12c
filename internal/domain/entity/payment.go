package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados y métodos de pago.
const (
	PaymentPending   = "pending"
	PaymentConfirmed = "confirmed"
	PaymentRefunded  = "refunded"
)

// ValidPaymentStatus indica si el estado pertenece al conjunto cerrado.
func ValidPaymentStatus(status string) bool {
	switch status {
	case PaymentPending, PaymentConfirmed, PaymentRefunded:
		return true
	}
	return false
}

// Payment pago asociado a una reserva.
type Payment struct {
	ID         string
	BookingID  string
	CompanyID  string
	Amount     decimal.Decimal
	CurrencyID string
	Method     string // cash, card, transfer
	Status     string // pending, confirmed, refunded
	PaidAt     *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
