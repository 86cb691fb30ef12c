package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de una reserva/contrato de renta.
const (
	BookingPending   = "pending"
	BookingActive    = "active"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

// Booking reserva de renta (contrato). CompanyID se desnormaliza desde el auto
// al crear; el chequeo de scope siempre valida contra la empresa real del auto.
type Booking struct {
	ID         string
	CompanyID  string
	CarID      string
	ClientID   string
	StartDate  time.Time
	EndDate    time.Time
	TotalPrice decimal.Decimal
	CurrencyID string
	Status     string // pending, active, completed, cancelled
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Days devuelve la duración de la renta en días (mínimo 1).
func (b *Booking) Days() int {
	d := int(b.EndDate.Sub(b.StartDate).Hours() / 24)
	if d < 1 {
		return 1
	}
	return d
}
