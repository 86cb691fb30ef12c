package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del auto dentro de la flota.
const (
	CarAvailable   = "available"
	CarRented      = "rented"
	CarMaintenance = "maintenance"
	CarRetired     = "retired"
)

// Car auto de la flota de una empresa.
type Car struct {
	ID         string
	CompanyID  string
	BrandID    string
	LocationID string
	Plate      string // placa, única por empresa
	Model      string
	Year       int
	Color      string
	DailyRate  decimal.Decimal // tarifa diaria en la moneda de la empresa
	CurrencyID string
	Status     string // available, rented, maintenance, retired
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
