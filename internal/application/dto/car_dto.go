package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCarRequest alta de auto en la flota.
// CompanyID solo lo respeta un admin sin admin-mode; para el resto el scope manda.
type CreateCarRequest struct {
	CompanyID  string          `json:"companyId"`
	BrandID    string          `json:"brandId"`
	LocationID string          `json:"locationId"`
	Plate      string          `json:"plate"`
	Model      string          `json:"model"`
	Year       int             `json:"year"`
	Color      string          `json:"color"`
	DailyRate  decimal.Decimal `json:"dailyRate"`
	CurrencyID string          `json:"currencyId"`
}

// UpdateCarRequest edición parcial de auto.
type UpdateCarRequest struct {
	LocationID *string          `json:"locationId"`
	Model      *string          `json:"model"`
	Year       *int             `json:"year"`
	Color      *string          `json:"color"`
	DailyRate  *decimal.Decimal `json:"dailyRate"`
	Status     *string          `json:"status"`
}

// CarResponse representación pública de un auto.
type CarResponse struct {
	ID         string          `json:"id"`
	CompanyID  string          `json:"companyId"`
	BrandID    string          `json:"brandId"`
	LocationID string          `json:"locationId,omitempty"`
	Plate      string          `json:"plate"`
	Model      string          `json:"model"`
	Year       int             `json:"year"`
	Color      string          `json:"color,omitempty"`
	DailyRate  decimal.Decimal `json:"dailyRate"`
	CurrencyID string          `json:"currencyId"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// CarListResponse listado paginado.
type CarListResponse struct {
	Items []CarResponse `json:"items"`
	Page  PageResponse  `json:"page"`
}
