package dto

// BrandResponse marca de auto.
type BrandResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// LocationResponse ciudad/sede.
type LocationResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Country  string `json:"country,omitempty"`
	Timezone string `json:"timezone,omitempty"`
}

// CreateLocationRequest alta de ubicación (solo admin).
type CreateLocationRequest struct {
	Name     string `json:"name"`
	Country  string `json:"country"`
	Timezone string `json:"timezone"`
}

// CurrencyResponse moneda soportada.
type CurrencyResponse struct {
	ID     string `json:"id"`
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol,omitempty"`
}
