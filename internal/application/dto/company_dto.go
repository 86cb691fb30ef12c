package dto

import "time"

// CreateCompanyRequest alta de empresa.
type CreateCompanyRequest struct {
	Name       string `json:"name"`
	NIT        string `json:"nit"`
	OwnerID    string `json:"ownerId"`
	LocationID string `json:"locationId"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
}

// UpdateCompanyRequest edición de empresa.
type UpdateCompanyRequest struct {
	Name       *string `json:"name"`
	Address    *string `json:"address"`
	Phone      *string `json:"phone"`
	Email      *string `json:"email"`
	LocationID *string `json:"locationId"`
	Status     *string `json:"status"`
}

// CompanyResponse representación pública de una empresa.
type CompanyResponse struct {
	ID         string    `json:"id"`
	OwnerID    string    `json:"ownerId"`
	LocationID string    `json:"locationId,omitempty"`
	Name       string    `json:"name"`
	NIT        string    `json:"nit"`
	Address    string    `json:"address,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Email      string    `json:"email,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// CompanyListResponse listado paginado.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
