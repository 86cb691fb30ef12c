package dto

import "github.com/shopspring/decimal"

// DashboardResponse agregados de flota para el dashboard.
type DashboardResponse struct {
	CompanyID       string          `json:"companyId,omitempty"` // vacío = plataforma completa (admin)
	TotalCars       int             `json:"totalCars"`
	AvailableCars   int             `json:"availableCars"`
	RentedCars      int             `json:"rentedCars"`
	ActiveBookings  int             `json:"activeBookings"`
	PendingBookings int             `json:"pendingBookings"`
	MonthRevenue    decimal.Decimal `json:"monthRevenue"`
	TotalClients    int             `json:"totalClients"`
}
