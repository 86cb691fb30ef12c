package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// FleetStats agregados del dashboard de flota para una empresa (o toda la
// plataforma si companyID está vacío).
type FleetStats struct {
	TotalCars       int
	AvailableCars   int
	RentedCars      int
	ActiveBookings  int
	PendingBookings int
	MonthRevenue    decimal.Decimal
	TotalClients    int
}

// DashboardRepository puerto de consultas agregadas (solo lectura).
type DashboardRepository interface {
	FleetStats(ctx context.Context, companyID string) (*FleetStats, error)
}
