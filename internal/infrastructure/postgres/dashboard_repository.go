package postgres

import (
	"context"
	"fmt"

	"github.com/ilogush/cars-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas agregadas del dashboard de flota.
type DashboardRepo struct {
	db db
}

// NewDashboardRepository construye el adaptador del dashboard.
func NewDashboardRepository(db db) *DashboardRepo {
	return &DashboardRepo{db: db}
}

// FleetStats calcula los agregados de flota, reservas e ingresos del mes en
// curso. Con companyID vacío agrega toda la plataforma.
func (r *DashboardRepo) FleetStats(ctx context.Context, companyID string) (*repository.FleetStats, error) {
	// $1 vacío desactiva el filtro por empresa en las tres subconsultas.
	query := `
		SELECT
			(SELECT COUNT(*) FROM cars WHERE ($1 = '' OR company_id = $1)),
			(SELECT COUNT(*) FROM cars WHERE ($1 = '' OR company_id = $1) AND status = 'available'),
			(SELECT COUNT(*) FROM cars WHERE ($1 = '' OR company_id = $1) AND status = 'rented'),
			(SELECT COUNT(*) FROM bookings WHERE ($1 = '' OR company_id = $1) AND status = 'active'),
			(SELECT COUNT(*) FROM bookings WHERE ($1 = '' OR company_id = $1) AND status = 'pending'),
			(SELECT COALESCE(SUM(amount), 0) FROM payments
				WHERE ($1 = '' OR company_id = $1) AND status = 'confirmed'
				AND paid_at >= date_trunc('month', NOW())),
			(SELECT COUNT(DISTINCT client_id) FROM bookings WHERE ($1 = '' OR company_id = $1))`

	var stats repository.FleetStats
	err := r.db.QueryRow(ctx, query, companyID).Scan(
		&stats.TotalCars, &stats.AvailableCars, &stats.RentedCars,
		&stats.ActiveBookings, &stats.PendingBookings, &stats.MonthRevenue, &stats.TotalClients,
	)
	if err != nil {
		return nil, fmt.Errorf("fleet stats: %w", err)
	}
	return &stats, nil
}
