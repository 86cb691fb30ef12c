package usecase

import (
	"context"

	"github.com/ilogush/cars-api/internal/application/access"
	"github.com/ilogush/cars-api/internal/application/dto"
	"github.com/ilogush/cars-api/internal/domain"
	"github.com/ilogush/cars-api/internal/domain/repository"
)

// DashboardUseCase agregados de flota para el dashboard por rol.
type DashboardUseCase struct {
	repo repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// Get devuelve los agregados de la empresa efectiva. Un admin sin admin-mode
// ve los números de toda la plataforma.
func (uc *DashboardUseCase) Get(ctx context.Context, scope access.Scope, adminCompany string) (*dto.DashboardResponse, error) {
	company := access.EffectiveCompany(scope, adminCompany)
	if company == "" && !scope.IsAdmin() {
		return nil, domain.ErrMissingScope
	}
	stats, err := uc.repo.FleetStats(ctx, company)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardResponse{
		CompanyID:       company,
		TotalCars:       stats.TotalCars,
		AvailableCars:   stats.AvailableCars,
		RentedCars:      stats.RentedCars,
		ActiveBookings:  stats.ActiveBookings,
		PendingBookings: stats.PendingBookings,
		MonthRevenue:    stats.MonthRevenue,
		TotalClients:    stats.TotalClients,
	}, nil
}
