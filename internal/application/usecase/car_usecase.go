package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/ilogush/cars-api/internal/application/access"
	"github.com/ilogush/cars-api/internal/application/dto"
	"github.com/ilogush/cars-api/internal/domain"
	"github.com/ilogush/cars-api/internal/domain/entity"
	"github.com/ilogush/cars-api/internal/domain/repository"
)

// CarUseCase reglas de negocio para la flota.
type CarUseCase struct {
	repo repository.CarRepository
}

// NewCarUseCase construye el caso de uso.
func NewCarUseCase(repo repository.CarRepository) *CarUseCase {
	return &CarUseCase{repo: repo}
}

// Create da de alta un auto. La empresa destino sale de admin-mode, del scope
// del caller o — solo admin — del companyId del body; un caller no-admin no
// puede crear fuera de su empresa aunque mande companyId.
func (uc *CarUseCase) Create(scope access.Scope, adminCompany string, in dto.CreateCarRequest) (*dto.CarResponse, error) {
	if in.Plate == "" || in.Model == "" || in.BrandID == "" {
		return nil, domain.ErrInvalidInput
	}
	targetCompany, err := access.ResolveTargetCompany(scope, adminCompany, in.CompanyID)
	if err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByPlate(targetCompany, in.Plate)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	car := &entity.Car{
		ID:         uuid.New().String(),
		CompanyID:  targetCompany,
		BrandID:    in.BrandID,
		LocationID: in.LocationID,
		Plate:      in.Plate,
		Model:      in.Model,
		Year:       in.Year,
		Color:      in.Color,
		DailyRate:  in.DailyRate,
		CurrencyID: in.CurrencyID,
		Status:     entity.CarAvailable,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(car); err != nil {
		return nil, err
	}
	return toCarResponse(car), nil
}

// GetByID obtiene un auto con chequeo de scope.
func (uc *CarUseCase) GetByID(scope access.Scope, adminCompany, id string) (*dto.CarResponse, error) {
	car, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, domain.ErrNotFound
	}
	// Los clientes pueden ver autos de cualquier empresa (catálogo de renta).
	if scope.Role != entity.RoleClient {
		if err := access.CheckEntityCompany(scope, adminCompany, car.CompanyID); err != nil {
			return nil, err
		}
	}
	return toCarResponse(car), nil
}

// Update edita un auto. El chequeo contra la empresa real del auto va antes
// de cualquier mutación.
func (uc *CarUseCase) Update(scope access.Scope, adminCompany, id string, in dto.UpdateCarRequest) (*dto.CarResponse, *entity.Car, error) {
	car, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	if car == nil {
		return nil, nil, domain.ErrNotFound
	}
	if err := access.CheckEntityCompany(scope, adminCompany, car.CompanyID); err != nil {
		return nil, nil, err
	}
	before := *car
	if in.LocationID != nil {
		car.LocationID = *in.LocationID
	}
	if in.Model != nil {
		car.Model = *in.Model
	}
	if in.Year != nil {
		car.Year = *in.Year
	}
	if in.Color != nil {
		car.Color = *in.Color
	}
	if in.DailyRate != nil {
		car.DailyRate = *in.DailyRate
	}
	if in.Status != nil {
		car.Status = *in.Status
	}
	car.UpdatedAt = time.Now()
	if err := uc.repo.Update(car); err != nil {
		return nil, nil, err
	}
	return toCarResponse(car), &before, nil
}

// Delete retira un auto. FK en uso (reservas) -> domain.ErrInUse.
func (uc *CarUseCase) Delete(scope access.Scope, adminCompany, id string) (*entity.Car, error) {
	car, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, domain.ErrNotFound
	}
	if err := access.CheckEntityCompany(scope, adminCompany, car.CompanyID); err != nil {
		return nil, err
	}
	if err := uc.repo.Delete(id); err != nil {
		return nil, err
	}
	return car, nil
}

// List lista la flota de la empresa efectiva; un admin sin admin-mode ve
// toda la plataforma.
func (uc *CarUseCase) List(scope access.Scope, adminCompany string, page dto.PageRequest) (*dto.CarListResponse, error) {
	params := page.ToListParams()

	var (
		list []*entity.Car
		err  error
	)
	company := access.EffectiveCompany(scope, adminCompany)
	switch {
	case company != "":
		list, err = uc.repo.ListByCompany(company, params)
	case scope.IsAdmin() || scope.Role == entity.RoleClient:
		// catálogo completo: plataforma (admin) o autos rentables (client)
		list, err = uc.repo.List(params)
	default:
		return nil, domain.ErrMissingScope
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.CarResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCarResponse(c))
	}
	return &dto.CarListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: page.Page, PageSize: page.PageSize},
	}, nil
}

func toCarResponse(c *entity.Car) *dto.CarResponse {
	if c == nil {
		return nil
	}
	return &dto.CarResponse{
		ID:         c.ID,
		CompanyID:  c.CompanyID,
		BrandID:    c.BrandID,
		LocationID: c.LocationID,
		Plate:      c.Plate,
		Model:      c.Model,
		Year:       c.Year,
		Color:      c.Color,
		DailyRate:  c.DailyRate,
		CurrencyID: c.CurrencyID,
		Status:     c.Status,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}
