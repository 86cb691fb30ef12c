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

// CompanyUseCase reglas de negocio para empresas (tenants).
type CompanyUseCase struct {
	repo     repository.CompanyRepository
	userRepo repository.UserRepository
}

// NewCompanyUseCase construye el caso de uso con los puertos de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository, userRepo repository.UserRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, userRepo: userRepo}
}

// Create crea una empresa (solo admin, el router lo garantiza). Valida que el
// owner exista y tenga rol owner, y que no posea ya otra empresa.
func (uc *CompanyUseCase) Create(in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if in.Name == "" || in.NIT == "" || in.OwnerID == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByNIT(in.NIT)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	owner, err := uc.userRepo.GetByID(in.OwnerID)
	if err != nil {
		return nil, err
	}
	if owner == nil || owner.Role != entity.RoleOwner {
		return nil, domain.ErrInvalidInput
	}
	owned, err := uc.repo.GetByOwner(in.OwnerID)
	if err != nil {
		return nil, err
	}
	if owned != nil {
		return nil, domain.ErrConflict // un owner posee exactamente una empresa
	}
	now := time.Now()
	company := &entity.Company{
		ID:         uuid.New().String(),
		OwnerID:    in.OwnerID,
		LocationID: in.LocationID,
		Name:       in.Name,
		NIT:        in.NIT,
		Address:    in.Address,
		Phone:      in.Phone,
		Email:      in.Email,
		Status:     "active",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// GetByID obtiene una empresa. Admin ve cualquiera; owner/manager solo la suya.
func (uc *CompanyUseCase) GetByID(scope access.Scope, adminCompany, id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if err := access.CheckEntityCompany(scope, adminCompany, company.ID); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// Update edita una empresa con chequeo de scope previo a la mutación.
func (uc *CompanyUseCase) Update(scope access.Scope, adminCompany, id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, *entity.Company, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	if company == nil {
		return nil, nil, domain.ErrNotFound
	}
	if err := access.CheckEntityCompany(scope, adminCompany, company.ID); err != nil {
		return nil, nil, err
	}
	before := *company
	if in.Name != nil {
		company.Name = *in.Name
	}
	if in.Address != nil {
		company.Address = *in.Address
	}
	if in.Phone != nil {
		company.Phone = *in.Phone
	}
	if in.Email != nil {
		company.Email = *in.Email
	}
	if in.LocationID != nil {
		company.LocationID = *in.LocationID
	}
	if in.Status != nil {
		company.Status = *in.Status
	}
	company.UpdatedAt = time.Now()
	if err := uc.repo.Update(company); err != nil {
		return nil, nil, err
	}
	return toCompanyResponse(company), &before, nil
}

// Delete elimina una empresa (solo admin). FK en uso -> domain.ErrInUse.
func (uc *CompanyUseCase) Delete(id string) (*entity.Company, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return nil, err
	}
	return company, nil
}

// List lista empresas (solo admin).
func (uc *CompanyUseCase) List(page dto.PageRequest) (*dto.CompanyListResponse, error) {
	params := page.ToListParams()
	list, err := uc.repo.List(params)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCompanyResponse(c))
	}
	return &dto.CompanyListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: page.Page, PageSize: page.PageSize},
	}, nil
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:         c.ID,
		OwnerID:    c.OwnerID,
		LocationID: c.LocationID,
		Name:       c.Name,
		NIT:        c.NIT,
		Address:    c.Address,
		Phone:      c.Phone,
		Email:      c.Email,
		Status:     c.Status,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}
