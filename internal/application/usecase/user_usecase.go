package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/ilogush/cars-api/internal/application/access"
	"github.com/ilogush/cars-api/internal/application/auth"
	"github.com/ilogush/cars-api/internal/application/dto"
	"github.com/ilogush/cars-api/internal/domain"
	"github.com/ilogush/cars-api/internal/domain/entity"
	"github.com/ilogush/cars-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserUseCase administración de usuarios (alta con rol, edición, listado).
type UserUseCase struct {
	repo        repository.UserRepository
	managerRepo repository.ManagerProfileRepository
	resolver    *access.Resolver
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository, managerRepo repository.ManagerProfileRepository, resolver *access.Resolver) *UserUseCase {
	return &UserUseCase{repo: repo, managerRepo: managerRepo, resolver: resolver}
}

// Create da de alta un usuario con rol. Un owner/manager solo crea managers y
// clients dentro de su empresa; el rol admin solo lo asigna otro admin. El
// alta de un manager crea su manager_profile en la empresa destino.
func (uc *UserUseCase) Create(scope access.Scope, adminCompany string, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Email == "" || in.Password == "" || !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	if in.Role == entity.RoleAdmin && !scope.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if in.Role == entity.RoleOwner && !scope.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	existing, err := uc.repo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	// La empresa destino del manager se resuelve antes de tocar la DB: si el
	// caller no tiene scope no debe quedar ningún usuario huérfano creado.
	companyID := ""
	if in.Role == entity.RoleManager {
		target, err := access.ResolveTargetCompany(scope, adminCompany, in.CompanyID)
		if err != nil {
			return nil, err
		}
		companyID = target
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
		Phone:        in.Phone,
		Role:         in.Role,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	if in.Role == entity.RoleManager {
		profile := &entity.ManagerProfile{
			ID:        uuid.New().String(),
			UserID:    user.ID,
			CompanyID: companyID,
			CreatedAt: now,
		}
		if err := uc.managerRepo.Create(profile); err != nil {
			return nil, err
		}
	}
	return auth.ToUserResponse(user, companyID), nil
}

// GetByID obtiene un usuario. Cualquier usuario puede verse a sí mismo; el
// resto requiere admin.
func (uc *UserUseCase) GetByID(scope access.Scope, callerID, id string) (*dto.UserResponse, error) {
	if id != callerID && !scope.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	resolved, err := uc.resolver.Resolve(user)
	if err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user, resolved.CompanyID), nil
}

// Update edita nombre/teléfono/estado de un usuario (admin, o uno mismo sin
// tocar el estado).
func (uc *UserUseCase) Update(scope access.Scope, callerID, id string, in dto.UpdateUserRequest) (*dto.UserResponse, *entity.User, error) {
	if id != callerID && !scope.IsAdmin() {
		return nil, nil, domain.ErrForbidden
	}
	if in.Status != nil && !scope.IsAdmin() {
		return nil, nil, domain.ErrForbidden
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, domain.ErrNotFound
	}
	before := *user
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.Status != nil {
		user.Status = *in.Status
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, nil, err
	}
	return auth.ToUserResponse(user, ""), &before, nil
}

// List lista usuarios (solo admin; el router restringe la ruta).
func (uc *UserUseCase) List(page dto.PageRequest) (*dto.UserListResponse, error) {
	params := page.ToListParams()
	list, err := uc.repo.List(params)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *auth.ToUserResponse(u, ""))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: page.Page, PageSize: page.PageSize},
	}, nil
}
