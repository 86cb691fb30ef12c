package access

import (
	"github.com/ilogush/cars-api/internal/domain"
	"github.com/ilogush/cars-api/internal/domain/entity"
	"github.com/ilogush/cars-api/internal/domain/repository"
)

// Scope es el par {rol, empresa} que determina sobre qué entidades puede
// actuar el usuario. Se deriva en cada request, nunca se persiste:
//   - owner   -> empresa cuyo owner_id es el usuario
//   - manager -> empresa del manager_profile
//   - admin   -> sin empresa propia (la efectiva llega por admin-mode)
//   - client  -> sin empresa (sus reservas se filtran por client_id)
type Scope struct {
	Role      string
	CompanyID string // vacío para admin y client
}

// IsAdmin indica si el scope es de administrador de plataforma.
func (s Scope) IsAdmin() bool { return s.Role == entity.RoleAdmin }

// Resolver calcula el Scope de un usuario consultando la DB.
type Resolver struct {
	companyRepo repository.CompanyRepository
	managerRepo repository.ManagerProfileRepository
}

// NewResolver construye el resolver de scope con los puertos de persistencia.
func NewResolver(companyRepo repository.CompanyRepository, managerRepo repository.ManagerProfileRepository) *Resolver {
	return &Resolver{companyRepo: companyRepo, managerRepo: managerRepo}
}

// Resolve devuelve el Scope del usuario. Para owner/manager sin empresa
// asignada el CompanyID queda vacío; la falta de scope se rechaza recién al
// tocar recursos de empresa (ErrMissingScope), no aquí.
func (r *Resolver) Resolve(user *entity.User) (Scope, error) {
	scope := Scope{Role: user.Role}
	switch user.Role {
	case entity.RoleOwner:
		company, err := r.companyRepo.GetByOwner(user.ID)
		if err != nil {
			return Scope{}, err
		}
		if company != nil {
			scope.CompanyID = company.ID
		}
	case entity.RoleManager:
		profile, err := r.managerRepo.GetByUserID(user.ID)
		if err != nil {
			return Scope{}, err
		}
		if profile != nil {
			scope.CompanyID = profile.CompanyID
		}
	}
	return scope, nil
}

// EffectiveCompany devuelve la empresa efectiva del request: la de admin-mode
// si el caller es admin y la trae, si no la del scope natural. El parámetro de
// admin-mode de un caller no-admin se ignora (sin escalamiento de privilegios).
func EffectiveCompany(scope Scope, adminModeCompany string) string {
	if scope.IsAdmin() && adminModeCompany != "" {
		return adminModeCompany
	}
	return scope.CompanyID
}

// ResolveTargetCompany determina la empresa destino de una mutación:
// (a) empresa de admin-mode, si no (b) empresa del scope, si no (c) — solo
// admin — el companyId explícito del body. Sin destino: ErrMissingScope.
func ResolveTargetCompany(scope Scope, adminModeCompany, bodyCompanyID string) (string, error) {
	if target := EffectiveCompany(scope, adminModeCompany); target != "" {
		return target, nil
	}
	if scope.IsAdmin() && bodyCompanyID != "" {
		return bodyCompanyID, nil
	}
	return "", domain.ErrMissingScope
}

// CheckEntityCompany valida que la empresa de una entidad coincida con la
// empresa destino del caller antes de mutarla o exponerla.
//
// Un admin sin admin-mode opera sobre toda la plataforma; cualquier otro
// caller debe coincidir exactamente, sin importar overrides del body.
func CheckEntityCompany(scope Scope, adminModeCompany, entityCompanyID string) error {
	if scope.IsAdmin() && adminModeCompany == "" {
		return nil
	}
	target := EffectiveCompany(scope, adminModeCompany)
	if target == "" {
		return domain.ErrMissingScope
	}
	if target != entityCompanyID {
		return domain.ErrForbidden
	}
	return nil
}
