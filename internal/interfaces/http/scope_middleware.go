package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/ilogush/cars-api/internal/application/access"
	"github.com/ilogush/cars-api/internal/application/audit"
	"github.com/ilogush/cars-api/internal/application/dto"
	"github.com/ilogush/cars-api/internal/domain/repository"
)

// Query params de admin-mode. Viajan en cada request; el servidor no guarda
// estado de impersonación.
const (
	QueryAdminMode    = "admin_mode"
	QueryAdminCompany = "company_id"
)

// ScopeMiddleware recarga el usuario desde la DB y deriva su Scope {rol,
// empresa} en cada request. Un cambio de rol o de empresa aplica de inmediato
// sin esperar a que el token expire; una cuenta desactivada pierde la sesión.
//
// También interpreta los query params de admin-mode: para un admin,
// admin_mode=true + company_id fijan la empresa efectiva; para cualquier otro
// rol se ignoran en silencio (sin escalamiento de privilegios).
func ScopeMiddleware(userRepo repository.UserRepository, resolver *access.Resolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := GetUserID(c)
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "sesión requerida"})
		}
		user, err := userRepo.GetByID(userID)
		if err != nil {
			return respondError(c, err)
		}
		if user == nil || user.Status != "active" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "sesión inválida"})
		}
		scope, err := resolver.Resolve(user)
		if err != nil {
			return respondError(c, err)
		}
		// El rol vigente es el de la DB, no el del token.
		c.Locals(LocalRole, scope.Role)
		c.Locals(LocalScope, scope)

		if scope.IsAdmin() && strings.EqualFold(c.Query(QueryAdminMode), "true") {
			if companyID := c.Query(QueryAdminCompany); companyID != "" {
				c.Locals(LocalAdminCompany, companyID)
			}
		}
		return c.Next()
	}
}

// GetScope devuelve el Scope resuelto (después de ScopeMiddleware).
func GetScope(c *fiber.Ctx) access.Scope {
	v := c.Locals(LocalScope)
	if v == nil {
		return access.Scope{}
	}
	s, _ := v.(access.Scope)
	return s
}

// GetAdminCompany devuelve la empresa de admin-mode, vacío si no aplica.
func GetAdminCompany(c *fiber.Ctx) string {
	return localString(c, LocalAdminCompany)
}

// actorFrom arma el actor de auditoría del request actual.
func actorFrom(c *fiber.Ctx) audit.Actor {
	scope := GetScope(c)
	return audit.Actor{
		UserID:    GetUserID(c),
		Role:      scope.Role,
		CompanyID: access.EffectiveCompany(scope, GetAdminCompany(c)),
		IP:        clientIP(c),
		UserAgent: c.Get("User-Agent"),
	}
}

// clientIP devuelve la IP real del cliente: primer valor de X-Forwarded-For,
// después X-Real-IP, después la IP de la conexión.
func clientIP(c *fiber.Ctx) string {
	if fwd := c.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			return strings.TrimSpace(fwd[:i])
		}
		return strings.TrimSpace(fwd)
	}
	if real := c.Get("X-Real-IP"); real != "" {
		return real
	}
	return c.IP()
}
