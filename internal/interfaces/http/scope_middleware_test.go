package http_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilogush/cars-api/internal/application/access"
	"github.com/ilogush/cars-api/internal/domain/entity"
	apphttp "github.com/ilogush/cars-api/internal/interfaces/http"
)

// buildScopeApp monta auth + scope y una ruta sonda que expone el scope
// resuelto y la empresa de admin-mode.
func buildScopeApp(users *fakeUserRepo, companies *fakeCompanyRepo, managers *fakeManagerRepo) *fiber.App {
	app := fiber.New()
	app.Get("/recurso",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.ScopeMiddleware(users, testResolver(companies, managers)),
		func(c *fiber.Ctx) error {
			scope := apphttp.GetScope(c)
			return c.JSON(fiber.Map{
				"role":          scope.Role,
				"company_id":    scope.CompanyID,
				"admin_company": apphttp.GetAdminCompany(c),
				"effective":     access.EffectiveCompany(scope, apphttp.GetAdminCompany(c)),
			})
		},
	)
	return app
}

func consulta(t *testing.T, app *fiber.App, path, auth string) (int, map[string]string) {
	t.Helper()
	resp := doGet(t, app, path, auth)
	defer resp.Body.Close()
	var body map[string]string
	_ = json.NewDecoder(resp.Body).Decode(&body)
	return resp.StatusCode, body
}

func TestScopeMiddleware_OwnerResuelveSuEmpresa(t *testing.T) {
	users := newFakeUserRepo(&entity.User{ID: "owner-1", Role: entity.RoleOwner, Status: "active"})
	companies := newFakeCompanyRepo(&entity.Company{ID: "empresa-7", OwnerID: "owner-1"})
	app := buildScopeApp(users, companies, &fakeManagerRepo{})

	status, body := consulta(t, app, "/recurso", bearerFor(t, "owner-1", entity.RoleOwner))

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "empresa-7", body["company_id"],
		"la empresa sale de la DB en cada request, no del token")
}

func TestScopeMiddleware_RolDeDBGanaAlDelToken(t *testing.T) {
	// El usuario fue degradado a client después de emitido el token: el rol
	// vigente es el de la DB, sin esperar a que el token expire.
	users := newFakeUserRepo(&entity.User{ID: "user-1", Role: entity.RoleClient, Status: "active"})
	app := buildScopeApp(users, newFakeCompanyRepo(), &fakeManagerRepo{})

	status, body := consulta(t, app, "/recurso", bearerFor(t, "user-1", entity.RoleOwner))

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, entity.RoleClient, body["role"])
}

func TestScopeMiddleware_UsuarioInactivo_Retorna401(t *testing.T) {
	users := newFakeUserRepo(&entity.User{ID: "user-1", Role: entity.RoleOwner, Status: "suspended"})
	app := buildScopeApp(users, newFakeCompanyRepo(), &fakeManagerRepo{})

	status, _ := consulta(t, app, "/recurso", bearerFor(t, "user-1", entity.RoleOwner))
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestScopeMiddleware_UsuarioBorrado_Retorna401(t *testing.T) {
	app := buildScopeApp(newFakeUserRepo(), newFakeCompanyRepo(), &fakeManagerRepo{})

	status, _ := consulta(t, app, "/recurso", bearerFor(t, "fantasma", entity.RoleAdmin))
	assert.Equal(t, http.StatusUnauthorized, status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Admin-mode por query params
// ──────────────────────────────────────────────────────────────────────────────

func TestScopeMiddleware_AdminModeFijaEmpresaEfectiva(t *testing.T) {
	users := newFakeUserRepo(&entity.User{ID: "admin-1", Role: entity.RoleAdmin, Status: "active"})
	app := buildScopeApp(users, newFakeCompanyRepo(), &fakeManagerRepo{})

	status, body := consulta(t, app, "/recurso?admin_mode=true&company_id=empresa-9",
		bearerFor(t, "admin-1", entity.RoleAdmin))

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "empresa-9", body["admin_company"])
	assert.Equal(t, "empresa-9", body["effective"])
}

func TestScopeMiddleware_AdminSinAdminMode_SinEmpresa(t *testing.T) {
	users := newFakeUserRepo(&entity.User{ID: "admin-1", Role: entity.RoleAdmin, Status: "active"})
	app := buildScopeApp(users, newFakeCompanyRepo(), &fakeManagerRepo{})

	status, body := consulta(t, app, "/recurso", bearerFor(t, "admin-1", entity.RoleAdmin))

	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, body["effective"], "admin sin admin-mode opera a nivel plataforma")
}

func TestScopeMiddleware_NoAdminIgnoraAdminMode(t *testing.T) {
	// Un owner que pega admin_mode en la URL no cambia su empresa efectiva.
	users := newFakeUserRepo(&entity.User{ID: "owner-1", Role: entity.RoleOwner, Status: "active"})
	companies := newFakeCompanyRepo(&entity.Company{ID: "empresa-7", OwnerID: "owner-1"})
	app := buildScopeApp(users, companies, &fakeManagerRepo{})

	status, body := consulta(t, app, "/recurso?admin_mode=true&company_id=empresa-9",
		bearerFor(t, "owner-1", entity.RoleOwner))

	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, body["admin_company"], "admin-mode se ignora para no-admins")
	assert.Equal(t, "empresa-7", body["effective"])
}
