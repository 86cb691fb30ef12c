package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/ilogush/cars-api/internal/application/access"
	"github.com/ilogush/cars-api/internal/application/audit"
	"github.com/ilogush/cars-api/internal/domain/entity"
	"github.com/ilogush/cars-api/internal/domain/repository"
	pkgjwt "github.com/ilogush/cars-api/pkg/jwt"
	"github.com/ilogush/cars-api/pkg/logger"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "cars-api-test"
	testExpMin    = 60
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de persistencia compartidos por los tests del paquete
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byID    map[string]*entity.User
	byEmail map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	f := &fakeUserRepo{byID: map[string]*entity.User{}, byEmail: map[string]*entity.User{}}
	for _, u := range users {
		f.byID[u.ID] = u
		f.byEmail[u.Email] = u
	}
	return f
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u
	return nil
}
func (f *fakeUserRepo) GetByID(id string) (*entity.User, error)    { return f.byID[id], nil }
func (f *fakeUserRepo) GetByEmail(e string) (*entity.User, error)  { return f.byEmail[e], nil }
func (f *fakeUserRepo) Update(u *entity.User) error                { f.byID[u.ID] = u; return nil }
func (f *fakeUserRepo) List(repository.ListParams) ([]*entity.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) Delete(id string) error { delete(f.byID, id); return nil }

type fakeCompanyRepo struct {
	byID    map[string]*entity.Company
	byOwner map[string]*entity.Company
}

func newFakeCompanyRepo(companies ...*entity.Company) *fakeCompanyRepo {
	f := &fakeCompanyRepo{byID: map[string]*entity.Company{}, byOwner: map[string]*entity.Company{}}
	for _, c := range companies {
		f.byID[c.ID] = c
		if c.OwnerID != "" {
			f.byOwner[c.OwnerID] = c
		}
	}
	return f
}

func (f *fakeCompanyRepo) Create(c *entity.Company) error { f.byID[c.ID] = c; return nil }
func (f *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	return f.byID[id], nil
}
func (f *fakeCompanyRepo) GetByNIT(string) (*entity.Company, error) { return nil, nil }
func (f *fakeCompanyRepo) GetByOwner(ownerID string) (*entity.Company, error) {
	return f.byOwner[ownerID], nil
}
func (f *fakeCompanyRepo) Update(*entity.Company) error { return nil }
func (f *fakeCompanyRepo) List(repository.ListParams) ([]*entity.Company, error) {
	return nil, nil
}
func (f *fakeCompanyRepo) Delete(string) error { return nil }

type fakeManagerRepo struct {
	byUser map[string]*entity.ManagerProfile
}

func (f *fakeManagerRepo) Create(p *entity.ManagerProfile) error {
	if f.byUser == nil {
		f.byUser = map[string]*entity.ManagerProfile{}
	}
	f.byUser[p.UserID] = p
	return nil
}
func (f *fakeManagerRepo) GetByUserID(id string) (*entity.ManagerProfile, error) {
	return f.byUser[id], nil
}
func (f *fakeManagerRepo) DeleteByUserID(id string) error { delete(f.byUser, id); return nil }

type fakeAuditRepo struct {
	rows []*entity.AuditLog
}

func (f *fakeAuditRepo) Create(l *entity.AuditLog) error { f.rows = append(f.rows, l); return nil }
func (f *fakeAuditRepo) List(filter repository.AuditLogFilter, limit, offset int) ([]*entity.AuditLog, error) {
	return f.rows, nil
}
func (f *fakeAuditRepo) Clear() (int64, error) {
	n := int64(len(f.rows))
	f.rows = nil
	return n, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func testRecorder(repo repository.AuditLogRepository) *audit.Recorder {
	return audit.NewRecorder(repo, logger.New(logger.Config{Env: "test", Level: "error"}))
}

func testResolver(companyRepo repository.CompanyRepository, managerRepo repository.ManagerProfileRepository) *access.Resolver {
	return access.NewResolver(companyRepo, managerRepo)
}

// bearerFor genera el header Authorization para un usuario.
func bearerFor(t *testing.T, userID, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, userID, role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doGet lanza un GET con header Authorization opcional.
func doGet(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}
