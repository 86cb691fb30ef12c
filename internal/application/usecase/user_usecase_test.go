package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilogush/cars-api/internal/application/access"
	"github.com/ilogush/cars-api/internal/application/dto"
	"github.com/ilogush/cars-api/internal/application/usecase"
	"github.com/ilogush/cars-api/internal/domain"
	"github.com/ilogush/cars-api/internal/domain/entity"
	"github.com/ilogush/cars-api/internal/domain/repository"
)

type fakeUserRepo struct {
	byID     map[string]*entity.User
	byEmail  map[string]*entity.User
	emailErr error
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
func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) { return f.byID[id], nil }
func (f *fakeUserRepo) GetByEmail(e string) (*entity.User, error) {
	if f.emailErr != nil {
		return nil, f.emailErr
	}
	return f.byEmail[e], nil
}
func (f *fakeUserRepo) Update(u *entity.User) error { f.byID[u.ID] = u; return nil }
func (f *fakeUserRepo) List(repository.ListParams) ([]*entity.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) Delete(id string) error { delete(f.byID, id); return nil }

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

type fakeCompanyRepo struct {
	byID    map[string]*entity.Company
	byNIT   map[string]*entity.Company
	byOwner map[string]*entity.Company
	nitErr  error
}

func newFakeCompanyRepo(companies ...*entity.Company) *fakeCompanyRepo {
	f := &fakeCompanyRepo{
		byID:    map[string]*entity.Company{},
		byNIT:   map[string]*entity.Company{},
		byOwner: map[string]*entity.Company{},
	}
	for _, c := range companies {
		f.byID[c.ID] = c
		if c.NIT != "" {
			f.byNIT[c.NIT] = c
		}
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
func (f *fakeCompanyRepo) GetByNIT(nit string) (*entity.Company, error) {
	if f.nitErr != nil {
		return nil, f.nitErr
	}
	return f.byNIT[nit], nil
}
func (f *fakeCompanyRepo) GetByOwner(ownerID string) (*entity.Company, error) {
	return f.byOwner[ownerID], nil
}
func (f *fakeCompanyRepo) Update(*entity.Company) error { return nil }
func (f *fakeCompanyRepo) List(repository.ListParams) ([]*entity.Company, error) {
	return nil, nil
}
func (f *fakeCompanyRepo) Delete(string) error { return nil }

func newUserUC(users *fakeUserRepo, managers *fakeManagerRepo, companies *fakeCompanyRepo) *usecase.UserUseCase {
	return usecase.NewUserUseCase(users, managers, access.NewResolver(companies, managers))
}

func altaManager(companyID string) dto.CreateUserRequest {
	return dto.CreateUserRequest{
		Email:     "manager@empresa.com",
		Password:  "password123",
		Name:      "Manager Nuevo",
		Role:      entity.RoleManager,
		CompanyID: companyID,
	}
}

func TestUserCreate_ManagerQuedaConPerfilEnLaEmpresa(t *testing.T) {
	users := newFakeUserRepo()
	managers := &fakeManagerRepo{}
	uc := newUserUC(users, managers, newFakeCompanyRepo())

	scope := access.Scope{Role: entity.RoleOwner, CompanyID: "empresa-7"}
	resp, err := uc.Create(scope, "", altaManager(""))

	require.NoError(t, err)
	assert.Equal(t, "empresa-7", resp.CompanyID)

	profile := managers.byUser[resp.ID]
	require.NotNil(t, profile, "el alta de manager crea su manager_profile")
	assert.Equal(t, "empresa-7", profile.CompanyID)
}

func TestUserCreate_ManagerSinEmpresaDestino_NoPersisteNada(t *testing.T) {
	// El scope se valida antes de escribir: un fallo no deja un usuario
	// huérfano sin empresa.
	users := newFakeUserRepo()
	managers := &fakeManagerRepo{}
	uc := newUserUC(users, managers, newFakeCompanyRepo())

	scope := access.Scope{Role: entity.RoleOwner} // owner sin empresa asignada
	_, err := uc.Create(scope, "", altaManager(""))

	assert.ErrorIs(t, err, domain.ErrMissingScope)
	assert.Empty(t, users.byEmail, "el rechazo llega antes de cualquier escritura")
	assert.Empty(t, managers.byUser)
}

func TestUserCreate_OwnerIgnoraCompanyIdDelBody(t *testing.T) {
	users := newFakeUserRepo()
	managers := &fakeManagerRepo{}
	uc := newUserUC(users, managers, newFakeCompanyRepo())

	scope := access.Scope{Role: entity.RoleOwner, CompanyID: "empresa-7"}
	resp, err := uc.Create(scope, "", altaManager("empresa-ajena"))

	require.NoError(t, err)
	assert.Equal(t, "empresa-7", managers.byUser[resp.ID].CompanyID,
		"el companyId del body no saca al manager de la empresa del owner")
}

func TestUserCreate_AdminConCompanyIdDelBody(t *testing.T) {
	users := newFakeUserRepo()
	managers := &fakeManagerRepo{}
	uc := newUserUC(users, managers, newFakeCompanyRepo())

	resp, err := uc.Create(access.Scope{Role: entity.RoleAdmin}, "", altaManager("empresa-9"))

	require.NoError(t, err)
	assert.Equal(t, "empresa-9", managers.byUser[resp.ID].CompanyID)
}

func TestUserCreate_SoloAdminAsignaRolesAltos(t *testing.T) {
	uc := newUserUC(newFakeUserRepo(), &fakeManagerRepo{}, newFakeCompanyRepo())
	scope := access.Scope{Role: entity.RoleOwner, CompanyID: "empresa-7"}

	in := altaManager("")
	in.Role = entity.RoleAdmin
	_, err := uc.Create(scope, "", in)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	in.Role = entity.RoleOwner
	_, err = uc.Create(scope, "", in)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUserCreate_EmailDuplicado(t *testing.T) {
	users := newFakeUserRepo(&entity.User{ID: "u-1", Email: "manager@empresa.com"})
	uc := newUserUC(users, &fakeManagerRepo{}, newFakeCompanyRepo())

	scope := access.Scope{Role: entity.RoleOwner, CompanyID: "empresa-7"}
	_, err := uc.Create(scope, "", altaManager(""))

	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestUserCreate_FalloDeLecturaSePropaga(t *testing.T) {
	// un fallo transitorio de la DB no puede leerse como "no hay duplicado"
	users := newFakeUserRepo()
	users.emailErr = assert.AnError
	uc := newUserUC(users, &fakeManagerRepo{}, newFakeCompanyRepo())

	scope := access.Scope{Role: entity.RoleOwner, CompanyID: "empresa-7"}
	_, err := uc.Create(scope, "", altaManager(""))

	assert.ErrorIs(t, err, assert.AnError)
	assert.Empty(t, users.byEmail)
}

func TestUserGetByID_SoloAdminVeAOtros(t *testing.T) {
	users := newFakeUserRepo(&entity.User{ID: "u-1", Email: "a@mail.com", Role: entity.RoleClient})
	uc := newUserUC(users, &fakeManagerRepo{}, newFakeCompanyRepo())

	_, err := uc.GetByID(access.Scope{Role: entity.RoleClient}, "u-2", "u-1")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	resp, err := uc.GetByID(access.Scope{Role: entity.RoleAdmin}, "admin-1", "u-1")
	require.NoError(t, err)
	assert.Equal(t, "u-1", resp.ID)
}

func TestUserUpdate_SoloAdminCambiaEstado(t *testing.T) {
	users := newFakeUserRepo(&entity.User{ID: "u-1", Email: "a@mail.com", Role: entity.RoleClient, Status: "active"})
	uc := newUserUC(users, &fakeManagerRepo{}, newFakeCompanyRepo())

	suspended := "suspended"
	_, _, err := uc.Update(access.Scope{Role: entity.RoleClient}, "u-1", "u-1",
		dto.UpdateUserRequest{Status: &suspended})

	assert.ErrorIs(t, err, domain.ErrForbidden, "uno mismo no cambia su propio estado")
}
