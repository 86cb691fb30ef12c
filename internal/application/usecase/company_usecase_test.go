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
)

func altaEmpresa(ownerID string) dto.CreateCompanyRequest {
	return dto.CreateCompanyRequest{
		Name:    "Rentas del Norte",
		NIT:     "900123456-7",
		OwnerID: ownerID,
	}
}

func TestCompanyCreate_AsignaOwnerYQuedaActiva(t *testing.T) {
	users := newFakeUserRepo(&entity.User{ID: "owner-1", Email: "o@mail.com", Role: entity.RoleOwner})
	companies := newFakeCompanyRepo()
	uc := usecase.NewCompanyUseCase(companies, users)

	resp, err := uc.Create(altaEmpresa("owner-1"))

	require.NoError(t, err)
	assert.Equal(t, "owner-1", resp.OwnerID)
	assert.Equal(t, "active", resp.Status)
}

func TestCompanyCreate_NITDuplicado(t *testing.T) {
	users := newFakeUserRepo(&entity.User{ID: "owner-1", Email: "o@mail.com", Role: entity.RoleOwner})
	companies := newFakeCompanyRepo(&entity.Company{ID: "empresa-1", NIT: "900123456-7"})
	uc := usecase.NewCompanyUseCase(companies, users)

	_, err := uc.Create(altaEmpresa("owner-1"))

	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCompanyCreate_FalloDeLecturaSePropaga(t *testing.T) {
	// un fallo transitorio del GetByNIT no puede leerse como "NIT libre"
	users := newFakeUserRepo(&entity.User{ID: "owner-1", Email: "o@mail.com", Role: entity.RoleOwner})
	companies := newFakeCompanyRepo()
	companies.nitErr = assert.AnError
	uc := usecase.NewCompanyUseCase(companies, users)

	_, err := uc.Create(altaEmpresa("owner-1"))

	assert.ErrorIs(t, err, assert.AnError)
	assert.Empty(t, companies.byID, "no debe crearse la empresa tras el fallo")
}

func TestCompanyCreate_OwnerConEmpresa_Conflict(t *testing.T) {
	users := newFakeUserRepo(&entity.User{ID: "owner-1", Email: "o@mail.com", Role: entity.RoleOwner})
	companies := newFakeCompanyRepo(&entity.Company{ID: "empresa-1", NIT: "800111222-3", OwnerID: "owner-1"})
	uc := usecase.NewCompanyUseCase(companies, users)

	_, err := uc.Create(altaEmpresa("owner-1"))

	assert.ErrorIs(t, err, domain.ErrConflict, "un owner posee exactamente una empresa")
}

func TestCompanyCreate_OwnerConRolEquivocado(t *testing.T) {
	users := newFakeUserRepo(&entity.User{ID: "client-1", Email: "c@mail.com", Role: entity.RoleClient})
	uc := usecase.NewCompanyUseCase(newFakeCompanyRepo(), users)

	_, err := uc.Create(altaEmpresa("client-1"))

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCompanyGetByID_OwnerSoloVeLaSuya(t *testing.T) {
	users := newFakeUserRepo()
	companies := newFakeCompanyRepo(
		&entity.Company{ID: "empresa-7", OwnerID: "owner-1"},
		&entity.Company{ID: "empresa-8", OwnerID: "owner-2"},
	)
	uc := usecase.NewCompanyUseCase(companies, users)
	scope := access.Scope{Role: entity.RoleOwner, CompanyID: "empresa-7"}

	resp, err := uc.GetByID(scope, "", "empresa-7")
	require.NoError(t, err)
	assert.Equal(t, "empresa-7", resp.ID)

	_, err = uc.GetByID(scope, "", "empresa-8")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
