package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ilogush/cars-api/internal/application/auth"
	"github.com/ilogush/cars-api/internal/application/dto"
	"github.com/ilogush/cars-api/internal/domain"
	"github.com/ilogush/cars-api/internal/domain/entity"
	"github.com/ilogush/cars-api/internal/domain/repository"
	pkgjwt "github.com/ilogush/cars-api/pkg/jwt"
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
func (f *fakeUserRepo) Update(u *entity.User) error               { f.byID[u.ID] = u; return nil }
func (f *fakeUserRepo) List(repository.ListParams) ([]*entity.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) Delete(id string) error { delete(f.byID, id); return nil }

var testJWT = auth.JWTConfig{Secret: "secreto-de-test", ExpMinutes: 60, Issuer: "cars-api-test"}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestRegisterUser_SiempreEsClient(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)

	resp, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "nuevo@mail.com",
		Password: "password123",
		Name:     "Nuevo Usuario",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleClient, resp.Role,
		"el registro público nunca emite roles privilegiados")
	assert.Equal(t, "active", resp.Status)

	stored := repo.byEmail["nuevo@mail.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "password123", stored.PasswordHash, "el password nunca se guarda en claro")
}

func TestRegisterUser_EmailDuplicado(t *testing.T) {
	repo := newFakeUserRepo(&entity.User{ID: "u-1", Email: "ya@mail.com"})
	uc := auth.NewAuthUseCase(repo, testJWT)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ya@mail.com", Password: "password123"})

	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegisterUser_FalloDeLecturaSePropaga(t *testing.T) {
	// un fallo transitorio de la DB no puede leerse como "el email está libre"
	repo := newFakeUserRepo()
	repo.emailErr = assert.AnError
	uc := auth.NewAuthUseCase(repo, testJWT)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "nuevo@mail.com", Password: "password123"})

	assert.ErrorIs(t, err, assert.AnError)
	assert.Empty(t, repo.byEmail, "no debe crearse nada tras el fallo de lectura")
}

func TestLogin_TokenLlevaUsuarioYRol(t *testing.T) {
	repo := newFakeUserRepo(&entity.User{
		ID: "u-1", Email: "owner@mail.com", PasswordHash: hashed(t, "password123"),
		Role: entity.RoleOwner, Status: "active",
	})
	uc := auth.NewAuthUseCase(repo, testJWT)

	resp, err := uc.Login(dto.LoginRequest{Email: "owner@mail.com", Password: "password123"})

	require.NoError(t, err)
	userID, role, err := pkgjwt.Parse(testJWT.Secret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", userID)
	assert.Equal(t, entity.RoleOwner, role)
}

func TestLogin_CredencialesMalas_MismoError(t *testing.T) {
	// usuario inexistente y password malo son indistinguibles para el caller
	repo := newFakeUserRepo(&entity.User{
		ID: "u-1", Email: "owner@mail.com", PasswordHash: hashed(t, "password123"), Status: "active",
	})
	uc := auth.NewAuthUseCase(repo, testJWT)

	_, err := uc.Login(dto.LoginRequest{Email: "owner@mail.com", Password: "incorrecto"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Email: "nadie@mail.com", Password: "password123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioSuspendido(t *testing.T) {
	repo := newFakeUserRepo(&entity.User{
		ID: "u-1", Email: "owner@mail.com", PasswordHash: hashed(t, "password123"), Status: "suspended",
	})
	uc := auth.NewAuthUseCase(repo, testJWT)

	_, err := uc.Login(dto.LoginRequest{Email: "owner@mail.com", Password: "password123"})

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestProfile_UsuarioInexistente(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWT)

	_, err := uc.Profile("fantasma", "")

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
