package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Kardex-api/internal/application/dto"
	"github.com/jhoicas/Kardex-api/internal/domain"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
)

// memUserRepo repositorio de usuarios en memoria para los tests.
type memUserRepo struct {
	byEmail map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byEmail: map[string]*entity.User{}}
}

func (r *memUserRepo) Create(u *entity.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	r.byEmail[u.Email] = u
	return nil
}

func (r *memUserRepo) Update(u *entity.User) error {
	r.byEmail[u.Email] = u
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) FindByEmail(email string) (*entity.User, error) {
	return r.byEmail[email], nil
}

func newAuthFixture() (*AuthUseCase, *memUserRepo) {
	repo := newMemUserRepo()
	uc := NewAuthUseCase(repo, JWTConfig{
		Secret:     "secret-de-test",
		ExpMinutes: 60,
		Issuer:     "kardex-api-test",
	})
	return uc, repo
}

func TestRegisterUser_CreaUsuarioConHashYRolPorDefecto(t *testing.T) {
	uc, repo := newAuthFixture()

	out, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "ana@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "ana@example.com", out.Email)
	assert.Equal(t, entity.RoleStaff, out.Role, "sin rol explícito el default es staff")
	assert.Equal(t, "ana@example.com", out.Name, "sin nombre, se usa el email")
	assert.Equal(t, "active", out.Status)

	stored := repo.byEmail["ana@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "password123", stored.PasswordHash, "el password nunca se guarda en plano")
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestRegisterUser_EmailDuplicado(t *testing.T) {
	uc, _ := newAuthFixture()

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@example.com", Password: "password123"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "ana@example.com", Password: "otra-clave-123"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_CredencialesCorrectas_DevuelveToken(t *testing.T) {
	uc, _ := newAuthFixture()

	_, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "ana@example.com",
		Password: "password123",
		Role:     entity.RoleAdmin,
	})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "password123"})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "ana@example.com", out.User.Email)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc, _ := newAuthFixture()

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@example.com", Password: "password123"})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Nil(t, out)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _ := newAuthFixture()

	out, err := uc.Login(dto.LoginRequest{Email: "nadie@example.com", Password: "password123"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Nil(t, out)
}

func TestMe_DevuelveUsuarioSinHash(t *testing.T) {
	uc, repo := newAuthFixture()

	created, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@example.com", Password: "password123"})
	require.NoError(t, err)
	require.NotNil(t, repo.byEmail["ana@example.com"])

	out, err := uc.Me(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, out.ID)
	assert.Equal(t, "ana@example.com", out.Email)
}

func TestMe_UsuarioInexistente(t *testing.T) {
	uc, _ := newAuthFixture()

	out, err := uc.Me("00000000-0000-0000-0000-000000000099")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Nil(t, out)
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	uc, repo := newAuthFixture()

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@example.com", Password: "password123"})
	require.NoError(t, err)
	repo.byEmail["ana@example.com"].Status = "suspended"

	out, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "password123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Nil(t, out)
}
