package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/porcigest/porcigest-api/internal/application/auth"
	"github.com/porcigest/porcigest-api/internal/application/dto"
	"github.com/porcigest/porcigest-api/internal/domain"
	"github.com/porcigest/porcigest-api/internal/domain/entity"
)

// fakeUsuarioRepo almacén de usuarios en memoria.
type fakeUsuarioRepo struct {
	seq   int
	items map[int]entity.Usuario
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{items: make(map[int]entity.Usuario)}
}

func (r *fakeUsuarioRepo) Create(_ context.Context, u *entity.Usuario) error {
	r.seq++
	u.ID = r.seq
	r.items[u.ID] = *u
	return nil
}

func (r *fakeUsuarioRepo) GetByID(_ context.Context, id int) (*entity.Usuario, error) {
	u, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *fakeUsuarioRepo) GetByDocumento(_ context.Context, numeroDocumento string) (*entity.Usuario, error) {
	for _, u := range r.items {
		if u.NumeroDocumento == numeroDocumento {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func nuevoAuthUC() (*auth.AuthUseCase, *fakeUsuarioRepo) {
	repo := newFakeUsuarioRepo()
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "test-secret-key-for-unit-tests",
		ExpMinutes: 60,
		Issuer:     "porcigest-test",
	})
	return uc, repo
}

func signupRequest() dto.SignupRequest {
	return dto.SignupRequest{
		Nombre:          "María",
		Apellido:        "Gómez",
		TipoDocumento:   entity.DocumentoCC,
		NumeroDocumento: "12345678",
		Password:        "secreto123",
	}
}

func TestSignup_CreaUsuarioActivoConHash(t *testing.T) {
	uc, repo := nuevoAuthUC()

	out, err := uc.Signup(context.Background(), signupRequest())
	require.NoError(t, err)

	assert.Equal(t, "12345678", out.NumeroDocumento)
	assert.True(t, out.Activo)

	guardado, err := repo.GetByDocumento(context.Background(), "12345678")
	require.NoError(t, err)
	require.NotNil(t, guardado)
	assert.NotEqual(t, "secreto123", guardado.HashedPassword, "el password nunca se guarda en claro")
	assert.NotEmpty(t, guardado.HashedPassword)
}

func TestSignup_DocumentoDuplicado(t *testing.T) {
	uc, _ := nuevoAuthUC()
	_, err := uc.Signup(context.Background(), signupRequest())
	require.NoError(t, err)

	otra := signupRequest()
	otra.Nombre = "Pedro"
	_, err = uc.Signup(context.Background(), otra)
	assert.ErrorIs(t, err, domain.ErrDocumentoExiste)
}

func TestLogin_CredencialesValidas_DevuelveToken(t *testing.T) {
	uc, _ := nuevoAuthUC()
	_, err := uc.Signup(context.Background(), signupRequest())
	require.NoError(t, err)

	out, err := uc.Login(context.Background(), "12345678", "secreto123")
	require.NoError(t, err)

	assert.NotEmpty(t, out.AccessToken)
	assert.Equal(t, "bearer", out.TokenType)
	assert.Equal(t, "María", out.Nombre)
	assert.Equal(t, "12345678", out.NumeroDocumento)
}

func TestLogin_PasswordIncorrecto_RetornaUnauthorized(t *testing.T) {
	uc, _ := nuevoAuthUC()
	_, err := uc.Signup(context.Background(), signupRequest())
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), "12345678", "otro-password")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente_RetornaUnauthorized(t *testing.T) {
	uc, _ := nuevoAuthUC()
	_, err := uc.Login(context.Background(), "00000000", "lo-que-sea")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInactivo_RetornaForbidden(t *testing.T) {
	uc, repo := nuevoAuthUC()
	_, err := uc.Signup(context.Background(), signupRequest())
	require.NoError(t, err)

	u := repo.items[1]
	u.Activo = false
	repo.items[1] = u

	_, err = uc.Login(context.Background(), "12345678", "secreto123")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestAuthenticate_TokenDeLogin_ResuelveUsuario(t *testing.T) {
	uc, _ := nuevoAuthUC()
	_, err := uc.Signup(context.Background(), signupRequest())
	require.NoError(t, err)

	login, err := uc.Login(context.Background(), "12345678", "secreto123")
	require.NoError(t, err)

	usuario, err := uc.Authenticate(context.Background(), login.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "12345678", usuario.NumeroDocumento)
	assert.Equal(t, "María Gómez", usuario.NombreCompleto())
}

func TestAuthenticate_TokenInvalido_RetornaUnauthorized(t *testing.T) {
	uc, _ := nuevoAuthUC()
	_, err := uc.Authenticate(context.Background(), "token.invalido.aqui")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthenticate_UsuarioInactivo_RetornaUnauthorized(t *testing.T) {
	uc, repo := nuevoAuthUC()
	_, err := uc.Signup(context.Background(), signupRequest())
	require.NoError(t, err)

	login, err := uc.Login(context.Background(), "12345678", "secreto123")
	require.NoError(t, err)

	u := repo.items[1]
	u.Activo = false
	repo.items[1] = u

	_, err = uc.Authenticate(context.Background(), login.AccessToken)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
