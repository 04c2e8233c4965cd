package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/porcigest/porcigest-api/internal/application/dto"
	"github.com/porcigest/porcigest-api/internal/domain"
	"github.com/porcigest/porcigest-api/internal/domain/entity"
	"github.com/porcigest/porcigest-api/internal/domain/repository"
	"github.com/porcigest/porcigest-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y resolución de tokens.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, jwtCfg: jwtCfg}
}

// Signup crea un usuario: hashea el password con bcrypt y persiste.
// Devuelve ErrDocumentoExiste si el número de documento ya está registrado.
// El pre-chequeo es el camino rápido; el constraint UNIQUE de la base es el
// guardián real, y el repositorio también mapea esa violación al mismo error.
func (uc *AuthUseCase) Signup(ctx context.Context, in dto.SignupRequest) (*dto.UsuarioResponse, error) {
	existing, err := uc.usuarioRepo.GetByDocumento(ctx, in.NumeroDocumento)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDocumentoExiste
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	usuario := &entity.Usuario{
		Nombre:          in.Nombre,
		Apellido:        in.Apellido,
		TipoDocumento:   in.TipoDocumento,
		NumeroDocumento: in.NumeroDocumento,
		HashedPassword:  string(hash),
		Activo:          true,
	}
	if err := uc.usuarioRepo.Create(ctx, usuario); err != nil {
		return nil, err
	}
	return toUsuarioResponse(usuario), nil
}

// Login verifica documento/password, genera el JWT y retorna el token con los
// datos de presentación del usuario. Credenciales incorrectas -> ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, numeroDocumento, password string) (*dto.TokenResponse, error) {
	usuario, err := uc.usuarioRepo.GetByDocumento(ctx, numeroDocumento)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.HashedPassword), []byte(password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !usuario.Activo {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, usuario.NumeroDocumento, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{
		AccessToken:     token,
		TokenType:       "bearer",
		Nombre:          usuario.Nombre,
		Apellido:        usuario.Apellido,
		NumeroDocumento: usuario.NumeroDocumento,
		TipoDocumento:   usuario.TipoDocumento,
	}, nil
}

// Authenticate resuelve un token de acceso a su usuario activo.
// Token inválido, usuario inexistente o inactivo -> ErrUnauthorized.
func (uc *AuthUseCase) Authenticate(ctx context.Context, tokenString string) (*entity.Usuario, error) {
	numeroDocumento, err := jwt.Parse(uc.jwtCfg.Secret, tokenString)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	usuario, err := uc.usuarioRepo.GetByDocumento(ctx, numeroDocumento)
	if err != nil {
		return nil, err
	}
	if usuario == nil || !usuario.Activo {
		return nil, domain.ErrUnauthorized
	}
	return usuario, nil
}

func toUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:              u.ID,
		Nombre:          u.Nombre,
		Apellido:        u.Apellido,
		TipoDocumento:   u.TipoDocumento,
		NumeroDocumento: u.NumeroDocumento,
		Activo:          u.Activo,
	}
}
