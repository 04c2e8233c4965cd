package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/porcigest/porcigest-api/internal/domain"
	"github.com/porcigest/porcigest-api/internal/domain/entity"
	"github.com/porcigest/porcigest-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador de persistencia para usuarios. Pasar pool o tx (Querier).
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Create persiste un nuevo usuario y asigna el ID generado.
func (r *UsuarioRepo) Create(ctx context.Context, u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (nombre, apellido, tipo_documento, numero_documento, hashed_password, is_activo)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		u.Nombre, u.Apellido, u.TipoDocumento, u.NumeroDocumento, u.HashedPassword, u.Activo,
	).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDocumentoExiste
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UsuarioRepo) GetByID(ctx context.Context, id int) (*entity.Usuario, error) {
	query := `
		SELECT id, nombre, apellido, tipo_documento, numero_documento, hashed_password, is_activo
		FROM usuarios WHERE id = $1`
	var u entity.Usuario
	err := r.q.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.Nombre, &u.Apellido, &u.TipoDocumento, &u.NumeroDocumento, &u.HashedPassword, &u.Activo,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}

// GetByDocumento obtiene un usuario por su número de documento (username del sistema).
func (r *UsuarioRepo) GetByDocumento(ctx context.Context, numeroDocumento string) (*entity.Usuario, error) {
	query := `
		SELECT id, nombre, apellido, tipo_documento, numero_documento, hashed_password, is_activo
		FROM usuarios WHERE numero_documento = $1`
	var u entity.Usuario
	err := r.q.QueryRow(ctx, query, numeroDocumento).Scan(
		&u.ID, &u.Nombre, &u.Apellido, &u.TipoDocumento, &u.NumeroDocumento, &u.HashedPassword, &u.Activo,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario por documento: %w", err)
	}
	return &u, nil
}
