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

var _ repository.CerdaRepository = (*CerdaRepo)(nil)

// CerdaRepo implementación del puerto CerdaRepository sobre PostgreSQL.
type CerdaRepo struct {
	q Querier
}

// NewCerdaRepository construye el adaptador de persistencia para cerdas. Pasar pool o tx (Querier).
func NewCerdaRepository(q Querier) *CerdaRepo {
	return &CerdaRepo{q: q}
}

// Create persiste una nueva cerda y asigna el ID generado.
func (r *CerdaRepo) Create(ctx context.Context, c *entity.Cerda) error {
	query := `
		INSERT INTO cerdas_reproductoras (codigo_id, fecha_nacimiento, raza, estado_reproductivo, usuario_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		c.CodigoID, c.FechaNacimiento, c.Raza, c.EstadoReproductivo, c.UsuarioID,
	).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cerda: %w", err)
	}
	return nil
}

// GetByID obtiene una cerda por ID.
func (r *CerdaRepo) GetByID(ctx context.Context, id int) (*entity.Cerda, error) {
	query := `
		SELECT id, codigo_id, fecha_nacimiento, raza, estado_reproductivo, usuario_id
		FROM cerdas_reproductoras WHERE id = $1`
	var c entity.Cerda
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.CodigoID, &c.FechaNacimiento, &c.Raza, &c.EstadoReproductivo, &c.UsuarioID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cerda: %w", err)
	}
	return &c, nil
}

// GetByCodigo obtiene una cerda por su código de negocio.
func (r *CerdaRepo) GetByCodigo(ctx context.Context, codigoID string) (*entity.Cerda, error) {
	query := `
		SELECT id, codigo_id, fecha_nacimiento, raza, estado_reproductivo, usuario_id
		FROM cerdas_reproductoras WHERE codigo_id = $1`
	var c entity.Cerda
	err := r.q.QueryRow(ctx, query, codigoID).Scan(
		&c.ID, &c.CodigoID, &c.FechaNacimiento, &c.Raza, &c.EstadoReproductivo, &c.UsuarioID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cerda por codigo: %w", err)
	}
	return &c, nil
}

// List lista cerdas con paginación por skip/limit.
func (r *CerdaRepo) List(ctx context.Context, skip, limit int) ([]*entity.Cerda, error) {
	query := `
		SELECT id, codigo_id, fecha_nacimiento, raza, estado_reproductivo, usuario_id
		FROM cerdas_reproductoras ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("list cerdas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cerda
	for rows.Next() {
		var c entity.Cerda
		if err := rows.Scan(&c.ID, &c.CodigoID, &c.FechaNacimiento, &c.Raza, &c.EstadoReproductivo, &c.UsuarioID); err != nil {
			return nil, fmt.Errorf("scan cerda: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza una cerda existente. El usuario_id nunca se reasigna.
func (r *CerdaRepo) Update(ctx context.Context, c *entity.Cerda) error {
	query := `
		UPDATE cerdas_reproductoras
		SET codigo_id = $2, fecha_nacimiento = $3, raza = $4, estado_reproductivo = $5
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.CodigoID, c.FechaNacimiento, c.Raza, c.EstadoReproductivo,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update cerda: %w", err)
	}
	return nil
}

// Delete elimina una cerda por ID.
func (r *CerdaRepo) Delete(ctx context.Context, id int) error {
	_, err := r.q.Exec(ctx, `DELETE FROM cerdas_reproductoras WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cerda: %w", err)
	}
	return nil
}
