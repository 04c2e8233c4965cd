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

var _ repository.SementalRepository = (*SementalRepo)(nil)

// SementalRepo implementación del puerto SementalRepository sobre PostgreSQL.
type SementalRepo struct {
	q Querier
}

// NewSementalRepository construye el adaptador de persistencia para sementales. Pasar pool o tx (Querier).
func NewSementalRepository(q Querier) *SementalRepo {
	return &SementalRepo{q: q}
}

// Create persiste un nuevo semental y asigna el ID generado.
func (r *SementalRepo) Create(ctx context.Context, s *entity.Semental) error {
	query := `
		INSERT INTO sementales (nombre, raza, tasa_fertilidad, usuario_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, s.Nombre, s.Raza, s.TasaFertilidad, s.UsuarioID).Scan(&s.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert semental: %w", err)
	}
	return nil
}

// GetByID obtiene un semental por ID.
func (r *SementalRepo) GetByID(ctx context.Context, id int) (*entity.Semental, error) {
	query := `
		SELECT id, nombre, raza, tasa_fertilidad, usuario_id
		FROM sementales WHERE id = $1`
	var s entity.Semental
	err := r.q.QueryRow(ctx, query, id).Scan(&s.ID, &s.Nombre, &s.Raza, &s.TasaFertilidad, &s.UsuarioID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get semental: %w", err)
	}
	return &s, nil
}

// GetByNombre obtiene un semental por su nombre (único).
func (r *SementalRepo) GetByNombre(ctx context.Context, nombre string) (*entity.Semental, error) {
	query := `
		SELECT id, nombre, raza, tasa_fertilidad, usuario_id
		FROM sementales WHERE nombre = $1`
	var s entity.Semental
	err := r.q.QueryRow(ctx, query, nombre).Scan(&s.ID, &s.Nombre, &s.Raza, &s.TasaFertilidad, &s.UsuarioID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get semental por nombre: %w", err)
	}
	return &s, nil
}

// List lista sementales con paginación por skip/limit.
func (r *SementalRepo) List(ctx context.Context, skip, limit int) ([]*entity.Semental, error) {
	query := `
		SELECT id, nombre, raza, tasa_fertilidad, usuario_id
		FROM sementales ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("list sementales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Semental
	for rows.Next() {
		var s entity.Semental
		if err := rows.Scan(&s.ID, &s.Nombre, &s.Raza, &s.TasaFertilidad, &s.UsuarioID); err != nil {
			return nil, fmt.Errorf("scan semental: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza un semental existente. El usuario_id nunca se reasigna.
func (r *SementalRepo) Update(ctx context.Context, s *entity.Semental) error {
	query := `
		UPDATE sementales SET nombre = $2, raza = $3, tasa_fertilidad = $4
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, s.ID, s.Nombre, s.Raza, s.TasaFertilidad)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update semental: %w", err)
	}
	return nil
}

// Delete elimina un semental por ID.
func (r *SementalRepo) Delete(ctx context.Context, id int) error {
	_, err := r.q.Exec(ctx, `DELETE FROM sementales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete semental: %w", err)
	}
	return nil
}
