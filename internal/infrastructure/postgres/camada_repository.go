package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/porcigest/porcigest-api/internal/domain/entity"
	"github.com/porcigest/porcigest-api/internal/domain/repository"
)

var _ repository.CamadaRepository = (*CamadaRepo)(nil)

// CamadaRepo implementación del puerto CamadaRepository sobre PostgreSQL.
type CamadaRepo struct {
	q Querier
}

// NewCamadaRepository construye el adaptador de persistencia para camadas. Pasar pool o tx (Querier).
func NewCamadaRepository(q Querier) *CamadaRepo {
	return &CamadaRepo{q: q}
}

// Create persiste una nueva camada y asigna el ID generado.
func (r *CamadaRepo) Create(ctx context.Context, c *entity.Camada) error {
	query := `
		INSERT INTO camadas_lechones (fecha_nacimiento, numero_lechones, peso_promedio_kg, madre_id, padre_id, usuario_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		c.FechaNacimiento, c.NumeroLechones, c.PesoPromedioKg, c.MadreID, c.PadreID, c.UsuarioID,
	).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("insert camada: %w", err)
	}
	return nil
}

// GetByID obtiene una camada plana (sin resolver madre ni padre).
func (r *CamadaRepo) GetByID(ctx context.Context, id int) (*entity.Camada, error) {
	query := `
		SELECT id, fecha_nacimiento, numero_lechones, peso_promedio_kg, madre_id, padre_id, usuario_id
		FROM camadas_lechones WHERE id = $1`
	var c entity.Camada
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.FechaNacimiento, &c.NumeroLechones, &c.PesoPromedioKg, &c.MadreID, &c.PadreID, &c.UsuarioID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get camada: %w", err)
	}
	return &c, nil
}

// GetDetail obtiene una camada con su madre y padre resueltos vía LEFT JOIN.
// Madre o Padre quedan en nil si la relación está rota; el caso de uso decide
// si eso es un error de integridad.
func (r *CamadaRepo) GetDetail(ctx context.Context, id int) (*entity.Camada, error) {
	query := `
		SELECT c.id, c.fecha_nacimiento, c.numero_lechones, c.peso_promedio_kg, c.madre_id, c.padre_id, c.usuario_id,
		       m.id, m.codigo_id, m.fecha_nacimiento, m.raza, m.estado_reproductivo, m.usuario_id,
		       p.id, p.nombre, p.raza, p.tasa_fertilidad, p.usuario_id
		FROM camadas_lechones c
		LEFT JOIN cerdas_reproductoras m ON m.id = c.madre_id
		LEFT JOIN sementales          p ON p.id = c.padre_id
		WHERE c.id = $1`
	row := r.q.QueryRow(ctx, query, id)
	c, err := scanCamadaDetail(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get camada detail: %w", err)
	}
	return c, nil
}

// List lista camadas con madre y padre resueltos. Usa INNER JOIN, así que las
// camadas con relaciones rotas quedan excluidas en lugar de romper el listado.
func (r *CamadaRepo) List(ctx context.Context, skip, limit int) ([]*entity.Camada, error) {
	query := `
		SELECT c.id, c.fecha_nacimiento, c.numero_lechones, c.peso_promedio_kg, c.madre_id, c.padre_id, c.usuario_id,
		       m.id, m.codigo_id, m.fecha_nacimiento, m.raza, m.estado_reproductivo, m.usuario_id,
		       p.id, p.nombre, p.raza, p.tasa_fertilidad, p.usuario_id
		FROM camadas_lechones c
		JOIN cerdas_reproductoras m ON m.id = c.madre_id
		JOIN sementales          p ON p.id = c.padre_id
		ORDER BY c.id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("list camadas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Camada
	for rows.Next() {
		c, err := scanCamadaDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("scan camada: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update actualiza una camada existente. El usuario_id nunca se reasigna.
func (r *CamadaRepo) Update(ctx context.Context, c *entity.Camada) error {
	query := `
		UPDATE camadas_lechones
		SET fecha_nacimiento = $2, numero_lechones = $3, peso_promedio_kg = $4, madre_id = $5, padre_id = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.FechaNacimiento, c.NumeroLechones, c.PesoPromedioKg, c.MadreID, c.PadreID,
	)
	if err != nil {
		return fmt.Errorf("update camada: %w", err)
	}
	return nil
}

// Delete elimina una camada por ID.
func (r *CamadaRepo) Delete(ctx context.Context, id int) error {
	_, err := r.q.Exec(ctx, `DELETE FROM camadas_lechones WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete camada: %w", err)
	}
	return nil
}

// scanCamadaDetail escanea una fila de camada con columnas de madre y padre
// (posiblemente NULL cuando vienen de un LEFT JOIN).
func scanCamadaDetail(row pgx.Row) (*entity.Camada, error) {
	var c entity.Camada
	var (
		mID, mUsuario           *int
		mCodigo, mRaza, mEstado *string
		mFecha                  *time.Time

		pID, pUsuario  *int
		pNombre, pRaza *string
		pTasa          *float64
	)
	err := row.Scan(
		&c.ID, &c.FechaNacimiento, &c.NumeroLechones, &c.PesoPromedioKg, &c.MadreID, &c.PadreID, &c.UsuarioID,
		&mID, &mCodigo, &mFecha, &mRaza, &mEstado, &mUsuario,
		&pID, &pNombre, &pRaza, &pTasa, &pUsuario,
	)
	if err != nil {
		return nil, err
	}
	if mID != nil {
		c.Madre = &entity.Cerda{
			ID:                 *mID,
			CodigoID:           *mCodigo,
			FechaNacimiento:    *mFecha,
			Raza:               *mRaza,
			EstadoReproductivo: *mEstado,
			UsuarioID:          *mUsuario,
		}
	}
	if pID != nil {
		c.Padre = &entity.Semental{
			ID:             *pID,
			Nombre:         *pNombre,
			Raza:           *pRaza,
			TasaFertilidad: *pTasa,
			UsuarioID:      *pUsuario,
		}
	}
	return &c, nil
}
