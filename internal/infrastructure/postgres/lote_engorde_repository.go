package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/porcigest/porcigest-api/internal/domain"
	"github.com/porcigest/porcigest-api/internal/domain/entity"
	"github.com/porcigest/porcigest-api/internal/domain/repository"
)

var _ repository.LoteEngordeRepository = (*LoteEngordeRepo)(nil)

// LoteEngordeRepo implementación del puerto LoteEngordeRepository sobre PostgreSQL.
type LoteEngordeRepo struct {
	q Querier
}

// NewLoteEngordeRepository construye el adaptador de persistencia para lotes de engorde. Pasar pool o tx (Querier).
func NewLoteEngordeRepository(q Querier) *LoteEngordeRepo {
	return &LoteEngordeRepo{q: q}
}

// Create persiste un nuevo lote de engorde y asigna el ID generado.
func (r *LoteEngordeRepo) Create(ctx context.Context, l *entity.LoteEngorde) error {
	query := `
		INSERT INTO lotes_engorde (lote_id_str, fecha_inicio, cantidad_animales, peso_inicial_kg, peso_promedio_kg, camada_origen_id, usuario_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		l.LoteIDStr, l.FechaInicio, l.CantidadAnimales, l.PesoInicialKg, l.PesoPromedioKg, l.CamadaOrigenID, l.UsuarioID,
	).Scan(&l.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert lote engorde: %w", err)
	}
	return nil
}

// GetByID obtiene un lote plano (sin resolver la camada de origen).
func (r *LoteEngordeRepo) GetByID(ctx context.Context, id int) (*entity.LoteEngorde, error) {
	query := `
		SELECT id, lote_id_str, fecha_inicio, cantidad_animales, peso_inicial_kg, peso_promedio_kg, camada_origen_id, usuario_id
		FROM lotes_engorde WHERE id = $1`
	var l entity.LoteEngorde
	err := r.q.QueryRow(ctx, query, id).Scan(
		&l.ID, &l.LoteIDStr, &l.FechaInicio, &l.CantidadAnimales, &l.PesoInicialKg, &l.PesoPromedioKg, &l.CamadaOrigenID, &l.UsuarioID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lote engorde: %w", err)
	}
	return &l, nil
}

// GetByLoteIDStr obtiene un lote por su código de negocio.
func (r *LoteEngordeRepo) GetByLoteIDStr(ctx context.Context, loteIDStr string) (*entity.LoteEngorde, error) {
	query := `
		SELECT id, lote_id_str, fecha_inicio, cantidad_animales, peso_inicial_kg, peso_promedio_kg, camada_origen_id, usuario_id
		FROM lotes_engorde WHERE lote_id_str = $1`
	var l entity.LoteEngorde
	err := r.q.QueryRow(ctx, query, loteIDStr).Scan(
		&l.ID, &l.LoteIDStr, &l.FechaInicio, &l.CantidadAnimales, &l.PesoInicialKg, &l.PesoPromedioKg, &l.CamadaOrigenID, &l.UsuarioID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lote engorde por codigo: %w", err)
	}
	return &l, nil
}

const loteDetailColumns = `
	l.id, l.lote_id_str, l.fecha_inicio, l.cantidad_animales, l.peso_inicial_kg, l.peso_promedio_kg, l.camada_origen_id, l.usuario_id,
	c.id, c.fecha_nacimiento, c.numero_lechones, c.peso_promedio_kg, c.madre_id, c.padre_id, c.usuario_id,
	m.id, m.codigo_id, m.fecha_nacimiento, m.raza, m.estado_reproductivo, m.usuario_id,
	p.id, p.nombre, p.raza, p.tasa_fertilidad, p.usuario_id`

// GetDetail obtiene un lote con su camada de origen resuelta y, transitivamente,
// la madre y el padre de esa camada. Cualquier eslabón roto queda en nil.
func (r *LoteEngordeRepo) GetDetail(ctx context.Context, id int) (*entity.LoteEngorde, error) {
	query := `
		SELECT ` + loteDetailColumns + `
		FROM lotes_engorde l
		LEFT JOIN camadas_lechones    c ON c.id = l.camada_origen_id
		LEFT JOIN cerdas_reproductoras m ON m.id = c.madre_id
		LEFT JOIN sementales          p ON p.id = c.padre_id
		WHERE l.id = $1`
	row := r.q.QueryRow(ctx, query, id)
	l, err := scanLoteDetail(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lote engorde detail: %w", err)
	}
	return l, nil
}

// List lista lotes con la cadena de relaciones completa. Usa INNER JOIN, así
// que los lotes con relaciones rotas quedan excluidos del listado.
func (r *LoteEngordeRepo) List(ctx context.Context, skip, limit int) ([]*entity.LoteEngorde, error) {
	query := `
		SELECT ` + loteDetailColumns + `
		FROM lotes_engorde l
		JOIN camadas_lechones    c ON c.id = l.camada_origen_id
		JOIN cerdas_reproductoras m ON m.id = c.madre_id
		JOIN sementales          p ON p.id = c.padre_id
		ORDER BY l.id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("list lotes engorde: %w", err)
	}
	defer rows.Close()
	var list []*entity.LoteEngorde
	for rows.Next() {
		l, err := scanLoteDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lote engorde: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

// Update actualiza un lote existente. El usuario_id nunca se reasigna.
func (r *LoteEngordeRepo) Update(ctx context.Context, l *entity.LoteEngorde) error {
	query := `
		UPDATE lotes_engorde
		SET lote_id_str = $2, fecha_inicio = $3, cantidad_animales = $4, peso_inicial_kg = $5, peso_promedio_kg = $6, camada_origen_id = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		l.ID, l.LoteIDStr, l.FechaInicio, l.CantidadAnimales, l.PesoInicialKg, l.PesoPromedioKg, l.CamadaOrigenID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update lote engorde: %w", err)
	}
	return nil
}

// Delete elimina un lote por ID.
func (r *LoteEngordeRepo) Delete(ctx context.Context, id int) error {
	_, err := r.q.Exec(ctx, `DELETE FROM lotes_engorde WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete lote engorde: %w", err)
	}
	return nil
}

// scanLoteDetail escanea una fila de lote con columnas de camada, madre y
// padre (posiblemente NULL cuando vienen de un LEFT JOIN).
func scanLoteDetail(row pgx.Row) (*entity.LoteEngorde, error) {
	var l entity.LoteEngorde
	var (
		cID, cLechones, cMadre, cPadre, cUsuario *int
		cFecha                                   *time.Time
		cPeso                                    *float64

		mID, mUsuario           *int
		mCodigo, mRaza, mEstado *string
		mFecha                  *time.Time

		pID, pUsuario  *int
		pNombre, pRaza *string
		pTasa          *float64
	)
	err := row.Scan(
		&l.ID, &l.LoteIDStr, &l.FechaInicio, &l.CantidadAnimales, &l.PesoInicialKg, &l.PesoPromedioKg, &l.CamadaOrigenID, &l.UsuarioID,
		&cID, &cFecha, &cLechones, &cPeso, &cMadre, &cPadre, &cUsuario,
		&mID, &mCodigo, &mFecha, &mRaza, &mEstado, &mUsuario,
		&pID, &pNombre, &pRaza, &pTasa, &pUsuario,
	)
	if err != nil {
		return nil, err
	}
	if cID != nil {
		camada := &entity.Camada{
			ID:              *cID,
			FechaNacimiento: *cFecha,
			NumeroLechones:  *cLechones,
			PesoPromedioKg:  *cPeso,
			MadreID:         *cMadre,
			PadreID:         *cPadre,
			UsuarioID:       *cUsuario,
		}
		if mID != nil {
			camada.Madre = &entity.Cerda{
				ID:                 *mID,
				CodigoID:           *mCodigo,
				FechaNacimiento:    *mFecha,
				Raza:               *mRaza,
				EstadoReproductivo: *mEstado,
				UsuarioID:          *mUsuario,
			}
		}
		if pID != nil {
			camada.Padre = &entity.Semental{
				ID:             *pID,
				Nombre:         *pNombre,
				Raza:           *pRaza,
				TasaFertilidad: *pTasa,
				UsuarioID:      *pUsuario,
			}
		}
		l.CamadaOrigen = camada
	}
	return &l, nil
}
