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

var _ repository.TratamientoRepository = (*TratamientoRepo)(nil)

// TratamientoRepo implementación del puerto TratamientoRepository sobre PostgreSQL.
// La variante objetivo del dominio se mapea a las tres columnas FK nullable de
// la tabla en esta frontera; dentro del dominio solo existe la variante.
type TratamientoRepo struct {
	q Querier
}

// NewTratamientoRepository construye el adaptador de persistencia para tratamientos. Pasar pool o tx (Querier).
func NewTratamientoRepository(q Querier) *TratamientoRepo {
	return &TratamientoRepo{q: q}
}

// objetivoColumns descompone la variante en las tres columnas FK.
func objetivoColumns(o entity.TratamientoObjetivo) (reproductoraID, sementalID, loteID *int) {
	switch o.Tipo {
	case entity.ObjetivoReproductora:
		reproductoraID = &o.ID
	case entity.ObjetivoSemental:
		sementalID = &o.ID
	case entity.ObjetivoLoteEngorde:
		loteID = &o.ID
	}
	return
}

// objetivoFromColumns reconstruye la variante desde las columnas FK.
func objetivoFromColumns(reproductoraID, sementalID, loteID *int) entity.TratamientoObjetivo {
	switch {
	case reproductoraID != nil:
		return entity.TratamientoObjetivo{Tipo: entity.ObjetivoReproductora, ID: *reproductoraID}
	case sementalID != nil:
		return entity.TratamientoObjetivo{Tipo: entity.ObjetivoSemental, ID: *sementalID}
	case loteID != nil:
		return entity.TratamientoObjetivo{Tipo: entity.ObjetivoLoteEngorde, ID: *loteID}
	}
	return entity.TratamientoObjetivo{}
}

// Create persiste un nuevo tratamiento y asigna el ID generado.
func (r *TratamientoRepo) Create(ctx context.Context, t *entity.Tratamiento) error {
	repID, semID, loteID := objetivoColumns(t.Objetivo)
	query := `
		INSERT INTO tratamientos_veterinarios
			(tipo_intervencion, medicamento_producto, dosis, fecha, veterinario, observaciones,
			 reproductora_id, semental_id, lote_engorde_id, usuario_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		t.TipoIntervencion, t.MedicamentoProducto, t.Dosis, t.Fecha, t.Veterinario, t.Observaciones,
		repID, semID, loteID, t.UsuarioID,
	).Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("insert tratamiento: %w", err)
	}
	return nil
}

// GetByID obtiene un tratamiento plano (sin materializar el objetivo).
func (r *TratamientoRepo) GetByID(ctx context.Context, id int) (*entity.Tratamiento, error) {
	query := `
		SELECT id, tipo_intervencion, medicamento_producto, dosis, fecha, veterinario, observaciones,
		       reproductora_id, semental_id, lote_engorde_id, usuario_id
		FROM tratamientos_veterinarios WHERE id = $1`
	var t entity.Tratamiento
	var repID, semID, loteID *int
	err := r.q.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.TipoIntervencion, &t.MedicamentoProducto, &t.Dosis, &t.Fecha, &t.Veterinario, &t.Observaciones,
		&repID, &semID, &loteID, &t.UsuarioID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tratamiento: %w", err)
	}
	t.Objetivo = objetivoFromColumns(repID, semID, loteID)
	return &t, nil
}

const tratamientoDetailColumns = `
	t.id, t.tipo_intervencion, t.medicamento_producto, t.dosis, t.fecha, t.veterinario, t.observaciones,
	t.reproductora_id, t.semental_id, t.lote_engorde_id, t.usuario_id,
	m.id, m.codigo_id, m.fecha_nacimiento, m.raza, m.estado_reproductivo, m.usuario_id,
	s.id, s.nombre, s.raza, s.tasa_fertilidad, s.usuario_id,
	l.id, l.lote_id_str, l.fecha_inicio, l.cantidad_animales, l.peso_inicial_kg, l.peso_promedio_kg, l.camada_origen_id, l.usuario_id`

const tratamientoDetailJoins = `
	LEFT JOIN cerdas_reproductoras m ON m.id = t.reproductora_id
	LEFT JOIN sementales           s ON s.id = t.semental_id
	LEFT JOIN lotes_engorde        l ON l.id = t.lote_engorde_id`

// GetDetail obtiene un tratamiento con el objetivo que corresponda
// materializado. El objetivo queda en nil si la relación está rota.
func (r *TratamientoRepo) GetDetail(ctx context.Context, id int) (*entity.Tratamiento, error) {
	query := `
		SELECT ` + tratamientoDetailColumns + `
		FROM tratamientos_veterinarios t` + tratamientoDetailJoins + `
		WHERE t.id = $1`
	row := r.q.QueryRow(ctx, query, id)
	t, err := scanTratamientoDetail(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tratamiento detail: %w", err)
	}
	return t, nil
}

// List lista tratamientos con su objetivo materializado. Los tratamientos cuyo
// objetivo ya no existe quedan excluidos en lugar de romper el listado.
func (r *TratamientoRepo) List(ctx context.Context, skip, limit int) ([]*entity.Tratamiento, error) {
	query := `
		SELECT ` + tratamientoDetailColumns + `
		FROM tratamientos_veterinarios t` + tratamientoDetailJoins + `
		WHERE (t.reproductora_id IS NULL OR m.id IS NOT NULL)
		  AND (t.semental_id     IS NULL OR s.id IS NOT NULL)
		  AND (t.lote_engorde_id IS NULL OR l.id IS NOT NULL)
		ORDER BY t.id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("list tratamientos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Tratamiento
	for rows.Next() {
		t, err := scanTratamientoDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tratamiento: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// Update actualiza un tratamiento existente. El usuario_id nunca se reasigna.
func (r *TratamientoRepo) Update(ctx context.Context, t *entity.Tratamiento) error {
	repID, semID, loteID := objetivoColumns(t.Objetivo)
	query := `
		UPDATE tratamientos_veterinarios
		SET tipo_intervencion = $2, medicamento_producto = $3, dosis = $4, fecha = $5,
		    veterinario = $6, observaciones = $7, reproductora_id = $8, semental_id = $9, lote_engorde_id = $10
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.TipoIntervencion, t.MedicamentoProducto, t.Dosis, t.Fecha,
		t.Veterinario, t.Observaciones, repID, semID, loteID,
	)
	if err != nil {
		return fmt.Errorf("update tratamiento: %w", err)
	}
	return nil
}

// Delete elimina un tratamiento por ID.
func (r *TratamientoRepo) Delete(ctx context.Context, id int) error {
	_, err := r.q.Exec(ctx, `DELETE FROM tratamientos_veterinarios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete tratamiento: %w", err)
	}
	return nil
}

// scanTratamientoDetail escanea una fila de tratamiento con las columnas de
// los tres posibles objetivos (a lo sumo uno viene no-NULL).
func scanTratamientoDetail(row pgx.Row) (*entity.Tratamiento, error) {
	var t entity.Tratamiento
	var repID, semID, loteFKID *int
	var (
		mID, mUsuario           *int
		mCodigo, mRaza, mEstado *string
		mFecha                  *time.Time

		sID, sUsuario  *int
		sNombre, sRaza *string
		sTasa          *float64

		lID, lCantidad, lCamada, lUsuario *int
		lCodigo                           *string
		lFecha                            *time.Time
		lPesoInicial, lPeso               *float64
	)
	err := row.Scan(
		&t.ID, &t.TipoIntervencion, &t.MedicamentoProducto, &t.Dosis, &t.Fecha, &t.Veterinario, &t.Observaciones,
		&repID, &semID, &loteFKID, &t.UsuarioID,
		&mID, &mCodigo, &mFecha, &mRaza, &mEstado, &mUsuario,
		&sID, &sNombre, &sRaza, &sTasa, &sUsuario,
		&lID, &lCodigo, &lFecha, &lCantidad, &lPesoInicial, &lPeso, &lCamada, &lUsuario,
	)
	if err != nil {
		return nil, err
	}
	t.Objetivo = objetivoFromColumns(repID, semID, loteFKID)
	if mID != nil {
		t.Reproductora = &entity.Cerda{
			ID:                 *mID,
			CodigoID:           *mCodigo,
			FechaNacimiento:    *mFecha,
			Raza:               *mRaza,
			EstadoReproductivo: *mEstado,
			UsuarioID:          *mUsuario,
		}
	}
	if sID != nil {
		t.Semental = &entity.Semental{
			ID:             *sID,
			Nombre:         *sNombre,
			Raza:           *sRaza,
			TasaFertilidad: *sTasa,
			UsuarioID:      *sUsuario,
		}
	}
	if lID != nil {
		t.LoteEngorde = &entity.LoteEngorde{
			ID:               *lID,
			LoteIDStr:        *lCodigo,
			FechaInicio:      *lFecha,
			CantidadAnimales: *lCantidad,
			PesoInicialKg:    *lPesoInicial,
			PesoPromedioKg:   *lPeso,
			CamadaOrigenID:   *lCamada,
			UsuarioID:        *lUsuario,
		}
	}
	return &t, nil
}
