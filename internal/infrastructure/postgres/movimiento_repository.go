package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/porcigest/porcigest-api/internal/domain/entity"
	"github.com/porcigest/porcigest-api/internal/domain/repository"
)

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

// MovimientoRepo implementación del puerto MovimientoRepository sobre PostgreSQL.
// El log es append-only: este adaptador no expone UPDATE ni DELETE.
type MovimientoRepo struct {
	q Querier
}

// NewMovimientoRepository construye el adaptador del log de auditoría. Pasar pool o tx (Querier).
func NewMovimientoRepository(q Querier) *MovimientoRepo {
	return &MovimientoRepo{q: q}
}

// Create persiste un movimiento y asigna ID y fecha tal como quedaron en la base.
func (r *MovimientoRepo) Create(ctx context.Context, m *entity.Movimiento) error {
	query := `
		INSERT INTO movimientos
			(usuario_id, usuario_nombre, accion, modulo, descripcion, entidad_tipo, entidad_id,
			 tipo_movimiento, fecha_movimiento, ip_address, user_agent)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		m.UsuarioID, m.UsuarioNombre, m.Accion, m.Modulo, m.Descripcion, m.EntidadTipo, m.EntidadID,
		m.TipoMovimiento, m.FechaMovimiento, m.IPAddress, m.UserAgent,
	).Scan(&m.ID)
	if err != nil {
		return fmt.Errorf("insert movimiento: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *MovimientoRepo) GetByID(ctx context.Context, id int) (*entity.Movimiento, error) {
	query := `
		SELECT id, usuario_id, usuario_nombre, accion, modulo, descripcion, entidad_tipo, entidad_id,
		       tipo_movimiento, fecha_movimiento, ip_address, user_agent
		FROM movimientos WHERE id = $1`
	var m entity.Movimiento
	err := r.q.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.UsuarioID, &m.UsuarioNombre, &m.Accion, &m.Modulo, &m.Descripcion, &m.EntidadTipo, &m.EntidadID,
		&m.TipoMovimiento, &m.FechaMovimiento, &m.IPAddress, &m.UserAgent,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movimiento: %w", err)
	}
	return &m, nil
}

// buildFiltros arma el WHERE dinámico a partir de los filtros: search es un OR
// case-insensitive sobre usuario_nombre, accion y descripcion; el resto se
// combina con AND. El rango de fechas solo aplica si vienen ambos extremos.
func buildFiltros(f entity.MovimientoFiltros) (string, []any) {
	var conds []string
	var args []any

	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(usuario_nombre ILIKE $%d OR accion ILIKE $%d OR descripcion ILIKE $%d)", n, n, n))
	}
	if f.Modulo != "" {
		args = append(args, f.Modulo)
		conds = append(conds, fmt.Sprintf("modulo = $%d", len(args)))
	}
	if f.TipoMovimiento != "" {
		args = append(args, f.TipoMovimiento)
		conds = append(conds, fmt.Sprintf("tipo_movimiento = $%d", len(args)))
	}
	if f.UsuarioID != nil {
		args = append(args, *f.UsuarioID)
		conds = append(conds, fmt.Sprintf("usuario_id = $%d", len(args)))
	}
	if f.FechaInicio != nil && f.FechaFin != nil {
		// Rango inclusivo: inicio del día de FechaInicio .. fin del día de FechaFin.
		inicio := f.FechaInicio.Truncate(24 * time.Hour)
		fin := f.FechaFin.Truncate(24 * time.Hour).Add(24*time.Hour - time.Nanosecond)
		args = append(args, inicio)
		conds = append(conds, fmt.Sprintf("fecha_movimiento >= $%d", len(args)))
		args = append(args, fin)
		conds = append(conds, fmt.Sprintf("fecha_movimiento <= $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// List devuelve la página pedida (orden fijo: fecha descendente) y el total de
// filas filtradas antes de paginar.
func (r *MovimientoRepo) List(ctx context.Context, f entity.MovimientoFiltros) ([]*entity.Movimiento, int, error) {
	where, args := buildFiltros(f)

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM movimientos`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count movimientos: %w", err)
	}

	query := `
		SELECT id, usuario_id, usuario_nombre, accion, modulo, descripcion, entidad_tipo, entidad_id,
		       tipo_movimiento, fecha_movimiento, ip_address, user_agent
		FROM movimientos` + where + fmt.Sprintf(`
		ORDER BY fecha_movimiento DESC
		LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, f.Size, (f.Page-1)*f.Size)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()

	var list []*entity.Movimiento
	for rows.Next() {
		var m entity.Movimiento
		if err := rows.Scan(
			&m.ID, &m.UsuarioID, &m.UsuarioNombre, &m.Accion, &m.Modulo, &m.Descripcion, &m.EntidadTipo, &m.EntidadID,
			&m.TipoMovimiento, &m.FechaMovimiento, &m.IPAddress, &m.UserAgent,
		); err != nil {
			return nil, 0, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, &m)
	}
	return list, total, rows.Err()
}

// Total cuenta los movimientos desde la fecha dada.
func (r *MovimientoRepo) Total(ctx context.Context, desde time.Time) (int, error) {
	var total int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM movimientos WHERE fecha_movimiento >= $1`, desde,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("total movimientos: %w", err)
	}
	return total, nil
}

// ConteosPorTipo agrupa los movimientos de la ventana por tipo.
func (r *MovimientoRepo) ConteosPorTipo(ctx context.Context, desde time.Time) ([]entity.ConteoPorTipo, error) {
	const query = `
		SELECT tipo_movimiento, COUNT(*) AS cantidad
		FROM movimientos
		WHERE fecha_movimiento >= $1
		GROUP BY tipo_movimiento
		ORDER BY cantidad DESC`
	rows, err := r.q.Query(ctx, query, desde)
	if err != nil {
		return nil, fmt.Errorf("movimientos por tipo: %w", err)
	}
	defer rows.Close()
	var results []entity.ConteoPorTipo
	for rows.Next() {
		var row entity.ConteoPorTipo
		if err := rows.Scan(&row.Tipo, &row.Cantidad); err != nil {
			return nil, fmt.Errorf("movimientos por tipo scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// ConteosPorModulo agrupa los movimientos de la ventana por módulo.
func (r *MovimientoRepo) ConteosPorModulo(ctx context.Context, desde time.Time) ([]entity.ConteoPorModulo, error) {
	const query = `
		SELECT modulo, COUNT(*) AS cantidad
		FROM movimientos
		WHERE fecha_movimiento >= $1
		GROUP BY modulo
		ORDER BY cantidad DESC`
	rows, err := r.q.Query(ctx, query, desde)
	if err != nil {
		return nil, fmt.Errorf("movimientos por modulo: %w", err)
	}
	defer rows.Close()
	var results []entity.ConteoPorModulo
	for rows.Next() {
		var row entity.ConteoPorModulo
		if err := rows.Scan(&row.Modulo, &row.Cantidad); err != nil {
			return nil, fmt.Errorf("movimientos por modulo scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// UsuariosMasActivos devuelve los `limit` usuarios con más movimientos en la
// ventana, en orden descendente (empates resueltos por el orden del GROUP BY).
func (r *MovimientoRepo) UsuariosMasActivos(ctx context.Context, desde time.Time, limit int) ([]entity.UsuarioActividad, error) {
	const query = `
		SELECT usuario_nombre, COUNT(*) AS cantidad
		FROM movimientos
		WHERE fecha_movimiento >= $1
		GROUP BY usuario_nombre
		ORDER BY cantidad DESC
		LIMIT $2`
	rows, err := r.q.Query(ctx, query, desde, limit)
	if err != nil {
		return nil, fmt.Errorf("usuarios mas activos: %w", err)
	}
	defer rows.Close()
	var results []entity.UsuarioActividad
	for rows.Next() {
		var row entity.UsuarioActividad
		if err := rows.Scan(&row.Usuario, &row.Cantidad); err != nil {
			return nil, fmt.Errorf("usuarios mas activos scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
