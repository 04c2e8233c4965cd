// Package audit implementa el log de movimientos: el registro automático que
// dejan las operaciones de escritura y los endpoints de consulta del historial.
package audit

import (
	"context"
	"time"

	"github.com/porcigest/porcigest-api/internal/application/dto"
	"github.com/porcigest/porcigest-api/internal/domain"
	"github.com/porcigest/porcigest-api/internal/domain/entity"
	"github.com/porcigest/porcigest-api/internal/domain/repository"
	"github.com/porcigest/porcigest-api/pkg/logger"
)

// Registro describe un movimiento a dejar en el log. El usuario y la fecha
// los pone el caso de uso.
type Registro struct {
	Accion         string
	Modulo         string
	Descripcion    string
	EntidadTipo    string
	EntidadID      *int
	TipoMovimiento string
	IPAddress      string
	UserAgent      string
}

// topUsuariosActivos acota el ranking de usuarios en las estadísticas.
const topUsuariosActivos = 5

// MovimientoUseCase maneja la escritura y consulta del log de auditoría.
type MovimientoUseCase struct {
	movimientoRepo repository.MovimientoRepository
	log            *logger.Logger
}

func NewMovimientoUseCase(movimientoRepo repository.MovimientoRepository, log *logger.Logger) *MovimientoUseCase {
	return &MovimientoUseCase{movimientoRepo: movimientoRepo, log: log}
}

// Registrar deja un movimiento en el log sin propagar fallos: si la escritura
// falla se loguea y la operación que la originó sigue su curso. El historial
// es un subproducto, nunca la razón para fallar un guardado.
func (uc *MovimientoUseCase) Registrar(ctx context.Context, usuario *entity.Usuario, reg Registro) {
	m := &entity.Movimiento{
		UsuarioID:       usuario.ID,
		UsuarioNombre:   usuario.NombreCompleto(),
		Accion:          reg.Accion,
		Modulo:          reg.Modulo,
		Descripcion:     reg.Descripcion,
		EntidadTipo:     reg.EntidadTipo,
		EntidadID:       reg.EntidadID,
		TipoMovimiento:  reg.TipoMovimiento,
		FechaMovimiento: time.Now(),
		IPAddress:       reg.IPAddress,
		UserAgent:       reg.UserAgent,
	}
	if err := uc.movimientoRepo.Create(ctx, m); err != nil {
		uc.log.Warn().Err(err).
			Str("modulo", reg.Modulo).
			Str("accion", reg.Accion).
			Msg("no se pudo registrar el movimiento")
	}
}

// Crear registra un movimiento explícito (endpoint POST) y devuelve la fila
// creada. A diferencia de Registrar, aquí los errores sí se propagan.
func (uc *MovimientoUseCase) Crear(ctx context.Context, usuario *entity.Usuario, req *dto.CreateMovimientoRequest, ip, userAgent string) (*dto.MovimientoResponse, error) {
	switch req.TipoMovimiento {
	case entity.MovimientoCrear, entity.MovimientoEditar, entity.MovimientoEliminar:
	default:
		return nil, domain.ErrInvalidInput
	}

	m := &entity.Movimiento{
		UsuarioID:       usuario.ID,
		UsuarioNombre:   usuario.NombreCompleto(),
		Accion:          req.Accion,
		Modulo:          req.Modulo,
		Descripcion:     req.Descripcion,
		EntidadTipo:     req.EntidadTipo,
		EntidadID:       req.EntidadID,
		TipoMovimiento:  req.TipoMovimiento,
		FechaMovimiento: time.Now(),
		IPAddress:       ip,
		UserAgent:       userAgent,
	}
	if err := uc.movimientoRepo.Create(ctx, m); err != nil {
		return nil, err
	}
	return toMovimientoResponse(m), nil
}

// Query devuelve una página del log con los filtros aplicados. El total
// cuenta las filas filtradas antes de paginar; una página más allá del final
// devuelve la lista vacía con el mismo total.
func (uc *MovimientoUseCase) Query(ctx context.Context, f entity.MovimientoFiltros) (*dto.MovimientosListResponse, error) {
	movimientos, total, err := uc.movimientoRepo.List(ctx, f)
	if err != nil {
		return nil, err
	}

	items := make([]dto.MovimientoResponse, 0, len(movimientos))
	for _, m := range movimientos {
		items = append(items, *toMovimientoResponse(m))
	}

	totalPages := 0
	if f.Size > 0 {
		totalPages = (total + f.Size - 1) / f.Size
	}
	return &dto.MovimientosListResponse{
		Movimientos: items,
		Total:       total,
		Page:        f.Page,
		Size:        f.Size,
		TotalPages:  totalPages,
	}, nil
}

func (uc *MovimientoUseCase) GetByID(ctx context.Context, id int) (*dto.MovimientoResponse, error) {
	m, err := uc.movimientoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	return toMovimientoResponse(m), nil
}

// Estadisticas calcula los agregados del log sobre los últimos dias días.
func (uc *MovimientoUseCase) Estadisticas(ctx context.Context, dias int) (*dto.EstadisticasResponse, error) {
	desde := time.Now().AddDate(0, 0, -dias)

	total, err := uc.movimientoRepo.Total(ctx, desde)
	if err != nil {
		return nil, err
	}
	porTipo, err := uc.movimientoRepo.ConteosPorTipo(ctx, desde)
	if err != nil {
		return nil, err
	}
	porModulo, err := uc.movimientoRepo.ConteosPorModulo(ctx, desde)
	if err != nil {
		return nil, err
	}
	activos, err := uc.movimientoRepo.UsuariosMasActivos(ctx, desde, topUsuariosActivos)
	if err != nil {
		return nil, err
	}

	resp := &dto.EstadisticasResponse{
		TotalMovimientos:     total,
		MovimientosPorTipo:   make([]dto.ConteoTipoDTO, 0, len(porTipo)),
		MovimientosPorModulo: make([]dto.ConteoModuloDTO, 0, len(porModulo)),
		UsuariosActivos:      make([]dto.UsuarioActivoDTO, 0, len(activos)),
		PeriodoDias:          dias,
	}
	for _, c := range porTipo {
		resp.MovimientosPorTipo = append(resp.MovimientosPorTipo, dto.ConteoTipoDTO{Tipo: c.Tipo, Cantidad: c.Cantidad})
	}
	for _, c := range porModulo {
		resp.MovimientosPorModulo = append(resp.MovimientosPorModulo, dto.ConteoModuloDTO{Modulo: c.Modulo, Cantidad: c.Cantidad})
	}
	for _, u := range activos {
		resp.UsuariosActivos = append(resp.UsuariosActivos, dto.UsuarioActivoDTO{Usuario: u.Usuario, Cantidad: u.Cantidad})
	}
	return resp, nil
}

func toMovimientoResponse(m *entity.Movimiento) *dto.MovimientoResponse {
	return &dto.MovimientoResponse{
		ID:              m.ID,
		UsuarioID:       m.UsuarioID,
		UsuarioNombre:   m.UsuarioNombre,
		Accion:          m.Accion,
		Modulo:          m.Modulo,
		Descripcion:     m.Descripcion,
		EntidadTipo:     m.EntidadTipo,
		EntidadID:       m.EntidadID,
		TipoMovimiento:  m.TipoMovimiento,
		FechaMovimiento: m.FechaMovimiento,
		IPAddress:       m.IPAddress,
		UserAgent:       m.UserAgent,
	}
}
