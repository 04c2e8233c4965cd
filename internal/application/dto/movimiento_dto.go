package dto

import "time"

// CreateMovimientoRequest entrada para registrar un movimiento manualmente.
// IP y user-agent no vienen en el cuerpo: el handler los toma de la request.
type CreateMovimientoRequest struct {
	Accion         string `json:"accion" validate:"required"`
	Modulo         string `json:"modulo" validate:"required"`
	Descripcion    string `json:"descripcion"`
	EntidadTipo    string `json:"entidad_tipo"`
	EntidadID      *int   `json:"entidad_id"`
	TipoMovimiento string `json:"tipo_movimiento" validate:"required,oneof=crear editar eliminar"`
}

// MovimientoResponse salida de una fila del log de auditoría.
type MovimientoResponse struct {
	ID              int       `json:"id"`
	UsuarioID       int       `json:"usuario_id"`
	UsuarioNombre   string    `json:"usuario_nombre"`
	Accion          string    `json:"accion"`
	Modulo          string    `json:"modulo"`
	Descripcion     string    `json:"descripcion"`
	EntidadTipo     string    `json:"entidad_tipo,omitempty"`
	EntidadID       *int      `json:"entidad_id,omitempty"`
	TipoMovimiento  string    `json:"tipo_movimiento"`
	FechaMovimiento time.Time `json:"fecha_movimiento"`
	IPAddress       string    `json:"ip_address,omitempty"`
	UserAgent       string    `json:"user_agent,omitempty"`
}

// MovimientosListResponse página del log con los metadatos de paginación.
type MovimientosListResponse struct {
	Movimientos []MovimientoResponse `json:"movimientos"`
	Total       int                  `json:"total"`
	Page        int                  `json:"page"`
	Size        int                  `json:"size"`
	TotalPages  int                  `json:"total_pages"`
}

// ConteoTipoDTO cantidad de movimientos por tipo.
type ConteoTipoDTO struct {
	Tipo     string `json:"tipo"`
	Cantidad int    `json:"cantidad"`
}

// ConteoModuloDTO cantidad de movimientos por módulo.
type ConteoModuloDTO struct {
	Modulo   string `json:"modulo"`
	Cantidad int    `json:"cantidad"`
}

// UsuarioActivoDTO cantidad de movimientos por usuario.
type UsuarioActivoDTO struct {
	Usuario  string `json:"usuario"`
	Cantidad int    `json:"cantidad"`
}

// EstadisticasResponse agregados del log sobre la ventana de días consultada.
type EstadisticasResponse struct {
	TotalMovimientos     int                `json:"total_movimientos"`
	MovimientosPorTipo   []ConteoTipoDTO    `json:"movimientos_por_tipo"`
	MovimientosPorModulo []ConteoModuloDTO  `json:"movimientos_por_modulo"`
	UsuariosActivos      []UsuarioActivoDTO `json:"usuarios_activos"`
	PeriodoDias          int                `json:"periodo_dias"`
}
