package entity

import "time"

// Tipos de movimiento del log de auditoría.
const (
	MovimientoCrear    = "crear"
	MovimientoEditar   = "editar"
	MovimientoEliminar = "eliminar"
)

// Módulos de la aplicación, usados como etiqueta de los movimientos.
const (
	ModuloReproductoras = "Reproductoras"
	ModuloSementales    = "Sementales"
	ModuloLechones      = "Lechones"
	ModuloEngorde       = "Engorde"
	ModuloVeterinaria   = "Veterinaria"
)

// Movimiento es una fila del log de auditoría: quién hizo qué, sobre qué
// entidad y desde dónde. Una vez escrita es inmutable; el flujo normal de la
// aplicación nunca la actualiza ni la borra.
type Movimiento struct {
	ID              int
	UsuarioID       int
	UsuarioNombre   string // denormalizado: el nombre al momento de la acción
	Accion          string
	Modulo          string
	Descripcion     string
	EntidadTipo     string
	EntidadID       *int
	TipoMovimiento  string
	FechaMovimiento time.Time
	IPAddress       string
	UserAgent       string
}

// MovimientoFiltros filtros opcionales para consultar el log.
// Search es un substring case-insensitive contra usuario_nombre, accion y
// descripcion (OR); el resto se combina con AND. El rango de fechas solo
// aplica cuando FechaInicio y FechaFin vienen juntos.
type MovimientoFiltros struct {
	Search         string
	Modulo         string
	TipoMovimiento string
	UsuarioID      *int
	FechaInicio    *time.Time
	FechaFin       *time.Time
	Page           int
	Size           int
}

// ConteoPorTipo cantidad de movimientos de un tipo.
type ConteoPorTipo struct {
	Tipo     string
	Cantidad int
}

// ConteoPorModulo cantidad de movimientos de un módulo.
type ConteoPorModulo struct {
	Modulo   string
	Cantidad int
}

// UsuarioActividad cantidad de movimientos atribuidos a un usuario.
type UsuarioActividad struct {
	Usuario  string
	Cantidad int
}

// MovimientoEstadisticas agregados sobre la ventana de días consultada.
type MovimientoEstadisticas struct {
	TotalMovimientos int
	PorTipo          []ConteoPorTipo
	PorModulo        []ConteoPorModulo
	UsuariosActivos  []UsuarioActividad
	PeriodoDias      int
}
