package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/porcigest/porcigest-api/internal/application/audit"
	"github.com/porcigest/porcigest-api/internal/application/dto"
	"github.com/porcigest/porcigest-api/internal/domain/entity"
)

// MovimientoHandler maneja las peticiones HTTP del log de movimientos
// (protegido).
type MovimientoHandler struct {
	uc *audit.MovimientoUseCase
}

// NewMovimientoHandler construye el handler.
func NewMovimientoHandler(uc *audit.MovimientoUseCase) *MovimientoHandler {
	return &MovimientoHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar movimiento
// @Tags         movimientos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovimientoRequest  true  "Datos del movimiento"
// @Success      201   {object}  dto.MovimientoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /movimientos [post]
func (h *MovimientoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Accion == "" || in.Modulo == "" || in.TipoMovimiento == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "accion, modulo y tipo_movimiento son requeridos"})
	}
	out, err := h.uc.Crear(c.UserContext(), GetCurrentUser(c), &in, c.IP(), c.Get("User-Agent"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Consultar el log de movimientos
// @Tags         movimientos
// @Security     Bearer
// @Produce      json
// @Param        search           query  string  false  "Substring sobre usuario, acción y descripción"
// @Param        modulo           query  string  false  "Módulo"
// @Param        tipo_movimiento  query  string  false  "crear, editar o eliminar"
// @Param        usuario_id       query  int     false  "ID de usuario"
// @Param        fecha_inicio     query  string  false  "AAAA-MM-DD (requiere fecha_fin)"
// @Param        fecha_fin        query  string  false  "AAAA-MM-DD (requiere fecha_inicio)"
// @Param        page             query  int     false  "Página"            default(1)
// @Param        size             query  int     false  "Tamaño de página"  default(10)
// @Success      200  {object}  dto.MovimientosListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /movimientos [get]
func (h *MovimientoHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	size := c.QueryInt("size", 10)
	if page < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "page debe ser mayor o igual a 1"})
	}
	if size < 1 || size > 100 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "size debe estar entre 1 y 100"})
	}

	f := entity.MovimientoFiltros{
		Search:         c.Query("search"),
		Modulo:         c.Query("modulo"),
		TipoMovimiento: c.Query("tipo_movimiento"),
		Page:           page,
		Size:           size,
	}
	if v := c.QueryInt("usuario_id", 0); v > 0 {
		f.UsuarioID = &v
	}
	if s := c.Query("fecha_inicio"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha_inicio inválida, formato AAAA-MM-DD"})
		}
		f.FechaInicio = &t
	}
	if s := c.Query("fecha_fin"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha_fin inválida, formato AAAA-MM-DD"})
		}
		f.FechaFin = &t
	}

	out, err := h.uc.Query(c.UserContext(), f)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Estadisticas godoc
// @Summary      Estadísticas del log
// @Tags         movimientos
// @Security     Bearer
// @Produce      json
// @Param        dias  query  int  false  "Ventana en días"  default(30)
// @Success      200   {object}  dto.EstadisticasResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /movimientos/estadisticas [get]
func (h *MovimientoHandler) Estadisticas(c *fiber.Ctx) error {
	dias := c.QueryInt("dias", 30)
	if dias < 1 || dias > 365 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dias debe estar entre 1 y 365"})
	}
	out, err := h.uc.Estadisticas(c.UserContext(), dias)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener movimiento por ID
// @Tags         movimientos
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del movimiento"
// @Success      200  {object}  dto.MovimientoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /movimientos/{id} [get]
func (h *MovimientoHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// OpcionesModulos godoc
// @Summary      Módulos disponibles para filtrar
// @Tags         movimientos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string][]string
// @Router       /movimientos/opciones/modulos [get]
func (h *MovimientoHandler) OpcionesModulos(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"modulos": []string{
		entity.ModuloReproductoras,
		entity.ModuloSementales,
		entity.ModuloLechones,
		entity.ModuloEngorde,
		entity.ModuloVeterinaria,
	}})
}

// OpcionesTipos godoc
// @Summary      Tipos de movimiento disponibles para filtrar
// @Tags         movimientos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string][]string
// @Router       /movimientos/opciones/tipos [get]
func (h *MovimientoHandler) OpcionesTipos(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"tipos": []string{
		entity.MovimientoCrear,
		entity.MovimientoEditar,
		entity.MovimientoEliminar,
	}})
}
