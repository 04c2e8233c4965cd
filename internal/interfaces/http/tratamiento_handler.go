package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/porcigest/porcigest-api/internal/application/audit"
	"github.com/porcigest/porcigest-api/internal/application/dto"
	"github.com/porcigest/porcigest-api/internal/application/usecase"
	"github.com/porcigest/porcigest-api/internal/domain/entity"
)

// TratamientoHandler maneja las peticiones HTTP de tratamientos veterinarios
// (protegido).
type TratamientoHandler struct {
	uc    *usecase.TratamientoUseCase
	audit *audit.MovimientoUseCase
}

// NewTratamientoHandler construye el handler.
func NewTratamientoHandler(uc *usecase.TratamientoUseCase, auditUC *audit.MovimientoUseCase) *TratamientoHandler {
	return &TratamientoHandler{uc: uc, audit: auditUC}
}

func (h *TratamientoHandler) registrar(c *fiber.Ctx, accion, descripcion, tipo string, entidadID int) {
	id := entidadID
	h.audit.Registrar(c.UserContext(), GetCurrentUser(c), audit.Registro{
		Accion:         accion,
		Modulo:         entity.ModuloVeterinaria,
		Descripcion:    descripcion,
		EntidadTipo:    "tratamiento",
		EntidadID:      &id,
		TipoMovimiento: tipo,
		IPAddress:      c.IP(),
		UserAgent:      c.Get("User-Agent"),
	})
}

// Create godoc
// @Summary      Registrar tratamiento veterinario
// @Tags         veterinaria
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTratamientoRequest  true  "Datos del tratamiento (exactamente un objetivo)"
// @Success      201   {object}  dto.TratamientoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /veterinaria [post]
func (h *TratamientoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTratamientoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.TipoIntervencion == "" || in.Fecha.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo_intervencion y fecha son requeridos"})
	}
	out, err := h.uc.Create(c.UserContext(), GetCurrentUser(c).ID, &in)
	if err != nil {
		return respondDomainError(c, err)
	}
	h.registrar(c, "Crear tratamiento",
		fmt.Sprintf("Se registró el tratamiento %s", out.TipoIntervencion),
		entity.MovimientoCrear, out.ID)
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener tratamiento por ID
// @Tags         veterinaria
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del tratamiento"
// @Success      200  {object}  dto.TratamientoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /veterinaria/{id} [get]
func (h *TratamientoHandler) GetByID(c *fiber.Ctx) error {
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

// List godoc
// @Summary      Listar tratamientos
// @Tags         veterinaria
// @Security     Bearer
// @Produce      json
// @Param        skip   query  int  false  "Offset"  default(0)
// @Param        limit  query  int  false  "Límite"  default(100)
// @Success      200  {array}  dto.TratamientoResponse
// @Router       /veterinaria [get]
func (h *TratamientoHandler) List(c *fiber.Ctx) error {
	skip, limit := paginacion(c)
	out, err := h.uc.List(c.UserContext(), skip, limit)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar tratamiento
// @Tags         veterinaria
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del tratamiento"
// @Param        body  body  dto.UpdateTratamientoRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.TratamientoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /veterinaria/{id} [put]
func (h *TratamientoHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.UpdateTratamientoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), id, &in)
	if err != nil {
		return respondDomainError(c, err)
	}
	h.registrar(c, "Editar tratamiento",
		fmt.Sprintf("Se actualizó el tratamiento %s", out.TipoIntervencion),
		entity.MovimientoEditar, out.ID)
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar tratamiento
// @Tags         veterinaria
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del tratamiento"
// @Success      200  {object}  dto.TratamientoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /veterinaria/{id} [delete]
func (h *TratamientoHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	out, err := h.uc.Delete(c.UserContext(), id)
	if err != nil {
		return respondDomainError(c, err)
	}
	h.registrar(c, "Eliminar tratamiento",
		fmt.Sprintf("Se eliminó el tratamiento %s", out.TipoIntervencion),
		entity.MovimientoEliminar, out.ID)
	return c.JSON(out)
}
