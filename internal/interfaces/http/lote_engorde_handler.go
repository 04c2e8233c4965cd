package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/porcigest/porcigest-api/internal/application/audit"
	"github.com/porcigest/porcigest-api/internal/application/dto"
	"github.com/porcigest/porcigest-api/internal/application/usecase"
	"github.com/porcigest/porcigest-api/internal/domain/entity"
)

// LoteEngordeHandler maneja las peticiones HTTP de lotes de engorde (protegido).
type LoteEngordeHandler struct {
	uc    *usecase.LoteEngordeUseCase
	audit *audit.MovimientoUseCase
}

// NewLoteEngordeHandler construye el handler.
func NewLoteEngordeHandler(uc *usecase.LoteEngordeUseCase, auditUC *audit.MovimientoUseCase) *LoteEngordeHandler {
	return &LoteEngordeHandler{uc: uc, audit: auditUC}
}

func (h *LoteEngordeHandler) registrar(c *fiber.Ctx, accion, descripcion, tipo string, entidadID int) {
	id := entidadID
	h.audit.Registrar(c.UserContext(), GetCurrentUser(c), audit.Registro{
		Accion:         accion,
		Modulo:         entity.ModuloEngorde,
		Descripcion:    descripcion,
		EntidadTipo:    "lote_engorde",
		EntidadID:      &id,
		TipoMovimiento: tipo,
		IPAddress:      c.IP(),
		UserAgent:      c.Get("User-Agent"),
	})
}

// Create godoc
// @Summary      Registrar lote de engorde
// @Tags         engorde
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLoteEngordeRequest  true  "Datos del lote"
// @Success      201   {object}  dto.LoteEngordeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /engorde [post]
func (h *LoteEngordeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLoteEngordeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.LoteIDStr == "" || in.FechaInicio.IsZero() || in.CamadaOrigenID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "lote_id_str, fecha_inicio y camada_origen_id son requeridos"})
	}
	out, err := h.uc.Create(c.UserContext(), GetCurrentUser(c).ID, &in)
	if err != nil {
		return respondDomainError(c, err)
	}
	h.registrar(c, "Crear lote de engorde",
		fmt.Sprintf("Se registró el lote %s con %d animales", out.LoteIDStr, out.CantidadAnimales),
		entity.MovimientoCrear, out.ID)
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener lote por ID
// @Tags         engorde
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del lote"
// @Success      200  {object}  dto.LoteEngordeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /engorde/{id} [get]
func (h *LoteEngordeHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar lotes de engorde
// @Tags         engorde
// @Security     Bearer
// @Produce      json
// @Param        skip   query  int  false  "Offset"  default(0)
// @Param        limit  query  int  false  "Límite"  default(100)
// @Success      200  {array}  dto.LoteEngordeResponse
// @Router       /engorde [get]
func (h *LoteEngordeHandler) List(c *fiber.Ctx) error {
	skip, limit := paginacion(c)
	out, err := h.uc.List(c.UserContext(), skip, limit)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar lote
// @Tags         engorde
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del lote"
// @Param        body  body  dto.UpdateLoteEngordeRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.LoteEngordeResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /engorde/{id} [put]
func (h *LoteEngordeHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.UpdateLoteEngordeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), id, &in)
	if err != nil {
		return respondDomainError(c, err)
	}
	h.registrar(c, "Editar lote de engorde",
		fmt.Sprintf("Se actualizó el lote %s", out.LoteIDStr),
		entity.MovimientoEditar, out.ID)
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar lote
// @Tags         engorde
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del lote"
// @Success      200  {object}  dto.LoteEngordeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /engorde/{id} [delete]
func (h *LoteEngordeHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	out, err := h.uc.Delete(c.UserContext(), id)
	if err != nil {
		return respondDomainError(c, err)
	}
	h.registrar(c, "Eliminar lote de engorde",
		fmt.Sprintf("Se eliminó el lote %s", out.LoteIDStr),
		entity.MovimientoEliminar, out.ID)
	return c.JSON(out)
}
