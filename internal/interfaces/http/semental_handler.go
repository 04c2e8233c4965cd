package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/porcigest/porcigest-api/internal/application/audit"
	"github.com/porcigest/porcigest-api/internal/application/dto"
	"github.com/porcigest/porcigest-api/internal/application/usecase"
	"github.com/porcigest/porcigest-api/internal/domain/entity"
)

// SementalHandler maneja las peticiones HTTP de sementales (protegido).
type SementalHandler struct {
	uc    *usecase.SementalUseCase
	audit *audit.MovimientoUseCase
}

// NewSementalHandler construye el handler.
func NewSementalHandler(uc *usecase.SementalUseCase, auditUC *audit.MovimientoUseCase) *SementalHandler {
	return &SementalHandler{uc: uc, audit: auditUC}
}

func (h *SementalHandler) registrar(c *fiber.Ctx, accion, descripcion, tipo string, entidadID int) {
	id := entidadID
	h.audit.Registrar(c.UserContext(), GetCurrentUser(c), audit.Registro{
		Accion:         accion,
		Modulo:         entity.ModuloSementales,
		Descripcion:    descripcion,
		EntidadTipo:    "semental",
		EntidadID:      &id,
		TipoMovimiento: tipo,
		IPAddress:      c.IP(),
		UserAgent:      c.Get("User-Agent"),
	})
}

// Create godoc
// @Summary      Registrar semental
// @Tags         sementales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSementalRequest  true  "Datos del semental"
// @Success      201   {object}  dto.SementalResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /sementales [post]
func (h *SementalHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSementalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Nombre == "" || in.Raza == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre y raza son requeridos"})
	}
	out, err := h.uc.Create(c.UserContext(), GetCurrentUser(c).ID, &in)
	if err != nil {
		return respondDomainError(c, err)
	}
	h.registrar(c, "Crear semental",
		fmt.Sprintf("Se registró el semental %s", out.Nombre),
		entity.MovimientoCrear, out.ID)
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener semental por ID
// @Tags         sementales
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del semental"
// @Success      200  {object}  dto.SementalResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /sementales/{id} [get]
func (h *SementalHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar sementales
// @Tags         sementales
// @Security     Bearer
// @Produce      json
// @Param        skip   query  int  false  "Offset"  default(0)
// @Param        limit  query  int  false  "Límite"  default(100)
// @Success      200  {array}  dto.SementalResponse
// @Router       /sementales [get]
func (h *SementalHandler) List(c *fiber.Ctx) error {
	skip, limit := paginacion(c)
	out, err := h.uc.List(c.UserContext(), skip, limit)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar semental
// @Tags         sementales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del semental"
// @Param        body  body  dto.UpdateSementalRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.SementalResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /sementales/{id} [put]
func (h *SementalHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.UpdateSementalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), id, &in)
	if err != nil {
		return respondDomainError(c, err)
	}
	h.registrar(c, "Editar semental",
		fmt.Sprintf("Se actualizó el semental %s", out.Nombre),
		entity.MovimientoEditar, out.ID)
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar semental
// @Tags         sementales
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del semental"
// @Success      200  {object}  dto.SementalResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /sementales/{id} [delete]
func (h *SementalHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	out, err := h.uc.Delete(c.UserContext(), id)
	if err != nil {
		return respondDomainError(c, err)
	}
	h.registrar(c, "Eliminar semental",
		fmt.Sprintf("Se eliminó el semental %s", out.Nombre),
		entity.MovimientoEliminar, out.ID)
	return c.JSON(out)
}
