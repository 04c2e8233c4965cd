package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/porcigest/porcigest-api/internal/application/audit"
	"github.com/porcigest/porcigest-api/internal/application/dto"
	"github.com/porcigest/porcigest-api/internal/application/usecase"
	"github.com/porcigest/porcigest-api/internal/domain/entity"
)

// CamadaHandler maneja las peticiones HTTP de camadas de lechones (protegido).
type CamadaHandler struct {
	uc    *usecase.CamadaUseCase
	audit *audit.MovimientoUseCase
}

// NewCamadaHandler construye el handler.
func NewCamadaHandler(uc *usecase.CamadaUseCase, auditUC *audit.MovimientoUseCase) *CamadaHandler {
	return &CamadaHandler{uc: uc, audit: auditUC}
}

func (h *CamadaHandler) registrar(c *fiber.Ctx, accion, descripcion, tipo string, entidadID int) {
	id := entidadID
	h.audit.Registrar(c.UserContext(), GetCurrentUser(c), audit.Registro{
		Accion:         accion,
		Modulo:         entity.ModuloLechones,
		Descripcion:    descripcion,
		EntidadTipo:    "camada",
		EntidadID:      &id,
		TipoMovimiento: tipo,
		IPAddress:      c.IP(),
		UserAgent:      c.Get("User-Agent"),
	})
}

// Create godoc
// @Summary      Registrar camada de lechones
// @Tags         lechones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCamadaRequest  true  "Datos de la camada"
// @Success      201   {object}  dto.CamadaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /lechones [post]
func (h *CamadaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCamadaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.FechaNacimiento.IsZero() || in.MadreID == 0 || in.PadreID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha_nacimiento, madre_id y padre_id son requeridos"})
	}
	out, err := h.uc.Create(c.UserContext(), GetCurrentUser(c).ID, &in)
	if err != nil {
		return respondDomainError(c, err)
	}
	h.registrar(c, "Crear camada",
		fmt.Sprintf("Se registró una camada de %d lechones (madre %s)", out.NumeroLechones, out.Madre.CodigoID),
		entity.MovimientoCrear, out.ID)
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener camada por ID
// @Tags         lechones
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la camada"
// @Success      200  {object}  dto.CamadaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /lechones/{id} [get]
func (h *CamadaHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar camadas
// @Tags         lechones
// @Security     Bearer
// @Produce      json
// @Param        skip   query  int  false  "Offset"  default(0)
// @Param        limit  query  int  false  "Límite"  default(100)
// @Success      200  {array}  dto.CamadaResponse
// @Router       /lechones [get]
func (h *CamadaHandler) List(c *fiber.Ctx) error {
	skip, limit := paginacion(c)
	out, err := h.uc.List(c.UserContext(), skip, limit)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar camada
// @Tags         lechones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la camada"
// @Param        body  body  dto.UpdateCamadaRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.CamadaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /lechones/{id} [put]
func (h *CamadaHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.UpdateCamadaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), id, &in)
	if err != nil {
		return respondDomainError(c, err)
	}
	h.registrar(c, "Editar camada",
		fmt.Sprintf("Se actualizó la camada %d", out.ID),
		entity.MovimientoEditar, out.ID)
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar camada
// @Tags         lechones
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la camada"
// @Success      200  {object}  dto.CamadaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /lechones/{id} [delete]
func (h *CamadaHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	out, err := h.uc.Delete(c.UserContext(), id)
	if err != nil {
		return respondDomainError(c, err)
	}
	h.registrar(c, "Eliminar camada",
		fmt.Sprintf("Se eliminó la camada %d", out.ID),
		entity.MovimientoEliminar, out.ID)
	return c.JSON(out)
}
