package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/porcigest/porcigest-api/internal/application/audit"
	"github.com/porcigest/porcigest-api/internal/application/dto"
	"github.com/porcigest/porcigest-api/internal/application/usecase"
	"github.com/porcigest/porcigest-api/internal/domain/entity"
)

// CerdaHandler maneja las peticiones HTTP de cerdas reproductoras (protegido).
type CerdaHandler struct {
	uc    *usecase.CerdaUseCase
	audit *audit.MovimientoUseCase
}

// NewCerdaHandler construye el handler.
func NewCerdaHandler(uc *usecase.CerdaUseCase, auditUC *audit.MovimientoUseCase) *CerdaHandler {
	return &CerdaHandler{uc: uc, audit: auditUC}
}

func (h *CerdaHandler) registrar(c *fiber.Ctx, accion, descripcion, tipo string, entidadID int) {
	id := entidadID
	h.audit.Registrar(c.UserContext(), GetCurrentUser(c), audit.Registro{
		Accion:         accion,
		Modulo:         entity.ModuloReproductoras,
		Descripcion:    descripcion,
		EntidadTipo:    "cerda",
		EntidadID:      &id,
		TipoMovimiento: tipo,
		IPAddress:      c.IP(),
		UserAgent:      c.Get("User-Agent"),
	})
}

// Create godoc
// @Summary      Registrar cerda reproductora
// @Tags         reproductoras
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCerdaRequest  true  "Datos de la cerda"
// @Success      201   {object}  dto.CerdaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /reproductoras [post]
func (h *CerdaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCerdaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.CodigoID == "" || in.Raza == "" || in.FechaNacimiento.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "codigo_id, fecha_nacimiento y raza son requeridos"})
	}
	out, err := h.uc.Create(c.UserContext(), GetCurrentUser(c).ID, &in)
	if err != nil {
		return respondDomainError(c, err)
	}
	h.registrar(c, "Crear reproductora",
		fmt.Sprintf("Se registró la reproductora %s", out.CodigoID),
		entity.MovimientoCrear, out.ID)
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener cerda por ID
// @Tags         reproductoras
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la cerda"
// @Success      200  {object}  dto.CerdaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /reproductoras/{id} [get]
func (h *CerdaHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar cerdas
// @Tags         reproductoras
// @Security     Bearer
// @Produce      json
// @Param        skip   query  int  false  "Offset"  default(0)
// @Param        limit  query  int  false  "Límite"  default(100)
// @Success      200  {array}  dto.CerdaResponse
// @Router       /reproductoras [get]
func (h *CerdaHandler) List(c *fiber.Ctx) error {
	skip, limit := paginacion(c)
	out, err := h.uc.List(c.UserContext(), skip, limit)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar cerda
// @Tags         reproductoras
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la cerda"
// @Param        body  body  dto.UpdateCerdaRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.CerdaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /reproductoras/{id} [put]
func (h *CerdaHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.UpdateCerdaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), id, &in)
	if err != nil {
		return respondDomainError(c, err)
	}
	h.registrar(c, "Editar reproductora",
		fmt.Sprintf("Se actualizó la reproductora %s", out.CodigoID),
		entity.MovimientoEditar, out.ID)
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar cerda
// @Tags         reproductoras
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la cerda"
// @Success      200  {object}  dto.CerdaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /reproductoras/{id} [delete]
func (h *CerdaHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	out, err := h.uc.Delete(c.UserContext(), id)
	if err != nil {
		return respondDomainError(c, err)
	}
	h.registrar(c, "Eliminar reproductora",
		fmt.Sprintf("Se eliminó la reproductora %s", out.CodigoID),
		entity.MovimientoEliminar, out.ID)
	return c.JSON(out)
}

// paginacion lee skip/limit de la query con los defaults de la API y acota el
// límite a 100.
func paginacion(c *fiber.Ctx) (skip, limit int) {
	skip = c.QueryInt("skip", 0)
	limit = c.QueryInt("limit", 100)
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = 100
	}
	if limit > 100 {
		limit = 100
	}
	return skip, limit
}
