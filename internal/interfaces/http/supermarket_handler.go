package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/supermercado-api/internal/application/dto"
	"github.com/jhoicas/supermercado-api/internal/application/usecase"
	"github.com/jhoicas/supermercado-api/internal/domain"
	"github.com/jhoicas/supermercado-api/pkg/logger"
)

// SupermarketHandler maneja las peticiones HTTP para sucursales (protegido).
type SupermarketHandler struct {
	uc  *usecase.SupermarketUseCase
	log *logger.Logger
}

// NewSupermarketHandler construye el handler.
func NewSupermarketHandler(uc *usecase.SupermarketUseCase, log *logger.Logger) *SupermarketHandler {
	return &SupermarketHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar sucursales visibles para el usuario autenticado
// @Tags         supermarkets
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200  {object}  dto.SupermarketListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/supermarkets [get]
func (h *SupermarketHandler) List(c *fiber.Ctx) error {
	actor := GetAuthUser(c)
	limit, offset := pageParams(c)
	out, err := h.uc.List(actor, limit, offset)
	if err != nil {
		if errors.Is(err, domain.ErrNoBranchAssigned) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_BRANCH", Message: "usuario sin supermercado asignado"})
		}
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
		}
		return internalError(c, h.log, err, "error al obtener supermercados")
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear sucursal (solo admin)
// @Tags         supermarkets
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSupermarketRequest  true  "Datos de la sucursal"
// @Success      201  {object}  dto.SupermarketResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/supermarkets [post]
func (h *SupermarketHandler) Create(c *fiber.Ctx) error {
	actor := GetAuthUser(c)
	var in dto.CreateSupermarketRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Address == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y address son requeridos"})
	}
	out, err := h.uc.Create(actor, in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NAME_EXISTS", Message: "ya existe un supermercado con ese nombre"})
		}
		return internalError(c, h.log, err, "error al crear supermercado")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar sucursal (solo admin)
// @Tags         supermarkets
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la sucursal"
// @Param        body  body  dto.UpdateSupermarketRequest  true  "Campos a cambiar"
// @Success      200  {object}  dto.SupermarketResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/supermarkets/{id} [put]
func (h *SupermarketHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateSupermarketRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NAME_EXISTS", Message: "ya existe un supermercado con ese nombre"})
		}
		return internalError(c, h.log, err, "error al actualizar")
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "supermercado no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Archivar sucursal (borrado lógico, solo admin)
// @Tags         supermarkets
// @Produce      json
// @Param        id  path  string  true  "ID de la sucursal"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/supermarkets/{id} [delete]
func (h *SupermarketHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "supermercado no encontrado"})
		}
		return internalError(c, h.log, err, "error al eliminar")
	}
	return c.JSON(dto.MessageResponse{Message: "Supermercado eliminado (archivado) correctamente"})
}

// pageParams lee limit/offset con los topes de siempre.
func pageParams(c *fiber.Ctx) (int, int) {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
