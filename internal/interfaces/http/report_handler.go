package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/supermercado-api/internal/application/dto"
	"github.com/jhoicas/supermercado-api/internal/application/report"
	"github.com/jhoicas/supermercado-api/internal/domain"
	"github.com/jhoicas/supermercado-api/pkg/logger"
)

// ReportHandler expone el reporte PDF de reposición.
type ReportHandler struct {
	uc  *report.LowStockUseCase
	log *logger.Logger
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.LowStockUseCase, log *logger.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, log: log}
}

// LowStock godoc
// @Summary      Descargar PDF de productos en o bajo su stock mínimo
// @Description  Un admin puede acotar con ?supermarket_id=...; un manager
// @Description  siempre reporta sobre su sucursal asignada.
// @Tags         reports
// @Produce      application/pdf
// @Param        supermarket_id  query  string  false  "Sucursal (solo admin)"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/reports/low-stock [get]
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	actor := GetAuthUser(c)

	var supermarketID *string
	if v := c.Query("supermarket_id"); v != "" {
		supermarketID = &v
	}

	pdf, err := h.uc.Generate(c.Context(), actor, supermarketID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoBranchAssigned):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_BRANCH", Message: "usuario sin supermercado asignado"})
		case errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "supermercado no encontrado"})
		default:
			return internalError(c, h.log, err, "error al generar el reporte")
		}
	}

	filename := fmt.Sprintf("reposicion_%s.pdf", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdf)
}
