package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/supermercado-api/internal/application/dto"
	"github.com/jhoicas/supermercado-api/pkg/logger"
)

// internalError registra el fallo no anticipado (con método y ruta) y
// responde el 500 genérico. El detalle del error queda solo en el log del
// servidor, nunca en la respuesta.
func internalError(c *fiber.Ctx, log *logger.Logger, err error, message string) error {
	log.Error().
		Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg(message)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: message})
}
