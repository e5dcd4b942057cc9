package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/supermercado-api/internal/application/dto"
	"github.com/jhoicas/supermercado-api/internal/domain/entity"
	"github.com/jhoicas/supermercado-api/internal/domain/repository"
	pkgjwt "github.com/jhoicas/supermercado-api/pkg/jwt"
	"github.com/jhoicas/supermercado-api/pkg/logger"
)

// LocalAuthUser key del usuario autenticado en c.Locals.
const LocalAuthUser = "auth_user"

// AuthMiddleware es la única puerta de toda ruta protegida. Por request:
//  1. extrae la cookie del access token (ausente -> 401 NO_TOKEN);
//  2. verifica firma y expiración contra el access secret (fallo -> 401
//     INVALID_TOKEN; la expiración NO encadena al refresh automáticamente,
//     el cliente debe llamar a /api/auth/refresh);
//  3. resuelve el usuario activo por el Subject del token (no existe o fue
//     archivado -> 401 USER_NOT_FOUND);
//  4. deja el usuario resuelto en Locals, sin hash, como valor inmutable
//     para los handlers.
func AuthMiddleware(jwtCfg pkgjwt.Config, users repository.UserRepository, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(AccessCookieName)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NO_TOKEN", Message: "no autorizado, no hay token"})
		}
		userID, err := pkgjwt.ParseAccess(jwtCfg, token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "no autorizado, token inválido o expirado"})
		}
		user, err := users.GetActiveByID(userID)
		if err != nil {
			return internalError(c, log, err, "error al resolver la sesión")
		}
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "no autorizado, usuario no encontrado"})
		}
		user.PasswordHash = ""
		c.Locals(LocalAuthUser, user)
		return c.Next()
	}
}

// RequireRole autoriza la ruta solo para los roles declarados (match exacto
// sobre el conjunto cerrado). Debe usarse DESPUÉS de AuthMiddleware.
func RequireRole(allowed ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetAuthUser(c)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NO_TOKEN", Message: "no autorizado"})
		}
		for _, r := range allowed {
			if user.Role == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado para el rol " + string(user.Role)})
	}
}

// GetAuthUser devuelve el usuario autenticado del contexto (después del
// middleware de auth), o nil si no hay sesión.
func GetAuthUser(c *fiber.Ctx) *entity.User {
	v := c.Locals(LocalAuthUser)
	if v == nil {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}
