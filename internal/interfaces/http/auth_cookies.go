package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	pkgjwt "github.com/jhoicas/supermercado-api/pkg/jwt"
)

// Nombres de las cookies de sesión. El refresh va scoped al endpoint de
// refresh: el access token es el único que viaja en cada request.
const (
	AccessCookieName  = "jwt"
	RefreshCookieName = "jwt-refresh"

	refreshCookiePath = "/api/auth/refresh"
)

// CookieSettings atributos de las cookies de sesión. Secure se apaga solo en
// desarrollo local.
type CookieSettings struct {
	Secure     bool
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// setAuthCookies escribe el par de tokens como cookies HttpOnly SameSite=Strict.
// Los tokens jamás viajan en el cuerpo de una respuesta.
func setAuthCookies(c *fiber.Ctx, pair pkgjwt.Pair, s CookieSettings) {
	c.Cookie(&fiber.Cookie{
		Name:     AccessCookieName,
		Value:    pair.Access,
		Path:     "/",
		Expires:  time.Now().Add(s.AccessTTL),
		HTTPOnly: true,
		Secure:   s.Secure,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
	c.Cookie(&fiber.Cookie{
		Name:     RefreshCookieName,
		Value:    pair.Refresh,
		Path:     refreshCookiePath,
		Expires:  time.Now().Add(s.RefreshTTL),
		HTTPOnly: true,
		Secure:   s.Secure,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}

// clearAuthCookies invalida ambas cookies (valor vacío + expiración en época).
func clearAuthCookies(c *fiber.Ctx) {
	epoch := time.Unix(0, 0)
	c.Cookie(&fiber.Cookie{
		Name:     AccessCookieName,
		Value:    "",
		Path:     "/",
		Expires:  epoch,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
	c.Cookie(&fiber.Cookie{
		Name:     RefreshCookieName,
		Value:    "",
		Path:     refreshCookiePath,
		Expires:  epoch,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}
