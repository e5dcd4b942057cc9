package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/supermercado-api/internal/application/auth"
	apphttp "github.com/jhoicas/supermercado-api/internal/interfaces/http"
	"github.com/jhoicas/supermercado-api/pkg/logger"
)

// buildAuthApp arma la app con las rutas de auth reales sobre el repo fake.
func buildAuthApp(repo *fakeUserRepo) *fiber.App {
	app := fiber.New()
	cookies := apphttp.CookieSettings{
		Secure:     false, // desarrollo
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 168 * time.Hour,
	}
	uc := auth.NewAuthUseCase(repo, testJWTConfig())
	h := apphttp.NewAuthHandler(uc, cookies, logger.Nop())

	grp := app.Group("/api/auth")
	grp.Post("/register", h.Register)
	grp.Post("/login", h.Login)
	grp.Post("/refresh", h.Refresh)
	grp.Post("/logout", h.Logout)
	grp.Get("/profile", apphttp.AuthMiddleware(testJWTConfig(), repo, logger.Nop()), h.Profile)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string, cookies ...*http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func registerAna(t *testing.T, app *fiber.App) *http.Response {
	t.Helper()
	return postJSON(t, app, "/api/auth/register",
		`{"first_name":"Ana","last_name":"Ríos","email":"ana@x.com","password":"secreto1","role":"admin"}`)
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro y login: cookies, nunca tokens en el cuerpo
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_SeteaAmbasCookies(t *testing.T) {
	app := buildAuthApp(newFakeUserRepo())
	resp := registerAna(t, app)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	access := cookieByName(resp, apphttp.AccessCookieName)
	require.NotNil(t, access, "debe setear la cookie de access")
	assert.True(t, access.HttpOnly)
	assert.Equal(t, "/", access.Path)
	assert.NotEmpty(t, access.Value)

	refresh := cookieByName(resp, apphttp.RefreshCookieName)
	require.NotNil(t, refresh, "debe setear la cookie de refresh")
	assert.True(t, refresh.HttpOnly)
	assert.Equal(t, "/api/auth/refresh", refresh.Path, "el refresh va scoped a su endpoint")

	body, _ := io.ReadAll(resp.Body)
	assert.NotContains(t, string(body), access.Value, "el token no debe viajar en el cuerpo")
	assert.NotContains(t, string(body), refresh.Value)
}

func TestRegister_EmailDuplicado_Retorna400(t *testing.T) {
	app := buildAuthApp(newFakeUserRepo())
	registerAna(t, app).Body.Close()

	resp := registerAna(t, app)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "EMAIL_EXISTS")
}

func TestLogin_Exitoso_SeteaCookiesYDevuelveUsuario(t *testing.T) {
	app := buildAuthApp(newFakeUserRepo())
	registerAna(t, app).Body.Close()

	resp := postJSON(t, app, "/api/auth/login", `{"email":"ana@x.com","password":"secreto1"}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, cookieByName(resp, apphttp.AccessCookieName))
	require.NotNil(t, cookieByName(resp, apphttp.RefreshCookieName))

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Inicio de sesión exitoso")
	assert.Contains(t, string(body), "ana@x.com")
	assert.NotContains(t, string(body), "password")
}

// Password incorrecto y cuenta archivada responden exactamente igual hacia
// afuera: 401 sin distinguir la causa.
func TestLogin_PasswordIncorrecto_Retorna401(t *testing.T) {
	app := buildAuthApp(newFakeUserRepo())
	registerAna(t, app).Body.Close()

	resp := postJSON(t, app, "/api/auth/login", `{"email":"ana@x.com","password":"incorrecto"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Nil(t, cookieByName(resp, apphttp.AccessCookieName), "un login fallido no setea cookies")
}

func TestLogin_CuentaArchivada_Retorna401Indistinguible(t *testing.T) {
	repo := newFakeUserRepo()
	app := buildAuthApp(repo)
	registerAna(t, app).Body.Close()
	for id := range repo.users {
		require.NoError(t, repo.Archive(id))
	}

	respMal := postJSON(t, app, "/api/auth/login", `{"email":"ana@x.com","password":"incorrecto"}`)
	defer respMal.Body.Close()
	respArch := postJSON(t, app, "/api/auth/login", `{"email":"ana@x.com","password":"secreto1"}`)
	defer respArch.Body.Close()

	assert.Equal(t, respMal.StatusCode, respArch.StatusCode,
		"cuenta archivada y password malo deben responder igual")
	bodyMal, _ := io.ReadAll(respMal.Body)
	bodyArch, _ := io.ReadAll(respArch.Body)
	assert.Equal(t, string(bodyMal), string(bodyArch))
}

// ──────────────────────────────────────────────────────────────────────────────
// Refresh: rotación y limpieza
// ──────────────────────────────────────────────────────────────────────────────

func TestRefresh_RotaElPar(t *testing.T) {
	app := buildAuthApp(newFakeUserRepo())
	reg := registerAna(t, app)
	reg.Body.Close()
	refresh := cookieByName(reg, apphttp.RefreshCookieName)
	require.NotNil(t, refresh)

	resp := postJSON(t, app, "/api/auth/refresh", "", refresh)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	nuevoAccess := cookieByName(resp, apphttp.AccessCookieName)
	nuevoRefresh := cookieByName(resp, apphttp.RefreshCookieName)
	require.NotNil(t, nuevoAccess)
	require.NotNil(t, nuevoRefresh, "el refresh también rota en cada refresh")
	assert.NotEmpty(t, nuevoAccess.Value)
	assert.NotEmpty(t, nuevoRefresh.Value)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Token refrescado exitosamente")
}

func TestRefresh_SinCookie_Retorna401(t *testing.T) {
	app := buildAuthApp(newFakeUserRepo())
	resp := postJSON(t, app, "/api/auth/refresh", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "NO_TOKEN")
}

// Refresh inválido: 403 y limpieza de AMBAS cookies para forzar re-login.
func TestRefresh_TokenInvalido_Retorna403YLimpiaCookies(t *testing.T) {
	app := buildAuthApp(newFakeUserRepo())
	resp := postJSON(t, app, "/api/auth/refresh", "",
		&http.Cookie{Name: apphttp.RefreshCookieName, Value: "token.invalido.aqui"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "REFRESH_INVALID")

	access := cookieByName(resp, apphttp.AccessCookieName)
	require.NotNil(t, access, "debe reescribir la cookie de access vaciada")
	assert.Empty(t, access.Value)
	refresh := cookieByName(resp, apphttp.RefreshCookieName)
	require.NotNil(t, refresh)
	assert.Empty(t, refresh.Value)
}

// Un access token presentado en la cookie de refresh debe ser rechazado.
func TestRefresh_ConAccessToken_Retorna403(t *testing.T) {
	app := buildAuthApp(newFakeUserRepo())
	reg := registerAna(t, app)
	reg.Body.Close()
	access := cookieByName(reg, apphttp.AccessCookieName)
	require.NotNil(t, access)

	resp := postJSON(t, app, "/api/auth/refresh", "",
		&http.Cookie{Name: apphttp.RefreshCookieName, Value: access.Value})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Logout y perfil
// ──────────────────────────────────────────────────────────────────────────────

func TestLogout_LimpiaAmbasCookies(t *testing.T) {
	app := buildAuthApp(newFakeUserRepo())
	resp := postJSON(t, app, "/api/auth/logout", "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	access := cookieByName(resp, apphttp.AccessCookieName)
	require.NotNil(t, access)
	assert.Empty(t, access.Value)
	assert.True(t, access.Expires.Before(time.Now()), "la cookie queda expirada")

	refresh := cookieByName(resp, apphttp.RefreshCookieName)
	require.NotNil(t, refresh)
	assert.Empty(t, refresh.Value)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Sesión cerrada exitosamente")
}

func TestProfile_ConSesion_DevuelveUsuario(t *testing.T) {
	app := buildAuthApp(newFakeUserRepo())
	reg := registerAna(t, app)
	reg.Body.Close()
	access := cookieByName(reg, apphttp.AccessCookieName)
	require.NotNil(t, access)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	req.AddCookie(access)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "ana@x.com")
	assert.NotContains(t, string(body), "password_hash")
}

func TestProfile_SinSesion_Retorna401(t *testing.T) {
	app := buildAuthApp(newFakeUserRepo())
	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
