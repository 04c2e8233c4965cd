package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/porcigest/porcigest-api/internal/domain"
	"github.com/porcigest/porcigest-api/internal/domain/entity"
	apphttp "github.com/porcigest/porcigest-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testToken = "token-valido-de-prueba"

// fakeResolver resuelve el token fijo de prueba a un usuario en memoria.
type fakeResolver struct {
	usuario *entity.Usuario
}

func (f *fakeResolver) Authenticate(_ context.Context, tokenString string) (*entity.Usuario, error) {
	if tokenString != testToken || f.usuario == nil {
		return nil, domain.ErrUnauthorized
	}
	return f.usuario, nil
}

// buildTestApp construye una app Fiber mínima con una ruta protegida que
// devuelve el documento del usuario autenticado.
func buildTestApp(resolver apphttp.UsuarioResolver) *fiber.App {
	app := fiber.New()
	app.Get("/protected", apphttp.AuthMiddleware(resolver), func(c *fiber.Ctx) error {
		u := apphttp.GetCurrentUser(c)
		return c.JSON(fiber.Map{
			"numero_documento": u.NumeroDocumento,
			"nombre":           u.NombreCompleto(),
		})
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: token válido → 200 y el usuario queda disponible en el handler.
func TestAuthMiddleware_TokenValido_CargaUsuario(t *testing.T) {
	resolver := &fakeResolver{usuario: &entity.Usuario{
		ID:              1,
		Nombre:          "María",
		Apellido:        "Gómez",
		NumeroDocumento: "12345678",
		Activo:          true,
	}}
	app := buildTestApp(resolver)

	resp := doRequest(t, app, "Bearer "+testToken)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "12345678", body["numero_documento"])
	assert.Equal(t, "María Gómez", body["nombre"])
}

// Caso 2: sin header Authorization → 401 MISSING_TOKEN.
func TestAuthMiddleware_SinHeader_Retorna401(t *testing.T) {
	app := buildTestApp(&fakeResolver{})
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

// Caso 3: header sin el esquema Bearer → 401 INVALID_TOKEN.
func TestAuthMiddleware_FormatoInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(&fakeResolver{})
	resp := doRequest(t, app, "Basic abc123")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

// Caso 4: el resolver rechaza el token (inválido, expirado, usuario inactivo)
// → 401.
func TestAuthMiddleware_TokenRechazado_Retorna401(t *testing.T) {
	app := buildTestApp(&fakeResolver{usuario: nil})
	resp := doRequest(t, app, "Bearer "+testToken)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 5: GetCurrentUser fuera del middleware devuelve nil sin panics.
func TestGetCurrentUser_SinMiddleware_DevuelveNil(t *testing.T) {
	app := fiber.New()
	app.Get("/open", func(c *fiber.Ctx) error {
		if apphttp.GetCurrentUser(c) != nil {
			return errors.New("no debería haber usuario")
		}
		return c.SendStatus(http.StatusNoContent)
	})
	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}
