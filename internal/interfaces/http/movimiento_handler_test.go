package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/porcigest/porcigest-api/internal/application/audit"
	"github.com/porcigest/porcigest-api/internal/domain/entity"
	apphttp "github.com/porcigest/porcigest-api/internal/interfaces/http"
	"github.com/porcigest/porcigest-api/pkg/logger"
)

// stubMovimientoRepo devuelve siempre un log vacío; alcanza para probar la
// validación de parámetros y los endpoints de opciones.
type stubMovimientoRepo struct{}

func (stubMovimientoRepo) Create(_ context.Context, m *entity.Movimiento) error {
	m.ID = 1
	return nil
}

func (stubMovimientoRepo) GetByID(context.Context, int) (*entity.Movimiento, error) {
	return nil, nil
}

func (stubMovimientoRepo) List(context.Context, entity.MovimientoFiltros) ([]*entity.Movimiento, int, error) {
	return nil, 0, nil
}

func (stubMovimientoRepo) Total(context.Context, time.Time) (int, error) { return 0, nil }

func (stubMovimientoRepo) ConteosPorTipo(context.Context, time.Time) ([]entity.ConteoPorTipo, error) {
	return nil, nil
}

func (stubMovimientoRepo) ConteosPorModulo(context.Context, time.Time) ([]entity.ConteoPorModulo, error) {
	return nil, nil
}

func (stubMovimientoRepo) UsuariosMasActivos(context.Context, time.Time, int) ([]entity.UsuarioActividad, error) {
	return nil, nil
}

func buildMovimientosApp() *fiber.App {
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	uc := audit.NewMovimientoUseCase(stubMovimientoRepo{}, log)
	h := apphttp.NewMovimientoHandler(uc)

	app := fiber.New()
	grupo := app.Group("/movimientos")
	grupo.Get("/", h.List)
	grupo.Get("/estadisticas", h.Estadisticas)
	grupo.Get("/opciones/modulos", h.OpcionesModulos)
	grupo.Get("/opciones/tipos", h.OpcionesTipos)
	grupo.Get("/:id", h.GetByID)
	return app
}

func get(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	require.NoError(t, err)
	return resp
}

func TestMovimientosList_PageCero_Retorna400(t *testing.T) {
	app := buildMovimientosApp()
	resp := get(t, app, "/movimientos/?page=0")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMovimientosList_SizeExcesivo_Retorna400(t *testing.T) {
	app := buildMovimientosApp()
	resp := get(t, app, "/movimientos/?size=101")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMovimientosList_FechaMalFormada_Retorna400(t *testing.T) {
	app := buildMovimientosApp()
	resp := get(t, app, "/movimientos/?fecha_inicio=10-05-2025&fecha_fin=2025-05-20")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMovimientosList_DefaultsValidos_Retorna200(t *testing.T) {
	app := buildMovimientosApp()
	resp := get(t, app, "/movimientos/")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.EqualValues(t, 0, body["total"])
	assert.EqualValues(t, 1, body["page"])
	assert.EqualValues(t, 10, body["size"])
}

func TestEstadisticas_DiasFueraDeRango_Retorna400(t *testing.T) {
	app := buildMovimientosApp()
	for _, path := range []string{"/movimientos/estadisticas?dias=0", "/movimientos/estadisticas?dias=400"} {
		resp := get(t, app, path)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, path)
		resp.Body.Close()
	}
}

func TestEstadisticas_VentanaValida_Retorna200(t *testing.T) {
	app := buildMovimientosApp()
	resp := get(t, app, "/movimientos/estadisticas?dias=7")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.EqualValues(t, 7, body["periodo_dias"])
}

func TestMovimientosGetByID_NoExiste_Retorna404(t *testing.T) {
	app := buildMovimientosApp()
	resp := get(t, app, "/movimientos/42")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestOpciones_DevuelvenCatalogos(t *testing.T) {
	app := buildMovimientosApp()

	resp := get(t, app, "/movimientos/opciones/modulos")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var modulos map[string][]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&modulos))
	assert.Contains(t, modulos["modulos"], entity.ModuloReproductoras)
	assert.Contains(t, modulos["modulos"], entity.ModuloVeterinaria)

	resp2 := get(t, app, "/movimientos/opciones/tipos")
	defer resp2.Body.Close()
	require.Equal(t, http.StatusOK, resp2.StatusCode)
	var tipos map[string][]string
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&tipos))
	assert.Equal(t, []string{entity.MovimientoCrear, entity.MovimientoEditar, entity.MovimientoEliminar}, tipos["tipos"])
}
