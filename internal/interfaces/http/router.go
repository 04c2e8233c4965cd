package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/porcigest/porcigest-api/internal/application/audit"
	"github.com/porcigest/porcigest-api/internal/application/auth"
	"github.com/porcigest/porcigest-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CerdaUC       *usecase.CerdaUseCase
	SementalUC    *usecase.SementalUseCase
	CamadaUC      *usecase.CamadaUseCase
	LoteEngordeUC *usecase.LoteEngordeUseCase
	TratamientoUC *usecase.TratamientoUseCase
	MovimientoUC  *audit.MovimientoUseCase
	AuthUC        *auth.AuthUseCase
}

// Router registra las rutas de la API. Las rutas de negocio requieren Bearer
// Token; signup y token son públicas.
func Router(app *fiber.App, deps RouterDeps) {
	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Post("/signup", authHandler.Signup)
	app.Post("/token", authHandler.Token)

	// Rutas protegidas (requieren Bearer Token)
	protected := app.Group("/", AuthMiddleware(deps.AuthUC))

	// Reproductoras
	cerdas := protected.Group("/reproductoras")
	cerdaHandler := NewCerdaHandler(deps.CerdaUC, deps.MovimientoUC)
	cerdas.Post("/", cerdaHandler.Create)
	cerdas.Get("/", cerdaHandler.List)
	cerdas.Get("/:id", cerdaHandler.GetByID)
	cerdas.Put("/:id", cerdaHandler.Update)
	cerdas.Delete("/:id", cerdaHandler.Delete)

	// Sementales
	sementales := protected.Group("/sementales")
	sementalHandler := NewSementalHandler(deps.SementalUC, deps.MovimientoUC)
	sementales.Post("/", sementalHandler.Create)
	sementales.Get("/", sementalHandler.List)
	sementales.Get("/:id", sementalHandler.GetByID)
	sementales.Put("/:id", sementalHandler.Update)
	sementales.Delete("/:id", sementalHandler.Delete)

	// Lechones (camadas)
	lechones := protected.Group("/lechones")
	camadaHandler := NewCamadaHandler(deps.CamadaUC, deps.MovimientoUC)
	lechones.Post("/", camadaHandler.Create)
	lechones.Get("/", camadaHandler.List)
	lechones.Get("/:id", camadaHandler.GetByID)
	lechones.Put("/:id", camadaHandler.Update)
	lechones.Delete("/:id", camadaHandler.Delete)

	// Engorde (lotes)
	engorde := protected.Group("/engorde")
	loteHandler := NewLoteEngordeHandler(deps.LoteEngordeUC, deps.MovimientoUC)
	engorde.Post("/", loteHandler.Create)
	engorde.Get("/", loteHandler.List)
	engorde.Get("/:id", loteHandler.GetByID)
	engorde.Put("/:id", loteHandler.Update)
	engorde.Delete("/:id", loteHandler.Delete)

	// Veterinaria (tratamientos)
	veterinaria := protected.Group("/veterinaria")
	tratamientoHandler := NewTratamientoHandler(deps.TratamientoUC, deps.MovimientoUC)
	veterinaria.Post("/", tratamientoHandler.Create)
	veterinaria.Get("/", tratamientoHandler.List)
	veterinaria.Get("/:id", tratamientoHandler.GetByID)
	veterinaria.Put("/:id", tratamientoHandler.Update)
	veterinaria.Delete("/:id", tratamientoHandler.Delete)

	// Movimientos (log de auditoría). Las rutas fijas van antes de /:id.
	movimientos := protected.Group("/movimientos")
	movimientoHandler := NewMovimientoHandler(deps.MovimientoUC)
	movimientos.Post("/", movimientoHandler.Create)
	movimientos.Get("/", movimientoHandler.List)
	movimientos.Get("/estadisticas", movimientoHandler.Estadisticas)
	movimientos.Get("/opciones/modulos", movimientoHandler.OpcionesModulos)
	movimientos.Get("/opciones/tipos", movimientoHandler.OpcionesTipos)
	movimientos.Get("/:id", movimientoHandler.GetByID)
}
