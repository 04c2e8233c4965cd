package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/porcigest/porcigest-api/internal/application/audit"
	"github.com/porcigest/porcigest-api/internal/application/auth"
	"github.com/porcigest/porcigest-api/internal/application/usecase"
	"github.com/porcigest/porcigest-api/internal/infrastructure/postgres"
	httpRouter "github.com/porcigest/porcigest-api/internal/interfaces/http"
	"github.com/porcigest/porcigest-api/pkg/config"
	"github.com/porcigest/porcigest-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	cerdaRepo := postgres.NewCerdaRepository(pool)
	sementalRepo := postgres.NewSementalRepository(pool)
	camadaRepo := postgres.NewCamadaRepository(pool)
	loteRepo := postgres.NewLoteEngordeRepository(pool)
	tratamientoRepo := postgres.NewTratamientoRepository(pool)
	movimientoRepo := postgres.NewMovimientoRepository(pool)

	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	movimientoUC := audit.NewMovimientoUseCase(movimientoRepo, log)
	cerdaUC := usecase.NewCerdaUseCase(cerdaRepo)
	sementalUC := usecase.NewSementalUseCase(sementalRepo)
	camadaUC := usecase.NewCamadaUseCase(camadaRepo, cerdaRepo, sementalRepo)
	loteUC := usecase.NewLoteEngordeUseCase(loteRepo, camadaRepo)
	tratamientoUC := usecase.NewTratamientoUseCase(tratamientoRepo, cerdaRepo, sementalRepo, loteRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.Origins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "PorciGest Pro API",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"mensaje": "Bienvenido a PorciGest Pro API"})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CerdaUC:       cerdaUC,
		SementalUC:    sementalUC,
		CamadaUC:      camadaUC,
		LoteEngordeUC: loteUC,
		TratamientoUC: tratamientoUC,
		MovimientoUC:  movimientoUC,
		AuthUC:        authUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
