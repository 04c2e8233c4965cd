// seed prepara una base de datos de desarrollo: aplica el esquema inicial,
// crea el usuario administrador (documento 12345678 / admin123), unas cerdas
// de ejemplo y movimientos de prueba.
//
// Uso: go run ./cmd/seed [ruta/001_init.sql]
// Por defecto busca el esquema en migrations/001_init.sql.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/porcigest/porcigest-api/internal/domain/entity"
	"github.com/porcigest/porcigest-api/internal/infrastructure/postgres"
	"github.com/porcigest/porcigest-api/pkg/config"
	"github.com/porcigest/porcigest-api/pkg/logger"
)

const (
	adminDocumento = "12345678"
	adminPassword  = "admin123"
)

func main() {
	schemaPath := "migrations/001_init.sql"
	if len(os.Args) > 1 {
		schemaPath = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	schema, err := os.ReadFile(schemaPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", schemaPath).Msg("leer esquema")
	}
	if _, err := pool.Exec(ctx, string(schema)); err != nil {
		log.Fatal().Err(err).Msg("aplicar esquema")
	}
	log.Info().Str("path", schemaPath).Msg("esquema aplicado")

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	cerdaRepo := postgres.NewCerdaRepository(pool)
	movimientoRepo := postgres.NewMovimientoRepository(pool)

	admin, err := usuarioRepo.GetByDocumento(ctx, adminDocumento)
	if err != nil {
		log.Fatal().Err(err).Msg("buscar admin")
	}
	if admin == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hashear password")
		}
		admin = &entity.Usuario{
			Nombre:          "Admin",
			Apellido:        "PorciGest",
			TipoDocumento:   entity.DocumentoCC,
			NumeroDocumento: adminDocumento,
			HashedPassword:  string(hash),
			Activo:          true,
		}
		if err := usuarioRepo.Create(ctx, admin); err != nil {
			log.Fatal().Err(err).Msg("crear admin")
		}
		log.Info().Str("documento", adminDocumento).Msg("usuario admin creado")
	} else {
		log.Info().Str("documento", adminDocumento).Msg("usuario admin ya existe")
	}

	razas := []string{"Landrace", "Yorkshire", "Duroc", "Pietrain", "Hampshire"}
	for i := 1; i <= 5; i++ {
		codigo := fmt.Sprintf("R%03d", i)
		existente, err := cerdaRepo.GetByCodigo(ctx, codigo)
		if err != nil {
			log.Fatal().Err(err).Msg("buscar cerda")
		}
		if existente != nil {
			continue
		}
		cerda := &entity.Cerda{
			CodigoID:           codigo,
			FechaNacimiento:    time.Now().AddDate(-1, -i, 0),
			Raza:               razas[i-1],
			EstadoReproductivo: entity.EstadoVacia,
			UsuarioID:          admin.ID,
		}
		if err := cerdaRepo.Create(ctx, cerda); err != nil {
			log.Fatal().Err(err).Str("codigo", codigo).Msg("crear cerda")
		}
		entidadID := cerda.ID
		mov := &entity.Movimiento{
			UsuarioID:       admin.ID,
			UsuarioNombre:   admin.NombreCompleto(),
			Accion:          "Crear reproductora",
			Modulo:          entity.ModuloReproductoras,
			Descripcion:     fmt.Sprintf("Se registró la reproductora %s", codigo),
			EntidadTipo:     "cerda",
			EntidadID:       &entidadID,
			TipoMovimiento:  entity.MovimientoCrear,
			FechaMovimiento: time.Now().AddDate(0, 0, -i),
			IPAddress:       "127.0.0.1",
			UserAgent:       "seed",
		}
		if err := movimientoRepo.Create(ctx, mov); err != nil {
			log.Fatal().Err(err).Msg("crear movimiento")
		}
		log.Info().Str("codigo", codigo).Msg("cerda de ejemplo creada")
	}

	log.Info().Msg("seed completado")
}
