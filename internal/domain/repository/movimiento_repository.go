package repository

import (
	"context"
	"time"

	"github.com/porcigest/porcigest-api/internal/domain/entity"
)

// MovimientoRepository define el puerto de persistencia del log de auditoría.
// El log es append-only: no hay Update ni Delete.
//
// List aplica los filtros y la paginación y devuelve también el total de
// filas filtradas antes de paginar, siempre ordenado por fecha descendente.
// Los métodos de agregados restringen a movimientos con fecha >= desde.
type MovimientoRepository interface {
	Create(ctx context.Context, m *entity.Movimiento) error
	GetByID(ctx context.Context, id int) (*entity.Movimiento, error)
	List(ctx context.Context, f entity.MovimientoFiltros) ([]*entity.Movimiento, int, error)
	Total(ctx context.Context, desde time.Time) (int, error)
	ConteosPorTipo(ctx context.Context, desde time.Time) ([]entity.ConteoPorTipo, error)
	ConteosPorModulo(ctx context.Context, desde time.Time) ([]entity.ConteoPorModulo, error)
	UsuariosMasActivos(ctx context.Context, desde time.Time, limit int) ([]entity.UsuarioActividad, error)
}
