package repository

import (
	"context"

	"github.com/porcigest/porcigest-api/internal/domain/entity"
)

// LoteEngordeRepository define el puerto de persistencia para LoteEngorde.
// GetDetail resuelve la camada de origen y, transitivamente, su madre y padre;
// List excluye lotes cuya cadena de relaciones esté rota.
type LoteEngordeRepository interface {
	Create(ctx context.Context, l *entity.LoteEngorde) error
	GetByID(ctx context.Context, id int) (*entity.LoteEngorde, error)
	GetByLoteIDStr(ctx context.Context, loteIDStr string) (*entity.LoteEngorde, error)
	GetDetail(ctx context.Context, id int) (*entity.LoteEngorde, error)
	List(ctx context.Context, skip, limit int) ([]*entity.LoteEngorde, error)
	Update(ctx context.Context, l *entity.LoteEngorde) error
	Delete(ctx context.Context, id int) error
}
