package repository

import (
	"context"

	"github.com/porcigest/porcigest-api/internal/domain/entity"
)

// CamadaRepository define el puerto de persistencia para Camada.
//
// GetDetail resuelve madre y padre con LEFT JOIN: la camada puede volver con
// Madre o Padre en nil si la relación se rompió, y es el caso de uso quien
// decide que eso es un error de integridad. List en cambio solo devuelve
// camadas bien formadas (las filas con relaciones rotas se excluyen).
type CamadaRepository interface {
	Create(ctx context.Context, c *entity.Camada) error
	GetByID(ctx context.Context, id int) (*entity.Camada, error)
	GetDetail(ctx context.Context, id int) (*entity.Camada, error)
	List(ctx context.Context, skip, limit int) ([]*entity.Camada, error)
	Update(ctx context.Context, c *entity.Camada) error
	Delete(ctx context.Context, id int) error
}
