package repository

import (
	"context"

	"github.com/porcigest/porcigest-api/internal/domain/entity"
)

// CerdaRepository define el puerto de persistencia para Cerda.
// Create asigna el ID generado por la base. Los Get* devuelven (nil, nil)
// cuando no existe la fila.
type CerdaRepository interface {
	Create(ctx context.Context, c *entity.Cerda) error
	GetByID(ctx context.Context, id int) (*entity.Cerda, error)
	GetByCodigo(ctx context.Context, codigoID string) (*entity.Cerda, error)
	List(ctx context.Context, skip, limit int) ([]*entity.Cerda, error)
	Update(ctx context.Context, c *entity.Cerda) error
	Delete(ctx context.Context, id int) error
}
