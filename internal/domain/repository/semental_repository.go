package repository

import (
	"context"

	"github.com/porcigest/porcigest-api/internal/domain/entity"
)

// SementalRepository define el puerto de persistencia para Semental.
type SementalRepository interface {
	Create(ctx context.Context, s *entity.Semental) error
	GetByID(ctx context.Context, id int) (*entity.Semental, error)
	GetByNombre(ctx context.Context, nombre string) (*entity.Semental, error)
	List(ctx context.Context, skip, limit int) ([]*entity.Semental, error)
	Update(ctx context.Context, s *entity.Semental) error
	Delete(ctx context.Context, id int) error
}
