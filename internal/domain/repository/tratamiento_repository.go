package repository

import (
	"context"

	"github.com/porcigest/porcigest-api/internal/domain/entity"
)

// TratamientoRepository define el puerto de persistencia para Tratamiento.
// GetDetail materializa el objetivo del tratamiento (reproductora, semental o
// lote según la variante); List excluye tratamientos cuyo objetivo ya no existe.
type TratamientoRepository interface {
	Create(ctx context.Context, t *entity.Tratamiento) error
	GetByID(ctx context.Context, id int) (*entity.Tratamiento, error)
	GetDetail(ctx context.Context, id int) (*entity.Tratamiento, error)
	List(ctx context.Context, skip, limit int) ([]*entity.Tratamiento, error)
	Update(ctx context.Context, t *entity.Tratamiento) error
	Delete(ctx context.Context, id int) error
}
