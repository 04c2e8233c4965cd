package repository

import (
	"context"

	"github.com/porcigest/porcigest-api/internal/domain/entity"
)

// UsuarioRepository define el puerto de persistencia para Usuario.
// Los Get* devuelven (nil, nil) cuando no existe la fila.
type UsuarioRepository interface {
	Create(ctx context.Context, u *entity.Usuario) error
	GetByID(ctx context.Context, id int) (*entity.Usuario, error)
	GetByDocumento(ctx context.Context, numeroDocumento string) (*entity.Usuario, error)
}
