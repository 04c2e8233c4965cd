package entity

import "time"

// Estados reproductivos válidos para una cerda.
const (
	EstadoVacia     = "Vacía"
	EstadoGestante  = "Gestante"
	EstadoLactando  = "Lactando"
	EstadoDestetada = "Destetada"
)

// Cerda representa una cerda reproductora. CodigoID es el código de negocio
// único (ej: R001 o CRD-2025-001).
type Cerda struct {
	ID                 int
	CodigoID           string
	FechaNacimiento    time.Time
	Raza               string
	EstadoReproductivo string
	UsuarioID          int
}
