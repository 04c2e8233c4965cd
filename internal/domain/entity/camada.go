package entity

import "time"

// Camada representa una camada de lechones nacida de una madre (Cerda) y un
// padre (Semental). Madre y Padre se materializan en las lecturas de detalle;
// ambos son requeridos por el payload de respuesta, así que una camada cuyo
// padre o madre ya no existe es un error de integridad, no un campo ausente.
type Camada struct {
	ID              int
	FechaNacimiento time.Time
	NumeroLechones  int
	PesoPromedioKg  float64
	MadreID         int
	PadreID         int
	UsuarioID       int

	Madre *Cerda
	Padre *Semental
}
