package dto

// CreateCamadaRequest entrada para registrar una camada de lechones.
type CreateCamadaRequest struct {
	FechaNacimiento Fecha   `json:"fecha_nacimiento" validate:"required"`
	NumeroLechones  int     `json:"numero_lechones" validate:"required,min=1"`
	PesoPromedioKg  float64 `json:"peso_promedio_kg" validate:"min=0"`
	MadreID         int     `json:"madre_id" validate:"required"`
	PadreID         int     `json:"padre_id" validate:"required"`
}

// UpdateCamadaRequest entrada para actualización parcial.
type UpdateCamadaRequest struct {
	FechaNacimiento *Fecha   `json:"fecha_nacimiento"`
	NumeroLechones  *int     `json:"numero_lechones"`
	PesoPromedioKg  *float64 `json:"peso_promedio_kg"`
	MadreID         *int     `json:"madre_id"`
	PadreID         *int     `json:"padre_id"`
}

// CamadaResponse salida de una camada con su madre y padre resueltos.
type CamadaResponse struct {
	ID              int              `json:"id"`
	FechaNacimiento Fecha            `json:"fecha_nacimiento"`
	NumeroLechones  int              `json:"numero_lechones"`
	PesoPromedioKg  float64          `json:"peso_promedio_kg"`
	MadreID         int              `json:"madre_id"`
	PadreID         int              `json:"padre_id"`
	UsuarioID       int              `json:"usuario_id"`
	Madre           CerdaResponse    `json:"madre"`
	Padre           SementalResponse `json:"padre"`
}
