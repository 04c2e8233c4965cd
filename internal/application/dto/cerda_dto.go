package dto

// CreateCerdaRequest entrada para registrar una cerda reproductora.
type CreateCerdaRequest struct {
	CodigoID           string `json:"codigo_id" validate:"required"`
	FechaNacimiento    Fecha  `json:"fecha_nacimiento" validate:"required"`
	Raza               string `json:"raza" validate:"required"`
	EstadoReproductivo string `json:"estado_reproductivo" validate:"omitempty"`
}

// UpdateCerdaRequest entrada para actualización parcial: solo los campos
// presentes (no-nil) se modifican.
type UpdateCerdaRequest struct {
	CodigoID           *string `json:"codigo_id"`
	FechaNacimiento    *Fecha  `json:"fecha_nacimiento"`
	Raza               *string `json:"raza"`
	EstadoReproductivo *string `json:"estado_reproductivo"`
}

// CerdaResponse salida de una cerda reproductora.
type CerdaResponse struct {
	ID                 int    `json:"id"`
	CodigoID           string `json:"codigo_id"`
	FechaNacimiento    Fecha  `json:"fecha_nacimiento"`
	Raza               string `json:"raza"`
	EstadoReproductivo string `json:"estado_reproductivo"`
	UsuarioID          int    `json:"usuario_id"`
}
