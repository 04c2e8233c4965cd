package dto

// CreateSementalRequest entrada para registrar un semental.
type CreateSementalRequest struct {
	Nombre         string  `json:"nombre" validate:"required"`
	Raza           string  `json:"raza" validate:"required"`
	TasaFertilidad float64 `json:"tasa_fertilidad" validate:"min=0,max=100"`
}

// UpdateSementalRequest entrada para actualización parcial.
type UpdateSementalRequest struct {
	Nombre         *string  `json:"nombre"`
	Raza           *string  `json:"raza"`
	TasaFertilidad *float64 `json:"tasa_fertilidad"`
}

// SementalResponse salida de un semental.
type SementalResponse struct {
	ID             int     `json:"id"`
	Nombre         string  `json:"nombre"`
	Raza           string  `json:"raza"`
	TasaFertilidad float64 `json:"tasa_fertilidad"`
	UsuarioID      int     `json:"usuario_id"`
}
