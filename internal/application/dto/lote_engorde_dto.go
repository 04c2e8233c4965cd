package dto

// CreateLoteEngordeRequest entrada para registrar un lote de engorde.
type CreateLoteEngordeRequest struct {
	LoteIDStr        string  `json:"lote_id_str" validate:"required"`
	FechaInicio      Fecha   `json:"fecha_inicio" validate:"required"`
	CantidadAnimales int     `json:"cantidad_animales" validate:"required,min=1"`
	PesoInicialKg    float64 `json:"peso_inicial_kg" validate:"min=0"`
	PesoPromedioKg   float64 `json:"peso_promedio_kg" validate:"min=0"`
	CamadaOrigenID   int     `json:"camada_origen_id" validate:"required"`
}

// UpdateLoteEngordeRequest entrada para actualización parcial.
type UpdateLoteEngordeRequest struct {
	LoteIDStr        *string  `json:"lote_id_str"`
	FechaInicio      *Fecha   `json:"fecha_inicio"`
	CantidadAnimales *int     `json:"cantidad_animales"`
	PesoInicialKg    *float64 `json:"peso_inicial_kg"`
	PesoPromedioKg   *float64 `json:"peso_promedio_kg"`
	CamadaOrigenID   *int     `json:"camada_origen_id"`
}

// LoteEngordeResponse salida de un lote. CamadaOrigen viene resuelta en los
// endpoints de lotes; en contextos donde el lote es un objetivo anidado
// (tratamientos) se omite.
type LoteEngordeResponse struct {
	ID               int             `json:"id"`
	LoteIDStr        string          `json:"lote_id_str"`
	FechaInicio      Fecha           `json:"fecha_inicio"`
	CantidadAnimales int             `json:"cantidad_animales"`
	PesoInicialKg    float64         `json:"peso_inicial_kg"`
	PesoPromedioKg   float64         `json:"peso_promedio_kg"`
	CamadaOrigenID   int             `json:"camada_origen_id"`
	UsuarioID        int             `json:"usuario_id"`
	CamadaOrigen     *CamadaResponse `json:"camada_origen,omitempty"`
}
