package dto

// CreateTratamientoRequest entrada para registrar una intervención veterinaria.
// Exactamente uno de ReproductoraID, SementalID o LoteEngordeID debe venir.
type CreateTratamientoRequest struct {
	TipoIntervencion    string `json:"tipo_intervencion" validate:"required"`
	MedicamentoProducto string `json:"medicamento_producto"`
	Dosis               string `json:"dosis"`
	Fecha               Fecha  `json:"fecha" validate:"required"`
	Veterinario         string `json:"veterinario"`
	Observaciones       string `json:"observaciones"`
	ReproductoraID      *int   `json:"reproductora_id"`
	SementalID          *int   `json:"semental_id"`
	LoteEngordeID       *int   `json:"lote_engorde_id"`
}

// UpdateTratamientoRequest entrada para actualización parcial. Si se envía
// alguno de los IDs de objetivo, se reasigna el objetivo (aplica la misma
// regla de exactamente uno sobre los IDs enviados).
type UpdateTratamientoRequest struct {
	TipoIntervencion    *string `json:"tipo_intervencion"`
	MedicamentoProducto *string `json:"medicamento_producto"`
	Dosis               *string `json:"dosis"`
	Fecha               *Fecha  `json:"fecha"`
	Veterinario         *string `json:"veterinario"`
	Observaciones       *string `json:"observaciones"`
	ReproductoraID      *int    `json:"reproductora_id"`
	SementalID          *int    `json:"semental_id"`
	LoteEngordeID       *int    `json:"lote_engorde_id"`
}

// TratamientoResponse salida de un tratamiento con su objetivo materializado
// (solo uno de Reproductora/Semental/LoteEngorde viene presente).
type TratamientoResponse struct {
	ID                  int                  `json:"id"`
	TipoIntervencion    string               `json:"tipo_intervencion"`
	MedicamentoProducto string               `json:"medicamento_producto"`
	Dosis               string               `json:"dosis"`
	Fecha               Fecha                `json:"fecha"`
	Veterinario         string               `json:"veterinario"`
	Observaciones       string               `json:"observaciones"`
	ReproductoraID      *int                 `json:"reproductora_id"`
	SementalID          *int                 `json:"semental_id"`
	LoteEngordeID       *int                 `json:"lote_engorde_id"`
	UsuarioID           int                  `json:"usuario_id"`
	Reproductora        *CerdaResponse       `json:"reproductora,omitempty"`
	Semental            *SementalResponse    `json:"semental,omitempty"`
	LoteEngorde         *LoteEngordeResponse `json:"lote_engorde,omitempty"`
}
