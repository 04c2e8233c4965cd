package entity

import "time"

// LoteEngorde representa un lote de animales en engorde originado en una
// camada. LoteIDStr es el código de negocio único (ej: LOT-2024-08).
// CamadaOrigen se materializa (con su madre y padre) en lecturas de detalle.
type LoteEngorde struct {
	ID               int
	LoteIDStr        string
	FechaInicio      time.Time
	CantidadAnimales int
	PesoInicialKg    float64
	PesoPromedioKg   float64
	CamadaOrigenID   int
	UsuarioID        int

	CamadaOrigen *Camada
}
