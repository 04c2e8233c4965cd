package entity

import "time"

// ObjetivoTipo discrimina a qué tipo de animal se aplicó un tratamiento.
type ObjetivoTipo string

// Un tratamiento se aplica exactamente a uno de estos objetivos.
const (
	ObjetivoReproductora ObjetivoTipo = "reproductora"
	ObjetivoSemental     ObjetivoTipo = "semental"
	ObjetivoLoteEngorde  ObjetivoTipo = "lote_engorde"
)

// TratamientoObjetivo es la variante etiquetada (tipo + id) que identifica el
// animal o lote tratado. El invariante "exactamente uno" vive aquí: un
// Tratamiento siempre tiene un objetivo, nunca cero ni varios.
type TratamientoObjetivo struct {
	Tipo ObjetivoTipo
	ID   int
}

// Tratamiento representa una intervención veterinaria.
// En las lecturas de detalle se materializa el objetivo que corresponda
// (solo uno de Reproductora/Semental/LoteEngorde es no-nil).
type Tratamiento struct {
	ID                  int
	TipoIntervencion    string // Ej: "Vacunación", "Desparasitación"
	MedicamentoProducto string
	Dosis               string
	Fecha               time.Time
	Veterinario         string
	Observaciones       string
	Objetivo            TratamientoObjetivo
	UsuarioID           int

	Reproductora *Cerda
	Semental     *Semental
	LoteEngorde  *LoteEngorde
}
