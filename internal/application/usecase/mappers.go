package usecase

import (
	"github.com/porcigest/porcigest-api/internal/application/dto"
	"github.com/porcigest/porcigest-api/internal/domain/entity"
)

// Conversión entidad -> DTO compartida entre los casos de uso. Las variantes
// de detalle asumen relaciones ya materializadas y verificadas por el caller.

func toCerdaResponse(c *entity.Cerda) *dto.CerdaResponse {
	if c == nil {
		return nil
	}
	return &dto.CerdaResponse{
		ID:                 c.ID,
		CodigoID:           c.CodigoID,
		FechaNacimiento:    dto.NewFecha(c.FechaNacimiento),
		Raza:               c.Raza,
		EstadoReproductivo: c.EstadoReproductivo,
		UsuarioID:          c.UsuarioID,
	}
}

func toSementalResponse(s *entity.Semental) *dto.SementalResponse {
	if s == nil {
		return nil
	}
	return &dto.SementalResponse{
		ID:             s.ID,
		Nombre:         s.Nombre,
		Raza:           s.Raza,
		TasaFertilidad: s.TasaFertilidad,
		UsuarioID:      s.UsuarioID,
	}
}

// toCamadaResponse requiere Madre y Padre no-nil.
func toCamadaResponse(c *entity.Camada) *dto.CamadaResponse {
	if c == nil {
		return nil
	}
	return &dto.CamadaResponse{
		ID:              c.ID,
		FechaNacimiento: dto.NewFecha(c.FechaNacimiento),
		NumeroLechones:  c.NumeroLechones,
		PesoPromedioKg:  c.PesoPromedioKg,
		MadreID:         c.MadreID,
		PadreID:         c.PadreID,
		UsuarioID:       c.UsuarioID,
		Madre:           *toCerdaResponse(c.Madre),
		Padre:           *toSementalResponse(c.Padre),
	}
}

// toLoteResponse incluye la camada de origen si viene materializada.
func toLoteResponse(l *entity.LoteEngorde) *dto.LoteEngordeResponse {
	if l == nil {
		return nil
	}
	return &dto.LoteEngordeResponse{
		ID:               l.ID,
		LoteIDStr:        l.LoteIDStr,
		FechaInicio:      dto.NewFecha(l.FechaInicio),
		CantidadAnimales: l.CantidadAnimales,
		PesoInicialKg:    l.PesoInicialKg,
		PesoPromedioKg:   l.PesoPromedioKg,
		CamadaOrigenID:   l.CamadaOrigenID,
		UsuarioID:        l.UsuarioID,
		CamadaOrigen:     toCamadaResponseOpt(l.CamadaOrigen),
	}
}

func toCamadaResponseOpt(c *entity.Camada) *dto.CamadaResponse {
	if c == nil || c.Madre == nil || c.Padre == nil {
		return nil
	}
	return toCamadaResponse(c)
}

// toTratamientoResponse materializa el objetivo presente; el lote objetivo va
// plano (sin camada de origen).
func toTratamientoResponse(t *entity.Tratamiento) *dto.TratamientoResponse {
	if t == nil {
		return nil
	}
	out := &dto.TratamientoResponse{
		ID:                  t.ID,
		TipoIntervencion:    t.TipoIntervencion,
		MedicamentoProducto: t.MedicamentoProducto,
		Dosis:               t.Dosis,
		Fecha:               dto.NewFecha(t.Fecha),
		Veterinario:         t.Veterinario,
		Observaciones:       t.Observaciones,
		UsuarioID:           t.UsuarioID,
		Reproductora:        toCerdaResponse(t.Reproductora),
		Semental:            toSementalResponse(t.Semental),
		LoteEngorde:         toLoteResponse(t.LoteEngorde),
	}
	objetivoID := t.Objetivo.ID
	switch t.Objetivo.Tipo {
	case entity.ObjetivoReproductora:
		out.ReproductoraID = &objetivoID
	case entity.ObjetivoSemental:
		out.SementalID = &objetivoID
	case entity.ObjetivoLoteEngorde:
		out.LoteEngordeID = &objetivoID
	}
	return out
}
