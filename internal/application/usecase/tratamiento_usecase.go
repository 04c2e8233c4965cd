package usecase

import (
	"context"

	"github.com/porcigest/porcigest-api/internal/application/dto"
	"github.com/porcigest/porcigest-api/internal/domain"
	"github.com/porcigest/porcigest-api/internal/domain/entity"
	"github.com/porcigest/porcigest-api/internal/domain/repository"
)

// TratamientoUseCase maneja la lógica de negocio de tratamientos veterinarios.
type TratamientoUseCase struct {
	tratamientoRepo repository.TratamientoRepository
	cerdaRepo       repository.CerdaRepository
	sementalRepo    repository.SementalRepository
	loteRepo        repository.LoteEngordeRepository
}

func NewTratamientoUseCase(
	tratamientoRepo repository.TratamientoRepository,
	cerdaRepo repository.CerdaRepository,
	sementalRepo repository.SementalRepository,
	loteRepo repository.LoteEngordeRepository,
) *TratamientoUseCase {
	return &TratamientoUseCase{
		tratamientoRepo: tratamientoRepo,
		cerdaRepo:       cerdaRepo,
		sementalRepo:    sementalRepo,
		loteRepo:        loteRepo,
	}
}

// resolverObjetivo valida la regla de exactamente un objetivo y que el animal
// o lote referenciado exista.
func (uc *TratamientoUseCase) resolverObjetivo(ctx context.Context, reproductoraID, sementalID, loteID *int) (entity.TratamientoObjetivo, error) {
	var objetivo entity.TratamientoObjetivo
	enviados := 0
	if reproductoraID != nil {
		enviados++
		objetivo = entity.TratamientoObjetivo{Tipo: entity.ObjetivoReproductora, ID: *reproductoraID}
	}
	if sementalID != nil {
		enviados++
		objetivo = entity.TratamientoObjetivo{Tipo: entity.ObjetivoSemental, ID: *sementalID}
	}
	if loteID != nil {
		enviados++
		objetivo = entity.TratamientoObjetivo{Tipo: entity.ObjetivoLoteEngorde, ID: *loteID}
	}
	if enviados != 1 {
		return entity.TratamientoObjetivo{}, domain.ErrInvalidInput
	}

	switch objetivo.Tipo {
	case entity.ObjetivoReproductora:
		cerda, err := uc.cerdaRepo.GetByID(ctx, objetivo.ID)
		if err != nil {
			return entity.TratamientoObjetivo{}, err
		}
		if cerda == nil {
			return entity.TratamientoObjetivo{}, domain.ErrNotFound
		}
	case entity.ObjetivoSemental:
		semental, err := uc.sementalRepo.GetByID(ctx, objetivo.ID)
		if err != nil {
			return entity.TratamientoObjetivo{}, err
		}
		if semental == nil {
			return entity.TratamientoObjetivo{}, domain.ErrNotFound
		}
	case entity.ObjetivoLoteEngorde:
		lote, err := uc.loteRepo.GetByID(ctx, objetivo.ID)
		if err != nil {
			return entity.TratamientoObjetivo{}, err
		}
		if lote == nil {
			return entity.TratamientoObjetivo{}, domain.ErrNotFound
		}
	}
	return objetivo, nil
}

// Create registra un tratamiento aplicado a exactamente un objetivo.
func (uc *TratamientoUseCase) Create(ctx context.Context, usuarioID int, req *dto.CreateTratamientoRequest) (*dto.TratamientoResponse, error) {
	objetivo, err := uc.resolverObjetivo(ctx, req.ReproductoraID, req.SementalID, req.LoteEngordeID)
	if err != nil {
		return nil, err
	}

	tratamiento := &entity.Tratamiento{
		TipoIntervencion:    req.TipoIntervencion,
		MedicamentoProducto: req.MedicamentoProducto,
		Dosis:               req.Dosis,
		Fecha:               req.Fecha.Time,
		Veterinario:         req.Veterinario,
		Observaciones:       req.Observaciones,
		Objetivo:            objetivo,
		UsuarioID:           usuarioID,
	}
	if err := uc.tratamientoRepo.Create(ctx, tratamiento); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, tratamiento.ID)
}

// GetByID devuelve el tratamiento con su objetivo materializado. Un objetivo
// que ya no existe es un error de integridad.
func (uc *TratamientoUseCase) GetByID(ctx context.Context, id int) (*dto.TratamientoResponse, error) {
	tratamiento, err := uc.tratamientoRepo.GetDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	if tratamiento == nil {
		return nil, domain.ErrNotFound
	}
	if !objetivoResuelto(tratamiento) {
		return nil, domain.ErrIntegrity
	}
	return toTratamientoResponse(tratamiento), nil
}

func objetivoResuelto(t *entity.Tratamiento) bool {
	switch t.Objetivo.Tipo {
	case entity.ObjetivoReproductora:
		return t.Reproductora != nil
	case entity.ObjetivoSemental:
		return t.Semental != nil
	case entity.ObjetivoLoteEngorde:
		return t.LoteEngorde != nil
	}
	return false
}

func (uc *TratamientoUseCase) List(ctx context.Context, skip, limit int) ([]dto.TratamientoResponse, error) {
	tratamientos, err := uc.tratamientoRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TratamientoResponse, 0, len(tratamientos))
	for _, t := range tratamientos {
		out = append(out, *toTratamientoResponse(t))
	}
	return out, nil
}

// Update aplica una actualización parcial. Si la petición trae algún ID de
// objetivo, el objetivo se reasigna bajo la misma regla de exactamente uno.
func (uc *TratamientoUseCase) Update(ctx context.Context, id int, req *dto.UpdateTratamientoRequest) (*dto.TratamientoResponse, error) {
	tratamiento, err := uc.tratamientoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tratamiento == nil {
		return nil, domain.ErrNotFound
	}

	if req.ReproductoraID != nil || req.SementalID != nil || req.LoteEngordeID != nil {
		objetivo, err := uc.resolverObjetivo(ctx, req.ReproductoraID, req.SementalID, req.LoteEngordeID)
		if err != nil {
			return nil, err
		}
		tratamiento.Objetivo = objetivo
	}
	if req.TipoIntervencion != nil {
		tratamiento.TipoIntervencion = *req.TipoIntervencion
	}
	if req.MedicamentoProducto != nil {
		tratamiento.MedicamentoProducto = *req.MedicamentoProducto
	}
	if req.Dosis != nil {
		tratamiento.Dosis = *req.Dosis
	}
	if req.Fecha != nil {
		tratamiento.Fecha = req.Fecha.Time
	}
	if req.Veterinario != nil {
		tratamiento.Veterinario = *req.Veterinario
	}
	if req.Observaciones != nil {
		tratamiento.Observaciones = *req.Observaciones
	}

	if err := uc.tratamientoRepo.Update(ctx, tratamiento); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, id)
}

// Delete elimina un tratamiento y devuelve su última representación.
func (uc *TratamientoUseCase) Delete(ctx context.Context, id int) (*dto.TratamientoResponse, error) {
	resp, err := uc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.tratamientoRepo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return resp, nil
}
