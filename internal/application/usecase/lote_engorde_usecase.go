package usecase

import (
	"context"

	"github.com/porcigest/porcigest-api/internal/application/dto"
	"github.com/porcigest/porcigest-api/internal/domain"
	"github.com/porcigest/porcigest-api/internal/domain/entity"
	"github.com/porcigest/porcigest-api/internal/domain/repository"
)

// LoteEngordeUseCase maneja la lógica de negocio de lotes de engorde.
type LoteEngordeUseCase struct {
	loteRepo   repository.LoteEngordeRepository
	camadaRepo repository.CamadaRepository
}

func NewLoteEngordeUseCase(
	loteRepo repository.LoteEngordeRepository,
	camadaRepo repository.CamadaRepository,
) *LoteEngordeUseCase {
	return &LoteEngordeUseCase{loteRepo: loteRepo, camadaRepo: camadaRepo}
}

// Create registra un lote de engorde. El identificador de lote es único y la
// camada de origen debe existir; una camada alimenta a lo sumo un lote.
func (uc *LoteEngordeUseCase) Create(ctx context.Context, usuarioID int, req *dto.CreateLoteEngordeRequest) (*dto.LoteEngordeResponse, error) {
	if req.CantidadAnimales < 1 {
		return nil, domain.ErrInvalidInput
	}

	existente, err := uc.loteRepo.GetByLoteIDStr(ctx, req.LoteIDStr)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicate
	}

	camada, err := uc.camadaRepo.GetByID(ctx, req.CamadaOrigenID)
	if err != nil {
		return nil, err
	}
	if camada == nil {
		return nil, domain.ErrNotFound
	}

	lote := &entity.LoteEngorde{
		LoteIDStr:        req.LoteIDStr,
		FechaInicio:      req.FechaInicio.Time,
		CantidadAnimales: req.CantidadAnimales,
		PesoInicialKg:    req.PesoInicialKg,
		PesoPromedioKg:   req.PesoPromedioKg,
		CamadaOrigenID:   req.CamadaOrigenID,
		UsuarioID:        usuarioID,
	}
	if err := uc.loteRepo.Create(ctx, lote); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, lote.ID)
}

// GetByID devuelve el lote con su camada de origen resuelta (incluida la
// madre y el padre de la camada). Una cadena de relaciones rota es un error
// de integridad.
func (uc *LoteEngordeUseCase) GetByID(ctx context.Context, id int) (*dto.LoteEngordeResponse, error) {
	lote, err := uc.loteRepo.GetDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	if lote == nil {
		return nil, domain.ErrNotFound
	}
	if lote.CamadaOrigen == nil || lote.CamadaOrigen.Madre == nil || lote.CamadaOrigen.Padre == nil {
		return nil, domain.ErrIntegrity
	}
	return toLoteResponse(lote), nil
}

func (uc *LoteEngordeUseCase) List(ctx context.Context, skip, limit int) ([]dto.LoteEngordeResponse, error) {
	lotes, err := uc.loteRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LoteEngordeResponse, 0, len(lotes))
	for _, l := range lotes {
		out = append(out, *toLoteResponse(l))
	}
	return out, nil
}

// Update aplica una actualización parcial. Cambiar el identificador re-valida
// su unicidad; reasignar la camada de origen exige que exista.
func (uc *LoteEngordeUseCase) Update(ctx context.Context, id int, req *dto.UpdateLoteEngordeRequest) (*dto.LoteEngordeResponse, error) {
	lote, err := uc.loteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lote == nil {
		return nil, domain.ErrNotFound
	}

	if req.LoteIDStr != nil && *req.LoteIDStr != lote.LoteIDStr {
		otro, err := uc.loteRepo.GetByLoteIDStr(ctx, *req.LoteIDStr)
		if err != nil {
			return nil, err
		}
		if otro != nil {
			return nil, domain.ErrDuplicate
		}
		lote.LoteIDStr = *req.LoteIDStr
	}
	if req.FechaInicio != nil {
		lote.FechaInicio = req.FechaInicio.Time
	}
	if req.CantidadAnimales != nil {
		if *req.CantidadAnimales < 1 {
			return nil, domain.ErrInvalidInput
		}
		lote.CantidadAnimales = *req.CantidadAnimales
	}
	if req.PesoInicialKg != nil {
		lote.PesoInicialKg = *req.PesoInicialKg
	}
	if req.PesoPromedioKg != nil {
		lote.PesoPromedioKg = *req.PesoPromedioKg
	}
	if req.CamadaOrigenID != nil {
		camada, err := uc.camadaRepo.GetByID(ctx, *req.CamadaOrigenID)
		if err != nil {
			return nil, err
		}
		if camada == nil {
			return nil, domain.ErrNotFound
		}
		lote.CamadaOrigenID = *req.CamadaOrigenID
	}

	if err := uc.loteRepo.Update(ctx, lote); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, id)
}

// Delete elimina un lote y devuelve su última representación.
func (uc *LoteEngordeUseCase) Delete(ctx context.Context, id int) (*dto.LoteEngordeResponse, error) {
	resp, err := uc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.loteRepo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return resp, nil
}
