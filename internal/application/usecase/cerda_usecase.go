package usecase

import (
	"context"

	"github.com/porcigest/porcigest-api/internal/application/dto"
	"github.com/porcigest/porcigest-api/internal/domain"
	"github.com/porcigest/porcigest-api/internal/domain/entity"
	"github.com/porcigest/porcigest-api/internal/domain/repository"
)

// CerdaUseCase maneja la lógica de negocio de cerdas reproductoras.
type CerdaUseCase struct {
	cerdaRepo repository.CerdaRepository
}

func NewCerdaUseCase(cerdaRepo repository.CerdaRepository) *CerdaUseCase {
	return &CerdaUseCase{cerdaRepo: cerdaRepo}
}

// Create registra una cerda. El código es único en toda la granja; si no
// viene estado reproductivo se asume "Vacía".
func (uc *CerdaUseCase) Create(ctx context.Context, usuarioID int, req *dto.CreateCerdaRequest) (*dto.CerdaResponse, error) {
	existente, err := uc.cerdaRepo.GetByCodigo(ctx, req.CodigoID)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicate
	}

	estado := req.EstadoReproductivo
	if estado == "" {
		estado = entity.EstadoVacia
	}

	cerda := &entity.Cerda{
		CodigoID:           req.CodigoID,
		FechaNacimiento:    req.FechaNacimiento.Time,
		Raza:               req.Raza,
		EstadoReproductivo: estado,
		UsuarioID:          usuarioID,
	}
	if err := uc.cerdaRepo.Create(ctx, cerda); err != nil {
		return nil, err
	}
	return toCerdaResponse(cerda), nil
}

func (uc *CerdaUseCase) GetByID(ctx context.Context, id int) (*dto.CerdaResponse, error) {
	cerda, err := uc.cerdaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cerda == nil {
		return nil, domain.ErrNotFound
	}
	return toCerdaResponse(cerda), nil
}

func (uc *CerdaUseCase) List(ctx context.Context, skip, limit int) ([]dto.CerdaResponse, error) {
	cerdas, err := uc.cerdaRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CerdaResponse, 0, len(cerdas))
	for _, c := range cerdas {
		out = append(out, *toCerdaResponse(c))
	}
	return out, nil
}

// Update aplica una actualización parcial: solo los campos presentes en la
// petición se modifican. Cambiar el código re-valida su unicidad.
func (uc *CerdaUseCase) Update(ctx context.Context, id int, req *dto.UpdateCerdaRequest) (*dto.CerdaResponse, error) {
	cerda, err := uc.cerdaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cerda == nil {
		return nil, domain.ErrNotFound
	}

	if req.CodigoID != nil && *req.CodigoID != cerda.CodigoID {
		otra, err := uc.cerdaRepo.GetByCodigo(ctx, *req.CodigoID)
		if err != nil {
			return nil, err
		}
		if otra != nil {
			return nil, domain.ErrDuplicate
		}
		cerda.CodigoID = *req.CodigoID
	}
	if req.FechaNacimiento != nil {
		cerda.FechaNacimiento = req.FechaNacimiento.Time
	}
	if req.Raza != nil {
		cerda.Raza = *req.Raza
	}
	if req.EstadoReproductivo != nil {
		cerda.EstadoReproductivo = *req.EstadoReproductivo
	}

	if err := uc.cerdaRepo.Update(ctx, cerda); err != nil {
		return nil, err
	}
	return toCerdaResponse(cerda), nil
}

// Delete elimina una cerda y devuelve su última representación.
func (uc *CerdaUseCase) Delete(ctx context.Context, id int) (*dto.CerdaResponse, error) {
	cerda, err := uc.cerdaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cerda == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.cerdaRepo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return toCerdaResponse(cerda), nil
}
