package usecase

import (
	"context"

	"github.com/porcigest/porcigest-api/internal/application/dto"
	"github.com/porcigest/porcigest-api/internal/domain"
	"github.com/porcigest/porcigest-api/internal/domain/entity"
	"github.com/porcigest/porcigest-api/internal/domain/repository"
)

// SementalUseCase maneja la lógica de negocio de sementales.
type SementalUseCase struct {
	sementalRepo repository.SementalRepository
}

func NewSementalUseCase(sementalRepo repository.SementalRepository) *SementalUseCase {
	return &SementalUseCase{sementalRepo: sementalRepo}
}

// Create registra un semental. El nombre es único en toda la granja y la tasa
// de fertilidad va en porcentaje (0-100).
func (uc *SementalUseCase) Create(ctx context.Context, usuarioID int, req *dto.CreateSementalRequest) (*dto.SementalResponse, error) {
	if req.TasaFertilidad < 0 || req.TasaFertilidad > 100 {
		return nil, domain.ErrInvalidInput
	}

	existente, err := uc.sementalRepo.GetByNombre(ctx, req.Nombre)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicate
	}

	semental := &entity.Semental{
		Nombre:         req.Nombre,
		Raza:           req.Raza,
		TasaFertilidad: req.TasaFertilidad,
		UsuarioID:      usuarioID,
	}
	if err := uc.sementalRepo.Create(ctx, semental); err != nil {
		return nil, err
	}
	return toSementalResponse(semental), nil
}

func (uc *SementalUseCase) GetByID(ctx context.Context, id int) (*dto.SementalResponse, error) {
	semental, err := uc.sementalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if semental == nil {
		return nil, domain.ErrNotFound
	}
	return toSementalResponse(semental), nil
}

func (uc *SementalUseCase) List(ctx context.Context, skip, limit int) ([]dto.SementalResponse, error) {
	sementales, err := uc.sementalRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SementalResponse, 0, len(sementales))
	for _, s := range sementales {
		out = append(out, *toSementalResponse(s))
	}
	return out, nil
}

// Update aplica una actualización parcial. Cambiar el nombre re-valida su
// unicidad.
func (uc *SementalUseCase) Update(ctx context.Context, id int, req *dto.UpdateSementalRequest) (*dto.SementalResponse, error) {
	semental, err := uc.sementalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if semental == nil {
		return nil, domain.ErrNotFound
	}

	if req.Nombre != nil && *req.Nombre != semental.Nombre {
		otro, err := uc.sementalRepo.GetByNombre(ctx, *req.Nombre)
		if err != nil {
			return nil, err
		}
		if otro != nil {
			return nil, domain.ErrDuplicate
		}
		semental.Nombre = *req.Nombre
	}
	if req.Raza != nil {
		semental.Raza = *req.Raza
	}
	if req.TasaFertilidad != nil {
		if *req.TasaFertilidad < 0 || *req.TasaFertilidad > 100 {
			return nil, domain.ErrInvalidInput
		}
		semental.TasaFertilidad = *req.TasaFertilidad
	}

	if err := uc.sementalRepo.Update(ctx, semental); err != nil {
		return nil, err
	}
	return toSementalResponse(semental), nil
}

// Delete elimina un semental y devuelve su última representación.
func (uc *SementalUseCase) Delete(ctx context.Context, id int) (*dto.SementalResponse, error) {
	semental, err := uc.sementalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if semental == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.sementalRepo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return toSementalResponse(semental), nil
}
