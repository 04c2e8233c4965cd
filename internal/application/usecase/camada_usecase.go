package usecase

import (
	"context"

	"github.com/porcigest/porcigest-api/internal/application/dto"
	"github.com/porcigest/porcigest-api/internal/domain"
	"github.com/porcigest/porcigest-api/internal/domain/entity"
	"github.com/porcigest/porcigest-api/internal/domain/repository"
)

// CamadaUseCase maneja la lógica de negocio de camadas de lechones.
type CamadaUseCase struct {
	camadaRepo   repository.CamadaRepository
	cerdaRepo    repository.CerdaRepository
	sementalRepo repository.SementalRepository
}

func NewCamadaUseCase(
	camadaRepo repository.CamadaRepository,
	cerdaRepo repository.CerdaRepository,
	sementalRepo repository.SementalRepository,
) *CamadaUseCase {
	return &CamadaUseCase{
		camadaRepo:   camadaRepo,
		cerdaRepo:    cerdaRepo,
		sementalRepo: sementalRepo,
	}
}

// Create registra una camada. La madre y el padre deben existir; la respuesta
// los devuelve resueltos.
func (uc *CamadaUseCase) Create(ctx context.Context, usuarioID int, req *dto.CreateCamadaRequest) (*dto.CamadaResponse, error) {
	if req.NumeroLechones < 1 {
		return nil, domain.ErrInvalidInput
	}

	madre, err := uc.cerdaRepo.GetByID(ctx, req.MadreID)
	if err != nil {
		return nil, err
	}
	if madre == nil {
		return nil, domain.ErrNotFound
	}
	padre, err := uc.sementalRepo.GetByID(ctx, req.PadreID)
	if err != nil {
		return nil, err
	}
	if padre == nil {
		return nil, domain.ErrNotFound
	}

	camada := &entity.Camada{
		FechaNacimiento: req.FechaNacimiento.Time,
		NumeroLechones:  req.NumeroLechones,
		PesoPromedioKg:  req.PesoPromedioKg,
		MadreID:         req.MadreID,
		PadreID:         req.PadreID,
		UsuarioID:       usuarioID,
	}
	if err := uc.camadaRepo.Create(ctx, camada); err != nil {
		return nil, err
	}
	camada.Madre = madre
	camada.Padre = padre
	return toCamadaResponse(camada), nil
}

// GetByID devuelve la camada con madre y padre resueltos. Si alguna de las
// relaciones ya no existe la camada se considera rota.
func (uc *CamadaUseCase) GetByID(ctx context.Context, id int) (*dto.CamadaResponse, error) {
	camada, err := uc.camadaRepo.GetDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	if camada == nil {
		return nil, domain.ErrNotFound
	}
	if camada.Madre == nil || camada.Padre == nil {
		return nil, domain.ErrIntegrity
	}
	return toCamadaResponse(camada), nil
}

// List devuelve solo camadas bien formadas: las de relaciones rotas se
// excluyen en el repositorio.
func (uc *CamadaUseCase) List(ctx context.Context, skip, limit int) ([]dto.CamadaResponse, error) {
	camadas, err := uc.camadaRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CamadaResponse, 0, len(camadas))
	for _, c := range camadas {
		out = append(out, *toCamadaResponse(c))
	}
	return out, nil
}

// Update aplica una actualización parcial. Reasignar madre o padre exige que
// el nuevo animal exista.
func (uc *CamadaUseCase) Update(ctx context.Context, id int, req *dto.UpdateCamadaRequest) (*dto.CamadaResponse, error) {
	camada, err := uc.camadaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if camada == nil {
		return nil, domain.ErrNotFound
	}

	if req.FechaNacimiento != nil {
		camada.FechaNacimiento = req.FechaNacimiento.Time
	}
	if req.NumeroLechones != nil {
		if *req.NumeroLechones < 1 {
			return nil, domain.ErrInvalidInput
		}
		camada.NumeroLechones = *req.NumeroLechones
	}
	if req.PesoPromedioKg != nil {
		camada.PesoPromedioKg = *req.PesoPromedioKg
	}
	if req.MadreID != nil {
		madre, err := uc.cerdaRepo.GetByID(ctx, *req.MadreID)
		if err != nil {
			return nil, err
		}
		if madre == nil {
			return nil, domain.ErrNotFound
		}
		camada.MadreID = *req.MadreID
	}
	if req.PadreID != nil {
		padre, err := uc.sementalRepo.GetByID(ctx, *req.PadreID)
		if err != nil {
			return nil, err
		}
		if padre == nil {
			return nil, domain.ErrNotFound
		}
		camada.PadreID = *req.PadreID
	}

	if err := uc.camadaRepo.Update(ctx, camada); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, id)
}

// Delete elimina una camada y devuelve su última representación con las
// relaciones resueltas.
func (uc *CamadaUseCase) Delete(ctx context.Context, id int) (*dto.CamadaResponse, error) {
	resp, err := uc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.camadaRepo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return resp, nil
}
