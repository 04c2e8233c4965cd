package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/porcigest/porcigest-api/internal/application/dto"
	"github.com/porcigest/porcigest-api/internal/application/usecase"
	"github.com/porcigest/porcigest-api/internal/domain"
	"github.com/porcigest/porcigest-api/internal/domain/entity"
)

type camadaFixture struct {
	uc        *usecase.CamadaUseCase
	cerdas    *fakeCerdaRepo
	sementals *fakeSementalRepo
	camadas   *fakeCamadaRepo
	madre     *entity.Cerda
	padre     *entity.Semental
}

// nuevaCamadaFixture deja una madre (R001) y un padre (Napoleón) listos.
func nuevaCamadaFixture(t *testing.T) *camadaFixture {
	t.Helper()
	cerdas := newFakeCerdaRepo()
	sementals := newFakeSementalRepo()
	camadas := newFakeCamadaRepo(cerdas, sementals)

	madre := &entity.Cerda{
		CodigoID:           "R001",
		FechaNacimiento:    time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC),
		Raza:               "Landrace",
		EstadoReproductivo: entity.EstadoLactando,
		UsuarioID:          1,
	}
	require.NoError(t, cerdas.Create(context.Background(), madre))

	padre := &entity.Semental{
		Nombre:         "Napoleón",
		Raza:           "Duroc",
		TasaFertilidad: 92.5,
		UsuarioID:      1,
	}
	require.NoError(t, sementals.Create(context.Background(), padre))

	return &camadaFixture{
		uc:        usecase.NewCamadaUseCase(camadas, cerdas, sementals),
		cerdas:    cerdas,
		sementals: sementals,
		camadas:   camadas,
		madre:     madre,
		padre:     padre,
	}
}

func (f *camadaFixture) crear(t *testing.T) *dto.CamadaResponse {
	t.Helper()
	out, err := f.uc.Create(context.Background(), 1, &dto.CreateCamadaRequest{
		FechaNacimiento: dto.NewFecha(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)),
		NumeroLechones:  12,
		PesoPromedioKg:  1.4,
		MadreID:         f.madre.ID,
		PadreID:         f.padre.ID,
	})
	require.NoError(t, err)
	return out
}

func TestCamadaCreate_ResuelveMadreYPadre(t *testing.T) {
	f := nuevaCamadaFixture(t)
	out := f.crear(t)

	assert.Equal(t, 12, out.NumeroLechones)
	assert.Equal(t, "R001", out.Madre.CodigoID)
	assert.Equal(t, "Napoleón", out.Padre.Nombre)
}

func TestCamadaCreate_MadreInexistente_RetornaNotFound(t *testing.T) {
	f := nuevaCamadaFixture(t)
	_, err := f.uc.Create(context.Background(), 1, &dto.CreateCamadaRequest{
		FechaNacimiento: dto.NewFecha(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)),
		NumeroLechones:  8,
		MadreID:         99,
		PadreID:         f.padre.ID,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCamadaGetByID_RelacionRota_RetornaIntegrity(t *testing.T) {
	f := nuevaCamadaFixture(t)
	creada := f.crear(t)

	// Se elimina el padre directamente en el almacén: el detalle queda roto.
	require.NoError(t, f.sementals.Delete(context.Background(), f.padre.ID))

	_, err := f.uc.GetByID(context.Background(), creada.ID)
	assert.ErrorIs(t, err, domain.ErrIntegrity)
}

func TestCamadaList_ExcluyeRelacionesRotas(t *testing.T) {
	f := nuevaCamadaFixture(t)
	f.crear(t)

	otraMadre := &entity.Cerda{CodigoID: "R002", Raza: "Yorkshire", UsuarioID: 1}
	require.NoError(t, f.cerdas.Create(context.Background(), otraMadre))
	_, err := f.uc.Create(context.Background(), 1, &dto.CreateCamadaRequest{
		FechaNacimiento: dto.NewFecha(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)),
		NumeroLechones:  9,
		MadreID:         otraMadre.ID,
		PadreID:         f.padre.ID,
	})
	require.NoError(t, err)

	require.NoError(t, f.cerdas.Delete(context.Background(), otraMadre.ID))

	lista, err := f.uc.List(context.Background(), 0, 100)
	require.NoError(t, err)
	require.Len(t, lista, 1, "la camada con madre eliminada no debe listarse")
	assert.Equal(t, "R001", lista[0].Madre.CodigoID)
}

func TestCamadaUpdate_Parcial(t *testing.T) {
	f := nuevaCamadaFixture(t)
	creada := f.crear(t)

	peso := 2.1
	out, err := f.uc.Update(context.Background(), creada.ID, &dto.UpdateCamadaRequest{
		PesoPromedioKg: &peso,
	})
	require.NoError(t, err)
	assert.Equal(t, 2.1, out.PesoPromedioKg)
	assert.Equal(t, 12, out.NumeroLechones, "el número de lechones no enviado no debe cambiar")
	assert.Equal(t, "R001", out.Madre.CodigoID)
}

func TestCamadaUpdate_NumeroLechonesInvalido(t *testing.T) {
	f := nuevaCamadaFixture(t)
	creada := f.crear(t)

	cero := 0
	_, err := f.uc.Update(context.Background(), creada.ID, &dto.UpdateCamadaRequest{
		NumeroLechones: &cero,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCamadaDelete_DevuelveDetallePrevio(t *testing.T) {
	f := nuevaCamadaFixture(t)
	creada := f.crear(t)

	out, err := f.uc.Delete(context.Background(), creada.ID)
	require.NoError(t, err)
	assert.Equal(t, "R001", out.Madre.CodigoID, "el detalle eliminado viene con relaciones resueltas")

	_, err = f.uc.GetByID(context.Background(), creada.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
