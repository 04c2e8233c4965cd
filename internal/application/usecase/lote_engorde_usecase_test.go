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

type loteFixture struct {
	*camadaFixture
	uc     *usecase.LoteEngordeUseCase
	lotes  *fakeLoteRepo
	camada *dto.CamadaResponse
}

func nuevoLoteFixture(t *testing.T) *loteFixture {
	t.Helper()
	base := nuevaCamadaFixture(t)
	lotes := newFakeLoteRepo(base.camadas)
	f := &loteFixture{
		camadaFixture: base,
		uc:            usecase.NewLoteEngordeUseCase(lotes, base.camadas),
		lotes:         lotes,
	}
	f.camada = base.crear(t)
	return f
}

func (f *loteFixture) crear(t *testing.T, loteID string) *dto.LoteEngordeResponse {
	t.Helper()
	out, err := f.uc.Create(context.Background(), 1, &dto.CreateLoteEngordeRequest{
		LoteIDStr:        loteID,
		FechaInicio:      dto.NewFecha(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)),
		CantidadAnimales: 10,
		PesoInicialKg:    7.5,
		PesoPromedioKg:   8.2,
		CamadaOrigenID:   f.camada.ID,
	})
	require.NoError(t, err)
	return out
}

func TestLoteCreate_ResuelveCadenaCompleta(t *testing.T) {
	f := nuevoLoteFixture(t)
	out := f.crear(t, "L-2025-001")

	assert.Equal(t, "L-2025-001", out.LoteIDStr)
	require.NotNil(t, out.CamadaOrigen, "la camada de origen viene resuelta")
	assert.Equal(t, "R001", out.CamadaOrigen.Madre.CodigoID)
	assert.Equal(t, "Napoleón", out.CamadaOrigen.Padre.Nombre)
}

func TestLoteCreate_IdentificadorDuplicado(t *testing.T) {
	f := nuevoLoteFixture(t)
	f.crear(t, "L-2025-001")

	_, err := f.uc.Create(context.Background(), 1, &dto.CreateLoteEngordeRequest{
		LoteIDStr:        "L-2025-001",
		FechaInicio:      dto.NewFecha(time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)),
		CantidadAnimales: 5,
		CamadaOrigenID:   f.camada.ID,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestLoteCreate_CamadaInexistente_RetornaNotFound(t *testing.T) {
	f := nuevoLoteFixture(t)
	_, err := f.uc.Create(context.Background(), 1, &dto.CreateLoteEngordeRequest{
		LoteIDStr:        "L-2025-002",
		FechaInicio:      dto.NewFecha(time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)),
		CantidadAnimales: 5,
		CamadaOrigenID:   99,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLoteGetByID_CadenaRota_RetornaIntegrity(t *testing.T) {
	f := nuevoLoteFixture(t)
	out := f.crear(t, "L-2025-001")

	// Romper la cadena dos niveles más abajo: se elimina la madre de la camada.
	require.NoError(t, f.cerdas.Delete(context.Background(), f.madre.ID))

	_, err := f.uc.GetByID(context.Background(), out.ID)
	assert.ErrorIs(t, err, domain.ErrIntegrity)
}

func TestLoteUpdate_Parcial(t *testing.T) {
	f := nuevoLoteFixture(t)
	creado := f.crear(t, "L-2025-001")

	peso := 25.0
	out, err := f.uc.Update(context.Background(), creado.ID, &dto.UpdateLoteEngordeRequest{
		PesoPromedioKg: &peso,
	})
	require.NoError(t, err)
	assert.Equal(t, 25.0, out.PesoPromedioKg)
	assert.Equal(t, "L-2025-001", out.LoteIDStr)
	assert.Equal(t, 10, out.CantidadAnimales)
}

func TestLoteDelete_DevuelveDetallePrevio(t *testing.T) {
	f := nuevoLoteFixture(t)
	creado := f.crear(t, "L-2025-001")

	out, err := f.uc.Delete(context.Background(), creado.ID)
	require.NoError(t, err)
	require.NotNil(t, out.CamadaOrigen)
	assert.Equal(t, f.camada.ID, out.CamadaOrigen.ID)

	_, err = f.uc.GetByID(context.Background(), creado.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLoteList_ExcluyeCadenasRotas(t *testing.T) {
	f := nuevoLoteFixture(t)
	f.crear(t, "L-2025-001")

	// Segundo lote apoyado en otra camada que luego pierde a su madre.
	otraMadre := &entity.Cerda{CodigoID: "R002", Raza: "Yorkshire", UsuarioID: 1}
	require.NoError(t, f.cerdas.Create(context.Background(), otraMadre))
	otraCamada, err := usecase.NewCamadaUseCase(f.camadas, f.cerdas, f.sementals).
		Create(context.Background(), 1, &dto.CreateCamadaRequest{
			FechaNacimiento: dto.NewFecha(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)),
			NumeroLechones:  7,
			MadreID:         otraMadre.ID,
			PadreID:         f.padre.ID,
		})
	require.NoError(t, err)
	_, err = f.uc.Create(context.Background(), 1, &dto.CreateLoteEngordeRequest{
		LoteIDStr:        "L-2025-002",
		FechaInicio:      dto.NewFecha(time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)),
		CantidadAnimales: 7,
		CamadaOrigenID:   otraCamada.ID,
	})
	require.NoError(t, err)

	require.NoError(t, f.cerdas.Delete(context.Background(), otraMadre.ID))

	lista, err := f.uc.List(context.Background(), 0, 100)
	require.NoError(t, err)
	require.Len(t, lista, 1)
	assert.Equal(t, "L-2025-001", lista[0].LoteIDStr)
}
