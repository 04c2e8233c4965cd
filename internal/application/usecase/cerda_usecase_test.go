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
)

func nuevaCerdaUC() (*usecase.CerdaUseCase, *fakeCerdaRepo) {
	repo := newFakeCerdaRepo()
	return usecase.NewCerdaUseCase(repo), repo
}

func crearCerda(t *testing.T, uc *usecase.CerdaUseCase, codigo string) *dto.CerdaResponse {
	t.Helper()
	out, err := uc.Create(context.Background(), 1, &dto.CreateCerdaRequest{
		CodigoID:        codigo,
		FechaNacimiento: dto.NewFecha(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)),
		Raza:            "Landrace",
	})
	require.NoError(t, err)
	return out
}

func TestCerdaCreate_AsignaIDYEstadoPorDefecto(t *testing.T) {
	uc, _ := nuevaCerdaUC()
	out := crearCerda(t, uc, "R001")

	assert.Equal(t, 1, out.ID)
	assert.Equal(t, "R001", out.CodigoID)
	assert.Equal(t, "Vacía", out.EstadoReproductivo, "sin estado explícito se asume Vacía")
	assert.Equal(t, 1, out.UsuarioID)
}

func TestCerdaCreate_CodigoDuplicado_RetornaError(t *testing.T) {
	uc, _ := nuevaCerdaUC()
	crearCerda(t, uc, "R001")

	_, err := uc.Create(context.Background(), 1, &dto.CreateCerdaRequest{
		CodigoID:        "R001",
		FechaNacimiento: dto.NewFecha(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)),
		Raza:            "Duroc",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCerdaUpdate_Parcial_ConservaCamposOmitidos(t *testing.T) {
	uc, _ := nuevaCerdaUC()
	creada := crearCerda(t, uc, "R001")

	estado := "Gestante"
	out, err := uc.Update(context.Background(), creada.ID, &dto.UpdateCerdaRequest{
		EstadoReproductivo: &estado,
	})
	require.NoError(t, err)

	assert.Equal(t, "Gestante", out.EstadoReproductivo)
	assert.Equal(t, "R001", out.CodigoID, "el código no enviado no debe cambiar")
	assert.Equal(t, "Landrace", out.Raza, "la raza no enviada no debe cambiar")
}

func TestCerdaUpdate_CodigoDeOtraCerda_RetornaDuplicado(t *testing.T) {
	uc, _ := nuevaCerdaUC()
	crearCerda(t, uc, "R001")
	segunda := crearCerda(t, uc, "R002")

	codigo := "R001"
	_, err := uc.Update(context.Background(), segunda.ID, &dto.UpdateCerdaRequest{CodigoID: &codigo})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCerdaUpdate_NoExiste_RetornaNotFound(t *testing.T) {
	uc, _ := nuevaCerdaUC()
	raza := "Duroc"
	_, err := uc.Update(context.Background(), 99, &dto.UpdateCerdaRequest{Raza: &raza})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCerdaDelete_DevuelveRepresentacionPrevia(t *testing.T) {
	uc, _ := nuevaCerdaUC()
	creada := crearCerda(t, uc, "R001")

	out, err := uc.Delete(context.Background(), creada.ID)
	require.NoError(t, err)
	assert.Equal(t, "R001", out.CodigoID, "delete devuelve lo eliminado")

	_, err = uc.GetByID(context.Background(), creada.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "después del delete ya no existe")
}

func TestCerdaList_Paginacion(t *testing.T) {
	uc, _ := nuevaCerdaUC()
	crearCerda(t, uc, "R001")
	crearCerda(t, uc, "R002")
	crearCerda(t, uc, "R003")

	page, err := uc.List(context.Background(), 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "R002", page[0].CodigoID)
}
