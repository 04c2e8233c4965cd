package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/porcigest/porcigest-api/internal/application/dto"
	"github.com/porcigest/porcigest-api/internal/application/usecase"
	"github.com/porcigest/porcigest-api/internal/domain"
)

func nuevoSementalUC() *usecase.SementalUseCase {
	return usecase.NewSementalUseCase(newFakeSementalRepo())
}

func TestSementalCreate_NombreDuplicado(t *testing.T) {
	uc := nuevoSementalUC()
	_, err := uc.Create(context.Background(), 1, &dto.CreateSementalRequest{
		Nombre: "Napoleón", Raza: "Duroc", TasaFertilidad: 90,
	})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), 1, &dto.CreateSementalRequest{
		Nombre: "Napoleón", Raza: "Pietrain",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestSementalCreate_TasaFueraDeRango(t *testing.T) {
	uc := nuevoSementalUC()
	_, err := uc.Create(context.Background(), 1, &dto.CreateSementalRequest{
		Nombre: "Zeus", Raza: "Duroc", TasaFertilidad: 120,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSementalUpdate_TasaInvalida(t *testing.T) {
	uc := nuevoSementalUC()
	creado, err := uc.Create(context.Background(), 1, &dto.CreateSementalRequest{
		Nombre: "Zeus", Raza: "Duroc", TasaFertilidad: 85,
	})
	require.NoError(t, err)

	negativa := -5.0
	_, err = uc.Update(context.Background(), creado.ID, &dto.UpdateSementalRequest{
		TasaFertilidad: &negativa,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSementalDelete_DevuelveRepresentacionPrevia(t *testing.T) {
	uc := nuevoSementalUC()
	creado, err := uc.Create(context.Background(), 1, &dto.CreateSementalRequest{
		Nombre: "Zeus", Raza: "Duroc", TasaFertilidad: 85,
	})
	require.NoError(t, err)

	out, err := uc.Delete(context.Background(), creado.ID)
	require.NoError(t, err)
	assert.Equal(t, "Zeus", out.Nombre)

	_, err = uc.GetByID(context.Background(), creado.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
