package sheets

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tacticadev/gestor-api/internal/domain"
	"github.com/tacticadev/gestor-api/internal/domain/entity"
)

func newStockRepoForTest() (*StockRepository, *fakeValues) {
	fake := newFakeValues()
	return NewStockRepository(newClientWithAPI(fake)), fake
}

func TestStockRepository_AddYList(t *testing.T) {
	ctx := context.Background()
	repo, _ := newStockRepoForTest()

	require.NoError(t, repo.Add(ctx, &entity.Stock{RecID: "s1", IDProducto: "p1", IDDeposito: "d1", Cantidad: 10}))
	require.NoError(t, repo.Add(ctx, &entity.Stock{RecID: "s2", IDProducto: "p2", IDDeposito: "d1", Cantidad: 0}))

	filas, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, filas, 2)
	assert.Equal(t, "s1", filas[0].RecID)
	assert.Equal(t, 10, filas[0].Cantidad)
	assert.Equal(t, 0, filas[1].Cantidad)
}

func TestStockRepository_CantidadVaciaCuentaComoCero(t *testing.T) {
	ctx := context.Background()
	repo, fake := newStockRepoForTest()
	require.NoError(t, repo.Add(ctx, &entity.Stock{RecID: "s1", IDProducto: "p1", IDDeposito: "d1", Cantidad: 1}))
	require.NoError(t, fake.Update(ctx, "stock!E2", [][]string{{""}}))

	s, err := repo.GetByRecID(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, 0, s.Cantidad)
}

func TestStockRepository_CantidadNoNumericaAbortaLaLectura(t *testing.T) {
	ctx := context.Background()
	repo, fake := newStockRepoForTest()
	require.NoError(t, repo.Add(ctx, &entity.Stock{RecID: "s1", IDProducto: "p1", IDDeposito: "d1", Cantidad: 1}))
	require.NoError(t, fake.Update(ctx, "stock!E2", [][]string{{"cuatro"}}))

	_, err := repo.List(ctx)
	assert.ErrorIs(t, err, domain.ErrBadQuantity)

	_, err = repo.GetByRecID(ctx, "s1")
	assert.ErrorIs(t, err, domain.ErrBadQuantity)
}

func TestStockRepository_SetCantidad(t *testing.T) {
	ctx := context.Background()
	repo, _ := newStockRepoForTest()
	require.NoError(t, repo.Add(ctx, &entity.Stock{RecID: "s1", IDProducto: "p1", IDDeposito: "d1", Cantidad: 5}))

	require.NoError(t, repo.SetCantidad(ctx, "s1", 12))
	s, err := repo.GetByRecID(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 12, s.Cantidad)
	assert.Equal(t, "p1", s.IDProducto, "producto y depósito quedan intactos")
	assert.Equal(t, "d1", s.IDDeposito)

	assert.ErrorIs(t, repo.SetCantidad(ctx, "nope", 1), domain.ErrNotFound)
}

func TestStockRepository_FindByProductoYDeposito(t *testing.T) {
	ctx := context.Background()
	repo, _ := newStockRepoForTest()
	require.NoError(t, repo.Add(ctx, &entity.Stock{RecID: "s1", IDProducto: "p1", IDDeposito: "d1", Cantidad: 5}))
	require.NoError(t, repo.Add(ctx, &entity.Stock{RecID: "s2", IDProducto: "p1", IDDeposito: "d2", Cantidad: 7}))

	s, err := repo.FindByProductoYDeposito(ctx, "p1", "d2")
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "s2", s.RecID)

	s, err = repo.FindByProductoYDeposito(ctx, "p9", "d1")
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestStockRepository_DeleteDejaFilaVacia(t *testing.T) {
	ctx := context.Background()
	repo, _ := newStockRepoForTest()
	require.NoError(t, repo.Add(ctx, &entity.Stock{RecID: "s1", IDProducto: "p1", IDDeposito: "d1", Cantidad: 5}))
	require.NoError(t, repo.Add(ctx, &entity.Stock{RecID: "s2", IDProducto: "p2", IDDeposito: "d1", Cantidad: 3}))

	ok, err := repo.DeleteByRecID(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, ok)

	// La fila queda en blanco: la segunda sigue en su posición y List la omite.
	filas, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, filas, 1)
	assert.Equal(t, "s2", filas[0].RecID)

	row, err := repo.findRowByColValue(ctx, stockTab, 2, "s2")
	require.NoError(t, err)
	assert.Equal(t, 3, row, "la fila limpiada no corre a las demás")

	ok, err = repo.DeleteByRecID(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, ok)
}
