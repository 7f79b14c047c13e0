package sheets

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tacticadev/gestor-api/internal/domain/entity"
)

func TestProductoRepository_BootstrapHojaNueva(t *testing.T) {
	ctx := context.Background()
	fake := newFakeValues()
	repo := NewProductoRepository(newClientWithAPI(fake))

	require.NoError(t, repo.Add(ctx, &entity.Producto{
		RecID: "p1", Codigo: "C-01", Nombre: "Tornillo", Descripcion: "caja x100", RecIDImagen: "img1",
	}))

	headers, err := fake.Get(ctx, "producto!1:1")
	require.NoError(t, err)
	require.Len(t, headers, 1)
	assert.Equal(t, []string{
		"data_ini_prox", "RecID", "codigo_producto", "nombre_producto", "descripcion_producto", "RecID_imagen",
	}, headers[0])

	p, err := repo.GetByRecID(ctx, "p1")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Tornillo", p.Nombre)
	assert.Equal(t, "img1", p.RecIDImagen)
}

func TestProductoRepository_AliasDeColumnaImagen(t *testing.T) {
	ctx := context.Background()
	fake := newFakeValues("producto")
	// Hoja heredada con alias histórico y columnas en otro orden.
	require.NoError(t, fake.Update(ctx, "producto!A1:F1", [][]string{{
		"data_ini_prox", "RecID", "nombre_producto", "ID_imagen", "codigo_producto", "descripcion_producto",
	}}))
	require.NoError(t, fake.Update(ctx, "producto!A2:F2", [][]string{{
		"", "p1", "Clavo", "img9", "C-02", "bolsa",
	}}))

	repo := NewProductoRepository(newClientWithAPI(fake))
	p, err := repo.GetByRecID(ctx, "p1")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Clavo", p.Nombre)
	assert.Equal(t, "C-02", p.Codigo)
	assert.Equal(t, "img9", p.RecIDImagen, "el alias ID_imagen se normaliza en la salida")

	// Update respeta el orden real de columnas y el alias detectado.
	p.RecIDImagen = "img10"
	p.Nombre = "Clavo 2\""
	ok, err := repo.Update(ctx, p)
	require.NoError(t, err)
	require.True(t, ok)

	row, err := fake.Get(ctx, "producto!A2:F2")
	require.NoError(t, err)
	require.Len(t, row, 1)
	assert.Equal(t, "Clavo 2\"", row[0][2])
	assert.Equal(t, "img10", row[0][3])
}

func TestProductoRepository_UpdateInexistente(t *testing.T) {
	ctx := context.Background()
	repo := NewProductoRepository(newClientWithAPI(newFakeValues()))
	ok, err := repo.Update(ctx, &entity.Producto{RecID: "nope", Nombre: "x"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestProductoRepository_ListOmiteFilasVacias(t *testing.T) {
	ctx := context.Background()
	repo := NewProductoRepository(newClientWithAPI(newFakeValues()))
	require.NoError(t, repo.Add(ctx, &entity.Producto{RecID: "p1", Nombre: "A"}))
	require.NoError(t, repo.Add(ctx, &entity.Producto{RecID: "p2", Nombre: "B"}))
	_, err := repo.DeleteByRecID(ctx, "p1")
	require.NoError(t, err)

	out, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "p2", out[0].RecID)
}
