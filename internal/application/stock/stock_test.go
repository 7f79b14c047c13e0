package stock

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tacticadev/gestor-api/internal/application/dto"
	"github.com/tacticadev/gestor-api/internal/application/usecase"
	"github.com/tacticadev/gestor-api/internal/domain"
	"github.com/tacticadev/gestor-api/internal/domain/entity"
	"github.com/tacticadev/gestor-api/internal/events"
	"github.com/tacticadev/gestor-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeStockRepo struct {
	rows []*entity.Stock
}

func (f *fakeStockRepo) List(context.Context) ([]*entity.Stock, error) {
	out := make([]*entity.Stock, len(f.rows))
	for i, s := range f.rows {
		cp := *s
		out[i] = &cp
	}
	return out, nil
}

func (f *fakeStockRepo) GetByRecID(_ context.Context, recid string) (*entity.Stock, error) {
	for _, s := range f.rows {
		if s.RecID == recid {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeStockRepo) FindByProductoYDeposito(_ context.Context, idProducto, idDeposito string) (*entity.Stock, error) {
	for _, s := range f.rows {
		if s.IDProducto == idProducto && s.IDDeposito == idDeposito {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeStockRepo) Add(_ context.Context, s *entity.Stock) error {
	cp := *s
	f.rows = append(f.rows, &cp)
	return nil
}

func (f *fakeStockRepo) SetCantidad(_ context.Context, recid string, cantidad int) error {
	for _, s := range f.rows {
		if s.RecID == recid {
			s.Cantidad = cantidad
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeStockRepo) DeleteByRecID(_ context.Context, recid string) (bool, error) {
	for i, s := range f.rows {
		if s.RecID == recid {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakeProductoRepo struct {
	items map[string]*entity.Producto
}

func (f *fakeProductoRepo) List(context.Context) ([]*entity.Producto, error) { return nil, nil }
func (f *fakeProductoRepo) GetByRecID(_ context.Context, recid string) (*entity.Producto, error) {
	return f.items[recid], nil
}
func (f *fakeProductoRepo) Add(_ context.Context, p *entity.Producto) error {
	f.items[p.RecID] = p
	return nil
}
func (f *fakeProductoRepo) Update(context.Context, *entity.Producto) (bool, error) {
	return false, nil
}
func (f *fakeProductoRepo) DeleteByRecID(context.Context, string) (bool, error) { return false, nil }

type fakeDepositoRepo struct {
	items map[string]*entity.Deposito
}

func (f *fakeDepositoRepo) List(context.Context) ([]*entity.Deposito, error) { return nil, nil }
func (f *fakeDepositoRepo) GetByRecID(_ context.Context, recid string) (*entity.Deposito, error) {
	return f.items[recid], nil
}
func (f *fakeDepositoRepo) Add(_ context.Context, d *entity.Deposito) error {
	f.items[d.RecID] = d
	return nil
}
func (f *fakeDepositoRepo) Update(context.Context, *entity.Deposito) (bool, error) {
	return false, nil
}
func (f *fakeDepositoRepo) DeleteByRecID(context.Context, string) (bool, error) { return false, nil }

type fakeLogRepo struct {
	entries []*entity.LogEntry
}

func (f *fakeLogRepo) List(context.Context) ([]*entity.LogEntry, error) { return f.entries, nil }
func (f *fakeLogRepo) Append(_ context.Context, e *entity.LogEntry) error {
	f.entries = append(f.entries, e)
	return nil
}

type fixture struct {
	uc     *UseCase
	stocks *fakeStockRepo
	logs   *fakeLogRepo
}

func newFixture() *fixture {
	stocks := &fakeStockRepo{}
	logs := &fakeLogRepo{}
	productos := &fakeProductoRepo{items: map[string]*entity.Producto{
		"p1": {RecID: "p1", Nombre: "Tornillo"},
	}}
	depositos := &fakeDepositoRepo{items: map[string]*entity.Deposito{
		"dA": {RecID: "dA", Nombre: "Depósito A"},
		"dB": {RecID: "dB", Nombre: "Depósito B"},
	}}
	uc := New(stocks, productos, depositos, usecase.NewLogUseCase(logs), events.New(), logger.Nop())
	return &fixture{uc: uc, stocks: stocks, logs: logs}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCrear_Valida(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	_, err := f.uc.Crear(ctx, "Ana", dto.CreateStockRequest{IDProducto: "", IDDeposito: "dA", Cantidad: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.Crear(ctx, "Ana", dto.CreateStockRequest{IDProducto: "p1", IDDeposito: "dA", Cantidad: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.Crear(ctx, "Ana", dto.CreateStockRequest{IDProducto: "p9", IDDeposito: "dA", Cantidad: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.uc.Crear(ctx, "Ana", dto.CreateStockRequest{IDProducto: "p1", IDDeposito: "d9", Cantidad: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCrear_RechazaParDuplicado(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	s, err := f.uc.Crear(ctx, "Ana", dto.CreateStockRequest{IDProducto: "p1", IDDeposito: "dA", Cantidad: 10})
	require.NoError(t, err)
	require.NotEmpty(t, s.RecID)
	assert.Equal(t, 10, s.Cantidad)

	_, err = f.uc.Crear(ctx, "Ana", dto.CreateStockRequest{IDProducto: "p1", IDDeposito: "dA", Cantidad: 5})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	require.Len(t, f.logs.entries, 1)
	assert.Contains(t, f.logs.entries[0].Accion, "Carga de 10")
	assert.Equal(t, "Ana", f.logs.entries[0].IDUsuario)
}

func TestCargarYDescargar(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	s, err := f.uc.Crear(ctx, "Ana", dto.CreateStockRequest{IDProducto: "p1", IDDeposito: "dA", Cantidad: 10})
	require.NoError(t, err)

	out, err := f.uc.Cargar(ctx, "Ana", s.RecID, 5)
	require.NoError(t, err)
	assert.Equal(t, 15, out.Cantidad)

	out, err = f.uc.Descargar(ctx, "Ana", s.RecID, 7)
	require.NoError(t, err)
	assert.Equal(t, 8, out.Cantidad)

	_, err = f.uc.Cargar(ctx, "Ana", s.RecID, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = f.uc.Cargar(ctx, "Ana", "nope", 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDescargar_MayorALaExistenciaDejaLaFilaIntacta(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	s, err := f.uc.Crear(ctx, "Ana", dto.CreateStockRequest{IDProducto: "p1", IDDeposito: "dA", Cantidad: 3})
	require.NoError(t, err)

	_, err = f.uc.Descargar(ctx, "Ana", s.RecID, 4)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	cur, err := f.uc.GetByRecID(ctx, s.RecID)
	require.NoError(t, err)
	assert.Equal(t, 3, cur.Cantidad)
}

// Escenario completo de movimientos: 10 unidades en A, mover 4 a B (sin fila)
// crea la fila destino; mover otras 4 reutiliza esa misma fila.
func TestMover_CreaYReutilizaFilaDestino(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	origen, err := f.uc.Crear(ctx, "Ana", dto.CreateStockRequest{IDProducto: "p1", IDDeposito: "dA", Cantidad: 10})
	require.NoError(t, err)

	dest, err := f.uc.Mover(ctx, "Ana", origen.RecID, dto.MoverStockRequest{IDDepositoDestino: "dB", Cantidad: 4})
	require.NoError(t, err)
	assert.Equal(t, "dB", dest.IDDeposito)
	assert.Equal(t, 4, dest.Cantidad)
	assert.NotEqual(t, origen.RecID, dest.RecID)

	a, err := f.uc.GetByRecID(ctx, origen.RecID)
	require.NoError(t, err)
	assert.Equal(t, 6, a.Cantidad)

	dest2, err := f.uc.Mover(ctx, "Ana", origen.RecID, dto.MoverStockRequest{IDDepositoDestino: "dB", Cantidad: 4})
	require.NoError(t, err)
	assert.Equal(t, dest.RecID, dest2.RecID, "se reutiliza la fila destino existente")
	assert.Equal(t, 8, dest2.Cantidad)

	a, err = f.uc.GetByRecID(ctx, origen.RecID)
	require.NoError(t, err)
	assert.Equal(t, 2, a.Cantidad)

	assert.Len(t, f.stocks.rows, 2, "no se crea una segunda fila para el mismo par")
}

func TestMover_Validaciones(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	origen, err := f.uc.Crear(ctx, "Ana", dto.CreateStockRequest{IDProducto: "p1", IDDeposito: "dA", Cantidad: 5})
	require.NoError(t, err)

	_, err = f.uc.Mover(ctx, "Ana", origen.RecID, dto.MoverStockRequest{IDDepositoDestino: "", Cantidad: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.Mover(ctx, "Ana", origen.RecID, dto.MoverStockRequest{IDDepositoDestino: "dB", Cantidad: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.Mover(ctx, "Ana", origen.RecID, dto.MoverStockRequest{IDDepositoDestino: "dA", Cantidad: 1})
	assert.ErrorIs(t, err, domain.ErrSameDeposit)

	_, err = f.uc.Mover(ctx, "Ana", origen.RecID, dto.MoverStockRequest{IDDepositoDestino: "dB", Cantidad: 6})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	_, err = f.uc.Mover(ctx, "Ana", origen.RecID, dto.MoverStockRequest{IDDepositoDestino: "d9", Cantidad: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Ninguna validación fallida tocó la fila origen.
	cur, err := f.uc.GetByRecID(ctx, origen.RecID)
	require.NoError(t, err)
	assert.Equal(t, 5, cur.Cantidad)
}

func TestTotales(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.stocks.rows = []*entity.Stock{
		{RecID: "s1", IDProducto: "p1", IDDeposito: "dA", Cantidad: 3},
		{RecID: "s2", IDProducto: "p1", IDDeposito: "dB", Cantidad: 4},
		{RecID: "s3", IDProducto: "p2", IDDeposito: "dA", Cantidad: 5},
	}

	porProducto, err := f.uc.TotalesPorProducto(ctx)
	require.NoError(t, err)
	require.Len(t, porProducto, 2)
	assert.Equal(t, "p1", porProducto[0].ID)
	assert.Equal(t, 7, porProducto[0].Total)
	assert.Equal(t, "p2", porProducto[1].ID)
	assert.Equal(t, 5, porProducto[1].Total)

	porDeposito, err := f.uc.TotalesPorDeposito(ctx)
	require.NoError(t, err)
	require.Len(t, porDeposito, 2)
	assert.Equal(t, "dA", porDeposito[0].ID)
	assert.Equal(t, 8, porDeposito[0].Total)
	assert.Equal(t, "dB", porDeposito[1].ID)
	assert.Equal(t, 4, porDeposito[1].Total)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	s, err := f.uc.Crear(ctx, "Ana", dto.CreateStockRequest{IDProducto: "p1", IDDeposito: "dA", Cantidad: 1})
	require.NoError(t, err)

	ok, err := f.uc.Delete(ctx, s.RecID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.uc.Delete(ctx, s.RecID)
	require.NoError(t, err)
	assert.False(t, ok)
}
