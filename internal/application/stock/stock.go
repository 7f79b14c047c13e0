// Package stock implementa el libro de stock sobre la hoja 'stock': alta de
// filas, cargas, descargas y movimientos entre depósitos. Las operaciones son
// leer fila, calcular y escribir fila, sin bloqueo: dos mutaciones simultáneas
// sobre la misma fila pueden pisarse (limitación conocida del registro en Sheets).
package stock

import (
	"context"
	"sort"
	"strings"

	"github.com/tacticadev/gestor-api/internal/application/dto"
	"github.com/tacticadev/gestor-api/internal/application/usecase"
	"github.com/tacticadev/gestor-api/internal/domain"
	"github.com/tacticadev/gestor-api/internal/domain/entity"
	"github.com/tacticadev/gestor-api/internal/domain/repository"
	"github.com/tacticadev/gestor-api/internal/events"
	"github.com/tacticadev/gestor-api/pkg/logger"
	"github.com/tacticadev/gestor-api/pkg/recid"
)

// UseCase casos de uso del libro de stock.
type UseCase struct {
	stocks    repository.StockRepository
	productos repository.ProductoRepository
	depositos repository.DepositoRepository
	logs      *usecase.LogUseCase
	bus       *events.Bus
	log       *logger.Logger
}

// New construye el caso de uso.
func New(stocks repository.StockRepository, productos repository.ProductoRepository, depositos repository.DepositoRepository, logs *usecase.LogUseCase, bus *events.Bus, log *logger.Logger) *UseCase {
	return &UseCase{
		stocks:    stocks,
		productos: productos,
		depositos: depositos,
		logs:      logs,
		bus:       bus,
		log:       log,
	}
}

func (uc *UseCase) registrar(ctx context.Context, actor, accion string) {
	if err := uc.logs.Registrar(ctx, actor, accion); err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo registrar en la bitácora")
	}
}

// nombreProducto devuelve el nombre del producto o su RecID si no se resuelve.
func (uc *UseCase) nombreProducto(ctx context.Context, id string) string {
	p, err := uc.productos.GetByRecID(ctx, id)
	if err != nil || p == nil || p.Nombre == "" {
		return id
	}
	return p.Nombre
}

// nombreDeposito devuelve el nombre del depósito o su RecID si no se resuelve.
func (uc *UseCase) nombreDeposito(ctx context.Context, id string) string {
	d, err := uc.depositos.GetByRecID(ctx, id)
	if err != nil || d == nil || d.Nombre == "" {
		return id
	}
	return d.Nombre
}

// List devuelve todas las filas de stock.
func (uc *UseCase) List(ctx context.Context) ([]*dto.StockResponse, error) {
	filas, err := uc.stocks.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.StockResponse, 0, len(filas))
	for _, s := range filas {
		out = append(out, dto.ToStockResponse(s))
	}
	return out, nil
}

// GetByRecID devuelve (nil, nil) cuando la fila no existe.
func (uc *UseCase) GetByRecID(ctx context.Context, id string) (*dto.StockResponse, error) {
	s, err := uc.stocks.GetByRecID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	return dto.ToStockResponse(s), nil
}

// Crear da de alta una fila (producto, depósito) con la cantidad inicial.
// Rechaza claves vacías, cantidad < 1, referencias inexistentes y pares
// (producto, depósito) que ya tienen fila.
func (uc *UseCase) Crear(ctx context.Context, actor string, in dto.CreateStockRequest) (*dto.StockResponse, error) {
	idProducto := strings.TrimSpace(in.IDProducto)
	idDeposito := strings.TrimSpace(in.IDDeposito)
	if idProducto == "" || idDeposito == "" || in.Cantidad < 1 {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.productos.GetByRecID(ctx, idProducto)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	d, err := uc.depositos.GetByRecID(ctx, idDeposito)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	existing, err := uc.stocks.FindByProductoYDeposito(ctx, idProducto, idDeposito)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	s := &entity.Stock{
		RecID:      recid.New(),
		IDProducto: idProducto,
		IDDeposito: idDeposito,
		Cantidad:   in.Cantidad,
	}
	if err := uc.stocks.Add(ctx, s); err != nil {
		return nil, err
	}
	uc.registrar(ctx, actor, usecase.FmtStockCarga(p.Nombre, d.Nombre, in.Cantidad))
	uc.bus.Publish(events.TopicStockRefresh, s.RecID)
	return dto.ToStockResponse(s), nil
}

// Cargar suma cantidad a la fila. Sin tope superior.
func (uc *UseCase) Cargar(ctx context.Context, actor, id string, cantidad int) (*dto.StockResponse, error) {
	if cantidad < 1 {
		return nil, domain.ErrInvalidInput
	}
	s, err := uc.stocks.GetByRecID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	s.Cantidad += cantidad
	if err := uc.stocks.SetCantidad(ctx, s.RecID, s.Cantidad); err != nil {
		return nil, err
	}
	uc.registrar(ctx, actor, usecase.FmtStockCarga(
		uc.nombreProducto(ctx, s.IDProducto), uc.nombreDeposito(ctx, s.IDDeposito), cantidad))
	uc.bus.Publish(events.TopicStockRefresh, s.RecID)
	return dto.ToStockResponse(s), nil
}

// Descargar resta cantidad a la fila. Rechaza descargas mayores a la
// existencia; la fila queda intacta.
func (uc *UseCase) Descargar(ctx context.Context, actor, id string, cantidad int) (*dto.StockResponse, error) {
	if cantidad < 1 {
		return nil, domain.ErrInvalidInput
	}
	s, err := uc.stocks.GetByRecID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	if cantidad > s.Cantidad {
		return nil, domain.ErrInsufficientStock
	}
	s.Cantidad -= cantidad
	if err := uc.stocks.SetCantidad(ctx, s.RecID, s.Cantidad); err != nil {
		return nil, err
	}
	uc.registrar(ctx, actor, usecase.FmtStockDescarga(
		uc.nombreProducto(ctx, s.IDProducto), uc.nombreDeposito(ctx, s.IDDeposito), cantidad))
	uc.bus.Publish(events.TopicStockRefresh, s.RecID)
	return dto.ToStockResponse(s), nil
}

// Mover descuenta cantidad de la fila origen y la acredita en el depósito
// destino: si ya existe fila (producto, destino) se incrementa, si no se crea
// una nueva con RecID fresco. Devuelve la fila destino.
func (uc *UseCase) Mover(ctx context.Context, actor, id string, in dto.MoverStockRequest) (*dto.StockResponse, error) {
	destino := strings.TrimSpace(in.IDDepositoDestino)
	if destino == "" || in.Cantidad < 1 {
		return nil, domain.ErrInvalidInput
	}
	origen, err := uc.stocks.GetByRecID(ctx, id)
	if err != nil {
		return nil, err
	}
	if origen == nil {
		return nil, domain.ErrNotFound
	}
	if destino == origen.IDDeposito {
		return nil, domain.ErrSameDeposit
	}
	if in.Cantidad > origen.Cantidad {
		return nil, domain.ErrInsufficientStock
	}
	d, err := uc.depositos.GetByRecID(ctx, destino)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}

	if err := uc.stocks.SetCantidad(ctx, origen.RecID, origen.Cantidad-in.Cantidad); err != nil {
		return nil, err
	}
	dest, err := uc.stocks.FindByProductoYDeposito(ctx, origen.IDProducto, destino)
	if err != nil {
		return nil, err
	}
	if dest != nil {
		dest.Cantidad += in.Cantidad
		if err := uc.stocks.SetCantidad(ctx, dest.RecID, dest.Cantidad); err != nil {
			return nil, err
		}
	} else {
		dest = &entity.Stock{
			RecID:      recid.New(),
			IDProducto: origen.IDProducto,
			IDDeposito: destino,
			Cantidad:   in.Cantidad,
		}
		if err := uc.stocks.Add(ctx, dest); err != nil {
			return nil, err
		}
	}
	uc.registrar(ctx, actor, usecase.FmtStockMovimiento(
		uc.nombreProducto(ctx, origen.IDProducto),
		uc.nombreDeposito(ctx, origen.IDDeposito),
		d.Nombre, in.Cantidad))
	uc.bus.Publish(events.TopicStockRefresh, dest.RecID)
	return dto.ToStockResponse(dest), nil
}

// Delete borra la fila de stock. Devuelve false si no existe.
func (uc *UseCase) Delete(ctx context.Context, id string) (bool, error) {
	ok, err := uc.stocks.DeleteByRecID(ctx, id)
	if err != nil {
		return false, err
	}
	if ok {
		uc.bus.Publish(events.TopicStockRefresh, id)
	}
	return ok, nil
}

// TotalesPorProducto suma en memoria las existencias agrupadas por producto.
func (uc *UseCase) TotalesPorProducto(ctx context.Context) ([]*dto.TotalResponse, error) {
	filas, err := uc.stocks.List(ctx)
	if err != nil {
		return nil, err
	}
	return agrupar(filas, func(s *entity.Stock) string { return s.IDProducto }), nil
}

// TotalesPorDeposito suma en memoria las existencias agrupadas por depósito.
func (uc *UseCase) TotalesPorDeposito(ctx context.Context) ([]*dto.TotalResponse, error) {
	filas, err := uc.stocks.List(ctx)
	if err != nil {
		return nil, err
	}
	return agrupar(filas, func(s *entity.Stock) string { return s.IDDeposito }), nil
}

func agrupar(filas []*entity.Stock, key func(*entity.Stock) string) []*dto.TotalResponse {
	totales := make(map[string]int)
	for _, s := range filas {
		totales[key(s)] += s.Cantidad
	}
	out := make([]*dto.TotalResponse, 0, len(totales))
	for id, total := range totales {
		out = append(out, &dto.TotalResponse{ID: id, Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
