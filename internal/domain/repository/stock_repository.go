package repository

import (
	"context"

	"github.com/tacticadev/gestor-api/internal/domain/entity"
)

// StockRepository define el puerto para el libro de stock (hoja 'stock').
// No hay bloqueo ni chequeo optimista entre lectura y escritura de una fila:
// el ciclo leer -> calcular -> escribir lo arma el caso de uso.
type StockRepository interface {
	List(ctx context.Context) ([]*entity.Stock, error)
	GetByRecID(ctx context.Context, recid string) (*entity.Stock, error)
	// FindByProductoYDeposito devuelve la primera fila para el par, o (nil, nil).
	FindByProductoYDeposito(ctx context.Context, idProducto, idDeposito string) (*entity.Stock, error)
	Add(ctx context.Context, s *entity.Stock) error
	// SetCantidad reescribe la cantidad de la fila dejando el resto intacto.
	SetCantidad(ctx context.Context, recid string, cantidad int) error
	DeleteByRecID(ctx context.Context, recid string) (bool, error)
}
