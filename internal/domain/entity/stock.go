package entity

// Stock representa una fila del libro de stock: unidades de un producto en un depósito.
// La cantidad se persiste como entero codificado en texto; acá ya viene parseada.
// Puede haber más de una fila para el mismo par (producto, depósito); las operaciones
// de movimiento intentan reutilizar la existente antes de crear otra.
type Stock struct {
	RecID      string
	IDProducto string // RecID del producto
	IDDeposito string // RecID del depósito
	Cantidad   int    // invariante: >= 0
}
