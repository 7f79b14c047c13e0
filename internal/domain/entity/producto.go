package entity

// Producto representa un artículo del gestor, respaldado por una fila de la hoja 'producto'.
// Todos los campos viajan como texto; la clave es el RecID generado por la aplicación.
type Producto struct {
	RecID       string
	Codigo      string // codigo_producto
	Nombre      string // nombre_producto
	Descripcion string // descripcion_producto
	RecIDImagen string // referencia opcional a la hoja 'imagen' (columna con alias históricos)
}
