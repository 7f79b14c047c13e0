package entity

// Imagen mapea un RecID a un enlace resoluble del blob store (hoja 'imagen').
// Borrar la entidad dueña no borra la Imagen ni el archivo salvo que el caller lo haga.
type Imagen struct {
	RecID string
	Link  string // ID_nombre: link de vista de Drive
}
