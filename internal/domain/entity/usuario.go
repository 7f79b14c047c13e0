package entity

// Rangos válidos para Usuario. Determinan permisos en la API y el rol de Drive
// (writer para Administrador/Editor, reader para Visitante).
const (
	RangoAdministrador = "Administrador"
	RangoEditor        = "Editor"
	RangoVisitante     = "Visitante"
)

// Usuario representa un usuario del gestor (hoja 'usuarios').
type Usuario struct {
	RecID     string
	IDUsuario string // sub/uid del proveedor de identidad
	Nombre    string
	Correo    string
	Rango     string // ver constantes Rango*
}

// PuedeEditar indica si el rango habilita operaciones de escritura.
func (u *Usuario) PuedeEditar() bool {
	return u.Rango == RangoAdministrador || u.Rango == RangoEditor
}
