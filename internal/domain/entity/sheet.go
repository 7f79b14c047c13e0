package entity

// SheetInfo es una fila del spreadsheet índice (indexSheetList):
// qué planillas del gestor existen y a quién pertenecen.
type SheetInfo struct {
	RecID         string
	Nombre        string // nombre_sheet
	SheetID       string // id_sheet
	CorreoOrigen  string
	EstadoUser    string // Administrador | Invitado
	FechaCreacion string
}
