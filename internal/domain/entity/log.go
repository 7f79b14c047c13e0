package entity

// LogEntry es una entrada de la bitácora (hoja 'logs', solo append).
// Sin campos estructurados más allá de fecha, actor y texto de la acción.
type LogEntry struct {
	Fecha     string // "2006-01-02 15:04:05"
	IDUsuario string // nombre visible del actor (convención heredada de la hoja)
	Accion    string
}
