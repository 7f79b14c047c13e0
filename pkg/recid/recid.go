// Package recid genera los identificadores opacos que usan las filas del gestor.
package recid

import (
	"strings"

	"github.com/google/uuid"
)

// Len largo de un RecID: 10 caracteres hex, igual que las hojas creadas
// por versiones anteriores del gestor.
const Len = 10

// New devuelve un RecID aleatorio: los primeros 10 caracteres del hex de un UUID v4.
func New() string {
	h := strings.ReplaceAll(uuid.New().String(), "-", "")
	return h[:Len]
}

// Valid indica si s tiene pinta de RecID (largo correcto, solo hex minúscula).
func Valid(s string) bool {
	if len(s) != Len {
		return false
	}
	for _, r := range s {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return true
}
