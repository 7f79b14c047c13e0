package entity

// Deposito representa un depósito/almacén, respaldado por una fila de la hoja 'deposito'.
type Deposito struct {
	RecID       string
	IDDeposito  string // id_deposito (código visible)
	Nombre      string // nombre_deposito
	Direccion   string // direccion_deposito
	Descripcion string // descripcion_deposito
	RecIDImagen string
}
