package entity

import "time"

// Employee actor del sistema: solicitante de terreno o administrador que decide
// (dato de referencia, solo lectura aquí).
type Employee struct {
	ID        string
	Name      string
	Email     string
	Role      string // field, admin
	CreatedAt time.Time
}
